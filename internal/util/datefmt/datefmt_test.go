package datefmt_test

import (
	"testing"
	"time"

	"blog-server/internal/util/datefmt"
)

func TestOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		day  int
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{10, "10th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{14, "14th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{24, "24th"},
		{30, "30th"},
		{31, "31st"},
	}

	for _, tt := range tests {
		if got := datefmt.Ordinal(tt.day); got != tt.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestEnglish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "plain day",
			in:   time.Date(2021, time.June, 27, 19, 43, 50, 0, time.UTC),
			want: "2021-06-27 27th 2021",
		},
		{
			name: "first of month",
			in:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "2026-01-01 1st 2026",
		},
		{
			name: "teens take th",
			in:   time.Date(2025, time.December, 12, 8, 30, 0, 0, time.UTC),
			want: "2025-12-12 12th 2025",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := datefmt.English(tt.in); got != tt.want {
				t.Errorf("English(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
