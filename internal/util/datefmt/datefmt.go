// Package datefmt renders timestamps the way the blog pages display them.
package datefmt

import (
	"fmt"
	"time"
)

// English formats a timestamp as "YYYY-MM-DD <ordinal day> YYYY",
// e.g. "2021-06-27 27th 2021".
func English(t time.Time) string {
	return fmt.Sprintf("%s %s %s", t.Format("2006-01-02"), Ordinal(t.Day()), t.Format("2006"))
}

// Ordinal renders a day of month with its English ordinal suffix.
// Days 11 through 13 always take "th".
func Ordinal(day int) string {
	suffix := "th"
	if day < 11 || day > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
