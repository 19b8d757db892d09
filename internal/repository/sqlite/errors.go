package sqlite

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"blog-server/internal/domain"
)

// constraintErr maps typed sqlite constraint failures onto
// domain.ErrConstraintViolation, leaving other errors untouched.
func constraintErr(err error) error {
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT,
			sqlite3.SQLITE_CONSTRAINT_UNIQUE,
			sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
			sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return errors.Join(domain.ErrConstraintViolation, err)
		}
	}
	return err
}
