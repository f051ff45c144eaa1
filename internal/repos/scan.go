package repos

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// qb is the shared statement builder. SQLite takes ? placeholders, which is
// squirrel's default.
var qb = sq.StatementBuilder

// instant parses a nullable TEXT timestamp column. SQLite stores whatever
// the writer sent, so both RFC3339 and the CURRENT_TIMESTAMP format occur.
func instant(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s.String); err == nil {
			return &t
		}
	}
	return nil
}

// nullString maps an empty string to NULL for optional TEXT columns.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullInstant renders an optional time for a nullable TEXT column.
func nullInstant(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// instantOrZero is instant for NOT NULL columns like created_at.
func instantOrZero(s string) time.Time {
	if t := instant(sql.NullString{String: s, Valid: true}); t != nil {
		return *t
	}
	return time.Time{}
}
