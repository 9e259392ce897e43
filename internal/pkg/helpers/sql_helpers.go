package helpers

import "database/sql"

// GetContentNullString maps "" to SQL NULL so optional text columns stay NULL
// instead of holding empty strings.
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
