package repository

import (
	"database/sql"
	"math"
	"strconv"
	"strings"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// looseInt reads a minute column that may hold anything a hand edit left in
// it. Values that are not whole numbers come back nil.
func looseInt(v any) *int {
	var n int
	switch v := v.(type) {
	case int64:
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			return nil
		}
		n = int(v)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		n = i
	case []byte:
		return looseInt(string(v))
	default:
		return nil
	}
	return &n
}

// encodeWeekdays stores a weekday set as "1,2,3". An empty set is stored as NULL.
func encodeWeekdays(days []int) any {
	if len(days) == 0 {
		return nil
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

// decodeWeekdays reads a stored weekday list. Tokens that are not integers are
// skipped; range checks are left to the normalizer.
func decodeWeekdays(s sql.NullString) []int {
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return nil
	}
	var days []int
	for _, part := range strings.Split(s.String, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	return days
}

// requireAffected turns a zero-row write into ErrNotFound-wrapped errors.
func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return wrapNotFound(what)
	}
	return nil
}
