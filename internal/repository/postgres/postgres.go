package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Package postgres implements the repository interfaces with database/sql
// and parameterized queries. No business logic lives here.

// prefixUpperBound closes a "starts with" range scan: values between the
// term and term+U+F8FF share the term as prefix.
const prefixUpperBound = ""

// IsNoRowsError reports whether err is the driver's no-rows sentinel.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// setClause accumulates "col = $n" fragments and their ordered args for
// dynamically built UPDATE statements.
type setClause struct {
	frags []string
	args  []any
}

func (s *setClause) add(col string, v any) {
	s.args = append(s.args, v)
	s.frags = append(s.frags, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

// addExpr appends a fragment from a format string with a single %d verb for
// the bound parameter index (e.g. "records = records || $%d::jsonb").
func (s *setClause) addExpr(format string, v any) {
	s.args = append(s.args, v)
	s.frags = append(s.frags, fmt.Sprintf(format, len(s.args)))
}

// bind registers an extra arg (e.g. the WHERE key) and returns its index.
func (s *setClause) bind(v any) int {
	s.args = append(s.args, v)
	return len(s.args)
}

func (s *setClause) set() string { return strings.Join(s.frags, ", ") }

func itoa(n int) string { return strconv.Itoa(n) }

// execConditional runs a mutation that must touch exactly one row and maps
// "zero rows affected" to sql.ErrNoRows. This is the atomic replacement for
// a separate existence read before the write.
func execConditional(ctx context.Context, db *sql.DB, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
