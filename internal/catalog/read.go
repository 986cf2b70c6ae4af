package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/sqlfn/internal/expr"
	"github.com/roach88/sqlfn/internal/funcs"
)

// ErrNoExports is returned by Latest when the catalog is empty.
var ErrNoExports = errors.New("catalog has no exports")

// ExportInfo summarizes one export.
type ExportInfo struct {
	ID            string `json:"id"`
	Seq           int64  `json:"seq"`
	Source        string `json:"source"`
	FunctionCount int    `json:"function_count"`
	KeyCount      int    `json:"key_count"`
	Fingerprint   string `json:"fingerprint"`
}

// Filter narrows a function query. Empty fields match everything.
type Filter struct {
	// Name is a SQL LIKE pattern on the key, e.g. "day%".
	Name string

	// Type is the exact function type, e.g. "DayOfMonth".
	Type string

	// Builder is the exact builder kind, e.g. "unary_timezone".
	Builder string

	// PrimaryOnly drops alias rows.
	PrimaryOnly bool
}

// where renders the filter as a WHERE clause fragment and its arguments.
func (f Filter) where() (string, []any) {
	var clauses []string
	var args []any
	if f.Name != "" {
		clauses = append(clauses, "name LIKE ? ESCAPE '\\'")
		args = append(args, f.Name)
	}
	if f.Type != "" {
		clauses = append(clauses, "type = ?")
		args = append(args, f.Type)
	}
	if f.Builder != "" {
		clauses = append(clauses, "builder = ?")
		args = append(args, f.Builder)
	}
	if f.PrimaryOnly {
		clauses = append(clauses, "name = primary_name")
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(clauses, " AND "), args
}

// Functions returns the rows of an export matching filter, ordered by seq.
//
// Returns empty slice (not nil) if nothing matches.
func (s *Store) Functions(ctx context.Context, exportID string, filter Filter) ([]FunctionRow, error) {
	clause, args := filter.where()
	query := `
		SELECT seq, name, primary_name, type, builder, arity, distinct_ok
		FROM functions
		WHERE export_id = ?` + clause + `
		ORDER BY seq ASC
	`

	rows, err := s.db.QueryContext(ctx, query, append([]any{exportID}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("query functions: %w", err)
	}
	defer rows.Close()

	out := []FunctionRow{}
	for rows.Next() {
		var r FunctionRow
		var typ, builder string
		if err := rows.Scan(&r.Seq, &r.Name, &r.Primary, &typ, &builder, &r.Arity, &r.Distinct); err != nil {
			return nil, fmt.Errorf("scan function: %w", err)
		}
		r.Type = expr.Kind(typ)
		r.Builder = funcs.BuilderKind(builder)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate functions: %w", err)
	}

	return out, nil
}

// Exports returns all exports, oldest first.
func (s *Store) Exports(ctx context.Context) ([]ExportInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, source, function_count, key_count, fingerprint
		FROM exports
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query exports: %w", err)
	}
	defer rows.Close()

	out := []ExportInfo{}
	for rows.Next() {
		var e ExportInfo
		if err := rows.Scan(&e.ID, &e.Seq, &e.Source, &e.FunctionCount, &e.KeyCount, &e.Fingerprint); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exports: %w", err)
	}

	return out, nil
}

// Latest returns the id of the most recent export.
func (s *Store) Latest(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM exports ORDER BY seq DESC LIMIT 1
	`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoExports
	}
	if err != nil {
		return "", fmt.Errorf("query latest export: %w", err)
	}
	return id, nil
}

// Info returns the summary of one export.
func (s *Store) Info(ctx context.Context, id string) (ExportInfo, error) {
	var e ExportInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT id, seq, source, function_count, key_count, fingerprint
		FROM exports WHERE id = ?
	`, id).Scan(&e.ID, &e.Seq, &e.Source, &e.FunctionCount, &e.KeyCount, &e.Fingerprint)
	if errors.Is(err, sql.ErrNoRows) {
		return ExportInfo{}, fmt.Errorf("export %s: %w", id, ErrNoExports)
	}
	if err != nil {
		return ExportInfo{}, fmt.Errorf("query export %s: %w", id, err)
	}
	return e, nil
}

// Previous returns the id of the most recent export before id with the
// same fingerprint, or "" when the listing changed since every earlier export.
func (s *Store) Previous(ctx context.Context, id string) (string, error) {
	info, err := s.Info(ctx, id)
	if err != nil {
		return "", err
	}

	var prev string
	err = s.db.QueryRowContext(ctx, `
		SELECT id FROM exports
		WHERE fingerprint = ? AND seq < ?
		ORDER BY seq DESC LIMIT 1
	`, info.Fingerprint, info.Seq).Scan(&prev)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query previous export: %w", err)
	}
	return prev, nil
}
