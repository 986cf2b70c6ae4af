package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/sqlfn/internal/expr"
	"github.com/roach88/sqlfn/internal/funcs"
)

// FunctionRow is one catalog entry: a registered key and what it resolves to.
type FunctionRow struct {
	Seq      int64             `json:"seq"`
	Name     string            `json:"name"`
	Primary  string            `json:"primary"`
	Type     expr.Kind         `json:"type"`
	Builder  funcs.BuilderKind `json:"builder"`
	Arity    int               `json:"arity"`
	Distinct bool              `json:"distinct"`
}

// Rows converts introspection entries from registry.List or
// registry.ListPattern into catalog rows, numbered from 1.
func Rows(registry *funcs.Registry, defs []funcs.Definition) []FunctionRow {
	rows := make([]FunctionRow, 0, len(defs))
	for i, d := range defs {
		rows = append(rows, FunctionRow{
			Seq:      int64(i + 1),
			Name:     d.Name,
			Primary:  registry.ConcreteName(d.Name),
			Type:     d.Kind,
			Builder:  d.Builder.Kind(),
			Arity:    d.Builder.Arity(),
			Distinct: d.Builder.AcceptsDistinct(),
		})
	}
	return rows
}

// Export writes rows as a new export and returns its id.
//
// source describes where the registry came from (a config path, or
// "defaults"). The whole export is written in one transaction.
func (s *Store) Export(ctx context.Context, source string, rows []FunctionRow) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()

	fingerprint, err := Fingerprint(rows)
	if err != nil {
		return "", err
	}

	primaries := make(map[string]bool, len(rows))
	for _, r := range rows {
		primaries[r.Primary] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("export: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO exports (id, seq, source, function_count, key_count, fingerprint)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM exports), ?, ?, ?, ?)
	`, id, source, len(primaries), len(rows), fingerprint)
	if err != nil {
		return "", fmt.Errorf("export: insert export: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO functions
		(export_id, seq, name, primary_name, type, builder, arity, distinct_ok)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("export: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.ExecContext(ctx,
			id,
			r.Seq,
			r.Name,
			r.Primary,
			string(r.Type),
			string(r.Builder),
			r.Arity,
			r.Distinct,
		)
		if err != nil {
			return "", fmt.Errorf("export: insert function %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("export: commit: %w", err)
	}

	slog.Debug("catalog exported",
		"export_id", id,
		"source", source,
		"keys", len(rows),
		"fingerprint", fingerprint,
	)

	return id, nil
}
