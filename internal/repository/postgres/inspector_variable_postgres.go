package postgres

import (
	"context"
	"database/sql"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
)

// InspectorVariablePostgres is a PostgreSQL implementation of
// repository.InspectorVariableRepository.
type InspectorVariablePostgres struct {
	db *sql.DB
}

// NewInspectorVariablePostgres creates a new InspectorVariablePostgres repository.
func NewInspectorVariablePostgres(db *sql.DB) *InspectorVariablePostgres {
	return &InspectorVariablePostgres{db: db}
}

var _ repository.InspectorVariableRepository = (*InspectorVariablePostgres)(nil)

// ListByInspector returns all variables of one inspector ordered by name.
func (r *InspectorVariablePostgres) ListByInspector(ctx context.Context, inspectorID string) ([]model.InspectorVariable, error) {
	const q = `
		SELECT id, inspector_id, name, value, updated_at
		FROM inspector_variables
		WHERE inspector_id = $1
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, q, inspectorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.InspectorVariable, 0)
	for rows.Next() {
		var v model.InspectorVariable
		if err := rows.Scan(
			&v.ID,
			&v.InspectorID,
			&v.Name,
			&v.Value,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert inserts or updates the variable keyed by (inspector_id, name).
func (r *InspectorVariablePostgres) Upsert(ctx context.Context, v *model.InspectorVariable) (*model.InspectorVariable, error) {
	const q = `
		INSERT INTO inspector_variables (id, inspector_id, name, value, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (inspector_id, name)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		RETURNING id, inspector_id, name, value, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		v.ID,
		v.InspectorID,
		v.Name,
		v.Value,
	)
	var out model.InspectorVariable
	if err := row.Scan(
		&out.ID,
		&out.InspectorID,
		&out.Name,
		&out.Value,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one variable by inspector and name.
// Returns sql.ErrNoRows if no such variable exists.
func (r *InspectorVariablePostgres) Delete(ctx context.Context, inspectorID, name string) error {
	const q = `DELETE FROM inspector_variables WHERE inspector_id = $1 AND name = $2`
	res, err := r.db.ExecContext(ctx, q, inspectorID, name)
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
