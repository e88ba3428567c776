package postgres

import (
	"context"
	"database/sql"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
)

// GeneralVariablePostgres is a PostgreSQL implementation of
// repository.GeneralVariableRepository.
type GeneralVariablePostgres struct {
	db *sql.DB
}

// NewGeneralVariablePostgres creates a new GeneralVariablePostgres repository.
func NewGeneralVariablePostgres(db *sql.DB) *GeneralVariablePostgres {
	return &GeneralVariablePostgres{db: db}
}

var _ repository.GeneralVariableRepository = (*GeneralVariablePostgres)(nil)

// List returns all general variables ordered by name.
func (r *GeneralVariablePostgres) List(ctx context.Context) ([]model.GeneralVariable, error) {
	const q = `
		SELECT id, name, value, updated_at
		FROM general_variables
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.GeneralVariable, 0)
	for rows.Next() {
		var v model.GeneralVariable
		if err := rows.Scan(&v.ID, &v.Name, &v.Value, &v.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert inserts or updates the variable keyed by name.
func (r *GeneralVariablePostgres) Upsert(ctx context.Context, v *model.GeneralVariable) (*model.GeneralVariable, error) {
	const q = `
		INSERT INTO general_variables (id, name, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		RETURNING id, name, value, updated_at
	`
	row := r.db.QueryRowContext(ctx, q, v.ID, v.Name, v.Value)
	var out model.GeneralVariable
	if err := row.Scan(&out.ID, &out.Name, &out.Value, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one variable by name.
// Returns sql.ErrNoRows if no such variable exists.
func (r *GeneralVariablePostgres) Delete(ctx context.Context, name string) error {
	const q = `DELETE FROM general_variables WHERE name = $1`
	res, err := r.db.ExecContext(ctx, q, name)
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
