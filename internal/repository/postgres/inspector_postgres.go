package postgres

import (
	"context"
	"database/sql"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
)

// InspectorPostgres is a PostgreSQL implementation of repository.InspectorRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type InspectorPostgres struct {
	db *sql.DB
}

// NewInspectorPostgres creates a new InspectorPostgres repository.
func NewInspectorPostgres(db *sql.DB) *InspectorPostgres {
	return &InspectorPostgres{db: db}
}

var _ repository.InspectorRepository = (*InspectorPostgres)(nil)

// Create inserts a new inspector row and returns the stored record.
func (r *InspectorPostgres) Create(ctx context.Context, ins *model.Inspector) (*model.Inspector, error) {
	const q = `
		INSERT INTO inspectors (id, name, email, phone, license_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, email, phone, license_number, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		ins.ID,
		ins.Name,
		ins.Email,
		ins.Phone,
		ins.LicenseNumber,
		ins.CreatedAt,
		ins.UpdatedAt,
	)
	var out model.Inspector
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Phone,
		&out.LicenseNumber,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single inspector by its ID.
func (r *InspectorPostgres) FindByID(ctx context.Context, id string) (*model.Inspector, error) {
	const q = `
		SELECT id, name, email, phone, license_number, created_at, updated_at
		FROM inspectors
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var ins model.Inspector
	if err := row.Scan(
		&ins.ID,
		&ins.Name,
		&ins.Email,
		&ins.Phone,
		&ins.LicenseNumber,
		&ins.CreatedAt,
		&ins.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ins, nil
}

// List returns inspectors using LIMIT/OFFSET pagination and a total count.
func (r *InspectorPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Inspector], error) {
	const qCount = `SELECT COUNT(*) FROM inspectors`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, name, email, phone, license_number, created_at, updated_at
		FROM inspectors
		ORDER BY name ASC, id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Inspector, 0)
	for rows.Next() {
		var ins model.Inspector
		if err := rows.Scan(
			&ins.ID,
			&ins.Name,
			&ins.Email,
			&ins.Phone,
			&ins.LicenseNumber,
			&ins.CreatedAt,
			&ins.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Inspector]{
		Items: items,
		Total: total,
	}, nil
}

// Update rewrites the mutable inspector fields and returns the stored row.
func (r *InspectorPostgres) Update(ctx context.Context, ins *model.Inspector) (*model.Inspector, error) {
	const q = `
		UPDATE inspectors
		SET name = $2, email = $3, phone = $4, license_number = $5, updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, phone, license_number, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		ins.ID,
		ins.Name,
		ins.Email,
		ins.Phone,
		ins.LicenseNumber,
	)
	var out model.Inspector
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Phone,
		&out.LicenseNumber,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an inspector by ID. It does not return an error if the row does not exist.
func (r *InspectorPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM inspectors WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
