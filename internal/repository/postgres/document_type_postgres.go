package postgres

import (
	"context"
	"database/sql"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
)

// DocumentTypePostgres is a PostgreSQL implementation of repository.DocumentTypeRepository.
type DocumentTypePostgres struct {
	db *sql.DB
}

// NewDocumentTypePostgres creates a new DocumentTypePostgres repository.
func NewDocumentTypePostgres(db *sql.DB) *DocumentTypePostgres {
	return &DocumentTypePostgres{db: db}
}

var _ repository.DocumentTypeRepository = (*DocumentTypePostgres)(nil)

// Create inserts a new document type row and returns the stored record.
func (r *DocumentTypePostgres) Create(ctx context.Context, dt *model.DocumentType) (*model.DocumentType, error) {
	const q = `
		INSERT INTO document_types (id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, name, created_at
	`
	row := r.db.QueryRowContext(ctx, q, dt.ID, dt.Name, dt.CreatedAt)
	var out model.DocumentType
	if err := row.Scan(&out.ID, &out.Name, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all document types ordered by name.
func (r *DocumentTypePostgres) List(ctx context.Context) ([]model.DocumentType, error) {
	const q = `
		SELECT id, name, created_at
		FROM document_types
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentType, 0)
	for rows.Next() {
		var dt model.DocumentType
		if err := rows.Scan(&dt.ID, &dt.Name, &dt.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document type by ID. It does not return an error if the row does not exist.
func (r *DocumentTypePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM document_types WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
