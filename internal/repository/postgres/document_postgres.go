package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, inspector_id, document_type_id, filename, storage_path, size, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, inspector_id, document_type_id, filename, storage_path, size, content_type, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.InspectorID,
		doc.DocumentTypeID,
		doc.Filename,
		doc.StoragePath,
		doc.Size,
		doc.ContentType,
		doc.CreatedAt,
	)
	var out model.Document
	if err := row.Scan(
		&out.ID,
		&out.InspectorID,
		&out.DocumentTypeID,
		&out.Filename,
		&out.StoragePath,
		&out.Size,
		&out.ContentType,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT id, inspector_id, document_type_id, filename, storage_path, size, content_type, created_at
		FROM documents
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.InspectorID,
		&d.DocumentTypeID,
		&d.Filename,
		&d.StoragePath,
		&d.Size,
		&d.ContentType,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// filterClause builds the WHERE clause and args for a document filter.
// Returned args start at placeholder $1.
func filterClause(f repository.DocumentFilter) (string, []any) {
	var conds []string
	var args []any
	if f.InspectorID != "" {
		args = append(args, f.InspectorID)
		conds = append(conds, fmt.Sprintf("inspector_id = $%d", len(args)))
	}
	if f.DocumentTypeID != "" {
		args = append(args, f.DocumentTypeID)
		conds = append(conds, fmt.Sprintf("document_type_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns documents matching the filter using LIMIT/OFFSET pagination
// and a total count for the same filter.
func (r *DocumentPostgres) List(ctx context.Context, f repository.DocumentFilter, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	where, args := filterClause(f)

	qCount := `SELECT COUNT(*) FROM documents` + where
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := `
		SELECT id, inspector_id, document_type_id, filename, storage_path, size, content_type, created_at
		FROM documents` + where + fmt.Sprintf(`
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, len(args)+1, len(args)+2)
	args = append(args, pq.Limit, pq.Offset)

	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(
			&d.ID,
			&d.InspectorID,
			&d.DocumentTypeID,
			&d.Filename,
			&d.StoragePath,
			&d.Size,
			&d.ContentType,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

// UpdateMeta rewrites the metadata fields of a document; the stored object
// and its storage_path are untouched.
func (r *DocumentPostgres) UpdateMeta(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		UPDATE documents
		SET inspector_id = $2, document_type_id = $3, filename = $4
		WHERE id = $1
		RETURNING id, inspector_id, document_type_id, filename, storage_path, size, content_type, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.InspectorID,
		doc.DocumentTypeID,
		doc.Filename,
	)
	var out model.Document
	if err := row.Scan(
		&out.ID,
		&out.InspectorID,
		&out.DocumentTypeID,
		&out.Filename,
		&out.StoragePath,
		&out.Size,
		&out.ContentType,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
