package repository

import (
	"context"

	"leadinspect/internal/model"
)

// DocumentFilter narrows document listings. Empty fields match everything.
type DocumentFilter struct {
	InspectorID    string
	DocumentTypeID string
}

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record.
	// The caller provides required fields (e.g., ID, CreatedAt) according to the schema defaults.
	// Returns the stored document (may include values set by the DB).
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns a paginated list of documents matching the filter and a
	// total rows count for the same filter.
	List(ctx context.Context, f DocumentFilter, pq PageQuery) (*PageResult[model.Document], error)

	// UpdateMeta rewrites the metadata fields (inspector, type, filename) of
	// a document; the stored object is untouched.
	// Returns sql.ErrNoRows if the document does not exist.
	UpdateMeta(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// DocumentTypeRepository defines data access for document type tags.
type DocumentTypeRepository interface {
	// Create inserts a new document type. Name is unique.
	Create(ctx context.Context, dt *model.DocumentType) (*model.DocumentType, error)

	// List returns all document types ordered by name.
	List(ctx context.Context) ([]model.DocumentType, error)

	// Delete removes a document type by ID. Documents referencing it keep
	// their rows with the reference nulled by the FK action.
	Delete(ctx context.Context, id string) error
}
