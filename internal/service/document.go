package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
	"leadinspect/internal/storage"
)

// DocumentUpload carries the inputs of a document upload.
// OriginalFilename is used only to extract the extension; the stored object
// key is UUID + original extension under the documents/ prefix.
type DocumentUpload struct {
	Reader           io.Reader
	OriginalFilename string
	ContentType      string
	Size             int64
	InspectorID      *string
	DocumentTypeID   *string
}

// DocumentMeta carries the writable metadata fields of a document.
type DocumentMeta struct {
	InspectorID    *string `json:"inspector_id"`
	DocumentTypeID *string `json:"document_type_id"`
	Filename       string  `json:"filename"`
}

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload uploads the content to object storage, saves metadata to DB,
	// and rolls back storage if the DB save fails.
	Upload(ctx context.Context, up DocumentUpload) (*model.Document, error)

	// List returns documents matching the filter using limit/offset and a total count.
	List(ctx context.Context, f repository.DocumentFilter, limit, offset int) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// UpdateMeta rewrites a document's metadata; the stored object is untouched.
	UpdateMeta(ctx context.Context, id string, meta DocumentMeta) (*model.Document, error)

	// Delete removes a document by ID from both storage and repository.
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo}
}

func (s *documentService) Upload(ctx context.Context, up DocumentUpload) (*model.Document, error) {
	if up.Reader == nil {
		return nil, ErrReaderNil
	}
	// Generate filename using UUID + extension
	ext := filepath.Ext(up.OriginalFilename)
	genName := uuid.New().String() + ext
	key := filepath.ToSlash(filepath.Join("documents", genName))

	objInfo, err := s.store.Put(ctx, key, up.Reader, storage.PutObjectOptions{
		Size:        up.Size,
		ContentType: up.ContentType,
		Metadata: map[string]string{
			"original-filename": up.OriginalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		ID:             uuid.New().String(),
		InspectorID:    up.InspectorID,
		DocumentTypeID: up.DocumentTypeID,
		Filename:       genName,
		StoragePath:    objInfo.Key,
		Size:           objInfo.Size,
		ContentType:    objInfo.ContentType,
		CreatedAt:      time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) List(ctx context.Context, f repository.DocumentFilter, limit, offset int) (*DocumentListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, f, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) UpdateMeta(ctx context.Context, id string, meta DocumentMeta) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if meta.Filename == "" {
		return nil, ErrNameRequired
	}
	out, err := s.repo.UpdateMeta(ctx, &model.Document{
		ID:             id,
		InspectorID:    meta.InspectorID,
		DocumentTypeID: meta.DocumentTypeID,
		Filename:       meta.Filename,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Delete removes a document from storage, then deletes its record.
func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	// Find the document to get its storage path
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete from storage first; if this fails, keep DB row to avoid orphaned storage reference loss
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	// Delete DB row (repository ignores missing row errors as per contract)
	return s.repo.Delete(ctx, id)
}
