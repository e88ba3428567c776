package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
)

// DocumentTypeService defines the use cases for document type tags.
type DocumentTypeService interface {
	Create(ctx context.Context, name string) (*model.DocumentType, error)
	List(ctx context.Context) ([]model.DocumentType, error)
	Delete(ctx context.Context, id string) error
}

type documentTypeService struct {
	repo repository.DocumentTypeRepository
}

// NewDocumentTypeService constructs a new DocumentTypeService.
func NewDocumentTypeService(repo repository.DocumentTypeRepository) DocumentTypeService {
	return &documentTypeService{repo: repo}
}

func (s *documentTypeService) Create(ctx context.Context, name string) (*model.DocumentType, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.Create(ctx, &model.DocumentType{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *documentTypeService) List(ctx context.Context) ([]model.DocumentType, error) {
	return s.repo.List(ctx)
}

func (s *documentTypeService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
