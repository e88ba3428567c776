package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
)

// GeneralVariableService defines the use cases for global variables.
type GeneralVariableService interface {
	List(ctx context.Context) ([]model.GeneralVariable, error)

	// Set upserts the variable keyed by name.
	Set(ctx context.Context, name, value string) (*model.GeneralVariable, error)

	// Delete removes one variable by name.
	Delete(ctx context.Context, name string) error
}

type generalVariableService struct {
	repo repository.GeneralVariableRepository
}

// NewGeneralVariableService constructs a new GeneralVariableService.
func NewGeneralVariableService(repo repository.GeneralVariableRepository) GeneralVariableService {
	return &generalVariableService{repo: repo}
}

func (s *generalVariableService) List(ctx context.Context) ([]model.GeneralVariable, error) {
	return s.repo.List(ctx)
}

func (s *generalVariableService) Set(ctx context.Context, name, value string) (*model.GeneralVariable, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.Upsert(ctx, &model.GeneralVariable{
		ID:    uuid.New().String(),
		Name:  name,
		Value: value,
	})
}

func (s *generalVariableService) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
