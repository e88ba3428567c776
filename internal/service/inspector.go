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

// InspectorInput carries the writable fields of an inspector.
type InspectorInput struct {
	Name          string  `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	LicenseNumber *string `json:"license_number"`
}

// InspectorListResult is the service-level DTO for paginated inspectors.
type InspectorListResult struct {
	Items []model.Inspector `json:"data"`
	Total int               `json:"total"`
}

// InspectorService defines the use cases for inspectors and their variables.
type InspectorService interface {
	Create(ctx context.Context, in InspectorInput) (*model.Inspector, error)

	// List returns inspectors using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*InspectorListResult, error)

	Get(ctx context.Context, id string) (*model.Inspector, error)

	Update(ctx context.Context, id string, in InspectorInput) (*model.Inspector, error)

	// Delete removes an inspector; its variables cascade and its documents
	// keep their rows with the reference nulled (FK actions).
	Delete(ctx context.Context, id string) error

	// ListVariables returns all variables of one inspector.
	ListVariables(ctx context.Context, inspectorID string) ([]model.InspectorVariable, error)

	// SetVariable upserts the variable keyed by (inspector, name).
	SetVariable(ctx context.Context, inspectorID, name, value string) (*model.InspectorVariable, error)

	// DeleteVariable removes one variable by name.
	DeleteVariable(ctx context.Context, inspectorID, name string) error
}

type inspectorService struct {
	repo    repository.InspectorRepository
	varRepo repository.InspectorVariableRepository
}

// NewInspectorService constructs a new InspectorService.
func NewInspectorService(repo repository.InspectorRepository, varRepo repository.InspectorVariableRepository) InspectorService {
	return &inspectorService{repo: repo, varRepo: varRepo}
}

func (s *inspectorService) Create(ctx context.Context, in InspectorInput) (*model.Inspector, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	now := time.Now().UTC()
	ins := &model.Inspector{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		LicenseNumber: in.LicenseNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return s.repo.Create(ctx, ins)
}

func (s *inspectorService) List(ctx context.Context, limit, offset int) (*InspectorListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &InspectorListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *inspectorService) Get(ctx context.Context, id string) (*model.Inspector, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	ins, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ins, nil
}

func (s *inspectorService) Update(ctx context.Context, id string, in InspectorInput) (*model.Inspector, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	out, err := s.repo.Update(ctx, &model.Inspector{
		ID:            id,
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		LicenseNumber: in.LicenseNumber,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *inspectorService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	// Confirm existence so the caller can distinguish a 404.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *inspectorService) ListVariables(ctx context.Context, inspectorID string) ([]model.InspectorVariable, error) {
	if inspectorID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, inspectorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.varRepo.ListByInspector(ctx, inspectorID)
}

func (s *inspectorService) SetVariable(ctx context.Context, inspectorID, name, value string) (*model.InspectorVariable, error) {
	if inspectorID == "" {
		return nil, ErrIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.repo.FindByID(ctx, inspectorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.varRepo.Upsert(ctx, &model.InspectorVariable{
		ID:          uuid.New().String(),
		InspectorID: inspectorID,
		Name:        name,
		Value:       value,
	})
}

func (s *inspectorService) DeleteVariable(ctx context.Context, inspectorID, name string) error {
	if inspectorID == "" {
		return ErrIDRequired
	}
	if name == "" {
		return ErrNameRequired
	}
	if err := s.varRepo.Delete(ctx, inspectorID, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
