package mocks

import (
	"context"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockInspectorRepository struct {
	mock.Mock
}

func (m *MockInspectorRepository) Create(ctx context.Context, ins *model.Inspector) (*model.Inspector, error) {
	args := m.Called(ctx, ins)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspector), args.Error(1)
}

func (m *MockInspectorRepository) FindByID(ctx context.Context, id string) (*model.Inspector, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspector), args.Error(1)
}

func (m *MockInspectorRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Inspector], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Inspector]), args.Error(1)
}

func (m *MockInspectorRepository) Update(ctx context.Context, ins *model.Inspector) (*model.Inspector, error) {
	args := m.Called(ctx, ins)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspector), args.Error(1)
}

func (m *MockInspectorRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInspectorVariableRepository struct {
	mock.Mock
}

func (m *MockInspectorVariableRepository) ListByInspector(ctx context.Context, inspectorID string) ([]model.InspectorVariable, error) {
	args := m.Called(ctx, inspectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InspectorVariable), args.Error(1)
}

func (m *MockInspectorVariableRepository) Upsert(ctx context.Context, v *model.InspectorVariable) (*model.InspectorVariable, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InspectorVariable), args.Error(1)
}

func (m *MockInspectorVariableRepository) Delete(ctx context.Context, inspectorID, name string) error {
	args := m.Called(ctx, inspectorID, name)
	return args.Error(0)
}
