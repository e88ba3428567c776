package mocks

import (
	"context"

	"leadinspect/internal/model"
	"leadinspect/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockInspectorService struct {
	mock.Mock
}

func (m *MockInspectorService) Create(ctx context.Context, in service.InspectorInput) (*model.Inspector, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspector), args.Error(1)
}

func (m *MockInspectorService) List(ctx context.Context, limit, offset int) (*service.InspectorListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InspectorListResult), args.Error(1)
}

func (m *MockInspectorService) Get(ctx context.Context, id string) (*model.Inspector, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspector), args.Error(1)
}

func (m *MockInspectorService) Update(ctx context.Context, id string, in service.InspectorInput) (*model.Inspector, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inspector), args.Error(1)
}

func (m *MockInspectorService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInspectorService) ListVariables(ctx context.Context, inspectorID string) ([]model.InspectorVariable, error) {
	args := m.Called(ctx, inspectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InspectorVariable), args.Error(1)
}

func (m *MockInspectorService) SetVariable(ctx context.Context, inspectorID, name, value string) (*model.InspectorVariable, error) {
	args := m.Called(ctx, inspectorID, name, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InspectorVariable), args.Error(1)
}

func (m *MockInspectorService) DeleteVariable(ctx context.Context, inspectorID, name string) error {
	args := m.Called(ctx, inspectorID, name)
	return args.Error(0)
}
