package mocks

import (
	"context"

	"leadinspect/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDocumentTypeService struct {
	mock.Mock
}

func (m *MockDocumentTypeService) Create(ctx context.Context, name string) (*model.DocumentType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeService) List(ctx context.Context) ([]model.DocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentType), args.Error(1)
}

func (m *MockDocumentTypeService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGeneralVariableService struct {
	mock.Mock
}

func (m *MockGeneralVariableService) List(ctx context.Context) ([]model.GeneralVariable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeneralVariable), args.Error(1)
}

func (m *MockGeneralVariableService) Set(ctx context.Context, name, value string) (*model.GeneralVariable, error) {
	args := m.Called(ctx, name, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GeneralVariable), args.Error(1)
}

func (m *MockGeneralVariableService) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
