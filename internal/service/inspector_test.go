package service

import (
	"context"
	"database/sql"
	"testing"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
	repoMocks "leadinspect/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInspectorService_Create(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockInspectorRepository)
	svc := NewInspectorService(mRepo, new(repoMocks.MockInspectorVariableRepository))

	t.Run("success", func(t *testing.T) {
		email := "jane@example.com"
		mRepo.On("Create", ctx, mock.MatchedBy(func(ins *model.Inspector) bool {
			return ins.ID != "" && ins.Name == "Jane Doe" && ins.Email != nil && *ins.Email == email
		})).Return(&model.Inspector{ID: "gen-id", Name: "Jane Doe"}, nil).Once()

		out, err := svc.Create(ctx, InspectorInput{Name: "Jane Doe", Email: &email})
		assert.NoError(t, err)
		assert.Equal(t, "gen-id", out.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Create(ctx, InspectorInput{})
		assert.ErrorIs(t, err, ErrNameRequired)
	})
}

func TestInspectorService_GetUpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("get translates missing row", func(t *testing.T) {
		mRepo := new(repoMocks.MockInspectorRepository)
		svc := NewInspectorService(mRepo, new(repoMocks.MockInspectorVariableRepository))

		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		_, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update translates missing row", func(t *testing.T) {
		mRepo := new(repoMocks.MockInspectorRepository)
		svc := NewInspectorService(mRepo, new(repoMocks.MockInspectorVariableRepository))

		mRepo.On("Update", ctx, mock.Anything).Return(nil, sql.ErrNoRows)
		_, err := svc.Update(ctx, "missing", InspectorInput{Name: "Nobody"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete checks existence first", func(t *testing.T) {
		mRepo := new(repoMocks.MockInspectorRepository)
		svc := NewInspectorService(mRepo, new(repoMocks.MockInspectorVariableRepository))

		mRepo.On("FindByID", ctx, "ins-1").Return(&model.Inspector{ID: "ins-1"}, nil)
		mRepo.On("Delete", ctx, "ins-1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "ins-1"))
		mRepo.AssertExpectations(t)
	})

	t.Run("delete missing", func(t *testing.T) {
		mRepo := new(repoMocks.MockInspectorRepository)
		svc := NewInspectorService(mRepo, new(repoMocks.MockInspectorVariableRepository))

		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
		mRepo.AssertNotCalled(t, "Delete", ctx, "missing")
	})
}

func TestInspectorService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockInspectorRepository)
	svc := NewInspectorService(mRepo, new(repoMocks.MockInspectorVariableRepository))

	mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.Inspector]{
			Items: []model.Inspector{{ID: "ins-1", Name: "Alice"}},
			Total: 1,
		}, nil)

	res, err := svc.List(ctx, 0, -1)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "Alice", res.Items[0].Name)
}

func TestInspectorService_Variables(t *testing.T) {
	ctx := context.Background()

	t.Run("set requires existing inspector", func(t *testing.T) {
		mRepo := new(repoMocks.MockInspectorRepository)
		mVars := new(repoMocks.MockInspectorVariableRepository)
		svc := NewInspectorService(mRepo, mVars)

		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		_, err := svc.SetVariable(ctx, "missing", "certification_date", "2024-01-15")
		assert.ErrorIs(t, err, ErrNotFound)
		mVars.AssertNotCalled(t, "Upsert", ctx, mock.Anything)
	})

	t.Run("set upserts", func(t *testing.T) {
		mRepo := new(repoMocks.MockInspectorRepository)
		mVars := new(repoMocks.MockInspectorVariableRepository)
		svc := NewInspectorService(mRepo, mVars)

		mRepo.On("FindByID", ctx, "ins-1").Return(&model.Inspector{ID: "ins-1"}, nil)
		mVars.On("Upsert", ctx, mock.MatchedBy(func(v *model.InspectorVariable) bool {
			return v.InspectorID == "ins-1" && v.Name == "certification_date" && v.Value == "2024-01-15"
		})).Return(&model.InspectorVariable{ID: "var-1", Value: "2024-01-15"}, nil)

		out, err := svc.SetVariable(ctx, "ins-1", "certification_date", "2024-01-15")
		assert.NoError(t, err)
		assert.Equal(t, "2024-01-15", out.Value)
	})

	t.Run("delete missing variable", func(t *testing.T) {
		mRepo := new(repoMocks.MockInspectorRepository)
		mVars := new(repoMocks.MockInspectorVariableRepository)
		svc := NewInspectorService(mRepo, mVars)

		mVars.On("Delete", ctx, "ins-1", "nope").Return(sql.ErrNoRows)
		assert.ErrorIs(t, svc.DeleteVariable(ctx, "ins-1", "nope"), ErrNotFound)
	})

	t.Run("list requires existing inspector", func(t *testing.T) {
		mRepo := new(repoMocks.MockInspectorRepository)
		mVars := new(repoMocks.MockInspectorVariableRepository)
		svc := NewInspectorService(mRepo, mVars)

		mRepo.On("FindByID", ctx, "ins-1").Return(&model.Inspector{ID: "ins-1"}, nil)
		mVars.On("ListByInspector", ctx, "ins-1").
			Return([]model.InspectorVariable{{Name: "signature_key"}}, nil)

		items, err := svc.ListVariables(ctx, "ins-1")
		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})
}
