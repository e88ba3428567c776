package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"leadinspect/internal/model"
	"leadinspect/internal/repository"
	repoMocks "leadinspect/internal/repository/mocks"
	"leadinspect/internal/storage"
	storeMocks "leadinspect/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()
	inspectorID := "ins-1"

	tests := []struct {
		name       string
		upload     DocumentUpload
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			upload: DocumentUpload{
				OriginalFilename: "report.pdf",
				ContentType:      "application/pdf",
				Size:             11,
				InspectorID:      &inspectorID,
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				r := strings.NewReader("hello world")
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "documents/") && strings.HasSuffix(key, ".pdf")
				}), r, storage.PutObjectOptions{
					Size:        11,
					ContentType: "application/pdf",
					Metadata:    map[string]string{"original-filename": "report.pdf"},
				}).Return(storage.ObjectInfo{
					Key:         "documents/uuid.pdf",
					Size:        11,
					ContentType: "application/pdf",
				}, nil)

				mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.Filename != "" &&
						doc.StoragePath == "documents/uuid.pdf" &&
						doc.InspectorID != nil && *doc.InspectorID == inspectorID
				})).Return(&model.Document{ID: "gen-id"}, nil)

				return r
			},
			wantErr: nil,
		},
		{
			name:   "validation error - nil reader",
			upload: DocumentUpload{OriginalFilename: "report.pdf"},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:   "storage error",
			upload: DocumentUpload{OriginalFilename: "report.pdf", Size: 5},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:   "db error rolls back storage",
			upload: DocumentUpload{OriginalFilename: "report.pdf", Size: 5},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{Key: "documents/uuid.pdf", Size: 5}, nil)
				mRepo.On("Create", ctx, mock.Anything).
					Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "documents/")
				})).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDocumentRepository)
			svc := NewDocumentService(mStore, mRepo)

			up := tt.upload
			up.Reader = tt.setupMocks(mStore, mRepo)

			doc, err := svc.Upload(ctx, up)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, doc)
			} else if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, doc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, doc)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockDocumentRepository)
	svc := NewDocumentService(new(storeMocks.MockStorage), mRepo)

	t.Run("defaults applied", func(t *testing.T) {
		mRepo.On("List", ctx, repository.DocumentFilter{}, repository.PageQuery{Limit: 10, Offset: 0}).
			Return(&repository.PageResult[model.Document]{Items: []model.Document{}, Total: 0}, nil).Once()

		res, err := svc.List(ctx, repository.DocumentFilter{}, 0, -5)
		assert.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		mRepo.AssertExpectations(t)
	})

	t.Run("filter forwarded", func(t *testing.T) {
		f := repository.DocumentFilter{InspectorID: "ins-1"}
		mRepo.On("List", ctx, f, repository.PageQuery{Limit: 5, Offset: 10}).
			Return(&repository.PageResult[model.Document]{Items: []model.Document{{ID: "d1"}}, Total: 1}, nil).Once()

		res, err := svc.List(ctx, f, 5, 10)
		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
		mRepo.AssertExpectations(t)
	})
}

func TestDocumentService_Get(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockDocumentRepository)
	svc := NewDocumentService(new(storeMocks.MockStorage), mRepo)

	t.Run("found", func(t *testing.T) {
		mRepo.On("FindByID", ctx, "doc-1").Return(&model.Document{ID: "doc-1"}, nil).Once()
		doc, err := svc.Get(ctx, "doc-1")
		assert.NoError(t, err)
		assert.Equal(t, "doc-1", doc.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows).Once()
		doc, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, doc)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.Get(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestDocumentService_UpdateMeta(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockDocumentRepository)
	svc := NewDocumentService(new(storeMocks.MockStorage), mRepo)

	t.Run("success", func(t *testing.T) {
		mRepo.On("UpdateMeta", ctx, mock.MatchedBy(func(doc *model.Document) bool {
			return doc.ID == "doc-1" && doc.Filename == "renamed.pdf"
		})).Return(&model.Document{ID: "doc-1", Filename: "renamed.pdf"}, nil).Once()

		out, err := svc.UpdateMeta(ctx, "doc-1", DocumentMeta{Filename: "renamed.pdf"})
		assert.NoError(t, err)
		assert.Equal(t, "renamed.pdf", out.Filename)
	})

	t.Run("missing filename", func(t *testing.T) {
		_, err := svc.UpdateMeta(ctx, "doc-1", DocumentMeta{})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo.On("UpdateMeta", ctx, mock.Anything).Return(nil, sql.ErrNoRows).Once()
		_, err := svc.UpdateMeta(ctx, "missing", DocumentMeta{Filename: "x.pdf"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes object then row", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "doc-1").
			Return(&model.Document{ID: "doc-1", StoragePath: "documents/uuid.pdf"}, nil)
		mStore.On("Delete", ctx, "documents/uuid.pdf").Return(nil)
		mRepo.On("Delete", ctx, "doc-1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "doc-1"))
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("keeps row when storage delete fails", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "doc-1").
			Return(&model.Document{ID: "doc-1", StoragePath: "documents/uuid.pdf"}, nil)
		mStore.On("Delete", ctx, "documents/uuid.pdf").Return(errors.New("storage down"))

		err := svc.Delete(ctx, "doc-1")
		assert.ErrorContains(t, err, "delete storage")
		mRepo.AssertNotCalled(t, "Delete", ctx, "doc-1")
	})

	t.Run("not found", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
	})
}
