package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"leadinspect/internal/storage"
)

// DefaultPresignExpiry bounds how long presigned download URLs stay valid.
const DefaultPresignExpiry = 15 * time.Minute

// FileService proxies raw object-store access for caller-chosen keys.
// Unlike DocumentService it does not track metadata rows; the key is the
// caller's contract.
type FileService interface {
	// Upload stores the content under the given key verbatim.
	Upload(ctx context.Context, r io.Reader, key, contentType string, size int64) (storage.ObjectInfo, error)

	// Download streams the object's content along with its info.
	Download(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)

	// Presign returns a time-limited URL for downloading the object.
	Presign(ctx context.Context, key string) (string, error)
}

type fileService struct {
	store storage.Storage
}

// NewFileService constructs a new FileService.
func NewFileService(store storage.Storage) FileService {
	return &fileService{store: store}
}

// storageNotFound reports whether err is the backend's missing-object error.
// The S3 API surfaces it as an ErrorResponse with code NoSuchKey.
func storageNotFound(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

// validKey rejects empty, absolute, and traversal-shaped keys.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}

func (s *fileService) Upload(ctx context.Context, r io.Reader, key, contentType string, size int64) (storage.ObjectInfo, error) {
	if r == nil {
		return storage.ObjectInfo{}, ErrReaderNil
	}
	if !validKey(key) {
		return storage.ObjectInfo{}, ErrKeyInvalid
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
	})
}

func (s *fileService) Download(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	if !validKey(key) {
		return nil, storage.ObjectInfo{}, ErrKeyInvalid
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		if storageNotFound(err) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, err
	}
	return rc, info, nil
}

func (s *fileService) Presign(ctx context.Context, key string) (string, error) {
	if !validKey(key) {
		return "", ErrKeyInvalid
	}
	u, err := s.store.PresignGet(ctx, key, DefaultPresignExpiry)
	if err != nil {
		if storageNotFound(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return u, nil
}
