package service

import "errors"

// Package service contains the use-case layer between HTTP handlers and the
// repositories/storage. Validation and cross-resource orchestration live
// here; SQL and object-store calls do not.

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNameRequired = errors.New("name is required")
	ErrKeyRequired  = errors.New("key is required")
	ErrKeyInvalid   = errors.New("key is invalid")
	ErrNotFound     = errors.New("resource not found")
	ErrReaderNil    = errors.New("reader is nil")
)
