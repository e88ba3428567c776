package model

import "time"

// Document represents a stored file in the system. The object itself lives
// in the S3-compatible bucket under StoragePath; this row is its metadata.
type Document struct {
	ID             string    `json:"id"`
	InspectorID    *string   `json:"inspector_id,omitempty"`
	DocumentTypeID *string   `json:"document_type_id,omitempty"`
	Filename       string    `json:"filename"`
	StoragePath    string    `json:"storage_path"`
	Size           int64     `json:"size"`
	ContentType    string    `json:"content_type"`
	CreatedAt      time.Time `json:"created_at"`
}

// DocumentType is a named category tag documents are classified under.
type DocumentType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
