package model

import "time"

// Inspector is a person record associated with variable values and documents.
type Inspector struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	LicenseNumber *string   `json:"license_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InspectorVariable is a named value attached to one inspector.
// (inspector_id, name) is unique; writes are upserts.
type InspectorVariable struct {
	ID          string    `json:"id"`
	InspectorID string    `json:"inspector_id"`
	Name        string    `json:"name"`
	Value       string    `json:"value"`
	UpdatedAt   time.Time `json:"updated_at"`
}
