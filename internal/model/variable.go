package model

import "time"

// GeneralVariable is a globally named value not tied to any inspector.
// name is unique; writes are upserts.
type GeneralVariable struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
