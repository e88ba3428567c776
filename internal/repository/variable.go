package repository

import (
	"context"

	"leadinspect/internal/model"
)

// GeneralVariableRepository defines data access for global variables.
type GeneralVariableRepository interface {
	// List returns all general variables ordered by name.
	List(ctx context.Context) ([]model.GeneralVariable, error)

	// Upsert inserts or updates the variable keyed by name.
	Upsert(ctx context.Context, v *model.GeneralVariable) (*model.GeneralVariable, error)

	// Delete removes one variable by name.
	// Returns sql.ErrNoRows if no such variable exists.
	Delete(ctx context.Context, name string) error
}
