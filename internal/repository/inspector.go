package repository

import (
	"context"

	"leadinspect/internal/model"
)

// InspectorRepository defines data access for inspectors using SQL queries only.
// No business logic here — strictly persistence operations.
type InspectorRepository interface {
	// Create inserts a new inspector record and returns the stored row.
	Create(ctx context.Context, ins *model.Inspector) (*model.Inspector, error)

	// FindByID returns an inspector by its ID.
	FindByID(ctx context.Context, id string) (*model.Inspector, error)

	// List returns a paginated list of inspectors and total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Inspector], error)

	// Update rewrites the mutable fields of an inspector and returns the
	// stored row. Returns sql.ErrNoRows if the inspector does not exist.
	Update(ctx context.Context, ins *model.Inspector) (*model.Inspector, error)

	// Delete removes an inspector by ID. It returns nil if the row was
	// deleted or did not exist; dependent rows follow the FK actions.
	Delete(ctx context.Context, id string) error
}

// InspectorVariableRepository defines data access for per-inspector variables.
type InspectorVariableRepository interface {
	// ListByInspector returns all variables of one inspector, ordered by name.
	ListByInspector(ctx context.Context, inspectorID string) ([]model.InspectorVariable, error)

	// Upsert inserts or updates the variable keyed by (inspector_id, name).
	Upsert(ctx context.Context, v *model.InspectorVariable) (*model.InspectorVariable, error)

	// Delete removes one variable by inspector and name.
	// Returns sql.ErrNoRows if no such variable exists.
	Delete(ctx context.Context, inspectorID, name string) error
}
