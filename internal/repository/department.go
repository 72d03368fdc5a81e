package repository

import (
	"context"

	"colegioapi/internal/model"
)

// DepartmentRepository defines persistence for departments. No business
// logic here; validation and error taxonomy belong to the service layer.
type DepartmentRepository interface {
	// Create inserts a new department and returns the stored record.
	Create(ctx context.Context, d *model.Department) (*model.Department, error)

	// FindByID returns a department by its key, sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id string) (*model.Department, error)

	// Exists reports whether a department with the given key is stored.
	Exists(ctx context.Context, id string) (bool, error)

	// List returns every department in the collection.
	List(ctx context.Context) ([]model.Department, error)

	// Update applies the patch as a merge in a single conditional write.
	// Returns sql.ErrNoRows when no department has the key.
	Update(ctx context.Context, id string, p DepartmentPatch) error

	// Delete removes a department. Returns sql.ErrNoRows when absent.
	Delete(ctx context.Context, id string) error
}

// DepartmentPatch carries the fields an update may change.
type DepartmentPatch struct {
	Name        *string
	Director    *string
	Description *string
}
