package repository

import (
	"context"

	"colegioapi/internal/model"
)

// SubjectRepository defines persistence for subjects, keyed by subject code.
type SubjectRepository interface {
	Create(ctx context.Context, s *model.Subject) (*model.Subject, error)
	FindByID(ctx context.Context, code string) (*model.Subject, error)
	Exists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context) ([]model.Subject, error)
	// Update merges the patch; sql.ErrNoRows when the code is unknown.
	Update(ctx context.Context, code string, p SubjectPatch) error
	Delete(ctx context.Context, code string) error
}

// SubjectPatch carries the fields an update may change.
type SubjectPatch struct {
	Name         *string
	Semester     *int
	Credits      *int
	DepartmentID *string
}
