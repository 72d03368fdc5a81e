package repository

import (
	"context"

	"colegioapi/internal/model"
)

// EnrollmentRepository defines persistence for subject enrollments, keyed
// by a system-generated id.
type EnrollmentRepository interface {
	Create(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error)
	FindByID(ctx context.Context, id string) (*model.Enrollment, error)
	List(ctx context.Context) ([]model.Enrollment, error)
	// Update merges the patch; sql.ErrNoRows when the id is unknown.
	Update(ctx context.Context, id string, p EnrollmentPatch) error
	Delete(ctx context.Context, id string) error

	// TupleExists reports whether an enrollment already matches all four
	// uniqueness fields.
	TupleExists(ctx context.Context, subjectID, studentID string, semester int, group string) (bool, error)
}

// EnrollmentPatch carries the fields an update may change.
type EnrollmentPatch struct {
	Group              *string
	EnrollmentSemester *int
	StudentNames       *string
	StudentSurnames    *string
	StudentEmail       *string
	SubjectName        *string
}
