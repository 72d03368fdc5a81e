package repository

import (
	"context"

	"colegioapi/internal/model"
)

// StudentSearchFilter is a conjunction of optional filters. Name is a
// prefix match (range scan), the other two are exact equality.
type StudentSearchFilter struct {
	FirstName    string
	Faculty      string
	DocumentType string
}

// StudentRepository defines persistence for students, keyed by document
// number.
type StudentRepository interface {
	Create(ctx context.Context, s *model.Student) (*model.Student, error)
	FindByID(ctx context.Context, documentNumber string) (*model.Student, error)
	Exists(ctx context.Context, documentNumber string) (bool, error)
	List(ctx context.Context) ([]model.Student, error)
	// Update merges the patch; sql.ErrNoRows when the key is unknown.
	Update(ctx context.Context, documentNumber string, p StudentPatch) error
	Delete(ctx context.Context, documentNumber string) error

	// Search applies the filter conjunction; an empty result is not an error.
	Search(ctx context.Context, f StudentSearchFilter) ([]model.Student, error)

	// FindBySubject returns the identity projection of every student whose
	// enrolledSubjects collection contains the subject id.
	FindBySubject(ctx context.Context, subjectID string) ([]model.StudentSummary, error)

	// DistinctFaculties and DistinctDocumentTypes back the filter dropdowns.
	DistinctFaculties(ctx context.Context) ([]string, error)
	DistinctDocumentTypes(ctx context.Context) ([]string, error)
}

// StudentPatch carries the fields an update may change.
type StudentPatch struct {
	DocumentType     *string
	FirstName        *string
	SecondName       *string
	FirstSurname     *string
	SecondSurname    *string
	Faculty          *string
	Program          *string
	BirthDate        *string
	Gender           *string
	Semester         *int
	Average          *float64
	Email            *string
	Phone            *string
	Address          *string
	Status           *string
	EnrolledSubjects *[]string
}
