package repository

import (
	"context"

	"colegioapi/internal/model"
)

// SessionSearchFilter is a conjunction of exact-match filters.
type SessionSearchFilter struct {
	SubjectCode string
	Semester    *int
	Date        string
}

// AttendanceRepository defines persistence for attendance sessions, keyed
// by a system-generated id. The records map lives in a single document
// field; the three record mutators below never rewrite the whole map
// client-side.
type AttendanceRepository interface {
	Create(ctx context.Context, s *model.AttendanceSession) (*model.AttendanceSession, error)
	FindByID(ctx context.Context, id string) (*model.AttendanceSession, error)
	List(ctx context.Context) ([]model.AttendanceSession, error)
	// Update merges the patch; a Records entry in the patch merges into the
	// stored map rather than replacing it. sql.ErrNoRows when id is unknown.
	Update(ctx context.Context, id string, p SessionPatch) error
	Delete(ctx context.Context, id string) error

	Search(ctx context.Context, f SessionSearchFilter) ([]model.AttendanceSession, error)

	// MergeRecords shallow-merges the given entries into the records map and
	// returns the resulting map.
	MergeRecords(ctx context.Context, id string, records map[string]bool) (map[string]bool, error)

	// SetRecord marks a single student present via a targeted field-path
	// write (records.<studentID> = true).
	SetRecord(ctx context.Context, id, studentID string) error

	// RemoveRecord deletes a single key from the records map.
	RemoveRecord(ctx context.Context, id, studentID string) error
}

// SessionPatch carries the fields an update may change.
type SessionPatch struct {
	SubjectID   *string
	SubjectCode *string
	SubjectName *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Semester    *int
	Records     map[string]bool
}
