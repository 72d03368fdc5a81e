package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
)

// CreateEnrollmentInput is the payload for enrolling a student into a
// subject. The name/email fields are snapshots captured at enrollment time.
type CreateEnrollmentInput struct {
	SubjectID          string         `json:"subjectId"`
	StudentID          string         `json:"studentId"`
	Group              string         `json:"group"`
	EnrollmentSemester *model.FlexInt `json:"enrollmentSemester"`
	StudentNames       string         `json:"studentNames"`
	StudentSurnames    string         `json:"studentSurnames"`
	StudentEmail       string         `json:"studentEmail"`
	SubjectName        string         `json:"subjectName"`
}

// UpdateEnrollmentInput is a partial payload; nil fields are left untouched.
type UpdateEnrollmentInput struct {
	Group              *string        `json:"group"`
	EnrollmentSemester *model.FlexInt `json:"enrollmentSemester"`
	StudentNames       *string        `json:"studentNames"`
	StudentSurnames    *string        `json:"studentSurnames"`
	StudentEmail       *string        `json:"studentEmail"`
	SubjectName        *string        `json:"subjectName"`
}

func (in UpdateEnrollmentInput) empty() bool {
	return in.Group == nil && in.EnrollmentSemester == nil && in.StudentNames == nil &&
		in.StudentSurnames == nil && in.StudentEmail == nil && in.SubjectName == nil
}

// EnrollmentService defines the enrollment use cases.
type EnrollmentService interface {
	List(ctx context.Context) ([]model.Enrollment, error)
	Get(ctx context.Context, id string) (*model.Enrollment, error)
	Create(ctx context.Context, in CreateEnrollmentInput) (*model.Enrollment, error)
	Update(ctx context.Context, id string, in UpdateEnrollmentInput) error
	Delete(ctx context.Context, id string) error
}

type enrollmentService struct {
	repo     repository.EnrollmentRepository
	subjects repository.SubjectRepository
	students repository.StudentRepository
}

// NewEnrollmentService constructs an EnrollmentService. The subject and
// student repositories are only consulted for existence checks.
func NewEnrollmentService(repo repository.EnrollmentRepository, subjects repository.SubjectRepository, students repository.StudentRepository) EnrollmentService {
	return &enrollmentService{repo: repo, subjects: subjects, students: students}
}

func (s *enrollmentService) List(ctx context.Context) ([]model.Enrollment, error) {
	return s.repo.List(ctx)
}

func (s *enrollmentService) Get(ctx context.Context, id string) (*model.Enrollment, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundf("enrollment with ID %s not found", id)
		}
		return nil, err
	}
	return e, nil
}

func (s *enrollmentService) Create(ctx context.Context, in CreateEnrollmentInput) (*model.Enrollment, error) {
	if isBlank(in.SubjectID) || isBlank(in.StudentID) || isBlank(in.Group) || in.EnrollmentSemester == nil ||
		isBlank(in.StudentNames) || isBlank(in.StudentSurnames) || isBlank(in.StudentEmail) || isBlank(in.SubjectName) {
		return nil, validationf("subjectId, studentId, group, enrollmentSemester, studentNames, studentSurnames, studentEmail and subjectName are required to enroll a student")
	}
	semester := in.EnrollmentSemester.Int()

	// The two reference checks are independent reads; run them concurrently.
	type existence struct {
		ok  bool
		err error
	}
	studentCh := make(chan existence, 1)
	go func() {
		ok, err := s.students.Exists(ctx, in.StudentID)
		studentCh <- existence{ok: ok, err: err}
	}()
	subjectOK, subjectErr := s.subjects.Exists(ctx, in.SubjectID)
	student := <-studentCh

	if subjectErr != nil {
		return nil, subjectErr
	}
	if !subjectOK {
		return nil, notFoundf("subject with ID %s not found", in.SubjectID)
	}
	if student.err != nil {
		return nil, student.err
	}
	if !student.ok {
		return nil, notFoundf("student with ID %s not found", in.StudentID)
	}

	taken, err := s.repo.TupleExists(ctx, in.SubjectID, in.StudentID, semester, in.Group)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflictf("student is already enrolled in this subject, semester and group")
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &model.Enrollment{
		ID:                 uuid.NewString(),
		SubjectID:          in.SubjectID,
		StudentID:          in.StudentID,
		Group:              in.Group,
		EnrollmentSemester: semester,
		StudentNames:       in.StudentNames,
		StudentSurnames:    in.StudentSurnames,
		StudentEmail:       in.StudentEmail,
		SubjectName:        in.SubjectName,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
}

func (s *enrollmentService) Update(ctx context.Context, id string, in UpdateEnrollmentInput) error {
	if in.empty() {
		return validationf("no data provided to update")
	}
	patch := repository.EnrollmentPatch{
		Group:           in.Group,
		StudentNames:    in.StudentNames,
		StudentSurnames: in.StudentSurnames,
		StudentEmail:    in.StudentEmail,
		SubjectName:     in.SubjectName,
	}
	if in.EnrollmentSemester != nil {
		v := in.EnrollmentSemester.Int()
		patch.EnrollmentSemester = &v
	}
	err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("enrollment with ID %s not found", id)
	}
	return err
}

func (s *enrollmentService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("enrollment with ID %s not found", id)
	}
	return err
}
