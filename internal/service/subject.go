package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
)

// CreateSubjectInput is the payload for creating a subject. Semester and
// credits accept both numeric and string forms.
type CreateSubjectInput struct {
	Code         string         `json:"code"`
	Name         string         `json:"name"`
	Semester     *model.FlexInt `json:"semester"`
	Credits      *model.FlexInt `json:"credits"`
	DepartmentID string         `json:"departmentId"`
}

// UpdateSubjectInput is a partial payload; nil fields are left untouched.
type UpdateSubjectInput struct {
	Name         *string        `json:"name"`
	Semester     *model.FlexInt `json:"semester"`
	Credits      *model.FlexInt `json:"credits"`
	DepartmentID *string        `json:"departmentId"`
}

func (in UpdateSubjectInput) empty() bool {
	return in.Name == nil && in.Semester == nil && in.Credits == nil && in.DepartmentID == nil
}

// SubjectService defines the subject use cases.
type SubjectService interface {
	List(ctx context.Context) ([]model.Subject, error)
	Get(ctx context.Context, code string) (*model.Subject, error)
	Create(ctx context.Context, in CreateSubjectInput) (*model.Subject, error)
	Update(ctx context.Context, code string, in UpdateSubjectInput) error
	Delete(ctx context.Context, code string) error
}

type subjectService struct {
	repo repository.SubjectRepository
}

// NewSubjectService constructs a SubjectService.
func NewSubjectService(repo repository.SubjectRepository) SubjectService {
	return &subjectService{repo: repo}
}

func (s *subjectService) List(ctx context.Context) ([]model.Subject, error) {
	return s.repo.List(ctx)
}

func (s *subjectService) Get(ctx context.Context, code string) (*model.Subject, error) {
	subj, err := s.repo.FindByID(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundf("subject with code %s not found", code)
		}
		return nil, err
	}
	return subj, nil
}

func (s *subjectService) Create(ctx context.Context, in CreateSubjectInput) (*model.Subject, error) {
	if isBlank(in.Code) || isBlank(in.Name) || in.Semester == nil || in.Credits == nil || isBlank(in.DepartmentID) {
		return nil, validationf("code, name, semester, credits and departmentId are required to create a subject")
	}

	exists, err := s.repo.Exists(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflictf("subject with code %s already exists", in.Code)
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &model.Subject{
		ID:           in.Code,
		Name:         in.Name,
		Semester:     in.Semester.Int(),
		Credits:      in.Credits.Int(),
		DepartmentID: in.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *subjectService) Update(ctx context.Context, code string, in UpdateSubjectInput) error {
	if in.empty() {
		return validationf("no data provided to update")
	}
	patch := repository.SubjectPatch{
		Name:         in.Name,
		DepartmentID: in.DepartmentID,
	}
	if in.Semester != nil {
		v := in.Semester.Int()
		patch.Semester = &v
	}
	if in.Credits != nil {
		v := in.Credits.Int()
		patch.Credits = &v
	}
	err := s.repo.Update(ctx, code, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("subject with code %s not found", code)
	}
	return err
}

func (s *subjectService) Delete(ctx context.Context, code string) error {
	err := s.repo.Delete(ctx, code)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("subject with code %s not found", code)
	}
	return err
}
