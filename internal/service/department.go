package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
)

// CreateDepartmentInput is the payload for creating a department. The id is
// caller-chosen and becomes the document key.
type CreateDepartmentInput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Director    string `json:"director"`
	Description string `json:"description"`
}

// UpdateDepartmentInput is a partial payload; nil fields are left untouched.
type UpdateDepartmentInput struct {
	Name        *string `json:"name"`
	Director    *string `json:"director"`
	Description *string `json:"description"`
}

func (in UpdateDepartmentInput) empty() bool {
	return in.Name == nil && in.Director == nil && in.Description == nil
}

// DepartmentService defines the department use cases.
type DepartmentService interface {
	List(ctx context.Context) ([]model.Department, error)
	Get(ctx context.Context, id string) (*model.Department, error)
	Create(ctx context.Context, in CreateDepartmentInput) (*model.Department, error)
	Update(ctx context.Context, id string, in UpdateDepartmentInput) error
	Delete(ctx context.Context, id string) error
}

type departmentService struct {
	repo repository.DepartmentRepository
}

// NewDepartmentService constructs a DepartmentService.
func NewDepartmentService(repo repository.DepartmentRepository) DepartmentService {
	return &departmentService{repo: repo}
}

func (s *departmentService) List(ctx context.Context) ([]model.Department, error) {
	return s.repo.List(ctx)
}

func (s *departmentService) Get(ctx context.Context, id string) (*model.Department, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundf("department with ID %s not found", id)
		}
		return nil, err
	}
	return d, nil
}

func (s *departmentService) Create(ctx context.Context, in CreateDepartmentInput) (*model.Department, error) {
	if isBlank(in.ID) || isBlank(in.Name) || isBlank(in.Director) || isBlank(in.Description) {
		return nil, validationf("id, name, director and description are required to create a department")
	}

	exists, err := s.repo.Exists(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflictf("department with ID %s already exists", in.ID)
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &model.Department{
		ID:          in.ID,
		Name:        in.Name,
		Director:    in.Director,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *departmentService) Update(ctx context.Context, id string, in UpdateDepartmentInput) error {
	if in.empty() {
		return validationf("no data provided to update")
	}
	err := s.repo.Update(ctx, id, repository.DepartmentPatch{
		Name:        in.Name,
		Director:    in.Director,
		Description: in.Description,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("department with ID %s not found", id)
	}
	return err
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("department with ID %s not found", id)
	}
	return err
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
