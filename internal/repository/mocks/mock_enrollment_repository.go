package mocks

import (
	"context"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindByID(ctx context.Context, id string) (*model.Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) List(ctx context.Context) ([]model.Enrollment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) Update(ctx context.Context, id string, p repository.EnrollmentPatch) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) TupleExists(ctx context.Context, subjectID, studentID string, semester int, group string) (bool, error) {
	args := m.Called(ctx, subjectID, studentID, semester, group)
	return args.Bool(0), args.Error(1)
}
