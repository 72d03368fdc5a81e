package mocks

import (
	"context"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, s *model.Student) (*model.Student, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByID(ctx context.Context, documentNumber string) (*model.Student, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) Exists(ctx context.Context, documentNumber string) (bool, error) {
	args := m.Called(ctx, documentNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentRepository) List(ctx context.Context) ([]model.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) Update(ctx context.Context, documentNumber string, p repository.StudentPatch) error {
	args := m.Called(ctx, documentNumber, p)
	return args.Error(0)
}

func (m *MockStudentRepository) Delete(ctx context.Context, documentNumber string) error {
	args := m.Called(ctx, documentNumber)
	return args.Error(0)
}

func (m *MockStudentRepository) Search(ctx context.Context, f repository.StudentSearchFilter) ([]model.Student, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) FindBySubject(ctx context.Context, subjectID string) ([]model.StudentSummary, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudentSummary), args.Error(1)
}

func (m *MockStudentRepository) DistinctFaculties(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStudentRepository) DistinctDocumentTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
