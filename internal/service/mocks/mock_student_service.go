package mocks

import (
	"context"

	"colegioapi/internal/model"
	"colegioapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) List(ctx context.Context) ([]model.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentService) Get(ctx context.Context, documentNumber string) (*model.Student, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentService) Create(ctx context.Context, in service.CreateStudentInput) (*model.Student, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentService) Update(ctx context.Context, documentNumber string, in service.UpdateStudentInput) error {
	args := m.Called(ctx, documentNumber, in)
	return args.Error(0)
}

func (m *MockStudentService) Delete(ctx context.Context, documentNumber string) error {
	args := m.Called(ctx, documentNumber)
	return args.Error(0)
}

func (m *MockStudentService) Search(ctx context.Context, in service.SearchStudentsInput) ([]model.Student, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentService) Faculties(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStudentService) DocumentTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
