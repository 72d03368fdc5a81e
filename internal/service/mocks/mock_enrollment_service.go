package mocks

import (
	"context"

	"colegioapi/internal/model"
	"colegioapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockEnrollmentService struct {
	mock.Mock
}

func (m *MockEnrollmentService) List(ctx context.Context) ([]model.Enrollment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentService) Get(ctx context.Context, id string) (*model.Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentService) Create(ctx context.Context, in service.CreateEnrollmentInput) (*model.Enrollment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentService) Update(ctx context.Context, id string, in service.UpdateEnrollmentInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockEnrollmentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
