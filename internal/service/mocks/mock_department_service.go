package mocks

import (
	"context"

	"colegioapi/internal/model"
	"colegioapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDepartmentService struct {
	mock.Mock
}

func (m *MockDepartmentService) List(ctx context.Context) ([]model.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Department), args.Error(1)
}

func (m *MockDepartmentService) Get(ctx context.Context, id string) (*model.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *MockDepartmentService) Create(ctx context.Context, in service.CreateDepartmentInput) (*model.Department, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *MockDepartmentService) Update(ctx context.Context, id string, in service.UpdateDepartmentInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockDepartmentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
