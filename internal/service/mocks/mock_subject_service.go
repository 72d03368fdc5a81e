package mocks

import (
	"context"

	"colegioapi/internal/model"
	"colegioapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockSubjectService struct {
	mock.Mock
}

func (m *MockSubjectService) List(ctx context.Context) ([]model.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

func (m *MockSubjectService) Get(ctx context.Context, code string) (*model.Subject, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *MockSubjectService) Create(ctx context.Context, in service.CreateSubjectInput) (*model.Subject, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *MockSubjectService) Update(ctx context.Context, code string, in service.UpdateSubjectInput) error {
	args := m.Called(ctx, code, in)
	return args.Error(0)
}

func (m *MockSubjectService) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}
