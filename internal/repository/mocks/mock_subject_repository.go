package mocks

import (
	"context"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) Create(ctx context.Context, s *model.Subject) (*model.Subject, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *MockSubjectRepository) FindByID(ctx context.Context, code string) (*model.Subject, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *MockSubjectRepository) Exists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubjectRepository) List(ctx context.Context) ([]model.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

func (m *MockSubjectRepository) Update(ctx context.Context, code string, p repository.SubjectPatch) error {
	args := m.Called(ctx, code, p)
	return args.Error(0)
}

func (m *MockSubjectRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}
