package mocks

import (
	"context"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(ctx context.Context, s *model.AttendanceSession) (*model.AttendanceSession, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttendanceSession), args.Error(1)
}

func (m *MockAttendanceRepository) FindByID(ctx context.Context, id string) (*model.AttendanceSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttendanceSession), args.Error(1)
}

func (m *MockAttendanceRepository) List(ctx context.Context) ([]model.AttendanceSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AttendanceSession), args.Error(1)
}

func (m *MockAttendanceRepository) Update(ctx context.Context, id string, p repository.SessionPatch) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockAttendanceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttendanceRepository) Search(ctx context.Context, f repository.SessionSearchFilter) ([]model.AttendanceSession, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AttendanceSession), args.Error(1)
}

func (m *MockAttendanceRepository) MergeRecords(ctx context.Context, id string, records map[string]bool) (map[string]bool, error) {
	args := m.Called(ctx, id, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockAttendanceRepository) SetRecord(ctx context.Context, id, studentID string) error {
	args := m.Called(ctx, id, studentID)
	return args.Error(0)
}

func (m *MockAttendanceRepository) RemoveRecord(ctx context.Context, id, studentID string) error {
	args := m.Called(ctx, id, studentID)
	return args.Error(0)
}
