package mocks

import (
	"context"

	"colegioapi/internal/model"
	"colegioapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) List(ctx context.Context) ([]model.AttendanceSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AttendanceSession), args.Error(1)
}

func (m *MockAttendanceService) Get(ctx context.Context, id string) (*model.AttendanceSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttendanceSession), args.Error(1)
}

func (m *MockAttendanceService) Create(ctx context.Context, in service.CreateSessionInput) (*model.AttendanceSession, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttendanceSession), args.Error(1)
}

func (m *MockAttendanceService) Update(ctx context.Context, id string, in service.UpdateSessionInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockAttendanceService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttendanceService) Search(ctx context.Context, in service.SearchSessionsInput) ([]model.AttendanceSession, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AttendanceSession), args.Error(1)
}

func (m *MockAttendanceService) RegisterAttendance(ctx context.Context, id string, records map[string]bool) (map[string]bool, error) {
	args := m.Called(ctx, id, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockAttendanceService) AddStudent(ctx context.Context, id, studentID string) error {
	args := m.Called(ctx, id, studentID)
	return args.Error(0)
}

func (m *MockAttendanceService) RemoveStudent(ctx context.Context, id, studentID string) error {
	args := m.Called(ctx, id, studentID)
	return args.Error(0)
}

func (m *MockAttendanceService) CandidateStudents(ctx context.Context, id string) ([]model.StudentSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudentSummary), args.Error(1)
}

func (m *MockAttendanceService) ExportReport(ctx context.Context, id string) (*service.SessionReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionReport), args.Error(1)
}
