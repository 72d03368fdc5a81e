package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
	"colegioapi/internal/storage"
)

// reportURLExpiry bounds how long an exported report link stays valid.
const reportURLExpiry = 15 * time.Minute

// CreateSessionInput is the payload for creating an attendance session.
// Records must be present; an empty map is a valid initial roster.
type CreateSessionInput struct {
	SubjectID   string          `json:"subjectId"`
	SubjectCode string          `json:"subjectCode"`
	SubjectName string          `json:"subjectName"`
	Date        string          `json:"date"`
	StartTime   string          `json:"startTime"`
	EndTime     string          `json:"endTime"`
	Semester    *model.FlexInt  `json:"semester"`
	Records     map[string]bool `json:"records"`
}

// UpdateSessionInput is a partial payload; nil fields are left untouched
// and a records entry merges into the stored map instead of replacing it.
type UpdateSessionInput struct {
	SubjectID   *string         `json:"subjectId"`
	SubjectCode *string         `json:"subjectCode"`
	SubjectName *string         `json:"subjectName"`
	Date        *string         `json:"date"`
	StartTime   *string         `json:"startTime"`
	EndTime     *string         `json:"endTime"`
	Semester    *model.FlexInt  `json:"semester"`
	Records     map[string]bool `json:"records"`
}

func (in UpdateSessionInput) empty() bool {
	return in.SubjectID == nil && in.SubjectCode == nil && in.SubjectName == nil &&
		in.Date == nil && in.StartTime == nil && in.EndTime == nil &&
		in.Semester == nil && in.Records == nil
}

// SearchSessionsInput is a conjunction of exact-match filters.
type SearchSessionsInput struct {
	SubjectCode string         `json:"subjectCode"`
	Semester    *model.FlexInt `json:"semester"`
	Date        string         `json:"date"`
}

// SessionReport locates an exported attendance report in object storage.
type SessionReport struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// AttendanceService defines the attendance session use cases.
type AttendanceService interface {
	List(ctx context.Context) ([]model.AttendanceSession, error)
	Get(ctx context.Context, id string) (*model.AttendanceSession, error)
	Create(ctx context.Context, in CreateSessionInput) (*model.AttendanceSession, error)
	Update(ctx context.Context, id string, in UpdateSessionInput) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, in SearchSessionsInput) ([]model.AttendanceSession, error)

	// RegisterAttendance merges the given records into the session map and
	// returns the merged result.
	RegisterAttendance(ctx context.Context, id string, records map[string]bool) (map[string]bool, error)

	// AddStudent and RemoveStudent mutate a single records key.
	AddStudent(ctx context.Context, id, studentID string) error
	RemoveStudent(ctx context.Context, id, studentID string) error

	// CandidateStudents lists the students enrolled in the session's subject.
	CandidateStudents(ctx context.Context, id string) ([]model.StudentSummary, error)

	// ExportReport renders the session roster as CSV, stores it and returns
	// a presigned download link.
	ExportReport(ctx context.Context, id string) (*SessionReport, error)
}

type attendanceService struct {
	repo     repository.AttendanceRepository
	students repository.StudentRepository
	store    storage.Storage
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(repo repository.AttendanceRepository, students repository.StudentRepository, store storage.Storage) AttendanceService {
	return &attendanceService{repo: repo, students: students, store: store}
}

func (s *attendanceService) List(ctx context.Context) ([]model.AttendanceSession, error) {
	return s.repo.List(ctx)
}

func (s *attendanceService) Get(ctx context.Context, id string) (*model.AttendanceSession, error) {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundf("attendance session with ID %s not found", id)
		}
		return nil, err
	}
	return session, nil
}

func (s *attendanceService) Create(ctx context.Context, in CreateSessionInput) (*model.AttendanceSession, error) {
	if isBlank(in.SubjectID) || isBlank(in.Date) || isBlank(in.StartTime) || isBlank(in.EndTime) ||
		isBlank(in.SubjectName) || in.Semester == nil || in.Records == nil {
		return nil, validationf("subjectId, date, startTime, endTime, subjectName, semester and records are required to create an attendance session")
	}

	code := in.SubjectCode
	if isBlank(code) {
		code = in.SubjectID
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &model.AttendanceSession{
		ID:          uuid.NewString(),
		SubjectID:   in.SubjectID,
		SubjectCode: code,
		SubjectName: in.SubjectName,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Semester:    in.Semester.Int(),
		Records:     in.Records,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *attendanceService) Update(ctx context.Context, id string, in UpdateSessionInput) error {
	if in.empty() {
		return validationf("no data provided to update")
	}
	patch := repository.SessionPatch{
		SubjectID:   in.SubjectID,
		SubjectCode: in.SubjectCode,
		SubjectName: in.SubjectName,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Records:     in.Records,
	}
	if in.Semester != nil {
		v := in.Semester.Int()
		patch.Semester = &v
	}
	err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("attendance session with ID %s not found", id)
	}
	return err
}

func (s *attendanceService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("attendance session with ID %s not found", id)
	}
	return err
}

func (s *attendanceService) Search(ctx context.Context, in SearchSessionsInput) ([]model.AttendanceSession, error) {
	f := repository.SessionSearchFilter{
		SubjectCode: in.SubjectCode,
		Date:        in.Date,
	}
	if in.Semester != nil {
		v := in.Semester.Int()
		f.Semester = &v
	}
	return s.repo.Search(ctx, f)
}

func (s *attendanceService) RegisterAttendance(ctx context.Context, id string, records map[string]bool) (map[string]bool, error) {
	if len(records) == 0 {
		return nil, validationf("no attendance records provided")
	}
	merged, err := s.repo.MergeRecords(ctx, id, records)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundf("attendance session with ID %s not found", id)
		}
		return nil, err
	}
	return merged, nil
}

func (s *attendanceService) AddStudent(ctx context.Context, id, studentID string) error {
	if isBlank(studentID) {
		return validationf("studentId is required")
	}
	err := s.repo.SetRecord(ctx, id, studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("attendance session with ID %s not found", id)
	}
	return err
}

func (s *attendanceService) RemoveStudent(ctx context.Context, id, studentID string) error {
	if isBlank(studentID) {
		return validationf("studentId is required")
	}
	err := s.repo.RemoveRecord(ctx, id, studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("attendance session with ID %s not found", id)
	}
	return err
}

func (s *attendanceService) CandidateStudents(ctx context.Context, id string) ([]model.StudentSummary, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.students.FindBySubject(ctx, session.SubjectID)
}

// ExportReport reconciles the session's records with the candidate roster:
// every candidate appears with its presence flag, and record keys without a
// matching candidate are appended so no attendance entry is lost.
func (s *attendanceService) ExportReport(ctx context.Context, id string) (*SessionReport, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	candidates, err := s.students.FindBySubject(ctx, session.SubjectID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"documentNumber", "firstName", "firstSurname", "present"}); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		seen[c.ID] = true
		present, ok := session.Records[c.ID]
		if err := w.Write([]string{c.DocumentNumber, c.FirstName, c.FirstSurname, presenceCell(present, ok)}); err != nil {
			return nil, err
		}
	}
	extra := make([]string, 0)
	for studentID := range session.Records {
		if !seen[studentID] {
			extra = append(extra, studentID)
		}
	}
	sort.Strings(extra)
	for _, studentID := range extra {
		if err := w.Write([]string{studentID, "", "", strconv.FormatBool(session.Records[studentID])}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reports/%s-%s.csv", session.ID, time.Now().UTC().Format("20060102T150405"))
	if _, err := s.store.Put(ctx, key, &buf, storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: "text/csv",
		Metadata:    map[string]string{"session-id": session.ID, "subject-code": session.SubjectCode},
	}); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}
	url, err := s.store.PresignGet(ctx, key, reportURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign report: %w", err)
	}
	return &SessionReport{Key: key, URL: url}, nil
}

func presenceCell(present, recorded bool) string {
	if !recorded {
		return ""
	}
	return strconv.FormatBool(present)
}
