package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
)

// CreateStudentInput is the payload for creating a student. Only the five
// identity fields are required; everything else is optional and unknown
// fields in the request body are ignored.
type CreateStudentInput struct {
	DocumentNumber   string         `json:"documentNumber"`
	DocumentType     string         `json:"documentType"`
	FirstName        string         `json:"firstName"`
	SecondName       string         `json:"secondName"`
	FirstSurname     string         `json:"firstSurname"`
	SecondSurname    string         `json:"secondSurname"`
	Faculty          string         `json:"faculty"`
	Program          string         `json:"program"`
	BirthDate        string         `json:"birthDate"`
	Gender           string         `json:"gender"`
	Semester         *model.FlexInt `json:"semester"`
	Average          *float64       `json:"average"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Address          string         `json:"address"`
	Status           string         `json:"status"`
	EnrolledSubjects []string       `json:"enrolledSubjects"`
}

// UpdateStudentInput is a partial payload; nil fields are left untouched.
type UpdateStudentInput struct {
	DocumentType     *string        `json:"documentType"`
	FirstName        *string        `json:"firstName"`
	SecondName       *string        `json:"secondName"`
	FirstSurname     *string        `json:"firstSurname"`
	SecondSurname    *string        `json:"secondSurname"`
	Faculty          *string        `json:"faculty"`
	Program          *string        `json:"program"`
	BirthDate        *string        `json:"birthDate"`
	Gender           *string        `json:"gender"`
	Semester         *model.FlexInt `json:"semester"`
	Average          *float64       `json:"average"`
	Email            *string        `json:"email"`
	Phone            *string        `json:"phone"`
	Address          *string        `json:"address"`
	Status           *string        `json:"status"`
	EnrolledSubjects *[]string      `json:"enrolledSubjects"`
}

func (in UpdateStudentInput) empty() bool {
	return in.DocumentType == nil && in.FirstName == nil && in.SecondName == nil &&
		in.FirstSurname == nil && in.SecondSurname == nil && in.Faculty == nil &&
		in.Program == nil && in.BirthDate == nil && in.Gender == nil &&
		in.Semester == nil && in.Average == nil && in.Email == nil &&
		in.Phone == nil && in.Address == nil && in.Status == nil &&
		in.EnrolledSubjects == nil
}

// SearchStudentsInput is a conjunction of optional filters. FirstName is a
// prefix match; the other two are exact.
type SearchStudentsInput struct {
	FirstName    string `json:"firstName"`
	Faculty      string `json:"faculty"`
	DocumentType string `json:"documentType"`
}

// StudentService defines the student use cases.
type StudentService interface {
	List(ctx context.Context) ([]model.Student, error)
	Get(ctx context.Context, documentNumber string) (*model.Student, error)
	Create(ctx context.Context, in CreateStudentInput) (*model.Student, error)
	Update(ctx context.Context, documentNumber string, in UpdateStudentInput) error
	Delete(ctx context.Context, documentNumber string) error
	Search(ctx context.Context, in SearchStudentsInput) ([]model.Student, error)
	Faculties(ctx context.Context) ([]string, error)
	DocumentTypes(ctx context.Context) ([]string, error)
}

const (
	facultiesCacheKey     = "faculties"
	documentTypesCacheKey = "documentTypes"
)

type studentService struct {
	repo    repository.StudentRepository
	filters *gocache.Cache
}

// NewStudentService constructs a StudentService. The distinct filter values
// backing the search dropdowns are cached in process for ttl and dropped on
// every student mutation.
func NewStudentService(repo repository.StudentRepository, ttl time.Duration) StudentService {
	return &studentService{
		repo:    repo,
		filters: gocache.New(ttl, 2*ttl),
	}
}

func (s *studentService) List(ctx context.Context) ([]model.Student, error) {
	return s.repo.List(ctx)
}

func (s *studentService) Get(ctx context.Context, documentNumber string) (*model.Student, error) {
	st, err := s.repo.FindByID(ctx, documentNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundf("student with document number %s not found", documentNumber)
		}
		return nil, err
	}
	return st, nil
}

func (s *studentService) Create(ctx context.Context, in CreateStudentInput) (*model.Student, error) {
	if isBlank(in.DocumentNumber) || isBlank(in.FirstName) || isBlank(in.FirstSurname) ||
		isBlank(in.DocumentType) || isBlank(in.Faculty) {
		return nil, validationf("documentNumber, firstName, firstSurname, documentType and faculty are required to create a student")
	}

	exists, err := s.repo.Exists(ctx, in.DocumentNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflictf("student with document number %s already exists", in.DocumentNumber)
	}

	status := in.Status
	if isBlank(status) {
		status = model.StudentStatusActive
	}
	var semester int
	if in.Semester != nil {
		semester = in.Semester.Int()
	}
	var average float64
	if in.Average != nil {
		average = *in.Average
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &model.Student{
		ID:               in.DocumentNumber,
		DocumentNumber:   in.DocumentNumber,
		DocumentType:     in.DocumentType,
		FirstName:        in.FirstName,
		SecondName:       in.SecondName,
		FirstSurname:     in.FirstSurname,
		SecondSurname:    in.SecondSurname,
		Faculty:          in.Faculty,
		Program:          in.Program,
		BirthDate:        in.BirthDate,
		Gender:           in.Gender,
		Semester:         semester,
		Average:          average,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		Status:           status,
		EnrolledSubjects: in.EnrolledSubjects,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, err
	}
	s.dropFilterCache()
	return created, nil
}

func (s *studentService) Update(ctx context.Context, documentNumber string, in UpdateStudentInput) error {
	if in.empty() {
		return validationf("no data provided to update")
	}
	patch := repository.StudentPatch{
		DocumentType:     in.DocumentType,
		FirstName:        in.FirstName,
		SecondName:       in.SecondName,
		FirstSurname:     in.FirstSurname,
		SecondSurname:    in.SecondSurname,
		Faculty:          in.Faculty,
		Program:          in.Program,
		BirthDate:        in.BirthDate,
		Gender:           in.Gender,
		Average:          in.Average,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		Status:           in.Status,
		EnrolledSubjects: in.EnrolledSubjects,
	}
	if in.Semester != nil {
		v := in.Semester.Int()
		patch.Semester = &v
	}
	err := s.repo.Update(ctx, documentNumber, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("student with document number %s not found", documentNumber)
	}
	if err == nil {
		s.dropFilterCache()
	}
	return err
}

func (s *studentService) Delete(ctx context.Context, documentNumber string) error {
	err := s.repo.Delete(ctx, documentNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundf("student with document number %s not found", documentNumber)
	}
	if err == nil {
		s.dropFilterCache()
	}
	return err
}

func (s *studentService) Search(ctx context.Context, in SearchStudentsInput) ([]model.Student, error) {
	return s.repo.Search(ctx, repository.StudentSearchFilter{
		FirstName:    in.FirstName,
		Faculty:      in.Faculty,
		DocumentType: in.DocumentType,
	})
}

func (s *studentService) Faculties(ctx context.Context) ([]string, error) {
	if v, ok := s.filters.Get(facultiesCacheKey); ok {
		return v.([]string), nil
	}
	values, err := s.repo.DistinctFaculties(ctx)
	if err != nil {
		return nil, err
	}
	s.filters.SetDefault(facultiesCacheKey, values)
	return values, nil
}

func (s *studentService) DocumentTypes(ctx context.Context) ([]string, error) {
	if v, ok := s.filters.Get(documentTypesCacheKey); ok {
		return v.([]string), nil
	}
	values, err := s.repo.DistinctDocumentTypes(ctx)
	if err != nil {
		return nil, err
	}
	s.filters.SetDefault(documentTypesCacheKey, values)
	return values, nil
}

func (s *studentService) dropFilterCache() {
	s.filters.Delete(facultiesCacheKey)
	s.filters.Delete(documentTypesCacheKey)
}
