package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
	repoMocks "colegioapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newStudentInput() CreateStudentInput {
	return CreateStudentInput{
		DocumentNumber: "1002003000",
		DocumentType:   "CC",
		FirstName:      "Laura",
		FirstSurname:   "Gomez",
		Faculty:        "Ciencias",
	}
}

func TestStudentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("created with defaulted status", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		svc := NewStudentService(mRepo, time.Minute)

		mRepo.On("Exists", ctx, "1002003000").Return(false, nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(s *model.Student) bool {
			return s.ID == "1002003000" && s.DocumentNumber == "1002003000" &&
				s.Status == model.StudentStatusActive && !s.CreatedAt.IsZero()
		})).Return(&model.Student{ID: "1002003000", Status: model.StudentStatusActive}, nil)

		st, err := svc.Create(ctx, newStudentInput())

		assert.NoError(t, err)
		assert.Equal(t, model.StudentStatusActive, st.Status)
		mRepo.AssertExpectations(t)
	})

	t.Run("semester accepts numeric string", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		svc := NewStudentService(mRepo, time.Minute)

		in := newStudentInput()
		sem := model.FlexInt(4)
		in.Semester = &sem

		mRepo.On("Exists", ctx, "1002003000").Return(false, nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(s *model.Student) bool {
			return s.Semester == 4
		})).Return(&model.Student{ID: "1002003000", Semester: 4}, nil)

		st, err := svc.Create(ctx, in)

		assert.NoError(t, err)
		assert.Equal(t, 4, st.Semester)
	})

	t.Run("duplicate document number", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		svc := NewStudentService(mRepo, time.Minute)

		mRepo.On("Exists", ctx, "1002003000").Return(true, nil)

		st, err := svc.Create(ctx, newStudentInput())

		assert.Nil(t, st)
		var ce *ConflictError
		assert.ErrorAs(t, err, &ce)
		mRepo.AssertNotCalled(t, "Create")
	})

	t.Run("missing required fields", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		svc := NewStudentService(mRepo, time.Minute)

		in := newStudentInput()
		in.Faculty = ""

		st, err := svc.Create(ctx, in)

		assert.Nil(t, st)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestStudentService_Search(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockStudentRepository)
	svc := NewStudentService(mRepo, time.Minute)

	expected := []model.Student{{ID: "1002003000", FirstName: "Laura"}}
	mRepo.On("Search", ctx, repository.StudentSearchFilter{
		FirstName: "Lau", Faculty: "Ciencias",
	}).Return(expected, nil)

	items, err := svc.Search(ctx, SearchStudentsInput{FirstName: "Lau", Faculty: "Ciencias"})

	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	mRepo.AssertExpectations(t)
}

func TestStudentService_Faculties(t *testing.T) {
	ctx := context.Background()

	t.Run("second read hits the cache", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		svc := NewStudentService(mRepo, time.Minute)

		mRepo.On("DistinctFaculties", ctx).Return([]string{"Ciencias"}, nil).Once()

		first, err := svc.Faculties(ctx)
		assert.NoError(t, err)
		second, err := svc.Faculties(ctx)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		mRepo.AssertNumberOfCalls(t, "DistinctFaculties", 1)
	})

	t.Run("mutation drops the cache", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		svc := NewStudentService(mRepo, time.Minute)

		mRepo.On("DistinctFaculties", ctx).Return([]string{"Ciencias"}, nil).Twice()
		mRepo.On("Delete", ctx, "1002003000").Return(nil)

		_, err := svc.Faculties(ctx)
		assert.NoError(t, err)

		assert.NoError(t, svc.Delete(ctx, "1002003000"))

		_, err = svc.Faculties(ctx)
		assert.NoError(t, err)

		mRepo.AssertNumberOfCalls(t, "DistinctFaculties", 2)
	})
}

func TestStudentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("enrolled subjects replacement", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		svc := NewStudentService(mRepo, time.Minute)

		subjects := []string{"MAT101", "FIS202"}
		mRepo.On("Update", ctx, "1002003000", mock.MatchedBy(func(p repository.StudentPatch) bool {
			return p.EnrolledSubjects != nil && len(*p.EnrolledSubjects) == 2
		})).Return(nil)

		err := svc.Update(ctx, "1002003000", UpdateStudentInput{EnrolledSubjects: &subjects})

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		svc := NewStudentService(mRepo, time.Minute)

		faculty := "Ingenieria"
		mRepo.On("Update", ctx, "0", mock.Anything).Return(sql.ErrNoRows)

		err := svc.Update(ctx, "0", UpdateStudentInput{Faculty: &faculty})

		var ne *NotFoundError
		assert.ErrorAs(t, err, &ne)
	})

	t.Run("empty patch", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		svc := NewStudentService(mRepo, time.Minute)

		err := svc.Update(ctx, "1002003000", UpdateStudentInput{})

		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
		mRepo.AssertNotCalled(t, "Update")
	})
}
