package service

import (
	"context"
	"database/sql"
	"testing"

	"colegioapi/internal/model"
	repoMocks "colegioapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSubjectInput() CreateSubjectInput {
	sem := model.FlexInt(1)
	cred := model.FlexInt(3)
	return CreateSubjectInput{
		Code:         "MAT101",
		Name:         "Calculo I",
		Semester:     &sem,
		Credits:      &cred,
		DepartmentID: "matematicas",
	}
}

func TestSubjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("created with code as id", func(t *testing.T) {
		mRepo := new(repoMocks.MockSubjectRepository)
		svc := NewSubjectService(mRepo)

		mRepo.On("Exists", ctx, "MAT101").Return(false, nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(s *model.Subject) bool {
			return s.ID == "MAT101" && s.Semester == 1 && s.Credits == 3
		})).Return(&model.Subject{ID: "MAT101"}, nil)

		sub, err := svc.Create(ctx, newSubjectInput())

		assert.NoError(t, err)
		assert.Equal(t, "MAT101", sub.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("duplicate code", func(t *testing.T) {
		mRepo := new(repoMocks.MockSubjectRepository)
		svc := NewSubjectService(mRepo)

		mRepo.On("Exists", ctx, "MAT101").Return(true, nil)

		sub, err := svc.Create(ctx, newSubjectInput())

		assert.Nil(t, sub)
		var ce *ConflictError
		assert.ErrorAs(t, err, &ce)
		mRepo.AssertNotCalled(t, "Create")
	})

	t.Run("missing numeric fields", func(t *testing.T) {
		mRepo := new(repoMocks.MockSubjectRepository)
		svc := NewSubjectService(mRepo)

		in := newSubjectInput()
		in.Credits = nil

		sub, err := svc.Create(ctx, in)

		assert.Nil(t, sub)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestSubjectService_Get(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockSubjectRepository)
	svc := NewSubjectService(mRepo)

	mRepo.On("FindByID", ctx, "QMC999").Return(nil, sql.ErrNoRows)

	sub, err := svc.Get(ctx, "QMC999")

	assert.Nil(t, sub)
	var ne *NotFoundError
	assert.ErrorAs(t, err, &ne)
}

func TestSubjectService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("numeric string coercion", func(t *testing.T) {
		mRepo := new(repoMocks.MockSubjectRepository)
		svc := NewSubjectService(mRepo)

		sem := model.FlexInt(2)
		mRepo.On("Update", ctx, "MAT101", mock.Anything).Return(nil)

		assert.NoError(t, svc.Update(ctx, "MAT101", UpdateSubjectInput{Semester: &sem}))
		mRepo.AssertExpectations(t)
	})

	t.Run("empty patch", func(t *testing.T) {
		mRepo := new(repoMocks.MockSubjectRepository)
		svc := NewSubjectService(mRepo)

		err := svc.Update(ctx, "MAT101", UpdateSubjectInput{})

		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
		mRepo.AssertNotCalled(t, "Update")
	})
}
