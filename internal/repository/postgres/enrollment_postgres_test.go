package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var enrollmentTestColumns = []string{
	"id", "subject_id", "student_id", "group_name", "enrollment_semester",
	"student_names", "student_surnames", "student_email", "subject_name", "created_at", "updated_at",
}

func TestEnrollmentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEnrollmentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	enr := &model.Enrollment{
		ID:                 "enr-1",
		SubjectID:          "MAT101",
		StudentID:          "1002003000",
		Group:              "A",
		EnrollmentSemester: 4,
		StudentNames:       "Laura",
		StudentSurnames:    "Gomez",
		StudentEmail:       "l@uni.edu",
		SubjectName:        "Calculo I",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	rows := sqlmock.NewRows(enrollmentTestColumns).
		AddRow(enr.ID, enr.SubjectID, enr.StudentID, enr.Group, enr.EnrollmentSemester,
			enr.StudentNames, enr.StudentSurnames, enr.StudentEmail, enr.SubjectName,
			enr.CreatedAt, enr.UpdatedAt)

	mock.ExpectQuery("INSERT INTO inscripciones").
		WithArgs(enr.ID, enr.SubjectID, enr.StudentID, enr.Group, enr.EnrollmentSemester,
			enr.StudentNames, enr.StudentSurnames, enr.StudentEmail, enr.SubjectName,
			enr.CreatedAt, enr.UpdatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, enr)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "enr-1", result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentPostgres_TupleExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEnrollmentPostgres(db)
	ctx := context.Background()

	t.Run("duplicate tuple", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("MAT101", "1002003000", 4, "A").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.TupleExists(ctx, "MAT101", "1002003000", 4, "A")

		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("different group is a new tuple", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("MAT101", "1002003000", 4, "B").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.TupleExists(ctx, "MAT101", "1002003000", 4, "B")

		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestEnrollmentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEnrollmentPostgres(db)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM inscripciones WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		enr, err := repo.FindByID(ctx, "missing")

		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, enr)
	})
}

func TestEnrollmentPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEnrollmentPostgres(db)
	ctx := context.Background()

	group := "B"
	mock.ExpectExec("UPDATE inscripciones SET").
		WithArgs(group, sqlmock.AnyArg(), "enr-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(ctx, "enr-1", repository.EnrollmentPatch{Group: &group})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEnrollmentPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM inscripciones WHERE id = ?").
			WithArgs("enr-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "enr-1"))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM inscripciones WHERE id = ?").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, IsNoRowsError(repo.Delete(ctx, "missing")))
	})
}
