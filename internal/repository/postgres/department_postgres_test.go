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

func TestDepartmentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDepartmentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	dep := &model.Department{
		ID:          "fisica",
		Name:        "Fisica",
		Director:    "N. Ortiz",
		Description: "Departamento de Fisica",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	rows := sqlmock.NewRows([]string{"id", "name", "director", "description", "created_at", "updated_at"}).
		AddRow(dep.ID, dep.Name, dep.Director, dep.Description, dep.CreatedAt, dep.UpdatedAt)

	mock.ExpectQuery("INSERT INTO departamentos").
		WithArgs(dep.ID, dep.Name, dep.Director, dep.Description, dep.CreatedAt, dep.UpdatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, dep)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, dep.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDepartmentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "director", "description", "created_at", "updated_at"}).
			AddRow("fisica", "Fisica", "N. Ortiz", "", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM departamentos WHERE id = ?").
			WithArgs("fisica").
			WillReturnRows(rows)

		dep, err := repo.FindByID(ctx, "fisica")

		assert.NoError(t, err)
		assert.NotNil(t, dep)
		assert.Equal(t, "fisica", dep.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM departamentos WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		dep, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, dep)
	})
}

func TestDepartmentPostgres_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDepartmentPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("fisica").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(ctx, "fisica")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDepartmentPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "director", "description", "created_at", "updated_at"}).
		AddRow("fisica", "Fisica", "", "", time.Now(), time.Now()).
		AddRow("quimica", "Quimica", "", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM departamentos ORDER BY created_at, id").
		WillReturnRows(rows)

	items, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDepartmentPostgres(db)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		name := "Fisica Aplicada"
		mock.ExpectExec("UPDATE departamentos SET").
			WithArgs(name, sqlmock.AnyArg(), "fisica").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, "fisica", repository.DepartmentPatch{Name: &name})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		name := "Fisica Aplicada"
		mock.ExpectExec("UPDATE departamentos SET").
			WithArgs(name, sqlmock.AnyArg(), "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, "missing", repository.DepartmentPatch{Name: &name})

		assert.True(t, IsNoRowsError(err))
	})
}

func TestDepartmentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDepartmentPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM departamentos WHERE id = ?").
			WithArgs("fisica").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "fisica"))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM departamentos WHERE id = ?").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, IsNoRowsError(repo.Delete(ctx, "missing")))
	})
}
