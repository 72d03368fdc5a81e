package postgres

import (
	"context"
	"database/sql"
	"time"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
)

// DepartmentPostgres is a PostgreSQL implementation of
// repository.DepartmentRepository.
type DepartmentPostgres struct {
	db *sql.DB
}

// NewDepartmentPostgres creates a new DepartmentPostgres repository.
func NewDepartmentPostgres(db *sql.DB) *DepartmentPostgres {
	return &DepartmentPostgres{db: db}
}

var _ repository.DepartmentRepository = (*DepartmentPostgres)(nil)

// Create inserts a new department row and returns the stored record.
func (r *DepartmentPostgres) Create(ctx context.Context, d *model.Department) (*model.Department, error) {
	const q = `
		INSERT INTO departamentos (id, name, director, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, director, description, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		d.ID,
		d.Name,
		d.Director,
		d.Description,
		d.CreatedAt,
		d.UpdatedAt,
	)
	var out model.Department
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Director,
		&out.Description,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single department by its key.
func (r *DepartmentPostgres) FindByID(ctx context.Context, id string) (*model.Department, error) {
	const q = `
		SELECT id, name, director, description, created_at, updated_at
		FROM departamentos
		WHERE id = $1
	`
	var d model.Department
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID,
		&d.Name,
		&d.Director,
		&d.Description,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Exists reports whether a department with the key is stored.
func (r *DepartmentPostgres) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM departamentos WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns every department.
func (r *DepartmentPostgres) List(ctx context.Context) ([]model.Department, error) {
	const q = `
		SELECT id, name, director, description, created_at, updated_at
		FROM departamentos
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Department, 0)
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Director,
			&d.Description,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update merges the patch onto the stored row in one conditional write.
func (r *DepartmentPostgres) Update(ctx context.Context, id string, p repository.DepartmentPatch) error {
	var sc setClause
	if p.Name != nil {
		sc.add("name", *p.Name)
	}
	if p.Director != nil {
		sc.add("director", *p.Director)
	}
	if p.Description != nil {
		sc.add("description", *p.Description)
	}
	sc.add("updated_at", time.Now().UTC())

	q := "UPDATE departamentos SET " + sc.set() + " WHERE id = $" + itoa(sc.bind(id))
	return execConditional(ctx, r.db, q, sc.args...)
}

// Delete removes a department; sql.ErrNoRows when the key is unknown.
func (r *DepartmentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM departamentos WHERE id = $1`
	return execConditional(ctx, r.db, q, id)
}
