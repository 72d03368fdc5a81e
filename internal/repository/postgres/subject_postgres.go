package postgres

import (
	"context"
	"database/sql"
	"time"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
)

// SubjectPostgres is a PostgreSQL implementation of
// repository.SubjectRepository. The subject code is the row key.
type SubjectPostgres struct {
	db *sql.DB
}

// NewSubjectPostgres creates a new SubjectPostgres repository.
func NewSubjectPostgres(db *sql.DB) *SubjectPostgres {
	return &SubjectPostgres{db: db}
}

var _ repository.SubjectRepository = (*SubjectPostgres)(nil)

// Create inserts a new subject row and returns the stored record.
func (r *SubjectPostgres) Create(ctx context.Context, s *model.Subject) (*model.Subject, error) {
	const q = `
		INSERT INTO asignaturas (code, name, semester, credits, department_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING code, name, semester, credits, department_id, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Name,
		s.Semester,
		s.Credits,
		s.DepartmentID,
		s.CreatedAt,
		s.UpdatedAt,
	)
	var out model.Subject
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Semester,
		&out.Credits,
		&out.DepartmentID,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single subject by its code.
func (r *SubjectPostgres) FindByID(ctx context.Context, code string) (*model.Subject, error) {
	const q = `
		SELECT code, name, semester, credits, department_id, created_at, updated_at
		FROM asignaturas
		WHERE code = $1
	`
	var s model.Subject
	if err := r.db.QueryRowContext(ctx, q, code).Scan(
		&s.ID,
		&s.Name,
		&s.Semester,
		&s.Credits,
		&s.DepartmentID,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// Exists reports whether a subject with the code is stored.
func (r *SubjectPostgres) Exists(ctx context.Context, code string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM asignaturas WHERE code = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, code).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns every subject.
func (r *SubjectPostgres) List(ctx context.Context) ([]model.Subject, error) {
	const q = `
		SELECT code, name, semester, credits, department_id, created_at, updated_at
		FROM asignaturas
		ORDER BY created_at, code
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Subject, 0)
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Semester,
			&s.Credits,
			&s.DepartmentID,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update merges the patch onto the stored row in one conditional write.
func (r *SubjectPostgres) Update(ctx context.Context, code string, p repository.SubjectPatch) error {
	var sc setClause
	if p.Name != nil {
		sc.add("name", *p.Name)
	}
	if p.Semester != nil {
		sc.add("semester", *p.Semester)
	}
	if p.Credits != nil {
		sc.add("credits", *p.Credits)
	}
	if p.DepartmentID != nil {
		sc.add("department_id", *p.DepartmentID)
	}
	sc.add("updated_at", time.Now().UTC())

	q := "UPDATE asignaturas SET " + sc.set() + " WHERE code = $" + itoa(sc.bind(code))
	return execConditional(ctx, r.db, q, sc.args...)
}

// Delete removes a subject; sql.ErrNoRows when the code is unknown.
func (r *SubjectPostgres) Delete(ctx context.Context, code string) error {
	const q = `DELETE FROM asignaturas WHERE code = $1`
	return execConditional(ctx, r.db, q, code)
}
