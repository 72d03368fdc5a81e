package postgres

import (
	"context"
	"database/sql"
	"time"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
)

// EnrollmentPostgres is a PostgreSQL implementation of
// repository.EnrollmentRepository.
type EnrollmentPostgres struct {
	db *sql.DB
}

// NewEnrollmentPostgres creates a new EnrollmentPostgres repository.
func NewEnrollmentPostgres(db *sql.DB) *EnrollmentPostgres {
	return &EnrollmentPostgres{db: db}
}

var _ repository.EnrollmentRepository = (*EnrollmentPostgres)(nil)

const enrollmentColumns = `id, subject_id, student_id, group_name, enrollment_semester,
		student_names, student_surnames, student_email, subject_name, created_at, updated_at`

func scanEnrollment(rs rowScanner) (*model.Enrollment, error) {
	var e model.Enrollment
	if err := rs.Scan(
		&e.ID,
		&e.SubjectID,
		&e.StudentID,
		&e.Group,
		&e.EnrollmentSemester,
		&e.StudentNames,
		&e.StudentSurnames,
		&e.StudentEmail,
		&e.SubjectName,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new enrollment row and returns the stored record.
func (r *EnrollmentPostgres) Create(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error) {
	q := `
		INSERT INTO inscripciones (` + enrollmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + enrollmentColumns
	row := r.db.QueryRowContext(ctx, q,
		e.ID,
		e.SubjectID,
		e.StudentID,
		e.Group,
		e.EnrollmentSemester,
		e.StudentNames,
		e.StudentSurnames,
		e.StudentEmail,
		e.SubjectName,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return scanEnrollment(row)
}

// FindByID fetches a single enrollment by id.
func (r *EnrollmentPostgres) FindByID(ctx context.Context, id string) (*model.Enrollment, error) {
	q := `SELECT ` + enrollmentColumns + ` FROM inscripciones WHERE id = $1`
	return scanEnrollment(r.db.QueryRowContext(ctx, q, id))
}

// List returns every enrollment.
func (r *EnrollmentPostgres) List(ctx context.Context) ([]model.Enrollment, error) {
	q := `SELECT ` + enrollmentColumns + ` FROM inscripciones ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Enrollment, 0)
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// TupleExists reports whether an enrollment already matches all four
// uniqueness fields.
func (r *EnrollmentPostgres) TupleExists(ctx context.Context, subjectID, studentID string, semester int, group string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM inscripciones
			WHERE subject_id = $1 AND student_id = $2 AND enrollment_semester = $3 AND group_name = $4
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, subjectID, studentID, semester, group).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Update merges the patch onto the stored row in one conditional write.
func (r *EnrollmentPostgres) Update(ctx context.Context, id string, p repository.EnrollmentPatch) error {
	var sc setClause
	if p.Group != nil {
		sc.add("group_name", *p.Group)
	}
	if p.EnrollmentSemester != nil {
		sc.add("enrollment_semester", *p.EnrollmentSemester)
	}
	if p.StudentNames != nil {
		sc.add("student_names", *p.StudentNames)
	}
	if p.StudentSurnames != nil {
		sc.add("student_surnames", *p.StudentSurnames)
	}
	if p.StudentEmail != nil {
		sc.add("student_email", *p.StudentEmail)
	}
	if p.SubjectName != nil {
		sc.add("subject_name", *p.SubjectName)
	}
	sc.add("updated_at", time.Now().UTC())

	q := "UPDATE inscripciones SET " + sc.set() + " WHERE id = $" + itoa(sc.bind(id))
	return execConditional(ctx, r.db, q, sc.args...)
}

// Delete removes an enrollment; sql.ErrNoRows when the id is unknown.
func (r *EnrollmentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM inscripciones WHERE id = $1`
	return execConditional(ctx, r.db, q, id)
}
