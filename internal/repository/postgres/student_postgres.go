package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"colegioapi/internal/model"
	"colegioapi/internal/repository"
)

// StudentPostgres is a PostgreSQL implementation of
// repository.StudentRepository. The document number is the row key; the
// enrolledSubjects collection is a JSONB array so membership queries stay a
// single indexed containment check.
type StudentPostgres struct {
	db *sql.DB
}

// NewStudentPostgres creates a new StudentPostgres repository.
func NewStudentPostgres(db *sql.DB) *StudentPostgres {
	return &StudentPostgres{db: db}
}

var _ repository.StudentRepository = (*StudentPostgres)(nil)

const studentColumns = `document_number, document_type, first_name, second_name, first_surname,
		second_surname, faculty, program, birth_date, gender, semester, average,
		email, phone, address, status, enrolled_subjects, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(rs rowScanner) (*model.Student, error) {
	var s model.Student
	var subjects []byte
	if err := rs.Scan(
		&s.ID,
		&s.DocumentType,
		&s.FirstName,
		&s.SecondName,
		&s.FirstSurname,
		&s.SecondSurname,
		&s.Faculty,
		&s.Program,
		&s.BirthDate,
		&s.Gender,
		&s.Semester,
		&s.Average,
		&s.Email,
		&s.Phone,
		&s.Address,
		&s.Status,
		&subjects,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.DocumentNumber = s.ID
	if len(subjects) > 0 {
		if err := json.Unmarshal(subjects, &s.EnrolledSubjects); err != nil {
			return nil, fmt.Errorf("decode enrolled_subjects: %w", err)
		}
	}
	return &s, nil
}

func marshalSubjects(subjects []string) ([]byte, error) {
	if subjects == nil {
		subjects = []string{}
	}
	return json.Marshal(subjects)
}

// Create inserts a new student row and returns the stored record.
func (r *StudentPostgres) Create(ctx context.Context, s *model.Student) (*model.Student, error) {
	subjects, err := marshalSubjects(s.EnrolledSubjects)
	if err != nil {
		return nil, err
	}
	q := `
		INSERT INTO estudiantes (` + studentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + studentColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.DocumentType,
		s.FirstName,
		s.SecondName,
		s.FirstSurname,
		s.SecondSurname,
		s.Faculty,
		s.Program,
		s.BirthDate,
		s.Gender,
		s.Semester,
		s.Average,
		s.Email,
		s.Phone,
		s.Address,
		s.Status,
		subjects,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return scanStudent(row)
}

// FindByID fetches a single student by document number.
func (r *StudentPostgres) FindByID(ctx context.Context, documentNumber string) (*model.Student, error) {
	q := `SELECT ` + studentColumns + ` FROM estudiantes WHERE document_number = $1`
	return scanStudent(r.db.QueryRowContext(ctx, q, documentNumber))
}

// Exists reports whether a student with the document number is stored.
func (r *StudentPostgres) Exists(ctx context.Context, documentNumber string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM estudiantes WHERE document_number = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, documentNumber).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns every student.
func (r *StudentPostgres) List(ctx context.Context) ([]model.Student, error) {
	q := `SELECT ` + studentColumns + ` FROM estudiantes ORDER BY created_at, document_number`
	return r.queryStudents(ctx, q)
}

// Search applies a conjunction of filters. The first-name filter is a range
// scan bounded by the term and the term with a trailing high codepoint: a
// prefix match, deliberately not a substring match.
func (r *StudentPostgres) Search(ctx context.Context, f repository.StudentSearchFilter) ([]model.Student, error) {
	clauses := []string{}
	args := []any{}
	if f.FirstName != "" {
		args = append(args, f.FirstName)
		clauses = append(clauses, "first_name >= $"+itoa(len(args)))
		args = append(args, f.FirstName+prefixUpperBound)
		clauses = append(clauses, "first_name <= $"+itoa(len(args)))
	}
	if f.Faculty != "" {
		args = append(args, f.Faculty)
		clauses = append(clauses, "faculty = $"+itoa(len(args)))
	}
	if f.DocumentType != "" {
		args = append(args, f.DocumentType)
		clauses = append(clauses, "document_type = $"+itoa(len(args)))
	}

	q := `SELECT ` + studentColumns + ` FROM estudiantes`
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	return r.queryStudents(ctx, q, args...)
}

func (r *StudentPostgres) queryStudents(ctx context.Context, q string, args ...any) ([]model.Student, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindBySubject returns the identity projection of students whose
// enrolledSubjects array contains the subject id.
func (r *StudentPostgres) FindBySubject(ctx context.Context, subjectID string) ([]model.StudentSummary, error) {
	const q = `
		SELECT document_number, first_name, second_name, first_surname, second_surname
		FROM estudiantes
		WHERE enrolled_subjects @> jsonb_build_array($1::text)
		ORDER BY first_surname, first_name
	`
	rows, err := r.db.QueryContext(ctx, q, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StudentSummary, 0)
	for rows.Next() {
		var s model.StudentSummary
		if err := rows.Scan(
			&s.ID,
			&s.FirstName,
			&s.SecondName,
			&s.FirstSurname,
			&s.SecondSurname,
		); err != nil {
			return nil, err
		}
		s.DocumentNumber = s.ID
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DistinctFaculties returns the distinct non-empty faculty values.
func (r *StudentPostgres) DistinctFaculties(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT faculty FROM estudiantes WHERE faculty <> '' ORDER BY faculty`
	return r.queryStrings(ctx, q)
}

// DistinctDocumentTypes returns the distinct non-empty document types.
func (r *StudentPostgres) DistinctDocumentTypes(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT document_type FROM estudiantes WHERE document_type <> '' ORDER BY document_type`
	return r.queryStrings(ctx, q)
}

func (r *StudentPostgres) queryStrings(ctx context.Context, q string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// Update merges the patch onto the stored row in one conditional write.
func (r *StudentPostgres) Update(ctx context.Context, documentNumber string, p repository.StudentPatch) error {
	var sc setClause
	if p.DocumentType != nil {
		sc.add("document_type", *p.DocumentType)
	}
	if p.FirstName != nil {
		sc.add("first_name", *p.FirstName)
	}
	if p.SecondName != nil {
		sc.add("second_name", *p.SecondName)
	}
	if p.FirstSurname != nil {
		sc.add("first_surname", *p.FirstSurname)
	}
	if p.SecondSurname != nil {
		sc.add("second_surname", *p.SecondSurname)
	}
	if p.Faculty != nil {
		sc.add("faculty", *p.Faculty)
	}
	if p.Program != nil {
		sc.add("program", *p.Program)
	}
	if p.BirthDate != nil {
		sc.add("birth_date", *p.BirthDate)
	}
	if p.Gender != nil {
		sc.add("gender", *p.Gender)
	}
	if p.Semester != nil {
		sc.add("semester", *p.Semester)
	}
	if p.Average != nil {
		sc.add("average", *p.Average)
	}
	if p.Email != nil {
		sc.add("email", *p.Email)
	}
	if p.Phone != nil {
		sc.add("phone", *p.Phone)
	}
	if p.Address != nil {
		sc.add("address", *p.Address)
	}
	if p.Status != nil {
		sc.add("status", *p.Status)
	}
	if p.EnrolledSubjects != nil {
		subjects, err := marshalSubjects(*p.EnrolledSubjects)
		if err != nil {
			return err
		}
		sc.add("enrolled_subjects", subjects)
	}
	sc.add("updated_at", time.Now().UTC())

	q := "UPDATE estudiantes SET " + sc.set() + " WHERE document_number = $" + itoa(sc.bind(documentNumber))
	return execConditional(ctx, r.db, q, sc.args...)
}

// Delete removes a student; sql.ErrNoRows when the key is unknown.
func (r *StudentPostgres) Delete(ctx context.Context, documentNumber string) error {
	const q = `DELETE FROM estudiantes WHERE document_number = $1`
	return execConditional(ctx, r.db, q, documentNumber)
}
