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

// AttendancePostgres is a PostgreSQL implementation of
// repository.AttendanceRepository. The records map is a JSONB column:
// additive merges use the || operator and single-key mutations use
// jsonb_set / the - operator, so the map is never rebuilt client-side.
type AttendancePostgres struct {
	db *sql.DB
}

// NewAttendancePostgres creates a new AttendancePostgres repository.
func NewAttendancePostgres(db *sql.DB) *AttendancePostgres {
	return &AttendancePostgres{db: db}
}

var _ repository.AttendanceRepository = (*AttendancePostgres)(nil)

const sessionColumns = `id, subject_id, subject_code, subject_name, session_date,
		start_time, end_time, semester, records, created_at, updated_at`

func scanSession(rs rowScanner) (*model.AttendanceSession, error) {
	var s model.AttendanceSession
	var records []byte
	if err := rs.Scan(
		&s.ID,
		&s.SubjectID,
		&s.SubjectCode,
		&s.SubjectName,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.Semester,
		&records,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := unmarshalRecords(records, &s.Records); err != nil {
		return nil, err
	}
	return &s, nil
}

func unmarshalRecords(b []byte, dst *map[string]bool) error {
	*dst = map[string]bool{}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode records: %w", err)
	}
	return nil
}

func marshalRecords(records map[string]bool) ([]byte, error) {
	if records == nil {
		records = map[string]bool{}
	}
	return json.Marshal(records)
}

// Create inserts a new session row and returns the stored record.
func (r *AttendancePostgres) Create(ctx context.Context, s *model.AttendanceSession) (*model.AttendanceSession, error) {
	records, err := marshalRecords(s.Records)
	if err != nil {
		return nil, err
	}
	q := `
		INSERT INTO asistencias (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + sessionColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.SubjectID,
		s.SubjectCode,
		s.SubjectName,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.Semester,
		records,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return scanSession(row)
}

// FindByID fetches a single session by id.
func (r *AttendancePostgres) FindByID(ctx context.Context, id string) (*model.AttendanceSession, error) {
	q := `SELECT ` + sessionColumns + ` FROM asistencias WHERE id = $1`
	return scanSession(r.db.QueryRowContext(ctx, q, id))
}

// List returns every session.
func (r *AttendancePostgres) List(ctx context.Context) ([]model.AttendanceSession, error) {
	q := `SELECT ` + sessionColumns + ` FROM asistencias ORDER BY created_at, id`
	return r.querySessions(ctx, q)
}

// Search applies a conjunction of equality filters.
func (r *AttendancePostgres) Search(ctx context.Context, f repository.SessionSearchFilter) ([]model.AttendanceSession, error) {
	clauses := []string{}
	args := []any{}
	if f.SubjectCode != "" {
		args = append(args, f.SubjectCode)
		clauses = append(clauses, "subject_code = $"+itoa(len(args)))
	}
	if f.Semester != nil {
		args = append(args, *f.Semester)
		clauses = append(clauses, "semester = $"+itoa(len(args)))
	}
	if f.Date != "" {
		args = append(args, f.Date)
		clauses = append(clauses, "session_date = $"+itoa(len(args)))
	}

	q := `SELECT ` + sessionColumns + ` FROM asistencias`
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	return r.querySessions(ctx, q, args...)
}

func (r *AttendancePostgres) querySessions(ctx context.Context, q string, args ...any) ([]model.AttendanceSession, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AttendanceSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
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

// Update merges the patch onto the stored row. A Records entry merges into
// the stored map with ||, it never replaces it.
func (r *AttendancePostgres) Update(ctx context.Context, id string, p repository.SessionPatch) error {
	var sc setClause
	if p.SubjectID != nil {
		sc.add("subject_id", *p.SubjectID)
	}
	if p.SubjectCode != nil {
		sc.add("subject_code", *p.SubjectCode)
	}
	if p.SubjectName != nil {
		sc.add("subject_name", *p.SubjectName)
	}
	if p.Date != nil {
		sc.add("session_date", *p.Date)
	}
	if p.StartTime != nil {
		sc.add("start_time", *p.StartTime)
	}
	if p.EndTime != nil {
		sc.add("end_time", *p.EndTime)
	}
	if p.Semester != nil {
		sc.add("semester", *p.Semester)
	}
	if p.Records != nil {
		records, err := marshalRecords(p.Records)
		if err != nil {
			return err
		}
		sc.addExpr("records = records || $%d::jsonb", records)
	}
	sc.add("updated_at", time.Now().UTC())

	q := "UPDATE asistencias SET " + sc.set() + " WHERE id = $" + itoa(sc.bind(id))
	return execConditional(ctx, r.db, q, sc.args...)
}

// Delete removes a session; sql.ErrNoRows when the id is unknown.
func (r *AttendancePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM asistencias WHERE id = $1`
	return execConditional(ctx, r.db, q, id)
}

// MergeRecords shallow-merges the entries into the records map atomically
// and returns the resulting map.
func (r *AttendancePostgres) MergeRecords(ctx context.Context, id string, records map[string]bool) (map[string]bool, error) {
	merged, err := marshalRecords(records)
	if err != nil {
		return nil, err
	}
	const q = `
		UPDATE asistencias
		SET records = records || $2::jsonb, updated_at = $3
		WHERE id = $1
		RETURNING records
	`
	var out []byte
	if err := r.db.QueryRowContext(ctx, q, id, merged, time.Now().UTC()).Scan(&out); err != nil {
		return nil, err
	}
	var result map[string]bool
	if err := unmarshalRecords(out, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SetRecord marks one student present via a targeted field-path write.
func (r *AttendancePostgres) SetRecord(ctx context.Context, id, studentID string) error {
	const q = `
		UPDATE asistencias
		SET records = jsonb_set(records, ARRAY[$2::text], 'true'::jsonb, true), updated_at = $3
		WHERE id = $1
	`
	return execConditional(ctx, r.db, q, id, studentID, time.Now().UTC())
}

// RemoveRecord deletes one key from the records map.
func (r *AttendancePostgres) RemoveRecord(ctx context.Context, id, studentID string) error {
	const q = `
		UPDATE asistencias
		SET records = records - $2, updated_at = $3
		WHERE id = $1
	`
	return execConditional(ctx, r.db, q, id, studentID, time.Now().UTC())
}
