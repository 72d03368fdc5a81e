package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_departamentos",
		SQL: `CREATE TABLE IF NOT EXISTS departamentos (
  id          TEXT        PRIMARY KEY,
  name        TEXT        NOT NULL,
  director    TEXT        NOT NULL DEFAULT '',
  description TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_asignaturas",
		SQL: `CREATE TABLE IF NOT EXISTS asignaturas (
  code          TEXT        PRIMARY KEY,
  name          TEXT        NOT NULL,
  semester      INT         NOT NULL,
  credits       INT         NOT NULL,
  department_id TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_asignaturas_department",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_asignaturas_department ON asignaturas (department_id);`,
	},
	{
		Name: "create_table_estudiantes",
		SQL: `CREATE TABLE IF NOT EXISTS estudiantes (
  document_number   TEXT        PRIMARY KEY,
  document_type     TEXT        NOT NULL DEFAULT '',
  first_name        TEXT        NOT NULL,
  second_name       TEXT        NOT NULL DEFAULT '',
  first_surname     TEXT        NOT NULL,
  second_surname    TEXT        NOT NULL DEFAULT '',
  faculty           TEXT        NOT NULL DEFAULT '',
  program           TEXT        NOT NULL DEFAULT '',
  birth_date        TEXT        NOT NULL DEFAULT '',
  gender            TEXT        NOT NULL DEFAULT '',
  semester          INT         NOT NULL DEFAULT 0,
  average           DOUBLE PRECISION NOT NULL DEFAULT 0,
  email             TEXT        NOT NULL DEFAULT '',
  phone             TEXT        NOT NULL DEFAULT '',
  address           TEXT        NOT NULL DEFAULT '',
  status            TEXT        NOT NULL DEFAULT 'Active',
  enrolled_subjects JSONB       NOT NULL DEFAULT '[]'::jsonb,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_estudiantes_first_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_estudiantes_first_name ON estudiantes (first_name);`,
	},
	{
		Name: "create_index_estudiantes_faculty",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_estudiantes_faculty ON estudiantes (faculty);`,
	},
	{
		Name: "create_index_estudiantes_enrolled_subjects",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_estudiantes_enrolled_subjects ON estudiantes USING GIN (enrolled_subjects);`,
	},
	{
		Name: "create_table_inscripciones",
		SQL: `CREATE TABLE IF NOT EXISTS inscripciones (
  id                  TEXT        PRIMARY KEY,
  subject_id          TEXT        NOT NULL,
  student_id          TEXT        NOT NULL,
  group_name          TEXT        NOT NULL,
  enrollment_semester INT         NOT NULL,
  student_names       TEXT        NOT NULL DEFAULT '',
  student_surnames    TEXT        NOT NULL DEFAULT '',
  student_email       TEXT        NOT NULL DEFAULT '',
  subject_name        TEXT        NOT NULL DEFAULT '',
  created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (subject_id, student_id, enrollment_semester, group_name)
);`,
	},
	{
		Name: "create_index_inscripciones_student",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_inscripciones_student ON inscripciones (student_id);`,
	},
	{
		Name: "create_table_asistencias",
		SQL: `CREATE TABLE IF NOT EXISTS asistencias (
  id           TEXT        PRIMARY KEY,
  subject_id   TEXT        NOT NULL,
  subject_code TEXT        NOT NULL DEFAULT '',
  subject_name TEXT        NOT NULL DEFAULT '',
  session_date TEXT        NOT NULL,
  start_time   TEXT        NOT NULL DEFAULT '',
  end_time     TEXT        NOT NULL DEFAULT '',
  semester     INT         NOT NULL DEFAULT 0,
  records      JSONB       NOT NULL DEFAULT '{}'::jsonb,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_asistencias_subject_code",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_asistencias_subject_code ON asistencias (subject_code);`,
	},
	{
		Name: "create_index_asistencias_session_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_asistencias_session_date ON asistencias (session_date);`,
	},
}

// EnsureMigrated checks for the 'departamentos' sentinel table and runs the
// schema migration when it is absent.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.departamentos') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
