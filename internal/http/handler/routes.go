package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"colegioapi/internal/service"
)

// Services bundles the per-entity services the router wires up.
type Services struct {
	Departments service.DepartmentService
	Subjects    service.SubjectService
	Students    service.StudentService
	Enrollments service.EnrollmentService
	Attendance  service.AttendanceService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin: parse, delegate, translate errors.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	// Serve the OpenAPI document and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	dep := api.Group("/departamentos")
	dep.Get("/", ListDepartments(svcs.Departments))
	dep.Post("/", CreateDepartment(svcs.Departments))
	dep.Get("/:id", GetDepartment(svcs.Departments))
	dep.Put("/:id", UpdateDepartment(svcs.Departments))
	dep.Delete("/:id", DeleteDepartment(svcs.Departments))

	sub := api.Group("/asignaturas")
	sub.Get("/", ListSubjects(svcs.Subjects))
	sub.Post("/", CreateSubject(svcs.Subjects))
	sub.Get("/:id", GetSubject(svcs.Subjects))
	sub.Put("/:id", UpdateSubject(svcs.Subjects))
	sub.Delete("/:id", DeleteSubject(svcs.Subjects))

	// Fixed paths are registered before /:id so the router does not
	// swallow them as document numbers.
	st := api.Group("/estudiantes")
	st.Get("/", ListStudents(svcs.Students))
	st.Post("/", CreateStudent(svcs.Students))
	st.Post("/buscar", SearchStudents(svcs.Students))
	st.Get("/filtros/facultades", ListFaculties(svcs.Students))
	st.Get("/filtros/tipos-documento", ListDocumentTypes(svcs.Students))
	st.Get("/:id", GetStudent(svcs.Students))
	st.Put("/:id", UpdateStudent(svcs.Students))
	st.Delete("/:id", DeleteStudent(svcs.Students))

	enr := api.Group("/inscripciones")
	enr.Get("/", ListEnrollments(svcs.Enrollments))
	enr.Post("/", CreateEnrollment(svcs.Enrollments))
	enr.Get("/:id", GetEnrollment(svcs.Enrollments))
	enr.Put("/:id", UpdateEnrollment(svcs.Enrollments))
	enr.Delete("/:id", DeleteEnrollment(svcs.Enrollments))

	ses := api.Group("/asistencias")
	ses.Get("/", ListSessions(svcs.Attendance))
	ses.Post("/", CreateSession(svcs.Attendance))
	ses.Post("/buscar", SearchSessions(svcs.Attendance))
	ses.Get("/:id", GetSession(svcs.Attendance))
	ses.Put("/:id", UpdateSession(svcs.Attendance))
	ses.Delete("/:id", DeleteSession(svcs.Attendance))
	ses.Post("/:id/registrar-estudiantes", RegisterAttendance(svcs.Attendance))
	ses.Post("/:id/estudiantes", AddSessionStudent(svcs.Attendance))
	ses.Delete("/:id/estudiantes/:studentId", RemoveSessionStudent(svcs.Attendance))
	ses.Get("/:id/estudiantes-candidatos", CandidateStudents(svcs.Attendance))
	ses.Post("/:id/reporte", ExportSessionReport(svcs.Attendance))
}
