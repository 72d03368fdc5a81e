package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"colegioapi/internal/model"
	"colegioapi/internal/service"
	serviceMocks "colegioapi/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonRequest(method, target string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorBody
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "dependency unavailable", body.Message)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateDepartment(t *testing.T) {
	mockSvc := new(serviceMocks.MockDepartmentService)
	app := fiber.New()
	app.Post("/departamentos", CreateDepartment(mockSvc))

	t.Run("created", func(t *testing.T) {
		expected := &model.Department{ID: "fisica", Name: "Fisica"}
		mockSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateDepartmentInput")).
			Return(expected, nil).Once()

		req := jsonRequest(http.MethodPost, "/departamentos", map[string]string{
			"id": "fisica", "name": "Fisica",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Message    string           `json:"message"`
			Department model.Department `json:"department"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "department created successfully", body.Message)
		assert.Equal(t, "fisica", body.Department.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate id", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateDepartmentInput")).
			Return(nil, &service.ConflictError{Message: "department fisica already exists"}).Once()

		req := jsonRequest(http.MethodPost, "/departamentos", map[string]string{
			"id": "fisica", "name": "Fisica",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var body errorBody
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "department fisica already exists", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateDepartmentInput")).
			Return(nil, &service.ValidationError{Message: "id and name are required to create a department"}).Once()

		req := jsonRequest(http.MethodPost, "/departamentos", map[string]string{})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateDepartment(t *testing.T) {
	mockSvc := new(serviceMocks.MockDepartmentService)
	app := fiber.New()
	app.Put("/departamentos/:id", UpdateDepartment(mockSvc))

	t.Run("updated", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, "fisica", mock.AnythingOfType("service.UpdateDepartmentInput")).
			Return(nil).Once()

		req := jsonRequest(http.MethodPut, "/departamentos/fisica", map[string]string{"director": "N. Ortiz"})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "department updated successfully", body["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, "nope", mock.AnythingOfType("service.UpdateDepartmentInput")).
			Return(&service.NotFoundError{Message: "department nope not found"}).Once()

		req := jsonRequest(http.MethodPut, "/departamentos/nope", map[string]string{"director": "N. Ortiz"})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetStudent(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudentService)
	app := fiber.New()
	app.Get("/estudiantes/:id", GetStudent(mockSvc))

	t.Run("found", func(t *testing.T) {
		st := &model.Student{ID: "1002003000", DocumentNumber: "1002003000", FirstName: "Laura"}
		mockSvc.On("Get", mock.Anything, "1002003000").Return(st, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/estudiantes/1002003000", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.Student
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "Laura", got.FirstName)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "0").
			Return(nil, &service.NotFoundError{Message: "student 0 not found"}).Once()

		req := httptest.NewRequest(http.MethodGet, "/estudiantes/0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestSearchStudents(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudentService)
	app := fiber.New()
	app.Post("/estudiantes/buscar", SearchStudents(mockSvc))

	expected := []model.Student{{ID: "1", FirstName: "Laura"}}
	mockSvc.On("Search", mock.Anything, service.SearchStudentsInput{FirstName: "Lau"}).
		Return(expected, nil).Once()

	req := jsonRequest(http.MethodPost, "/estudiantes/buscar", map[string]string{"firstName": "Lau"})
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []model.Student
	json.NewDecoder(resp.Body).Decode(&got)
	assert.Len(t, got, 1)
	mockSvc.AssertExpectations(t)
}

func TestListFaculties(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudentService)
	app := fiber.New()
	app.Get("/estudiantes/filtros/facultades", ListFaculties(mockSvc))

	mockSvc.On("Faculties", mock.Anything).Return([]string{"Ciencias", "Ingenieria"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/estudiantes/filtros/facultades", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []string
	json.NewDecoder(resp.Body).Decode(&got)
	assert.Equal(t, []string{"Ciencias", "Ingenieria"}, got)
	mockSvc.AssertExpectations(t)
}

func TestCreateEnrollment(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnrollmentService)
	app := fiber.New()
	app.Post("/inscripciones", CreateEnrollment(mockSvc))

	t.Run("created", func(t *testing.T) {
		expected := &model.Enrollment{ID: "abc", SubjectID: "MAT101", StudentID: "1002003000"}
		mockSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateEnrollmentInput")).
			Return(expected, nil).Once()

		req := jsonRequest(http.MethodPost, "/inscripciones", map[string]any{
			"subjectId": "MAT101", "studentId": "1002003000",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Message    string           `json:"message"`
			Enrollment model.Enrollment `json:"enrollment"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "enrollment created successfully", body.Message)
		assert.Equal(t, "MAT101", body.Enrollment.SubjectID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate tuple", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CreateEnrollmentInput")).
			Return(nil, &service.ConflictError{Message: "student is already enrolled in this subject, semester and group"}).Once()

		req := jsonRequest(http.MethodPost, "/inscripciones", map[string]any{
			"subjectId": "MAT101", "studentId": "1002003000",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestRegisterAttendance(t *testing.T) {
	mockSvc := new(serviceMocks.MockAttendanceService)
	app := fiber.New()
	app.Post("/asistencias/:id/registrar-estudiantes", RegisterAttendance(mockSvc))

	t.Run("raw map body", func(t *testing.T) {
		merged := map[string]bool{"1002003000": true, "1002003001": false}
		mockSvc.On("RegisterAttendance", mock.Anything, "ses-1", map[string]bool{"1002003000": true}).
			Return(merged, nil).Once()

		req := jsonRequest(http.MethodPost, "/asistencias/ses-1/registrar-estudiantes", map[string]bool{
			"1002003000": true,
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Message        string          `json:"message"`
			UpdatedRecords map[string]bool `json:"updatedRecords"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "attendance registered successfully", body.Message)
		assert.Equal(t, merged, body.UpdatedRecords)
		mockSvc.AssertExpectations(t)
	})

	t.Run("wrapped body", func(t *testing.T) {
		merged := map[string]bool{"1002003000": true, "1002003001": false}
		mockSvc.On("RegisterAttendance", mock.Anything, "ses-1", map[string]bool{"1002003001": false}).
			Return(merged, nil).Once()

		req := jsonRequest(http.MethodPost, "/asistencias/ses-1/registrar-estudiantes", map[string]any{
			"records": map[string]bool{"1002003001": false},
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty records", func(t *testing.T) {
		mockSvc.On("RegisterAttendance", mock.Anything, "ses-1", map[string]bool{}).
			Return(nil, &service.ValidationError{Message: "no attendance records provided"}).Once()

		req := jsonRequest(http.MethodPost, "/asistencias/ses-1/registrar-estudiantes", map[string]any{})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-boolean value", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/asistencias/ses-1/registrar-estudiantes", map[string]any{
			"1002003000": "yes",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRemoveSessionStudent(t *testing.T) {
	mockSvc := new(serviceMocks.MockAttendanceService)
	app := fiber.New()
	app.Delete("/asistencias/:id/estudiantes/:studentId", RemoveSessionStudent(mockSvc))

	mockSvc.On("RemoveStudent", mock.Anything, "ses-1", "1002003000").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/asistencias/ses-1/estudiantes/1002003000", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "student removed from session successfully", body["message"])
	mockSvc.AssertExpectations(t)
}

func TestExportSessionReport(t *testing.T) {
	mockSvc := new(serviceMocks.MockAttendanceService)
	app := fiber.New()
	app.Post("/asistencias/:id/reporte", ExportSessionReport(mockSvc))

	t.Run("generated", func(t *testing.T) {
		rep := &service.SessionReport{Key: "reports/ses-1.csv", URL: "https://minio/reports/ses-1.csv"}
		mockSvc.On("ExportReport", mock.Anything, "ses-1").Return(rep, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/asistencias/ses-1/reporte", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Message string                `json:"message"`
			Report  service.SessionReport `json:"report"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "attendance report generated successfully", body.Message)
		assert.Equal(t, rep.Key, body.Report.Key)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc.On("ExportReport", mock.Anything, "ses-1").
			Return(nil, errors.New("minio unreachable")).Once()

		req := httptest.NewRequest(http.MethodPost, "/asistencias/ses-1/reporte", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body errorBody
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "internal server error", body.Message)
		assert.Equal(t, "minio unreachable", body.Error)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteSubject(t *testing.T) {
	mockSvc := new(serviceMocks.MockSubjectService)
	app := fiber.New()
	app.Delete("/asignaturas/:id", DeleteSubject(mockSvc))

	t.Run("deleted", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "MAT101").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/asignaturas/MAT101", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "QMC999").
			Return(&service.NotFoundError{Message: "subject QMC999 not found"}).Once()

		req := httptest.NewRequest(http.MethodDelete, "/asignaturas/QMC999", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
