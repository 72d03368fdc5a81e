package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"colegioapi/internal/service"
)

// ListSessions returns every attendance session.
func ListSessions(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetSession returns one attendance session by id.
func GetSession(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ses, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(ses)
	}
}

// CreateSession creates an attendance session with an initial records map.
func CreateSession(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateSessionInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		ses, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "attendance session created successfully",
			"session": ses,
		})
	}
}

// UpdateSession applies a partial update; a records entry merges into the
// stored map instead of replacing it.
func UpdateSession(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateSessionInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := svc.Update(c.UserContext(), c.Params("id"), in); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "attendance session updated successfully"})
	}
}

// DeleteSession removes an attendance session by id.
func DeleteSession(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "attendance session deleted successfully"})
	}
}

// SearchSessions filters sessions by subject code, semester and date.
func SearchSessions(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.SearchSessionsInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		res, err := svc.Search(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// RegisterAttendance merges a batch of studentId to presence entries into a
// session and returns the merged records map. The body is the raw
// studentId to bool map; a {"records": {...}} wrapper is also accepted.
func RegisterAttendance(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := decodeAttendanceBatch(c.Body())
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		merged, err := svc.RegisterAttendance(c.UserContext(), c.Params("id"), records)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"message":        "attendance registered successfully",
			"updatedRecords": merged,
		})
	}
}

func decodeAttendanceBatch(body []byte) (map[string]bool, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if nested, ok := raw["records"]; ok && len(raw) == 1 {
		var records map[string]bool
		if err := json.Unmarshal(nested, &records); err == nil {
			return records, nil
		}
	}
	records := make(map[string]bool, len(raw))
	for id, v := range raw {
		var present bool
		if err := json.Unmarshal(v, &present); err != nil {
			return nil, err
		}
		records[id] = present
	}
	return records, nil
}

// AddSessionStudent adds a single student to a session's records map.
func AddSessionStudent(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			StudentID string `json:"studentId"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := svc.AddStudent(c.UserContext(), c.Params("id"), body.StudentID); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "student added to session successfully"})
	}
}

// RemoveSessionStudent deletes a single student key from a session's records.
func RemoveSessionStudent(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.RemoveStudent(c.UserContext(), c.Params("id"), c.Params("studentId")); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "student removed from session successfully"})
	}
}

// CandidateStudents lists the students enrolled in the session's subject.
func CandidateStudents(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.CandidateStudents(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ExportSessionReport renders a session's attendance as CSV, stores it in
// object storage and returns a presigned download URL.
func ExportSessionReport(svc service.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rep, err := svc.ExportReport(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "attendance report generated successfully",
			"report":  rep,
		})
	}
}
