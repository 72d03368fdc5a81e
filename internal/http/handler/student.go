package handler

import (
	"github.com/gofiber/fiber/v2"

	"colegioapi/internal/service"
)

// ListStudents returns every student.
func ListStudents(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetStudent returns one student by document number.
func GetStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// CreateStudent creates a student keyed by document number.
func CreateStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateStudentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		st, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "student created successfully",
			"student": st,
		})
	}
}

// UpdateStudent applies a partial update to a student.
func UpdateStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateStudentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := svc.Update(c.UserContext(), c.Params("id"), in); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "student updated successfully"})
	}
}

// DeleteStudent removes a student by document number.
func DeleteStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "student deleted successfully"})
	}
}

// SearchStudents filters students by name prefix, faculty and document type.
func SearchStudents(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.SearchStudentsInput
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

// ListFaculties returns the distinct faculty values across students.
func ListFaculties(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Faculties(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListDocumentTypes returns the distinct document type values across students.
func ListDocumentTypes(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.DocumentTypes(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(res)
	}
}
