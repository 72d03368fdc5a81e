package handler

import (
	"github.com/gofiber/fiber/v2"

	"colegioapi/internal/service"
)

// ListSubjects returns every subject.
func ListSubjects(svc service.SubjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetSubject returns one subject by code.
func GetSubject(svc service.SubjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(sub)
	}
}

// CreateSubject creates a subject keyed by its code.
func CreateSubject(svc service.SubjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateSubjectInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		sub, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "subject created successfully",
			"subject": sub,
		})
	}
}

// UpdateSubject applies a partial update to a subject.
func UpdateSubject(svc service.SubjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateSubjectInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := svc.Update(c.UserContext(), c.Params("id"), in); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "subject updated successfully"})
	}
}

// DeleteSubject removes a subject by code.
func DeleteSubject(svc service.SubjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "subject deleted successfully"})
	}
}
