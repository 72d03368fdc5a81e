package handler

import (
	"github.com/gofiber/fiber/v2"

	"colegioapi/internal/service"
)

// ListEnrollments returns every enrollment.
func ListEnrollments(svc service.EnrollmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetEnrollment returns one enrollment by id.
func GetEnrollment(svc service.EnrollmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		enr, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(enr)
	}
}

// CreateEnrollment creates an enrollment after checking both references and
// the uniqueness of the (subject, student, semester, group) tuple.
func CreateEnrollment(svc service.EnrollmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateEnrollmentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		enr, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    "enrollment created successfully",
			"enrollment": enr,
		})
	}
}

// UpdateEnrollment applies a partial update to an enrollment.
func UpdateEnrollment(svc service.EnrollmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateEnrollmentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := svc.Update(c.UserContext(), c.Params("id"), in); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "enrollment updated successfully"})
	}
}

// DeleteEnrollment removes an enrollment by id.
func DeleteEnrollment(svc service.EnrollmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "enrollment deleted successfully"})
	}
}
