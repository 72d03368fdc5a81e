package handler

import (
	"github.com/gofiber/fiber/v2"

	"colegioapi/internal/service"
)

// ListDepartments returns every department.
func ListDepartments(svc service.DepartmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDepartment returns one department by id.
func GetDepartment(svc service.DepartmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dep, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(dep)
	}
}

// CreateDepartment creates a department under a caller-chosen id.
func CreateDepartment(svc service.DepartmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateDepartmentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		dep, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    "department created successfully",
			"department": dep,
		})
	}
}

// UpdateDepartment applies a partial update to a department.
func UpdateDepartment(svc service.DepartmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateDepartmentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := svc.Update(c.UserContext(), c.Params("id"), in); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "department updated successfully"})
	}
}

// DeleteDepartment removes a department by id.
func DeleteDepartment(svc service.DepartmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "department deleted successfully"})
	}
}
