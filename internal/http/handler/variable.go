package handler

import (
	"github.com/gofiber/fiber/v2"

	"leadinspect/internal/service"
)

// ListVariables lists all general (report-wide) variables.
func ListVariables(svc service.GeneralVariableService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vars, err := svc.List(c.UserContext())
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(fiber.Map{"data": vars})
	}
}

// SetVariable upserts one general variable by name.
func SetVariable(svc service.GeneralVariableService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body variableBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		v, err := svc.Set(c.UserContext(), c.Params("name"), body.Value)
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(v)
	}
}

// DeleteVariable removes one general variable by name.
func DeleteVariable(svc service.GeneralVariableService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("name")); err != nil {
			return failErr(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
