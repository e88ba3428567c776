package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"leadinspect/internal/service"
)

// ListInspectors lists inspectors with limit & offset pagination.
func ListInspectors(svc service.InspectorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return nil
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(res)
	}
}

// CreateInspector creates an inspector from a JSON body.
func CreateInspector(svc service.InspectorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.InspectorInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		ins, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return failErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(ins)
	}
}

// GetInspector returns one inspector by ID.
func GetInspector(svc service.InspectorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return nil
		}
		ins, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(ins)
	}
}

// UpdateInspector rewrites an inspector's fields from a JSON body.
func UpdateInspector(svc service.InspectorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return nil
		}
		var in service.InspectorInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		ins, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(ins)
	}
}

// DeleteInspector removes an inspector; variables cascade, documents keep
// their rows with the reference nulled.
func DeleteInspector(svc service.InspectorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return nil
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return failErr(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListInspectorVariables lists all variables of one inspector.
func ListInspectorVariables(svc service.InspectorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return nil
		}
		vars, err := svc.ListVariables(c.UserContext(), id)
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(fiber.Map{"data": vars})
	}
}

type variableBody struct {
	Value string `json:"value"`
}

// SetInspectorVariable upserts one named variable on an inspector.
func SetInspectorVariable(svc service.InspectorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return nil
		}
		var body variableBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		v, err := svc.SetVariable(c.UserContext(), id, c.Params("name"), body.Value)
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(v)
	}
}

// DeleteInspectorVariable removes one named variable from an inspector.
func DeleteInspectorVariable(svc service.InspectorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return nil
		}
		if err := svc.DeleteVariable(c.UserContext(), id, c.Params("name")); err != nil {
			return failErr(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// idParam validates the :id route parameter as a UUID. On failure the 400
// response is already written and ok is false.
func idParam(c *fiber.Ctx) (id string, ok bool) {
	id = c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "invalid id format")
		return "", false
	}
	return id, true
}

// pageParams parses limit & offset query parameters with defaults 10/0. On
// failure the 400 response is already written and ok is false.
func pageParams(c *fiber.Ctx) (limit, offset int, ok bool) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "invalid limit")
		return 0, 0, false
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "invalid offset")
		return 0, 0, false
	}
	return limit, offset, true
}
