package handler

import (
	"github.com/gofiber/fiber/v2"

	"leadinspect/internal/service"
)

type documentTypeBody struct {
	Name string `json:"name"`
}

// ListDocumentTypes lists all document type tags.
func ListDocumentTypes(svc service.DocumentTypeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		types, err := svc.List(c.UserContext())
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(fiber.Map{"data": types})
	}
}

// CreateDocumentType creates a document type from a JSON body.
func CreateDocumentType(svc service.DocumentTypeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body documentTypeBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		dt, err := svc.Create(c.UserContext(), body.Name)
		if err != nil {
			return failErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dt)
	}
}

// DeleteDocumentType removes a document type; documents keep their rows with
// the reference nulled.
func DeleteDocumentType(svc service.DocumentTypeService) fiber.Handler {
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
