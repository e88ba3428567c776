package handler

import (
	"github.com/gofiber/fiber/v2"

	"leadinspect/internal/repository"
	"leadinspect/internal/service"
)

// ListDocuments lists documents with optional inspector_id / document_type_id
// filters and limit & offset pagination.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return nil
		}
		f := repository.DocumentFilter{
			InspectorID:    c.Query("inspector_id"),
			DocumentTypeID: c.Query("document_type_id"),
		}
		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(res)
	}
}

// UploadDocument accepts multipart/form-data with a "file" part plus optional
// inspector_id and document_type_id fields.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		up := service.DocumentUpload{
			Reader:           f,
			OriginalFilename: fh.Filename,
			ContentType:      ct,
			Size:             fh.Size,
		}
		if v := c.FormValue("inspector_id"); v != "" {
			up.InspectorID = &v
		}
		if v := c.FormValue("document_type_id"); v != "" {
			up.DocumentTypeID = &v
		}

		doc, err := svc.Upload(c.UserContext(), up)
		if err != nil {
			return failErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument returns one document's metadata by ID.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return nil
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(doc)
	}
}

// UpdateDocument rewrites a document's metadata; the stored object is untouched.
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c)
		if !ok {
			return nil
		}
		var meta service.DocumentMeta
		if err := c.BodyParser(&meta); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		doc, err := svc.UpdateMeta(c.UserContext(), id, meta)
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a document from storage and the database.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
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
