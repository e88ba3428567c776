package handler

import (
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"leadinspect/internal/pdf"
)

// FlattenPDF accepts multipart/form-data with a "file" part, flattens the
// PDF's form fields and annotations, and returns the flattened bytes. The
// X-Flatten-Tool header names the tool that produced the output.
func FlattenPDF(fl *pdf.Flattener) fiber.Handler {
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

		input, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot read uploaded file")
		}

		out, tool, err := fl.Flatten(c.UserContext(), input)
		if err != nil {
			var chain *pdf.ChainError
			if errors.As(err, &chain) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(errorPayload{
					Error:     "failed to flatten pdf",
					Details:   chain.Error(),
					Timestamp: time.Now().UTC().Format(time.RFC3339),
					RequestID: requestIDFromCtx(c),
				})
			}
			if errors.Is(err, pdf.ErrNotPDF) {
				return writeError(c, fiber.StatusBadRequest, "file is not a pdf")
			}
			return failErr(c, err)
		}

		c.Set("X-Flatten-Tool", tool)
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="flattened.pdf"`)
		return c.Send(out)
	}
}
