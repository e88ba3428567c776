package handler

import (
	"math"
	"net/url"
	"path"

	"github.com/gofiber/fiber/v2"

	"leadinspect/internal/service"
)

// UploadFile accepts multipart/form-data with a "file" part and a "key"
// field; the object is stored under the caller's key verbatim.
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "file is required")
		}
		key := c.FormValue("key")
		if key == "" {
			return failErr(c, service.ErrKeyRequired)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		info, err := svc.Upload(c.UserContext(), f, key, ct, fh.Size)
		if err != nil {
			return failErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"key":  info.Key,
			"size": info.Size,
			"etag": info.ETag,
		})
	}
}

// DownloadFile streams an object back to the caller. The key may contain
// slashes; the route uses a wildcard parameter.
func DownloadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, ok := keyParam(c)
		if !ok {
			return nil
		}
		rc, info, err := svc.Download(c.UserContext(), key)
		if err != nil {
			return failErr(c, err)
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		} else {
			c.Set(fiber.HeaderContentType, "application/octet-stream")
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+path.Base(key)+`"`)
		// Size is int64; pass it through only when it fits in int so the
		// conversion cannot truncate on 32-bit platforms.
		if info.Size > 0 && info.Size <= math.MaxInt {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}

// PresignFile returns a time-limited download URL for an object.
func PresignFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, ok := keyParam(c)
		if !ok {
			return nil
		}
		u, err := svc.Presign(c.UserContext(), key)
		if err != nil {
			return failErr(c, err)
		}
		return c.JSON(fiber.Map{"url": u, "expires_in": int(service.DefaultPresignExpiry.Seconds())})
	}
}

// keyParam decodes the wildcard route parameter as an object key. On failure
// the 400 response is already written and ok is false.
func keyParam(c *fiber.Ctx) (string, bool) {
	raw := c.Params("+")
	key, err := url.PathUnescape(raw)
	if err != nil || key == "" {
		_ = writeError(c, fiber.StatusBadRequest, "invalid key")
		return "", false
	}
	return key, true
}
