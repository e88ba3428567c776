package handler

import (
	"database/sql"
	"errors"
	"net"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"leadinspect/internal/database"
	"leadinspect/internal/http/middleware"
	"leadinspect/internal/service"
)

// devMode controls whether stack traces are included in error responses.
// Set once at startup via SetDevMode; never enable in production.
var devMode bool

// SetDevMode toggles stack traces in error payloads.
func SetDevMode(on bool) { devMode = on }

// errorPayload is the standardized error response body. dbError carries the
// raw driver fields when the cause was a Postgres or network failure; stack
// is populated only in development.
type errorPayload struct {
	Error     string       `json:"error"`
	DBError   *dbErrorInfo `json:"dbError,omitempty"`
	Details   string       `json:"details,omitempty"`
	Stack     string       `json:"stack,omitempty"`
	Timestamp string       `json:"timestamp"`
	RequestID string       `json:"request_id,omitempty"`
}

type dbErrorInfo struct {
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	Hint       string `json:"hint,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	Table      string `json:"table,omitempty"`
}

const (
	sqlstateForeignKeyViolation = "23503"
	sqlstateUniqueViolation     = "23505"
)

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without a driver cause.
func writeError(c *fiber.Ctx, status int, message string) error {
	res := errorPayload{
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestIDFromCtx(c),
	}
	if devMode {
		res.Stack = string(debug.Stack())
	}
	return c.Status(status).JSON(res)
}

// failErr maps a service/repository error to a status and safe message, and
// attaches driver details when the cause is a Postgres or network error.
func failErr(c *fiber.Ctx, err error) error {
	status := statusForError(err)

	res := errorPayload{
		Error:     safeMessage(status, err),
		DBError:   dbErrorFromErr(err),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestIDFromCtx(c),
	}
	if devMode {
		res.Details = err.Error()
		res.Stack = string(debug.Stack())
	}
	return c.Status(status).JSON(res)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrIDRequired),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrKeyRequired),
		errors.Is(err, service.ErrKeyInvalid),
		errors.Is(err, service.ErrReaderNil):
		return fiber.StatusBadRequest
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateForeignKeyViolation, sqlstateUniqueViolation:
			return fiber.StatusConflict
		}
		return fiber.StatusInternalServerError
	}

	if database.IsNetworkError(err) {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

func safeMessage(status int, err error) string {
	switch status {
	case fiber.StatusNotFound:
		return "resource not found"
	case fiber.StatusBadRequest:
		return err.Error()
	case fiber.StatusConflict:
		return "conflicting resource state"
	case fiber.StatusServiceUnavailable:
		return "dependency unavailable"
	}
	return "internal server error"
}

func dbErrorFromErr(err error) *dbErrorInfo {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &dbErrorInfo{
			Code:       pgErr.Code,
			Message:    pgErr.Message,
			Detail:     pgErr.Detail,
			Hint:       pgErr.Hint,
			Constraint: pgErr.ConstraintName,
			Table:      pgErr.TableName,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		detail := opErr.Op
		if opErr.Addr != nil {
			detail += " " + opErr.Addr.String()
		}
		return &dbErrorInfo{Code: "network", Message: opErr.Err.Error(), Detail: detail}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &dbErrorInfo{Code: "network", Message: dnsErr.Error()}
	}
	return nil
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for errors that escape the handlers (routing, panics).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
