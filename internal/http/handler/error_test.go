package handler

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"leadinspect/internal/service"
)

func failWith(err error) *fiber.App {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return failErr(c, err)
	})
	return app
}

func decodeErr(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestFailErrStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound, "resource not found"},
		{"validation", service.ErrNameRequired, http.StatusBadRequest, "name is required"},
		{"invalid key", service.ErrKeyInvalid, http.StatusBadRequest, "key is invalid"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := failWith(tt.err)
			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			resp, _ := app.Test(req)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeErr(t, resp)
			assert.Equal(t, tt.wantError, body.Error)
			assert.NotEmpty(t, body.Timestamp)
			assert.Empty(t, body.Stack)
		})
	}
}

func TestFailErrPostgresDetails(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		Detail:         "Key (name)=(lead-assessment) already exists.",
		ConstraintName: "document_types_name_key",
		TableName:      "document_types",
	}

	app := failWith(pgErr)
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeErr(t, resp)
	assert.Equal(t, "conflicting resource state", body.Error)
	if assert.NotNil(t, body.DBError) {
		assert.Equal(t, "23505", body.DBError.Code)
		assert.Equal(t, "document_types_name_key", body.DBError.Constraint)
		assert.Equal(t, "document_types", body.DBError.Table)
	}
}

func TestFailErrForeignKeyConflict(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		Message:        "insert or update violates foreign key constraint",
		ConstraintName: "documents_inspector_id_fkey",
	}

	app := failWith(pgErr)
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestFailErrNetworkDetails(t *testing.T) {
	opErr := &net.OpError{
		Op:  "dial",
		Net: "tcp",
		Err: errors.New("connection refused"),
	}

	app := failWith(opErr)
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body := decodeErr(t, resp)
	assert.Equal(t, "dependency unavailable", body.Error)
	if assert.NotNil(t, body.DBError) {
		assert.Equal(t, "network", body.DBError.Code)
		assert.Equal(t, "connection refused", body.DBError.Message)
	}
}

func TestFailErrDevModeStack(t *testing.T) {
	SetDevMode(true)
	defer SetDevMode(false)

	app := failWith(errors.New("boom"))
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	resp, _ := app.Test(req)

	body := decodeErr(t, resp)
	assert.Equal(t, "boom", body.Details)
	assert.NotEmpty(t, body.Stack)
}
