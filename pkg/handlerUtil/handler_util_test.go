package handlerUtil

import (
	"FinanceTracker/pkg/response"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(err error) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	h := New(logger)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return h.Handle(c, "req-1", err, c.Path(), "create_transaction")
	})
	return app
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, jsoniter.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandler_Handle(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		app := newTestApp(response.NewValidationError("value", "value is required"))

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decode(t, resp.Body)
		assert.Equal(t, "Validation failed", body["message"])
		assert.Len(t, body["errors"], 1)
	})

	t.Run("error with status", func(t *testing.T) {
		app := newTestApp(response.NewError(fiber.StatusNotFound, "Transaction not found"))

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Transaction not found", decode(t, resp.Body)["message"])
	})

	t.Run("unexpected error", func(t *testing.T) {
		app := newTestApp(errors.New("connection refused"))

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		body := decode(t, resp.Body)
		assert.Equal(t, "Failed to create transaction", body["message"])
		assert.Equal(t, "req-1", body["trace_id"])
	})
}
