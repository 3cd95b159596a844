package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, handler fiber.Handler) (*http.Response, APIResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope APIResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp, envelope
}

func TestSendSuccess(t *testing.T) {
	resp, envelope := perform(t, func(c *fiber.Ctx) error {
		return SendSuccess(c, "all good", fiber.Map{"value": 1})
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)
	require.Equal(t, "all good", envelope.Message)
	require.NotNil(t, envelope.Data)
}

func TestSendSuccessWithStatusDefaults(t *testing.T) {
	resp, envelope := perform(t, func(c *fiber.Ctx) error {
		return SendSuccessWithStatus(c, 0, "", nil)
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "success", envelope.Message)
	require.Nil(t, envelope.Data)
}

func TestSendError(t *testing.T) {
	resp, envelope := perform(t, func(c *fiber.Ctx) error {
		return SendError(c, http.StatusNotFound, "missing")
	})

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.False(t, envelope.Success)
	require.Equal(t, "missing", envelope.Message)
	require.Nil(t, envelope.Details)
}

func TestFailCarriesDetails(t *testing.T) {
	resp, envelope := perform(t, func(c *fiber.Ctx) error {
		return Fail(c, http.StatusBadRequest, "validation failed", map[string]string{"email": "is required"})
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	details, ok := envelope.Details.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "is required", details["email"])
}
