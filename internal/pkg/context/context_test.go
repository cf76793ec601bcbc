package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithRequestID(t *testing.T) {
	t.Run("keeps provided id", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-123")
		assert.Equal(t, "req-123", GetRequestID(ctx))
	})

	t.Run("generates id when empty", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "")
		_, err := uuid.Parse(GetRequestID(ctx))
		assert.NoError(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		assert.Empty(t, GetRequestID(context.Background()))
		assert.NotEmpty(t, EnsureRequestID(context.Background()))
	})
}

func TestFromEchoContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set(echo.HeaderXRequestID, "incoming-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("admin_id", "admin-7")

	ctx := FromEchoContext(c)

	assert.Equal(t, "incoming-id", GetRequestID(ctx))
	assert.Equal(t, "admin-7", GetAdminID(ctx))
}
