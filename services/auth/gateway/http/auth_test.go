package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	httpclient "github.com/piresc/rideflex-admin/internal/pkg/http"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *AuthGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAuthGateway(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}, nil))
}

func TestAuthGateway_Login(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectSuccess bool
		expectMessage string
		expectError   bool
	}{
		{
			name:          "successful login",
			status:        http.StatusOK,
			body:          `{"success":true,"message":"Welcome","token":"tok","user":{"id":"admin-1","email":"a@rideflex.test","roles":["Admin"]}}`,
			expectSuccess: true,
			expectMessage: "Welcome",
		},
		{
			name:          "rejected credentials keep the backend message",
			status:        http.StatusUnauthorized,
			body:          `{"success":false,"message":"Invalid email or password"}`,
			expectMessage: "Invalid email or password",
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        `boom`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/auth/login", r.URL.Path)
				assert.Empty(t, r.Header.Get("Authorization"))

				var req models.LoginRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "a@rideflex.test", req.Email)

				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			resp, err := gw.Login(context.Background(), models.LoginRequest{Email: "a@rideflex.test", Password: "secret"})

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectSuccess, resp.Success)
			assert.Equal(t, tt.expectMessage, resp.Message)
		})
	}
}

func TestAuthGateway_Me(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id":"admin-1","firstName":"Ada","roles":["Admin"],"claims":["refunds"]}`))
	})

	user, err := gw.Me(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", user.ID)
	assert.Equal(t, []string{"refunds"}, user.Claims)

	_, err = gw.Me(context.Background(), "stale")
	h, ok := apperrors.AsHTTP(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, h.StatusCode)
}

func TestAuthGateway_Logout(t *testing.T) {
	called := false
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, gw.Logout(context.Background(), "tok"))
	assert.True(t, called)
}
