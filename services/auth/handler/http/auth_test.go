package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/piresc/rideflex-admin/services/auth/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWatcher struct {
	started int
	stopped int
}

func (w *fakeWatcher) Start() { w.started++ }
func (w *fakeWatcher) Stop()  { w.stopped++ }

func newLoginContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/console/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionUC := mocks.NewMockSessionUC(ctrl)
	watcher := &fakeWatcher{}
	handler := NewAuthHandler(mockSessionUC, watcher)

	mockSessionUC.EXPECT().
		Login(gomock.Any(), "ada@rideflex.test", "secret").
		Return(&models.LoginResult{Success: true, User: &models.User{ID: "admin-1"}}, nil)

	c, rec := newLoginContext(`{"email":"ada@rideflex.test","password":"secret"}`)
	err := handler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, watcher.started)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Login successful", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "admin-1", data["id"])
}

func TestLogin_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionUC := mocks.NewMockSessionUC(ctrl)
	watcher := &fakeWatcher{}
	handler := NewAuthHandler(mockSessionUC, watcher)

	mockSessionUC.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.LoginResult{Success: false, Message: "Invalid email or password"}, nil)

	c, rec := newLoginContext(`{"email":"ada@rideflex.test","password":"wrong"}`)
	assert.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
	assert.Zero(t, watcher.started)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        apperrors.NewValidationError("email", "Email is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Email is required",
		},
		{
			name:       "backend unreachable",
			err:        &apperrors.NetworkError{Op: "Login failed", Err: errors.New("dial tcp")},
			wantStatus: http.StatusBadGateway,
			wantBody:   "❌",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSessionUC := mocks.NewMockSessionUC(ctrl)
			handler := NewAuthHandler(mockSessionUC)
			mockSessionUC.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := newLoginContext(`{"email":"","password":"secret"}`)
			assert.NoError(t, handler.Login(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestLogin_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAuthHandler(mocks.NewMockSessionUC(ctrl))

	c, rec := newLoginContext(`{invalid_json}`)
	assert.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionUC := mocks.NewMockSessionUC(ctrl)
	watcher := &fakeWatcher{}
	handler := NewAuthHandler(mockSessionUC, watcher)
	mockSessionUC.EXPECT().Logout(gomock.Any())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/console/logout", nil), rec)

	assert.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, watcher.stopped)
	assert.Contains(t, rec.Body.String(), "/console/login")
}

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionUC := mocks.NewMockSessionUC(ctrl)
	handler := NewAuthHandler(mockSessionUC)
	gomock.InOrder(
		mockSessionUC.EXPECT().CurrentUser().Return(nil),
		mockSessionUC.EXPECT().CurrentUser().Return(&models.User{ID: "admin-1"}),
	)

	e := echo.New()
	rec := httptest.NewRecorder()
	assert.NoError(t, handler.Me(e.NewContext(httptest.NewRequest(http.MethodGet, "/console/me", nil), rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	assert.NoError(t, handler.Me(e.NewContext(httptest.NewRequest(http.MethodGet, "/console/me", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin-1")
}
