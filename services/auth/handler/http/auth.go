package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/rideflex-admin/internal/pkg/context"
	"github.com/piresc/rideflex-admin/internal/pkg/logger"
	"github.com/piresc/rideflex-admin/internal/utils"
	"github.com/piresc/rideflex-admin/services/auth"
)

// Watcher is started after a sign-in and stopped after a sign-out
type Watcher interface {
	Start()
	Stop()
}

// AuthHandler serves console sign-in and sign-out
type AuthHandler struct {
	sessionUC auth.SessionUC
	watchers  []Watcher
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessionUC auth.SessionUC, watchers ...Watcher) *AuthHandler {
	return &AuthHandler{
		sessionUC: sessionUC,
		watchers:  watchers,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login signs the admin in
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.sessionUC.Login(appctx.FromEchoContext(c), req.Email, req.Password)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if !result.Success {
		logger.Info("Sign-in rejected",
			logger.String("email", utils.MaskEmail(req.Email)),
			logger.String("reason", result.Message))
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, result.Message)
	}

	for _, w := range h.watchers {
		w.Start()
	}

	message := result.Message
	if message == "" {
		message = "Login successful"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, result.User)
}

// Logout signs the admin out. It never fails.
func (h *AuthHandler) Logout(c echo.Context) error {
	for _, w := range h.watchers {
		w.Stop()
	}
	h.sessionUC.Logout(appctx.FromEchoContext(c))

	return utils.SuccessResponse(c, http.StatusOK, "Logged out", map[string]string{"redirect": utils.LoginPath})
}

// Me returns the signed-in admin
func (h *AuthHandler) Me(c echo.Context) error {
	user := h.sessionUC.CurrentUser()
	if user == nil {
		return utils.UnauthorizedResponse(c, "Please sign in")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}
