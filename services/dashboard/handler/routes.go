package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/rideflex-admin/internal/pkg/middleware"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/piresc/rideflex-admin/services/auth"
	authHTTP "github.com/piresc/rideflex-admin/services/auth/handler/http"
	"github.com/piresc/rideflex-admin/services/backend"
	"github.com/piresc/rideflex-admin/services/dashboard"
	httpHandler "github.com/piresc/rideflex-admin/services/dashboard/handler/http"
)

// Handler combines all handlers of the console
type Handler struct {
	authHTTP       *authHTTP.AuthHandler
	dashboardHTTP  *httpHandler.DashboardHandler
	backofficeHTTP *httpHandler.BackofficeHandler
	sessionUC      auth.SessionUC
	cfg            models.ConsoleConfig
}

// dialogReset drops the open dialog on sign-out
type dialogReset struct {
	controllerUC dashboard.ControllerUC
}

func (d dialogReset) Start() {}
func (d dialogReset) Stop()  { d.controllerUC.Reset() }

// NewHandler creates a new combined handler. The poller runs only while an
// admin is signed in.
func NewHandler(
	sessionUC auth.SessionUC,
	pollerUC dashboard.PollerUC,
	controllerUC dashboard.ControllerUC,
	apiUC backend.APIUC,
	cfg models.ConsoleConfig,
) *Handler {
	return &Handler{
		authHTTP:       authHTTP.NewAuthHandler(sessionUC, pollerUC, dialogReset{controllerUC}),
		dashboardHTTP:  httpHandler.NewDashboardHandler(pollerUC, controllerUC),
		backofficeHTTP: httpHandler.NewBackofficeHandler(apiUC),
		sessionUC:      sessionUC,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all console routes. loginLimiter may be nil.
func (h *Handler) RegisterRoutes(e *echo.Echo, loginLimiter echo.MiddlewareFunc) {
	console := e.Group("/console")

	// Public
	if loginLimiter != nil {
		console.POST("/login", h.authHTTP.Login, loginLimiter)
	} else {
		console.POST("/login", h.authHTTP.Login)
	}

	// Signed-in admins only
	private := console.Group("", middleware.SessionGuard(h.sessionUC))
	private.POST("/logout", h.authHTTP.Logout)
	private.GET("/me", h.authHTTP.Me)

	if len(h.cfg.AllowedRoles) > 0 {
		private = private.Group("", middleware.RequireRole(h.sessionUC, h.cfg.AllowedRoles...))
	}

	private.GET("/dashboard", h.dashboardHTTP.GetDashboard)
	private.POST("/dashboard/refresh", h.dashboardHTTP.RefreshDashboard)

	dialog := private.Group("/dialog")
	dialog.GET("", h.dashboardHTTP.GetDialog)
	dialog.DELETE("", h.dashboardHTTP.CloseDialog)
	dialog.PUT("/form", h.dashboardHTTP.UpdateForm)
	dialog.POST("/submit", h.dashboardHTTP.Submit)
	dialog.POST("/unassign", h.dashboardHTTP.Unassign)
	dialog.POST("/call", h.dashboardHTTP.CallCustomer)
	dialog.POST("/complete/request", h.dashboardHTTP.RequestComplete)
	dialog.POST("/complete/confirm", h.dashboardHTTP.ConfirmComplete)
	dialog.POST("/:kind", h.dashboardHTTP.OpenDialog)

	private.GET("/chat-bookings", h.backofficeHTTP.ListChatBookings)
	private.GET("/call-logs", h.backofficeHTTP.ListCallLogs)
	private.POST("/calls", h.backofficeHTTP.CallNumbers)
	private.POST("/sms", h.backofficeHTTP.SendSMS)
	private.GET("/payments", h.backofficeHTTP.ListPayments)
	private.GET("/webhooks", h.backofficeHTTP.ListWebhooks)
	private.GET("/settings", h.backofficeHTTP.GetSettings)
	private.GET("/settings/secrets", h.backofficeHTTP.ListSecrets)
	if h.cfg.SecretsClaim != "" {
		private.POST("/settings/secrets", h.backofficeHTTP.UpdateSecret, middleware.RequireClaim(h.sessionUC, h.cfg.SecretsClaim))
	} else {
		private.POST("/settings/secrets", h.backofficeHTTP.UpdateSecret)
	}
}
