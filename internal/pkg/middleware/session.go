package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/piresc/rideflex-admin/internal/utils"
)

// SessionReader exposes the signed-in admin, nil when signed out
type SessionReader interface {
	CurrentUser() *models.User
}

// SessionGuard rejects requests without an authenticated session and
// stores the admin id for handlers and audit events.
func SessionGuard(session SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := session.CurrentUser()
			if user == nil {
				return utils.UnauthorizedResponse(c, "Please sign in")
			}

			c.Set("admin_id", user.ID)
			SetAdminID(c, user.ID)

			return next(c)
		}
	}
}

// RoleChecker answers role and claim questions about the signed-in admin
type RoleChecker interface {
	HasRole(role string) bool
	HasClaim(claim string) bool
}

// RequireRole lets the request through when the admin holds any of roles
func RequireRole(checker RoleChecker, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, role := range roles {
				if checker.HasRole(role) {
					return next(c)
				}
			}
			return utils.ErrorResponseHandler(c, http.StatusForbidden, "You do not have access to this page")
		}
	}
}

// RequireClaim lets the request through when the admin holds claim
func RequireClaim(checker RoleChecker, claim string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !checker.HasClaim(claim) {
				return utils.ErrorResponseHandler(c, http.StatusForbidden, "You do not have access to this action")
			}
			return next(c)
		}
	}
}
