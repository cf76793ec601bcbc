package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
)

// LoginPath is where an expired or missing session is sent
const LoginPath = "/console/login"

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Code     int    `json:"code,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 with a redirect to the login page
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Success:  false,
		Error:    errorMessage,
		Code:     http.StatusUnauthorized,
		Redirect: LoginPath,
	})
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// AppErrorResponse maps err to a status code and a user-facing message.
// Auth failures always carry the login redirect.
func AppErrorResponse(c echo.Context, err error) error {
	status := apperrors.StatusCode(err)
	if status == http.StatusUnauthorized {
		return UnauthorizedResponse(c, apperrors.Text(err))
	}
	if errors.Is(err, apperrors.ErrSubmitInProgress) || apperrors.IsValidation(err) {
		return ErrorResponseHandler(c, status, apperrors.Text(err))
	}
	return ErrorResponseHandler(c, status, apperrors.FailureMessage(err))
}
