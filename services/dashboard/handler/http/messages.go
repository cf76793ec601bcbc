package http

import "github.com/piresc/rideflex-admin/internal/pkg/apperrors"

func successMessage(message, fallback string) string {
	if message == "" {
		message = fallback
	}
	return apperrors.UserMessage(true, message)
}

func failureMessage(message string) string {
	return apperrors.UserMessage(false, message)
}
