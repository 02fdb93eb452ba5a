package handler

import (
	"errors"
	"go-social-api/common"
	"go-social-api/service"
	"net/http"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) *common.AppError {
	return common.NewAppError(http.StatusNotFound, "Route not found", nil)
}

// errorStatus maps service errors to the status code and message sent to the
// client. Token failures deliberately share one message.
var errorStatus = []struct {
	err     error
	code    int
	message string
}{
	{service.ErrUsernameTaken, http.StatusBadRequest, "Username already exists"},
	{service.ErrEmailTaken, http.StatusBadRequest, "Email already exists"},
	{service.ErrIncorrectCredentials, http.StatusBadRequest, "Username or password is incorrect"},
	{service.ErrFileTooLarge, http.StatusBadRequest, "File is too large"},
	{service.ErrEmptyFile, http.StatusBadRequest, "No file uploaded"},
	{service.ErrMissingToken, http.StatusUnauthorized, "Access Denied"},
	{service.ErrInvalidToken, http.StatusForbidden, "Unauthorized"},
	{service.ErrTokenReuse, http.StatusForbidden, "Unauthorized"},
	{service.ErrNotOwner, http.StatusForbidden, "Unauthorized"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrPostNotFound, http.StatusNotFound, "Post not found"},
	{service.ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
	{service.ErrTooManyLoginAttempts, http.StatusTooManyRequests, "Too many failed login attempts, try again later"},
	{service.ErrMissingSecret, http.StatusInternalServerError, "Missing authentication configuration"},
}

// toAppError converts an error returned by a service into the response sent
// to the client. Anything unrecognised is a 500 with the cause logged.
func toAppError(err error, fallback string) *common.AppError {
	var vErr *common.ValidationError
	if errors.As(err, &vErr) {
		return common.NewAppError(http.StatusBadRequest, vErr.Message, nil)
	}
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			var cause error
			if e.code >= http.StatusInternalServerError {
				cause = err
			}
			return common.NewAppError(e.code, e.message, cause)
		}
	}
	return common.NewAppError(http.StatusInternalServerError, fallback, err)
}
