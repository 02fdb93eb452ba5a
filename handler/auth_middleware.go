package handler

import (
	"go-social-api/common"
	"go-social-api/model"
	"net/http"
)

// Authenticator verifies the access token carried by a request.
type Authenticator interface {
	Authenticate(authHeader string) (model.Identity, error)
}

// AuthenticatedHandler is a handler that needs the verified caller.
type AuthenticatedHandler func(w http.ResponseWriter, r *http.Request, caller model.Identity) *common.AppError

// RequireAuth verifies the access token before next runs and passes the
// caller's identity to it. Missing tokens are 401, invalid ones 403.
func RequireAuth(auth Authenticator, next AuthenticatedHandler) func(http.ResponseWriter, *http.Request) *common.AppError {
	return func(w http.ResponseWriter, r *http.Request) *common.AppError {
		caller, err := auth.Authenticate(r.Header.Get("Authorization"))
		if err != nil {
			return toAppError(err, "Could not authenticate request")
		}
		return next(w, r, caller)
	}
}
