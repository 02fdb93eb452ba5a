package handler

import (
	"go-social-api/common"
	"go-social-api/logger"
	"go-social-api/model"
	"go-social-api/service"
	"net/http"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user. The username must be alphanumeric with at least 8 characters and the password must be strong.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "New user"
// @Success      201  {object}  common.Envelope{data=model.User}
// @Failure      400  {object}  common.Envelope "Missing or invalid field, username or email already exists"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		return toAppError(err, "Could not register user")
	}

	common.Success(w, http.StatusCreated, user)
	return nil
}

// Login godoc
// @Summary      Log in
// @Description  Verifies the credentials and returns a new access and refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Username and password"
// @Success      200  {object}  common.Envelope{data=service.LoginResult}
// @Failure      400  {object}  common.Envelope "Missing fields or incorrect credentials"
// @Failure      429  {object}  common.Envelope "Too many failed attempts"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		return toAppError(err, "Could not log in")
	}

	common.Success(w, http.StatusOK, result)
	return nil
}

// Logout godoc
// @Summary      Log out
// @Description  Ends the session of the refresh token in the Authorization header. An unknown token revokes every session of the user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Envelope
// @Failure      401  {object}  common.Envelope "Missing token"
// @Failure      403  {object}  common.Envelope "Invalid, expired or reused token"
// @Failure      404  {object}  common.Envelope "User not found"
// @Failure      500  {object}  common.Envelope "Missing authentication configuration"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := h.service.Logout(r.Context(), r.Header.Get("Authorization")); err != nil {
		return toAppError(err, "Could not log out")
	}

	common.SuccessMessage(w, http.StatusOK, "Logged out successfully")
	return nil
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Exchanges the refresh token in the Authorization header for a new token pair. Each refresh token works once.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.Envelope{data=service.RefreshResult}
// @Failure      401  {object}  common.Envelope "Missing token"
// @Failure      403  {object}  common.Envelope "Invalid, expired or reused token"
// @Failure      404  {object}  common.Envelope "User not found"
// @Failure      500  {object}  common.Envelope "Missing authentication configuration"
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	result, err := h.service.Refresh(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		return toAppError(err, "Could not refresh token")
	}

	logger.Log.WithField("user_id", result.ID.Hex()).Info("Token pair refreshed")
	common.Success(w, http.StatusOK, result)
	return nil
}
