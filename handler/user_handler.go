package handler

import (
	"go-social-api/common"
	"go-social-api/model"
	"go-social-api/service"
	"net/http"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        username query string false "Exact username"
// @Success      200  {object}  common.Envelope{data=[]model.User}
// @Failure      500  {object}  common.Envelope
// @Router       /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	users, err := h.service.List(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		return toAppError(err, "Could not retrieve users")
	}
	common.Success(w, http.StatusOK, users)
	return nil
}

// GetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  common.Envelope{data=model.User}
// @Failure      400  {object}  common.Envelope "Invalid id"
// @Failure      404  {object}  common.Envelope "User not found"
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := objectIDParam(r, "id")
	if appErr != nil {
		return appErr
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		return toAppError(err, "Could not retrieve user")
	}
	common.Success(w, http.StatusOK, user)
	return nil
}

// UpdateUser godoc
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        user body model.UpdateUserRequest true "Profile"
// @Success      200  {object}  common.Envelope{data=model.User}
// @Failure      400  {object}  common.Envelope "Invalid field or username/email already exists"
// @Failure      401  {object}  common.Envelope
// @Failure      403  {object}  common.Envelope "Not your profile"
// @Failure      404  {object}  common.Envelope "User not found"
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request, caller model.Identity) *common.AppError {
	id, appErr := objectIDParam(r, "id")
	if appErr != nil {
		return appErr
	}
	var req model.UpdateUserRequest
	if appErr := common.DecodeJSON(r, &req); appErr != nil {
		return appErr
	}

	user, err := h.service.Update(r.Context(), caller, id, req)
	if err != nil {
		return toAppError(err, "Could not update user")
	}
	common.Success(w, http.StatusOK, user)
	return nil
}
