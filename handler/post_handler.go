package handler

import (
	"go-social-api/common"
	"go-social-api/model"
	"go-social-api/service"
	"net/http"
)

type PostHandler struct {
	service *service.PostService
}

func NewPostHandler(s *service.PostService) *PostHandler {
	return &PostHandler{service: s}
}

// CreatePost godoc
// @Summary      Create a post
// @Description  The caller becomes the sender of the post.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post body model.PostRequest true "Post"
// @Success      201  {object}  common.Envelope{data=model.Post}
// @Failure      400  {object}  common.Envelope "Blank title or content"
// @Failure      401  {object}  common.Envelope "Missing token"
// @Failure      403  {object}  common.Envelope "Invalid token"
// @Router       /posts [post]
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request, caller model.Identity) *common.AppError {
	var req model.PostRequest
	if appErr := common.DecodeJSON(r, &req); appErr != nil {
		return appErr
	}

	post, err := h.service.Create(r.Context(), caller, req)
	if err != nil {
		return toAppError(err, "Could not create post")
	}
	common.Success(w, http.StatusCreated, post)
	return nil
}

// ListPosts godoc
// @Summary      List posts
// @Description  Newest first. Title matches as a case-insensitive substring.
// @Tags         posts
// @Produce      json
// @Param        sender query string false "Sender user ID"
// @Param        title  query string false "Title contains"
// @Param        page   query int    false "Page, default 1"
// @Param        limit  query int    false "Page size, default 3"
// @Success      200  {object}  common.Envelope{data=model.Page[model.Post]}
// @Failure      400  {object}  common.Envelope "Invalid sender"
// @Router       /posts [get]
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) *common.AppError {
	sender, appErr := optionalObjectIDQuery(r, "sender")
	if appErr != nil {
		return appErr
	}
	q := r.URL.Query()
	filter := model.PostFilter{Sender: sender, Title: q.Get("title")}

	page, err := h.service.List(r.Context(), filter, model.NewPageRequest(q.Get("page"), q.Get("limit")))
	if err != nil {
		return toAppError(err, "Could not retrieve posts")
	}
	common.Success(w, http.StatusOK, page)
	return nil
}

// GetPost godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  common.Envelope{data=model.Post}
// @Failure      400  {object}  common.Envelope "Invalid id"
// @Failure      404  {object}  common.Envelope "Post not found"
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := objectIDParam(r, "id")
	if appErr != nil {
		return appErr
	}

	post, err := h.service.Get(r.Context(), id)
	if err != nil {
		return toAppError(err, "Could not retrieve post")
	}
	common.Success(w, http.StatusOK, post)
	return nil
}

// UpdatePost godoc
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string           true "Post ID"
// @Param        post body model.PostRequest true "Post"
// @Success      200  {object}  common.Envelope{data=model.Post}
// @Failure      400  {object}  common.Envelope "Invalid id or blank field"
// @Failure      403  {object}  common.Envelope "Not the sender"
// @Failure      404  {object}  common.Envelope "Post not found"
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request, caller model.Identity) *common.AppError {
	id, appErr := objectIDParam(r, "id")
	if appErr != nil {
		return appErr
	}
	var req model.PostRequest
	if appErr := common.DecodeJSON(r, &req); appErr != nil {
		return appErr
	}

	post, err := h.service.Update(r.Context(), caller, id, req)
	if err != nil {
		return toAppError(err, "Could not update post")
	}
	common.Success(w, http.StatusOK, post)
	return nil
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Also deletes every comment on the post.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  common.Envelope
// @Failure      403  {object}  common.Envelope "Not the sender"
// @Failure      404  {object}  common.Envelope "Post not found"
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request, caller model.Identity) *common.AppError {
	id, appErr := objectIDParam(r, "id")
	if appErr != nil {
		return appErr
	}

	if err := h.service.Delete(r.Context(), caller, id); err != nil {
		return toAppError(err, "Could not delete post")
	}
	common.SuccessMessage(w, http.StatusOK, "Post deleted")
	return nil
}

// ToggleLike godoc
// @Summary      Like or unlike a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  common.Envelope{data=model.Post}
// @Failure      400  {object}  common.Envelope "Invalid id"
// @Failure      401  {object}  common.Envelope "Missing token"
// @Failure      404  {object}  common.Envelope "Post not found"
// @Router       /posts/like/{id} [put]
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request, caller model.Identity) *common.AppError {
	id, appErr := objectIDParam(r, "id")
	if appErr != nil {
		return appErr
	}

	post, err := h.service.ToggleLike(r.Context(), caller, id)
	if err != nil {
		return toAppError(err, "Could not update likes")
	}
	common.Success(w, http.StatusOK, post)
	return nil
}
