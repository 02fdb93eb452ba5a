package handler

import (
	"go-social-api/common"
	"go-social-api/model"
	"go-social-api/service"
	"net/http"
)

type CommentHandler struct {
	service *service.CommentService
}

func NewCommentHandler(s *service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path string               true "Post ID"
// @Param        comment body model.CommentRequest true "Comment"
// @Success      201  {object}  common.Envelope{data=model.Comment}
// @Failure      400  {object}  common.Envelope "Invalid id or blank content"
// @Failure      404  {object}  common.Envelope "Post not found"
// @Router       /comments/{postId} [post]
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request, caller model.Identity) *common.AppError {
	postID, appErr := objectIDParam(r, "postId")
	if appErr != nil {
		return appErr
	}
	var req model.CommentRequest
	if appErr := common.DecodeJSON(r, &req); appErr != nil {
		return appErr
	}

	comment, err := h.service.Create(r.Context(), caller, postID, req)
	if err != nil {
		return toAppError(err, "Could not create comment")
	}
	common.Success(w, http.StatusCreated, comment)
	return nil
}

// ListComments godoc
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        postId query string false "Post ID"
// @Param        page   query int    false "Page, default 1"
// @Param        limit  query int    false "Page size, default 3"
// @Success      200  {object}  common.Envelope{data=model.Page[model.Comment]}
// @Failure      400  {object}  common.Envelope "Invalid postId"
// @Router       /comments [get]
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) *common.AppError {
	postID, appErr := optionalObjectIDQuery(r, "postId")
	if appErr != nil {
		return appErr
	}
	q := r.URL.Query()

	page, err := h.service.List(r.Context(), model.CommentFilter{PostID: postID}, model.NewPageRequest(q.Get("page"), q.Get("limit")))
	if err != nil {
		return toAppError(err, "Could not retrieve comments")
	}
	common.Success(w, http.StatusOK, page)
	return nil
}

// ListCommentsByPost godoc
// @Summary      All comments of a post
// @Tags         comments
// @Produce      json
// @Param        postId path string true "Post ID"
// @Success      200  {object}  common.Envelope{data=[]model.Comment}
// @Failure      400  {object}  common.Envelope "Invalid id"
// @Router       /comments/post/{postId} [get]
func (h *CommentHandler) ListCommentsByPost(w http.ResponseWriter, r *http.Request) *common.AppError {
	postID, appErr := objectIDParam(r, "postId")
	if appErr != nil {
		return appErr
	}

	comments, err := h.service.ListByPost(r.Context(), postID)
	if err != nil {
		return toAppError(err, "Could not retrieve comments")
	}
	common.Success(w, http.StatusOK, comments)
	return nil
}

// GetComment godoc
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Param        id path string true "Comment ID"
// @Success      200  {object}  common.Envelope{data=model.Comment}
// @Failure      400  {object}  common.Envelope "Invalid id"
// @Failure      404  {object}  common.Envelope "Comment not found"
// @Router       /comments/{id} [get]
func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := objectIDParam(r, "id")
	if appErr != nil {
		return appErr
	}

	comment, err := h.service.Get(r.Context(), id)
	if err != nil {
		return toAppError(err, "Could not retrieve comment")
	}
	common.Success(w, http.StatusOK, comment)
	return nil
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string               true "Comment ID"
// @Param        comment body model.CommentRequest true "Comment"
// @Success      200  {object}  common.Envelope{data=model.Comment}
// @Failure      403  {object}  common.Envelope "Not the sender"
// @Failure      404  {object}  common.Envelope "Comment not found"
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request, caller model.Identity) *common.AppError {
	id, appErr := objectIDParam(r, "id")
	if appErr != nil {
		return appErr
	}
	var req model.CommentRequest
	if appErr := common.DecodeJSON(r, &req); appErr != nil {
		return appErr
	}

	comment, err := h.service.Update(r.Context(), caller, id, req)
	if err != nil {
		return toAppError(err, "Could not update comment")
	}
	common.Success(w, http.StatusOK, comment)
	return nil
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  common.Envelope
// @Failure      403  {object}  common.Envelope "Not the sender"
// @Failure      404  {object}  common.Envelope "Comment not found"
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request, caller model.Identity) *common.AppError {
	id, appErr := objectIDParam(r, "id")
	if appErr != nil {
		return appErr
	}

	if err := h.service.Delete(r.Context(), caller, id); err != nil {
		return toAppError(err, "Could not delete comment")
	}
	common.SuccessMessage(w, http.StatusOK, "Comment deleted")
	return nil
}
