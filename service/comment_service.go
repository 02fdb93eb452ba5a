package service

import (
	"context"
	"errors"
	"go-social-api/common"
	"go-social-api/logger"
	"go-social-api/model"
	"go-social-api/repository"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService struct {
	comments repository.ICommentRepository
	posts    repository.IPostRepository
}

func NewCommentService(comments repository.ICommentRepository, posts repository.IPostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create adds a comment by the caller to an existing post.
func (s *CommentService) Create(ctx context.Context, caller model.Identity, postID primitive.ObjectID, req model.CommentRequest) (*model.Comment, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		ID:        primitive.NewObjectID(),
		PostID:    postID,
		Sender:    caller.UserID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := s.comments.Insert(ctx, comment); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"comment_id": comment.ID.Hex(),
		"post_id":    postID.Hex(),
	}).Info("Comment created")
	return comment, nil
}

func (s *CommentService) List(ctx context.Context, filter model.CommentFilter, page model.PageRequest) (*model.Page[model.Comment], error) {
	comments, total, err := s.comments.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return model.NewPage(comments, total, page), nil
}

// ListByPost returns every comment of a post, oldest first.
func (s *CommentService) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*model.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

func (s *CommentService) Get(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCommentNotFound
	}
	return comment, err
}

func (s *CommentService) owned(ctx context.Context, caller model.Identity, id primitive.ObjectID) error {
	comment, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if comment.Sender != caller.UserID {
		return ErrNotOwner
	}
	return nil
}

func (s *CommentService) Update(ctx context.Context, caller model.Identity, id primitive.ObjectID, req model.CommentRequest) (*model.Comment, error) {
	if err := s.owned(ctx, caller, id); err != nil {
		return nil, err
	}
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	comment, err := s.comments.UpdateContent(ctx, id, req.Content)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCommentNotFound
	}
	return comment, err
}

func (s *CommentService) Delete(ctx context.Context, caller model.Identity, id primitive.ObjectID) error {
	if err := s.owned(ctx, caller, id); err != nil {
		return err
	}
	if err := s.comments.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
