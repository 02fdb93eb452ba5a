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

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	posts    repository.IPostRepository
	comments repository.ICommentRepository
}

func NewPostService(posts repository.IPostRepository, comments repository.ICommentRepository) *PostService {
	return &PostService{posts: posts, comments: comments}
}

// Create stores a new post sent by the caller.
func (s *PostService) Create(ctx context.Context, caller model.Identity, req model.PostRequest) (*model.Post, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	post := &model.Post{
		ID:        primitive.NewObjectID(),
		Sender:    caller.UserID,
		Title:     req.Title,
		Content:   req.Content,
		PostURL:   req.PostURL,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"post_id": post.ID.Hex(),
		"sender":  post.Sender.Hex(),
	}).Info("Post created")
	return post, nil
}

func (s *PostService) List(ctx context.Context, filter model.PostFilter, page model.PageRequest) (*model.Page[model.Post], error) {
	posts, total, err := s.posts.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return model.NewPage(posts, total, page), nil
}

func (s *PostService) Get(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return post, err
}

// owned loads the post and checks that the caller sent it.
func (s *PostService) owned(ctx context.Context, caller model.Identity, id primitive.ObjectID) (*model.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Sender != caller.UserID {
		return nil, ErrNotOwner
	}
	return post, nil
}

func (s *PostService) Update(ctx context.Context, caller model.Identity, id primitive.ObjectID, req model.PostRequest) (*model.Post, error) {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return nil, err
	}
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	post, err := s.posts.Update(ctx, id, model.PostUpdate{
		Title:   req.Title,
		Content: req.Content,
		PostURL: req.PostURL,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return post, err
}

// Delete removes the caller's post together with all of its comments.
func (s *PostService) Delete(ctx context.Context, caller model.Identity, id primitive.ObjectID) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}

	removed, err := s.comments.DeleteByPostID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.posts.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"post_id":          id.Hex(),
		"comments_deleted": removed,
	}).Info("Post deleted")
	return nil
}

// ToggleLike likes the post for the caller, or takes the like back.
func (s *PostService) ToggleLike(ctx context.Context, caller model.Identity, id primitive.ObjectID) (*model.Post, error) {
	post, err := s.posts.ToggleLike(ctx, id, caller.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return post, err
}
