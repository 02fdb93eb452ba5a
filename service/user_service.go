package service

import (
	"context"
	"errors"
	"go-social-api/common"
	"go-social-api/logger"
	"go-social-api/model"
	"go-social-api/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotOwner is returned when the caller tries to change something that
// belongs to another user.
var ErrNotOwner = errors.New("caller does not own the resource")

// UserService handles user-related business logic.
type UserService struct {
	userRepo repository.IUserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns public user profiles, optionally only the one with username.
func (s *UserService) List(ctx context.Context, username string) ([]*model.User, error) {
	return s.userRepo.List(ctx, username)
}

func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// Update changes the caller's own profile. Username and email stay unique
// across other users.
func (s *UserService) Update(ctx context.Context, caller model.Identity, id primitive.ObjectID, req model.UpdateUserRequest) (*model.User, error) {
	if caller.UserID != id {
		return nil, ErrNotOwner
	}
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	if err := checkUnique(ctx, s.userRepo, id, req.Username, req.Email); err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateProfile(ctx, id, model.UserUpdate{
		Username:   req.Username,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		ProfileURL: req.ProfileURL,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, conflictError(err)
	}

	logger.Log.WithField("user_id", id.Hex()).Info("User profile updated")
	return user, nil
}
