package service

import (
	"context"
	"errors"
	"fmt"
	"go-social-api/common"
	"go-social-api/logger"
	"go-social-api/model"
	"go-social-api/repository"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrEmailTaken           = errors.New("email already exists")
	ErrIncorrectCredentials = errors.New("username or password is incorrect")
	ErrMissingToken         = errors.New("no bearer token")
	ErrTokenReuse           = errors.New("refresh token is not active")
	ErrUserNotFound         = errors.New("user not found")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
)

// LoginResult is returned to the client after a successful login.
type LoginResult struct {
	ID           primitive.ObjectID `json:"_id"`
	Username     string             `json:"username"`
	UserPic      string             `json:"userPic,omitempty"`
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
}

// RefreshResult is returned to the client after a successful refresh.
type RefreshResult struct {
	ID           primitive.ObjectID `json:"_id"`
	Username     string             `json:"username"`
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
}

// AuthService handles registration, login and the refresh-token lifecycle.
type AuthService struct {
	users      repository.IUserRepository
	tokens     *TokenCodec
	limiter    LoginLimiter
	bcryptCost int
}

func NewAuthService(users repository.IUserRepository, tokens *TokenCodec, limiter LoginLimiter, bcryptCost int) *AuthService {
	if limiter == nil {
		limiter = NoopLoginLimiter{}
	}
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		limiter:    limiter,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ExtractBearerToken returns the second space separated part of an
// Authorization header. The scheme itself is not checked.
func ExtractBearerToken(header string) (string, error) {
	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrMissingToken
	}
	return parts[1], nil
}

// Register validates the payload, checks uniqueness and stores a new user
// with an empty refresh-token set.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	if err := checkUnique(ctx, s.users, primitive.NilObjectID, req.Username, req.Email); err != nil {
		return nil, err
	}

	hashed, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:            primitive.NewObjectID(),
		Username:      req.Username,
		Email:         req.Email,
		Password:      hashed,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ProfileURL:    req.ProfileURL,
		RefreshTokens: []string{},
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, conflictError(err)
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id":  user.ID.Hex(),
		"username": user.Username,
	}).Info("User registered")
	return user, nil
}

// checkUnique reports a conflict when username or email belongs to a user
// other than self.
func checkUnique(ctx context.Context, users repository.IUserRepository, self primitive.ObjectID, username, email string) error {
	existing, err := users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing != nil && existing.ID != self {
		return ErrUsernameTaken
	}

	existing, err = users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing != nil && existing.ID != self {
		return ErrEmailTaken
	}
	return nil
}

// emailIndex is the unique index on users.email created by the migrations.
const emailIndex = "email_unique"

// conflictError maps a unique-index violation that slipped past the lookup
// to the matching conflict.
func conflictError(err error) error {
	if !errors.Is(err, repository.ErrDuplicateKey) {
		return err
	}
	// The message also carries the duplicate value, so only the index name
	// is reliable.
	if strings.Contains(err.Error(), "index: "+emailIndex) {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// Login verifies the credentials and starts a new session. Unknown users and
// wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*LoginResult, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	log := logger.Log.WithField("username", req.Username)
	if !s.limiter.Allow(ctx, req.Username) {
		log.Warn("Login blocked after too many failed attempts")
		return nil, ErrTooManyLoginAttempts
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.limiter.RecordFailure(ctx, req.Username)
			return nil, ErrIncorrectCredentials
		}
		return nil, err
	}
	if !s.CheckPasswordHash(req.Password, user.Password) {
		s.limiter.RecordFailure(ctx, req.Username)
		log.Info("Login failed")
		return nil, ErrIncorrectCredentials
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.users.PushRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, err
	}
	s.limiter.Reset(ctx, req.Username)

	log.WithField("user_id", user.ID.Hex()).Info("User logged in")
	return &LoginResult{
		ID:           user.ID,
		Username:     user.Username,
		UserPic:      user.ProfileURL,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// verifyRefresh runs the checks shared by refresh and logout: token present,
// secret configured, token valid, user exists.
func (s *AuthService) verifyRefresh(ctx context.Context, authHeader string) (*model.User, string, error) {
	token, err := ExtractBearerToken(authHeader)
	if err != nil {
		return nil, "", err
	}
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, "", err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	return user, token, nil
}

// revokeAll clears every session of the user after a refresh token that is
// not in the active set was presented.
func (s *AuthService) revokeAll(ctx context.Context, userID primitive.ObjectID) error {
	logger.Log.WithField("user_id", userID.Hex()).Warn("Refresh token reuse detected, revoking all sessions")
	if err := s.users.ClearRefreshTokens(ctx, userID); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return ErrTokenReuse
}

// Refresh exchanges an active refresh token for a new pair. The old token is
// swapped for the new one in a single conditional update, so a token can be
// used at most once.
func (s *AuthService) Refresh(ctx context.Context, authHeader string) (*RefreshResult, error) {
	user, token, err := s.verifyRefresh(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}
	rotated, err := s.users.RotateRefreshToken(ctx, user.ID, token, pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !rotated {
		return nil, s.revokeAll(ctx, user.ID)
	}

	logger.Log.WithField("user_id", user.ID.Hex()).Info("Refresh token rotated")
	return &RefreshResult{
		ID:           user.ID,
		Username:     user.Username,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout ends the session of one refresh token.
func (s *AuthService) Logout(ctx context.Context, authHeader string) error {
	user, token, err := s.verifyRefresh(ctx, authHeader)
	if err != nil {
		return err
	}

	removed, err := s.users.RemoveRefreshToken(ctx, user.ID, token)
	if err != nil {
		return err
	}
	if !removed {
		return s.revokeAll(ctx, user.ID)
	}

	logger.Log.WithField("user_id", user.ID.Hex()).Info("User logged out")
	return nil
}

// Authenticate verifies an access token without touching the database.
func (s *AuthService) Authenticate(authHeader string) (model.Identity, error) {
	token, err := ExtractBearerToken(authHeader)
	if err != nil {
		return model.Identity{}, err
	}
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return model.Identity{}, err
	}
	return model.Identity{UserID: userID}, nil
}
