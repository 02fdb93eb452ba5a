package service

import (
	"errors"
	"fmt"
	"go-social-api/config"
	"go-social-api/logger"
	"go-social-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissingSecret = errors.New("token signing secret is not configured")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// TokenPair is the access and refresh token handed out on login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenCodec signs and verifies the HS256 tokens used for both access and
// refresh. The two kinds differ only in lifetime.
type TokenCodec struct {
	cfg config.JWTConfig
	now func() time.Time
}

func NewTokenCodec(cfg config.JWTConfig) *TokenCodec {
	return &TokenCodec{cfg: cfg, now: time.Now}
}

func (c *TokenCodec) key() ([]byte, error) {
	if c.cfg.SecretKey == "" {
		return nil, ErrMissingSecret
	}
	return []byte(c.cfg.SecretKey), nil
}

// Sign issues a token for userID that expires after ttl. Every token carries
// a fresh random nonce.
func (c *TokenCodec) Sign(userID primitive.ObjectID, ttl time.Duration) (string, error) {
	key, err := c.key()
	if err != nil {
		return "", err
	}

	now := c.now()
	claims := &model.AppClaims{
		UserID: userID.Hex(),
		Nonce:  uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, nil
}

// IssuePair signs a new access token and a new refresh token for userID.
func (c *TokenCodec) IssuePair(userID primitive.ObjectID) (*TokenPair, error) {
	access, err := c.Sign(userID, c.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := c.Sign(userID, c.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify checks the signature and expiry of tokenString and returns the user
// ID it was issued for.
func (c *TokenCodec) Verify(tokenString string) (primitive.ObjectID, error) {
	key, err := c.key()
	if err != nil {
		return primitive.NilObjectID, err
	}

	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return userID, nil
}
