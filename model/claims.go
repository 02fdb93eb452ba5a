package model

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppClaims is shared by access and refresh tokens. Nonce keeps two tokens
// signed within the same second distinct.
type AppClaims struct {
	UserID string `json:"_id"`
	Nonce  string `json:"random"`
	jwt.RegisteredClaims
}

// Identity is the verified caller, handed to protected handlers.
type Identity struct {
	UserID primitive.ObjectID
}
