// file: model/user.go

package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the stored account document. Password holds the bcrypt hash and
// RefreshTokens the currently valid refresh tokens; neither is ever serialized.
type User struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	Username      string             `bson:"username" json:"username"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	FirstName     string             `bson:"fname" json:"fname"`
	LastName      string             `bson:"lname" json:"lname"`
	ProfileURL    string             `bson:"profileUrl,omitempty" json:"profileUrl,omitempty"`
	RefreshTokens []string           `bson:"refreshTokens" json:"-"`
}

// UserUpdate is the $set document for a profile update.
type UserUpdate struct {
	Username   string `bson:"username"`
	Email      string `bson:"email"`
	FirstName  string `bson:"fname"`
	LastName   string `bson:"lname"`
	ProfileURL string `bson:"profileUrl,omitempty"`
}

// HasRefreshToken reports whether token is in the active set.
func (u *User) HasRefreshToken(token string) bool {
	for _, t := range u.RefreshTokens {
		if t == token {
			return true
		}
	}
	return false
}
