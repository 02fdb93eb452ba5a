package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID        primitive.ObjectID   `bson:"_id" json:"_id"`
	Sender    primitive.ObjectID   `bson:"sender" json:"sender"`
	Title     string               `bson:"title" json:"title"`
	Content   string               `bson:"content" json:"content"`
	PostURL   string               `bson:"postUrl,omitempty" json:"postUrl,omitempty"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}

// PostUpdate is the $set document for an owner edit. An empty PostURL clears
// nothing; the stored value is kept.
type PostUpdate struct {
	Title   string `bson:"title"`
	Content string `bson:"content"`
	PostURL string `bson:"postUrl,omitempty"`
}

// PostFilter narrows a post listing. Zero values match everything.
type PostFilter struct {
	Sender *primitive.ObjectID
	Title  string
}

// LikedBy reports whether userID is in the post's likes.
func (p *Post) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
