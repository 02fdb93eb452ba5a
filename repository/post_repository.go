package repository

import (
	"context"
	"go-social-api/logger"
	"go-social-api/model"
	"regexp"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IPostRepository defines the contract for post document operations.
type IPostRepository interface {
	Repository[model.Post]
	List(ctx context.Context, filter model.PostFilter, page model.PageRequest) ([]*model.Post, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update model.PostUpdate) (*model.Post, error)
	ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (*model.Post, error)
}

// PostRepository implements IPostRepository.
type PostRepository struct {
	*Collection[model.Post]
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{Collection: NewCollection[model.Post](db, "posts")}
}

// List returns one page of posts, newest first. Title matches as a
// case-insensitive substring.
func (r *PostRepository) List(ctx context.Context, filter model.PostFilter, page model.PageRequest) ([]*model.Post, int64, error) {
	query := bson.M{}
	if filter.Sender != nil {
		query["sender"] = *filter.Sender
	}
	if filter.Title != "" {
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Title), Options: "i"}
	}
	return r.findPage(ctx, query, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, page)
}

func (r *PostRepository) Update(ctx context.Context, id primitive.ObjectID, update model.PostUpdate) (*model.Post, error) {
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update})
}

// ToggleLike adds userID to the post's likes, or removes it when already
// present, in one atomic update.
func (r *PostRepository) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (*model.Post, error) {
	logger.Log.WithFields(logrus.Fields{
		"post_id": id.Hex(),
		"user_id": userID.Hex(),
	}).Info("Executing query to toggle a like")

	likes := bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}}
	toggle := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "likes", Value: bson.D{{Key: "$cond", Value: bson.D{
			{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{userID, likes}}}},
			{Key: "then", Value: bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: likes},
				{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", userID}}}},
			}}}},
			{Key: "else", Value: bson.D{{Key: "$concatArrays", Value: bson.A{likes, bson.A{userID}}}}},
		}}}}}}},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, toggle)
}
