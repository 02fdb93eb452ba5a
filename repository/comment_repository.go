package repository

import (
	"context"
	"go-social-api/logger"
	"go-social-api/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ICommentRepository defines the contract for comment document operations.
type ICommentRepository interface {
	Repository[model.Comment]
	List(ctx context.Context, filter model.CommentFilter, page model.PageRequest) ([]*model.Comment, int64, error)
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*model.Comment, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*model.Comment, error)
	DeleteByPostID(ctx context.Context, postID primitive.ObjectID) (int64, error)
}

// CommentRepository implements ICommentRepository.
type CommentRepository struct {
	*Collection[model.Comment]
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{Collection: NewCollection[model.Comment](db, "comments")}
}

var oldestFirst = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

func (r *CommentRepository) List(ctx context.Context, filter model.CommentFilter, page model.PageRequest) ([]*model.Comment, int64, error) {
	query := bson.M{}
	if filter.PostID != nil {
		query["postId"] = *filter.PostID
	}
	return r.findPage(ctx, query, oldestFirst, page)
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*model.Comment, error) {
	return r.findAll(ctx, bson.M{"postId": postID}, options.Find().SetSort(oldestFirst))
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*model.Comment, error) {
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"content": content}})
}

// DeleteByPostID removes every comment of a post and returns how many went.
func (r *CommentRepository) DeleteByPostID(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	log := logger.Log.WithField("post_id", postID.Hex())
	log.Info("Executing query to delete comments by post")

	res, err := r.coll.DeleteMany(ctx, bson.M{"postId": postID})
	if err != nil {
		log.WithError(err).Error("Failed to execute delete comments by post query")
		return 0, err
	}
	return res.DeletedCount, nil
}
