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

// IUserRepository defines the contract for user document operations,
// including the refresh-token set embedded in each user.
type IUserRepository interface {
	Repository[model.User]
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, username string) ([]*model.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update model.UserUpdate) (*model.User, error)
	PushRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	RemoveRefreshToken(ctx context.Context, id primitive.ObjectID, token string) (bool, error)
	RotateRefreshToken(ctx context.Context, id primitive.ObjectID, oldToken, newToken string) (bool, error)
	ClearRefreshTokens(ctx context.Context, id primitive.ObjectID) error
}

// UserRepository implements IUserRepository.
type UserRepository struct {
	*Collection[model.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Collection: NewCollection[model.User](db, "users")}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// List returns users, optionally narrowed to an exact username. Hashes and
// tokens are not loaded.
func (r *UserRepository) List(ctx context.Context, username string) ([]*model.User, error) {
	filter := bson.M{}
	if username != "" {
		filter["username"] = username
	}
	opts := options.Find().SetProjection(bson.M{"password": 0, "refreshTokens": 0})
	return r.findAll(ctx, filter, opts)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, update model.UserUpdate) (*model.User, error) {
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update})
}

// PushRefreshToken appends token to the user's active set.
func (r *UserRepository) PushRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	logger.Log.WithField("user_id", id.Hex()).Info("Executing query to add a refresh token")

	matched, err := r.updateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"refreshTokens": token}})
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// RemoveRefreshToken pulls token from the set in one conditional update. It
// reports false when the token was not a member (or the user is gone).
func (r *UserRepository) RemoveRefreshToken(ctx context.Context, id primitive.ObjectID, token string) (bool, error) {
	logger.Log.WithField("user_id", id.Hex()).Info("Executing query to remove a refresh token")

	return r.updateOne(ctx,
		bson.M{"_id": id, "refreshTokens": token},
		bson.M{"$pull": bson.M{"refreshTokens": token}},
	)
}

// RotateRefreshToken replaces oldToken with newToken as a single atomic
// update matched on membership of oldToken. Of two concurrent rotations of the
// same token only one can match.
func (r *UserRepository) RotateRefreshToken(ctx context.Context, id primitive.ObjectID, oldToken, newToken string) (bool, error) {
	logger.Log.WithField("user_id", id.Hex()).Info("Executing query to rotate a refresh token")

	rotate := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "refreshTokens", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
			bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: "$refreshTokens"},
				{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", bson.D{{Key: "$literal", Value: oldToken}}}}}},
			}}},
			bson.A{bson.D{{Key: "$literal", Value: newToken}}},
		}}}}}}},
	}
	return r.updateOne(ctx, bson.M{"_id": id, "refreshTokens": oldToken}, rotate)
}

// ClearRefreshTokens revokes every session of the user.
func (r *UserRepository) ClearRefreshTokens(ctx context.Context, id primitive.ObjectID) error {
	logger.Log.WithField("user_id", id.Hex()).Warn("Executing query to clear all refresh tokens")

	_, err := r.updateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"refreshTokens": bson.A{}}})
	return err
}
