// file: repository/repository.go

package repository

import (
	"context"
	"errors"
	"fmt"
	"go-social-api/logger"
	"go-social-api/model"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Repository defines the persistence operations shared by every resource.
type Repository[T any] interface {
	Insert(ctx context.Context, doc *T) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// Collection implements Repository[T] on top of a single MongoDB collection.
// Resource repositories embed it and add their own queries.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

func (c *Collection[T]) log() *logrus.Entry {
	return logger.Log.WithField("collection", c.coll.Name())
}

// Insert stores doc. The caller assigns the document ID.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	log := c.log()
	log.Info("Executing insert")

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.WithError(err).Warn("Insert rejected by unique index")
			return fmt.Errorf("%w: %s", ErrDuplicateKey, err.Error())
		}
		log.WithError(err).Error("Failed to execute insert")
		return err
	}
	return nil
}

// FindByID returns the document with the given ID or ErrNotFound.
func (c *Collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

// DeleteByID removes the document with the given ID or returns ErrNotFound.
func (c *Collection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	log := c.log().WithField("id", id.Hex())
	log.Info("Executing delete by id")

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.WithError(err).Error("Failed to execute delete")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	log := c.log().WithField("filter", filter)
	log.Info("Executing find one")

	var doc T
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to execute find one")
		return nil, err
	}
	return &doc, nil
}

func (c *Collection[T]) findAll(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*T, error) {
	log := c.log().WithField("filter", filter)
	log.Info("Executing find")

	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		log.WithError(err).Error("Failed to execute find")
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []*T{}
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			log.WithError(err).Error("Failed to decode document")
			return nil, err
		}
		docs = append(docs, &doc)
	}
	if err := cursor.Err(); err != nil {
		log.WithError(err).Error("Cursor failed")
		return nil, err
	}
	return docs, nil
}

// findPage returns one page of documents matching filter and the total
// number of matches.
func (c *Collection[T]) findPage(ctx context.Context, filter bson.M, sort bson.D, page model.PageRequest) ([]*T, int64, error) {
	total, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		c.log().WithError(err).Error("Failed to count documents")
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(page.Skip()).
		SetLimit(page.Limit)
	docs, err := c.findAll(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// findOneAndUpdate applies update to the first match and returns the
// document as it is after the update.
func (c *Collection[T]) findOneAndUpdate(ctx context.Context, filter bson.M, update any) (*T, error) {
	log := c.log().WithField("filter", filter)
	log.Info("Executing find one and update")

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc T
	if err := c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, err.Error())
		}
		log.WithError(err).Error("Failed to execute find one and update")
		return nil, err
	}
	return &doc, nil
}

// updateOne applies update to the first match and reports whether a document
// matched.
func (c *Collection[T]) updateOne(ctx context.Context, filter bson.M, update any) (bool, error) {
	log := c.log()
	log.Info("Executing update one")

	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		log.WithError(err).Error("Failed to execute update one")
		return false, err
	}
	return res.MatchedCount > 0, nil
}
