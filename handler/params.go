package handler

import (
	"go-social-api/common"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectIDParam parses the named path value as a document ID.
func objectIDParam(r *http.Request, name string) (primitive.ObjectID, *common.AppError) {
	id, err := primitive.ObjectIDFromHex(r.PathValue(name))
	if err != nil {
		return primitive.NilObjectID, common.NewAppError(http.StatusBadRequest, "Invalid "+name, nil)
	}
	return id, nil
}

// optionalObjectIDQuery parses the named query value, if present.
func optionalObjectIDQuery(r *http.Request, name string) (*primitive.ObjectID, *common.AppError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, common.NewAppError(http.StatusBadRequest, "Invalid "+name, nil)
	}
	return &id, nil
}
