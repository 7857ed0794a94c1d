package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID returns a fresh document id. Both storage backends key documents by
// the hex form of a Mongo ObjectID so ids stay portable between them.
func NewID() string {
	return primitive.NewObjectID().Hex()
}
