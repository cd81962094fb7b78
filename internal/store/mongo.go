package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDocument struct {
	Name      string    `bson:"_id"`
	Document  string    `bson:"document"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBackend keeps one document per collection in the "collections"
// collection of the configured database, keyed by collection name.
type MongoBackend struct {
	coll *mongo.Collection
}

func NewMongoBackend(db *mongo.Database) *MongoBackend {
	return &MongoBackend{coll: db.Collection("collections")}
}

func (b *MongoBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var doc mongoDocument
	err := b.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Document), nil
}

func (b *MongoBackend) Write(ctx context.Context, name string, doc []byte) error {
	_, err := b.coll.ReplaceOne(ctx,
		bson.M{"_id": name},
		mongoDocument{Name: name, Document: string(doc), UpdatedAt: time.Now()},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (b *MongoBackend) Ping(ctx context.Context) error {
	return b.coll.Database().Client().Ping(ctx, nil)
}
