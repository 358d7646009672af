package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBIndexer struct {
	ctx      context.Context
	Database *mongo.Database
}

func NewMongoDBIndexer(ctx context.Context, client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		ctx:      ctx,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func (m *MongoDBIndexer) IndexAll() error {
	return m.IndexAreaCollection()
}

// IndexAreaCollection - indexes used by the staleness check, the dataset
// cleanup and geo lookups
func (m *MongoDBIndexer) IndexAreaCollection() error {
	if err := m.createIndex(AreaCollection, mongo.IndexModel{
		Keys: bson.M{
			"datasetId": 1,
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(AreaCollection, mongo.IndexModel{
		Keys: bson.M{
			"version": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(AreaCollection, mongo.IndexModel{
		Keys: bson.M{
			"geometry": "2dsphere",
		},
	})
}
