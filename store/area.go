package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/autonomy-areas/schema"
)

//go:generate mockgen -source=area.go -destination=../mocks/area.go -package=mocks

// Area - operations on stored area boundaries
type Area interface {
	HasAreaVersion(ctx context.Context, version string) (bool, error)
	DeleteDatasetAreas(ctx context.Context, datasetID string) (int64, error)
	AddArea(ctx context.Context, area schema.Area) error
	ListDatasetAreas(ctx context.Context, datasetID string) ([]schema.Area, error)
	CountDatasetAreas(ctx context.Context, datasetID string) (int64, error)
}

// HasAreaVersion - whether any area of the given version is stored, whatever its dataset
func (m *mongoDB) HasAreaVersion(ctx context.Context, version string) (bool, error) {
	c := m.client.Database(m.database).Collection(schema.AreaCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"version": bson.M{
			"$eq": version,
		},
	}

	var a schema.Area
	if err := c.FindOne(ctx, query).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}

		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"version": version,
			"error":   err,
		}).Error("find area by version")
		return false, err
	}

	log.WithFields(log.Fields{
		"prefix":     mongoLogPrefix,
		"version":    version,
		"dataset_id": a.DatasetID,
		"name":       a.Name,
	}).Debug("area with version exists")

	return true, nil
}

// DeleteDatasetAreas - remove every area of a dataset, returns the number removed
func (m *mongoDB) DeleteDatasetAreas(ctx context.Context, datasetID string) (int64, error) {
	c := m.client.Database(m.database).Collection(schema.AreaCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"datasetId": bson.M{
			"$eq": datasetID,
		},
	}

	result, err := c.DeleteMany(ctx, query)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"dataset_id": datasetID,
			"error":      err,
		}).Error("delete dataset areas")
		return 0, err
	}

	return result.DeletedCount, nil
}

func (m *mongoDB) AddArea(ctx context.Context, area schema.Area) error {
	c := m.client.Database(m.database).Collection(schema.AreaCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := c.InsertOne(ctx, area); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"dataset_id": area.DatasetID,
			"name":       area.Name,
			"error":      err,
		}).Error("insert area")
		return err
	}

	return nil
}

func (m *mongoDB) ListDatasetAreas(ctx context.Context, datasetID string) ([]schema.Area, error) {
	c := m.client.Database(m.database).Collection(schema.AreaCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, bson.M{"datasetId": datasetID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := make([]schema.Area, 0)
	for cur.Next(ctx) {
		var a schema.Area
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		result = append(result, a)
	}

	return result, cur.Err()
}

func (m *mongoDB) CountDatasetAreas(ctx context.Context, datasetID string) (int64, error) {
	c := m.client.Database(m.database).Collection(schema.AreaCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return c.CountDocuments(ctx, bson.M{"datasetId": datasetID})
}
