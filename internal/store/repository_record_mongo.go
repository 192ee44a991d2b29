// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/models"
)

// recordDocument is the stored shape of a record. The id lives in _id as an
// ObjectID and is exposed as its hex string.
type recordDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Type  string             `bson:"type"`
	Level string             `bson:"level"`
}

func (d recordDocument) toRecord() models.Record {
	return models.Record{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Type:  d.Type,
		Level: models.Level(d.Level),
	}
}

type mongoRecordRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoRecordRepository constructs a [RecordStorage] over collection.
func NewMongoRecordRepository(collection *mongo.Collection, logger *logger.Logger) RecordStorage {
	logger.Debug().Str("collection", collection.Name()).Msg("creating mongo record repository")
	return &mongoRecordRepository{
		collection: collection,
		logger:     logger,
	}
}

func (r *mongoRecordRepository) List(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		log.Err(err).Str("func", "*mongoRecordRepository.List").Msg("error executing find")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []recordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", "*mongoRecordRepository.List").Msg("error decoding documents")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	records := make([]models.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.toRecord())
	}

	return records, nil
}

func (r *mongoRecordRepository) Get(ctx context.Context, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Record{}, ErrInvalidRecordID
	}

	var doc recordDocument
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.Record{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", "*mongoRecordRepository.Get").Str("id", id).Msg("error finding document")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toRecord(), nil
}

func (r *mongoRecordRepository) Create(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	doc := recordDocument{
		Name:  record.Name,
		Type:  record.Type,
		Level: string(record.Level),
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Record{}, ErrRecordAlreadyExists
		}
		log.Err(err).Str("func", "*mongoRecordRepository.Create").Msg("error inserting document")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Error().Str("func", "*mongoRecordRepository.Create").
			Interface("inserted_id", result.InsertedID).
			Msg("unexpected inserted id type")
		return models.Record{}, ErrRecordNotSaved
	}

	doc.ID = objectID
	return doc.toRecord(), nil
}

func (r *mongoRecordRepository) Update(ctx context.Context, id string, patch models.RecordPatch) (models.OperationResult, error) {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.OperationResult{}, ErrInvalidRecordID
	}

	set := bson.D{}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Type != nil {
		set = append(set, bson.E{Key: "type", Value: *patch.Type})
	}
	if patch.Level != nil {
		set = append(set, bson.E{Key: "level", Value: string(*patch.Level)})
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: objectID}},
		bson.D{{Key: "$set", Value: set}},
	)
	if err != nil {
		log.Err(err).Str("func", "*mongoRecordRepository.Update").Str("id", id).Msg("error updating document")
		return models.OperationResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.MatchedCount == 0 {
		return models.OperationResult{}, ErrRecordNotFound
	}

	return models.OperationResult{
		ID:            id,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (r *mongoRecordRepository) Delete(ctx context.Context, id string) (models.OperationResult, error) {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.OperationResult{}, ErrInvalidRecordID
	}

	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}})
	if err != nil {
		log.Err(err).Str("func", "*mongoRecordRepository.Delete").Str("id", id).Msg("error deleting document")
		return models.OperationResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.DeletedCount == 0 {
		return models.OperationResult{}, ErrRecordNotFound
	}

	return models.OperationResult{
		ID:           id,
		DeletedCount: result.DeletedCount,
	}, nil
}
