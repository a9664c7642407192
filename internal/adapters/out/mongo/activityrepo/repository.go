package activityrepo

import (
	"context"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "activities"

// MongoActivityRepository implements ports.ActivityRepository on MongoDB.
type MongoActivityRepository struct {
	collection *mongo.Collection
}

func NewMongoActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{collection: db.Collection(CollectionName)}
}

// EnsureIndexes creates the indexes serving per-user and per-type listings.
// It is idempotent.
func (r *MongoActivityRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("user_createdAt"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("type_createdAt"),
		},
	})
	return err
}

func (r *MongoActivityRepository) Add(ctx context.Context, record *activity.Activity) error {
	if err := record.Validate(); err != nil {
		return err
	}

	_, err := r.collection.InsertOne(ctx, fromDomain(record))
	return err
}

// ListForUser returns visible activities newest first.
func (r *MongoActivityRepository) ListForUser(
	ctx context.Context,
	filter ports.ActivityFilter,
) ([]*activity.Activity, int64, error) {
	query := bson.M{"user": filter.UserID.String(), "isVisible": true}
	if filter.Type != "" {
		query["type"] = string(filter.Type)
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	records := make([]*activity.Activity, 0, filter.Limit)
	for cursor.Next(ctx) {
		var doc ActivityDocument
		if err = cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		record, err := toDomain(doc)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}

	if err = cursor.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
