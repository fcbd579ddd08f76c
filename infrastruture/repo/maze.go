package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of generated mazes in MongoDB.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts a maze record, replacing any record with the same ID.
func (r *MazeRepo) Save(ctx context.Context, record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, filter, record, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze record by its ID.
// Returns dmn.ErrMazeNotFound if there is no such record.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var record dmn.MazeRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}

// List returns up to limit records, newest first.
func (r *MazeRepo) List(ctx context.Context, limit int64) ([]*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	records := []*dmn.MazeRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}

// Delete removes a maze record by its ID.
// Returns dmn.ErrMazeNotFound if there is no such record.
func (r *MazeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	if result.DeletedCount == 0 {
		return dmn.ErrMazeNotFound
	}
	return nil
}
