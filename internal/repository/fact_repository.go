package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FactDocument is the stored form of one fun fact.
type FactDocument struct {
	Number    int64     `bson:"number"`
	Fact      string    `bson:"fact"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// FactRepository stores one document per number in MongoDB.
type FactRepository struct {
	db *MongoDB
}

// NewFactRepository creates a new fact repository.
func NewFactRepository(db *MongoDB) *FactRepository {
	return &FactRepository{db: db}
}

// LoadAll returns every stored fact.
func (r *FactRepository) LoadAll(ctx context.Context) (map[int]string, error) {
	facts := make(map[int]string)

	cursor, err := r.db.Facts.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"number": 1, "fact": 1}))
	if err != nil {
		return facts, fmt.Errorf("find facts: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc FactDocument
		if err := cursor.Decode(&doc); err != nil {
			return facts, fmt.Errorf("decode fact: %w", err)
		}
		facts[int(doc.Number)] = doc.Fact
	}
	if err := cursor.Err(); err != nil {
		return facts, fmt.Errorf("iterate facts: %w", err)
	}
	return facts, nil
}

// Put upserts the fact for number.
func (r *FactRepository) Put(ctx context.Context, number int, fact string) error {
	now := time.Now().UTC()
	_, err := r.db.Facts.UpdateOne(
		ctx,
		bson.M{"number": int64(number)},
		bson.M{
			"$set":         bson.M{"fact": fact, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert fact %d: %w", number, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (r *FactRepository) Close(ctx context.Context) error {
	return r.db.Close(ctx)
}
