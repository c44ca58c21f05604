//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/number-classifier/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uri := getSharedContainerURI()
	dbName := sanitizeDBName(t.Name())

	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.NotNil(t, db.Facts)
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("unique index on number", func(t *testing.T) {
		cursor, err := db.Facts.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		found := false
		for _, idx := range indexes {
			if unique, ok := idx["unique"].(bool); ok && unique {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestNewMongoDB_InvalidURI(t *testing.T) {
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 500 * time.Millisecond
	cfg.ServerSelectionTimeout = 500 * time.Millisecond

	db, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)

	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestFactRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()
	repo := NewFactRepository(db)

	t.Run("empty collection", func(t *testing.T) {
		facts, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, facts)
	})

	t.Run("put and load", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, 28, "28 is perfect."))
		require.NoError(t, repo.Put(ctx, -7, "minus seven"))

		facts, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "28 is perfect.", facts[28])
		assert.Equal(t, "minus seven", facts[-7])
	})

	t.Run("put upserts by number", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, 153, "first"))
		require.NoError(t, repo.Put(ctx, 153, "second"))

		count, err := db.Facts.CountDocuments(ctx, bson.M{"number": int64(153)})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		var doc FactDocument
		require.NoError(t, db.Facts.FindOne(ctx, bson.M{"number": int64(153)}).Decode(&doc))
		assert.Equal(t, "second", doc.Fact)
		assert.False(t, doc.CreatedAt.IsZero())
		assert.False(t, doc.UpdatedAt.Before(doc.CreatedAt))
	})
}

func TestFactStoreWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	store := NewFactStoreWithCircuitBreaker(NewFactRepository(db), circuitbreaker.New(circuitbreaker.DefaultConfig()))

	require.NoError(t, store.Put(ctx, 8128, "8128 is perfect."))
	facts, err := store.LoadAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, map[int]string{8128: "8128 is perfect."}, facts)
	assert.Equal(t, circuitbreaker.StateClosed, store.GetCircuitBreaker().State())
}
