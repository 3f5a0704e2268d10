package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/espalier/internal/adapters/redis"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/formschema"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, opts ...redis.Option) *redis.Cache {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	cache := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func compiledArtifact(t *testing.T) *formschema.Artifact {
	t.Helper()

	form := domain.Form{
		ID:        "f1",
		Name:      "Application",
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Fields: []domain.Field{
			{ID: "fld-1", Name: "email", Type: domain.FieldEmail, Required: true},
		},
	}
	return formschema.Compile(form)
}

func TestCache_PutGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	artifact := compiledArtifact(t)
	require.NoError(t, cache.Put(ctx, artifact))

	got, err := cache.Get(ctx, artifact.FormID, artifact.Version)
	require.NoError(t, err)
	assert.Equal(t, artifact.FormName, got.FormName)
	assert.Equal(t, artifact.JSONSchema.Required, got.JSONSchema.Required)
}

func TestCache_Miss(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "f1", "2026-01-02T03:04:05Z")
	assert.ErrorIs(t, err, redis.ErrCacheMiss)
}

func TestCache_VersionIsolation(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	artifact := compiledArtifact(t)
	require.NoError(t, cache.Put(ctx, artifact))

	// A different version token means the entry is not reused.
	_, err := cache.Get(ctx, artifact.FormID, "2026-02-01T00:00:00Z")
	assert.ErrorIs(t, err, redis.ErrCacheMiss)
}
