package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/espalier/pkg/formschema"
	backend "github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no artifact is cached for a form version.
var ErrCacheMiss = errors.New("artifact not cached")

// Cache stores compiled form artifacts in Redis, keyed by form ID and
// version. The version token changes whenever the form changes, so stale
// entries are simply never requested again and age out via TTL.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached artifacts.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached artifacts.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "espalier:artifact:",
		ttl:    24 * time.Hour,
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(formID, version string) string {
	return c.prefix + formID + ":" + version
}

// Put stores a compiled artifact under its form ID and version.
func (c *Cache) Put(ctx context.Context, artifact *formschema.Artifact) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	if err := c.client.Set(ctx, c.key(artifact.FormID, artifact.Version), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Get retrieves the artifact cached for a form version, or ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, formID, version string) (*formschema.Artifact, error) {
	val, err := c.client.Get(ctx, c.key(formID, version)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var artifact formschema.Artifact
	if err := json.Unmarshal([]byte(val), &artifact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal artifact: %w", err)
	}

	return &artifact, nil
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
