package audit

import (
	"context"
	"encoding/json"

	"github.com/spellwright/grimoire-api/internal/errors"
	"github.com/spellwright/grimoire-api/internal/pkg/clock"
	"github.com/spellwright/grimoire-api/internal/pkg/idgen"
	redisclient "github.com/spellwright/grimoire-api/internal/redis"
)

const (
	recentKey         = "audit:recent"
	entityIndexPrefix = "audit:entity:"

	// Each list keeps a bounded tail; older entries fall off.
	maxRecentEntries = 1000
	maxEntityEntries = 200

	defaultListLimit = 50

	// Error messages
	errVerbEmpty     = "verb cannot be empty"
	errEntityIDEmpty = "entity ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idgen  idgen.Generator
}

// RedisConfig contains configuration for the Redis audit repository.
type RedisConfig struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed audit repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("audit")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		idgen:  gen,
	}, nil
}

func entityKey(entityType, entityID string) string {
	return entityIndexPrefix + entityType + ":" + entityID
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	entry := input.Entry
	if entry.Verb == "" {
		return nil, errors.InvalidArgument(errVerbEmpty)
	}
	if entry.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	if entry.ID == "" {
		entry.ID = r.idgen.Generate()
	}
	if entry.At.IsZero() {
		entry.At = r.clock.Now()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal audit entry")
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, recentKey, data)
	pipe.LTrim(ctx, recentKey, 0, maxRecentEntries-1)

	ek := entityKey(entry.EntityType, entry.EntityID)
	pipe.LPush(ctx, ek, data)
	pipe.LTrim(ctx, ek, 0, maxEntityEntries-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append audit entry")
	}

	return &AppendOutput{Entry: entry}, nil
}

func (r *redisRepository) ListByEntity(ctx context.Context, input ListByEntityInput) (*ListByEntityOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	entries, err := r.list(ctx, entityKey(input.EntityType, input.EntityID), input.Limit)
	if err != nil {
		return nil, err
	}
	return &ListByEntityOutput{Entries: entries}, nil
}

func (r *redisRepository) ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error) {
	entries, err := r.list(ctx, recentKey, input.Limit)
	if err != nil {
		return nil, err
	}
	return &ListRecentOutput{Entries: entries}, nil
}

func (r *redisRepository) list(ctx context.Context, key string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	raw, err := r.client.LRange(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read audit list %s", key)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal audit entry")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
