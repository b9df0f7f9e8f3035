package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/errors"
	redisclient "github.com/spellwright/grimoire-api/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	playerIndexPrefix  = "character:player:"

	// Error messages
	errSheetNil      = "character sheet cannot be nil"
	errSheetIDEmpty  = "character ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Sheet == nil {
		return nil, errors.InvalidArgument(errSheetNil)
	}
	if input.Sheet.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	key := characterKeyPrefix + input.Sheet.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Sheet.ID)
	}

	data, err := json.Marshal(input.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character sheet")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Sheet.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Sheet.PlayerID, input.Sheet.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Sheet: input.Sheet}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var sheet entities.CharacterSheet
	if err := json.Unmarshal([]byte(result), &sheet); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character sheet")
	}

	return &GetOutput{Sheet: &sheet}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Sheet == nil {
		return nil, errors.InvalidArgument(errSheetNil)
	}
	if input.Sheet.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	existingOut, err := r.Get(ctx, GetInput{ID: input.Sheet.ID})
	if err != nil {
		return nil, err
	}
	existing := existingOut.Sheet

	data, err := json.Marshal(input.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character sheet")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+input.Sheet.ID, data, 0)
	if existing.PlayerID != input.Sheet.PlayerID {
		if existing.PlayerID != "" {
			pipe.SRem(ctx, playerIndexPrefix+existing.PlayerID, input.Sheet.ID)
		}
		if input.Sheet.PlayerID != "" {
			pipe.SAdd(ctx, playerIndexPrefix+input.Sheet.PlayerID, input.Sheet.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Sheet: input.Sheet}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	existingOut, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	if existingOut.Sheet.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+existingOut.Sheet.PlayerID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	sheets := make([]*entities.CharacterSheet, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character missing, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		sheets = append(sheets, out.Sheet)
	}

	return &ListByPlayerIDOutput{Sheets: sheets}, nil
}
