package spell

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
	spellKeyPrefix    = "spell:"
	authorIndexPrefix = "spell:author:"

	// Error messages
	errSpellNil      = "spell document cannot be nil"
	errSpellIDEmpty  = "spell ID cannot be empty"
	errAuthorIDEmpty = "author ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis spell repository.
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

// NewRedis creates a new Redis-backed spell repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Doc == nil {
		return nil, errors.InvalidArgument(errSpellNil)
	}
	if input.Doc.Input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	key := spellKeyPrefix + input.Doc.Input.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("spell with ID %s already exists", input.Doc.Input.ID)
	}

	data, err := json.Marshal(input.Doc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal spell document")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Doc.Input.AuthorID != "" {
		pipe.SAdd(ctx, authorIndexPrefix+input.Doc.Input.AuthorID, input.Doc.Input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create spell")
	}

	return &CreateOutput{Doc: input.Doc}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	result, err := r.client.Get(ctx, spellKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("spell with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get spell")
	}

	var doc entities.SpellDoc
	if err := json.Unmarshal([]byte(result), &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal spell document")
	}

	return &GetOutput{Doc: &doc}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Doc == nil {
		return nil, errors.InvalidArgument(errSpellNil)
	}
	if input.Doc.Input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	existingOut, err := r.Get(ctx, GetInput{ID: input.Doc.Input.ID})
	if err != nil {
		return nil, err
	}
	existing := existingOut.Doc

	data, err := json.Marshal(input.Doc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal spell document")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, spellKeyPrefix+input.Doc.Input.ID, data, 0)
	if existing.Input.AuthorID != input.Doc.Input.AuthorID {
		if existing.Input.AuthorID != "" {
			pipe.SRem(ctx, authorIndexPrefix+existing.Input.AuthorID, input.Doc.Input.ID)
		}
		if input.Doc.Input.AuthorID != "" {
			pipe.SAdd(ctx, authorIndexPrefix+input.Doc.Input.AuthorID, input.Doc.Input.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update spell")
	}

	return &UpdateOutput{Doc: input.Doc}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	existingOut, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, spellKeyPrefix+input.ID)
	if existingOut.Doc.Input.AuthorID != "" {
		pipe.SRem(ctx, authorIndexPrefix+existingOut.Doc.Input.AuthorID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete spell")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByAuthor(ctx context.Context, input ListByAuthorInput) (*ListByAuthorOutput, error) {
	if input.AuthorID == "" {
		return nil, errors.InvalidArgument(errAuthorIDEmpty)
	}

	indexKey := authorIndexPrefix + input.AuthorID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spells from index %s", indexKey)
	}

	docs := make([]*entities.SpellDoc, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "spell missing, cleaning up index",
					"spell_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		docs = append(docs, out.Doc)
	}

	return &ListByAuthorOutput{Docs: docs}, nil
}
