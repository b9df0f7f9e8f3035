package catalog

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
	schoolKeyPrefix     = "catalog:school:"
	schoolSetKey        = "catalog:schools"
	effectKeyPrefix     = "catalog:effect:"
	schoolEffectsPrefix = "catalog:school_effects:"
	constraintKeyPrefix = "catalog:constraint:"
	constraintSetKey    = "catalog:constraints"

	// Error messages
	errSchoolNil         = "school cannot be nil"
	errSchoolIDEmpty     = "school ID cannot be empty"
	errEffectNil         = "effect cannot be nil"
	errEffectIDEmpty     = "effect ID cannot be empty"
	errEffectSchoolEmpty = "effect school ID cannot be empty"
	errConstraintNil     = "constraint cannot be nil"
	errConstraintIDEmpty = "constraint ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
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

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) CreateSchool(ctx context.Context, input CreateSchoolInput) (*CreateSchoolOutput, error) {
	if input.School == nil {
		return nil, errors.InvalidArgument(errSchoolNil)
	}
	if input.School.ID == "" {
		return nil, errors.InvalidArgument(errSchoolIDEmpty)
	}

	key := schoolKeyPrefix + input.School.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("school with ID %s already exists", input.School.ID)
	}

	data, err := json.Marshal(input.School)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal school")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, schoolSetKey, input.School.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create school")
	}

	return &CreateSchoolOutput{School: input.School}, nil
}

func (r *redisRepository) GetSchool(ctx context.Context, input GetSchoolInput) (*GetSchoolOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSchoolIDEmpty)
	}

	result, err := r.client.Get(ctx, schoolKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("school with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get school")
	}

	var school entities.School
	if err := json.Unmarshal([]byte(result), &school); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal school")
	}

	return &GetSchoolOutput{School: &school}, nil
}

func (r *redisRepository) UpdateSchool(ctx context.Context, input UpdateSchoolInput) (*UpdateSchoolOutput, error) {
	if input.School == nil {
		return nil, errors.InvalidArgument(errSchoolNil)
	}
	if input.School.ID == "" {
		return nil, errors.InvalidArgument(errSchoolIDEmpty)
	}

	key := schoolKeyPrefix + input.School.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("school with ID %s not found", input.School.ID)
	}

	data, err := json.Marshal(input.School)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal school")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update school")
	}

	return &UpdateSchoolOutput{School: input.School}, nil
}

func (r *redisRepository) DeleteSchool(ctx context.Context, input DeleteSchoolInput) (*DeleteSchoolOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSchoolIDEmpty)
	}

	if _, err := r.GetSchool(ctx, GetSchoolInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, schoolKeyPrefix+input.ID)
	pipe.SRem(ctx, schoolSetKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete school")
	}

	return &DeleteSchoolOutput{}, nil
}

func (r *redisRepository) ListSchools(ctx context.Context, _ ListSchoolsInput) (*ListSchoolsOutput, error) {
	ids, err := r.client.SMembers(ctx, schoolSetKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list schools")
	}

	schools := make([]*entities.School, 0, len(ids))
	for _, id := range ids {
		out, err := r.GetSchool(ctx, GetSchoolInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "school missing, cleaning up index", "school_id", id)
				r.client.SRem(ctx, schoolSetKey, id)
				continue
			}
			return nil, err
		}
		schools = append(schools, out.School)
	}

	return &ListSchoolsOutput{Schools: schools}, nil
}

func (r *redisRepository) CreateEffect(ctx context.Context, input CreateEffectInput) (*CreateEffectOutput, error) {
	if input.Effect == nil {
		return nil, errors.InvalidArgument(errEffectNil)
	}
	if input.Effect.ID == "" {
		return nil, errors.InvalidArgument(errEffectIDEmpty)
	}
	if input.Effect.SchoolID == "" {
		return nil, errors.InvalidArgument(errEffectSchoolEmpty)
	}

	key := effectKeyPrefix + input.Effect.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("effect with ID %s already exists", input.Effect.ID)
	}

	data, err := json.Marshal(input.Effect)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal effect")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, schoolEffectsPrefix+input.Effect.SchoolID, input.Effect.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create effect")
	}

	return &CreateEffectOutput{Effect: input.Effect}, nil
}

func (r *redisRepository) GetEffect(ctx context.Context, input GetEffectInput) (*GetEffectOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEffectIDEmpty)
	}

	result, err := r.client.Get(ctx, effectKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("effect with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get effect")
	}

	var effect entities.Effect
	if err := json.Unmarshal([]byte(result), &effect); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal effect")
	}

	return &GetEffectOutput{Effect: &effect}, nil
}

func (r *redisRepository) UpdateEffect(ctx context.Context, input UpdateEffectInput) (*UpdateEffectOutput, error) {
	if input.Effect == nil {
		return nil, errors.InvalidArgument(errEffectNil)
	}
	if input.Effect.ID == "" {
		return nil, errors.InvalidArgument(errEffectIDEmpty)
	}

	// Fetch existing to keep the school index consistent on moves.
	existingOut, err := r.GetEffect(ctx, GetEffectInput{ID: input.Effect.ID})
	if err != nil {
		return nil, err
	}
	existing := existingOut.Effect

	data, err := json.Marshal(input.Effect)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal effect")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, effectKeyPrefix+input.Effect.ID, data, 0)
	if existing.SchoolID != input.Effect.SchoolID {
		if existing.SchoolID != "" {
			pipe.SRem(ctx, schoolEffectsPrefix+existing.SchoolID, input.Effect.ID)
		}
		if input.Effect.SchoolID != "" {
			pipe.SAdd(ctx, schoolEffectsPrefix+input.Effect.SchoolID, input.Effect.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update effect")
	}

	return &UpdateEffectOutput{Effect: input.Effect}, nil
}

func (r *redisRepository) DeleteEffect(ctx context.Context, input DeleteEffectInput) (*DeleteEffectOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEffectIDEmpty)
	}

	existingOut, err := r.GetEffect(ctx, GetEffectInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, effectKeyPrefix+input.ID)
	if existingOut.Effect.SchoolID != "" {
		pipe.SRem(ctx, schoolEffectsPrefix+existingOut.Effect.SchoolID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete effect")
	}

	return &DeleteEffectOutput{}, nil
}

func (r *redisRepository) ListEffectsBySchool(
	ctx context.Context,
	input ListEffectsBySchoolInput,
) (*ListEffectsBySchoolOutput, error) {
	if input.SchoolID == "" {
		return nil, errors.InvalidArgument(errSchoolIDEmpty)
	}

	indexKey := schoolEffectsPrefix + input.SchoolID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get effects from index %s", indexKey)
	}

	effects := make([]*entities.Effect, 0, len(ids))
	for _, id := range ids {
		out, err := r.GetEffect(ctx, GetEffectInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "effect missing, cleaning up index",
					"effect_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		effects = append(effects, out.Effect)
	}

	return &ListEffectsBySchoolOutput{Effects: effects}, nil
}

func (r *redisRepository) ResolveEffects(
	ctx context.Context,
	input ResolveEffectsInput,
) (*ResolveEffectsOutput, error) {
	resolved := make([]entities.ResolvedEffect, 0, len(input.EffectIDs))
	schools := make(map[string]*entities.School)

	for _, id := range input.EffectIDs {
		effectOut, err := r.GetEffect(ctx, GetEffectInput{ID: id})
		if err != nil {
			return nil, err
		}
		effect := effectOut.Effect

		school, ok := schools[effect.SchoolID]
		if !ok {
			schoolOut, err := r.GetSchool(ctx, GetSchoolInput{ID: effect.SchoolID})
			if err != nil {
				return nil, err
			}
			school = schoolOut.School
			schools[effect.SchoolID] = school
		}

		resolved = append(resolved, entities.ResolvedEffect{
			Effect: *effect,
			School: *school,
		})
	}

	return &ResolveEffectsOutput{Effects: resolved}, nil
}

func (r *redisRepository) CreateConstraint(
	ctx context.Context,
	input CreateConstraintInput,
) (*CreateConstraintOutput, error) {
	if input.Constraint == nil {
		return nil, errors.InvalidArgument(errConstraintNil)
	}
	if input.Constraint.ID == "" {
		return nil, errors.InvalidArgument(errConstraintIDEmpty)
	}

	key := constraintKeyPrefix + input.Constraint.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("constraint with ID %s already exists", input.Constraint.ID)
	}

	data, err := json.Marshal(input.Constraint)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal constraint")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, constraintSetKey, input.Constraint.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create constraint")
	}

	return &CreateConstraintOutput{Constraint: input.Constraint}, nil
}

func (r *redisRepository) GetConstraint(ctx context.Context, input GetConstraintInput) (*GetConstraintOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errConstraintIDEmpty)
	}

	result, err := r.client.Get(ctx, constraintKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("constraint with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get constraint")
	}

	var constraint entities.Constraint
	if err := json.Unmarshal([]byte(result), &constraint); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal constraint")
	}

	return &GetConstraintOutput{Constraint: &constraint}, nil
}

func (r *redisRepository) DeleteConstraint(
	ctx context.Context,
	input DeleteConstraintInput,
) (*DeleteConstraintOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errConstraintIDEmpty)
	}

	if _, err := r.GetConstraint(ctx, GetConstraintInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, constraintKeyPrefix+input.ID)
	pipe.SRem(ctx, constraintSetKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete constraint")
	}

	return &DeleteConstraintOutput{}, nil
}

func (r *redisRepository) ListConstraints(ctx context.Context, _ ListConstraintsInput) (*ListConstraintsOutput, error) {
	ids, err := r.client.SMembers(ctx, constraintSetKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list constraints")
	}

	constraints := make([]*entities.Constraint, 0, len(ids))
	for _, id := range ids {
		out, err := r.GetConstraint(ctx, GetConstraintInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "constraint missing, cleaning up index", "constraint_id", id)
				r.client.SRem(ctx, constraintSetKey, id)
				continue
			}
			return nil, err
		}
		constraints = append(constraints, out.Constraint)
	}

	return &ListConstraintsOutput{Constraints: constraints}, nil
}

func (r *redisRepository) GetConstraintsByIDs(
	ctx context.Context,
	input GetConstraintsByIDsInput,
) (*GetConstraintsByIDsOutput, error) {
	constraints := make([]entities.Constraint, 0, len(input.IDs))
	for _, id := range input.IDs {
		out, err := r.GetConstraint(ctx, GetConstraintInput{ID: id})
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, *out.Constraint)
	}

	return &GetConstraintsByIDsOutput{Constraints: constraints}, nil
}
