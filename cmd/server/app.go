package main

import (
	"github.com/spellwright/grimoire-api/internal/config"
	"github.com/spellwright/grimoire-api/internal/errors"
	apoorch "github.com/spellwright/grimoire-api/internal/orchestrators/apotheosis"
	charorch "github.com/spellwright/grimoire-api/internal/orchestrators/character"
	curorch "github.com/spellwright/grimoire-api/internal/orchestrators/currency"
	spellorch "github.com/spellwright/grimoire-api/internal/orchestrators/spell"
	"github.com/spellwright/grimoire-api/internal/pkg/idgen"
	"github.com/spellwright/grimoire-api/internal/redis"
	"github.com/spellwright/grimoire-api/internal/repositories/audit"
	"github.com/spellwright/grimoire-api/internal/repositories/catalog"
	charrepo "github.com/spellwright/grimoire-api/internal/repositories/character"
	spellrepo "github.com/spellwright/grimoire-api/internal/repositories/spell"
)

// app is the assembled dependency graph: one Redis client, the
// repositories on top of it, and the orchestrators on top of those.
type app struct {
	redisClient redis.Client

	catalogRepo catalog.Repository

	spellService      spellorch.Service
	characterService  charorch.Service
	apotheosisService apoorch.Service
	currencyService   curorch.Service
}

func buildApp(cfg *config.Config) (*app, error) {
	client, err := redis.NewClient(cfg.Redis.Endpoint, &redis.Options{
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}

	catalogRepo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog repository")
	}
	spellRepo, err := spellrepo.NewRedis(&spellrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spell repository")
	}
	characterRepo, err := charrepo.NewRedis(&charrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character repository")
	}
	auditRepo, err := audit.NewRedis(&audit.RedisConfig{Client: client})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create audit repository")
	}

	spellService, err := spellorch.NewOrchestrator(&spellorch.Config{
		SpellRepo:   spellRepo,
		CatalogRepo: catalogRepo,
		AuditRepo:   auditRepo,
		IDGenerator: idgen.NewUUID("spell"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spell orchestrator")
	}
	characterService, err := charorch.NewOrchestrator(&charorch.Config{
		CharacterRepo: characterRepo,
		AuditRepo:     auditRepo,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character orchestrator")
	}
	apotheosisService, err := apoorch.NewOrchestrator(&apoorch.Config{
		CatalogRepo: catalogRepo,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create apotheosis orchestrator")
	}
	currencyService, err := curorch.NewOrchestrator(&curorch.Config{
		CharacterRepo: characterRepo,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create currency orchestrator")
	}

	return &app{
		redisClient:       client,
		catalogRepo:       catalogRepo,
		spellService:      spellService,
		characterService:  characterService,
		apotheosisService: apotheosisService,
		currencyService:   currencyService,
	}, nil
}

func (a *app) close() error {
	return a.redisClient.Close()
}
