package spell_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/errors"
	"github.com/spellwright/grimoire-api/internal/orchestrators/spell"
	"github.com/spellwright/grimoire-api/internal/pkg/clock"
	"github.com/spellwright/grimoire-api/internal/pkg/idgen"
	"github.com/spellwright/grimoire-api/internal/repositories/audit"
	"github.com/spellwright/grimoire-api/internal/repositories/catalog"
	spellrepo "github.com/spellwright/grimoire-api/internal/repositories/spell"
	"github.com/spellwright/grimoire-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	service   spell.Service
	catalog   catalog.Repository
	auditRepo audit.Repository
	now       time.Time
	cleanup   func()
	ctx       context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.now = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	catalogRepo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.catalog = catalogRepo

	spellRepo, err := spellrepo.NewRedis(&spellrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	auditRepo, err := audit.NewRedis(&audit.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(s.now),
	})
	s.Require().NoError(err)
	s.auditRepo = auditRepo

	service, err := spell.NewOrchestrator(&spell.Config{
		SpellRepo:   spellRepo,
		CatalogRepo: catalogRepo,
		AuditRepo:   auditRepo,
		Clock:       clock.NewFixed(s.now),
		IDGenerator: idgen.NewSequential("spell"),
	})
	s.Require().NoError(err)
	s.service = service

	s.seedCatalog()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) seedCatalog() {
	_, err := s.catalog.CreateSchool(s.ctx, catalog.CreateSchoolInput{
		School: &entities.School{
			ID:         "school_evocation",
			Name:       "Evocation",
			Type:       entities.SchoolSimple,
			RangeClass: entities.ClassA,
			AoEClass:   entities.ClassA,
		},
	})
	s.Require().NoError(err)

	_, err = s.catalog.CreateEffect(s.ctx, catalog.CreateEffectInput{
		Effect: &entities.Effect{
			ID:       "effect_flame",
			Name:     "Flame",
			SchoolID: "school_evocation",
			MPCost:   3,
			ENCost:   1,
		},
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) spellInput() entities.SpellInput {
	return entities.SpellInput{
		Name:       "Ember Lash",
		AuthorID:   "author_001",
		Activation: "Action",
		Range:      10,
		AoE:        "Target",
		Duration:   5,
		EffectIDs:  []string{"effect_flame"},
	}
}

func (s *OrchestratorTestSuite) TestCreateSpellComputesCost() {
	out, err := s.service.CreateSpell(s.ctx, &spell.CreateSpellInput{Input: s.spellInput()})
	s.Require().NoError(err)
	s.Require().NotNil(out.Doc)

	// range 10 -> 2, Target -> 1, duration 5 -> 4, Action -> 1,
	// effect MP 3, single school so no surcharge
	s.Equal(11, out.Doc.Computed.MPCost)
	s.Equal(1, out.Doc.Computed.ENCost)
	s.Equal("Lesser", out.Doc.Computed.Category)
	s.Equal(entities.SchoolSimple, out.Doc.Computed.SpellType)
	s.Equal(2, out.Doc.Computed.Breakdown.RangeMP)
	s.Equal(3, out.Doc.Computed.Breakdown.EffectsMP)
	s.Equal("spell_1", out.Doc.Input.ID)
	s.Equal(s.now, out.Doc.CreatedAt)

	// The write leaves an audit entry behind.
	trail, err := s.auditRepo.ListByEntity(s.ctx, audit.ListByEntityInput{
		EntityType: "spell",
		EntityID:   "spell_1",
	})
	s.Require().NoError(err)
	s.Require().Len(trail.Entries, 1)
	s.Equal("spell.create", trail.Entries[0].Verb)
	s.Equal("author_001", trail.Entries[0].ActorID)
}

func (s *OrchestratorTestSuite) TestCreateSpellRejectsBadAxis() {
	input := s.spellInput()
	input.Range = 7

	_, err := s.service.CreateSpell(s.ctx, &spell.CreateSpellInput{Input: input})
	s.Require().Error(err)
	s.True(errors.IsInvalidAxisValue(err))
}

func (s *OrchestratorTestSuite) TestCreateSpellRejectsUnknownEffect() {
	input := s.spellInput()
	input.EffectIDs = []string{"effect_missing"}

	_, err := s.service.CreateSpell(s.ctx, &spell.CreateSpellInput{Input: input})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUpdateSpellRecomputes() {
	created, err := s.service.CreateSpell(s.ctx, &spell.CreateSpellInput{Input: s.spellInput()})
	s.Require().NoError(err)

	updated := created.Doc.Input
	updated.Range = 100

	out, err := s.service.UpdateSpell(s.ctx, &spell.UpdateSpellInput{Input: updated})
	s.Require().NoError(err)

	// range 100 -> 8 under class A; everything else unchanged
	s.Equal(17, out.Doc.Computed.MPCost)
	s.Equal(created.Doc.CreatedAt, out.Doc.CreatedAt)
}

func (s *OrchestratorTestSuite) TestPreviewDoesNotPersist() {
	out, err := s.service.PreviewSpellCost(s.ctx, &spell.PreviewSpellCostInput{Input: s.spellInput()})
	s.Require().NoError(err)
	s.Equal(11, out.Computed.MPCost)

	list, err := s.service.ListSpellsByAuthor(s.ctx, &spell.ListSpellsByAuthorInput{AuthorID: "author_001"})
	s.Require().NoError(err)
	s.Empty(list.Docs)
}

func (s *OrchestratorTestSuite) TestDeleteSpell() {
	created, err := s.service.CreateSpell(s.ctx, &spell.CreateSpellInput{Input: s.spellInput()})
	s.Require().NoError(err)

	_, err = s.service.DeleteSpell(s.ctx, &spell.DeleteSpellInput{ID: created.Doc.Input.ID})
	s.Require().NoError(err)

	_, err = s.service.GetSpell(s.ctx, &spell.GetSpellInput{ID: created.Doc.Input.ID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestValidation() {
	_, err := s.service.CreateSpell(s.ctx, &spell.CreateSpellInput{
		Input: entities.SpellInput{Name: "No Effects", AuthorID: "author_001"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.CreateSpell(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
