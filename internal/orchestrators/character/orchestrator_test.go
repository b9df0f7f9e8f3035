package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/errors"
	"github.com/spellwright/grimoire-api/internal/orchestrators/character"
	"github.com/spellwright/grimoire-api/internal/pkg/clock"
	"github.com/spellwright/grimoire-api/internal/pkg/idgen"
	"github.com/spellwright/grimoire-api/internal/repositories/audit"
	charrepo "github.com/spellwright/grimoire-api/internal/repositories/character"
	"github.com/spellwright/grimoire-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	service   character.Service
	auditRepo audit.Repository
	now       time.Time
	cleanup   func()
	ctx       context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.now = time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	repo, err := charrepo.NewRedis(&charrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	auditRepo, err := audit.NewRedis(&audit.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(s.now),
	})
	s.Require().NoError(err)
	s.auditRepo = auditRepo

	service, err := character.NewOrchestrator(&character.Config{
		CharacterRepo: repo,
		AuditRepo:     auditRepo,
		Clock:         clock.NewFixed(s.now),
		IDGenerator:   idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) testSheet() *entities.CharacterSheet {
	return &entities.CharacterSheet{
		PlayerID: "player_001",
		Name:     "Maribel",
		Level:    5,
		Invested: map[entities.Characteristic]int{
			entities.BOD: 3,
			entities.WIL: 2,
		},
		Skills: map[string]entities.SkillInput{
			"Athletics": {Invested: 2, Linked: entities.BOD},
		},
	}
}

func (s *OrchestratorTestSuite) TestCreateCharacterDerives() {
	out, err := s.service.CreateCharacter(s.ctx, &character.CreateCharacterInput{Sheet: s.testSheet()})
	s.Require().NoError(err)
	s.Require().NotNil(out.Computed)

	s.Equal("char_1", out.Sheet.ID)
	s.Equal(s.now, out.Sheet.CreatedAt)

	// Level 5, no milestones yet: hp 100 + 4
	s.Equal(104, out.Computed.Derived.HPMax)
	s.Equal(10, out.Computed.Derived.SPMax)
	s.Equal(4, out.Computed.CharacteristicCap)
	s.Equal(3, out.Computed.SkillCap)

	trail, err := s.auditRepo.ListByEntity(s.ctx, audit.ListByEntityInput{
		EntityType: "character",
		EntityID:   "char_1",
	})
	s.Require().NoError(err)
	s.Require().Len(trail.Entries, 1)
	s.Equal("character.create", trail.Entries[0].Verb)
}

func (s *OrchestratorTestSuite) TestCreateCharacterRejectsCapViolation() {
	sheet := s.testSheet()
	sheet.Invested[entities.BOD] = 5 // cap at level 5 is 4

	_, err := s.service.CreateCharacter(s.ctx, &character.CreateCharacterInput{Sheet: sheet})
	s.Require().Error(err)
	s.True(errors.IsCapExceeded(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacterLevelFromXP() {
	sheet := s.testSheet()
	sheet.Level = 0
	sheet.XPTotal = 1000

	out, err := s.service.CreateCharacter(s.ctx, &character.CreateCharacterInput{Sheet: sheet})
	s.Require().NoError(err)
	s.Equal(5, out.Sheet.Level)
	s.Equal(5, out.Computed.Level)
}

func (s *OrchestratorTestSuite) TestGetCharacterRecomputes() {
	created, err := s.service.CreateCharacter(s.ctx, &character.CreateCharacterInput{Sheet: s.testSheet()})
	s.Require().NoError(err)

	got, err := s.service.GetCharacter(s.ctx, &character.GetCharacterInput{ID: created.Sheet.ID})
	s.Require().NoError(err)
	s.Equal(created.Computed.Derived, got.Computed.Derived)
}

func (s *OrchestratorTestSuite) TestUpdateCharacterPreservesCreatedAt() {
	created, err := s.service.CreateCharacter(s.ctx, &character.CreateCharacterInput{Sheet: s.testSheet()})
	s.Require().NoError(err)

	sheet := *created.Sheet
	sheet.Level = 6

	out, err := s.service.UpdateCharacter(s.ctx, &character.UpdateCharacterInput{Sheet: &sheet})
	s.Require().NoError(err)
	s.Equal(created.Sheet.CreatedAt, out.Sheet.CreatedAt)
	s.Equal(6, out.Computed.Level)
	s.Equal(105, out.Computed.Derived.HPMax)
}

func (s *OrchestratorTestSuite) TestComputeCharacter() {
	created, err := s.service.CreateCharacter(s.ctx, &character.CreateCharacterInput{Sheet: s.testSheet()})
	s.Require().NoError(err)

	out, err := s.service.ComputeCharacter(s.ctx, &character.ComputeCharacterInput{ID: created.Sheet.ID})
	s.Require().NoError(err)
	s.Equal(104, out.Computed.Derived.HPMax)

	// Athletics: invested 2 + BOD mod floor((3-10)/2) = -4
	s.Equal(-2, out.Computed.SkillBaseValues["Athletics"])
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	created, err := s.service.CreateCharacter(s.ctx, &character.CreateCharacterInput{Sheet: s.testSheet()})
	s.Require().NoError(err)

	_, err = s.service.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{ID: created.Sheet.ID})
	s.Require().NoError(err)

	_, err = s.service.GetCharacter(s.ctx, &character.GetCharacterInput{ID: created.Sheet.ID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListCharactersByPlayer() {
	_, err := s.service.CreateCharacter(s.ctx, &character.CreateCharacterInput{Sheet: s.testSheet()})
	s.Require().NoError(err)

	other := s.testSheet()
	other.PlayerID = "player_002"
	_, err = s.service.CreateCharacter(s.ctx, &character.CreateCharacterInput{Sheet: other})
	s.Require().NoError(err)

	list, err := s.service.ListCharactersByPlayer(s.ctx, &character.ListCharactersByPlayerInput{
		PlayerID: "player_001",
	})
	s.Require().NoError(err)
	s.Len(list.Sheets, 1)
}

func (s *OrchestratorTestSuite) TestLevelFromXP() {
	out, err := s.service.LevelFromXP(s.ctx, &character.LevelFromXPInput{XPTotal: 1000})
	s.Require().NoError(err)
	s.Equal(5, out.Level)
	s.Equal(1000, out.TotalXPForLevel)
	s.Equal(500, out.NextLevelXPCost)

	_, err = s.service.LevelFromXP(s.ctx, &character.LevelFromXPInput{XPTotal: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestValidation() {
	_, err := s.service.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		Sheet: &entities.CharacterSheet{Name: "No Player"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.CreateCharacter(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
