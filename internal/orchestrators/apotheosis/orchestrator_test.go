package apotheosis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/errors"
	"github.com/spellwright/grimoire-api/internal/orchestrators/apotheosis"
	"github.com/spellwright/grimoire-api/internal/repositories/catalog"
	"github.com/spellwright/grimoire-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	service apotheosis.Service
	catalog catalog.Repository
	cleanup func()
	ctx     context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	catalogRepo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.catalog = catalogRepo

	service, err := apotheosis.NewOrchestrator(&apotheosis.Config{CatalogRepo: catalogRepo})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) TestComputeWithoutConstraints() {
	out, err := s.service.ComputeApotheosis(s.ctx, &apotheosis.ComputeApotheosisInput{
		CharacteristicValue: 10,
		Stage:               "Stage II",
		Type:                "Terrain",
	})
	s.Require().NoError(err)

	// stage II -> stability 10; power 10 + terrain bonus 2
	s.Equal(10, out.Result.Stability)
	s.Equal(12, out.Result.Power)
	s.Equal(17, out.Result.Diameter)
	s.Equal("Tier 1", out.Result.Tier)
	s.Equal(2, out.Result.Flags.StageParsed)
}

func (s *OrchestratorTestSuite) TestComputeResolvesConstraints() {
	_, err := s.catalog.CreateConstraint(s.ctx, catalog.CreateConstraintInput{
		Constraint: &entities.Constraint{
			ID:             "constraint_daylight",
			Name:           "Only in daylight",
			Difficulty:     5,
			StabilityDelta: 2,
		},
	})
	s.Require().NoError(err)

	out, err := s.service.ComputeApotheosis(s.ctx, &apotheosis.ComputeApotheosisInput{
		CharacteristicValue: 10,
		Stage:               "Stage I",
		Type:                "Personal",
		ConstraintIDs:       []string{"constraint_daylight"},
	})
	s.Require().NoError(err)

	// power 10 + difficulty 5; stability 5 + delta 2; personal +1 amplitude
	s.Equal(15, out.Result.Power)
	s.Equal(7, out.Result.Stability)
	s.Equal(1, out.Result.Amplitude)
	s.Equal(5, out.Result.TotalDifficulty)
	s.Equal("Tier 2", out.Result.Tier)
}

func (s *OrchestratorTestSuite) TestComputeUnknownConstraint() {
	_, err := s.service.ComputeApotheosis(s.ctx, &apotheosis.ComputeApotheosisInput{
		CharacteristicValue: 10,
		Stage:               "Stage I",
		ConstraintIDs:       []string{"constraint_missing"},
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestValidation() {
	_, err := s.service.ComputeApotheosis(s.ctx, &apotheosis.ComputeApotheosisInput{
		CharacteristicValue: 10,
		Stage:               "Stage I",
		TradeP2S:            -1,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.ComputeApotheosis(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
