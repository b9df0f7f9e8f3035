package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spellwright/grimoire-api/internal/errors"
	"github.com/spellwright/grimoire-api/internal/pkg/clock"
	"github.com/spellwright/grimoire-api/internal/pkg/idgen"
	"github.com/spellwright/grimoire-api/internal/repositories/audit"
	"github.com/spellwright/grimoire-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    audit.Repository
	now     time.Time
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	s.now = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	repo, err := audit.NewRedis(&audit.RedisConfig{
		Client:      client,
		Clock:       clock.NewFixed(s.now),
		IDGenerator: idgen.NewSequential("audit"),
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestAppendStampsIDAndTime() {
	out, err := s.repo.Append(s.ctx, audit.AppendInput{
		Entry: audit.Entry{
			ActorID:    "gm_001",
			Verb:       "spell.create",
			EntityType: "spell",
			EntityID:   "spell_001",
		},
	})
	s.Require().NoError(err)
	s.Equal("audit_1", out.Entry.ID)
	s.Equal(s.now, out.Entry.At)
}

func (s *RedisRepositoryTestSuite) TestListByEntityNewestFirst() {
	for _, verb := range []string{"spell.create", "spell.update", "spell.delete"} {
		_, err := s.repo.Append(s.ctx, audit.AppendInput{
			Entry: audit.Entry{
				Verb:       verb,
				EntityType: "spell",
				EntityID:   "spell_001",
			},
		})
		s.Require().NoError(err)
	}
	_, err := s.repo.Append(s.ctx, audit.AppendInput{
		Entry: audit.Entry{
			Verb:       "character.create",
			EntityType: "character",
			EntityID:   "char_001",
		},
	})
	s.Require().NoError(err)

	out, err := s.repo.ListByEntity(s.ctx, audit.ListByEntityInput{
		EntityType: "spell",
		EntityID:   "spell_001",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)
	s.Equal("spell.delete", out.Entries[0].Verb)
	s.Equal("spell.create", out.Entries[2].Verb)

	limited, err := s.repo.ListByEntity(s.ctx, audit.ListByEntityInput{
		EntityType: "spell",
		EntityID:   "spell_001",
		Limit:      1,
	})
	s.Require().NoError(err)
	s.Require().Len(limited.Entries, 1)
	s.Equal("spell.delete", limited.Entries[0].Verb)
}

func (s *RedisRepositoryTestSuite) TestListRecentCrossesEntities() {
	_, err := s.repo.Append(s.ctx, audit.AppendInput{
		Entry: audit.Entry{Verb: "spell.create", EntityType: "spell", EntityID: "spell_001"},
	})
	s.Require().NoError(err)
	_, err = s.repo.Append(s.ctx, audit.AppendInput{
		Entry: audit.Entry{Verb: "character.create", EntityType: "character", EntityID: "char_001"},
	})
	s.Require().NoError(err)

	out, err := s.repo.ListRecent(s.ctx, audit.ListRecentInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("character.create", out.Entries[0].Verb)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, audit.AppendInput{
		Entry: audit.Entry{EntityType: "spell", EntityID: "spell_001"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListByEntity(s.ctx, audit.ListByEntityInput{EntityType: "spell"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
