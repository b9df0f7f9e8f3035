package spell_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/errors"
	"github.com/spellwright/grimoire-api/internal/repositories/spell"
	"github.com/spellwright/grimoire-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    spell.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := spell.NewRedis(&spell.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testDoc(id, authorID string) *entities.SpellDoc {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	return &entities.SpellDoc{
		Input: entities.SpellInput{
			ID:         id,
			Name:       "Ember Lash",
			AuthorID:   authorID,
			Activation: "Action",
			Range:      10,
			AoE:        "Target",
			Duration:   0,
			EffectIDs:  []string{"effect_flame"},
		},
		Computed: entities.SpellComputed{
			MPCost:   12,
			ENCost:   3,
			Category: "Lesser",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *RedisRepositoryTestSuite) TestLifecycle() {
	doc := s.testDoc("spell_001", "author_001")

	_, err := s.repo.Create(s.ctx, spell.CreateInput{Doc: doc})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, spell.CreateInput{Doc: doc})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))

	got, err := s.repo.Get(s.ctx, spell.GetInput{ID: "spell_001"})
	s.Require().NoError(err)
	s.Equal("Ember Lash", got.Doc.Input.Name)
	s.Equal(12, got.Doc.Computed.MPCost)
	s.Equal("Lesser", got.Doc.Computed.Category)

	doc.Input.Name = "Ember Lash II"
	doc.Computed.MPCost = 14
	_, err = s.repo.Update(s.ctx, spell.UpdateInput{Doc: doc})
	s.Require().NoError(err)

	got, err = s.repo.Get(s.ctx, spell.GetInput{ID: "spell_001"})
	s.Require().NoError(err)
	s.Equal(14, got.Doc.Computed.MPCost)

	_, err = s.repo.Delete(s.ctx, spell.DeleteInput{ID: "spell_001"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, spell.GetInput{ID: "spell_001"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByAuthor() {
	_, err := s.repo.Create(s.ctx, spell.CreateInput{Doc: s.testDoc("spell_a", "author_001")})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, spell.CreateInput{Doc: s.testDoc("spell_b", "author_001")})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, spell.CreateInput{Doc: s.testDoc("spell_c", "author_002")})
	s.Require().NoError(err)

	list, err := s.repo.ListByAuthor(s.ctx, spell.ListByAuthorInput{AuthorID: "author_001"})
	s.Require().NoError(err)
	s.Len(list.Docs, 2)

	list, err = s.repo.ListByAuthor(s.ctx, spell.ListByAuthorInput{AuthorID: "author_002"})
	s.Require().NoError(err)
	s.Len(list.Docs, 1)

	// Deleting removes the spell from its author's index.
	_, err = s.repo.Delete(s.ctx, spell.DeleteInput{ID: "spell_a"})
	s.Require().NoError(err)

	list, err = s.repo.ListByAuthor(s.ctx, spell.ListByAuthorInput{AuthorID: "author_001"})
	s.Require().NoError(err)
	s.Len(list.Docs, 1)
}

func (s *RedisRepositoryTestSuite) TestAuthorChangeMovesIndex() {
	doc := s.testDoc("spell_x", "author_001")
	_, err := s.repo.Create(s.ctx, spell.CreateInput{Doc: doc})
	s.Require().NoError(err)

	doc.Input.AuthorID = "author_002"
	_, err = s.repo.Update(s.ctx, spell.UpdateInput{Doc: doc})
	s.Require().NoError(err)

	list, err := s.repo.ListByAuthor(s.ctx, spell.ListByAuthorInput{AuthorID: "author_001"})
	s.Require().NoError(err)
	s.Empty(list.Docs)

	list, err = s.repo.ListByAuthor(s.ctx, spell.ListByAuthorInput{AuthorID: "author_002"})
	s.Require().NoError(err)
	s.Len(list.Docs, 1)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, spell.CreateInput{Doc: nil})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, spell.GetInput{ID: ""})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListByAuthor(s.ctx, spell.ListByAuthorInput{AuthorID: ""})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
