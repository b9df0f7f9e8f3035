package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spellwright/grimoire-api/internal/repositories/catalog"
	"github.com/spellwright/grimoire-api/internal/testutils"
)

func TestSeedCatalog(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	require.NoError(t, err)

	ctx := context.Background()

	created, err := seedCatalog(ctx, repo)
	require.NoError(t, err)
	require.Equal(t, len(seedSchools())+len(seedEffects())+len(seedConstraints()), created)

	// A rerun finds everything already present and creates nothing.
	created, err = seedCatalog(ctx, repo)
	require.NoError(t, err)
	require.Equal(t, 0, created)

	out, err := repo.GetSchool(ctx, catalog.GetSchoolInput{ID: "school_high_evocation"})
	require.NoError(t, err)
	require.True(t, out.School.Upgrade)

	resolved, err := repo.ResolveEffects(ctx, catalog.ResolveEffectsInput{EffectIDs: []string{"effect_flame"}})
	require.NoError(t, err)
	require.Len(t, resolved.Effects, 1)
	require.Equal(t, "school_evocation", resolved.Effects[0].School.ID)
}
