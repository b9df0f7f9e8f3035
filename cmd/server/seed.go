package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spellwright/grimoire-api/internal/config"
	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/errors"
	spellorch "github.com/spellwright/grimoire-api/internal/orchestrators/spell"
	"github.com/spellwright/grimoire-api/internal/repositories/catalog"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog with the starter rules content",
	Long:  `Seed writes the starter schools, effects, and constraints into Redis. Existing entries are left untouched, so reruns are safe.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
}

func seedSchools() []*entities.School {
	return []*entities.School{
		{ID: "school_evocation", Name: "Evocation", Type: entities.SchoolSimple,
			RangeClass: entities.ClassA, AoEClass: entities.ClassA},
		{ID: "school_abjuration", Name: "Abjuration", Type: entities.SchoolSimple,
			RangeClass: entities.ClassA, AoEClass: entities.ClassB},
		{ID: "school_transmutation", Name: "Transmutation", Type: entities.SchoolSimple,
			RangeClass: entities.ClassB, AoEClass: entities.ClassA},
		{ID: "school_necromancy", Name: "Necromancy", Type: entities.SchoolComplex,
			RangeClass: entities.ClassC, AoEClass: entities.ClassC},
		{ID: "school_high_evocation", Name: "High Evocation", Type: entities.SchoolComplex,
			Upgrade: true, RangeClass: entities.ClassB, AoEClass: entities.ClassB},
	}
}

func seedEffects() []*entities.Effect {
	return []*entities.Effect{
		{ID: "effect_flame", Name: "Flame", SchoolID: "school_evocation", MPCost: 3, ENCost: 1,
			Description: "A gout of elemental fire."},
		{ID: "effect_frost", Name: "Frost", SchoolID: "school_evocation", MPCost: 3, ENCost: 1,
			Description: "Biting cold that slows the target."},
		{ID: "effect_ward", Name: "Ward", SchoolID: "school_abjuration", MPCost: 4, ENCost: 2,
			Description: "A shimmering barrier against harm."},
		{ID: "effect_mend", Name: "Mend", SchoolID: "school_transmutation", MPCost: 2, ENCost: 1,
			Description: "Knits broken material back together."},
		{ID: "effect_drain", Name: "Drain", SchoolID: "school_necromancy", MPCost: 6, ENCost: 3,
			Description: "Pulls vitality out of a living target."},
	}
}

func seedConstraints() []*entities.Constraint {
	return []*entities.Constraint{
		{ID: "constraint_daylight", Name: "Only in daylight", Difficulty: 2, StabilityDelta: 1},
		{ID: "constraint_bloodprice", Name: "Blood price", Difficulty: 5, StabilityDelta: -2, AmplitudeBonus: 1},
		{ID: "constraint_anchored", Name: "Anchored to a standing stone", Difficulty: 3, StabilityDelta: 3, ForbidP2S: true},
	}
}

// seedCatalog writes the starter content, skipping entries that already
// exist. It returns the number of newly created records.
func seedCatalog(ctx context.Context, repo catalog.Repository) (int, error) {
	created := 0
	for _, school := range seedSchools() {
		_, err := repo.CreateSchool(ctx, catalog.CreateSchoolInput{School: school})
		if err != nil {
			if errors.IsAlreadyExists(err) {
				continue
			}
			return created, err
		}
		created++
	}
	for _, effect := range seedEffects() {
		_, err := repo.CreateEffect(ctx, catalog.CreateEffectInput{Effect: effect})
		if err != nil {
			if errors.IsAlreadyExists(err) {
				continue
			}
			return created, err
		}
		created++
	}
	for _, constraint := range seedConstraints() {
		_, err := repo.CreateConstraint(ctx, catalog.CreateConstraintInput{Constraint: constraint})
		if err != nil {
			if errors.IsAlreadyExists(err) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	a, err := buildApp(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}()

	ctx := cmd.Context()

	created, err := seedCatalog(ctx, a.catalogRepo)
	if err != nil {
		return err
	}

	if err := smokeCheck(ctx, a); err != nil {
		return err
	}

	slog.Info("seed complete", "created", created)
	return nil
}

// smokeCheck runs one cost derivation against the freshly seeded catalog
// so a broken seed fails loudly instead of at first request.
func smokeCheck(ctx context.Context, a *app) error {
	out, err := a.spellService.PreviewSpellCost(ctx, &spellorch.PreviewSpellCostInput{
		Input: entities.SpellInput{
			Name:       "Seed Check",
			AuthorID:   "seed",
			Activation: "Action",
			Range:      10,
			AoE:        "Target",
			Duration:   0,
			EffectIDs:  []string{"effect_flame"},
		},
	})
	if err != nil {
		return errors.Wrap(err, "seed smoke check failed")
	}

	slog.Info("seed smoke check passed",
		"mp_cost", out.Computed.MPCost,
		"category", out.Computed.Category)
	return nil
}
