// Package apotheosis implements the apotheosis orchestrator. It resolves
// constraint references against the catalog and hands the records to the
// pure resolver.
package apotheosis

//go:generate mockgen -destination=mock/mock_service.go -package=apotheosismock github.com/spellwright/grimoire-api/internal/orchestrators/apotheosis Service

import (
	"context"
	"log/slog"

	apoengine "github.com/spellwright/grimoire-api/internal/engine/apotheosis"
	"github.com/spellwright/grimoire-api/internal/errors"
	"github.com/spellwright/grimoire-api/internal/repositories/catalog"
)

// Service defines the interface for apotheosis operations
type Service interface {
	ComputeApotheosis(ctx context.Context, input *ComputeApotheosisInput) (*ComputeApotheosisOutput, error)
}

// Config holds the dependencies for the apotheosis orchestrator
type Config struct {
	CatalogRepo catalog.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo catalog.Repository
}

// NewOrchestrator creates a new apotheosis orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{catalogRepo: cfg.CatalogRepo}, nil
}

// ComputeApotheosisInput defines the input for an apotheosis computation
type ComputeApotheosisInput struct {
	CharacteristicValue int
	Stage               string
	Type                string
	ConstraintIDs       []string
	TradeP2S            int
	TradeP2A            int
	TradeS2A            int
}

// ComputeApotheosisOutput defines the output for an apotheosis computation
type ComputeApotheosisOutput struct {
	Result apoengine.Result
}

func (o *orchestrator) ComputeApotheosis(
	ctx context.Context,
	input *ComputeApotheosisInput,
) (*ComputeApotheosisOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if input.TradeP2S < 0 || input.TradeP2A < 0 || input.TradeS2A < 0 {
		vb.InvalidField("trades", "trade steps cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	constraints, err := o.catalogRepo.GetConstraintsByIDs(ctx, catalog.GetConstraintsByIDsInput{
		IDs: input.ConstraintIDs,
	})
	if err != nil {
		return nil, err
	}

	result := apoengine.Compute(apoengine.Input{
		CharacteristicValue: input.CharacteristicValue,
		Stage:               input.Stage,
		Type:                input.Type,
		Constraints:         constraints.Constraints,
		TradeP2S:            input.TradeP2S,
		TradeP2A:            input.TradeP2A,
		TradeS2A:            input.TradeS2A,
	})

	slog.DebugContext(ctx, "computed apotheosis",
		"stage", input.Stage,
		"type", input.Type,
		"power", result.Power,
		"stability", result.Stability,
		"tier", result.Tier)

	return &ComputeApotheosisOutput{Result: result}, nil
}
