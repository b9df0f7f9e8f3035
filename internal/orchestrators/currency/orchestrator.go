// Package currency implements the currency orchestrator: conversions
// between currencies, physical coin breakdowns, and wallet valuation.
package currency

//go:generate mockgen -destination=mock/mock_service.go -package=currencymock github.com/spellwright/grimoire-api/internal/orchestrators/currency Service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	curengine "github.com/spellwright/grimoire-api/internal/engine/currency"
	"github.com/spellwright/grimoire-api/internal/engine/tables"
	"github.com/spellwright/grimoire-api/internal/errors"
	charrepo "github.com/spellwright/grimoire-api/internal/repositories/character"
)

// Service defines the interface for currency operations
type Service interface {
	// ConvertCurrency converts a minor-unit amount of one currency into
	// another, routing through the base currency's value
	ConvertCurrency(ctx context.Context, input *ConvertCurrencyInput) (*ConvertCurrencyOutput, error)

	// CoinBreakdown decomposes a minor-unit amount of a physical
	// currency into coins
	CoinBreakdown(ctx context.Context, input *CoinBreakdownInput) (*CoinBreakdownOutput, error)

	// WalletValue values a character's wallet in the base currency
	WalletValue(ctx context.Context, input *WalletValueInput) (*WalletValueOutput, error)
}

// Config holds the dependencies for the currency orchestrator
type Config struct {
	CharacterRepo charrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo charrepo.Repository
}

// NewOrchestrator creates a new currency orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{characterRepo: cfg.CharacterRepo}, nil
}

// ConvertCurrencyInput defines the input for a currency conversion
type ConvertCurrencyInput struct {
	From     string
	To       string
	Minor    int64
	Rounding curengine.Rounding
}

// ConvertCurrencyOutput defines the output for a currency conversion
type ConvertCurrencyOutput struct {
	Minor   int64
	ValueGC decimal.Decimal
}

// CoinBreakdownInput defines the input for a coin breakdown
type CoinBreakdownInput struct {
	Currency string
	Minor    int64
}

// CoinBreakdownOutput defines the output for a coin breakdown
type CoinBreakdownOutput struct {
	Breakdown curengine.CoinBreakdown
}

// WalletValueInput defines the input for a wallet valuation
type WalletValueInput struct {
	CharacterID string
}

// WalletValueOutput defines the output for a wallet valuation
type WalletValueOutput struct {
	CarriedGC   decimal.Decimal
	BankedGC    decimal.Decimal
	TotalGC     decimal.Decimal
	QualityTier string
}

func (o *orchestrator) ConvertCurrency(
	ctx context.Context,
	input *ConvertCurrencyInput,
) (*ConvertCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Minor < 0 {
		return nil, errors.InvalidArgument("amount cannot be negative")
	}

	valueGC, err := curengine.MinorToGC(input.From, input.Minor)
	if err != nil {
		return nil, err
	}

	minor, err := curengine.GCToMinor(input.To, valueGC, input.Rounding)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "converted currency",
		"from", input.From,
		"to", input.To,
		"minor_in", input.Minor,
		"minor_out", minor)

	return &ConvertCurrencyOutput{Minor: minor, ValueGC: valueGC}, nil
}

func (o *orchestrator) CoinBreakdown(
	_ context.Context,
	input *CoinBreakdownInput,
) (*CoinBreakdownOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	breakdown, err := curengine.BreakdownCoins(input.Currency, input.Minor)
	if err != nil {
		return nil, err
	}

	return &CoinBreakdownOutput{Breakdown: breakdown}, nil
}

func (o *orchestrator) WalletValue(ctx context.Context, input *WalletValueInput) (*WalletValueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.characterRepo.Get(ctx, charrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	carried := decimal.Zero
	banked := decimal.Zero
	for name, entry := range out.Sheet.Wallet {
		if entry.Carried != 0 {
			gc, err := curengine.MinorToGC(name, entry.Carried)
			if err != nil {
				return nil, err
			}
			carried = carried.Add(gc)
		}
		if entry.Banked != 0 {
			gc, err := curengine.MinorToGC(name, entry.Banked)
			if err != nil {
				return nil, err
			}
			banked = banked.Add(gc)
		}
	}

	total := carried.Add(banked)

	return &WalletValueOutput{
		CarriedGC:   carried,
		BankedGC:    banked,
		TotalGC:     total,
		QualityTier: tables.QualityTierFor(total),
	}, nil
}
