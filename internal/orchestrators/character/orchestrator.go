// Package character implements the character orchestrator. Sheets store
// only player-authored input; every derived value comes out of the
// derivation engine at read or write time.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/spellwright/grimoire-api/internal/orchestrators/character Service

import (
	"context"
	"log/slog"

	"github.com/spellwright/grimoire-api/internal/engine/chardev"
	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/errors"
	"github.com/spellwright/grimoire-api/internal/pkg/clock"
	"github.com/spellwright/grimoire-api/internal/pkg/idgen"
	"github.com/spellwright/grimoire-api/internal/repositories/audit"
	charrepo "github.com/spellwright/grimoire-api/internal/repositories/character"
)

// Service defines the interface for character operations
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	ListCharactersByPlayer(ctx context.Context, input *ListCharactersByPlayerInput) (*ListCharactersByPlayerOutput, error)

	// ComputeCharacter runs the derivation for a stored sheet
	ComputeCharacter(ctx context.Context, input *ComputeCharacterInput) (*ComputeCharacterOutput, error)

	// LevelFromXP answers level and XP threshold questions without
	// touching storage
	LevelFromXP(ctx context.Context, input *LevelFromXPInput) (*LevelFromXPOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo charrepo.Repository
	AuditRepo     audit.Repository
	Clock         clock.Clock
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.AuditRepo == nil {
		vb.RequiredField("AuditRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo charrepo.Repository
	auditRepo     audit.Repository
	clock         clock.Clock
	idGen         idgen.Generator
}

// NewOrchestrator creates a new character orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		auditRepo:     cfg.AuditRepo,
		clock:         c,
		idGen:         cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) recordAudit(ctx context.Context, actorID, verb, characterID string) {
	_, err := o.auditRepo.Append(ctx, audit.AppendInput{
		Entry: audit.Entry{
			ActorID:    actorID,
			Verb:       verb,
			EntityType: "character",
			EntityID:   characterID,
		},
	})
	if err != nil {
		// Audit failures do not fail the write.
		slog.WarnContext(ctx, "failed to record audit entry",
			"verb", verb,
			"character_id", characterID,
			"error", err.Error())
	}
}

// derive runs the engine for a sheet. Level falls back to the XP total
// when the sheet doesn't pin one.
func derive(sheet *entities.CharacterSheet) (*chardev.Computed, error) {
	level := sheet.Level
	if level == 0 {
		level = chardev.LevelFromTotalXP(sheet.XPTotal)
	}

	return chardev.Compute(chardev.Input{
		Level:        level,
		Invested:     sheet.Invested,
		Mods:         sheet.Mods,
		Skills:       sheet.Skills,
		Sublimations: sheet.Sublimations,
	})
}

func (o *orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Sheet == nil {
		return nil, errors.InvalidArgument("sheet cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Sheet.Name, vb)
	errors.ValidateRequired("player_id", input.Sheet.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	sheet := *input.Sheet
	if sheet.ID == "" {
		sheet.ID = o.idGen.Generate()
	}
	if sheet.Level == 0 {
		sheet.Level = chardev.LevelFromTotalXP(sheet.XPTotal)
	}

	// Reject sheets the engine refuses, so cap violations never land
	// in storage.
	computed, err := derive(&sheet)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	sheet.CreatedAt = now
	sheet.UpdatedAt = now

	created, err := o.characterRepo.Create(ctx, charrepo.CreateInput{Sheet: &sheet})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "created character",
		"character_id", sheet.ID,
		"player_id", sheet.PlayerID,
		"level", sheet.Level)
	o.recordAudit(ctx, sheet.PlayerID, "character.create", sheet.ID)

	return &CreateCharacterOutput{Sheet: created.Sheet, Computed: computed}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.characterRepo.Get(ctx, charrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	computed, err := derive(out.Sheet)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Sheet: out.Sheet, Computed: computed}, nil
}

func (o *orchestrator) UpdateCharacter(
	ctx context.Context,
	input *UpdateCharacterInput,
) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Sheet == nil {
		return nil, errors.InvalidArgument("sheet cannot be nil")
	}
	if input.Sheet.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	existing, err := o.characterRepo.Get(ctx, charrepo.GetInput{ID: input.Sheet.ID})
	if err != nil {
		return nil, err
	}

	sheet := *input.Sheet
	if sheet.Level == 0 {
		sheet.Level = chardev.LevelFromTotalXP(sheet.XPTotal)
	}

	computed, err := derive(&sheet)
	if err != nil {
		return nil, err
	}

	sheet.CreatedAt = existing.Sheet.CreatedAt
	sheet.UpdatedAt = o.clock.Now()

	updated, err := o.characterRepo.Update(ctx, charrepo.UpdateInput{Sheet: &sheet})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "updated character",
		"character_id", sheet.ID,
		"level", sheet.Level)
	o.recordAudit(ctx, sheet.PlayerID, "character.update", sheet.ID)

	return &UpdateCharacterOutput{Sheet: updated.Sheet, Computed: computed}, nil
}

func (o *orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	existing, err := o.characterRepo.Get(ctx, charrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, charrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted character", "character_id", input.ID)
	o.recordAudit(ctx, existing.Sheet.PlayerID, "character.delete", input.ID)

	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) ListCharactersByPlayer(
	ctx context.Context,
	input *ListCharactersByPlayerInput,
) (*ListCharactersByPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, charrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &ListCharactersByPlayerOutput{Sheets: out.Sheets}, nil
}

func (o *orchestrator) ComputeCharacter(
	ctx context.Context,
	input *ComputeCharacterInput,
) (*ComputeCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.characterRepo.Get(ctx, charrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	computed, err := derive(out.Sheet)
	if err != nil {
		return nil, err
	}

	return &ComputeCharacterOutput{Computed: computed}, nil
}

func (o *orchestrator) LevelFromXP(_ context.Context, input *LevelFromXPInput) (*LevelFromXPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.XPTotal < 0 {
		return nil, errors.InvalidArgument("xp_total cannot be negative")
	}

	level := chardev.LevelFromTotalXP(input.XPTotal)
	return &LevelFromXPOutput{
		Level:           level,
		TotalXPForLevel: chardev.TotalXPForLevel(level),
		NextLevelXPCost: chardev.NextLevelXPCost(level),
	}, nil
}
