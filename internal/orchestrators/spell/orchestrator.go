// Package spell implements the spell orchestrator for authoring and
// costing spells. Derived cost state is recomputed from the catalog on
// every write; it is never accepted from the caller.
package spell

//go:generate mockgen -destination=mock/mock_service.go -package=spellmock github.com/spellwright/grimoire-api/internal/orchestrators/spell Service

import (
	"context"
	"log/slog"

	"github.com/spellwright/grimoire-api/internal/engine/spellcost"
	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/errors"
	"github.com/spellwright/grimoire-api/internal/pkg/clock"
	"github.com/spellwright/grimoire-api/internal/pkg/idgen"
	"github.com/spellwright/grimoire-api/internal/repositories/audit"
	"github.com/spellwright/grimoire-api/internal/repositories/catalog"
	spellrepo "github.com/spellwright/grimoire-api/internal/repositories/spell"
)

// Service defines the interface for spell operations
type Service interface {
	CreateSpell(ctx context.Context, input *CreateSpellInput) (*CreateSpellOutput, error)
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)
	UpdateSpell(ctx context.Context, input *UpdateSpellInput) (*UpdateSpellOutput, error)
	DeleteSpell(ctx context.Context, input *DeleteSpellInput) (*DeleteSpellOutput, error)
	ListSpellsByAuthor(ctx context.Context, input *ListSpellsByAuthorInput) (*ListSpellsByAuthorOutput, error)

	// PreviewSpellCost runs the cost derivation without persisting
	// anything. Authors use it to explore axis choices.
	PreviewSpellCost(ctx context.Context, input *PreviewSpellCostInput) (*PreviewSpellCostOutput, error)
}

// Config holds the dependencies for the spell orchestrator
type Config struct {
	SpellRepo   spellrepo.Repository
	CatalogRepo catalog.Repository
	AuditRepo   audit.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
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
	spellRepo   spellrepo.Repository
	catalogRepo catalog.Repository
	auditRepo   audit.Repository
	clock       clock.Clock
	idGen       idgen.Generator
}

// NewOrchestrator creates a new spell orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		spellRepo:   cfg.SpellRepo,
		catalogRepo: cfg.CatalogRepo,
		auditRepo:   cfg.AuditRepo,
		clock:       c,
		idGen:       cfg.IDGenerator,
	}, nil
}

func validateSpellInput(input entities.SpellInput) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("author_id", input.AuthorID, vb)
	if len(input.EffectIDs) == 0 {
		vb.RequiredField("effect_ids")
	}
	return vb.Build()
}

// compute resolves the spell's effects against the catalog and derives
// the full computed block.
func (o *orchestrator) compute(ctx context.Context, input entities.SpellInput) (entities.SpellComputed, error) {
	resolved, err := o.catalogRepo.ResolveEffects(ctx, catalog.ResolveEffectsInput{
		EffectIDs: input.EffectIDs,
	})
	if err != nil {
		return entities.SpellComputed{}, err
	}

	return spellcost.Resolve(input, resolved.Effects)
}

func (o *orchestrator) recordAudit(ctx context.Context, actorID, verb, spellID string) {
	_, err := o.auditRepo.Append(ctx, audit.AppendInput{
		Entry: audit.Entry{
			ActorID:    actorID,
			Verb:       verb,
			EntityType: "spell",
			EntityID:   spellID,
		},
	})
	if err != nil {
		// Audit failures do not fail the write.
		slog.WarnContext(ctx, "failed to record audit entry",
			"verb", verb,
			"spell_id", spellID,
			"error", err.Error())
	}
}

func (o *orchestrator) CreateSpell(ctx context.Context, input *CreateSpellInput) (*CreateSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateSpellInput(input.Input); err != nil {
		return nil, err
	}

	spellInput := input.Input
	if spellInput.ID == "" {
		spellInput.ID = o.idGen.Generate()
	}

	computed, err := o.compute(ctx, spellInput)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	doc := &entities.SpellDoc{
		Input:     spellInput,
		Computed:  computed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := o.spellRepo.Create(ctx, spellrepo.CreateInput{Doc: doc})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "created spell",
		"spell_id", spellInput.ID,
		"author_id", spellInput.AuthorID,
		"mp_cost", computed.MPCost,
		"category", computed.Category)
	o.recordAudit(ctx, spellInput.AuthorID, "spell.create", spellInput.ID)

	return &CreateSpellOutput{Doc: created.Doc}, nil
}

func (o *orchestrator) GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.spellRepo.Get(ctx, spellrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetSpellOutput{Doc: out.Doc}, nil
}

func (o *orchestrator) UpdateSpell(ctx context.Context, input *UpdateSpellInput) (*UpdateSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Input.ID == "" {
		return nil, errors.InvalidArgument("spell ID cannot be empty")
	}
	if err := validateSpellInput(input.Input); err != nil {
		return nil, err
	}

	existing, err := o.spellRepo.Get(ctx, spellrepo.GetInput{ID: input.Input.ID})
	if err != nil {
		return nil, err
	}

	computed, err := o.compute(ctx, input.Input)
	if err != nil {
		return nil, err
	}

	doc := &entities.SpellDoc{
		Input:     input.Input,
		Computed:  computed,
		CreatedAt: existing.Doc.CreatedAt,
		UpdatedAt: o.clock.Now(),
	}

	updated, err := o.spellRepo.Update(ctx, spellrepo.UpdateInput{Doc: doc})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "updated spell",
		"spell_id", input.Input.ID,
		"mp_cost", computed.MPCost,
		"category", computed.Category)
	o.recordAudit(ctx, input.Input.AuthorID, "spell.update", input.Input.ID)

	return &UpdateSpellOutput{Doc: updated.Doc}, nil
}

func (o *orchestrator) DeleteSpell(ctx context.Context, input *DeleteSpellInput) (*DeleteSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	existing, err := o.spellRepo.Get(ctx, spellrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	if _, err := o.spellRepo.Delete(ctx, spellrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted spell", "spell_id", input.ID)
	o.recordAudit(ctx, existing.Doc.Input.AuthorID, "spell.delete", input.ID)

	return &DeleteSpellOutput{}, nil
}

func (o *orchestrator) ListSpellsByAuthor(
	ctx context.Context,
	input *ListSpellsByAuthorInput,
) (*ListSpellsByAuthorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.spellRepo.ListByAuthor(ctx, spellrepo.ListByAuthorInput{AuthorID: input.AuthorID})
	if err != nil {
		return nil, err
	}

	return &ListSpellsByAuthorOutput{Docs: out.Docs}, nil
}

func (o *orchestrator) PreviewSpellCost(
	ctx context.Context,
	input *PreviewSpellCostInput,
) (*PreviewSpellCostOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if len(input.Input.EffectIDs) == 0 {
		return nil, errors.InvalidArgument("effect_ids cannot be empty")
	}

	computed, err := o.compute(ctx, input.Input)
	if err != nil {
		return nil, err
	}

	return &PreviewSpellCostOutput{Computed: computed}, nil
}
