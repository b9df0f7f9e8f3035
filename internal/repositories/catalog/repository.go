// Package catalog provides the interface for rules catalog persistence
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/spellwright/grimoire-api/internal/repositories/catalog Repository

import (
	"context"

	"github.com/spellwright/grimoire-api/internal/entities"
)

// Repository defines the interface for catalog persistence. The catalog
// holds the authored content every derivation reads: schools, effects,
// and warding constraints.
type Repository interface {
	// CreateSchool creates a new school
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a school with the same ID exists
	CreateSchool(ctx context.Context, input CreateSchoolInput) (*CreateSchoolOutput, error)

	// GetSchool retrieves a school by ID
	// Returns errors.NotFound if the school doesn't exist
	GetSchool(ctx context.Context, input GetSchoolInput) (*GetSchoolOutput, error)

	// UpdateSchool replaces an existing school
	// Returns errors.NotFound if the school doesn't exist
	UpdateSchool(ctx context.Context, input UpdateSchoolInput) (*UpdateSchoolOutput, error)

	// DeleteSchool deletes a school by ID
	// Returns errors.NotFound if the school doesn't exist
	DeleteSchool(ctx context.Context, input DeleteSchoolInput) (*DeleteSchoolOutput, error)

	// ListSchools retrieves every school in the catalog
	ListSchools(ctx context.Context, input ListSchoolsInput) (*ListSchoolsOutput, error)

	// CreateEffect creates a new effect under an existing school
	// Returns errors.AlreadyExists if an effect with the same ID exists
	CreateEffect(ctx context.Context, input CreateEffectInput) (*CreateEffectOutput, error)

	// GetEffect retrieves an effect by ID
	// Returns errors.NotFound if the effect doesn't exist
	GetEffect(ctx context.Context, input GetEffectInput) (*GetEffectOutput, error)

	// UpdateEffect replaces an existing effect
	// Returns errors.NotFound if the effect doesn't exist
	UpdateEffect(ctx context.Context, input UpdateEffectInput) (*UpdateEffectOutput, error)

	// DeleteEffect deletes an effect by ID
	// Returns errors.NotFound if the effect doesn't exist
	DeleteEffect(ctx context.Context, input DeleteEffectInput) (*DeleteEffectOutput, error)

	// ListEffectsBySchool retrieves all effects belonging to a school
	ListEffectsBySchool(ctx context.Context, input ListEffectsBySchoolInput) (*ListEffectsBySchoolOutput, error)

	// ResolveEffects fetches the given effects together with their
	// schools, preserving input order. A missing effect or school
	// surfaces as errors.NotFound.
	ResolveEffects(ctx context.Context, input ResolveEffectsInput) (*ResolveEffectsOutput, error)

	// CreateConstraint creates a new warding constraint
	// Returns errors.AlreadyExists if a constraint with the same ID exists
	CreateConstraint(ctx context.Context, input CreateConstraintInput) (*CreateConstraintOutput, error)

	// GetConstraint retrieves a constraint by ID
	// Returns errors.NotFound if the constraint doesn't exist
	GetConstraint(ctx context.Context, input GetConstraintInput) (*GetConstraintOutput, error)

	// DeleteConstraint deletes a constraint by ID
	// Returns errors.NotFound if the constraint doesn't exist
	DeleteConstraint(ctx context.Context, input DeleteConstraintInput) (*DeleteConstraintOutput, error)

	// ListConstraints retrieves every constraint in the catalog
	ListConstraints(ctx context.Context, input ListConstraintsInput) (*ListConstraintsOutput, error)

	// GetConstraintsByIDs fetches the given constraints, preserving
	// input order. A missing constraint surfaces as errors.NotFound.
	GetConstraintsByIDs(ctx context.Context, input GetConstraintsByIDsInput) (*GetConstraintsByIDsOutput, error)
}

// CreateSchoolInput defines the input for creating a school
type CreateSchoolInput struct {
	School *entities.School
}

// CreateSchoolOutput defines the output for creating a school
type CreateSchoolOutput struct {
	School *entities.School
}

// GetSchoolInput defines the input for getting a school
type GetSchoolInput struct {
	ID string
}

// GetSchoolOutput defines the output for getting a school
type GetSchoolOutput struct {
	School *entities.School
}

// UpdateSchoolInput defines the input for updating a school
type UpdateSchoolInput struct {
	School *entities.School
}

// UpdateSchoolOutput defines the output for updating a school
type UpdateSchoolOutput struct {
	School *entities.School
}

// DeleteSchoolInput defines the input for deleting a school
type DeleteSchoolInput struct {
	ID string
}

// DeleteSchoolOutput defines the output for deleting a school
type DeleteSchoolOutput struct{}

// ListSchoolsInput defines the input for listing schools
type ListSchoolsInput struct{}

// ListSchoolsOutput defines the output for listing schools
type ListSchoolsOutput struct {
	Schools []*entities.School
}

// CreateEffectInput defines the input for creating an effect
type CreateEffectInput struct {
	Effect *entities.Effect
}

// CreateEffectOutput defines the output for creating an effect
type CreateEffectOutput struct {
	Effect *entities.Effect
}

// GetEffectInput defines the input for getting an effect
type GetEffectInput struct {
	ID string
}

// GetEffectOutput defines the output for getting an effect
type GetEffectOutput struct {
	Effect *entities.Effect
}

// UpdateEffectInput defines the input for updating an effect
type UpdateEffectInput struct {
	Effect *entities.Effect
}

// UpdateEffectOutput defines the output for updating an effect
type UpdateEffectOutput struct {
	Effect *entities.Effect
}

// DeleteEffectInput defines the input for deleting an effect
type DeleteEffectInput struct {
	ID string
}

// DeleteEffectOutput defines the output for deleting an effect
type DeleteEffectOutput struct{}

// ListEffectsBySchoolInput defines the input for listing effects by school
type ListEffectsBySchoolInput struct {
	SchoolID string
}

// ListEffectsBySchoolOutput defines the output for listing effects by school
type ListEffectsBySchoolOutput struct {
	Effects []*entities.Effect
}

// ResolveEffectsInput defines the input for resolving effects with schools
type ResolveEffectsInput struct {
	EffectIDs []string
}

// ResolveEffectsOutput defines the output for resolving effects with schools
type ResolveEffectsOutput struct {
	Effects []entities.ResolvedEffect
}

// CreateConstraintInput defines the input for creating a constraint
type CreateConstraintInput struct {
	Constraint *entities.Constraint
}

// CreateConstraintOutput defines the output for creating a constraint
type CreateConstraintOutput struct {
	Constraint *entities.Constraint
}

// GetConstraintInput defines the input for getting a constraint
type GetConstraintInput struct {
	ID string
}

// GetConstraintOutput defines the output for getting a constraint
type GetConstraintOutput struct {
	Constraint *entities.Constraint
}

// DeleteConstraintInput defines the input for deleting a constraint
type DeleteConstraintInput struct {
	ID string
}

// DeleteConstraintOutput defines the output for deleting a constraint
type DeleteConstraintOutput struct{}

// ListConstraintsInput defines the input for listing constraints
type ListConstraintsInput struct{}

// ListConstraintsOutput defines the output for listing constraints
type ListConstraintsOutput struct {
	Constraints []*entities.Constraint
}

// GetConstraintsByIDsInput defines the input for fetching constraints by ID
type GetConstraintsByIDsInput struct {
	IDs []string
}

// GetConstraintsByIDsOutput defines the output for fetching constraints by ID
type GetConstraintsByIDsOutput struct {
	Constraints []entities.Constraint
}
