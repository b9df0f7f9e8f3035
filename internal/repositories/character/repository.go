// Package character provides the interface for character sheet persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/spellwright/grimoire-api/internal/repositories/character Repository

import (
	"context"

	"github.com/spellwright/grimoire-api/internal/entities"
)

// Repository defines the interface for character sheet persistence
type Repository interface {
	// Create creates a new character sheet
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a sheet with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character sheet by ID
	// Returns errors.NotFound if the sheet doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character sheet
	// Returns errors.NotFound if the sheet doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character sheet by ID
	// Returns errors.NotFound if the sheet doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all character sheets for a player
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a character sheet
type CreateInput struct {
	Sheet *entities.CharacterSheet
}

// CreateOutput defines the output for creating a character sheet
type CreateOutput struct {
	Sheet *entities.CharacterSheet
}

// GetInput defines the input for getting a character sheet
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character sheet
type GetOutput struct {
	Sheet *entities.CharacterSheet
}

// UpdateInput defines the input for updating a character sheet
type UpdateInput struct {
	Sheet *entities.CharacterSheet
}

// UpdateOutput defines the output for updating a character sheet
type UpdateOutput struct {
	Sheet *entities.CharacterSheet
}

// DeleteInput defines the input for deleting a character sheet
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character sheet
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing sheets by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing sheets by player
type ListByPlayerIDOutput struct {
	Sheets []*entities.CharacterSheet
}
