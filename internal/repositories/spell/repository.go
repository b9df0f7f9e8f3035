// Package spell provides the interface for spell persistence
package spell

//go:generate mockgen -destination=mock/mock_repository.go -package=spellmock github.com/spellwright/grimoire-api/internal/repositories/spell Repository

import (
	"context"

	"github.com/spellwright/grimoire-api/internal/entities"
)

// Repository defines the interface for spell persistence
type Repository interface {
	// Create creates a new spell document
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a spell with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a spell document by ID
	// Returns errors.NotFound if the spell doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing spell document
	// Returns errors.NotFound if the spell doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a spell by ID
	// Returns errors.NotFound if the spell doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByAuthor retrieves all spells written by an author
	ListByAuthor(ctx context.Context, input ListByAuthorInput) (*ListByAuthorOutput, error)
}

// CreateInput defines the input for creating a spell
type CreateInput struct {
	Doc *entities.SpellDoc
}

// CreateOutput defines the output for creating a spell
type CreateOutput struct {
	Doc *entities.SpellDoc
}

// GetInput defines the input for getting a spell
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a spell
type GetOutput struct {
	Doc *entities.SpellDoc
}

// UpdateInput defines the input for updating a spell
type UpdateInput struct {
	Doc *entities.SpellDoc
}

// UpdateOutput defines the output for updating a spell
type UpdateOutput struct {
	Doc *entities.SpellDoc
}

// DeleteInput defines the input for deleting a spell
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a spell
type DeleteOutput struct{}

// ListByAuthorInput defines the input for listing spells by author
type ListByAuthorInput struct {
	AuthorID string
}

// ListByAuthorOutput defines the output for listing spells by author
type ListByAuthorOutput struct {
	Docs []*entities.SpellDoc
}
