package spell

import (
	"github.com/spellwright/grimoire-api/internal/entities"
)

// CreateSpellInput defines the input for creating a spell. The ID is
// generated when left empty.
type CreateSpellInput struct {
	Input entities.SpellInput
}

// CreateSpellOutput defines the output for creating a spell
type CreateSpellOutput struct {
	Doc *entities.SpellDoc
}

// GetSpellInput defines the input for getting a spell
type GetSpellInput struct {
	ID string
}

// GetSpellOutput defines the output for getting a spell
type GetSpellOutput struct {
	Doc *entities.SpellDoc
}

// UpdateSpellInput defines the input for updating a spell
type UpdateSpellInput struct {
	Input entities.SpellInput
}

// UpdateSpellOutput defines the output for updating a spell
type UpdateSpellOutput struct {
	Doc *entities.SpellDoc
}

// DeleteSpellInput defines the input for deleting a spell
type DeleteSpellInput struct {
	ID string
}

// DeleteSpellOutput defines the output for deleting a spell
type DeleteSpellOutput struct{}

// ListSpellsByAuthorInput defines the input for listing spells by author
type ListSpellsByAuthorInput struct {
	AuthorID string
}

// ListSpellsByAuthorOutput defines the output for listing spells by author
type ListSpellsByAuthorOutput struct {
	Docs []*entities.SpellDoc
}

// PreviewSpellCostInput defines the input for a cost preview
type PreviewSpellCostInput struct {
	Input entities.SpellInput
}

// PreviewSpellCostOutput defines the output for a cost preview
type PreviewSpellCostOutput struct {
	Computed entities.SpellComputed
}
