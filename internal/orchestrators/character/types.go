package character

import (
	"github.com/spellwright/grimoire-api/internal/engine/chardev"
	"github.com/spellwright/grimoire-api/internal/entities"
)

// CreateCharacterInput defines the input for creating a character. The ID
// is generated when left empty; Level falls back to the XP total when
// zero.
type CreateCharacterInput struct {
	Sheet *entities.CharacterSheet
}

// CreateCharacterOutput defines the output for creating a character
type CreateCharacterOutput struct {
	Sheet    *entities.CharacterSheet
	Computed *chardev.Computed
}

// GetCharacterInput defines the input for getting a character
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput defines the output for getting a character
type GetCharacterOutput struct {
	Sheet    *entities.CharacterSheet
	Computed *chardev.Computed
}

// UpdateCharacterInput defines the input for updating a character
type UpdateCharacterInput struct {
	Sheet *entities.CharacterSheet
}

// UpdateCharacterOutput defines the output for updating a character
type UpdateCharacterOutput struct {
	Sheet    *entities.CharacterSheet
	Computed *chardev.Computed
}

// DeleteCharacterInput defines the input for deleting a character
type DeleteCharacterInput struct {
	ID string
}

// DeleteCharacterOutput defines the output for deleting a character
type DeleteCharacterOutput struct{}

// ListCharactersByPlayerInput defines the input for listing characters by player
type ListCharactersByPlayerInput struct {
	PlayerID string
}

// ListCharactersByPlayerOutput defines the output for listing characters by player
type ListCharactersByPlayerOutput struct {
	Sheets []*entities.CharacterSheet
}

// ComputeCharacterInput defines the input for deriving a stored character
type ComputeCharacterInput struct {
	ID string
}

// ComputeCharacterOutput defines the output for deriving a stored character
type ComputeCharacterOutput struct {
	Computed *chardev.Computed
}

// LevelFromXPInput defines the input for an XP-to-level query
type LevelFromXPInput struct {
	XPTotal int
}

// LevelFromXPOutput defines the output for an XP-to-level query
type LevelFromXPOutput struct {
	Level           int
	TotalXPForLevel int
	NextLevelXPCost int
}
