// Package audit provides an append-only trail of authoring actions
package audit

//go:generate mockgen -destination=mock/mock_repository.go -package=auditmock github.com/spellwright/grimoire-api/internal/repositories/audit Repository

import (
	"context"
	"time"
)

// Entry is one recorded authoring action. Entries are immutable once
// appended.
type Entry struct {
	ID         string            `json:"id"`
	ActorID    string            `json:"actor_id"`
	Verb       string            `json:"verb"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Detail     map[string]string `json:"detail,omitempty"`
	At         time.Time         `json:"at"`
}

// Repository defines the interface for the audit trail
type Repository interface {
	// Append records an entry. ID and At are stamped by the repository
	// when left empty.
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// ListByEntity retrieves entries for one entity, newest first
	ListByEntity(ctx context.Context, input ListByEntityInput) (*ListByEntityOutput, error)

	// ListRecent retrieves the most recent entries across all entities,
	// newest first
	ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error)
}

// AppendInput defines the input for appending an audit entry
type AppendInput struct {
	Entry Entry
}

// AppendOutput defines the output for appending an audit entry
type AppendOutput struct {
	Entry Entry
}

// ListByEntityInput defines the input for listing entries by entity
type ListByEntityInput struct {
	EntityType string
	EntityID   string
	Limit      int
}

// ListByEntityOutput defines the output for listing entries by entity
type ListByEntityOutput struct {
	Entries []Entry
}

// ListRecentInput defines the input for listing recent entries
type ListRecentInput struct {
	Limit int
}

// ListRecentOutput defines the output for listing recent entries
type ListRecentOutput struct {
	Entries []Entry
}
