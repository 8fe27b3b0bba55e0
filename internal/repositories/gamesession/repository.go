// Package gamesession provides storage for live game sessions
package gamesession

import (
	"context"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesessionmock github.com/KirkDiggler/rpg-dm/internal/repositories/gamesession Repository

// CreateInput contains parameters for storing a new session
type CreateInput struct {
	Session *entities.GameSession
}

// CreateOutput contains the stored session
type CreateOutput struct {
	Session *entities.GameSession
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	SessionID string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *entities.GameSession
}

// UpdateInput contains the session to replace
type UpdateInput struct {
	Session *entities.GameSession
}

// UpdateOutput contains the updated session
type UpdateOutput struct {
	Session *entities.GameSession
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	SessionID string
}

// DeleteOutput contains the result of deleting a session
type DeleteOutput struct{}

// Repository defines the interface for game session storage operations
type Repository interface {
	// Create stores a new session; the ID must not already exist
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
