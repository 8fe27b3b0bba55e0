package gamesession

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/clock"
)

// MemoryConfig holds the configuration for the in-memory repository
type MemoryConfig struct {
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *MemoryConfig) Validate() error {
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

// Sessions are held serialized so reads hand back independent copies, the
// same isolation the Redis repository gives.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string][]byte
	clock    clock.Clock
}

// NewMemoryRepository creates an in-memory repository, the default store for
// single-process play.
func NewMemoryRepository(cfg *MemoryConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &memoryRepository{
		sessions: make(map[string][]byte),
		clock:    cfg.Clock,
	}, nil
}

var _ Repository = (*memoryRepository)(nil)

// Create stores a new session; the ID must not already exist
func (r *memoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	now := r.clock.Now()
	input.Session.CreatedAt = now
	input.Session.UpdatedAt = now

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[input.Session.ID]; exists {
		return nil, errors.AlreadyExistsf("session already exists: %s", input.Session.ID)
	}
	r.sessions[input.Session.ID] = sessionJSON

	return &CreateOutput{Session: input.Session}, nil
}

// Get retrieves a session by ID
func (r *memoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	sessionJSON, exists := r.sessions[input.SessionID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("session not found: %s", input.SessionID)
	}

	var session entities.GameSession
	if err := json.Unmarshal(sessionJSON, &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &session}, nil
}

// Update replaces an existing session
func (r *memoryRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	input.Session.UpdatedAt = r.clock.Now()

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[input.Session.ID]; !exists {
		return nil, errors.NotFoundf("session not found: %s", input.Session.ID)
	}
	r.sessions[input.Session.ID] = sessionJSON

	return &UpdateOutput{Session: input.Session}, nil
}

// Delete removes a session
func (r *memoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[input.SessionID]; !exists {
		return nil, errors.NotFoundf("session not found: %s", input.SessionID)
	}
	delete(r.sessions, input.SessionID)

	return &DeleteOutput{}, nil
}
