package session

import (
	"github.com/KirkDiggler/rpg-dm/internal/checks"
	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

// CreateSessionInput contains parameters for starting a session
type CreateSessionInput struct{}

// CreateSessionOutput contains the new session
type CreateSessionOutput struct {
	Session *entities.GameSession
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the retrieved session
type GetSessionOutput struct {
	Session *entities.GameSession
}

// ListWorldsInput contains parameters for drawing world choices
type ListWorldsInput struct {
	// Count of worlds to offer; 0 means the default of three.
	Count int
}

// ListWorldsOutput contains the offered worlds
type ListWorldsOutput struct {
	Worlds []*entities.World
}

// SelectWorldInput contains parameters for choosing a world
type SelectWorldInput struct {
	SessionID string
	WorldID   string
}

// SelectWorldOutput contains the updated session
type SelectWorldOutput struct {
	Session *entities.GameSession
}

// CreateCharacterInput contains the player character to store
type CreateCharacterInput struct {
	SessionID string
	Character *entities.Character
}

// CreateCharacterOutput contains the updated session
type CreateCharacterOutput struct {
	Session *entities.GameSession
}

// GeneratePartyInput contains parameters for generating companions
type GeneratePartyInput struct {
	SessionID string
	// Count of companions to generate; 0 means the narrator default.
	Count int
}

// GeneratePartyOutput contains the updated session, now in gameplay
type GeneratePartyOutput struct {
	Session *entities.GameSession
}

// SubmitActionInput contains a player action
type SubmitActionInput struct {
	SessionID string
	Action    string
}

// SubmitActionOutput contains the narrated turn. An empty or whitespace
// action is a no-op success: Response is empty and the session unchanged.
type SubmitActionOutput struct {
	Session     *entities.GameSession
	Response    string
	DiceRequest *narrator.DiceRequest
}

// RollDiceInput contains parameters for a free die roll
type RollDiceInput struct {
	SessionID string
	Die       entities.DieType
	Modifier  int
	Purpose   string
}

// RollDiceOutput contains the roll record
type RollDiceOutput struct {
	Session *entities.GameSession
	Roll    *entities.DiceRoll
}

// QuickStatCheckInput contains parameters for a player ability check
type QuickStatCheckInput struct {
	SessionID       string
	Ability         entities.Ability
	DifficultyClass int
	Mode            checks.Mode
}

// QuickStatCheckOutput contains the check result
type QuickStatCheckOutput struct {
	Session *entities.GameSession
	Result  *checks.Result
}

// RecordRollInput contains a roll to log
type RecordRollInput struct {
	SessionID string
	Roll      *entities.DiceRoll
}

// RecordRollOutput contains the updated session
type RecordRollOutput struct {
	Session *entities.GameSession
}

// SeekSideQuestInput contains parameters for requesting a side quest
type SeekSideQuestInput struct {
	SessionID string
}

// SeekSideQuestOutput contains the offered quest, now pending
type SeekSideQuestOutput struct {
	Session *entities.GameSession
	Quest   *entities.Quest
}

// AcceptQuestInput contains the pending quest to promote
type AcceptQuestInput struct {
	SessionID string
	QuestID   string
}

// AcceptQuestOutput contains the accepted quest
type AcceptQuestOutput struct {
	Session *entities.GameSession
	Quest   *entities.Quest
}

// CompleteQuestInput contains parameters for completing the current quest
type CompleteQuestInput struct {
	SessionID string
}

// CompleteQuestOutput contains the completed quest
type CompleteQuestOutput struct {
	Session *entities.GameSession
	Quest   *entities.Quest
}

// FailQuestInput contains parameters for failing the current quest
type FailQuestInput struct {
	SessionID string
}

// FailQuestOutput contains the failed quest
type FailQuestOutput struct {
	Session *entities.GameSession
	Quest   *entities.Quest
}

// GenerateStoryEventInput contains parameters for offering an event
type GenerateStoryEventInput struct {
	SessionID string
}

// GenerateStoryEventOutput contains the pending event
type GenerateStoryEventOutput struct {
	Session *entities.GameSession
	Event   *entities.StoryEvent
}

// ResolveStoryEventInput contains the chosen option for the pending event
type ResolveStoryEventInput struct {
	SessionID string
	Choice    string
}

// ResolveStoryEventOutput returns the choice text so the caller can
// re-inject it as the next player action.
type ResolveStoryEventOutput struct {
	Session *entities.GameSession
	Choice  string
}

// SuggestInteractionInput contains the companion to speak for
type SuggestInteractionInput struct {
	SessionID   string
	CharacterID string
}

// SuggestInteractionOutput contains a suggested line for the companion
type SuggestInteractionOutput struct {
	Character  *entities.Character
	Suggestion string
}

// SubmitInteractionInput contains a companion's contribution
type SubmitInteractionInput struct {
	SessionID   string
	CharacterID string
	Message     string
}

// SubmitInteractionOutput contains the logged interaction
type SubmitInteractionOutput struct {
	Session     *entities.GameSession
	Interaction *entities.PartyInteraction
}
