package party_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dm/internal/dice"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/party"
)

func testCompanion(p entities.Personality) *entities.Character {
	return &entities.Character{
		ID:          "companion-1",
		Name:        "Thorin Ironbeard",
		Race:        entities.RaceDwarf,
		Class:       entities.ClassCleric,
		Personality: p,
	}
}

func TestSuggestions_EveryPersonalityHasThreeLines(t *testing.T) {
	for _, p := range entities.Personalities() {
		assert.Len(t, party.Suggestions(p), 3, "personality %s", p)
	}
}

func TestSuggestions_UnknownFallsBackToLoyal(t *testing.T) {
	assert.Equal(t,
		party.Suggestions(entities.PersonalityLoyal),
		party.Suggestions(entities.Personality("Stoic")))
}

func TestSuggestions_ReturnsCopy(t *testing.T) {
	lines := party.Suggestions(entities.PersonalityBrave)
	lines[0] = "mutated"
	assert.Equal(t, "Let's face this challenge head-on!", party.Suggestions(entities.PersonalityBrave)[0])
}

func TestSuggestLine(t *testing.T) {
	line, err := party.SuggestLine(testCompanion(entities.PersonalityGruff), dice.NewScriptedRoller(2))
	require.NoError(t, err)
	assert.Equal(t, "I don't like the look of this.", line)
}

func TestSuggestLine_NilCharacter(t *testing.T) {
	_, err := party.SuggestLine(nil, dice.NewScriptedRoller(1))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewInteraction(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	companion := testCompanion(entities.PersonalityWitty)

	interaction, err := party.NewInteraction(companion, "I have an idea that might work...", now)
	require.NoError(t, err)

	assert.Equal(t, "companion-1", interaction.CharacterID)
	assert.Same(t, companion, interaction.Character)
	assert.Equal(t, "I have an idea that might work...", interaction.Message)
	assert.Equal(t, now, interaction.Timestamp)
}

func TestNewInteraction_EmptyMessage(t *testing.T) {
	_, err := party.NewInteraction(testCompanion(entities.PersonalityBrave), "", time.Now())
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
