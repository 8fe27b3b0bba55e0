package narrator_test

import (
	"context"
	"testing"
	"time"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/dice"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/idgen"
)

// stubGenerator returns a canned response or error and records the last call.
type stubGenerator struct {
	text string
	err  error

	lastSystem string
	lastPrompt string
}

func (s *stubGenerator) Generate(_ context.Context, system, prompt string, _ *narrator.GenerateOptions) (string, error) {
	s.lastSystem = system
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type GatewayTestSuite struct {
	suite.Suite

	ctx   context.Context
	clock *clock.Fixed
}

func (s *GatewayTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{T: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *GatewayTestSuite) newClient(gen narrator.Generator, roller rpgdice.Roller) narrator.Service {
	if roller == nil {
		roller = rpgdice.DefaultRoller
	}
	svc, err := narrator.New(&narrator.Config{
		Generator:   gen,
		IDGenerator: idgen.NewSequential("test"),
		Roller:      roller,
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	return svc
}

func (s *GatewayTestSuite) testWorld() *entities.World {
	return &entities.World{
		ID:          "world-1",
		Name:        "Eldoria",
		Description: "A realm of floating isles.",
		PlotHook:    "The isles are falling.",
		Theme:       "high fantasy",
	}
}

func (s *GatewayTestSuite) testCharacter() *entities.Character {
	return &entities.Character{
		ID:          "char-1",
		Name:        "Kira",
		Race:        entities.RaceHuman,
		Class:       entities.ClassFighter,
		Level:       1,
		Personality: entities.PersonalityBrave,
		Quirk:       entities.QuirkHasLuckyCharm,
		IsPlayer:    true,
	}
}

func (s *GatewayTestSuite) testParty() *entities.Party {
	return &entities.Party{
		ID:      "party-1",
		Members: []*entities.Character{s.testCharacter()},
	}
}

func (s *GatewayTestSuite) TestNew_RequiresDependencies() {
	_, err := narrator.New(&narrator.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *GatewayTestSuite) TestGetResponse_Online() {
	gen := &stubGenerator{text: "The gate groans open. ROLL STRENGTH DC 13"}
	svc := s.newClient(gen, nil)

	output, err := svc.GetResponse(s.ctx, &narrator.GetResponseInput{
		Action:    "push the gate",
		Character: s.testCharacter(),
		Party:     s.testParty(),
		World:     s.testWorld(),
	})
	s.Require().NoError(err)

	s.Equal("The gate groans open.", output.Narrative)
	s.Require().NotNil(output.DiceRequest)
	s.Equal(entities.AbilityStrength, output.DiceRequest.Ability)
	s.Equal(13, output.DiceRequest.DifficultyClass)

	s.Contains(gen.lastPrompt, "Eldoria")
	s.Contains(gen.lastPrompt, `PLAYER ACTION: "push the gate"`)
}

func (s *GatewayTestSuite) TestGetResponse_Offline() {
	svc := s.newClient(nil, dice.NewScriptedRoller(1))

	output, err := svc.GetResponse(s.ctx, &narrator.GetResponseInput{
		Action:    "Look around",
		Character: s.testCharacter(),
		Party:     s.testParty(),
		World:     s.testWorld(),
	})
	s.Require().NoError(err)

	s.Equal("As Kira look around, the party of 1 watches intently. The high fantasy atmosphere of Eldoria adds weight to every decision.", output.Narrative)
	s.Nil(output.DiceRequest)
}

func (s *GatewayTestSuite) TestGetResponse_GeneratorFailureFallsBack() {
	gen := &stubGenerator{err: errors.Unavailable("connection refused")}
	svc := s.newClient(gen, dice.NewScriptedRoller(3))

	output, err := svc.GetResponse(s.ctx, &narrator.GetResponseInput{
		Action:    "inspect the runes",
		Character: s.testCharacter(),
		World:     s.testWorld(),
	})
	s.Require().NoError(err)
	s.NotEmpty(output.Narrative)
	s.Nil(output.DiceRequest)
}

func (s *GatewayTestSuite) TestGetResponse_RequiresCharacterAndWorld() {
	svc := s.newClient(nil, nil)

	_, err := svc.GetResponse(s.ctx, &narrator.GetResponseInput{Action: "wave"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *GatewayTestSuite) TestGenerateParty_Offline() {
	svc := s.newClient(nil, nil)

	output, err := svc.GenerateParty(s.ctx, &narrator.GeneratePartyInput{
		PlayerCharacter: s.testCharacter(),
		World:           s.testWorld(),
	})
	s.Require().NoError(err)
	s.Require().Len(output.Members, 3)

	s.Equal("Thorin Ironbeard", output.Members[0].Name)
	s.Equal("Lyralei Swiftarrow", output.Members[1].Name)
	s.Equal("Finn Lightfinger", output.Members[2].Name)

	for _, member := range output.Members {
		s.False(member.IsPlayer)
		s.Equal(1, member.Level)
		s.NotEmpty(member.ID)
		s.True(member.AbilityScores.InRange(), "scores out of range: %+v", member.AbilityScores)
	}
}

func (s *GatewayTestSuite) TestGenerateParty_CountTruncatesRoster() {
	svc := s.newClient(nil, nil)

	output, err := svc.GenerateParty(s.ctx, &narrator.GeneratePartyInput{
		PlayerCharacter: s.testCharacter(),
		World:           s.testWorld(),
		Count:           2,
	})
	s.Require().NoError(err)
	s.Len(output.Members, 2)
}

func (s *GatewayTestSuite) TestGenerateParty_NegativeCount() {
	svc := s.newClient(nil, nil)

	_, err := svc.GenerateParty(s.ctx, &narrator.GeneratePartyInput{
		PlayerCharacter: s.testCharacter(),
		World:           s.testWorld(),
		Count:           -1,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *GatewayTestSuite) TestGenerateParty_Online() {
	gen := &stubGenerator{text: `Your companions:
[
  {"name": "Mira", "race": "Elf", "class": "Wizard", "personality": "Curious", "quirk": "Hums when nervous", "backstory": "An exile."},
  {"name": "Brog", "race": "Orc", "class": "Barbarian", "personality": "Gruff", "quirk": "Has lucky charm", "backstory": "A pit fighter."}
]`}
	svc := s.newClient(gen, nil)

	output, err := svc.GenerateParty(s.ctx, &narrator.GeneratePartyInput{
		PlayerCharacter: s.testCharacter(),
		World:           s.testWorld(),
		Count:           2,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Members, 2)

	s.Equal("Mira", output.Members[0].Name)
	s.Equal(entities.RaceElf, output.Members[0].Race)
	s.Equal(entities.ClassWizard, output.Members[0].Class)
	s.Equal("Brog", output.Members[1].Name)
	s.False(output.Members[0].IsPlayer)
}

func (s *GatewayTestSuite) TestGenerateParty_BadJSONFallsBack() {
	gen := &stubGenerator{text: "I am unable to produce JSON today."}
	svc := s.newClient(gen, nil)

	output, err := svc.GenerateParty(s.ctx, &narrator.GeneratePartyInput{
		PlayerCharacter: s.testCharacter(),
		World:           s.testWorld(),
	})
	s.Require().NoError(err)
	s.Require().Len(output.Members, 3)
	s.Equal("Thorin Ironbeard", output.Members[0].Name)
}

func (s *GatewayTestSuite) TestGenerateQuest_Offline() {
	svc := s.newClient(nil, dice.NewScriptedRoller(1))

	output, err := svc.GenerateQuest(s.ctx, &narrator.GenerateQuestInput{
		World: s.testWorld(),
		Party: s.testParty(),
		Type:  entities.QuestTypeMain,
	})
	s.Require().NoError(err)

	quest := output.Quest
	s.Equal("The Ancient Prophecy", quest.Title)
	s.Equal(15, quest.DifficultyClass)
	s.Equal(entities.QuestTypeMain, quest.Type)
	s.Equal(entities.QuestStatusActive, quest.Status)
	s.NotEmpty(quest.ID)
}

func (s *GatewayTestSuite) TestGenerateQuest_Online() {
	gen := &stubGenerator{text: "TITLE: The Sunken Vault\nDESCRIPTION: Recover the ledger.\nDC: 16"}
	svc := s.newClient(gen, nil)

	output, err := svc.GenerateQuest(s.ctx, &narrator.GenerateQuestInput{
		World: s.testWorld(),
		Party: s.testParty(),
		Type:  entities.QuestTypeSide,
	})
	s.Require().NoError(err)

	s.Equal("The Sunken Vault", output.Quest.Title)
	s.Equal(16, output.Quest.DifficultyClass)
	s.Equal(entities.QuestTypeSide, output.Quest.Type)
	s.Equal(entities.QuestStatusActive, output.Quest.Status)
}

func (s *GatewayTestSuite) TestGenerateQuest_UnknownType() {
	svc := s.newClient(nil, nil)

	_, err := svc.GenerateQuest(s.ctx, &narrator.GenerateQuestInput{
		World: s.testWorld(),
		Type:  entities.QuestType("epic"),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *GatewayTestSuite) TestGenerateStoryEvent_Offline() {
	svc := s.newClient(nil, dice.NewScriptedRoller(2))

	output, err := svc.GenerateStoryEvent(s.ctx, &narrator.GenerateStoryEventInput{
		World: s.testWorld(),
		Party: s.testParty(),
	})
	s.Require().NoError(err)

	event := output.Event
	s.Equal("A sudden storm forces your party to seek shelter in an abandoned inn.", event.Situation)
	s.Len(event.Choices, 3)
	s.Equal(s.clock.T, event.CreatedAt)
	s.NotEmpty(event.ID)
}

func (s *GatewayTestSuite) TestGenerateStoryEvent_Online() {
	gen := &stubGenerator{text: "EVENT: A bridge has collapsed.\nCHOICE1: Ford the river\nCHOICE2: Turn back"}
	svc := s.newClient(gen, nil)

	output, err := svc.GenerateStoryEvent(s.ctx, &narrator.GenerateStoryEventInput{
		World: s.testWorld(),
		Party: s.testParty(),
	})
	s.Require().NoError(err)

	s.Equal("A bridge has collapsed.", output.Event.Situation)
	s.Equal([]string{"Ford the river", "Turn back"}, output.Event.Choices)
}

func (s *GatewayTestSuite) TestGenerateStoryEvent_UnparseableFallsBack() {
	gen := &stubGenerator{text: "Something happens, probably."}
	svc := s.newClient(gen, dice.NewScriptedRoller(1))

	output, err := svc.GenerateStoryEvent(s.ctx, &narrator.GenerateStoryEventInput{
		World: s.testWorld(),
		Party: s.testParty(),
	})
	s.Require().NoError(err)
	s.Equal("You encounter a mysterious traveler at the crossroads who offers to trade information.", output.Event.Situation)
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}
