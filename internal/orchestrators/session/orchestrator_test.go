package session_test

import (
	"context"
	"testing"
	"time"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dm/internal/checks"
	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	narratormock "github.com/KirkDiggler/rpg-dm/internal/clients/narrator/mock"
	"github.com/KirkDiggler/rpg-dm/internal/dice"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dm/internal/repositories/gamesession"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctx          context.Context
	ctrl         *gomock.Controller
	mockNarrator *narratormock.MockService
	repo         gamesession.Repository
	clock        *clock.Fixed
	engineRoller *dice.ScriptedRoller
	orchestrator session.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockNarrator = narratormock.NewMockService(s.ctrl)
	s.clock = &clock.Fixed{T: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := gamesession.NewMemoryRepository(&gamesession.MemoryConfig{Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo

	s.engineRoller = dice.NewScriptedRoller()
	s.orchestrator = s.newOrchestrator(s.engineRoller, rpgdice.DefaultRoller)
}

// newOrchestrator builds a service around the suite's repo and mock narrator.
// engineRoller feeds the dice engine and resolver; pickRoller feeds world
// draws and interaction suggestions.
func (s *OrchestratorTestSuite) newOrchestrator(engineRoller, pickRoller rpgdice.Roller) session.Service {
	engine, err := dice.NewEngine(&dice.Config{Roller: engineRoller})
	s.Require().NoError(err)

	resolver, err := checks.NewResolver(&checks.Config{Engine: engine})
	s.Require().NoError(err)

	svc, err := session.NewOrchestrator(&session.Config{
		SessionRepo: s.repo,
		Narrator:    s.mockNarrator,
		Engine:      engine,
		Resolver:    resolver,
		Roller:      pickRoller,
		IDGenerator: idgen.NewSequential("id"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	return svc
}

func validPlayer() *entities.Character {
	return &entities.Character{
		Name:  "Kira",
		Race:  entities.RaceHuman,
		Class: entities.ClassFighter,
		AbilityScores: entities.AbilityScores{
			Strength:     15,
			Dexterity:    14,
			Constitution: 13,
			Intelligence: 12,
			Wisdom:       11,
			Charisma:     10,
		},
		Personality: entities.PersonalityBrave,
		Quirk:       entities.QuirkHasLuckyCharm,
		IsPlayer:    true,
	}
}

func testCompanions() []*entities.Character {
	return []*entities.Character{
		{ID: "comp-1", Name: "Thorin Ironbeard", Race: entities.RaceDwarf, Class: entities.ClassCleric,
			Level: 1, Personality: entities.PersonalityLoyal},
		{ID: "comp-2", Name: "Lyralei Swiftarrow", Race: entities.RaceElf, Class: entities.ClassRanger,
			Level: 1, Personality: entities.PersonalityCautious},
	}
}

func mainQuest() *entities.Quest {
	return &entities.Quest{
		ID:              "quest-main",
		Title:           "The Ancient Prophecy",
		Description:     "Uncover the truth behind an ancient prophecy that threatens the realm.",
		Type:            entities.QuestTypeMain,
		Status:          entities.QuestStatusActive,
		DifficultyClass: 15,
	}
}

func sideQuest(id string) *entities.Quest {
	return &entities.Quest{
		ID:              id,
		Title:           "The Missing Merchant",
		Description:     "Find the merchant who disappeared on the old forest road.",
		Type:            entities.QuestTypeSide,
		Status:          entities.QuestStatusActive,
		DifficultyClass: 10,
	}
}

// newSession walks a fresh session to the given phase.
func (s *OrchestratorTestSuite) newSession(target entities.GamePhase) *entities.GameSession {
	created, err := s.orchestrator.CreateSession(s.ctx, &session.CreateSessionInput{})
	s.Require().NoError(err)
	sess := created.Session

	if sess.Phase == target {
		return sess
	}

	selected, err := s.orchestrator.SelectWorld(s.ctx, &session.SelectWorldInput{
		SessionID: sess.ID,
		WorldID:   "emberfall",
	})
	s.Require().NoError(err)
	if selected.Session.Phase == target {
		return selected.Session
	}

	withChar, err := s.orchestrator.CreateCharacter(s.ctx, &session.CreateCharacterInput{
		SessionID: sess.ID,
		Character: validPlayer(),
	})
	s.Require().NoError(err)
	if withChar.Session.Phase == target {
		return withChar.Session
	}

	s.mockNarrator.EXPECT().
		GenerateParty(gomock.Any(), gomock.Any()).
		Return(&narrator.GeneratePartyOutput{Members: testCompanions()}, nil)
	s.mockNarrator.EXPECT().
		GenerateQuest(gomock.Any(), gomock.Any()).
		Return(&narrator.GenerateQuestOutput{Quest: mainQuest()}, nil)

	withParty, err := s.orchestrator.GenerateParty(s.ctx, &session.GeneratePartyInput{
		SessionID: sess.ID,
	})
	s.Require().NoError(err)
	return withParty.Session
}

// padNarrative grows the transcript to exactly n lines through the repo.
func (s *OrchestratorTestSuite) padNarrative(sessionID string, n int) *entities.GameSession {
	got, err := s.repo.Get(s.ctx, gamesession.GetInput{SessionID: sessionID})
	s.Require().NoError(err)
	sess := got.Session

	for len(sess.Narrative) < n {
		sess.AppendNarrative(entities.EntryNarrator, "The road winds on.")
	}
	updated, err := s.repo.Update(s.ctx, gamesession.UpdateInput{Session: sess})
	s.Require().NoError(err)
	return updated.Session
}

func (s *OrchestratorTestSuite) TestCreateSession() {
	output, err := s.orchestrator.CreateSession(s.ctx, &session.CreateSessionInput{})
	s.Require().NoError(err)

	s.NotEmpty(output.Session.ID)
	s.Equal(entities.PhaseWorldSelection, output.Session.Phase)
	s.Empty(output.Session.Narrative)
}

func (s *OrchestratorTestSuite) TestListWorlds() {
	output, err := s.orchestrator.ListWorlds(s.ctx, &session.ListWorldsInput{})
	s.Require().NoError(err)
	s.Len(output.Worlds, 3)
}

func (s *OrchestratorTestSuite) TestSelectWorld() {
	sess := s.newSession(entities.PhaseWorldSelection)

	output, err := s.orchestrator.SelectWorld(s.ctx, &session.SelectWorldInput{
		SessionID: sess.ID,
		WorldID:   "verdant-hollow",
	})
	s.Require().NoError(err)

	s.Equal("Verdant Hollow", output.Session.World.Name)
	s.Equal(entities.PhaseCharacterCreation, output.Session.Phase)
}

func (s *OrchestratorTestSuite) TestSelectWorld_UnknownWorld() {
	sess := s.newSession(entities.PhaseWorldSelection)

	_, err := s.orchestrator.SelectWorld(s.ctx, &session.SelectWorldInput{
		SessionID: sess.ID,
		WorldID:   "atlantis",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSelectWorld_WrongPhase() {
	sess := s.newSession(entities.PhaseCharacterCreation)

	_, err := s.orchestrator.SelectWorld(s.ctx, &session.SelectWorldInput{
		SessionID: sess.ID,
		WorldID:   "emberfall",
	})
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	sess := s.newSession(entities.PhaseCharacterCreation)

	output, err := s.orchestrator.CreateCharacter(s.ctx, &session.CreateCharacterInput{
		SessionID: sess.ID,
		Character: validPlayer(),
	})
	s.Require().NoError(err)

	player := output.Session.PlayerCharacter
	s.NotEmpty(player.ID)
	s.Equal(1, player.Level)
	s.Equal(entities.PhasePartyGeneration, output.Session.Phase)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Validation() {
	cases := []struct {
		name   string
		mutate func(*entities.Character)
	}{
		{name: "not player", mutate: func(c *entities.Character) { c.IsPlayer = false }},
		{name: "empty name", mutate: func(c *entities.Character) { c.Name = "   " }},
		{name: "unknown race", mutate: func(c *entities.Character) { c.Race = "Vampire" }},
		{name: "unknown class", mutate: func(c *entities.Character) { c.Class = "Necromancer" }},
		{name: "unknown personality", mutate: func(c *entities.Character) { c.Personality = "Stoic" }},
		{name: "unknown quirk", mutate: func(c *entities.Character) { c.Quirk = "Sneezes loudly" }},
		{name: "score out of range", mutate: func(c *entities.Character) { c.AbilityScores.Strength = 16 }},
		{name: "budget underspent", mutate: func(c *entities.Character) {
			c.AbilityScores = entities.AbilityScores{
				Strength: 8, Dexterity: 8, Constitution: 8,
				Intelligence: 8, Wisdom: 8, Charisma: 8,
			}
		}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			sess := s.newSession(entities.PhaseCharacterCreation)
			character := validPlayer()
			tc.mutate(character)

			_, err := s.orchestrator.CreateCharacter(s.ctx, &session.CreateCharacterInput{
				SessionID: sess.ID,
				Character: character,
			})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestGenerateParty() {
	sess := s.newSession(entities.PhaseGameplay)

	s.Equal(entities.PhaseGameplay, sess.Phase)

	// player first, then the generated companions
	s.Require().Len(sess.Party.Members, 3)
	s.True(sess.Party.Members[0].IsPlayer)
	s.Equal("Kira", sess.Party.Members[0].Name)
	s.Equal("Thorin Ironbeard", sess.Party.Members[1].Name)
	s.Equal("Lyralei Swiftarrow", sess.Party.Members[2].Name)

	// opening narration plus the quest install line
	lines := sess.Narrative.Lines()
	s.Require().Len(lines, 5)
	s.Equal("Welcome to Emberfall!", lines[0])
	s.Contains(lines[1], "volcanic wasteland")
	s.Contains(lines[2], "Quest: ")
	s.Equal("Your character Kira the Human Fighter stands ready for adventure!", lines[3])
	s.Equal("Quest accepted: The Ancient Prophecy", lines[4])

	s.Require().NotNil(sess.CurrentQuest)
	s.Equal("The Ancient Prophecy", sess.CurrentQuest.Title)
}

func (s *OrchestratorTestSuite) TestSubmitAction_EmptyIsNoOp() {
	sess := s.newSession(entities.PhaseGameplay)
	before := len(sess.Narrative)

	output, err := s.orchestrator.SubmitAction(s.ctx, &session.SubmitActionInput{
		SessionID: sess.ID,
		Action:    "   ",
	})
	s.Require().NoError(err)
	s.Empty(output.Response)
	s.Len(output.Session.Narrative, before)
}

func (s *OrchestratorTestSuite) TestSubmitAction() {
	sess := s.newSession(entities.PhaseGameplay)
	before := len(sess.Narrative)

	s.mockNarrator.EXPECT().
		GetResponse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *narrator.GetResponseInput) (*narrator.GetResponseOutput, error) {
			s.Equal("I search the room", input.Action)
			s.Equal("Emberfall", input.World.Name)
			s.NotNil(input.CurrentQuest)
			return &narrator.GetResponseOutput{Narrative: "Dust swirls as you search."}, nil
		})

	output, err := s.orchestrator.SubmitAction(s.ctx, &session.SubmitActionInput{
		SessionID: sess.ID,
		Action:    "I search the room",
	})
	s.Require().NoError(err)

	lines := output.Session.Narrative.Lines()
	s.Require().Len(lines, before+2)
	s.Equal("You: I search the room", lines[before])
	s.Equal("DM: Dust swirls as you search.", lines[before+1])
	s.Nil(output.DiceRequest)
}

func (s *OrchestratorTestSuite) TestSubmitAction_WithDiceRequest() {
	sess := s.newSession(entities.PhaseGameplay)
	before := len(sess.Narrative)

	s.mockNarrator.EXPECT().
		GetResponse(gomock.Any(), gomock.Any()).
		Return(&narrator.GetResponseOutput{
			Narrative: "The chasm yawns before you.",
			DiceRequest: &narrator.DiceRequest{
				Ability:         entities.AbilityDexterity,
				DifficultyClass: 15,
			},
		}, nil)

	output, err := s.orchestrator.SubmitAction(s.ctx, &session.SubmitActionInput{
		SessionID: sess.ID,
		Action:    "I leap across",
	})
	s.Require().NoError(err)

	lines := output.Session.Narrative.Lines()
	s.Require().Len(lines, before+3)
	s.Equal("The DM calls for a Dexterity check (DC 15, Medium). Roll when ready!", lines[before+2])
	s.Require().NotNil(output.DiceRequest)
	s.Equal(entities.AbilityDexterity, output.DiceRequest.Ability)

	// no auto-roll: history stays empty
	s.Empty(output.Session.RollHistory)
}

func (s *OrchestratorTestSuite) TestRollDice() {
	sess := s.newSession(entities.PhaseGameplay)
	s.engineRoller.SetRolls([]int{17})

	output, err := s.orchestrator.RollDice(s.ctx, &session.RollDiceInput{
		SessionID: sess.ID,
		Die:       entities.DieD20,
		Modifier:  3,
		Purpose:   "Attack roll",
	})
	s.Require().NoError(err)

	s.Equal(20, output.Roll.Total)
	s.Require().Len(output.Session.RollHistory, 1)
	s.Equal("Attack roll: 17 + 3 = 20", output.Session.Narrative.Lines()[len(output.Session.Narrative)-1])
}

func (s *OrchestratorTestSuite) TestRollDice_WrongPhase() {
	sess := s.newSession(entities.PhaseWorldSelection)

	_, err := s.orchestrator.RollDice(s.ctx, &session.RollDiceInput{
		SessionID: sess.ID,
		Die:       entities.DieD20,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestQuickStatCheck() {
	sess := s.newSession(entities.PhaseGameplay)
	s.engineRoller.SetRolls([]int{15})

	output, err := s.orchestrator.QuickStatCheck(s.ctx, &session.QuickStatCheckInput{
		SessionID:       sess.ID,
		Ability:         entities.AbilityDexterity,
		DifficultyClass: 15,
	})
	s.Require().NoError(err)

	result := output.Result
	s.Equal(17, result.Total, "roll 15 + DEX 14 modifier 2")
	s.True(result.Success)
	s.False(result.CriticalSuccess)

	s.Require().Len(output.Session.RollHistory, 1)
	s.Equal("Dexterity check (DC 15): 15 + 2 = 17 (Success)",
		output.Session.Narrative.Lines()[len(output.Session.Narrative)-1])
}

func (s *OrchestratorTestSuite) TestRecordRoll() {
	sess := s.newSession(entities.PhaseGameplay)

	roll := &entities.DiceRoll{
		Die: entities.DieD6, Result: 4, Modifier: 0, Total: 4, Purpose: "d6 roll",
	}
	output, err := s.orchestrator.RecordRoll(s.ctx, &session.RecordRollInput{
		SessionID: sess.ID,
		Roll:      roll,
	})
	s.Require().NoError(err)
	s.Len(output.Session.RollHistory, 1)
}

func (s *OrchestratorTestSuite) TestRecordRoll_NilRoll() {
	sess := s.newSession(entities.PhaseGameplay)

	_, err := s.orchestrator.RecordRoll(s.ctx, &session.RecordRollInput{SessionID: sess.ID})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSeekSideQuest() {
	sess := s.newSession(entities.PhaseGameplay)
	before := len(sess.Narrative)

	s.mockNarrator.EXPECT().
		GenerateQuest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *narrator.GenerateQuestInput) (*narrator.GenerateQuestOutput, error) {
			s.Equal(entities.QuestTypeSide, input.Type)
			return &narrator.GenerateQuestOutput{Quest: sideQuest("quest-side-1")}, nil
		})

	output, err := s.orchestrator.SeekSideQuest(s.ctx, &session.SeekSideQuestInput{SessionID: sess.ID})
	s.Require().NoError(err)

	s.Require().Len(output.Session.PendingQuests, 1)
	s.Equal("The Ancient Prophecy", output.Session.CurrentQuest.Title, "current quest untouched")
	s.Len(output.Session.Narrative, before+1)
	s.Equal("New quest available: The Missing Merchant",
		output.Session.Narrative.Lines()[before])
}

func (s *OrchestratorTestSuite) TestAcceptQuest() {
	sess := s.newSession(entities.PhaseGameplay)

	s.mockNarrator.EXPECT().
		GenerateQuest(gomock.Any(), gomock.Any()).
		Return(&narrator.GenerateQuestOutput{Quest: sideQuest("quest-side-1")}, nil)
	_, err := s.orchestrator.SeekSideQuest(s.ctx, &session.SeekSideQuestInput{SessionID: sess.ID})
	s.Require().NoError(err)

	output, err := s.orchestrator.AcceptQuest(s.ctx, &session.AcceptQuestInput{
		SessionID: sess.ID,
		QuestID:   "quest-side-1",
	})
	s.Require().NoError(err)

	s.Equal("quest-side-1", output.Session.CurrentQuest.ID, "prior current quest silently discarded")
	s.Empty(output.Session.PendingQuests, "accepted quest removed from pool")
}

func (s *OrchestratorTestSuite) TestAcceptQuest_NotPending() {
	sess := s.newSession(entities.PhaseGameplay)

	_, err := s.orchestrator.AcceptQuest(s.ctx, &session.AcceptQuestInput{
		SessionID: sess.ID,
		QuestID:   "quest-unknown",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCompleteQuest() {
	sess := s.newSession(entities.PhaseGameplay)
	before := len(sess.Narrative)

	s.mockNarrator.EXPECT().
		GenerateQuest(gomock.Any(), gomock.Any()).
		Return(&narrator.GenerateQuestOutput{Quest: sideQuest("quest-side-1")}, nil)
	_, err := s.orchestrator.SeekSideQuest(s.ctx, &session.SeekSideQuestInput{SessionID: sess.ID})
	s.Require().NoError(err)

	output, err := s.orchestrator.CompleteQuest(s.ctx, &session.CompleteQuestInput{SessionID: sess.ID})
	s.Require().NoError(err)

	s.Equal(entities.QuestStatusCompleted, output.Quest.Status)
	s.Nil(output.Session.CurrentQuest)
	s.Empty(output.Session.PendingQuests, "pending pool cleared")
	s.Len(output.Session.Narrative, before+2, "seek line plus exactly one completion line")
	s.Equal("Quest completed: The Ancient Prophecy",
		output.Session.Narrative.Lines()[before+1])
}

func (s *OrchestratorTestSuite) TestFailQuest() {
	sess := s.newSession(entities.PhaseGameplay)

	output, err := s.orchestrator.FailQuest(s.ctx, &session.FailQuestInput{SessionID: sess.ID})
	s.Require().NoError(err)

	s.Equal(entities.QuestStatusFailed, output.Quest.Status)
	s.Nil(output.Session.CurrentQuest)
	s.Equal("Quest failed: The Ancient Prophecy",
		output.Session.Narrative.Lines()[len(output.Session.Narrative)-1])
}

func (s *OrchestratorTestSuite) TestCloseQuest_NoCurrent() {
	sess := s.newSession(entities.PhaseGameplay)

	_, err := s.orchestrator.CompleteQuest(s.ctx, &session.CompleteQuestInput{SessionID: sess.ID})
	s.Require().NoError(err)

	_, err = s.orchestrator.CompleteQuest(s.ctx, &session.CompleteQuestInput{SessionID: sess.ID})
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestEventEligible() {
	sess := &entities.GameSession{}

	for i := 0; i < 7; i++ {
		sess.AppendNarrative(entities.EntryNarrator, "line")
	}
	s.False(session.EventEligible(sess), "length 7")

	sess.AppendNarrative(entities.EntryNarrator, "line")
	s.True(session.EventEligible(sess), "length 8")

	for i := 0; i < 8; i++ {
		sess.AppendNarrative(entities.EntryNarrator, "line")
	}
	s.True(session.EventEligible(sess), "length 16")

	sess.PendingEvent = &entities.StoryEvent{ID: "event-1"}
	s.False(session.EventEligible(sess), "pending event blocks eligibility")
}

func (s *OrchestratorTestSuite) TestGenerateStoryEvent() {
	sess := s.newSession(entities.PhaseGameplay)
	s.padNarrative(sess.ID, 8)

	event := &entities.StoryEvent{
		ID:        "event-1",
		Situation: "A bridge has collapsed ahead.",
		Choices:   []string{"Ford the river", "Turn back"},
	}
	s.mockNarrator.EXPECT().
		GenerateStoryEvent(gomock.Any(), gomock.Any()).
		Return(&narrator.GenerateStoryEventOutput{Event: event}, nil)

	output, err := s.orchestrator.GenerateStoryEvent(s.ctx, &session.GenerateStoryEventInput{
		SessionID: sess.ID,
	})
	s.Require().NoError(err)
	s.Equal("event-1", output.Session.PendingEvent.ID)

	// a second request while one is pending is rejected
	_, err = s.orchestrator.GenerateStoryEvent(s.ctx, &session.GenerateStoryEventInput{
		SessionID: sess.ID,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestGenerateStoryEvent_NotEligible() {
	sess := s.newSession(entities.PhaseGameplay)
	s.padNarrative(sess.ID, 7)

	_, err := s.orchestrator.GenerateStoryEvent(s.ctx, &session.GenerateStoryEventInput{
		SessionID: sess.ID,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestResolveStoryEvent() {
	sess := s.newSession(entities.PhaseGameplay)
	s.padNarrative(sess.ID, 8)

	event := &entities.StoryEvent{
		ID:        "event-1",
		Situation: "A bridge has collapsed ahead.",
		Choices:   []string{"Ford the river", "Turn back"},
	}
	s.mockNarrator.EXPECT().
		GenerateStoryEvent(gomock.Any(), gomock.Any()).
		Return(&narrator.GenerateStoryEventOutput{Event: event}, nil)
	_, err := s.orchestrator.GenerateStoryEvent(s.ctx, &session.GenerateStoryEventInput{
		SessionID: sess.ID,
	})
	s.Require().NoError(err)

	output, err := s.orchestrator.ResolveStoryEvent(s.ctx, &session.ResolveStoryEventInput{
		SessionID: sess.ID,
		Choice:    "Ford the river",
	})
	s.Require().NoError(err)

	s.Equal("Ford the river", output.Choice)
	s.Nil(output.Session.PendingEvent)
	s.Require().Len(output.Session.EventHistory, 1)

	lines := output.Session.Narrative.Lines()
	s.Equal("Event: A bridge has collapsed ahead.", lines[len(lines)-2])
	s.Equal("You chose: Ford the river", lines[len(lines)-1])
}

func (s *OrchestratorTestSuite) TestResolveStoryEvent_InvalidChoice() {
	sess := s.newSession(entities.PhaseGameplay)
	s.padNarrative(sess.ID, 8)

	event := &entities.StoryEvent{
		ID:        "event-1",
		Situation: "A stranger blocks the road.",
		Choices:   []string{"Talk", "Fight"},
	}
	s.mockNarrator.EXPECT().
		GenerateStoryEvent(gomock.Any(), gomock.Any()).
		Return(&narrator.GenerateStoryEventOutput{Event: event}, nil)
	_, err := s.orchestrator.GenerateStoryEvent(s.ctx, &session.GenerateStoryEventInput{
		SessionID: sess.ID,
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.ResolveStoryEvent(s.ctx, &session.ResolveStoryEventInput{
		SessionID: sess.ID,
		Choice:    "Run away",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestResolveStoryEvent_NonePending() {
	sess := s.newSession(entities.PhaseGameplay)

	_, err := s.orchestrator.ResolveStoryEvent(s.ctx, &session.ResolveStoryEventInput{
		SessionID: sess.ID,
		Choice:    "Anything",
	})
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestSuggestInteraction() {
	sess := s.newSession(entities.PhaseGameplay)

	// pick the second line of the Loyal bucket
	svc := s.newOrchestrator(s.engineRoller, dice.NewScriptedRoller(2))

	output, err := svc.SuggestInteraction(s.ctx, &session.SuggestInteractionInput{
		SessionID:   sess.ID,
		CharacterID: "comp-1",
	})
	s.Require().NoError(err)

	s.Equal("Thorin Ironbeard", output.Character.Name)
	s.Equal("The party sticks together.", output.Suggestion)
}

func (s *OrchestratorTestSuite) TestSuggestInteraction_PlayerRejected() {
	sess := s.newSession(entities.PhaseGameplay)

	_, err := s.orchestrator.SuggestInteraction(s.ctx, &session.SuggestInteractionInput{
		SessionID:   sess.ID,
		CharacterID: sess.PlayerCharacter.ID,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSubmitInteraction() {
	sess := s.newSession(entities.PhaseGameplay)
	before := len(sess.Narrative)

	output, err := s.orchestrator.SubmitInteraction(s.ctx, &session.SubmitInteractionInput{
		SessionID:   sess.ID,
		CharacterID: "comp-2",
		Message:     "I sense potential danger here.",
	})
	s.Require().NoError(err)

	s.Equal("comp-2", output.Interaction.CharacterID)
	s.Equal(s.clock.T, output.Interaction.Timestamp)
	s.Equal("Lyralei Swiftarrow: I sense potential danger here.",
		output.Session.Narrative.Lines()[before])
}

func (s *OrchestratorTestSuite) TestSubmitInteraction_EmptyMessage() {
	sess := s.newSession(entities.PhaseGameplay)

	_, err := s.orchestrator.SubmitInteraction(s.ctx, &session.SubmitInteractionInput{
		SessionID:   sess.ID,
		CharacterID: "comp-1",
		Message:     "   ",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSubmitInteraction_UnknownMember() {
	sess := s.newSession(entities.PhaseGameplay)

	_, err := s.orchestrator.SubmitInteraction(s.ctx, &session.SubmitInteractionInput{
		SessionID:   sess.ID,
		CharacterID: "comp-99",
		Message:     "Hello",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
