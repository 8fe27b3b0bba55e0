package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dm/internal/checks"
	"github.com/KirkDiggler/rpg-dm/internal/dice"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/session"
)

// game drives one interactive session over a line-based terminal.
type game struct {
	svc       session.Service
	in        *bufio.Scanner
	out       io.Writer
	sessionID string

	// transcript lines already shown, so each turn prints only what is new
	printed int
}

func newGame(svc session.Service, in io.Reader, out io.Writer) *game {
	return &game{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (g *game) run(ctx context.Context) error {
	if err := g.setup(ctx); err != nil {
		return err
	}
	return g.loop(ctx)
}

// setup walks world selection, character creation, and party generation.
func (g *game) setup(ctx context.Context) error {
	created, err := g.svc.CreateSession(ctx, &session.CreateSessionInput{})
	if err != nil {
		return err
	}
	g.sessionID = created.Session.ID

	worlds, err := g.svc.ListWorlds(ctx, &session.ListWorldsInput{})
	if err != nil {
		return err
	}

	g.printf("\nChoose your world:\n")
	for i, world := range worlds.Worlds {
		g.printf("  %d. %s (%s)\n     %s\n", i+1, world.Name, world.Theme, world.Description)
	}
	pick, err := g.readIndex("World", len(worlds.Worlds))
	if err != nil {
		return err
	}

	if _, err := g.svc.SelectWorld(ctx, &session.SelectWorldInput{
		SessionID: g.sessionID,
		WorldID:   worlds.Worlds[pick].ID,
	}); err != nil {
		return err
	}

	character, err := g.createCharacter()
	if err != nil {
		return err
	}
	if _, err := g.svc.CreateCharacter(ctx, &session.CreateCharacterInput{
		SessionID: g.sessionID,
		Character: character,
	}); err != nil {
		return err
	}

	g.printf("\nGathering your party...\n")
	generated, err := g.svc.GenerateParty(ctx, &session.GeneratePartyInput{
		SessionID: g.sessionID,
	})
	if err != nil {
		return err
	}

	g.printParty(generated.Session)
	g.printf("\n")
	g.syncNarrative(generated.Session)
	return nil
}

// createCharacter prompts for the player character. Ability scores are
// rolled as a random full-budget point buy rather than allocated by hand.
func (g *game) createCharacter() (*entities.Character, error) {
	g.printf("\nCreate your character.\n")

	name, err := g.readLine("Name")
	if err != nil {
		return nil, err
	}

	race, err := pickOption(g, "Race", entities.Races())
	if err != nil {
		return nil, err
	}
	class, err := pickOption(g, "Class", entities.Classes())
	if err != nil {
		return nil, err
	}
	personality, err := pickOption(g, "Personality", entities.Personalities())
	if err != nil {
		return nil, err
	}
	quirk, err := pickOption(g, "Quirk", entities.Quirks())
	if err != nil {
		return nil, err
	}

	scores, err := dice.RandomPointBuy(rpgdice.DefaultRoller)
	if err != nil {
		return nil, err
	}
	g.printf("\nRolled stats: STR %d  DEX %d  CON %d  INT %d  WIS %d  CHA %d\n",
		scores.Strength, scores.Dexterity, scores.Constitution,
		scores.Intelligence, scores.Wisdom, scores.Charisma)

	return &entities.Character{
		Name:          name,
		Race:          race,
		Class:         class,
		Level:         1,
		AbilityScores: scores,
		Personality:   personality,
		Quirk:         quirk,
		IsPlayer:      true,
	}, nil
}

// loop is the gameplay read-eval-print loop. Plain text becomes a player
// action; slash commands drive everything else.
func (g *game) loop(ctx context.Context) error {
	g.printf("\nType an action, or /help for commands.\n")

	for {
		line, err := g.readLine(">")
		if err != nil {
			return nil // EOF or interrupt: drop out cleanly
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			quit, err := g.command(ctx, line)
			if err != nil {
				g.printf("! %v\n", err)
			}
			if quit {
				return nil
			}
			continue
		}

		if err := g.act(ctx, line); err != nil {
			g.printf("! %v\n", err)
		}
	}
}

// act submits one player action, resolves any requested check, and offers
// a story event when the session becomes eligible.
func (g *game) act(ctx context.Context, action string) error {
	output, err := g.svc.SubmitAction(ctx, &session.SubmitActionInput{
		SessionID: g.sessionID,
		Action:    action,
	})
	if err != nil {
		return err
	}
	g.syncNarrative(output.Session)

	if output.DiceRequest != nil {
		if err := g.resolveCheck(ctx, output.DiceRequest.Ability, output.DiceRequest.DifficultyClass); err != nil {
			return err
		}
	}

	return g.maybeOfferEvent(ctx)
}

func (g *game) resolveCheck(ctx context.Context, ability entities.Ability, dc int) error {
	if _, err := g.readLine("Press enter to roll"); err != nil {
		return nil
	}

	checked, err := g.svc.QuickStatCheck(ctx, &session.QuickStatCheckInput{
		SessionID:       g.sessionID,
		Ability:         ability,
		DifficultyClass: dc,
	})
	if err != nil {
		return err
	}
	g.syncNarrative(checked.Session)
	return nil
}

func (g *game) maybeOfferEvent(ctx context.Context) error {
	current, err := g.svc.GetSession(ctx, &session.GetSessionInput{SessionID: g.sessionID})
	if err != nil {
		return err
	}
	if !session.EventEligible(current.Session) {
		return nil
	}

	generated, err := g.svc.GenerateStoryEvent(ctx, &session.GenerateStoryEventInput{
		SessionID: g.sessionID,
	})
	if err != nil {
		return err
	}
	event := generated.Event

	g.printf("\n%s\n", event.Situation)
	for i, choice := range event.Choices {
		g.printf("  %d. %s\n", i+1, choice)
	}
	pick, err := g.readIndex("Choice", len(event.Choices))
	if err != nil {
		return err
	}

	resolved, err := g.svc.ResolveStoryEvent(ctx, &session.ResolveStoryEventInput{
		SessionID: g.sessionID,
		Choice:    event.Choices[pick],
	})
	if err != nil {
		return err
	}
	g.syncNarrative(resolved.Session)

	// the chosen option plays out as the next action
	return g.act(ctx, resolved.Choice)
}

// command dispatches one slash command. The boolean reports a quit request.
func (g *game) command(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/quit", "/exit":
		g.printf("Farewell, adventurer.\n")
		return true, nil
	case "/help":
		g.printHelp()
		return false, nil
	case "/party":
		return false, g.showParty(ctx)
	case "/quest":
		return false, g.showQuests(ctx)
	case "/seek":
		return false, g.seekQuest(ctx)
	case "/accept":
		return false, g.acceptQuest(ctx, args)
	case "/complete":
		output, err := g.svc.CompleteQuest(ctx, &session.CompleteQuestInput{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		g.syncNarrative(output.Session)
		return false, nil
	case "/fail":
		output, err := g.svc.FailQuest(ctx, &session.FailQuestInput{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		g.syncNarrative(output.Session)
		return false, nil
	case "/roll":
		return false, g.rollDice(ctx, args)
	case "/check":
		return false, g.statCheck(ctx, args)
	case "/suggest":
		return false, g.suggestInteraction(ctx, args)
	case "/say":
		return false, g.submitInteraction(ctx, args)
	default:
		return false, fmt.Errorf("unknown command %s (try /help)", cmd)
	}
}

func (g *game) printHelp() {
	g.printf(`Commands:
  /party              show the party roster
  /quest              show current and pending quests
  /seek               look for a side quest
  /accept <n>         accept pending quest n
  /complete           complete the current quest
  /fail               abandon the current quest
  /roll <die> [mod]   roll a die, e.g. /roll d20 +3
  /check <stat> <dc> [adv|dis]  make an ability check
  /suggest <n>        ask companion n for a suggestion
  /say <n> <text>     have companion n speak
  /quit               leave the game
Anything else is played as your action.
`)
}

func (g *game) showParty(ctx context.Context) error {
	current, err := g.svc.GetSession(ctx, &session.GetSessionInput{SessionID: g.sessionID})
	if err != nil {
		return err
	}
	g.printParty(current.Session)
	return nil
}

func (g *game) printParty(sess *entities.GameSession) {
	if sess.Party == nil {
		g.printf("No party yet.\n")
		return
	}
	g.printf("\nYour party:\n")
	for i, member := range sess.Party.Members {
		tag := ""
		if member.IsPlayer {
			tag = " (you)"
		}
		g.printf("  %d. %s the %s %s — %s, %q%s\n",
			i, member.Name, member.Race, member.Class,
			member.Personality, member.Quirk, tag)
	}
}

func (g *game) showQuests(ctx context.Context) error {
	current, err := g.svc.GetSession(ctx, &session.GetSessionInput{SessionID: g.sessionID})
	if err != nil {
		return err
	}
	sess := current.Session

	if sess.CurrentQuest != nil {
		q := sess.CurrentQuest
		g.printf("Current quest: %s (DC %d)\n  %s\n", q.Title, q.DifficultyClass, q.Description)
	} else {
		g.printf("No current quest.\n")
	}
	for i, q := range sess.PendingQuests {
		g.printf("Pending %d: %s (DC %d)\n", i+1, q.Title, q.DifficultyClass)
	}
	return nil
}

func (g *game) seekQuest(ctx context.Context) error {
	output, err := g.svc.SeekSideQuest(ctx, &session.SeekSideQuestInput{SessionID: g.sessionID})
	if err != nil {
		return err
	}
	g.syncNarrative(output.Session)
	g.printf("  %s\n", output.Quest.Description)
	return nil
}

func (g *game) acceptQuest(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: /accept <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("usage: /accept <n>")
	}

	current, err := g.svc.GetSession(ctx, &session.GetSessionInput{SessionID: g.sessionID})
	if err != nil {
		return err
	}
	pending := current.Session.PendingQuests
	if n < 1 || n > len(pending) {
		return fmt.Errorf("no pending quest %d", n)
	}

	output, err := g.svc.AcceptQuest(ctx, &session.AcceptQuestInput{
		SessionID: g.sessionID,
		QuestID:   pending[n-1].ID,
	})
	if err != nil {
		return err
	}
	g.syncNarrative(output.Session)
	return nil
}

func (g *game) rollDice(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: /roll <die> [modifier]")
	}
	die, ok := entities.ParseDieType(args[0])
	if !ok {
		return fmt.Errorf("unknown die %q", args[0])
	}

	modifier := 0
	if len(args) > 1 {
		m, err := strconv.Atoi(strings.TrimPrefix(args[1], "+"))
		if err != nil {
			return fmt.Errorf("bad modifier %q", args[1])
		}
		modifier = m
	}

	output, err := g.svc.RollDice(ctx, &session.RollDiceInput{
		SessionID: g.sessionID,
		Die:       die,
		Modifier:  modifier,
	})
	if err != nil {
		return err
	}
	g.syncNarrative(output.Session)
	return nil
}

func (g *game) statCheck(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: /check <stat> <dc> [adv|dis]")
	}
	ability, ok := parseAbility(args[0])
	if !ok {
		return fmt.Errorf("unknown ability %q", args[0])
	}
	dc, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad DC %q", args[1])
	}

	mode := checks.ModeNormal
	if len(args) > 2 {
		switch args[2] {
		case "adv", "advantage":
			mode = checks.ModeAdvantage
		case "dis", "disadvantage":
			mode = checks.ModeDisadvantage
		default:
			return fmt.Errorf("unknown mode %q", args[2])
		}
	}

	output, err := g.svc.QuickStatCheck(ctx, &session.QuickStatCheckInput{
		SessionID:       g.sessionID,
		Ability:         ability,
		DifficultyClass: dc,
		Mode:            mode,
	})
	if err != nil {
		return err
	}
	g.syncNarrative(output.Session)
	return nil
}

func (g *game) suggestInteraction(ctx context.Context, args []string) error {
	companion, err := g.companionArg(ctx, args, 1)
	if err != nil {
		return err
	}

	output, err := g.svc.SuggestInteraction(ctx, &session.SuggestInteractionInput{
		SessionID:   g.sessionID,
		CharacterID: companion.ID,
	})
	if err != nil {
		return err
	}
	g.printf("%s might say: %q\n", output.Character.Name, output.Suggestion)
	return nil
}

func (g *game) submitInteraction(ctx context.Context, args []string) error {
	companion, err := g.companionArg(ctx, args, 2)
	if err != nil {
		return err
	}

	output, err := g.svc.SubmitInteraction(ctx, &session.SubmitInteractionInput{
		SessionID:   g.sessionID,
		CharacterID: companion.ID,
		Message:     strings.Join(args[1:], " "),
	})
	if err != nil {
		return err
	}
	g.syncNarrative(output.Session)
	return nil
}

// companionArg resolves args[0] as a party roster index into a companion.
func (g *game) companionArg(ctx context.Context, args []string, minArgs int) (*entities.Character, error) {
	if len(args) < minArgs {
		return nil, fmt.Errorf("which party member? (see /party)")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("bad party member %q", args[0])
	}

	current, err := g.svc.GetSession(ctx, &session.GetSessionInput{SessionID: g.sessionID})
	if err != nil {
		return nil, err
	}
	members := current.Session.Party.Members
	if n < 0 || n >= len(members) {
		return nil, fmt.Errorf("no party member %d", n)
	}
	return members[n], nil
}

// syncNarrative prints transcript lines added since the last sync.
func (g *game) syncNarrative(sess *entities.GameSession) {
	lines := sess.Narrative.Lines()
	for ; g.printed < len(lines); g.printed++ {
		g.printf("%s\n", lines[g.printed])
	}
}

func (g *game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

func (g *game) readLine(prompt string) (string, error) {
	g.printf("%s ", prompt)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return g.in.Text(), nil
}

// readIndex reads a 1-based choice and returns it 0-based.
func (g *game) readIndex(prompt string, n int) (int, error) {
	for {
		line, err := g.readLine(fmt.Sprintf("%s [1-%d]:", prompt, n))
		if err != nil {
			return 0, err
		}
		pick, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && pick >= 1 && pick <= n {
			return pick - 1, nil
		}
		g.printf("Pick a number between 1 and %d.\n", n)
	}
}

func pickOption[T ~string](g *game, label string, options []T) (T, error) {
	g.printf("\n%s:\n", label)
	for i, option := range options {
		g.printf("  %d. %s\n", i+1, option)
	}
	pick, err := g.readIndex(label, len(options))
	if err != nil {
		var zero T
		return zero, err
	}
	return options[pick], nil
}

// parseAbility accepts full names and the usual three-letter abbreviations.
func parseAbility(s string) (entities.Ability, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, ability := range entities.Abilities() {
		if s == string(ability) || (len(s) == 3 && strings.HasPrefix(string(ability), s)) {
			return ability, true
		}
	}
	return "", false
}
