package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dm/internal/checks"
	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/dice"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-dm/internal/redis"
	"github.com/KirkDiggler/rpg-dm/internal/repositories/gamesession"
)

// apiKeyEnv supplies the Gemini key when the flag is not set.
const apiKeyEnv = "RPG_DM_GEMINI_API_KEY"

var (
	apiKey       string
	redisAddress string
	model        string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive adventure",
	Long:  `Start an interactive adventure in the terminal: pick a world, create a character, and play through narrated turns.`,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&apiKey, "api-key", "",
		fmt.Sprintf("Gemini API key (defaults to $%s; offline mode when empty)", apiKeyEnv))
	playCmd.Flags().StringVar(&redisAddress, "redis-address", "",
		"Redis endpoint for session storage (in-memory when empty)")
	playCmd.Flags().StringVar(&model, "model", narrator.DefaultModel, "Gemini model name")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// keep gameplay output readable; internals log to stderr at warn and up
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	svc, offline, err := buildService(ctx)
	if err != nil {
		return err
	}

	g := newGame(svc, os.Stdin, os.Stdout)
	if offline {
		g.printf("No API key configured: playing offline with scripted content.\n")
	}
	return g.run(ctx)
}

// buildService wires the full stack from the flags. The second return value
// reports whether the narrator is running offline.
func buildService(ctx context.Context) (session.Service, bool, error) {
	clk := clock.New()
	roller := rpgdice.DefaultRoller

	var repo gamesession.Repository
	if redisAddress != "" {
		client, err := redisclient.NewClient(redisAddress, nil)
		if err != nil {
			return nil, false, fmt.Errorf("failed to connect to redis: %w", err)
		}
		repo, err = gamesession.NewRedisRepository(&gamesession.RedisConfig{
			Client: client,
			Clock:  clk,
		})
		if err != nil {
			return nil, false, err
		}
	} else {
		var err error
		repo, err = gamesession.NewMemoryRepository(&gamesession.MemoryConfig{Clock: clk})
		if err != nil {
			return nil, false, err
		}
	}

	key := apiKey
	if key == "" {
		key = os.Getenv(apiKeyEnv)
	}

	var generator narrator.Generator
	if key != "" {
		gemini, err := narrator.NewGemini(ctx, &narrator.GeminiConfig{
			APIKey: key,
			Model:  model,
		})
		if err != nil {
			return nil, false, fmt.Errorf("failed to create gemini client: %w", err)
		}
		generator = gemini
	}

	narratorClient, err := narrator.New(&narrator.Config{
		Generator:   generator,
		IDGenerator: idgen.NewPrefixed("gen"),
		Roller:      roller,
		Clock:       clk,
	})
	if err != nil {
		return nil, false, err
	}

	engine, err := dice.NewEngine(&dice.Config{Roller: roller})
	if err != nil {
		return nil, false, err
	}

	resolver, err := checks.NewResolver(&checks.Config{Engine: engine})
	if err != nil {
		return nil, false, err
	}

	svc, err := session.NewOrchestrator(&session.Config{
		SessionRepo: repo,
		Narrator:    narratorClient,
		Engine:      engine,
		Resolver:    resolver,
		Roller:      roller,
		IDGenerator: idgen.NewPrefixed("session"),
		Clock:       clk,
	})
	if err != nil {
		return nil, false, err
	}

	return svc, generator == nil, nil
}
