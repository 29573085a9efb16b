package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/pig/internal/common/clock"
	"github.com/KirkDiggler/pig/internal/common/uuid"
	"github.com/KirkDiggler/pig/internal/config"
	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/handlers/terminal"
	"github.com/KirkDiggler/pig/internal/repositories/results"
	gameService "github.com/KirkDiggler/pig/internal/services/game"
	"github.com/KirkDiggler/pig/internal/services/messaging"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetPrefix("[PIG] ")
	log.SetOutput(os.Stderr)

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Stop between steps on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		log.Fatalf("Game stopped: %v", err)
	}
}

// run wires the services and plays a session on the given streams.
// Closing the input ends the session without an error.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	resultRepo, closeRepo, err := newResultRepo(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{
		Seed: cfg.Seed,
	})

	messagingSvc, err := messaging.NewService(&messaging.Config{
		Tone: messaging.MessageTone(cfg.Tone),
		Seed: cfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		NumPlayers:    cfg.NumPlayers,
		ResultRepo:    resultRepo,
		DiceRoller:    diceRoller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	term, err := terminal.New(&terminal.Config{
		In:               in,
		Out:              out,
		MessagingService: messagingSvc,
	})
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}

	log.Printf("Starting game with %d players (tone: %s)", cfg.NumPlayers, cfg.Tone)

	output, err := gameSvc.PlaySession(ctx, &gameService.PlaySessionInput{
		Actions: term,
		Events:  term,
	})
	if errors.Is(err, io.EOF) {
		log.Println("Input closed, quitting")
		return nil
	}
	if err != nil {
		return err
	}

	log.Printf("Session %s finished after %d games", output.SessionID, output.GamesPlayed)
	for i, result := range output.Results {
		log.Printf("Game %d: %s won in %d turns", i+1, result.WinnerName, result.Turns)
	}
	return nil
}

// newResultRepo returns the Redis ledger when an address is configured,
// the in-memory ledger otherwise
func newResultRepo(cfg *config.Config) (results.Repository, func(), error) {
	if !cfg.UseRedis() {
		return results.NewMemory(), func() {}, nil
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}
	log.Printf("Recording results in Redis at %s", cfg.RedisAddr)

	resultRepo, err := results.NewRedis(&results.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create results repository: %w", err)
	}

	return resultRepo, func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}, nil
}
