package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/pig/internal/services/game"
	"github.com/KirkDiggler/pig/internal/services/messaging"
)

// Prompts shown before reading a line
const (
	PromptAction    = "Enter 'r' to roll or 'h' to hold: "
	PromptPlayAgain = "Would you like to play again? (y/n): "
)

// Terminal drives a game from a line-oriented reader and writer.
// It is both the ActionSource and the EventSink for the game service.
type Terminal struct {
	scanner          *bufio.Scanner
	out              io.Writer
	messagingService messaging.Service
}

// Config holds the configuration for the terminal
type Config struct {
	// In is where player input is read from
	In io.Reader

	// Out is where prompts and game text are written
	Out io.Writer

	// Messaging service
	MessagingService messaging.Service
}

// New creates a new terminal
func New(cfg *Config) (*Terminal, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil {
		return nil, errors.New("input cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Terminal{
		scanner:          bufio.NewScanner(cfg.In),
		out:              cfg.Out,
		messagingService: cfg.MessagingService,
	}, nil
}

// NextAction prompts the current player and maps their answer to an action.
// Only "r" and "h" are actions, anything else is passed through for the game to reject.
func (t *Terminal) NextAction(ctx context.Context, input *game.NextActionInput) (game.Action, error) {
	answer, err := t.ask(ctx, PromptAction)
	if err != nil {
		return "", err
	}

	return parseAction(answer), nil
}

// PlayAgain asks whether to start another game
func (t *Terminal) PlayAgain(ctx context.Context, input *game.PlayAgainInput) (bool, error) {
	answer, err := t.ask(ctx, PromptPlayAgain)
	if err != nil {
		return false, err
	}

	return answer == "y", nil
}

// ask writes the prompt and returns the next line lower-cased.
// A closed input returns io.EOF.
func (t *Terminal) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(t.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.ToLower(t.scanner.Text()), nil
}

func parseAction(answer string) game.Action {
	switch answer {
	case "r":
		return game.ActionRoll
	case "h":
		return game.ActionHold
	default:
		return game.Action(answer)
	}
}
