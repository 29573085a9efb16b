package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidTone is returned when the configured tone is unknown
var ErrInvalidTone = errors.New("unknown message tone")

// service implements the Service interface
type service struct {
	tone MessageTone

	// Random number generator for selecting random comments
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	tone := ToneNeutral
	var seed int64

	if cfg != nil {
		if cfg.Tone != "" {
			tone = cfg.Tone
		}
		seed = cfg.Seed
	}

	if !tone.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTone, tone)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		tone: tone,
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// comment picks a random wisecrack for the funny tone
func (s *service) comment(tone MessageTone, comments []string) string {
	if tone != ToneFunny || len(comments) == 0 {
		return ""
	}
	return comments[s.rand.Intn(len(comments))]
}

// GetGameStartedMessage returns the greeting shown when a game begins
func (s *service) GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*MessageOutput, error) {
	tone := s.tone

	return &MessageOutput{
		Message: "Welcome to Pig!",
		Comment: s.comment(tone, []string{
			"Roll early, roll often, and try not to roll a 1.",
			"First to a hundred wins. Greed is allowed. Encouraged, even.",
			"Remember: the die has no memory, but we do.",
			"May your rolls be high and your holds be timely.",
		}),
		Tone: tone,
	}, nil
}

// GetTurnStartMessage returns the announcement for a player's turn
func (s *service) GetTurnStartMessage(ctx context.Context, input *GetTurnStartMessageInput) (*MessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	tone := s.tone

	return &MessageOutput{
		Message: fmt.Sprintf("%s's turn! Current score: %d", input.PlayerName, input.Score),
		Comment: s.comment(tone, []string{
			fmt.Sprintf("All eyes on %s.", input.PlayerName),
			fmt.Sprintf("%s steps up to the die.", input.PlayerName),
			fmt.Sprintf("Let's see what %s is made of.", input.PlayerName),
			fmt.Sprintf("%s, the pig awaits.", input.PlayerName),
		}),
		Tone: tone,
	}, nil
}

// GetRollResultMessage returns a message for a roll, including a bust
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	tone := s.tone

	output := &GetRollResultMessageOutput{
		Message: fmt.Sprintf("Rolled: %d", input.RollValue),
		Tone:    tone,
	}

	if input.IsBust {
		output.Details = fmt.Sprintf("%s rolled a 1! No points for this turn.", input.PlayerName)
		output.Comment = s.comment(tone, []string{
			"Oink. That one hurt.",
			"The pig giveth, the pig taketh away.",
			fmt.Sprintf("%s flew too close to the sun.", input.PlayerName),
			"Snake eye! All that effort, gone.",
			"Should have held. Everyone could see it but you.",
		})
		return output, nil
	}

	output.Details = fmt.Sprintf("Turn score: %d", input.TurnScore)
	switch {
	case input.RollValue == 6:
		output.Comment = s.comment(tone, []string{
			"A six! The crowd goes wild.",
			"Maximum pork.",
			"Now that's a roll.",
		})
	case input.TurnScore >= 20:
		output.Comment = s.comment(tone, []string{
			"Feeling lucky? That's a lot to lose.",
			"Living dangerously, I see.",
			"The 1 is watching. Just saying.",
		})
	default:
		output.Comment = s.comment(tone, []string{
			"Steady as she goes.",
			"Every little bit helps.",
			"Not bad, not great.",
		})
	}

	return output, nil
}

// GetHoldMessage returns a message for a banked turn
func (s *service) GetHoldMessage(ctx context.Context, input *GetHoldMessageInput) (*MessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	tone := s.tone

	comments := []string{
		fmt.Sprintf("%s banks %d. Sensible.", input.PlayerName, input.Banked),
		"Safe in the barn.",
		"Discretion is the better part of valour.",
	}
	if input.Banked == 0 {
		comments = []string{
			"Holding on zero? Bold strategy.",
			"Well, that was a turn.",
		}
	}

	return &MessageOutput{
		Message: fmt.Sprintf("%s's total score: %d", input.PlayerName, input.Score),
		Comment: s.comment(tone, comments),
		Tone:    tone,
	}, nil
}

// GetWinMessage returns the winner announcement
func (s *service) GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*MessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	tone := s.tone

	return &MessageOutput{
		Message: fmt.Sprintf("%s wins!", input.PlayerName),
		Comment: s.comment(tone, []string{
			fmt.Sprintf("All hail %s, ruler of the pigpen!", input.PlayerName),
			fmt.Sprintf("%d points. %s brings home the bacon.", input.Score, input.PlayerName),
			"Champion of swine!",
		}),
		Tone: tone,
	}, nil
}

// GetInvalidChoiceMessage returns the reply to unrecognised input
func (s *service) GetInvalidChoiceMessage(ctx context.Context, input *GetInvalidChoiceMessageInput) (*MessageOutput, error) {
	tone := s.tone

	return &MessageOutput{
		Message: "Invalid choice. Enter 'r' to roll or 'h' to hold.",
		Comment: s.comment(tone, []string{
			"Fat fingers?",
			"The pig does not understand.",
			"Two options. Just two.",
		}),
		Tone: tone,
	}, nil
}

// GetNewGameMessage returns the message shown when the roster plays again
func (s *service) GetNewGameMessage(ctx context.Context, input *GetNewGameMessageInput) (*MessageOutput, error) {
	tone := s.tone

	return &MessageOutput{
		Message: "Starting a new game!",
		Comment: s.comment(tone, []string{
			"Scores wiped. Grudges kept.",
			"Rematch!",
			"Back to the pigpen.",
		}),
		Tone: tone,
	}, nil
}

// GetStandingsMessage renders the session leaderboard
func (s *service) GetStandingsMessage(ctx context.Context, input *GetStandingsMessageInput) (*GetStandingsMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lines := make([]string, 0, len(input.Entries))
	for i, entry := range input.Entries {
		wins := "wins"
		if entry.Wins == 1 {
			wins = "win"
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %d %s, %d points", i+1, entry.PlayerName, entry.Wins, wins, entry.Points))
	}

	return &GetStandingsMessageOutput{
		Title: "Session standings",
		Lines: lines,
	}, nil
}

// GetFarewellMessage returns the goodbye shown when the players stop
func (s *service) GetFarewellMessage(ctx context.Context, input *GetFarewellMessageInput) (*MessageOutput, error) {
	tone := s.tone

	return &MessageOutput{
		Message: "Thanks for playing!",
		Comment: s.comment(tone, []string{
			"That'll do, pig. That'll do.",
			"Go wash your hands, you've been rolling dice.",
			"Same time tomorrow?",
		}),
		Tone: tone,
	}, nil
}
