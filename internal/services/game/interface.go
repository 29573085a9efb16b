package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/pig/internal/services/game ActionSource,EventSink

import "context"

// Service defines the interface for game operations
type Service interface {
	// PlayTurn applies a single roll or hold for the current player
	PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error)

	// SwitchTurn passes play to the next player in roster order
	SwitchTurn(ctx context.Context, input *SwitchTurnInput) (*SwitchTurnOutput, error)

	// PlayGame runs turns until a player wins
	PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error)

	// ResetGame starts a fresh game with the same roster
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// GetState returns a snapshot of the current game
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// PlaySession plays games back to back until the players stop
	PlaySession(ctx context.Context, input *PlaySessionInput) (*PlaySessionOutput, error)
}

// ActionSource supplies the decisions of the person at the keyboard
type ActionSource interface {
	// NextAction asks the current player to roll or hold
	NextAction(ctx context.Context, input *NextActionInput) (Action, error)

	// PlayAgain asks whether to start another game after a win
	PlayAgain(ctx context.Context, input *PlayAgainInput) (bool, error)
}

// EventSink receives everything that happens during play
type EventSink interface {
	Publish(ctx context.Context, event *Event) error
}
