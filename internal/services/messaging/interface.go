package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetGameStartedMessage returns the greeting shown when a game begins
	GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*MessageOutput, error)

	// GetTurnStartMessage returns the announcement for a player's turn
	GetTurnStartMessage(ctx context.Context, input *GetTurnStartMessageInput) (*MessageOutput, error)

	// GetRollResultMessage returns a message for a roll, including a bust
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetHoldMessage returns a message for a banked turn
	GetHoldMessage(ctx context.Context, input *GetHoldMessageInput) (*MessageOutput, error)

	// GetWinMessage returns the winner announcement
	GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*MessageOutput, error)

	// GetInvalidChoiceMessage returns the reply to unrecognised input
	GetInvalidChoiceMessage(ctx context.Context, input *GetInvalidChoiceMessageInput) (*MessageOutput, error)

	// GetNewGameMessage returns the message shown when the roster plays again
	GetNewGameMessage(ctx context.Context, input *GetNewGameMessageInput) (*MessageOutput, error)

	// GetStandingsMessage renders the session leaderboard
	GetStandingsMessage(ctx context.Context, input *GetStandingsMessageInput) (*GetStandingsMessageOutput, error)

	// GetFarewellMessage returns the goodbye shown when the players stop
	GetFarewellMessage(ctx context.Context, input *GetFarewellMessageInput) (*MessageOutput, error)
}
