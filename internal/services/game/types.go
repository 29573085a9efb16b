package game

import (
	"github.com/KirkDiggler/pig/internal/common/clock"
	"github.com/KirkDiggler/pig/internal/common/uuid"
	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/models"
	"github.com/KirkDiggler/pig/internal/repositories/results"
)

const (
	// WinningScore is the banked total that ends the game
	WinningScore = 100

	// BustValue is the roll that forfeits the turn
	BustValue = 1
)

// Action is a player's decision for a single step of their turn
type Action string

const (
	// ActionRoll rolls the die and risks the turn score
	ActionRoll Action = "roll"

	// ActionHold banks the turn score and ends the turn
	ActionHold Action = "hold"
)

// EventType identifies what happened during play
type EventType string

const (
	// EventGameStarted is published when play begins on a fresh game
	EventGameStarted EventType = "game_started"

	// EventTurnStarted is published when a player begins a turn
	EventTurnStarted EventType = "turn_started"

	// EventRolled is published for every roll, including a bust
	EventRolled EventType = "rolled"

	// EventBust is published after a 1 wipes out the turn
	EventBust EventType = "bust"

	// EventHeld is published when a player banks their turn score
	EventHeld EventType = "held"

	// EventWon is published when a hold reaches the winning score
	EventWon EventType = "won"

	// EventInvalidAction is published when the action source returns something other than roll or hold
	EventInvalidAction EventType = "invalid_action"

	// EventNewGame is published when the roster starts another game
	EventNewGame EventType = "new_game"

	// EventStandings is published with the session leaderboard after each game
	EventStandings EventType = "standings"

	// EventFarewell is published when the players stop
	EventFarewell EventType = "farewell"
)

// Config holds configuration for the game service
type Config struct {
	// NumPlayers is the size of the roster, at least one
	NumPlayers int

	// Repository dependencies
	ResultRepo results.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// Event describes something that happened during play
type Event struct {
	// Type is what happened
	Type EventType

	// GameID is the game the event belongs to
	GameID string

	// Turn is the turn number within the game
	Turn int

	// PlayerName is the player the event is about
	PlayerName string

	// Score is the player's banked total after the event
	Score int

	// Roll is the die value for roll events
	Roll int

	// TurnScore is the unbanked turn total after the event
	TurnScore int

	// Action is the rejected input for invalid action events
	Action Action

	// Standings is the session leaderboard for standings events
	Standings []*models.LeaderboardEntry
}

// NextActionInput describes the decision the current player is being asked to make
type NextActionInput struct {
	GameID     string
	PlayerName string
	Score      int
	TurnScore  int
}

// PlayAgainInput describes the finished game the players are asked about
type PlayAgainInput struct {
	GameID     string
	WinnerName string
}

// PlayTurnInput contains parameters for a single step of a turn
type PlayTurnInput struct {
	// Action is the player's decision
	Action Action
}

// PlayTurnOutput contains the result of a single step of a turn
type PlayTurnOutput struct {
	// Basic step information
	Action     Action
	PlayerID   string
	PlayerName string

	// Roll is the die value, zero for holds
	Roll int

	// Bust indicates the roll was a 1 and the turn score was lost
	Bust bool

	// TurnScore is the unbanked total after this step
	TurnScore int

	// Banked is the amount committed by a hold
	Banked int

	// Score is the acting player's banked total after this step
	Score int

	// TurnEnded indicates play passed to another player or the game ended
	TurnEnded bool

	// GameOver indicates the hold won the game
	GameOver bool

	// Winner is set when GameOver is true
	Winner *models.Player

	// NextPlayer is the player whose turn it is after this step
	NextPlayer *models.Player
}

// SwitchTurnInput contains parameters for passing the turn
type SwitchTurnInput struct {
}

// SwitchTurnOutput contains the result of passing the turn
type SwitchTurnOutput struct {
	// PreviousPlayer is the player whose turn ended
	PreviousPlayer *models.Player

	// CurrentPlayer is the player whose turn it is now
	CurrentPlayer *models.Player
}

// PlayGameInput contains the collaborators that drive a game
type PlayGameInput struct {
	Actions ActionSource
	Events  EventSink
}

// PlayGameOutput contains the result of a finished game
type PlayGameOutput struct {
	GameID string
	Winner *models.Player
	Turns  int
}

// ResetGameInput contains parameters for starting a fresh game
type ResetGameInput struct {
}

// ResetGameOutput contains the result of starting a fresh game
type ResetGameOutput struct {
	GameID string
}

// GetStateInput contains parameters for reading the game state
type GetStateInput struct {
}

// GetStateOutput is a detached snapshot of the game
type GetStateOutput struct {
	GameID             string
	Status             models.GameStatus
	Players            []*models.Player
	CurrentPlayer      *models.Player
	CurrentPlayerIndex int
	TurnScore          int
	Turn               int
	Winner             *models.Player
}

// PlaySessionInput contains the collaborators that drive a session
type PlaySessionInput struct {
	Actions ActionSource
	Events  EventSink
}

// PlaySessionOutput summarises a finished session
type PlaySessionOutput struct {
	SessionID   string
	GamesPlayed int
	Standings   []*models.LeaderboardEntry

	// Results are the recorded games in completion order
	Results []*models.GameResult
}
