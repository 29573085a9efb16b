package models

import (
	"time"
)

// PlayerScore is a player's final score in a finished game
type PlayerScore struct {
	PlayerID   string
	PlayerName string
	Score      int
}

// GameResult records the outcome of a finished game
type GameResult struct {
	// ID is the unique identifier for the result record
	ID string

	// SessionID is the session the game was played in
	SessionID string

	// GameID is the game this result belongs to
	GameID string

	// WinnerID is the ID of the winning player
	WinnerID string

	// WinnerName is the display name of the winning player
	WinnerName string

	// Scores are the final scores in roster order
	Scores []PlayerScore

	// Turns is the number of turns the game lasted
	Turns int

	// CompletedAt is when the winning hold happened
	CompletedAt time.Time
}
