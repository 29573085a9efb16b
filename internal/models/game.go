package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a player has held their way to a win
	GameStatusCompleted GameStatus = "completed"
)

// IsActive returns true if the game is still being played
func (s GameStatus) IsActive() bool {
	return s == GameStatusActive
}

// IsCompleted returns true if the game has a winner
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// Game represents a single game of Pig played by a fixed roster
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current state of the game
	Status GameStatus

	// Players is the roster in turn order
	Players []*Player

	// CurrentPlayerIndex is the roster index of the player whose turn it is
	CurrentPlayerIndex int

	// TurnScore holds the points accumulated in the current turn that have not been banked
	TurnScore int

	// Turn counts the turns started in this game, starting at 1
	Turn int

	// WinnerID is the ID of the winning player once the game is completed
	WinnerID string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentPlayerIndex]
}

// Winner returns the winning player, or nil if the game is not over
func (g *Game) Winner() *Player {
	if g.WinnerID == "" {
		return nil
	}
	for _, player := range g.Players {
		if player.ID == g.WinnerID {
			return player
		}
	}
	return nil
}
