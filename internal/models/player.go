package models

import "fmt"

// Player represents a participant in a game of Pig
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player, fixed at creation
	Name string

	// Score is the player's banked points for the current game
	Score int
}

// NewPlayer creates a player with a zero score
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:   id,
		Name: name,
	}
}

// DefaultPlayerName returns the roster name for the player at the given zero-based seat
func DefaultPlayerName(seat int) string {
	return fmt.Sprintf("Player %d", seat+1)
}

// AddScore banks points into the player's total
func (p *Player) AddScore(points int) {
	p.Score += points
}

// ResetScore sets the player's total back to zero
func (p *Player) ResetScore() {
	p.Score = 0
}

// Clone returns a detached copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

// String renders the player as "name: score points"
func (p *Player) String() string {
	return fmt.Sprintf("%s: %d points", p.Name, p.Score)
}
