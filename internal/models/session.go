package models

import (
	"time"
)

// Session represents a run of games played by the same roster
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// Active indicates if this is the current session
	Active bool
}
