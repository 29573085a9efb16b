package models

// LeaderboardEntry represents a player's standing across the games of a session
type LeaderboardEntry struct {
	// PlayerID is the unique identifier of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Wins is the number of games the player has won
	Wins int

	// Points is the sum of the player's final scores
	Points int
}

// Leaderboard represents the current standings in a session
type Leaderboard struct {
	// SessionID is the unique identifier for the session
	SessionID string

	// Entries are ordered by wins, then points, then name
	Entries []*LeaderboardEntry
}
