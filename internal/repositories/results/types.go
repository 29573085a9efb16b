package results

import "github.com/KirkDiggler/pig/internal/models"

// CreateSessionInput contains parameters for creating a new session
type CreateSessionInput struct {
	Session *models.Session
}

// GetCurrentSessionInput contains parameters for retrieving the current session
type GetCurrentSessionInput struct {
}

// GetCurrentSessionOutput contains the result of retrieving the current session
type GetCurrentSessionOutput struct {
	// Session is the current session, or nil if none exists
	Session *models.Session
}

// AddResultInput contains parameters for recording a finished game
type AddResultInput struct {
	Result *models.GameResult
}

// GetResultsForSessionInput contains parameters for retrieving the results of a session
type GetResultsForSessionInput struct {
	SessionID string
}

// GetResultsForSessionOutput contains the results of a session
type GetResultsForSessionOutput struct {
	Results []*models.GameResult
}

// GetLeaderboardInput contains parameters for retrieving session standings
type GetLeaderboardInput struct {
	SessionID string
}
