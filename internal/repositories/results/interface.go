package results

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pig/internal/repositories/results Repository

import (
	"context"

	"github.com/KirkDiggler/pig/internal/models"
)

// Repository defines the interface for the ledger of finished games
type Repository interface {
	// CreateSession stores a session and makes it the current one
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetCurrentSession retrieves the current session, if any
	GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error)

	// AddResult records a finished game
	AddResult(ctx context.Context, input *AddResultInput) error

	// GetResultsForSession retrieves the results of a session ordered by completion time
	GetResultsForSession(ctx context.Context, input *GetResultsForSessionInput) (*GetResultsForSessionOutput, error)

	// GetLeaderboard returns the standings for a session
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error)
}
