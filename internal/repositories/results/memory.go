package results

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/pig/internal/models"
)

// memoryRepository keeps the ledger in process memory
type memoryRepository struct {
	mu             sync.Mutex
	sessions       map[string]*models.Session
	currentSession string
	results        map[string][]*models.GameResult
}

// NewMemory creates an in-memory results repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
		results:  make(map[string][]*models.GameResult),
	}
}

// CreateSession stores a session and marks it as the current one
func (r *memoryRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil || input.Session.ID == "" {
		return ErrNilSession
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, ok := r.sessions[r.currentSession]; ok {
		previous.Active = false
	}

	session := *input.Session
	session.Active = true
	r.sessions[session.ID] = &session
	r.currentSession = session.ID

	return nil
}

// GetCurrentSession returns a copy of the current session
func (r *memoryRepository) GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[r.currentSession]
	if !ok {
		return &GetCurrentSessionOutput{}, nil
	}

	clone := *session
	return &GetCurrentSessionOutput{
		Session: &clone,
	}, nil
}

// AddResult records a finished game
func (r *memoryRepository) AddResult(ctx context.Context, input *AddResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := cloneResult(input.Result)
	sessionResults := append(r.results[result.SessionID], result)
	sort.SliceStable(sessionResults, func(i, j int) bool {
		return sessionResults[i].CompletedAt.Before(sessionResults[j].CompletedAt)
	})
	r.results[result.SessionID] = sessionResults

	return nil
}

// GetResultsForSession returns copies of a session's results ordered by completion time
func (r *memoryRepository) GetResultsForSession(ctx context.Context, input *GetResultsForSessionInput) (*GetResultsForSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.results[input.SessionID]
	results := make([]*models.GameResult, 0, len(stored))
	for _, result := range stored {
		results = append(results, cloneResult(result))
	}

	return &GetResultsForSessionOutput{
		Results: results,
	}, nil
}

// GetLeaderboard tallies the session standings
func (r *memoryRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return buildLeaderboard(input.SessionID, r.results[input.SessionID]), nil
}

func cloneResult(result *models.GameResult) *models.GameResult {
	clone := *result
	clone.Scores = append([]models.PlayerScore(nil), result.Scores...)
	return &clone
}
