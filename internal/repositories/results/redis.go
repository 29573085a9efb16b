package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/pig/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix        = "session:"
	currentSessionKey       = "current_session"
	resultKeyPrefix         = "result:"
	sessionResultsKeyPrefix = "session_results:"
	sessionWinsKeyPrefix    = "session_wins:"
	sessionPointsKeyPrefix  = "session_points:"
	sessionNamesKeyPrefix   = "session_players:"
)

// Config holds configuration for the Redis results repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed results repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateSession stores a session and marks it as the current one
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil || input.Session.ID == "" {
		return ErrNilSession
	}

	session := *input.Session
	session.Active = true

	// The previous session, if any, is no longer active
	previous, err := r.GetCurrentSession(ctx, &GetCurrentSessionInput{})
	if err != nil {
		return err
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.TxPipeline()

	if previous.Session != nil && previous.Session.ID != session.ID {
		previous.Session.Active = false
		previousJSON, err := json.Marshal(previous.Session)
		if err != nil {
			return fmt.Errorf("failed to marshal previous session: %w", err)
		}
		pipe.Set(ctx, sessionKeyPrefix+previous.Session.ID, previousJSON, 0)
	}

	pipe.Set(ctx, sessionKeyPrefix+session.ID, sessionJSON, 0)
	pipe.Set(ctx, currentSessionKey, session.ID, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetCurrentSession retrieves the current session from Redis
func (r *redisRepository) GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error) {
	sessionID, err := r.client.Get(ctx, currentSessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetCurrentSessionOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get current session ID: %w", err)
	}

	sessionJSON, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			// Session doesn't exist anymore, clear the pointer
			r.client.Del(ctx, currentSessionKey)
			return &GetCurrentSessionOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &GetCurrentSessionOutput{
		Session: &session,
	}, nil
}

// AddResult records a finished game and updates the session standings
func (r *redisRepository) AddResult(ctx context.Context, input *AddResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}

	result := input.Result

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
	pipe.ZAdd(ctx, sessionResultsKeyPrefix+result.SessionID, redis.Z{
		Score:  float64(result.CompletedAt.UnixNano()),
		Member: result.ID,
	})

	namesKey := sessionNamesKeyPrefix + result.SessionID
	pointsKey := sessionPointsKeyPrefix + result.SessionID
	winsKey := sessionWinsKeyPrefix + result.SessionID

	for _, score := range result.Scores {
		pipe.HSet(ctx, namesKey, score.PlayerID, score.PlayerName)
		pipe.HIncrBy(ctx, pointsKey, score.PlayerID, int64(score.Score))
		pipe.HIncrBy(ctx, winsKey, score.PlayerID, 0)
	}
	if result.WinnerID != "" {
		pipe.HIncrBy(ctx, winsKey, result.WinnerID, 1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add result: %w", err)
	}

	return nil
}

// GetResultsForSession retrieves all results for a session ordered by completion time
func (r *redisRepository) GetResultsForSession(ctx context.Context, input *GetResultsForSessionInput) (*GetResultsForSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	resultIDs, err := r.client.ZRange(ctx, sessionResultsKeyPrefix+input.SessionID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get result IDs for session: %w", err)
	}

	if len(resultIDs) == 0 {
		return &GetResultsForSessionOutput{
			Results: []*models.GameResult{},
		}, nil
	}

	// Fetch all results in one round trip
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(resultIDs))
	for i, resultID := range resultIDs {
		commands[i] = pipe.Get(ctx, resultKeyPrefix+resultID)
	}

	// redis.Nil for a missing member is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	results := make([]*models.GameResult, 0, len(resultIDs))
	for i, cmd := range commands {
		resultJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get result %s: %w", resultIDs[i], err)
		}

		var result models.GameResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result %s: %w", resultIDs[i], err)
		}

		results = append(results, &result)
	}

	return &GetResultsForSessionOutput{
		Results: results,
	}, nil
}

// GetLeaderboard reads the session standings hashes
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	pipe := r.client.Pipeline()
	namesCmd := pipe.HGetAll(ctx, sessionNamesKeyPrefix+input.SessionID)
	winsCmd := pipe.HGetAll(ctx, sessionWinsKeyPrefix+input.SessionID)
	pointsCmd := pipe.HGetAll(ctx, sessionPointsKeyPrefix+input.SessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	names := namesCmd.Val()
	wins := winsCmd.Val()
	points := pointsCmd.Val()

	entries := make([]*models.LeaderboardEntry, 0, len(names))
	for playerID, name := range names {
		entry := &models.LeaderboardEntry{
			PlayerID:   playerID,
			PlayerName: name,
		}

		if value, ok := wins[playerID]; ok {
			count, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("failed to parse wins for player %s: %w", playerID, err)
			}
			entry.Wins = count
		}

		if value, ok := points[playerID]; ok {
			total, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("failed to parse points for player %s: %w", playerID, err)
			}
			entry.Points = total
		}

		entries = append(entries, entry)
	}

	sortEntries(entries)

	return &models.Leaderboard{
		SessionID: input.SessionID,
		Entries:   entries,
	}, nil
}
