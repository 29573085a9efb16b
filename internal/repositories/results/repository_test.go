package results

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/pig/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the same ledger behaviour against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() Repository
	cleanup func()
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() Repository {
			return NewMemory()
		},
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() Repository {
		// Create a new miniredis server for each test
		mr, err := miniredis.Run()
		s.Require().NoError(err)

		client := redis.NewClient(&redis.Options{
			Addr: mr.Addr(),
		})

		repo, err := NewRedis(&Config{
			RedisClient: client,
		})
		s.Require().NoError(err)

		s.cleanup = func() {
			client.Close()
			mr.Close()
		}
		return repo
	}
	suite.Run(t, s)
}

func TestNewRedis(t *testing.T) {
	_, err := NewRedis(nil)
	assert.Error(t, err)

	_, err = NewRedis(&Config{})
	assert.Error(t, err)

	// Connectivity is checked by the caller, not the constructor
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	repo, err := NewRedis(&Config{RedisClient: client})
	assert.NoError(t, err)
	assert.NotNil(t, repo)
}

func (s *RepositoryTestSuite) result(id string, winner int, scores []int, completedAt time.Time) *models.GameResult {
	result := &models.GameResult{
		ID:          id,
		SessionID:   "session-1",
		GameID:      "game-" + id,
		Turns:       12,
		CompletedAt: completedAt,
	}
	for i, score := range scores {
		result.Scores = append(result.Scores, models.PlayerScore{
			PlayerID:   models.DefaultPlayerName(i),
			PlayerName: models.DefaultPlayerName(i),
			Score:      score,
		})
	}
	result.WinnerID = result.Scores[winner].PlayerID
	result.WinnerName = result.Scores[winner].PlayerName
	return result
}

func (s *RepositoryTestSuite) TestCurrentSessionEmpty() {
	output, err := s.repo.GetCurrentSession(s.ctx, &GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.Nil(output.Session)
}

func (s *RepositoryTestSuite) TestCreateSessionReplacesCurrent() {
	err := s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: &models.Session{ID: "session-1", CreatedAt: s.testNow},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetCurrentSession(s.ctx, &GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.Require().NotNil(output.Session)
	s.Equal("session-1", output.Session.ID)
	s.True(output.Session.Active)
	s.Equal(s.testNow.Unix(), output.Session.CreatedAt.Unix())

	err = s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: &models.Session{ID: "session-2", CreatedAt: s.testNow.Add(time.Hour)},
	})
	s.Require().NoError(err)

	output, err = s.repo.GetCurrentSession(s.ctx, &GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.Equal("session-2", output.Session.ID)
}

func (s *RepositoryTestSuite) TestCreateSessionCopiesInput() {
	session := &models.Session{ID: "session-1", CreatedAt: s.testNow}

	s.Require().NoError(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: session}))
	s.False(session.Active)

	output, err := s.repo.GetCurrentSession(s.ctx, &GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.True(output.Session.Active)
}

func (s *RepositoryTestSuite) TestCreateSessionValidation() {
	s.ErrorIs(s.repo.CreateSession(s.ctx, nil), ErrNilSession)
	s.ErrorIs(s.repo.CreateSession(s.ctx, &CreateSessionInput{}), ErrNilSession)
	s.ErrorIs(s.repo.CreateSession(s.ctx, &CreateSessionInput{Session: &models.Session{}}), ErrNilSession)
}

func (s *RepositoryTestSuite) TestAddAndGetResultsInCompletionOrder() {
	later := s.result("result-2", 1, []int{40, 102}, s.testNow.Add(10*time.Minute))
	earlier := s.result("result-1", 0, []int{100, 63}, s.testNow)

	s.Require().NoError(s.repo.AddResult(s.ctx, &AddResultInput{Result: later}))
	s.Require().NoError(s.repo.AddResult(s.ctx, &AddResultInput{Result: earlier}))

	output, err := s.repo.GetResultsForSession(s.ctx, &GetResultsForSessionInput{
		SessionID: "session-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 2)

	s.Equal("result-1", output.Results[0].ID)
	s.Equal("Player 1", output.Results[0].WinnerName)
	s.Equal(12, output.Results[0].Turns)
	s.Require().Len(output.Results[0].Scores, 2)
	s.Equal(63, output.Results[0].Scores[1].Score)

	s.Equal("result-2", output.Results[1].ID)
	s.Equal("Player 2", output.Results[1].WinnerName)
}

func (s *RepositoryTestSuite) TestGetResultsForUnknownSession() {
	output, err := s.repo.GetResultsForSession(s.ctx, &GetResultsForSessionInput{
		SessionID: "non-existent-session",
	})
	s.Require().NoError(err)
	s.Empty(output.Results)
}

func (s *RepositoryTestSuite) TestAddResultValidation() {
	s.ErrorIs(s.repo.AddResult(s.ctx, nil), ErrNilResult)
	s.ErrorIs(s.repo.AddResult(s.ctx, &AddResultInput{Result: &models.GameResult{ID: "r"}}), ErrNilResult)

	_, err := s.repo.GetResultsForSession(s.ctx, &GetResultsForSessionInput{})
	s.ErrorIs(err, ErrMissingSessionID)

	_, err = s.repo.GetLeaderboard(s.ctx, nil)
	s.ErrorIs(err, ErrMissingSessionID)
}

func (s *RepositoryTestSuite) TestLeaderboard() {
	results := []*models.GameResult{
		s.result("result-1", 0, []int{100, 63, 20}, s.testNow),
		s.result("result-2", 1, []int{40, 102, 90}, s.testNow.Add(time.Minute)),
		s.result("result-3", 0, []int{105, 0, 99}, s.testNow.Add(2*time.Minute)),
	}
	for _, result := range results {
		s.Require().NoError(s.repo.AddResult(s.ctx, &AddResultInput{Result: result}))
	}

	leaderboard, err := s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{
		SessionID: "session-1",
	})
	s.Require().NoError(err)
	s.Equal("session-1", leaderboard.SessionID)
	s.Require().Len(leaderboard.Entries, 3)

	s.Equal("Player 1", leaderboard.Entries[0].PlayerName)
	s.Equal(2, leaderboard.Entries[0].Wins)
	s.Equal(245, leaderboard.Entries[0].Points)

	s.Equal("Player 2", leaderboard.Entries[1].PlayerName)
	s.Equal(1, leaderboard.Entries[1].Wins)
	s.Equal(165, leaderboard.Entries[1].Points)

	// No wins, ranked by points
	s.Equal("Player 3", leaderboard.Entries[2].PlayerName)
	s.Equal(0, leaderboard.Entries[2].Wins)
	s.Equal(209, leaderboard.Entries[2].Points)
}

func (s *RepositoryTestSuite) TestLeaderboardEmptySession() {
	leaderboard, err := s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{
		SessionID: "empty-session",
	})
	s.Require().NoError(err)
	s.Empty(leaderboard.Entries)
}
