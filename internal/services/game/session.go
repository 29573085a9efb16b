package game

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/pig/internal/models"
	"github.com/KirkDiggler/pig/internal/repositories/results"
)

// PlaySession plays games back to back until the players stop
func (s *service) PlaySession(ctx context.Context, input *PlaySessionInput) (*PlaySessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Actions == nil {
		return nil, ErrNilActionSource
	}

	if input.Events == nil {
		return nil, ErrNilEventSink
	}

	session := &models.Session{
		ID:        s.uuidGenerator.NewUUID(),
		CreatedAt: s.clock.Now(),
	}

	err := s.resultRepo.CreateSession(ctx, &results.CreateSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	output := &PlaySessionOutput{
		SessionID: session.ID,
	}

	for {
		// A finished game left over from an earlier call gets a clean slate
		if s.game.Status.IsCompleted() {
			if _, err := s.ResetGame(ctx, &ResetGameInput{}); err != nil {
				return nil, err
			}
		}

		gameOutput, err := s.PlayGame(ctx, &PlayGameInput{
			Actions: input.Actions,
			Events:  input.Events,
		})
		if err != nil {
			return nil, err
		}
		output.GamesPlayed++

		standings := s.recordResult(ctx, session.ID, gameOutput)
		if standings != nil {
			output.Standings = standings
			err = s.publish(ctx, input.Events, &Event{
				Type:      EventStandings,
				Standings: standings,
			})
			if err != nil {
				return nil, err
			}
		}

		again, err := input.Actions.PlayAgain(ctx, &PlayAgainInput{
			GameID:     gameOutput.GameID,
			WinnerName: gameOutput.Winner.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to ask to play again: %w", err)
		}

		if !again {
			output.Results = s.sessionResults(ctx, session.ID)

			if err := s.publish(ctx, input.Events, &Event{Type: EventFarewell}); err != nil {
				return nil, err
			}
			return output, nil
		}

		if _, err := s.ResetGame(ctx, &ResetGameInput{}); err != nil {
			return nil, err
		}

		if err := s.publish(ctx, input.Events, &Event{Type: EventNewGame}); err != nil {
			return nil, err
		}
	}
}

// recordResult stores the finished game and returns the updated standings.
// Ledger failures are logged and never end the session.
func (s *service) recordResult(ctx context.Context, sessionID string, gameOutput *PlayGameOutput) []*models.LeaderboardEntry {
	result := &models.GameResult{
		ID:          s.uuidGenerator.NewUUID(),
		SessionID:   sessionID,
		GameID:      gameOutput.GameID,
		WinnerID:    gameOutput.Winner.ID,
		WinnerName:  gameOutput.Winner.Name,
		Turns:       gameOutput.Turns,
		CompletedAt: s.clock.Now(),
	}

	for _, player := range s.game.Players {
		result.Scores = append(result.Scores, models.PlayerScore{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Score:      player.Score,
		})
	}

	err := s.resultRepo.AddResult(ctx, &results.AddResultInput{
		Result: result,
	})
	if err != nil {
		log.Printf("Failed to record result for game %s: %v", gameOutput.GameID, err)
		return nil
	}

	leaderboard, err := s.resultRepo.GetLeaderboard(ctx, &results.GetLeaderboardInput{
		SessionID: sessionID,
	})
	if err != nil {
		log.Printf("Failed to load standings for session %s: %v", sessionID, err)
		return nil
	}

	return leaderboard.Entries
}

// sessionResults reads back every recorded game of the session.
// A ledger failure is logged and leaves the results empty.
func (s *service) sessionResults(ctx context.Context, sessionID string) []*models.GameResult {
	output, err := s.resultRepo.GetResultsForSession(ctx, &results.GetResultsForSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		log.Printf("Failed to load results for session %s: %v", sessionID, err)
		return nil
	}

	return output.Results
}
