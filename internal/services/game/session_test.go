package game_test

import (
	"errors"

	"github.com/KirkDiggler/pig/internal/repositories/results"
	resultMocks "github.com/KirkDiggler/pig/internal/repositories/results/mocks"
	"github.com/KirkDiggler/pig/internal/services/game"
	"go.uber.org/mock/gomock"
)

// winningTurn is seventeen rolls of six followed by a hold
func winningTurn() []game.Action {
	return append(repeat(game.ActionRoll, 17), game.ActionHold)
}

func (s *GameServiceTestSuite) TestPlaySessionTwoGames() {
	svc := s.newService(1)
	s.expectRolls(repeat(6, 34)...)

	actions := &scriptedActions{
		actions: append(winningTurn(), winningTurn()...),
		again:   []bool{true, false},
	}
	sink := &recordingSink{}

	output, err := svc.PlaySession(s.ctx, &game.PlaySessionInput{
		Actions: actions,
		Events:  sink,
	})
	s.Require().NoError(err)
	s.Equal(2, output.GamesPlayed)
	s.NotEmpty(output.SessionID)
	s.Require().Len(output.Standings, 1)
	s.Equal("Player 1", output.Standings[0].PlayerName)
	s.Equal(2, output.Standings[0].Wins)
	s.Equal(204, output.Standings[0].Points)

	types := sink.types()
	s.Equal(game.EventGameStarted, types[0])
	s.Contains(types, game.EventNewGame)
	s.Equal(game.EventFarewell, types[len(types)-1])

	standings := 0
	gameIDs := make(map[string]bool)
	for _, event := range sink.events {
		if event.Type == game.EventStandings {
			standings++
		}
		if event.Type == game.EventWon {
			gameIDs[event.GameID] = true
		}
	}
	s.Equal(2, standings)
	s.Len(gameIDs, 2)

	s.Require().Len(output.Results, 2)
	s.Equal("Player 1", output.Results[0].WinnerName)
	s.Equal(102, output.Results[0].Scores[0].Score)
	s.Equal(1, output.Results[0].Turns)
	s.Equal(s.testTime, output.Results[0].CompletedAt)
	s.NotEqual(output.Results[0].GameID, output.Results[1].GameID)

	current, err := s.resultRepo.GetCurrentSession(s.ctx, &results.GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.Equal(output.SessionID, current.Session.ID)
}

func (s *GameServiceTestSuite) TestPlaySessionNewGameResetsScores() {
	svc := s.newService(2)
	s.expectRolls(append(repeat(6, 17), 4)...)

	actions := &scriptedActions{
		actions: append(winningTurn(), game.ActionRoll),
		again:   []bool{true},
	}
	sink := &recordingSink{}

	// The second game ends when the script runs dry
	_, err := svc.PlaySession(s.ctx, &game.PlaySessionInput{
		Actions: actions,
		Events:  sink,
	})
	s.Require().Error(err)

	state := s.state(svc)
	s.Equal(0, state.Players[0].Score)
	s.Equal(0, state.Players[1].Score)
	s.Equal(0, state.CurrentPlayerIndex)
	s.Equal(4, state.TurnScore)

	last := actions.requests[len(actions.requests)-1]
	s.Equal("Player 1", last.PlayerName)
	s.Equal(0, last.Score)
}

func (s *GameServiceTestSuite) TestPlaySessionKeepsPlayingWhenLedgerFails() {
	mockRepo := resultMocks.NewMockRepository(s.mockCtrl)
	s.resultRepo = mockRepo
	svc := s.newService(1)
	s.expectRolls(repeat(6, 17)...)

	mockRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().AddResult(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	mockRepo.EXPECT().GetResultsForSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	sink := &recordingSink{}
	output, err := svc.PlaySession(s.ctx, &game.PlaySessionInput{
		Actions: &scriptedActions{actions: winningTurn()},
		Events:  sink,
	})
	s.Require().NoError(err)
	s.Equal(1, output.GamesPlayed)
	s.Empty(output.Standings)
	s.Empty(output.Results)
	s.NotContains(sink.types(), game.EventStandings)
	s.Equal(game.EventFarewell, sink.types()[len(sink.events)-1])
}

func (s *GameServiceTestSuite) TestPlaySessionFailsWhenSessionCannotStart() {
	mockRepo := resultMocks.NewMockRepository(s.mockCtrl)
	s.resultRepo = mockRepo
	svc := s.newService(2)
	repoErr := errors.New("redis down")

	mockRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(repoErr)

	_, err := svc.PlaySession(s.ctx, &game.PlaySessionInput{
		Actions: &scriptedActions{},
		Events:  &recordingSink{},
	})
	s.ErrorIs(err, repoErr)
}

func (s *GameServiceTestSuite) TestPlaySessionValidation() {
	svc := s.newService(2)

	_, err := svc.PlaySession(s.ctx, nil)
	s.ErrorIs(err, game.ErrNilInput)

	_, err = svc.PlaySession(s.ctx, &game.PlaySessionInput{Events: &recordingSink{}})
	s.ErrorIs(err, game.ErrNilActionSource)

	_, err = svc.PlaySession(s.ctx, &game.PlaySessionInput{Actions: &scriptedActions{}})
	s.ErrorIs(err, game.ErrNilEventSink)
}
