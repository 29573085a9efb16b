package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/pig/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	neutral Service
	funny   Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	var err error
	s.neutral, err = NewService(nil)
	s.Require().NoError(err)

	s.funny, err = NewService(&Config{Tone: ToneFunny, Seed: 1})
	s.Require().NoError(err)

	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestUnknownTone() {
	_, err := NewService(&Config{Tone: "sarcastic"})
	s.ErrorIs(err, ErrInvalidTone)
}

func (s *MessagingServiceTestSuite) TestNeutralMessages() {
	started, err := s.neutral.GetGameStartedMessage(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal("Welcome to Pig!", started.Message)
	s.Empty(started.Comment)
	s.Equal(ToneNeutral, started.Tone)

	turn, err := s.neutral.GetTurnStartMessage(s.ctx, &GetTurnStartMessageInput{PlayerName: "Player 2", Score: 37})
	s.Require().NoError(err)
	s.Equal("Player 2's turn! Current score: 37", turn.Message)

	hold, err := s.neutral.GetHoldMessage(s.ctx, &GetHoldMessageInput{PlayerName: "Player 2", Banked: 11, Score: 48})
	s.Require().NoError(err)
	s.Equal("Player 2's total score: 48", hold.Message)

	win, err := s.neutral.GetWinMessage(s.ctx, &GetWinMessageInput{PlayerName: "Player 1", Score: 104})
	s.Require().NoError(err)
	s.Equal("Player 1 wins!", win.Message)

	invalid, err := s.neutral.GetInvalidChoiceMessage(s.ctx, &GetInvalidChoiceMessageInput{Input: "q"})
	s.Require().NoError(err)
	s.Equal("Invalid choice. Enter 'r' to roll or 'h' to hold.", invalid.Message)

	newGame, err := s.neutral.GetNewGameMessage(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal("Starting a new game!", newGame.Message)

	farewell, err := s.neutral.GetFarewellMessage(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal("Thanks for playing!", farewell.Message)
	s.Empty(farewell.Comment)
}

func (s *MessagingServiceTestSuite) TestRollResultMessages() {
	roll, err := s.neutral.GetRollResultMessage(s.ctx, &GetRollResultMessageInput{
		PlayerName: "Player 1",
		RollValue:  5,
		TurnScore:  8,
	})
	s.Require().NoError(err)
	s.Equal("Rolled: 5", roll.Message)
	s.Equal("Turn score: 8", roll.Details)
	s.Empty(roll.Comment)

	bust, err := s.neutral.GetRollResultMessage(s.ctx, &GetRollResultMessageInput{
		PlayerName: "Player 1",
		RollValue:  1,
		IsBust:     true,
	})
	s.Require().NoError(err)
	s.Equal("Rolled: 1", bust.Message)
	s.Equal("Player 1 rolled a 1! No points for this turn.", bust.Details)
}

func (s *MessagingServiceTestSuite) TestFunnyToneKeepsGameText() {
	roll, err := s.funny.GetRollResultMessage(s.ctx, &GetRollResultMessageInput{
		PlayerName: "Player 1",
		RollValue:  6,
		TurnScore:  6,
	})
	s.Require().NoError(err)
	s.Equal("Rolled: 6", roll.Message)
	s.Equal("Turn score: 6", roll.Details)
	s.NotEmpty(roll.Comment)
	s.Equal(ToneFunny, roll.Tone)

	farewell, err := s.funny.GetFarewellMessage(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal("Thanks for playing!", farewell.Message)
	s.NotEmpty(farewell.Comment)
}

func (s *MessagingServiceTestSuite) TestSameSeedSameComments() {
	other, err := NewService(&Config{Tone: ToneFunny, Seed: 1})
	s.Require().NoError(err)

	for i := 0; i < 5; i++ {
		first, err := s.funny.GetNewGameMessage(s.ctx, nil)
		s.Require().NoError(err)
		second, err := other.GetNewGameMessage(s.ctx, nil)
		s.Require().NoError(err)
		s.Equal(first.Comment, second.Comment)
	}
}

func (s *MessagingServiceTestSuite) TestStandingsMessage() {
	output, err := s.neutral.GetStandingsMessage(s.ctx, &GetStandingsMessageInput{
		Entries: []*models.LeaderboardEntry{
			{PlayerName: "Player 2", Wins: 2, Points: 210},
			{PlayerName: "Player 1", Wins: 1, Points: 180},
		},
	})
	s.Require().NoError(err)
	s.Equal("Session standings", output.Title)
	s.Equal([]string{
		"1. Player 2: 2 wins, 210 points",
		"2. Player 1: 1 win, 180 points",
	}, output.Lines)
}

func (s *MessagingServiceTestSuite) TestNilInputs() {
	_, err := s.neutral.GetTurnStartMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.neutral.GetRollResultMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.neutral.GetStandingsMessage(s.ctx, nil)
	s.Error(err)
}
