package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/pig/internal/common/clock"
	"github.com/KirkDiggler/pig/internal/common/uuid"
	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/models"
	"github.com/KirkDiggler/pig/internal/repositories/results"
)

// service implements the Service interface
type service struct {
	resultRepo    results.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID

	// game is the single game this service drives; only one step runs at a time
	game *models.Game
}

// New creates a new game service with a fresh roster and game
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.NumPlayers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, cfg.NumPlayers)
	}

	if cfg.ResultRepo == nil {
		return nil, ErrNilResultRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		resultRepo:    cfg.ResultRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}

	players := make([]*models.Player, cfg.NumPlayers)
	for i := range players {
		players[i] = models.NewPlayer(s.uuidGenerator.NewUUID(), models.DefaultPlayerName(i))
	}

	s.game = s.newGame(players)

	return s, nil
}

// newGame creates an active game for the roster with the first player up
func (s *service) newGame(players []*models.Player) *models.Game {
	now := s.clock.Now()

	return &models.Game{
		ID:                 s.uuidGenerator.NewUUID(),
		Status:             models.GameStatusActive,
		Players:            players,
		CurrentPlayerIndex: 0,
		TurnScore:          0,
		Turn:               1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// PlayTurn applies a single roll or hold for the current player
func (s *service) PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if input == nil {
		return nil, ErrNilInput
	}

	if s.game.Status.IsCompleted() {
		return nil, ErrGameOver
	}

	switch input.Action {
	case ActionRoll:
		return s.roll()
	case ActionHold:
		return s.hold()
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, input.Action)
	}
}

func (s *service) roll() (*PlayTurnOutput, error) {
	player := s.game.CurrentPlayer()

	rollValue := s.diceRoller.Roll(dice.Sides)
	if rollValue < 1 || rollValue > dice.Sides {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRoll, rollValue)
	}

	output := &PlayTurnOutput{
		Action:     ActionRoll,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Roll:       rollValue,
		Score:      player.Score,
	}

	if rollValue == BustValue {
		// The turn score is forfeited, never banked
		s.switchTurn()
		output.Bust = true
		output.TurnEnded = true
	} else {
		s.game.TurnScore += rollValue
		s.game.UpdatedAt = s.clock.Now()
	}

	output.TurnScore = s.game.TurnScore
	output.NextPlayer = s.game.CurrentPlayer().Clone()

	return output, nil
}

func (s *service) hold() (*PlayTurnOutput, error) {
	player := s.game.CurrentPlayer()

	banked := s.game.TurnScore
	player.AddScore(banked)

	output := &PlayTurnOutput{
		Action:     ActionHold,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Banked:     banked,
		Score:      player.Score,
		TurnEnded:  true,
	}

	if player.Score >= WinningScore {
		s.game.Status = models.GameStatusCompleted
		s.game.WinnerID = player.ID
		s.game.TurnScore = 0
		s.game.UpdatedAt = s.clock.Now()

		output.GameOver = true
		output.Winner = player.Clone()
	} else {
		s.switchTurn()
	}

	output.TurnScore = s.game.TurnScore
	output.NextPlayer = s.game.CurrentPlayer().Clone()

	return output, nil
}

// SwitchTurn passes play to the next player in roster order
func (s *service) SwitchTurn(ctx context.Context, input *SwitchTurnInput) (*SwitchTurnOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.game.Status.IsCompleted() {
		return nil, ErrGameOver
	}

	previous := s.game.CurrentPlayer().Clone()
	s.switchTurn()

	return &SwitchTurnOutput{
		PreviousPlayer: previous,
		CurrentPlayer:  s.game.CurrentPlayer().Clone(),
	}, nil
}

// switchTurn advances round robin and always clears the turn score
func (s *service) switchTurn() {
	s.game.TurnScore = 0
	s.game.CurrentPlayerIndex = (s.game.CurrentPlayerIndex + 1) % len(s.game.Players)
	s.game.Turn++
	s.game.UpdatedAt = s.clock.Now()
}

// PlayGame runs turns until a player wins
func (s *service) PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Actions == nil {
		return nil, ErrNilActionSource
	}

	if input.Events == nil {
		return nil, ErrNilEventSink
	}

	if s.game.Status.IsCompleted() {
		return nil, ErrGameOver
	}

	if err := s.publish(ctx, input.Events, &Event{Type: EventGameStarted}); err != nil {
		return nil, err
	}

	for {
		output, err := s.playOneTurn(ctx, input)
		if err != nil {
			return nil, err
		}

		if output.GameOver {
			return &PlayGameOutput{
				GameID: s.game.ID,
				Winner: output.Winner,
				Turns:  s.game.Turn,
			}, nil
		}
	}
}

// playOneTurn asks the current player for actions until their turn ends
func (s *service) playOneTurn(ctx context.Context, input *PlayGameInput) (*PlayTurnOutput, error) {
	player := s.game.CurrentPlayer()

	err := s.publish(ctx, input.Events, &Event{
		Type:       EventTurnStarted,
		PlayerName: player.Name,
		Score:      player.Score,
	})
	if err != nil {
		return nil, err
	}

	for {
		action, err := input.Actions.NextAction(ctx, &NextActionInput{
			GameID:     s.game.ID,
			PlayerName: player.Name,
			Score:      player.Score,
			TurnScore:  s.game.TurnScore,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get next action: %w", err)
		}

		// Events are stamped with the turn the step was taken in
		turn := s.game.Turn

		output, err := s.PlayTurn(ctx, &PlayTurnInput{Action: action})
		if errors.Is(err, ErrInvalidAction) {
			err = s.publish(ctx, input.Events, &Event{
				Type:       EventInvalidAction,
				PlayerName: player.Name,
				Action:     action,
			})
			if err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		for _, event := range eventsFor(output) {
			event.Turn = turn
			if err := s.publish(ctx, input.Events, event); err != nil {
				return nil, err
			}
		}

		if output.TurnEnded {
			return output, nil
		}
	}
}

// eventsFor translates a step outcome into the events players see
func eventsFor(output *PlayTurnOutput) []*Event {
	var events []*Event

	switch output.Action {
	case ActionRoll:
		events = append(events, &Event{
			Type:       EventRolled,
			PlayerName: output.PlayerName,
			Score:      output.Score,
			Roll:       output.Roll,
			TurnScore:  output.TurnScore,
		})
		if output.Bust {
			events = append(events, &Event{
				Type:       EventBust,
				PlayerName: output.PlayerName,
				Score:      output.Score,
				Roll:       output.Roll,
			})
		}
	case ActionHold:
		events = append(events, &Event{
			Type:       EventHeld,
			PlayerName: output.PlayerName,
			Score:      output.Score,
			TurnScore:  output.Banked,
		})
		if output.GameOver {
			events = append(events, &Event{
				Type:       EventWon,
				PlayerName: output.PlayerName,
				Score:      output.Score,
			})
		}
	}

	return events
}

func (s *service) publish(ctx context.Context, sink EventSink, event *Event) error {
	if event.GameID == "" {
		event.GameID = s.game.ID
	}
	if event.Turn == 0 {
		event.Turn = s.game.Turn
	}

	if err := sink.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

// ResetGame starts a fresh game with the same roster
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, player := range s.game.Players {
		player.ResetScore()
	}

	s.game = s.newGame(s.game.Players)

	return &ResetGameOutput{
		GameID: s.game.ID,
	}, nil
}

// GetState returns a snapshot of the current game
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	players := make([]*models.Player, len(s.game.Players))
	for i, player := range s.game.Players {
		players[i] = player.Clone()
	}

	return &GetStateOutput{
		GameID:             s.game.ID,
		Status:             s.game.Status,
		Players:            players,
		CurrentPlayer:      players[s.game.CurrentPlayerIndex],
		CurrentPlayerIndex: s.game.CurrentPlayerIndex,
		TurnScore:          s.game.TurnScore,
		Turn:               s.game.Turn,
		Winner:             s.game.Winner().Clone(),
	}, nil
}
