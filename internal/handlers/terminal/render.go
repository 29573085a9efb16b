package terminal

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/pig/internal/services/game"
	"github.com/KirkDiggler/pig/internal/services/messaging"
)

// Publish renders a game event as text
func (t *Terminal) Publish(ctx context.Context, event *game.Event) error {
	if event == nil {
		return nil
	}

	switch event.Type {
	case game.EventGameStarted:
		return t.renderGameStarted(ctx)
	case game.EventTurnStarted:
		return t.renderTurnStarted(ctx, event)
	case game.EventRolled:
		return t.renderRoll(ctx, event)
	case game.EventBust:
		return t.renderBust(ctx, event)
	case game.EventHeld:
		return t.renderHold(ctx, event)
	case game.EventWon:
		return t.renderWin(ctx, event)
	case game.EventInvalidAction:
		return t.renderInvalidChoice(ctx, event)
	case game.EventNewGame:
		return t.renderNewGame(ctx)
	case game.EventStandings:
		return t.renderStandings(ctx, event)
	case game.EventFarewell:
		return t.renderFarewell(ctx)
	default:
		return nil
	}
}

func (t *Terminal) renderGameStarted(ctx context.Context) error {
	output, err := t.messagingService.GetGameStartedMessage(ctx, &messaging.GetGameStartedMessageInput{})
	if err != nil {
		return err
	}
	return t.println(output.Message, output.Comment)
}

func (t *Terminal) renderTurnStarted(ctx context.Context, event *game.Event) error {
	output, err := t.messagingService.GetTurnStartMessage(ctx, &messaging.GetTurnStartMessageInput{
		PlayerName: event.PlayerName,
		Score:      event.Score,
	})
	if err != nil {
		return err
	}

	// Blank line between turns
	return t.println("", output.Message, output.Comment)
}

// renderRoll prints the die value. A bust roll only prints the value,
// the bust event that follows carries the rest.
func (t *Terminal) renderRoll(ctx context.Context, event *game.Event) error {
	isBust := event.Roll == game.BustValue

	output, err := t.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName: event.PlayerName,
		RollValue:  event.Roll,
		TurnScore:  event.TurnScore,
		IsBust:     isBust,
	})
	if err != nil {
		return err
	}

	if isBust {
		return t.println(output.Message)
	}
	return t.println(output.Message, output.Details, output.Comment)
}

func (t *Terminal) renderBust(ctx context.Context, event *game.Event) error {
	output, err := t.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName: event.PlayerName,
		RollValue:  event.Roll,
		IsBust:     true,
	})
	if err != nil {
		return err
	}
	return t.println(output.Details, output.Comment)
}

func (t *Terminal) renderHold(ctx context.Context, event *game.Event) error {
	output, err := t.messagingService.GetHoldMessage(ctx, &messaging.GetHoldMessageInput{
		PlayerName: event.PlayerName,
		Banked:     event.TurnScore,
		Score:      event.Score,
	})
	if err != nil {
		return err
	}
	return t.println(output.Message, output.Comment)
}

func (t *Terminal) renderWin(ctx context.Context, event *game.Event) error {
	output, err := t.messagingService.GetWinMessage(ctx, &messaging.GetWinMessageInput{
		PlayerName: event.PlayerName,
		Score:      event.Score,
	})
	if err != nil {
		return err
	}
	return t.println(output.Message, output.Comment)
}

func (t *Terminal) renderInvalidChoice(ctx context.Context, event *game.Event) error {
	output, err := t.messagingService.GetInvalidChoiceMessage(ctx, &messaging.GetInvalidChoiceMessageInput{
		Input: string(event.Action),
	})
	if err != nil {
		return err
	}
	return t.println(output.Message, output.Comment)
}

func (t *Terminal) renderNewGame(ctx context.Context) error {
	output, err := t.messagingService.GetNewGameMessage(ctx, &messaging.GetNewGameMessageInput{})
	if err != nil {
		return err
	}
	return t.println("", output.Message, output.Comment)
}

func (t *Terminal) renderStandings(ctx context.Context, event *game.Event) error {
	output, err := t.messagingService.GetStandingsMessage(ctx, &messaging.GetStandingsMessageInput{
		Entries: event.Standings,
	})
	if err != nil {
		return err
	}

	lines := append([]string{"", output.Title}, output.Lines...)
	return t.println(lines...)
}

func (t *Terminal) renderFarewell(ctx context.Context) error {
	output, err := t.messagingService.GetFarewellMessage(ctx, &messaging.GetFarewellMessageInput{})
	if err != nil {
		return err
	}
	return t.println(output.Message, output.Comment)
}

// println writes each line on its own. Empty lines are kept only at the
// start, where they separate sections, and empty comments are dropped.
func (t *Terminal) println(lines ...string) error {
	for i, line := range lines {
		if line == "" && i > 0 {
			continue
		}
		if _, err := fmt.Fprintln(t.out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
