package messaging

import (
	"github.com/KirkDiggler/pig/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral prints the plain game text only
	ToneNeutral MessageTone = "neutral"

	// ToneFunny adds a random wisecrack to the plain game text
	ToneFunny MessageTone = "funny"
)

// IsValid returns true for the tones the service knows
func (t MessageTone) IsValid() bool {
	return t == ToneNeutral || t == ToneFunny
}

// Config contains configuration for the messaging service
type Config struct {
	// Tone applies to every message, neutral when empty
	Tone MessageTone

	// Seed makes the funny tone reproducible, zero means time-seeded
	Seed int64
}

// MessageOutput is the common result of the message getters
type MessageOutput struct {
	// Message is the plain game text
	Message string

	// Comment is an optional wisecrack, empty in the neutral tone
	Comment string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetGameStartedMessageInput is the input for GetGameStartedMessage
type GetGameStartedMessageInput struct {
}

// GetTurnStartMessageInput is the input for GetTurnStartMessage
type GetTurnStartMessageInput struct {
	PlayerName string
	Score      int
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	PlayerName string
	RollValue  int

	// TurnScore is the unbanked total after the roll
	TurnScore int

	// IsBust indicates the roll wiped out the turn
	IsBust bool
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	// Message is the roll itself
	Message string

	// Details is the running turn score, or the bust notice
	Details string

	// Comment is an optional wisecrack, empty in the neutral tone
	Comment string

	Tone MessageTone
}

// GetHoldMessageInput is the input for GetHoldMessage
type GetHoldMessageInput struct {
	PlayerName string
	Banked     int
	Score      int
}

// GetWinMessageInput is the input for GetWinMessage
type GetWinMessageInput struct {
	PlayerName string
	Score      int
}

// GetInvalidChoiceMessageInput is the input for GetInvalidChoiceMessage
type GetInvalidChoiceMessageInput struct {
	// Input is what the player typed
	Input string
}

// GetNewGameMessageInput is the input for GetNewGameMessage
type GetNewGameMessageInput struct {
}

// GetStandingsMessageInput is the input for GetStandingsMessage
type GetStandingsMessageInput struct {
	Entries []*models.LeaderboardEntry
}

// GetStandingsMessageOutput is the output for GetStandingsMessage
type GetStandingsMessageOutput struct {
	Title string
	Lines []string
}

// GetFarewellMessageInput is the input for GetFarewellMessage
type GetFarewellMessageInput struct {
}
