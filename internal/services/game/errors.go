package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidAction      GameError = "invalid action"
	ErrInvalidRoll        GameError = "dice roller returned an out of range value"
	ErrGameOver           GameError = "game is already over"
	ErrInvalidPlayerCount GameError = "a game needs at least one player"
	ErrNilInput           GameError = "input cannot be nil"
	ErrNilActionSource    GameError = "action source cannot be nil"
	ErrNilEventSink       GameError = "event sink cannot be nil"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilResultRepo      GameError = "result repository cannot be nil"
	ErrNilDiceRoller      GameError = "dice roller cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
