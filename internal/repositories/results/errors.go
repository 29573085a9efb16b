package results

import "errors"

var (
	// ErrNilSession is returned when a session is missing or has no ID
	ErrNilSession = errors.New("session and session ID cannot be empty")

	// ErrNilResult is returned when a result is missing or incomplete
	ErrNilResult = errors.New("result, result ID and session ID cannot be empty")

	// ErrMissingSessionID is returned when a lookup has no session ID
	ErrMissingSessionID = errors.New("input and session ID cannot be empty")
)

func validateResult(input *AddResultInput) error {
	if input == nil || input.Result == nil {
		return ErrNilResult
	}
	if input.Result.ID == "" || input.Result.SessionID == "" {
		return ErrNilResult
	}
	return nil
}
