package resolver

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a request rejected before any network call
// (missing or unparseable URL).
var ErrInvalidInput = errors.New("resolver: invalid input")

// BlockedError is returned when the content-safety gate rejects a URL
// or candidate name as a non-company source.
type BlockedError struct {
	// Reason is a stable machine-readable code, e.g. "facebook_content".
	Reason string
	// Offender is the domain or name fragment that tripped the gate.
	Offender string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("resolver: blocked (%s): %s", e.Reason, e.Offender)
}

// IsBlocked reports whether err is a gate rejection and returns it.
func IsBlocked(err error) (*BlockedError, bool) {
	var be *BlockedError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
