package board

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned for every move the rules reject, whatever the
// reason. Callers that only branch on legality test with errors.Is; the
// wrapped message carries the specific reason for display.
var ErrIllegalMove = errors.New("illegal move")

// illegalf wraps ErrIllegalMove with a reason.
func illegalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, fmt.Sprintf(format, args...))
}
