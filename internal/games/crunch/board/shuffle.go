package board

import (
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"
)

// ErrDeadlock is returned when Shuffle could not deal a layout with at least
// one legal swap within MaxShuffleAttempts.
var ErrDeadlock = errors.New("board: no layout with a legal swap")

// ShuffleState is a step of the shuffle state machine.
type ShuffleState int

const (
	StateEmpty     ShuffleState = iota // Board cleared, nothing dealt
	StateFilled                        // Initial fill done, legal swaps unknown
	StateValidated                     // Legal swaps computed
	StateDeadlock                      // Validated with no legal swap; will retry
	StateReady                         // Validated with at least one legal swap
)

func (s ShuffleState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFilled:
		return "filled"
	case StateValidated:
		return "validated"
	case StateDeadlock:
		return "deadlock"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Shuffle discards the current layout and deals a new one that has no runs
// and at least one legal swap. Deadlocked layouts are redealt up to
// MaxShuffleAttempts times. The returned cookies are every placed cookie.
func (b *Board) Shuffle() ([]Cookie, error) {
	attempts := 0
	var genErr error

	err := retry.Do(
		func() error {
			attempts++
			b.clear()
			b.state = StateEmpty

			if err := b.createInitialCookies(); err != nil {
				genErr = err
				return retry.Unrecoverable(err)
			}
			b.state = StateFilled

			n := b.DetectLegalSwaps()
			b.state = StateValidated
			if n == 0 {
				b.state = StateDeadlock
				return ErrDeadlock
			}

			b.state = StateReady
			b.logger.Debug("board dealt", "attempt", attempts, "cookies", b.Count(), "legal_swaps", n)
			return nil
		},
		retry.Attempts(uint(b.cfg.MaxShuffleAttempts)),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			b.logger.Debug("reshuffling", "attempt", n+1, "reason", err)
		}),
	)

	if genErr != nil {
		b.clear()
		b.state = StateEmpty
		return nil, genErr
	}
	if err != nil {
		b.clear()
		b.state = StateEmpty
		return nil, fmt.Errorf("%w after %d attempts", ErrDeadlock, attempts)
	}
	return b.Cookies(), nil
}
