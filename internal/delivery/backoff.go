package delivery

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/wb-go/wbf/retry"
)

// BackoffKind selects how the delay grows with the retry count.
type BackoffKind string

const (
	BackoffExponential BackoffKind = "exponential"
	BackoffLinear      BackoffKind = "linear"
	BackoffFixed       BackoffKind = "fixed"
)

// Backoff maps a retry count to the delay before the next attempt.
type Backoff struct {
	Kind   BackoffKind
	Base   time.Duration
	Factor float64
	Max    time.Duration // zero means unbounded
}

// NewBackoff builds a Backoff from a retry.Strategy, using its Delay as the
// base and its Backoff as the exponential factor.
func NewBackoff(kind string, strategy retry.Strategy, max time.Duration) (Backoff, error) {
	b := Backoff{
		Kind:   BackoffKind(strings.ToLower(kind)),
		Base:   strategy.Delay,
		Factor: strategy.Backoff,
		Max:    max,
	}

	switch b.Kind {
	case BackoffExponential, BackoffLinear, BackoffFixed:
	default:
		return Backoff{}, fmt.Errorf("unknown backoff %q", kind)
	}

	if b.Base <= 0 {
		return Backoff{}, fmt.Errorf("backoff base delay must be positive")
	}
	if b.Factor < 1 {
		b.Factor = 2
	}

	return b, nil
}

// Delay returns the wait after the given number of failed attempts (>= 1).
func (b Backoff) Delay(retryCount int) time.Duration {
	if retryCount < 1 {
		retryCount = 1
	}

	var d float64
	switch b.Kind {
	case BackoffLinear:
		d = float64(b.Base) * float64(retryCount)
	case BackoffFixed:
		d = float64(b.Base)
	default:
		d = float64(b.Base) * math.Pow(b.Factor, float64(retryCount-1))
	}

	if b.Max > 0 && d > float64(b.Max) {
		return b.Max
	}
	if d > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(d)
}
