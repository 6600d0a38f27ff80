package translation

import "time"

// Attempt describes the state of a retry sequence after a failed attempt.
// N counts failed attempts so far, starting at 1.
type Attempt struct {
	N           int
	MaxAttempts int
	BaseDelay   time.Duration
}

// Action is the decision for a failed attempt: retry after Delay, or give up.
type Action struct {
	Retry bool
	Delay time.Duration
}

// NextAction is the pure retry decision function. It doubles the delay for
// each failed attempt (base, 2*base, 4*base, ...) and gives up once
// MaxAttempts have failed. It never sleeps; callers own the waiting.
func NextAction(a Attempt) Action {
	if a.N < 1 || a.N >= a.MaxAttempts {
		return Action{}
	}
	return Action{Retry: true, Delay: a.BaseDelay << (a.N - 1)}
}
