package translation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/jspark1st/excel-translate/internal/memory"
)

// Outcome is the result of translating one cell. Fallback outcomes always
// carry the original text, so nothing is ever lost.
type Outcome struct {
	Text     string
	Fallback bool
	Reason   error
}

// Translated builds a successful outcome.
func Translated(text string) Outcome {
	return Outcome{Text: text}
}

// FallbackTo builds a fallback outcome preserving the original text.
func FallbackTo(original string, reason error) Outcome {
	return Outcome{Text: original, Fallback: true, Reason: reason}
}

// Options configures a Client.
type Options struct {
	// MaxAttempts bounds service calls per cell, including the first.
	MaxAttempts int
	// BaseDelay is the backoff delay after the first failed attempt.
	BaseDelay time.Duration
	// Pace is an optional delay after each successful call, as a courtesy
	// to provider rate limits.
	Pace time.Duration
	// Memory is an optional persistent translation memory.
	Memory *memory.Store
	// Logger receives one record per attempt. Defaults to slog.Default().
	Logger *slog.Logger
	// Sleep is the blocking mechanism; tests inject a no-op.
	Sleep func(time.Duration)
}

// Client wraps a Service with translation memory, a circuit breaker, and
// bounded retries. Exhausted retries demote to a Fallback outcome; they are
// never fatal to a run.
type Client struct {
	service Service
	breaker *gobreaker.CircuitBreaker
	opts    Options
}

// NewClient creates a translation client around service.
func NewClient(service Service, opts Options) *Client {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "translation-" + service.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
	})

	return &Client{service: service, breaker: breaker, opts: opts}
}

// Translate translates text to Korean, returning a Fallback outcome with
// the original text when all attempts fail.
func (c *Client) Translate(ctx context.Context, text string) Outcome {
	if c.opts.Memory != nil {
		if translated, found := c.opts.Memory.Lookup(text); found {
			c.opts.Logger.Debug("translation memory hit", "chars", len(text))
			return Translated(translated)
		}
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		start := time.Now()
		result, err := c.breaker.Execute(func() (any, error) {
			return c.service.Translate(ctx, text)
		})
		elapsed := time.Since(start)

		if err == nil {
			translated := result.(string)
			c.opts.Logger.Debug("translated",
				"provider", c.service.Name(),
				"attempt", attempt,
				"elapsed", elapsed,
				"chars", len(text))
			if c.opts.Memory != nil {
				if err := c.opts.Memory.Save(text, translated); err != nil {
					c.opts.Logger.Warn("failed to save to translation memory", "error", err)
				}
			}
			if c.opts.Pace > 0 {
				c.opts.Sleep(c.opts.Pace)
			}
			return Translated(translated)
		}

		lastErr = err
		c.opts.Logger.Warn("translation attempt failed",
			"provider", c.service.Name(),
			"attempt", attempt,
			"elapsed", elapsed,
			"error", err)

		// An open breaker means the service is down; fail the cell fast
		// instead of burning the remaining attempts.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			break
		}
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}

		action := NextAction(Attempt{
			N:           attempt,
			MaxAttempts: c.opts.MaxAttempts,
			BaseDelay:   c.opts.BaseDelay,
		})
		if !action.Retry {
			break
		}
		c.opts.Sleep(action.Delay)
	}

	return FallbackTo(text, lastErr)
}
