// Package testutil provides shared test doubles.
package testutil

import (
	"context"
	"sync"
	"time"
)

// ScriptedTranslator is a translation service double with canned responses.
// It records every call so tests can assert on call counts and order.
type ScriptedTranslator struct {
	// Responses maps input text to its translation.
	Responses map[string]string
	// Errors maps input text to an error returned instead of a translation.
	Errors map[string]error
	// FailAll, when set, makes every call fail with this error.
	FailAll error

	mu    sync.Mutex
	calls []string
}

// Translate returns the scripted response for text.
func (s *ScriptedTranslator) Translate(_ context.Context, text string) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, text)
	s.mu.Unlock()

	if s.FailAll != nil {
		return "", s.FailAll
	}
	if err, ok := s.Errors[text]; ok {
		return "", err
	}
	if translated, ok := s.Responses[text]; ok {
		return translated, nil
	}

	// Default response makes unscripted inputs visible in assertions.
	return "번역: " + text, nil
}

// Name returns the provider name.
func (s *ScriptedTranslator) Name() string {
	return "scripted"
}

// Calls returns a copy of the recorded inputs in call order.
func (s *ScriptedTranslator) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// CallCount returns the number of recorded calls.
func (s *ScriptedTranslator) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// SleepRecorder replaces time.Sleep in tests and records requested delays
// without blocking.
type SleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

// Sleep records the delay and returns immediately.
func (r *SleepRecorder) Sleep(d time.Duration) {
	r.mu.Lock()
	r.delays = append(r.delays, d)
	r.mu.Unlock()
}

// Delays returns a copy of the recorded delays in order.
func (r *SleepRecorder) Delays() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.delays...)
}
