package translation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"github.com/jspark1st/excel-translate/internal/memory"
	"github.com/jspark1st/excel-translate/internal/testutil"
)

func TestClient_TranslateSuccess(t *testing.T) {
	service := &testutil.ScriptedTranslator{
		Responses: map[string]string{"Hello": "안녕하세요"},
	}
	sleeps := &testutil.SleepRecorder{}
	client := NewClient(service, Options{Sleep: sleeps.Sleep})

	outcome := client.Translate(context.Background(), "Hello")
	if outcome.Fallback {
		t.Fatalf("unexpected fallback: %v", outcome.Reason)
	}
	if outcome.Text != "안녕하세요" {
		t.Errorf("Text = %q, want 안녕하세요", outcome.Text)
	}
	if service.CallCount() != 1 {
		t.Errorf("service calls = %d, want 1", service.CallCount())
	}
	if len(sleeps.Delays()) != 0 {
		t.Errorf("unexpected sleeps: %v", sleeps.Delays())
	}
}

func TestClient_FallbackAfterRetries(t *testing.T) {
	service := &testutil.ScriptedTranslator{FailAll: errors.New("network timeout")}
	sleeps := &testutil.SleepRecorder{}
	client := NewClient(service, Options{
		MaxAttempts: 3,
		BaseDelay:   100 * time.Millisecond,
		Sleep:       sleeps.Sleep,
	})

	outcome := client.Translate(context.Background(), "Hello")
	if !outcome.Fallback {
		t.Fatal("expected fallback outcome")
	}
	if outcome.Text != "Hello" {
		t.Errorf("fallback must preserve original text, got %q", outcome.Text)
	}
	if outcome.Reason == nil {
		t.Error("fallback must carry a reason")
	}
	if service.CallCount() != 3 {
		t.Errorf("service calls = %d, want 3", service.CallCount())
	}

	// Backoff doubles between attempts.
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
	got := sleeps.Delays()
	if len(got) != len(want) {
		t.Fatalf("sleeps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sleep %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClient_PaceAfterSuccess(t *testing.T) {
	service := &testutil.ScriptedTranslator{}
	sleeps := &testutil.SleepRecorder{}
	client := NewClient(service, Options{
		Pace:  100 * time.Millisecond,
		Sleep: sleeps.Sleep,
	})

	client.Translate(context.Background(), "Hello")

	got := sleeps.Delays()
	if len(got) != 1 || got[0] != 100*time.Millisecond {
		t.Errorf("sleeps = %v, want one 100ms pace delay", got)
	}
}

func TestClient_BreakerFailsFast(t *testing.T) {
	service := &testutil.ScriptedTranslator{FailAll: errors.New("connection refused")}
	sleeps := &testutil.SleepRecorder{}
	client := NewClient(service, Options{
		MaxAttempts: 4,
		Sleep:       sleeps.Sleep,
	})

	// The breaker trips after more than five consecutive failures. Two
	// translations at four attempts each push it past the threshold.
	client.Translate(context.Background(), "one")
	client.Translate(context.Background(), "two")
	callsBefore := service.CallCount()

	outcome := client.Translate(context.Background(), "three")
	if !outcome.Fallback {
		t.Fatal("expected fallback outcome")
	}
	if outcome.Text != "three" {
		t.Errorf("fallback text = %q, want original", outcome.Text)
	}
	if !errors.Is(outcome.Reason, gobreaker.ErrOpenState) {
		t.Errorf("reason = %v, want breaker open", outcome.Reason)
	}
	if service.CallCount() != callsBefore {
		t.Errorf("service called %d times through an open breaker",
			service.CallCount()-callsBefore)
	}
}

func TestClient_MemoryHitSkipsService(t *testing.T) {
	store, err := memory.Open(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if err := store.Save("Hello", "안녕하세요"); err != nil {
		t.Fatal(err)
	}

	service := &testutil.ScriptedTranslator{FailAll: errors.New("should not be called")}
	client := NewClient(service, Options{Memory: store, Sleep: func(time.Duration) {}})

	outcome := client.Translate(context.Background(), "Hello")
	if outcome.Fallback || outcome.Text != "안녕하세요" {
		t.Errorf("outcome = %+v, want memory hit", outcome)
	}
	if service.CallCount() != 0 {
		t.Errorf("service calls = %d, want 0", service.CallCount())
	}
}

func TestClient_SavesSuccessToMemory(t *testing.T) {
	store, err := memory.Open(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	service := &testutil.ScriptedTranslator{
		Responses: map[string]string{"World": "세계"},
	}
	client := NewClient(service, Options{Memory: store, Sleep: func(time.Duration) {}})

	client.Translate(context.Background(), "World")

	translated, found := store.Lookup("World")
	if !found || translated != "세계" {
		t.Errorf("memory entry = %q, %v; want 세계, true", translated, found)
	}
}

func TestOpenAIService_NoAPIKey(t *testing.T) {
	service := NewOpenAIService("", "")

	_, err := service.Translate(context.Background(), "Hello")
	if err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestOpenAIService_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	service := NewOpenAIService(apiKey, "")
	translated, err := service.Translate(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if translated == "" {
		t.Error("got empty translation")
	}
	t.Logf("Translation of 'Hello': %s", translated)
}

func TestNewService_UnknownProvider(t *testing.T) {
	_, err := NewService(context.Background(), "papago", "key", "")
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewService_DefaultsToOpenAI(t *testing.T) {
	service, err := NewService(context.Background(), "", "key", "")
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if service.Name() != ProviderOpenAI {
		t.Errorf("Name = %q, want %q", service.Name(), ProviderOpenAI)
	}
}
