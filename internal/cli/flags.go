package cli

import "time"

// Flags holds all command-line flag values.
type Flags struct {
	// General flags
	CfgFile    string
	OutputPath string
	LogDir     string
	LogLevel   string
	NoLogFile  bool

	// Translation flags
	Provider        string
	Model           string
	MaxAttempts     int
	RetryDelay      time.Duration
	Pace            time.Duration
	KoreanThreshold float64
	MemoryDB        string
}

// NewFlags creates a new Flags instance with default values.
func NewFlags() *Flags {
	return &Flags{
		LogDir:      "logs",
		LogLevel:    "debug",
		Provider:    "openai",
		MaxAttempts: 3,
		RetryDelay:  time.Second,
		Pace:        100 * time.Millisecond,
	}
}
