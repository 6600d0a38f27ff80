// Package cli defines the command-line flags and configuration loading
// shared by the CLI and GUI shells.
package cli
