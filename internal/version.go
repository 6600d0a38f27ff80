// Package internal holds values shared across the application.
package internal

// Version is the application version, shown by --version.
const Version = "1.0.0"
