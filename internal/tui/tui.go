// Package tui renders command results to the terminal and reads secrets from
// the user.
//
// Results are printed either as JSON or as a two-column lipgloss table of
// dot-path keys and values. Secrets are read through a small Bubble Tea
// program with a masked text input when stdin is a terminal, and as a plain
// line otherwise.
package tui

import "errors"

var (
	// ErrUserQuit is returned when the user cancels a prompt.
	ErrUserQuit = errors.New("user quit")

	// ErrSecretRequired is returned when a secret is needed but prompting is
	// disabled.
	ErrSecretRequired = errors.New("secret required")
)
