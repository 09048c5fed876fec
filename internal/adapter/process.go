// Package adapter wraps the operating-system facilities the checker depends on.
package adapter

import "os"

// ProcessAdapter terminates the current process.
type ProcessAdapter interface {
	Exit(code int)
}

// LocalProcessAdapter implements ProcessAdapter with os.Exit.
type LocalProcessAdapter struct{}

// NewLocalProcessAdapter creates a new LocalProcessAdapter.
func NewLocalProcessAdapter() ProcessAdapter {
	return &LocalProcessAdapter{}
}

// Exit terminates the process with the given status code. It does not return.
func (a *LocalProcessAdapter) Exit(code int) {
	os.Exit(code)
}
