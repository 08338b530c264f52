package prompt

import (
	"errors"
	"strings"
)

// Signal is an out-of-band navigation request raised when the user types a
// recognized control token instead of ordinary data.
type Signal int

const (
	// SignalBack asks the nearest enclosing menu to redo its step, or the
	// caller to take control back where no redo semantics exist.
	SignalBack Signal = iota + 1
	// SignalExit asks the whole interactive session to end.
	SignalExit
)

// ErrBack and ErrExit carry navigation signals up the prompt call stack.
// Callers branch on them with errors.Is: ErrExit must unwind all the way to
// the session entry point, while ErrBack is absorbed by the nearest loop
// that can re-display its own prompt.
var (
	ErrBack = errors.New("navigate back")
	ErrExit = errors.New("navigate exit")
)

// Classify checks whether raw input is a navigation request. Matching is
// case-insensitive on the trimmed input and exact, so "backup" is data.
func Classify(raw string) (Signal, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "b", "back":
		return SignalBack, true
	case "q", "quit", "exit":
		return SignalExit, true
	}
	return 0, false
}

// Err converts a signal into its sentinel error form.
func (s Signal) Err() error {
	if s == SignalExit {
		return ErrExit
	}
	return ErrBack
}
