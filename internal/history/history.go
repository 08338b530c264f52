package history

import (
	"fmt"
	"io"
)

// Outcome records how an executed command finished, derived solely from its
// exit status.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// Entry is one executed command and its result.
type Entry struct {
	Command string
	Outcome Outcome
}

// History is the session-scoped, in-memory record of executed commands.
// The zero value is ready to use.
type History struct {
	entries []Entry
}

// Add appends a command/outcome pair.
func (h *History) Add(command string, outcome Outcome) {
	h.entries = append(h.entries, Entry{Command: command, Outcome: outcome})
}

// Entries returns a copy of all recorded entries in execution order.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Render writes the history as a numbered list.
func (h *History) Render(w io.Writer) {
	if len(h.entries) == 0 {
		fmt.Fprintln(w, "No commands have been executed yet.")
		return
	}
	fmt.Fprintln(w, "Command history:")
	for i, e := range h.entries {
		fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, e.Outcome, e.Command)
	}
}
