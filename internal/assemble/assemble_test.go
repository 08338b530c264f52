package assemble

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/magnetcli/magnet/internal/helptext"
	"github.com/magnetcli/magnet/internal/prompt"
)

var testModel = helptext.Model{
	{Short: "-o", Long: "--output", Arg: "FILE", Description: "Output path"},
	{Short: "-v", Long: "--verbose", Description: "Enable verbose mode"},
}

// fakeBrowser satisfies FileBrowser with a canned result.
type fakeBrowser struct {
	path string
	err  error
}

func (f *fakeBrowser) Pick(startDir string, exts []string) (string, error) {
	return f.path, f.err
}

// newSession wires a Session to a scripted input stream.
func newSession(script string, browser FileBrowser) *Session {
	var out bytes.Buffer
	return &Session{
		Program:  "tool",
		Model:    testModel,
		Prompter: prompt.New(strings.NewReader(script), &out),
		Browser:  browser,
		Out:      &out,
	}
}

func TestBuildFlagsAndFinish(t *testing.T) {
	// Add --output with a value, add --verbose, finish.
	sess := newSession("1\n1\nout.txt\n1\n2\n3\n", nil)

	draft, err := sess.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"tool", "--output", "out.txt", "--verbose"}
	if !reflect.DeepEqual(draft, want) {
		t.Errorf("draft = %v, want %v", draft, want)
	}
}

func TestBuildPositionalVerbatim(t *testing.T) {
	sess := newSession("2\nhello world\n3\n", nil)

	draft, err := sess.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The token is kept whole; the runner executes an argument vector, so
	// the embedded space needs no quoting.
	want := []string{"tool", "hello world"}
	if !reflect.DeepEqual(draft, want) {
		t.Errorf("draft = %v, want %v", draft, want)
	}
}

func TestBuildBrowseDelegatesToBrowser(t *testing.T) {
	sess := newSession("2\nBROWSE\n3\n", &fakeBrowser{path: "/data/in.pdf"})

	draft, err := sess.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"tool", "/data/in.pdf"}
	if !reflect.DeepEqual(draft, want) {
		t.Errorf("draft = %v, want %v", draft, want)
	}
}

func TestBuildBrowserBackLeavesDraftUnchanged(t *testing.T) {
	sess := newSession("2\nbrowse\n3\n", &fakeBrowser{err: prompt.ErrBack})

	draft, err := sess.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(draft, []string{"tool"}) {
		t.Errorf("draft = %v, want just the program name", draft)
	}
}

func TestBuildExitDiscardsDraft(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"exit at action menu", "1\n1\nout.txt\nq\n"},
		{"exit at option index", "1\nquit\n"},
		{"exit at value prompt", "1\n1\nexit\n"},
		{"exit at positional prompt", "2\nq\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sess := newSession(tc.script, nil)
			draft, err := sess.Build()
			if !errors.Is(err, prompt.ErrExit) {
				t.Fatalf("error = %v, want ErrExit", err)
			}
			if draft != nil {
				t.Errorf("partial draft leaked: %v", draft)
			}
		})
	}
}

func TestBuildBackAtActionMenuAbortsBuild(t *testing.T) {
	sess := newSession("1\n2\nb\n", nil)

	draft, err := sess.Build()
	if !errors.Is(err, prompt.ErrBack) {
		t.Fatalf("error = %v, want ErrBack", err)
	}
	if draft != nil {
		t.Errorf("aborted build returned a draft: %v", draft)
	}
}

func TestBuildBackAtValuePromptKeepsDraft(t *testing.T) {
	// Select --output, back out of the value prompt, then finish: the draft
	// must be exactly as it was before the option was selected.
	sess := newSession("1\n1\nback\n3\n", nil)

	draft, err := sess.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(draft, []string{"tool"}) {
		t.Errorf("draft = %v, want unchanged", draft)
	}
}

func TestBuildBackAtOptionIndexReturnsToMenu(t *testing.T) {
	sess := newSession("1\nback\n3\n", nil)

	draft, err := sess.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(draft, []string{"tool"}) {
		t.Errorf("draft = %v, want unchanged", draft)
	}
}

func TestBuildInvalidSelectionsReprompt(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"out of range index", "1\n99\n3\n"},
		{"zero index", "1\n0\n3\n"},
		{"non-numeric index", "1\nabc\n3\n"},
		{"unknown menu choice", "7\n3\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sess := newSession(tc.script, nil)
			draft, err := sess.Build()
			if err != nil {
				t.Fatalf("invalid input must re-prompt, not fail: %v", err)
			}
			if !reflect.DeepEqual(draft, []string{"tool"}) {
				t.Errorf("draft = %v, want unchanged", draft)
			}
		})
	}
}

func TestBuildEmptyModelReportsAndContinues(t *testing.T) {
	var out bytes.Buffer
	sess := &Session{
		Program:  "tool",
		Model:    nil,
		Prompter: prompt.New(strings.NewReader("1\n3\n"), &out),
		Out:      &out,
	}

	draft, err := sess.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(draft, []string{"tool"}) {
		t.Errorf("draft = %v, want unchanged", draft)
	}
	if !strings.Contains(out.String(), "No options detected") {
		t.Error("expected a 'no options detected' message")
	}
}
