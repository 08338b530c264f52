package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads user input line by line and applies the navigation
// protocol. One Prompter is shared by every interactive component of a
// session so they all consume the same input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from in and echoing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadRaw prints the prompt and returns the trimmed input line without
// classifying it. Menu loops that give Back and Exit their own local
// meaning branch via Classify themselves. End of input is treated as an
// exit request.
func (p *Prompter) ReadRaw(promptText string) (string, error) {
	fmt.Fprint(p.out, promptText)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if strings.TrimSpace(line) != "" {
			// Final line without a trailing newline still counts.
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", ErrExit
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadLine reads one line and enforces the navigation protocol: a Back or
// Exit token comes back as ErrBack or ErrExit instead of data.
func (p *Prompter) ReadLine(promptText string) (string, error) {
	raw, err := p.ReadRaw(promptText)
	if err != nil {
		return "", err
	}
	if sig, ok := Classify(raw); ok {
		return "", sig.Err()
	}
	return raw, nil
}

// Confirm asks a yes/no question, re-prompting until it gets an answer.
// Empty input picks the default. Navigation tokens are enforced as in
// ReadLine.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "[Y/n]"
	if !def {
		hint = "[y/N]"
	}
	for {
		raw, err := p.ReadLine(fmt.Sprintf("%s %s ", question, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
