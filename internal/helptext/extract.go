package helptext

import (
	"regexp"
	"strings"
)

// The primary pass matches one option definition per line. Patterns are tried
// in order and the first match wins for that line. A value placeholder is
// recognized only when written in uppercase letters/underscores, which keeps
// it distinct from free description text.
var (
	// -s, --long [ARG]  description
	shortLongPattern = regexp.MustCompile(`^\s*(-\w+),?\s+(--[\w-]+)(?:\s+([A-Z_]+))?\s+(.+)$`)
	// --long [ARG]  description
	longOnlyPattern = regexp.MustCompile(`^\s*(--[\w-]+)(?:\s+([A-Z_]+))?\s+(.+)$`)
	// -s [ARG]  description
	shortOnlyPattern = regexp.MustCompile(`^\s*(-\w+)(?:\s+([A-Z_]+))?\s+(.+)$`)
)

// Extract parses free-form help text into an option model. It is total:
// unparseable or empty input yields an empty model, never an error.
//
// The line-oriented primary pass handles help output with an aligned
// description column. When it finds nothing, a fallback pass mines
// bracket-delimited tokens out of the usage synopsis instead; the two passes
// never mix.
func Extract(helpText string) Model {
	var model Model
	seen := make(map[[2]string]bool)
	add := func(opt Option) {
		if opt.Short == "" && opt.Long == "" {
			return
		}
		if seen[opt.key()] {
			return
		}
		seen[opt.key()] = true
		model = append(model, opt)
	}

	helpText = strings.ReplaceAll(helpText, "\r\n", "\n")
	for _, line := range strings.Split(helpText, "\n") {
		if opt, ok := matchLine(line); ok {
			add(opt)
		}
	}

	if len(model) == 0 {
		for _, opt := range fallbackOptions(helpText) {
			add(opt)
		}
	}
	return model
}

// matchLine tries each line pattern in priority order and builds a candidate
// option from the first one that matches.
func matchLine(line string) (Option, bool) {
	if m := shortLongPattern.FindStringSubmatch(line); m != nil {
		return Option{Short: m[1], Long: m[2], Arg: m[3], Description: strings.TrimSpace(m[4])}, true
	}
	if m := longOnlyPattern.FindStringSubmatch(line); m != nil {
		return Option{Long: m[1], Arg: m[2], Description: strings.TrimSpace(m[3])}, true
	}
	if m := shortOnlyPattern.FindStringSubmatch(line); m != nil {
		return Option{Short: m[1], Arg: m[2], Description: strings.TrimSpace(m[3])}, true
	}
	return Option{}, false
}
