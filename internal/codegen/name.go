package codegen

import (
	"strings"
	"unicode"
)

// Slugify converts a program name into a CLI-safe slug: lowercase, with
// non-alphanumeric runs collapsed to single dashes and edges trimmed.
func Slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}

	result := b.String()
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	return strings.Trim(result, "-")
}

// toVarName turns a flag token into a Go variable name for the generated
// source: "--output-file" becomes "flagOutputFile", "-o" becomes "flagO".
func toVarName(flagToken string) string {
	trimmed := strings.TrimLeft(flagToken, "-")
	out := make([]rune, 0, len(trimmed))
	upper := true
	for _, c := range trimmed {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			upper = true
			continue
		}
		if upper {
			c = unicode.ToUpper(c)
			upper = false
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return "flagX"
	}
	return "flag" + string(out)
}

// flagName strips the leading dashes off the preferred flag token to get
// the name registered with the generated cobra command.
func flagName(flagToken string) string {
	return strings.TrimLeft(flagToken, "-")
}
