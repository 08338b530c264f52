package helptext

import (
	"regexp"
	"strings"
)

const defaultDescription = "Option flag"

var bracketPattern = regexp.MustCompile(`\[([^\[\]]*)\]`)

// fallbackOptions mines bracket-delimited usage tokens for options. This is
// the recovery path for tools whose help is just a usage synopsis like
// "usage: ls [-ABCFGHILOPRSTUW@abcdefghiklmnopqrstuvwxy1%,] [file ...]"
// with no aligned description column.
func fallbackOptions(helpText string) []Option {
	var opts []Option
	for _, m := range bracketPattern.FindAllStringSubmatch(helpText, -1) {
		token := strings.TrimSpace(m[1])
		if token == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(token), "usage") {
			continue
		}
		if !strings.HasPrefix(token, "-") {
			continue
		}
		if !strings.Contains(token, " ") && len(token) > 2 {
			// Packed bundle like -abc: one boolean flag per character.
			for _, c := range token[1:] {
				opts = append(opts, Option{Short: "-" + string(c), Description: defaultDescription})
			}
			continue
		}
		fields := strings.Fields(token)
		opt := Option{Short: fields[0], Description: defaultDescription}
		if len(fields) > 1 {
			opt.Arg = fields[1]
		}
		if len(fields) > 2 {
			opt.Description = strings.Join(fields[2:], " ")
		}
		opts = append(opts, opt)
	}
	return opts
}
