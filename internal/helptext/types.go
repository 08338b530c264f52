package helptext

// Option represents a single CLI flag recognized in a program's help output.
type Option struct {
	Short       string // Short flag token (e.g. "-o"), empty if none.
	Long        string // Long flag token (e.g. "--output"), empty if none.
	Arg         string // Uppercase value placeholder (e.g. "FILE"), empty for boolean flags.
	Description string // Trimmed free-text description.
}

// TakesValue reports whether the option expects a value after its flag token.
func (o Option) TakesValue() bool {
	return o.Arg != ""
}

// Flag returns the token placed on the command line when this option is
// selected: the long form when present, otherwise the short form.
func (o Option) Flag() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// key identifies an option for de-duplication. Two lines describing the same
// (short, long) pair collapse to the first occurrence.
func (o Option) key() [2]string {
	return [2]string{o.Short, o.Long}
}

// Model is an ordered list of options, in order of first appearance in the
// help text. Extract never mutates a Model after returning it.
type Model []Option
