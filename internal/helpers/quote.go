package helpers

import "strings"

// argUnsafe is the set of characters that make an argument unsafe to
// display bare on a shell-like command line.
const argUnsafe = " \"$"

// QuoteArg returns a display-safe representation of a command-line argument.
// Arguments containing a space, double quote, or dollar sign are wrapped in
// double quotes with the unsafe characters backslash-escaped; anything else
// is returned unchanged.
//
// The result is used in diagnostic messages only. Actual process invocation
// always passes argv vectors and never re-parses this output.
func QuoteArg(arg string) string {
	if !strings.ContainsAny(arg, argUnsafe) {
		return arg
	}

	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')
	for _, r := range arg {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '$':
			b.WriteString(`\$`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
