package helpers

import (
	"strings"
	"testing"
)

// unquoteArg reverses QuoteArg's escaping rules for round-trip checks.
func unquoteArg(t *testing.T, quoted string) string {
	t.Helper()

	if !strings.HasPrefix(quoted, `"`) || !strings.HasSuffix(quoted, `"`) || len(quoted) < 2 {
		t.Fatalf("expected a double-quoted string, got %q", quoted)
	}
	inner := quoted[1 : len(quoted)-1]

	var b strings.Builder
	escaped := false
	for _, r := range inner {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			b.WriteRune(r)
			continue
		}
		switch r {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '$':
			b.WriteByte('$')
		default:
			t.Fatalf("unexpected escape sequence \\%c in %q", r, quoted)
		}
		escaped = false
	}
	if escaped {
		t.Fatalf("dangling backslash in %q", quoted)
	}
	return b.String()
}

func TestQuoteArgPassthrough(t *testing.T) {
	// No space, double quote, or dollar sign: returned unchanged.
	args := []string{
		"",
		"--testnet-magic",
		"42",
		"/usr/local/bin/cardano-cli",
		"key=value",
		"with'single'quotes",
		"tab\tand\nnewline", // control chars alone do not trigger quoting
	}
	for _, arg := range args {
		if got := QuoteArg(arg); got != arg {
			t.Errorf("QuoteArg(%q) = %q, want unchanged", arg, got)
		}
	}
}

func TestQuoteArgEscaping(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "space", arg: "hello world", want: `"hello world"`},
		{name: "double quote", arg: `say "hi"`, want: `"say \"hi\""`},
		{name: "dollar", arg: "$HOME", want: `"\$HOME"`},
		{name: "backslash with space", arg: `a \ b`, want: `"a \\ b"`},
		{name: "newline with space", arg: "a \nb", want: `"a \nb"`},
		{name: "tab with space", arg: "a \tb", want: `"a \tb"`},
		{name: "carriage return with space", arg: "a \rb", want: `"a \rb"`},
		{name: "everything", arg: "x $\"\\\n\r\t y", want: `"x \$\"\\\n\r\t y"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuoteArg(tt.arg)
			if got != tt.want {
				t.Fatalf("QuoteArg(%q) = %q, want %q", tt.arg, got, tt.want)
			}
			if back := unquoteArg(t, got); back != tt.arg {
				t.Errorf("unquote(QuoteArg(%q)) = %q, want original", tt.arg, back)
			}
		})
	}
}

func TestQuoteArgRoundTrip(t *testing.T) {
	// Any input that triggers quoting must survive the escape/unescape cycle.
	inputs := []string{
		" ",
		"$",
		`"`,
		"a b c",
		`--description="genesis delegate"`,
		"PATH=$PATH:/opt/bin",
		"multi\nline \"quoted\" $var\twith\rall of it",
	}
	for _, in := range inputs {
		quoted := QuoteArg(in)
		if !strings.HasPrefix(quoted, `"`) || !strings.HasSuffix(quoted, `"`) {
			t.Errorf("QuoteArg(%q) = %q, expected wrapping quotes", in, quoted)
			continue
		}
		if back := unquoteArg(t, quoted); back != in {
			t.Errorf("round trip of %q gave %q", in, back)
		}
	}
}

func TestQuoteArgNotIdempotent(t *testing.T) {
	// Quoting an already-quoted string nests the escaping; if these ever
	// become equal, something is silently dropping a quoting pass.
	arg := `say "hi"`
	once := QuoteArg(arg)
	twice := QuoteArg(once)
	if once == twice {
		t.Fatalf("QuoteArg is unexpectedly idempotent for %q: %q", arg, once)
	}
	if unquoteArg(t, unquoteArg(t, twice)) != arg {
		t.Fatalf("double unquote of %q did not recover %q", twice, arg)
	}
}
