package triggers

import (
	"regexp"
	"strings"

	"github.com/Alb-O/openmodules/pkg/errors"
	"github.com/Alb-O/openmodules/pkg/logging"
)

// Wildcard is the bare pattern that matches unconditionally. It is
// never compiled to a regex; the matcher layer records it as an
// always-match flag instead.
const Wildcard = "*"

// wildcardChars are the glob metacharacters. A pattern containing any
// of them is matched as a free substring; a pattern without them gets
// word-boundary wrapping so "docstring" cannot match inside
// "docstringing".
const wildcardChars = "*?["

// Compile converts one trigger pattern into compiled regexes, one per
// brace-expansion alternative. Every regex is case-insensitive and
// matches across newlines. Malformed alternatives are dropped with a
// warning, so the result may be empty; an empty or bare-wildcard
// pattern yields nil.
func Compile(pattern string) []*regexp.Regexp {
	logger := logging.GetLogger("triggers.compile")

	pattern = strings.TrimSpace(pattern)
	if pattern == "" || pattern == Wildcard {
		return nil
	}

	wrap := !strings.ContainsAny(pattern, wildcardChars)

	var regexes []*regexp.Regexp
	for _, alt := range Expand(pattern) {
		frag, err := translate(alt)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("pattern", pattern).
				Str("alternative", alt).
				Msg("Dropping malformed trigger alternative")
			continue
		}

		if wrap {
			frag = `(?:^|[^A-Za-z0-9])(?:` + frag + `)(?:[^A-Za-z0-9]|$)`
		}

		re, err := regexp.Compile(`(?is)` + frag)
		if err != nil {
			// Character classes pass through verbatim, so the regexp
			// engine can still reject them (e.g. "[z-a]")
			logger.Warn().
				Err(err).
				Str("pattern", pattern).
				Str("alternative", alt).
				Msg("Dropping trigger alternative the regexp engine rejected")
			continue
		}
		regexes = append(regexes, re)
	}
	return regexes
}

// translate converts one expanded glob alternative into a regex source
// fragment.
func translate(alt string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(alt); i++ {
		c := alt[i]
		switch {
		case c == '\\':
			if i+1 < len(alt) {
				i++
				b.WriteString(regexp.QuoteMeta(string(alt[i])))
			} else {
				b.WriteString(`\\`)
			}
		case c == '*':
			// A run of stars still matches a single unbounded span
			for i+1 < len(alt) && alt[i+1] == '*' {
				i++
			}
			b.WriteString(`.*`)
		case c == '?':
			b.WriteByte('.')
		case c == '[':
			end := classEnd(alt, i)
			if end < 0 {
				return "", errors.New(errors.ErrPatternInvalid, "unterminated character class").
					WithDetail("alternative", alt)
			}
			// Character classes pass through verbatim
			b.WriteString(alt[i : end+1])
			i = end
		case c == ' ' || c == '\t':
			// Flexible whitespace, robust to formatting differences
			// in conversational text
			for i+1 < len(alt) && (alt[i+1] == ' ' || alt[i+1] == '\t') {
				i++
			}
			b.WriteString(`\s+`)
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return b.String(), nil
}

// classEnd returns the index of the ']' closing the character class
// opened at position open, or -1. A ']' directly after the opening
// '[' (or after "[^") belongs to the class body.
func classEnd(s string, open int) int {
	i := open + 1
	if i < len(s) && s[i] == '^' {
		i++
	}
	if i < len(s) && s[i] == ']' {
		i++
	}
	for ; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}
