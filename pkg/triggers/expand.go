package triggers

// MaxExpansions caps the number of alternatives a single pattern may
// expand into. Nested brace groups multiply, so user-supplied patterns
// could otherwise produce unbounded work; once the cap is hit the
// remaining alternatives are silently discarded.
const MaxExpansions = 100

// Expand performs shell-style brace expansion on a pattern.
// "docstring{s,}" becomes ["docstrings", "docstring"]; a pattern
// without braces expands to itself. An opening brace that never
// closes is treated as literal text.
func Expand(pattern string) []string {
	return expand(pattern, nil)
}

func expand(pattern string, out []string) []string {
	if len(out) >= MaxExpansions {
		return out
	}

	open := indexUnescaped(pattern, '{')
	if open < 0 {
		return append(out, pattern)
	}

	closing := matchingBrace(pattern, open)
	if closing < 0 {
		// Unmatched brace: keep it as literal text
		return append(out, pattern)
	}

	prefix := pattern[:open]
	body := pattern[open+1 : closing]
	suffix := pattern[closing+1:]

	for _, opt := range splitOptions(body) {
		if len(out) >= MaxExpansions {
			break
		}
		out = expand(prefix+opt+suffix, out)
	}
	return out
}

// indexUnescaped returns the index of the first occurrence of c that
// is not preceded by a backslash, or -1.
func indexUnescaped(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case c:
			return i
		}
	}
	return -1
}

// matchingBrace returns the index of the '}' closing the brace at
// position open, tracking nesting depth, or -1 when it never closes.
func matchingBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitOptions splits a brace body on commas at nesting depth zero,
// so "a,{b,c}" yields ["a", "{b,c}"].
func splitOptions(body string) []string {
	var opts []string
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				opts = append(opts, body[start:i])
				start = i + 1
			}
		}
	}
	return append(opts, body[start:])
}
