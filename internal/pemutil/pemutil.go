// Package pemutil normalizes PEM text that arrives via environment
// variables, .env files, or copy-paste, where escaping and whitespace
// damage is common.
package pemutil

import "strings"

const (
	beginMarker = "-----BEGIN"
	endMarker   = "-----END"
)

// Normalize repairs a pasted or environment-sourced PEM string into
// canonical form:
//
//   - strips a UTF-8 byte-order mark
//   - strips wrapping single or double quotes (all layers)
//   - converts escaped \r\n, \n, and \r sequences to real newlines
//   - converts literal CRLF and CR line endings to LF
//   - trims surrounding whitespace from every line and drops empty lines
//   - if BEGIN/END delimiter lines are present, keeps only that region
//   - guarantees a single trailing newline
//
// Normalize is idempotent. The output is also the protocol's identity for
// a key: two keys are "the same" exactly when their normalized PEM
// strings are equal. An empty or whitespace-only input normalizes to "".
func Normalize(raw string) string {
	s := strings.TrimPrefix(raw, "\uFEFF")
	s = strings.TrimSpace(s)
	s = stripQuotes(s)

	// .env files often hold the key on one line with escaped newlines.
	if strings.Contains(s, `\n`) || strings.Contains(s, `\r`) {
		s = strings.ReplaceAll(s, `\r\n`, "\n")
		s = strings.ReplaceAll(s, `\n`, "\n")
		s = strings.ReplaceAll(s, `\r`, "\n")
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	lines = extractBounded(lines)
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// stripQuotes removes matching wrapping quotes until none remain. A value
// ends up doubly wrapped when a quoted .env entry is itself pasted inside
// quotes.
func stripQuotes(s string) string {
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first != last || (first != '"' && first != '\'') {
			return s
		}
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// extractBounded returns only the lines from the first BEGIN delimiter
// through its matching END delimiter, when both exist. Text around the
// delimiters (shell prompts, labels, stray output) is discarded.
func extractBounded(lines []string) []string {
	begin, end := -1, -1
	for i, line := range lines {
		if begin == -1 && strings.HasPrefix(line, beginMarker) {
			begin = i
		}
		if begin != -1 && strings.HasPrefix(line, endMarker) {
			end = i
			break
		}
	}
	if begin == -1 || end == -1 {
		return lines
	}
	return lines[begin : end+1]
}
