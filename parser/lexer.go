package parser

import "strings"

// sourceLine is a cleaned, non-empty source line paired with its original
// line number, for error reporting.
type sourceLine struct {
	text string
	line int
}

// cleanLines strips `#` line comments and surrounding whitespace from each
// line of source, dropping lines that are empty afterward.
func cleanLines(source string) []sourceLine {
	var out []sourceLine
	for i, raw := range strings.Split(source, "\n") {
		line := raw
		if idx := strings.IndexByte(line, '#'); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, sourceLine{text: line, line: i + 1})
	}
	return out
}

func isTokenChar(r byte) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '_' || r == '-'
}

// tokenize splits a line into maximal runs of alphanumeric, '_', or '-'
// characters; every other character is a delimiter (comma, whitespace,
// parens) and is discarded.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		if isTokenChar(c) {
			cur.WriteByte(c)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// splitLabels splits a line on ':'; every token but the last is a label
// (trimmed), the last is the remainder of the line (an instruction, a data
// row, or empty if the line was label(s)-only).
func splitLabels(line string) (labels []string, rest string) {
	parts := strings.Split(line, ":")
	for _, p := range parts[:len(parts)-1] {
		labels = append(labels, strings.TrimSpace(p))
	}
	return labels, strings.TrimSpace(parts[len(parts)-1])
}
