package db

import "strings"

// SplitStatements splits dump text into executable statements on top-level
// semicolons. The scan tracks single and double quoted literals (including
// backslash escapes and doubled quotes) so a semicolon inside a string never
// ends a statement, and drops -- comment lines. Statements come back trimmed,
// blanks removed, in original order.
//
// Only comments that start a line are recognized; a trailing -- after
// statement text is kept as statement text, so dump content must not rely on
// inline comments (the exporter never writes any).
func SplitStatements(text string) []string {
	var statements []string
	var cur []byte

	flush := func() {
		if s := strings.TrimSpace(string(cur)); s != "" {
			statements = append(statements, s)
		}
		cur = cur[:0]
	}

	var inSingle, inDouble bool
	lineStart := true
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case inSingle:
			cur = append(cur, c)
			if c == '\\' && i+1 < len(text) {
				cur = append(cur, text[i+1])
				i++
			} else if c == '\'' {
				inSingle = false
			}
		case inDouble:
			cur = append(cur, c)
			if c == '\\' && i+1 < len(text) {
				cur = append(cur, text[i+1])
				i++
			} else if c == '"' {
				inDouble = false
			}
		case c == '\'':
			inSingle = true
			lineStart = false
			cur = append(cur, c)
		case c == '"':
			inDouble = true
			lineStart = false
			cur = append(cur, c)
		case c == '-' && lineStart && i+1 < len(text) && text[i+1] == '-':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			continue
		case c == ';':
			flush()
			lineStart = false
		default:
			cur = append(cur, c)
			if c == '\n' {
				lineStart = true
			} else if c != ' ' && c != '\t' && c != '\r' {
				lineStart = false
			}
		}
		i++
	}
	flush()

	return statements
}
