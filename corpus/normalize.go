package corpus

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize prepares one raw line for scoring.
// - Drops a single trailing carriage return left by CRLF files
// - Lower-cases with full Unicode case mapping
func Normalize(line string) string {
	line = strings.TrimSuffix(line, "\r")
	return cases.Lower(language.Und).String(line)
}

// blank reports whether a line has no visible content.
func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}
