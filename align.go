package textsim

import "strings"

// PrefixWords is the number of leading reference words used as the
// generators' prompt.
const PrefixWords = 5

// Offset returns the rune index where the continuation after the first
// PrefixWords words of line begins.
func Offset(line string) int {
	return OffsetWords(line, PrefixWords)
}

// OffsetWords returns the summed rune length of the first n words of line
// plus n-1 separating spaces. Lines with fewer than n words still get the
// full n-1 separators.
func OffsetWords(line string, n int) int {
	if n <= 0 {
		return 0
	}
	words := strings.Fields(line)
	if len(words) > n {
		words = words[:n]
	}

	offset := n - 1
	for _, w := range words {
		offset += len([]rune(w))
	}
	return offset
}

// Slice returns the runes of s in [start, end). Out-of-range bounds are
// clamped, so it never panics and returns "" for an empty range.
func Slice(s string, start, end int) string {
	runes := []rune(s)
	if end > len(runes) {
		end = len(runes)
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// Tail strips the prompt prefix of reference from both lines.
func Tail(reference, generated string) (string, string) {
	return TailWords(PrefixWords, reference, generated)
}

// TailWords is Tail with an n-word prompt.
func TailWords(n int, reference, generated string) (string, string) {
	offset := OffsetWords(reference, n)
	return Slice(reference, offset, len([]rune(reference))),
		Slice(generated, offset, len([]rune(generated)))
}

// Window strips the prompt prefix of reference from every line and
// truncates all of them to the length of the shortest line.
func Window(reference string, generated ...string) (string, []string) {
	return WindowWords(PrefixWords, reference, generated...)
}

// WindowWords is Window with an n-word prompt.
func WindowWords(n int, reference string, generated ...string) (string, []string) {
	offset := OffsetWords(reference, n)

	minLen := len([]rune(reference))
	for _, g := range generated {
		if n := len([]rune(g)); n < minLen {
			minLen = n
		}
	}

	gens := make([]string, len(generated))
	for i, g := range generated {
		gens[i] = Slice(g, offset, minLen)
	}
	return Slice(reference, offset, minLen), gens
}
