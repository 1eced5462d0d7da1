package edit

import (
	"strings"

	"github.com/0xalexb/nsconf/syntax"
)

// lineStart returns the offset of the first byte of the line holding offset.
func lineStart(text string, offset int) int {
	return strings.LastIndexByte(text[:offset], syntax.Newline) + 1
}

// lineIndent returns the leading blanks of the line holding offset.
func lineIndent(text string, offset int) string {
	start := lineStart(text, offset)

	end := start
	for end < len(text) && isIndent(text[end]) {
		end++
	}

	return text[start:end]
}

func isIndent(c byte) bool {
	return c == ' ' || c == '\t'
}

func isBlank(s string) bool {
	return strings.TrimLeft(s, " \t") == ""
}
