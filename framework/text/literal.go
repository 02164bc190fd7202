package text

import (
	"regexp"
	"strings"
)

const literalIndent = "                "

var (
	lineBreakPattern = regexp.MustCompile("\r\n|\r|\n")
	tabPattern       = regexp.MustCompile("\t")
)

// ToLiteral converts a string (which may contain quotes, tabs and line
// breaks) into a Go string literal that can be pasted into a test
// expectation.
//
// For example,
//
//	string with "quotes" split
//	across lines
//
// becomes
//
//	Fold(
//	                "string with \"quotes\" split\n" +
//	                "across lines")
//
// Multi-line results are wrapped in a Fold call so that the pasted literal
// reproduces the original string on any platform. This is diagnostic output
// only; it never affects whether a comparison passes.
func ToLiteral(s string) string {
	continuation := `\n"` + NL + literalIndent + `+ "`
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = lineBreakPattern.ReplaceAllLiteralString(s, continuation)
	s = tabPattern.ReplaceAllLiteralString(s, `\t`)
	s = `"` + s + `"`
	spurious := NL + literalIndent + `+ ""`
	if strings.HasSuffix(s, spurious) {
		s = s[:len(s)-len(spurious)]
	}
	if strings.Contains(s, continuation) {
		s = "Fold(" + NL + literalIndent + s + ")"
	}
	return s
}
