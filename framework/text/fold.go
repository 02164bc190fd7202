// Package text provides line-ending canonicalization and literal rendering
// for platform-independent string comparison in TCK tests.
package text

import (
	"runtime"
	"strings"

	"github.com/olapgo/driver-test-harness/framework/opt"
)

// NL is the platform line separator: "\r\n" on Windows, "\n" elsewhere.
var NL = platformNL() //nolint:gochecknoglobals

func platformNL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// SafeString wraps a string whose line endings have all been converted to the
// platform separator. It can only be produced by Fold or FoldMaybe, so having
// one in hand is proof the conversion happened; this keeps unfolded values
// from being compared against folded ones by accident. The zero value is the
// absent string.
type SafeString struct {
	value opt.Maybe[string]
}

// Defined returns false for the zero (absent) SafeString.
func (s SafeString) Defined() bool { return s.value.IsDefined() }

// String returns the folded string, or "" if absent.
func (s SafeString) String() string { return s.value.Value() }

// Maybe returns the folded string as an optional value.
func (s SafeString) Maybe() opt.Maybe[string] { return s.value }

// Fold converts a string constant, in which line endings are represented as
// linefeed "\n", into platform-specific line endings.
func Fold(s string) SafeString {
	if NL != "\n" {
		s = strings.ReplaceAll(s, "\n", NL)
	}
	return SafeString{value: opt.Some(s)}
}

// FoldMaybe is Fold for an optional string; an absent value folds to the
// absent SafeString.
func FoldMaybe(s opt.Maybe[string]) SafeString {
	if !s.IsDefined() {
		return SafeString{}
	}
	return Fold(s.Value())
}

// Unfold reverses the effect of Fold: platform-specific line endings become
// linefeeds. When the platform separator is already "\n" it is the identity.
func Unfold(s string) string {
	if NL != "\n" {
		s = strings.ReplaceAll(s, NL, "\n")
	}
	return s
}

// UnfoldMaybe is Unfold for an optional string.
func UnfoldMaybe(s opt.Maybe[string]) opt.Maybe[string] {
	if !s.IsDefined() {
		return s
	}
	return opt.Some(Unfold(s.Value()))
}
