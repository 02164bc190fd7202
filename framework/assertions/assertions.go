// Package assertions implements the harness's verbose string comparison and
// error-trace checks. It deliberately has no dependency on any test runner;
// anything with Errorf and FailNow can consume it.
package assertions

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/olapgo/driver-test-harness/framework/opt"
	"github.com/olapgo/driver-test-harness/framework/text"
)

// TestContext is a minimal interface for types like *testing.T representing a
// test that can fail. Functions here use it to avoid a dependency on any
// specific test runner.
type TestContext interface {
	Errorf(msgFormat string, msgArgs ...interface{})
	FailNow()
}

// ComparisonFailure describes a mismatch between an expected and an actual
// string. It is immutable once built. Message holds the full human-readable
// block text; Expected and Actual carry the original values so callers can
// diff them programmatically.
type ComparisonFailure struct {
	Message  string
	Expected opt.Maybe[string]
	Actual   opt.Maybe[string]
}

func (f *ComparisonFailure) Error() string { return f.Message }

// Compare checks an actual string against an expected string whose line
// endings have already been folded to the platform representation. It returns
// nil when they match (both being absent also counts as a match), and a
// ComparisonFailure otherwise.
//
// The failure message has the layout
//
//	Expected:
//	<expected>
//	Actual:
//	<actual>
//	Actual Go:
//	<literal>
//
// where the "Actual Go:" block, included when genLiteral is true, renders the
// actual value as a pastable Go literal. A caller-supplied message, if any,
// is prefixed.
func Compare(expected text.SafeString, actual opt.Maybe[string], genLiteral bool, message string) *ComparisonFailure {
	exp := expected.Maybe()
	if !exp.IsDefined() && !actual.IsDefined() {
		return nil
	}
	if exp.IsDefined() && actual.IsDefined() && exp.Value() == actual.Value() {
		return nil
	}
	if message != "" {
		message += text.NL
	}
	message += "Expected:" + text.NL + renderValue(exp) + text.NL +
		"Actual:" + text.NL + renderValue(actual) + text.NL
	if genLiteral && actual.IsDefined() {
		message += "Actual Go:" + text.NL + text.ToLiteral(actual.Value()) + text.NL
	}
	return &ComparisonFailure{Message: message, Expected: exp, Actual: actual}
}

func renderValue(v opt.Maybe[string]) string {
	if !v.IsDefined() {
		return "(absent)"
	}
	return v.Value()
}

// AssertEqualsVerbose checks that actual matches expected, where expected is
// written with "\n" line endings and is folded before the comparison, so test
// expectations stay platform-neutral. On mismatch the test fails immediately
// with the verbose block message, including the pastable literal.
func AssertEqualsVerbose(t TestContext, expected, actual string) {
	AssertEqualsVerboseOpt(t, text.Fold(expected), opt.Some(actual), true, "")
}

// AssertEqualsVerboseOpt is AssertEqualsVerbose with every knob exposed: a
// pre-folded expected value, an optional actual value, control over literal
// generation, and a message to prefix on failure.
func AssertEqualsVerboseOpt(t TestContext, expected text.SafeString, actual opt.Maybe[string], genLiteral bool, message string) {
	if f := Compare(expected, actual, genLiteral, message); f != nil {
		t.Errorf("%s", f.Message)
		t.FailNow()
	}
}

// ErrorTrace formats an error as a diagnostic trace: the %+v rendering
// (which, for errors built with github.com/pkg/errors, includes the cause
// chain and stack), followed by any wrapped causes whose text is not already
// present.
func ErrorTrace(err error) string {
	if err == nil {
		return ""
	}
	trace := fmt.Sprintf("%+v", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		if !strings.Contains(trace, cause.Error()) {
			trace += text.NL + "caused by: " + cause.Error()
		}
	}
	return trace
}

// CheckFailure checks that err is non-nil and that its diagnostic trace
// contains pattern as a substring. Fails the test otherwise, quoting the full
// trace so the caller can see what was actually raised.
func CheckFailure(t TestContext, err error, pattern string) {
	if err == nil {
		t.Errorf("operation did not yield an error")
		t.FailNow()
		return
	}
	trace := ErrorTrace(err)
	if !strings.Contains(trace, pattern) {
		t.Errorf("error does not match pattern '%s'; error is [%s]", pattern, trace)
		t.FailNow()
	}
}
