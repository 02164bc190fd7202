package console

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olapgo/driver-test-harness/framework/assertions"
	"github.com/olapgo/driver-test-harness/framework/opt"
	"github.com/olapgo/driver-test-harness/framework/text"
)

func TestPrintFailureBlocks(t *testing.T) {
	color.NoColor = true

	f := assertions.Compare(text.Fold("a\nb"), opt.Some("a"+text.NL+"c"), true, "")
	require.NotNil(t, f)

	var buf strings.Builder
	Printer{Out: &buf, ShowDiff: true}.PrintFailure(f)

	out := buf.String()
	assert.Contains(t, out, "Expected:"+text.NL+"a"+text.NL+"b"+text.NL)
	assert.Contains(t, out, "Actual:"+text.NL+"a"+text.NL+"c"+text.NL)
	assert.Contains(t, out, "Actual Go:"+text.NL)
	assert.Contains(t, out, "Diff:"+text.NL)
	assert.Contains(t, out, "-b")
	assert.Contains(t, out, "+c")
}

func TestPrintFailureNilIsNoop(t *testing.T) {
	var buf strings.Builder
	Printer{Out: &buf}.PrintFailure(nil)
	assert.Equal(t, "", buf.String())
}
