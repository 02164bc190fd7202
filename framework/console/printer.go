// Package console renders comparison failures for humans. Nothing here
// affects pass/fail; it only decides what the person reading the output sees.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/olapgo/driver-test-harness/framework/assertions"
	"github.com/olapgo/driver-test-harness/framework/text"
)

var headerColor = color.New(color.Bold)            //nolint:gochecknoglobals
var expectedColor = color.New(color.FgGreen)       //nolint:gochecknoglobals
var actualColor = color.New(color.FgRed)           //nolint:gochecknoglobals
var literalColor = color.New(color.Faint)          //nolint:gochecknoglobals
var diffInsertColor = color.New(color.FgGreen)     //nolint:gochecknoglobals
var diffDeleteColor = color.New(color.FgRed)       //nolint:gochecknoglobals
var diffEqualColor = color.New(color.Faint)        //nolint:gochecknoglobals

// Printer writes failure reports to a single destination.
type Printer struct {
	Out io.Writer

	// ShowDiff appends a character-level diff block after the standard
	// Expected/Actual blocks.
	ShowDiff bool
}

// PrintFailure writes the three-block failure layout, colorized, followed by
// an optional diff of expected versus actual.
func (p Printer) PrintFailure(f *assertions.ComparisonFailure) {
	if f == nil {
		return
	}
	expected, expOK := f.Expected.Get()
	actual, actOK := f.Actual.Get()

	_, _ = headerColor.Fprint(p.Out, "Expected:"+text.NL)
	_, _ = expectedColor.Fprint(p.Out, valueOrAbsent(expected, expOK)+text.NL)
	_, _ = headerColor.Fprint(p.Out, "Actual:"+text.NL)
	_, _ = actualColor.Fprint(p.Out, valueOrAbsent(actual, actOK)+text.NL)
	if actOK {
		_, _ = headerColor.Fprint(p.Out, "Actual Go:"+text.NL)
		_, _ = literalColor.Fprint(p.Out, text.ToLiteral(actual)+text.NL)
	}
	if p.ShowDiff && expOK && actOK {
		_, _ = headerColor.Fprint(p.Out, "Diff:"+text.NL)
		p.printDiff(expected, actual)
	}
}

func (p Printer) printDiff(expected, actual string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			_, _ = diffDeleteColor.Fprintf(p.Out, "-%s", d.Text)
		case diffmatchpatch.DiffInsert:
			_, _ = diffInsertColor.Fprintf(p.Out, "+%s", d.Text)
		case diffmatchpatch.DiffEqual:
			_, _ = diffEqualColor.Fprint(p.Out, d.Text)
		}
	}
	_, _ = fmt.Fprint(p.Out, text.NL)
}

func valueOrAbsent(v string, ok bool) string {
	if !ok {
		return "(absent)"
	}
	return v
}
