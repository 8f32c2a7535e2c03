package culture

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes report lines to an output sink, optionally coloring the
// outcome tokens. The line format is part of the reporting contract:
//
//	<description> ... <ok|FAILED|undetermined>
//
// followed by a summary line:
//
//	culture result: <ok|FAILED>. <N> passed. <N> failed. <N> undetermined.
type Printer struct {
	w          io.Writer
	okStyle    lipgloss.Style
	failStyle  lipgloss.Style
	undetStyle lipgloss.Style
}

// NewPrinter returns a plain, uncolored printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewColorPrinter returns a printer that colors ok green and FAILED and
// undetermined red, in the manner of test runners.
func NewColorPrinter(w io.Writer) *Printer {
	return &Printer{
		w:          w,
		okStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		failStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		undetStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Writer exposes the underlying sink so rule diagnostics can interleave
// with the report.
func (p *Printer) Writer() io.Writer { return p.w }

// BeginRule writes the rule's description, leaving the line open so the
// outcome token appears once evaluation completes. On an unbuffered sink
// this lets the user see which rule a slow subprocess belongs to.
func (p *Printer) BeginRule(description string) {
	fmt.Fprintf(p.w, "%s ... ", description)
}

// EndRule completes a report line with the outcome token.
func (p *Printer) EndRule(o Outcome) {
	fmt.Fprintf(p.w, "%s\n", p.render(o))
}

// Summary writes the aggregate result line for a completed pass.
func (p *Printer) Summary(s OutcomeStats) {
	conclusion := p.render(OutcomeFailure)
	if s.IsSuccess() {
		conclusion = p.render(OutcomeSuccess)
	}
	fmt.Fprintf(p.w, "culture result: %s. %d passed. %d failed. %d undetermined.\n",
		conclusion, s.SuccessCount, s.FailCount, s.UndeterminedCount)
}

func (p *Printer) render(o Outcome) string {
	switch o {
	case OutcomeSuccess:
		return p.okStyle.Render(o.String())
	case OutcomeFailure:
		return p.failStyle.Render(o.String())
	default:
		return p.undetStyle.Render(o.String())
	}
}
