// Package culture evaluates a Go project's repository against a set of
// best-practice rules and reports a per-rule ok/FAILED/undetermined verdict
// plus an aggregate summary.
//
// The engine is deliberately small: a Rule is a named check over an
// immutable Context of project facts, an evaluation pass runs every rule in
// order against one shared context, and a checklist can narrow the default
// catalog to a user-selected subset by description matching. A rule that
// cannot determine an answer reports OutcomeUndetermined; it never aborts
// the rest of the pass.
package culture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dshills/goculture/pkg/gomod"
)

// ErrManifestNotFound is the setup-level failure for a manifest path that
// does not name an existing file. Setup failures abort the run before any
// rule executes; they are never folded into per-rule outcomes.
var ErrManifestNotFound = errors.New("manifest file not found")

// Check evaluates the default rule catalog against the project whose go.mod
// is at manifestPath, writing one plain report line per rule plus a summary
// to out. It returns the ordered outcome sequence, or a setup-level error
// if the manifest cannot be located.
func Check(ctx context.Context, manifestPath string, verbose bool, out io.Writer) (Outcomes, error) {
	return CheckRules(ctx, manifestPath, verbose, out, DefaultRules())
}

// CheckRules is Check with a caller-supplied rule sequence in place of the
// default catalog.
func CheckRules(ctx context.Context, manifestPath string, verbose bool, out io.Writer, rules []Rule) (Outcomes, error) {
	return CheckWithPrinter(ctx, manifestPath, verbose, NewPrinter(out), rules)
}

// CheckWithPrinter is the full-control entry point shared by the CLI and
// embedding callers: the printer decides how report lines are rendered,
// while the outcomes returned are identical regardless of rendering.
func CheckWithPrinter(ctx context.Context, manifestPath string, verbose bool, p *Printer, rules []Rule) (Outcomes, error) {
	rc, err := NewContext(ctx, manifestPath, verbose, p.Writer())
	if err != nil {
		return nil, err
	}

	outcomes := EvaluateRules(rules, rc, p)
	p.Summary(outcomes.Stats())
	return outcomes, nil
}

// NewContext resolves the manifest location, runs the package-metadata
// query, and assembles the immutable context shared by every rule in one
// pass. A missing manifest is a setup-level error. A metadata query failure
// is not; it is recorded on the context for rules to interpret.
func NewContext(ctx context.Context, manifestPath string, verbose bool, out io.Writer) (*Context, error) {
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("resolving manifest path %q: %w", manifestPath, err)
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, abs)
	}

	meta, metaErr := gomod.Query(ctx, abs)
	if metaErr != nil && verbose && out != nil {
		fmt.Fprintf(out, "metadata query failed: %s\n", metaErr)
	}

	return &Context{
		ManifestPath: abs,
		RootDir:      filepath.Dir(abs),
		Metadata:     meta,
		MetadataErr:  metaErr,
		Verbose:      verbose,
		Output:       out,
	}, nil
}

// EvaluateRules runs every rule in the given order against the shared
// context, writing one report line per rule as it goes, and returns the
// ordered outcome sequence. Rules are independent: none observes another's
// outcome, and a rule that panics is recorded as undetermined rather than
// aborting the batch.
func EvaluateRules(rules []Rule, ctx *Context, p *Printer) Outcomes {
	outcomes := make(Outcomes, 0, len(rules))
	for _, r := range rules {
		p.BeginRule(r.Description())
		outcome := evaluateRule(r, ctx)
		p.EndRule(outcome)
		outcomes = append(outcomes, OutcomeRecord{Description: r.Description(), Outcome: outcome})
	}
	return outcomes
}

func evaluateRule(r Rule, ctx *Context) (outcome Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			ctx.Verbosef("rule %q panicked: %v", r.Description(), rec)
			outcome = OutcomeUndetermined
		}
	}()
	return r.Evaluate(ctx)
}
