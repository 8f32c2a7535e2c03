package culture

import (
	"fmt"
	"io"

	"github.com/dshills/goculture/pkg/gomod"
)

// Rule is the core abstraction of this package: an independent, named check
// of a project-level idiom or best practice.
//
// A rule's description serves as its unique identifier for checklist
// filtering as well as its human-readable report label, so no two rules in
// one catalog may share a description. Implementations must be immutable
// after construction.
type Rule interface {
	// Description is the central tenet of the rule: a stable, non-empty
	// string naming what it checks.
	Description() string

	// Evaluate reports whether the project described by ctx upholds the
	// rule. Implementations must not mutate the context and must express
	// any inability to determine an answer as OutcomeUndetermined rather
	// than panicking, so that one uncheckable rule never aborts a run.
	Evaluate(ctx *Context) Outcome
}

// Context is the immutable bundle of project facts shared by every rule
// during one evaluation pass. It is constructed once per run, never mutated
// afterward, and passed by reference to each rule in turn.
type Context struct {
	// ManifestPath is the resolved location of the project's go.mod.
	ManifestPath string
	// RootDir is the directory containing the manifest.
	RootDir string
	// Metadata is the parsed package metadata, or nil when the metadata
	// query failed; MetadataErr then says why.
	Metadata *gomod.Metadata
	// MetadataErr is the metadata query failure, if any. It wraps
	// gomod.ErrInvalidManifest when the manifest itself was rejected.
	MetadataErr error
	// Verbose asks rules to write additional human-oriented detail to Output.
	Verbose bool
	// Output is the sink for diagnostic text. By convention rules write to
	// it only when Verbose is set.
	Output io.Writer
}

// Verbosef writes a formatted diagnostic line to the output sink when
// verbose mode is enabled.
func (c *Context) Verbosef(format string, args ...any) {
	if c.Verbose && c.Output != nil {
		fmt.Fprintf(c.Output, format+"\n", args...)
	}
}
