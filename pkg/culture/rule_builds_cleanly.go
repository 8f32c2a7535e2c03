package culture

import (
	"context"
	"strings"

	"github.com/dshills/goculture/pkg/execs"
	"github.com/dshills/goculture/pkg/gomod"
)

// BuildsCleanly spawns the project's build step and requires a silent,
// successful run. The Go toolchain prints nothing on a clean build, so any
// diagnostic output at all counts as a warning.
//
// This rule blocks until the build completes; on a cold cache that may take
// a while.
type BuildsCleanly struct{}

func (BuildsCleanly) Description() string {
	return "Should `go build` without any warnings or errors."
}

func (BuildsCleanly) Evaluate(ctx *Context) Outcome {
	res, err := execs.Run(context.Background(), ctx.RootDir, gomod.GoCommand(), "build", "./...")
	if err != nil {
		ctx.Verbosef("build step could not be spawned: %s", err)
		return OutcomeUndetermined
	}
	if !res.Success() {
		ctx.Verbosef("build failed with exit code %d:\n%s", res.ExitCode, strings.TrimSpace(res.Stderr))
		return OutcomeFailure
	}
	if strings.TrimSpace(res.Stdout) != "" || strings.TrimSpace(res.Stderr) != "" {
		ctx.Verbosef("build succeeded but emitted diagnostics:\n%s%s", res.Stdout, res.Stderr)
		return OutcomeFailure
	}
	return OutcomeSuccess
}
