package culture

import (
	"errors"

	"github.com/dshills/goculture/pkg/gomod"
)

// ManifestReadable checks that the project's manifest parses cleanly under
// the package-metadata query. Every other metadata-dependent rule degrades
// to undetermined when this one fails, so it leads the default catalog.
type ManifestReadable struct{}

func (ManifestReadable) Description() string {
	return "Should have a well-formed go.mod file readable by `go mod edit`."
}

func (ManifestReadable) Evaluate(ctx *Context) Outcome {
	switch {
	case ctx.Metadata != nil:
		return OutcomeSuccess
	case errors.Is(ctx.MetadataErr, gomod.ErrInvalidManifest):
		// The query ran and rejected the manifest.
		return OutcomeFailure
	default:
		// The tool could not be invoked, or produced unusable output.
		return OutcomeUndetermined
	}
}
