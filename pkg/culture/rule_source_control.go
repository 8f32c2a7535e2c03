package culture

import (
	"os"
	"path/filepath"
)

// UnderSourceControl checks that the project lives inside a version control
// working copy. The check is surface level: it looks for the hidden
// metadata subdirectory of a popular VCS (git, mercurial, bazaar, svn,
// darcs) in the project directory or any of its ancestors.
type UnderSourceControl struct{}

func (UnderSourceControl) Description() string {
	return "Should be under source control."
}

func (UnderSourceControl) Evaluate(ctx *Context) Outcome {
	dir := ctx.RootDir
	for {
		for _, sub := range vcsSubdirs {
			if info, err := os.Stat(filepath.Join(dir, sub)); err == nil && info.IsDir() {
				return OutcomeSuccess
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return OutcomeFailure
		}
		dir = parent
	}
}
