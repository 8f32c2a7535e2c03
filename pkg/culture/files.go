package culture

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// scanDirForFileNameMatch does a shallow scan of dir for a file whose name
// matches re. When requireNonempty is set, zero-length matches are skipped.
// An unreadable directory yields OutcomeUndetermined; a readable directory
// with no acceptable match yields OutcomeFailure, unless an entry that
// matched could not be inspected, in which case the answer is undetermined
// rather than a confident failure.
func scanDirForFileNameMatch(re *regexp.Regexp, dir string, requireNonempty bool) Outcome {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return OutcomeUndetermined
	}

	sawUnreadable := false
	for _, entry := range entries {
		if entry.IsDir() || !re.MatchString(entry.Name()) {
			continue
		}
		if !requireNonempty {
			return OutcomeSuccess
		}
		info, err := entry.Info()
		if err != nil {
			sawUnreadable = true
			continue
		}
		if info.Size() > 0 {
			return OutcomeSuccess
		}
	}
	if sawUnreadable {
		return OutcomeUndetermined
	}
	return OutcomeFailure
}

// vcsSubdirs are the metadata directories of popular version control
// systems, used both by the source-control rule and to prune file listings.
var vcsSubdirs = []string{".git", ".hg", ".bzr", ".svn", "_darcs"}

func isVCSDir(name string) bool {
	for _, d := range vcsSubdirs {
		if name == d {
			return true
		}
	}
	return false
}

// listProjectFiles walks the project tree rooted at root and returns the
// paths of all regular files, skipping version control metadata directories.
func listProjectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && isVCSDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
