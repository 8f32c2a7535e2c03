package culture

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultChecklistFileName is the conventional name for a culture checklist
// file, used when searching a project's directory and its ancestors.
const DefaultChecklistFileName = ".culture"

// ErrChecklistUnreadable is the setup-level failure for a checklist file
// that cannot be opened or read.
var ErrChecklistUnreadable = errors.New("culture checklist unreadable")

// FindChecklistFile locates a checklist starting from the given path. If
// start is itself a file, it is returned directly; otherwise start (or its
// parent, when start does not exist) and each ancestor directory is searched
// for a file named DefaultChecklistFileName. The boolean reports whether
// anything was found.
func FindChecklistFile(start string) (string, bool) {
	info, err := os.Stat(start)
	switch {
	case err == nil && !info.IsDir():
		return start, true
	case err == nil:
		// start is a directory; search it and its ancestors.
	default:
		start = filepath.Dir(start)
	}

	dir := start
	for {
		candidate := filepath.Join(dir, DefaultChecklistFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadChecklist reads a checklist file: one rule description per line,
// trimmed, with blank lines ignored.
func LoadChecklist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrChecklistUnreadable, path)
	}
	defer f.Close()

	var descriptions []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			descriptions = append(descriptions, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrChecklistUnreadable, path, err)
	}
	return descriptions, nil
}

// UnmatchedFunc receives each requested description that matched no catalog
// entry, along with the closest catalog description as a suggestion.
type UnmatchedFunc func(description, closest string)

// Filter returns the subsequence of catalog whose descriptions exactly match
// one of the requested descriptions, preserving the catalog's original
// relative order. Requested descriptions with no match are silently dropped
// from the result; when onUnmatched is non-nil it is invoked for each so
// callers can surface a diagnostic. An empty request yields an empty rule
// set, which aggregates to a vacuous success.
func Filter(catalog []Rule, descriptions []string, onUnmatched UnmatchedFunc) []Rule {
	requested := make(map[string]bool, len(descriptions))
	for _, d := range descriptions {
		requested[d] = true
	}

	available := make(map[string]bool, len(catalog))
	filtered := make([]Rule, 0, len(descriptions))
	for _, r := range catalog {
		available[r.Description()] = true
		if requested[r.Description()] {
			filtered = append(filtered, r)
		}
	}

	if onUnmatched != nil {
		for _, d := range descriptions {
			if !available[d] {
				onUnmatched(d, closestDescription(d, catalog))
			}
		}
	}
	return filtered
}

// closestDescription returns the catalog description with the smallest edit
// distance from the given one, or "" for an empty catalog.
func closestDescription(description string, catalog []Rule) string {
	dmp := diffmatchpatch.New()
	closest := ""
	best := -1
	for _, r := range catalog {
		diffs := dmp.DiffMain(description, r.Description(), false)
		dist := dmp.DiffLevenshtein(diffs)
		if best < 0 || dist < best {
			best = dist
			closest = r.Description()
		}
	}
	return closest
}
