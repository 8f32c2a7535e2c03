package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/goculture/pkg/culture"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestAssembleRules_DefaultsOnly(t *testing.T) {
	dir := t.TempDir()
	flags := cultureFlags{manifestPath: filepath.Join(dir, "go.mod")}

	rules, err := assembleRules(flags)
	if err != nil {
		t.Fatal(err)
	}
	if want := len(culture.DefaultRules()); len(rules) != want {
		t.Errorf("got %d rules, want %d", len(rules), want)
	}
}

func TestAssembleRules_ChecklistNarrowsCatalog(t *testing.T) {
	dir := t.TempDir()
	checklist := filepath.Join(dir, "checklist")
	writeFile(t, checklist, "Should be under source control.\n")

	flags := cultureFlags{
		manifestPath:  filepath.Join(dir, "go.mod"),
		checklistPath: checklist,
	}
	rules, err := assembleRules(flags)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	if rules[0].Description() != "Should be under source control." {
		t.Errorf("rule = %q", rules[0].Description())
	}
}

func TestAssembleRules_ChecklistDiscoveredNextToManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, culture.DefaultChecklistFileName),
		"Should have a LICENSE file in the project directory.\n")

	flags := cultureFlags{manifestPath: filepath.Join(dir, "go.mod")}
	rules, err := assembleRules(flags)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
}

func TestAssembleRules_RelativeManifestSearchesAncestors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, culture.DefaultChecklistFileName),
		"Should be under source control.\n")
	sub := filepath.Join(root, "svc")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(sub); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prevDir); err != nil {
			t.Fatal(err)
		}
	})

	rules, err := assembleRules(cultureFlags{manifestPath: "./go.mod"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 || rules[0].Description() != "Should be under source control." {
		t.Fatalf("rules = %v", descriptions(rules))
	}
}

func TestAssembleRules_ExplicitChecklistMustExist(t *testing.T) {
	dir := t.TempDir()
	flags := cultureFlags{
		manifestPath:  filepath.Join(dir, "go.mod"),
		checklistPath: filepath.Join(dir, "absent"),
	}
	_, err := assembleRules(flags)
	if !errors.Is(err, culture.ErrChecklistUnreadable) {
		t.Errorf("err = %v, want ErrChecklistUnreadable", err)
	}
}

func TestAssembleRules_CustomRulesAppended(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, culture.DefaultCustomRulesFileName), `rules:
  - description: Should have a Makefile.
    match: files.exists(f, pathBase(f) == "Makefile")
`)

	flags := cultureFlags{manifestPath: filepath.Join(dir, "go.mod")}
	rules, err := assembleRules(flags)
	if err != nil {
		t.Fatal(err)
	}
	if want := len(culture.DefaultRules()) + 1; len(rules) != want {
		t.Fatalf("got %d rules, want %d", len(rules), want)
	}
	if last := rules[len(rules)-1].Description(); last != "Should have a Makefile." {
		t.Errorf("last rule = %q", last)
	}
}

func TestAssembleRules_ChecklistSelectsCustomRule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, culture.DefaultCustomRulesFileName), `rules:
  - description: Should have a Makefile.
    match: files.exists(f, pathBase(f) == "Makefile")
`)
	writeFile(t, filepath.Join(dir, culture.DefaultChecklistFileName), "Should have a Makefile.\n")

	flags := cultureFlags{manifestPath: filepath.Join(dir, "go.mod")}
	rules, err := assembleRules(flags)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 || rules[0].Description() != "Should have a Makefile." {
		t.Fatalf("rules = %v", descriptions(rules))
	}
}

func TestAssembleRules_InvalidCustomRulesIsSetupError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, culture.DefaultCustomRulesFileName),
		"rules:\n  - description: Should parse.\n    match: 'files.exists('\n")

	flags := cultureFlags{manifestPath: filepath.Join(dir, "go.mod")}
	_, err := assembleRules(flags)
	if !errors.Is(err, culture.ErrInvalidCustomRules) {
		t.Errorf("err = %v, want ErrInvalidCustomRules", err)
	}
}

func TestExitErr(t *testing.T) {
	err := codeError(exitSetup, "bad flag %q", "x")
	var ee *exitErr
	if !errors.As(err, &ee) {
		t.Fatal("codeError did not produce an exitErr")
	}
	if ee.code != exitSetup {
		t.Errorf("code = %d, want %d", ee.code, exitSetup)
	}
	if ee.Error() != `bad flag "x"` {
		t.Errorf("msg = %q", ee.Error())
	}

	silent := &exitErr{code: exitFailure}
	if silent.Error() != "" {
		t.Errorf("silent exitErr should have no message, got %q", silent.Error())
	}
}

func descriptions(rules []culture.Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Description()
	}
	return out
}
