package culture

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
)

func TestNewExprRule(t *testing.T) {
	t.Run("empty description", func(t *testing.T) {
		_, err := NewExprRule("", "true")
		if !errors.Is(err, ErrInvalidCustomRules) {
			t.Errorf("err = %v, want ErrInvalidCustomRules", err)
		}
	})

	t.Run("expression does not compile", func(t *testing.T) {
		_, err := NewExprRule("Should parse.", "files.exists(")
		if !errors.Is(err, ErrInvalidCustomRules) {
			t.Errorf("err = %v, want ErrInvalidCustomRules", err)
		}
	})

	t.Run("description is preserved", func(t *testing.T) {
		r, err := NewExprRule("Should have a Makefile.", "true")
		if err != nil {
			t.Fatal(err)
		}
		if r.Description() != "Should have a Makefile." {
			t.Errorf("description = %q", r.Description())
		}
	})
}

func TestExprRule_Evaluate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Makefile", "all:\n")
	writeFile(t, dir, "docs/notes.txt", "x\n")
	ctx := &Context{RootDir: dir, Output: io.Discard}

	cases := []struct {
		name  string
		match string
		want  Outcome
	}{
		{"file present", `files.exists(f, pathBase(f) == "Makefile")`, OutcomeSuccess},
		{"file absent", `files.exists(f, pathBase(f) == "Rakefile")`, OutcomeFailure},
		{"extension check", `files.exists(f, pathExt(f) == ".txt")`, OutcomeSuccess},
		{"negation", `!files.exists(f, pathExt(f) == ".exe")`, OutcomeSuccess},
		{"uses dir variable", `dir != ""`, OutcomeSuccess},
		{"non-boolean result", `size(files)`, OutcomeUndetermined},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := NewExprRule("Should satisfy the expression.", c.match)
			if err != nil {
				t.Fatal(err)
			}
			if got := r.Evaluate(ctx); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestExprRule_UnlistableRootIsUndetermined(t *testing.T) {
	r, err := NewExprRule("Should satisfy the expression.", "true")
	if err != nil {
		t.Fatal(err)
	}
	ctx := &Context{RootDir: filepath.Join(t.TempDir(), "gone"), Output: io.Discard}
	if got := r.Evaluate(ctx); got != OutcomeUndetermined {
		t.Errorf("got %v, want undetermined", got)
	}
}

func TestLoadCustomRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".culture.yaml", `rules:
  - description: Should have a Makefile.
    match: files.exists(f, pathBase(f) == "Makefile")
  - description: Should keep generated code out of version control.
    match: '!files.exists(f, pathBase(f).endsWith(".gen.go"))'
`)

	rules, err := LoadCustomRules(filepath.Join(dir, ".culture.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	if rules[0].Description() != "Should have a Makefile." {
		t.Errorf("first description = %q", rules[0].Description())
	}
}

func TestLoadCustomRules_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCustomRules(filepath.Join(dir, "absent.yaml"))
		if !errors.Is(err, ErrInvalidCustomRules) {
			t.Errorf("err = %v, want ErrInvalidCustomRules", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		writeFile(t, dir, "bad.yaml", "rules: [\n")
		_, err := LoadCustomRules(filepath.Join(dir, "bad.yaml"))
		if !errors.Is(err, ErrInvalidCustomRules) {
			t.Errorf("err = %v, want ErrInvalidCustomRules", err)
		}
	})

	t.Run("uncompilable expression", func(t *testing.T) {
		writeFile(t, dir, "broken.yaml", "rules:\n  - description: Should parse.\n    match: 'files.exists('\n")
		_, err := LoadCustomRules(filepath.Join(dir, "broken.yaml"))
		if !errors.Is(err, ErrInvalidCustomRules) {
			t.Errorf("err = %v, want ErrInvalidCustomRules", err)
		}
	})
}
