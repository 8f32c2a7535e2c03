package culture

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"

	"github.com/dshills/goculture/pkg/expr"
)

// DefaultCustomRulesFileName is the conventional name for a file defining
// additional expression rules, looked up next to the project manifest.
const DefaultCustomRulesFileName = ".culture.yaml"

// ErrInvalidCustomRules is the setup-level failure for a custom rules file
// that cannot be read, parsed, or compiled.
var ErrInvalidCustomRules = errors.New("invalid custom rules file")

// ExprRule is a user-defined rule whose check is a CEL expression over the
// project's file listing. A true result is a success, false a failure, and
// an expression that cannot be evaluated leaves the rule undetermined.
type ExprRule struct {
	description string
	program     cel.Program
}

// NewExprRule compiles match into an expression rule with the given
// description. Compile errors are returned to the caller: an expression
// that never parses is a configuration mistake, not an undetermined check.
func NewExprRule(description, match string) (*ExprRule, error) {
	if description == "" {
		return nil, fmt.Errorf("%w: rule with empty description", ErrInvalidCustomRules)
	}
	env, err := expr.NewEnvironment()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCustomRules, err)
	}
	program, err := env.Compile(match)
	if err != nil {
		return nil, fmt.Errorf("%w: rule %q: %w", ErrInvalidCustomRules, description, err)
	}
	return &ExprRule{description: description, program: program}, nil
}

func (r *ExprRule) Description() string { return r.description }

func (r *ExprRule) Evaluate(ctx *Context) Outcome {
	files, err := listProjectFiles(ctx.RootDir)
	if err != nil {
		ctx.Verbosef("could not list project files: %s", err)
		return OutcomeUndetermined
	}

	val, _, err := r.program.Eval(map[string]any{
		"files": files,
		"dir":   ctx.RootDir,
	})
	if err != nil {
		ctx.Verbosef("expression for %q failed to evaluate: %s", r.description, err)
		return OutcomeUndetermined
	}
	upheld, ok := val.Value().(bool)
	if !ok {
		ctx.Verbosef("expression for %q returned %T, not a boolean", r.description, val.Value())
		return OutcomeUndetermined
	}
	if upheld {
		return OutcomeSuccess
	}
	return OutcomeFailure
}

// customRulesFile is the YAML shape of a custom rules definition:
//
//	rules:
//	  - description: Should keep generated code out of version control.
//	    match: '!files.exists(f, pathBase(f).endsWith(".gen.go"))'
type customRulesFile struct {
	Rules []customRuleSpec `yaml:"rules"`
}

type customRuleSpec struct {
	Description string `yaml:"description"`
	Match       string `yaml:"match"`
}

// LoadCustomRules parses a custom rules YAML file into a slice of rules
// ready to append to a catalog.
func LoadCustomRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCustomRules, path)
	}
	var file customRulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidCustomRules, path, err)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for _, spec := range file.Rules {
		r, err := NewExprRule(spec.Description, spec.Match)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}
