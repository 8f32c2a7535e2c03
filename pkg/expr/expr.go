// Package expr provides the CEL (Common Expression Language) environment
// used by user-defined culture rules.
//
// Expressions are evaluated against two variables:
//   - `files` (list<string>): all file paths under the project root
//   - `dir` (string): the project root directory
//
// and must return a boolean. Custom path functions are available:
//   - pathBase(string): the last element of the path (filename)
//   - pathDir(string): all but the last element of the path
//   - pathExt(string): the file extension including the dot
//
// together with the standard CEL strings and lists extensions, so
// expressions like
//
//	files.exists(f, pathBase(f) == "Makefile")
//	!files.exists(f, pathExt(f) == ".exe")
//
// work as expected.
package expr

import (
	"fmt"
	"path/filepath"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/ext"
)

// Environment wraps a CEL environment preconfigured for file-list
// expressions.
type Environment struct {
	env *cel.Env
}

// NewEnvironment creates an Environment with the file-list variables and
// path helper functions registered.
func NewEnvironment() (*Environment, error) {
	opts := []cel.EnvOption{
		ext.Strings(),
		ext.Lists(),
		cel.Variable("files", cel.ListType(cel.StringType)),
		cel.Variable("dir", cel.StringType),
	}
	opts = append(opts, pathFunctions()...)

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	return &Environment{env: env}, nil
}

// Compile compiles a CEL expression into an evaluable program.
//
//nolint:ireturn // Following CEL's function signature.
func (e *Environment) Compile(expression string) (cel.Program, error) {
	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile expression: %w", issues.Err())
	}
	program, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	return program, nil
}

func pathFunctions() []cel.EnvOption {
	return []cel.EnvOption{
		cel.Function("pathBase",
			cel.Overload("path_base", []*cel.Type{cel.StringType}, cel.StringType,
				cel.UnaryBinding(pathUnary("pathBase", fileBase)),
			),
		),
		cel.Function("pathDir",
			cel.Overload("path_dir", []*cel.Type{cel.StringType}, cel.StringType,
				cel.UnaryBinding(pathUnary("pathDir", fileDir)),
			),
		),
		cel.Function("pathExt",
			cel.Overload("path_ext", []*cel.Type{cel.StringType}, cel.StringType,
				cel.UnaryBinding(pathUnary("pathExt", fileExt)),
			),
		),
	}
}

// pathUnary adapts a string-to-string path helper to a CEL unary binding.
func pathUnary(name string, fn func(string) string) func(ref.Val) ref.Val {
	return func(path ref.Val) ref.Val {
		s, ok := path.(types.String)
		if !ok {
			return types.NewErr("%s: expected a string, got %s", name, path.Type())
		}
		return types.String(fn(string(s)))
	}
}

func fileBase(p string) string { return filepath.Base(p) }
func fileDir(p string) string  { return filepath.Dir(p) }
func fileExt(p string) string  { return filepath.Ext(p) }
