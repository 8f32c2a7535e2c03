package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	logpkg "github.com/dshills/goculture/internal/log"
	"github.com/dshills/goculture/pkg/culture"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// Exit codes. Failure and undetermined mirror the rolled-up outcome of the
// evaluation pass; setup errors exit before any report line is printed.
const (
	exitFailure      = 1
	exitUndetermined = 2
	exitSetup        = 3
)

// exitErr carries a numeric exit code through the cobra error path. An
// empty message means the report already told the user everything.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// cultureFlags holds the parsed command line flags.
type cultureFlags struct {
	manifestPath    string
	checklistPath   string
	customRulesPath string
	verbose         bool
	noColor         bool
	logFormat       string
}

func main() {
	var flags cultureFlags
	root := &cobra.Command{
		Use:     "goculture",
		Short:   "Check a Go project against best-practice culture rules",
		Long:    "goculture evaluates a Go project's repository against a set of best-practice rules (documentation files, clean build, passing tests, ...) and reports a per-rule verdict plus a summary.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCulture(flags)
		},
	}

	f := root.Flags()
	f.StringVar(&flags.manifestPath, "manifest-path", "./go.mod", "Location of the go.mod for the project to check")
	f.StringVar(&flags.checklistPath, "culture-checklist-path", "", "File containing a line-separated list of rule descriptions to check; when absent, a .culture file is searched for in the project directory and its ancestors")
	f.StringVar(&flags.customRulesPath, "custom-rules-path", "", "YAML file defining additional expression rules; when absent, a .culture.yaml next to the manifest is used if present")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Emit extraneous explanations and superfluous details")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable report coloring")
	f.StringVar(&flags.logFormat, "log-format", "text", "Diagnostic log format: text or json")

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			if ee.msg != "" {
				fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			}
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(exitSetup)
	}
}

func runCulture(flags cultureFlags) error {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	handler, err := logpkg.NewHandler(os.Stderr, level, logpkg.Format(flags.logFormat))
	if err != nil {
		return codeError(exitSetup, "--log-format must be text or json, got %q", flags.logFormat)
	}
	slog.SetDefault(slog.New(handler))

	rules, err := assembleRules(flags)
	if err != nil {
		return codeError(exitSetup, "%s", err)
	}

	printer := culture.NewPrinter(os.Stdout)
	if !flags.noColor && termenv.ColorProfile() != termenv.Ascii {
		printer = culture.NewColorPrinter(os.Stdout)
	}

	outcomes, err := culture.CheckWithPrinter(context.Background(), flags.manifestPath, flags.verbose, printer, rules)
	if err != nil {
		return codeError(exitSetup, "checking culture: %s", err)
	}

	if code := outcomes.Stats().ExitCode(); code != 0 {
		// The report already explains the result; exit silently.
		return &exitErr{code: code}
	}
	return nil
}

// assembleRules builds the rule sequence for this run: the default catalog,
// plus any custom expression rules, narrowed by a checklist when one is
// given or discovered.
func assembleRules(flags cultureFlags) ([]culture.Rule, error) {
	rules := culture.DefaultRules()

	customPath := flags.customRulesPath
	if customPath == "" {
		candidate := filepath.Join(filepath.Dir(flags.manifestPath), culture.DefaultCustomRulesFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			customPath = candidate
		}
	}
	if customPath != "" {
		custom, err := culture.LoadCustomRules(customPath)
		if err != nil {
			return nil, err
		}
		rules = append(rules, custom...)
	}

	checklistPath := flags.checklistPath
	if checklistPath != "" {
		if info, err := os.Stat(checklistPath); err != nil || info.IsDir() {
			return nil, fmt.Errorf("%w: %s", culture.ErrChecklistUnreadable, checklistPath)
		}
	} else {
		// Resolve to an absolute directory first: the ancestor walk stops at
		// "." for a relative manifest path and would never leave it.
		dir := filepath.Dir(flags.manifestPath)
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		if found, ok := culture.FindChecklistFile(dir); ok {
			checklistPath = found
		}
	}
	if checklistPath == "" {
		return rules, nil
	}

	descriptions, err := culture.LoadChecklist(checklistPath)
	if err != nil {
		return nil, err
	}
	return culture.Filter(rules, descriptions, func(description, closest string) {
		slog.Warn("checklist entry matches no rule",
			slog.String("description", description),
			slog.String("closest", closest),
		)
	}), nil
}
