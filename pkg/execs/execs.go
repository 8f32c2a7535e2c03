// Package execs runs external commands on behalf of rules and collaborators,
// capturing their output and distinguishing "could not be started" from
// "ran and exited non-zero". That distinction is what lets callers report
// an undetermined check instead of a failed one when a tool is missing.
package execs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

var (
	// ErrEmptyCommand is returned when no command name is given.
	ErrEmptyCommand = errors.New("empty command")
	// ErrNotSpawned wraps failures to start the process at all, such as a
	// missing binary. A process that started and exited non-zero does not
	// produce this error; its status is reported through Result.ExitCode.
	ErrNotSpawned = errors.New("command could not be started")
)

// Result holds the captured output and exit status of a completed subprocess.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status zero.
func (r *Result) Success() bool { return r.ExitCode == 0 }

// Run executes name with args in dir, blocking until the process completes.
// A non-zero exit is not an error: the Result carries the exit code and any
// output. The returned error is non-nil only when the process never ran.
func Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	if name == "" {
		return nil, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger := slog.With(slog.String("command", commandString(name, args)), slog.String("dir", dir))
	start := time.Now()

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			logger.Debug("command did not start", slog.Any("error", err))
			return nil, fmt.Errorf("%w: %w", ErrNotSpawned, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	logger.Debug("command completed",
		slog.Int("exit_code", result.ExitCode),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func commandString(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return fmt.Sprintf("%s %s", name, strings.Join(args, " "))
}
