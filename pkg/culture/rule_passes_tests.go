package culture

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dshills/goculture/pkg/execs"
	"github.com/dshills/goculture/pkg/gomod"
)

// PassesMultipleTests spawns the project's test step and parses its
// structured event stream. Even brand-new projects get a dummy test nearly
// for free, so the bar is at least two tests, all passing.
type PassesMultipleTests struct{}

func (PassesMultipleTests) Description() string {
	return "Should have multiple tests which pass."
}

func (PassesMultipleTests) Evaluate(ctx *Context) Outcome {
	res, err := execs.Run(context.Background(), ctx.RootDir, gomod.GoCommand(), "test", "-json", "./...")
	if err != nil {
		ctx.Verbosef("test step could not be spawned: %s", err)
		return OutcomeUndetermined
	}

	summary, err := parseTestEvents(res.Stdout)
	if err != nil {
		ctx.Verbosef("could not parse test output: %s", err)
		return OutcomeUndetermined
	}
	if res.Success() && summary.Passed >= 2 && summary.Failed == 0 {
		return OutcomeSuccess
	}
	ctx.Verbosef("tests ran: %d passed, %d failed (exit code %d)", summary.Passed, summary.Failed, res.ExitCode)
	return OutcomeFailure
}

// testSummary aggregates a `go test -json` event stream.
type testSummary struct {
	Passed int
	Failed int
}

// testEvent is the subset of the test2json event schema this rule needs.
type testEvent struct {
	Action string `json:"Action"`
	Test   string `json:"Test"`
}

// parseTestEvents counts per-test pass and fail events. Package-level
// events (empty Test field) are ignored; a line that is not a JSON event
// makes the whole stream unparseable.
func parseTestEvents(stream string) (testSummary, error) {
	var summary testSummary
	scanner := bufio.NewScanner(strings.NewReader(stream))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var ev testEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			return testSummary{}, fmt.Errorf("unexpected test output line %q: %w", line, err)
		}
		if ev.Test == "" {
			continue
		}
		switch ev.Action {
		case "pass":
			summary.Passed++
		case "fail":
			summary.Failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return testSummary{}, fmt.Errorf("scanning test output: %w", err)
	}
	return summary, nil
}
