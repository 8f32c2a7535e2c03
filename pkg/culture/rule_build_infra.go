package culture

import (
	"os"
	"path/filepath"
	"regexp"
)

var (
	golangciFileRegexp = regexp.MustCompile(`^\.golangci\.(ya?ml|toml|json)$`)
	ciFileRegexp       = regexp.MustCompile(`^(?i)((appveyor|\.appveyor|\.drone|\.gitlab-ci|\.travis)\.ya?ml|Jenkinsfile.*)$`)
	workflowFileRegexp = regexp.MustCompile(`\.ya?ml$`)
)

// HasGolangciConfigFile checks for a golangci-lint configuration file at the
// project root. This is a presence check only; whether the linter actually
// runs clean is out of scope.
type HasGolangciConfigFile struct{}

func (HasGolangciConfigFile) Description() string {
	return "Should have a golangci-lint configuration file in the project directory."
}

func (HasGolangciConfigFile) Evaluate(ctx *Context) Outcome {
	return scanDirForFileNameMatch(golangciFileRegexp, ctx.RootDir, false)
}

// HasContinuousIntegrationFile checks for any file matching the filename
// conventions of common CI systems: GitHub Actions workflows, CircleCI,
// Travis, GitLab CI, AppVeyor, Drone, and Jenkins.
type HasContinuousIntegrationFile struct{}

func (HasContinuousIntegrationFile) Description() string {
	return "Should have a file suggesting the use of a continuous integration system."
}

func (HasContinuousIntegrationFile) Evaluate(ctx *Context) Outcome {
	if hasGitHubWorkflow(ctx.RootDir) {
		return OutcomeSuccess
	}
	if info, err := os.Stat(filepath.Join(ctx.RootDir, ".circleci", "config.yml")); err == nil && !info.IsDir() {
		return OutcomeSuccess
	}
	return scanDirForFileNameMatch(ciFileRegexp, ctx.RootDir, false)
}

func hasGitHubWorkflow(root string) bool {
	entries, err := os.ReadDir(filepath.Join(root, ".github", "workflows"))
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && workflowFileRegexp.MatchString(entry.Name()) {
			return true
		}
	}
	return false
}
