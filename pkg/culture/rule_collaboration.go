package culture

import "regexp"

// The collaboration file rules check for the conventional documents that
// tell humans how to interact with a project. Matching is a case-insensitive
// prefix check so variants like LICENSE-APACHE or readme.rst count, and the
// file must be non-empty: an empty README communicates nothing.

var (
	readmeFileRegexp       = regexp.MustCompile(`^(?i)README`)
	licenseFileRegexp      = regexp.MustCompile(`^(?i)LICENSE`)
	contributingFileRegexp = regexp.MustCompile(`^(?i)CONTRIBUTING`)
)

// HasReadmeFile checks for a non-empty README at the project root.
type HasReadmeFile struct{}

func (HasReadmeFile) Description() string {
	return "Should have a README.md file in the project directory."
}

func (HasReadmeFile) Evaluate(ctx *Context) Outcome {
	return scanDirForFileNameMatch(readmeFileRegexp, ctx.RootDir, true)
}

// HasLicenseFile checks for a non-empty LICENSE at the project root.
type HasLicenseFile struct{}

func (HasLicenseFile) Description() string {
	return "Should have a LICENSE file in the project directory."
}

func (HasLicenseFile) Evaluate(ctx *Context) Outcome {
	return scanDirForFileNameMatch(licenseFileRegexp, ctx.RootDir, true)
}

// HasContributingFile checks for a non-empty CONTRIBUTING at the project root.
type HasContributingFile struct{}

func (HasContributingFile) Description() string {
	return "Should have a CONTRIBUTING file in the project directory."
}

func (HasContributingFile) Evaluate(ctx *Context) Outcome {
	return scanDirForFileNameMatch(contributingFileRegexp, ctx.RootDir, true)
}
