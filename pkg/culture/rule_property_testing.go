package culture

import "regexp"

// propertyTestingRegexp recognizes the module paths of the Go ecosystem's
// property-based testing libraries (gopter, rapid, and quickcheck ports).
var propertyTestingRegexp = regexp.MustCompile(`(?i)(gopter|rapid|quickcheck|propcheck)`)

// UsesPropertyBasedTestLibrary checks the manifest's dependency list for a
// recognized property-testing library. It checks the declared dependency
// only, not whether property tests actually exist or run.
type UsesPropertyBasedTestLibrary struct{}

func (UsesPropertyBasedTestLibrary) Description() string {
	return "Should be making an effort to use property based tests."
}

func (UsesPropertyBasedTestLibrary) Evaluate(ctx *Context) Outcome {
	if ctx.Metadata == nil {
		return OutcomeUndetermined
	}
	for _, req := range ctx.Metadata.Require {
		if propertyTestingRegexp.MatchString(req.Path) {
			return OutcomeSuccess
		}
	}
	return OutcomeFailure
}
