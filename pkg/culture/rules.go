package culture

// DefaultRules returns new instances of the built-in rules in their fixed
// reporting order. The order is part of the reporting contract; report
// consumers may rely on it. The factory is pure: every call returns fresh
// instances and no shared mutable state exists between catalogs.
func DefaultRules() []Rule {
	return []Rule{
		ManifestReadable{},
		HasContributingFile{},
		HasLicenseFile{},
		HasReadmeFile{},
		HasGolangciConfigFile{},
		HasContinuousIntegrationFile{},
		BuildsCleanly{},
		PassesMultipleTests{},
		UnderSourceControl{},
		UsesPropertyBasedTestLibrary{},
	}
}
