package magetasks

import (
	"github.com/cockroachdb/errors"
)

// QualityCheck runs linters, the race-enabled tests and the build.
func QualityCheck() error {
	PrintH1Header("ptree Quality Checks")

	if err := LintAll(); err != nil {
		PrintWarning("Linting issues found")
	}
	if err := TestRace(); err != nil {
		return errors.Wrap(err, "tests failed")
	}
	if err := BuildAll(); err != nil {
		return errors.Wrap(err, "build failed")
	}

	PrintSuccess("Quality checks complete")
	return nil
}
