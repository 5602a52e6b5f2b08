package magetasks

import (
	"github.com/magefile/mage/sh"
)

// TestAll runs all tests.
func TestAll() error {
	return Run("Tests", "go", "test", "./...")
}

// TestRace runs tests with race detector.
func TestRace() error {
	return Run("Race Detector", "go", "test", "-race", "./...")
}

// TestCoverage runs tests with coverage.
func TestCoverage() error {
	if err := Run("Test Coverage", "go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	_ = sh.RunV("go", "tool", "cover", "-func=coverage.out")
	return nil
}

// TestRewrite regenerates the golden files under pkg/ptree/testdata.
func TestRewrite() error {
	return Run("Rewrite Golden Files", "go", "test", "./pkg/ptree", "-run", "TestRender", "-rewrite")
}
