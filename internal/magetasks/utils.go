package magetasks

import (
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/magefile/mage/sh"
)

// Run prints a header for title and runs the command with its output
// attached to the terminal.
func Run(title, cmd string, args ...string) error {
	PrintH2Header(title)
	if err := sh.RunV(cmd, args...); err != nil {
		PrintError(title + " failed")
		return err
	}
	PrintSuccess(title + " passed")
	return nil
}

// IsCommandNotFound checks if the error indicates the command was not found.
// This handles exec.ErrNotFound and platform-specific string fallbacks.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	// Fallback string matching for edge cases
	errStr := err.Error()
	if strings.Contains(errStr, "executable file not found") {
		return true
	}
	if strings.Contains(errStr, "no such file or directory") {
		return true
	}
	return false
}
