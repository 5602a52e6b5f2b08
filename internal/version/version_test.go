package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, CommitHash, BuildDate
	t.Cleanup(func() { Version, CommitHash, BuildDate = oldVersion, oldCommit, oldDate })

	assert.Equal(t, "ptree dev (commit unknown, built unknown)", String())

	Version, CommitHash, BuildDate = "v1.0.0", "abc123", "2025-03-01T12:00:00Z"
	assert.Equal(t, "ptree v1.0.0 (commit abc123, built 2025-03-01T12:00:00Z)", String())
}
