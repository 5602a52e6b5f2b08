package magetasks

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLdflags(t *testing.T) {
	date := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	got := Ldflags("v1.2.0", "abc123", date)
	assert.Equal(t,
		"-s -w -X 'github.com/dkoosis/ptree/internal/version.Version=v1.2.0'"+
			" -X 'github.com/dkoosis/ptree/internal/version.CommitHash=abc123'"+
			" -X 'github.com/dkoosis/ptree/internal/version.BuildDate=2025-03-01T12:00:00Z'",
		got)
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	old := Out
	Out = &buf
	t.Cleanup(func() { Out = old })

	PrintH1Header("Test Title")
	PrintH2Header("Test Section")
	PrintSuccess("done")
	PrintWarning("careful")
	PrintError("broken")
	PrintInfo("note")

	output := buf.String()
	for _, want := range []string{"Test Title", strings.Repeat("=", headerWidth), "=== Test Section ===", "done", "careful", "broken", "note"} {
		assert.Contains(t, output, want)
	}
}
