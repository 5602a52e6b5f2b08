package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/ptree/pkg/ptree"
)

// isolate clears every variable Resolve reads and moves into an empty
// directory so no real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{"PTREE_STYLE", "PTREE_DEPTH", "PTREE_ANNOTATE", "PTREE_NO_COLOR", "NO_COLOR", "PTREE_DEBUG"} {
		t.Setenv(key, "")
	}
	tempDir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))
	return tempDir
}

func TestFindConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("style: ascii\n"), 0o600))
	assert.Equal(t, FileName, FindConfigPath())
}

func TestFindConfigPath_UsesXDGPath_When_LocalMissing(t *testing.T) {
	dir := isolate(t)
	configHome := filepath.Join(dir, "xdg", "ptree")
	require.NoError(t, os.MkdirAll(configHome, 0o755))
	configPath := filepath.Join(configHome, FileName)
	require.NoError(t, os.WriteFile(configPath, []byte("style: ascii\n"), 0o600))

	assert.Equal(t, configPath, FindConfigPath())
}

func TestFindConfigPath_ReturnsEmpty_When_NoConfig(t *testing.T) {
	isolate(t)
	assert.Equal(t, "", FindConfigPath())
}

func TestResolve_Defaults(t *testing.T) {
	isolate(t)
	r, err := Resolve(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle, r.Style)
	assert.Equal(t, 0, r.Depth)
	assert.False(t, r.Annotate)
	assert.False(t, r.NoColor)
	assert.Equal(t, SourceDefault, r.StyleSource)
	assert.Equal(t, SourceDefault, r.DepthSource)
	assert.Empty(t, r.ConfigPath)
}

func TestResolve_FileValues(t *testing.T) {
	dir := isolate(t)
	content := "style: ascii\ndepth: 3\nannotate: true\nno_color: true\nroot_label: data\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	r, err := Resolve(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, "ascii", r.Style)
	assert.Equal(t, 3, r.Depth)
	assert.True(t, r.Annotate)
	assert.True(t, r.NoColor)
	assert.Equal(t, "data", r.RootLabel)
	assert.Equal(t, SourceFile, r.StyleSource)
	assert.Equal(t, SourceFile, r.DepthSource)
	assert.Equal(t, FileName, r.ConfigPath)
}

func TestResolve_Priority(t *testing.T) {
	isolate(t)
	file := &FileConfig{Style: "ascii", Depth: "5"}

	t.Setenv("PTREE_STYLE", "unicode")
	t.Setenv("PTREE_DEPTH", "4")
	r, err := ResolveWith(CliFlags{}, file, "")
	require.NoError(t, err)
	assert.Equal(t, "unicode", r.Style)
	assert.Equal(t, SourceEnv, r.StyleSource)
	assert.Equal(t, 4, r.Depth)

	r, err = ResolveWith(CliFlags{Style: "ASCII", StyleSet: true, Depth: "2", DepthSet: true}, file, "")
	require.NoError(t, err)
	assert.Equal(t, "ascii", r.Style)
	assert.Equal(t, SourceCLI, r.StyleSource)
	assert.Equal(t, 2, r.Depth)
	assert.Equal(t, SourceCLI, r.DepthSource)
}

func TestResolve_NoColorEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "1")
	r, err := ResolveWith(CliFlags{}, nil, "")
	require.NoError(t, err)
	assert.True(t, r.NoColor)
	assert.Equal(t, SourceEnv, r.NoColorSource)

	r, err = ResolveWith(CliFlags{NoColor: false, NoColorSet: true}, nil, "")
	require.NoError(t, err)
	assert.False(t, r.NoColor)
}

func TestResolve_NoColorAnyValue(t *testing.T) {
	isolate(t)
	for _, val := range []string{"yes", "1", "anything", "false"} {
		t.Setenv("NO_COLOR", val)
		r, err := ResolveWith(CliFlags{}, nil, "")
		require.NoError(t, err)
		assert.True(t, r.NoColor, "NO_COLOR=%q", val)
	}

	t.Setenv("PTREE_NO_COLOR", "false")
	r, err := ResolveWith(CliFlags{}, nil, "")
	require.NoError(t, err)
	assert.False(t, r.NoColor, "PTREE_NO_COLOR takes priority over NO_COLOR")
}

func TestResolve_InvalidDepth(t *testing.T) {
	isolate(t)
	for _, tc := range []struct {
		name string
		cli  CliFlags
		file *FileConfig
	}{
		{name: "cli zero", cli: CliFlags{Depth: "0", DepthSet: true}},
		{name: "cli negative", cli: CliFlags{Depth: "-3", DepthSet: true}},
		{name: "cli non-integer", cli: CliFlags{Depth: "two", DepthSet: true}},
		{name: "file float", file: &FileConfig{Depth: "1.5"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveWith(tc.cli, tc.file, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ptree.ErrInvalidDepth), "%v", err)
		})
	}
}

func TestResolve_UnknownStyle(t *testing.T) {
	isolate(t)
	_, err := ResolveWith(CliFlags{Style: "fancy", StyleSet: true}, nil, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStyle))
	assert.Contains(t, err.Error(), "ascii, unicode")
}

func TestReadFile_Malformed(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("style: [unclosed\n"), 0o600))
	_, err := ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestResolvedOptions(t *testing.T) {
	r := &Resolved{Depth: 1, RootLabel: "root"}
	out, err := ptree.Sprint(map[string]any{"a": []int{1}}, append(r.Options(), ptree.WithStyle(ptree.ASCII()))...)
	require.NoError(t, err)
	assert.Equal(t, "`- root [items=1]\n   `- a [items=1] [...]", out)
}
