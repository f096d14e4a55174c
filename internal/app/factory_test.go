package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/log"
	"github.com/footprint-tools/argot/internal/shell"
)

func newTestApp(t *testing.T, config string) (*App, *bytes.Buffer, string) {
	t.Helper()
	saved := log.GetLogger()
	t.Cleanup(func() { log.SetDefault(saved) })

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".argotrc")
	if config != "" {
		require.NoError(t, os.WriteFile(cfgPath, []byte(config), 0600))
	}

	var out bytes.Buffer
	a, err := New(Options{
		ConfigPath:    cfgPath,
		DBPath:        filepath.Join(dir, "history.db"),
		LogPath:       filepath.Join(dir, "argot.log"),
		Output:        &out,
		PagerDisabled: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, &out, dir
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.True(t, opts.StyleEnabled)
	require.Empty(t, opts.ConfigPath)
}

func TestNew(t *testing.T) {
	a, out, dir := newTestApp(t, "")

	require.NotNil(t, a.Store)
	require.NotNil(t, a.Config)
	require.NotNil(t, a.Logger)
	require.NotNil(t, a.Output)
	require.NotNil(t, a.Styler)
	require.Equal(t, 500, a.historyLimit)

	require.NoError(t, a.Registry.Execute("math add 40 2"))
	require.Equal(t, "42\n", out.String())

	lines, err := a.Store.Lines(0)
	require.NoError(t, err)
	require.Equal(t, []string{"math add 40 2"}, lines)

	_, err = os.Stat(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
}

func TestNew_Settings(t *testing.T) {
	a, out, _ := newTestApp(t, "history_limit=2\nhelp_page_size=3\nenable_log=false\n")
	require.Equal(t, 2, a.historyLimit)
	_, ok := a.Logger.(log.NopLogger)
	require.True(t, ok)

	require.NoError(t, a.Registry.Execute("help"))
	require.Contains(t, out.String(), "page 1 of ")

	for _, line := range []string{"echo a", "echo b", "echo c"} {
		require.NoError(t, a.Registry.Execute(line))
	}
	entries, err := a.Store.Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestIntSetting(t *testing.T) {
	a, _, _ := newTestApp(t, "history_limit=abc\nhelp_page_size=-1\n")
	require.Equal(t, 500, intSetting(a.Config, "history_limit", 500))
	require.Equal(t, 8, intSetting(a.Config, "help_page_size", 8))
	require.Equal(t, 7, intSetting(a.Config, "missing", 7))
}

func TestShell(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	var errOut bytes.Buffer

	s := a.Shell(shell.WithIO(strings.NewReader("greet Ada\nmath add x\nexit\n"), out, &errOut))
	require.NoError(t, s.Run())

	require.Equal(t, "Hello, Ada!\n", out.String())
	require.Contains(t, errOut.String(), "usage: add <number> <number>")
}

func TestClose_NilComponents(t *testing.T) {
	require.NoError(t, Close(&domain.Application{}))
}
