package completions

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseShell(t *testing.T) {
	for _, name := range []string{"bash", "ZSH", "Fish"} {
		s, err := ParseShell(name)
		require.NoError(t, err)
		require.Equal(t, strings.ToLower(name), string(s))
	}

	_, err := ParseShell("tcsh")
	require.EqualError(t, err, "unsupported shell: tcsh")

	require.Equal(t, []string{"bash", "zsh", "fish"}, ShellNames())
}

func TestScript(t *testing.T) {
	tests := []struct {
		shell    Shell
		contains []string
	}{
		{ShellBash, []string{"_argot_complete()", `argot --complete "$line"`, "complete -o default -F _argot_complete argot"}},
		{ShellZsh, []string{"#compdef argot", "compdef _argot argot", `argot --complete "$line"`}},
		{ShellFish, []string{"function __argot_complete", "complete -c argot -f -a '(__argot_complete)'"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			script, err := Script(tt.shell, "argot")
			require.NoError(t, err)
			for _, s := range tt.contains {
				require.Contains(t, script, s)
			}
			require.NotContains(t, script, "{{")
		})
	}
}

func TestScript_BinaryWithDash(t *testing.T) {
	script, err := Script(ShellBash, "argot-dev")
	require.NoError(t, err)
	require.Contains(t, script, "_argot_dev_complete()")
	require.Contains(t, script, "argot-dev --complete")
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, ShellFish, "argot"))
	require.True(t, strings.HasPrefix(buf.String(), "# fish completion for argot"))

	require.Error(t, Print(&buf, Shell("tcsh"), "argot"))
}

func TestSourceInstructions(t *testing.T) {
	require.Equal(t, `eval "$(argot completions bash)"`, SourceInstructions(ShellBash, "argot"))
	require.Equal(t, `eval "$(argot completions zsh)"`, SourceInstructions(ShellZsh, "argot"))
	require.Equal(t, "argot completions fish | source", SourceInstructions(ShellFish, "argot"))
	require.Empty(t, SourceInstructions(Shell("tcsh"), "argot"))
}

func TestRcFile(t *testing.T) {
	require.Equal(t, "~/.bashrc", RcFile(ShellBash))
	require.Equal(t, "~/.zshrc", RcFile(ShellZsh))
	require.Equal(t, "~/.config/fish/config.fish", RcFile(ShellFish))
}

func TestAutoInstallPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, filepath.Join(home, ".config", "fish", "completions", "argot.fish"), AutoInstallPath(ShellFish, "argot"))
	require.Equal(t, filepath.Join(home, ".local", "share", "bash-completion", "completions", "argot"), AutoInstallPath(ShellBash, "argot"))
	require.Empty(t, AutoInstallPath(ShellZsh, "argot"))
}

func TestBinary(t *testing.T) {
	path, name := Binary()
	require.NotEmpty(t, path)
	require.Equal(t, filepath.Base(path), name)
}
