package ui

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func alwaysTerminal(io.Writer) bool { return true }

func noEnv(string) string { return "" }

func TestWriter_Print(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "a", 1)
	require.NoError(t, err)
	_, err = w.Println("b", 2)
	require.NoError(t, err)
	_, err = w.Write([]byte("c"))
	require.NoError(t, err)

	require.Equal(t, "a=1\nb 2\nc", buf.String())
}

func TestWriter_PagerPrintsDirectlyWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerOverride("less"))

	w.Pager("content\n")
	require.Equal(t, "content\n", buf.String())
}

func TestResolvePager(t *testing.T) {
	config := func(value string) func(string) (string, bool) {
		return func(key string) (string, bool) {
			if key == "pager" && value != "" {
				return value, true
			}
			return "", false
		}
	}
	env := func(value string) func(string) string {
		return func(key string) string {
			if key == "PAGER" {
				return value
			}
			return ""
		}
	}

	tests := []struct {
		name string
		opts []WriterOption
		want []string
	}{
		{
			name: "disabled wins",
			opts: []WriterOption{WithPagerDisabled(), WithPagerOverride("more")},
			want: nil,
		},
		{
			name: "override",
			opts: []WriterOption{WithPagerOverride("more -d"), WithConfigGetter(config("less"))},
			want: []string{"more", "-d"},
		},
		{
			name: "config",
			opts: []WriterOption{WithConfigGetter(config("most")), WithEnvGetter(env("less"))},
			want: []string{"most"},
		},
		{
			name: "env",
			opts: []WriterOption{WithEnvGetter(env("less -R"))},
			want: []string{"less", "-R"},
		},
		{
			name: "cat bypasses",
			opts: []WriterOption{WithConfigGetter(config("cat"))},
			want: nil,
		},
		{
			name: "blank override bypasses",
			opts: []WriterOption{WithPagerOverride("   ")},
			want: nil,
		},
		{
			name: "default",
			opts: []WriterOption{WithEnvGetter(noEnv)},
			want: []string{"less", "-FRSX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]WriterOption{WithTerminalCheck(alwaysTerminal)}, tt.opts...)
			w := NewWriterTo(io.Discard, opts...)
			require.Equal(t, tt.want, w.resolvePager())
		})
	}
}

func TestResolvePager_NotTerminal(t *testing.T) {
	w := NewWriterTo(io.Discard, WithPagerOverride("more"))
	require.Nil(t, w.resolvePager())
}
