// Package ui provides terminal output with pager support.
//
// SECURITY NOTE: the pager may run any command given via --pager or the
// pager config key. This matches git, man and friends and needs local
// access to abuse. Only configure pagers you trust.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/footprint-tools/argot/internal/domain"
	"golang.org/x/term"
)

// defaultPager runs when nothing else picks one.
var defaultPager = []string{"less", "-FRSX"}

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	isTerminal    func(io.Writer) bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfigGetter sets the config getter function.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// WithTerminalCheck replaces the TTY detection used before paging.
func WithTerminalCheck(fn func(io.Writer) bool) WriterOption {
	return func(w *Writer) {
		w.isTerminal = fn
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:        out,
		envGetter:  os.Getenv,
		isTerminal: fileIsTerminal,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager if appropriate, and prints it
// directly otherwise or when the pager fails to run.
func (w *Writer) Pager(content string) {
	argv := w.resolvePager()
	if len(argv) == 0 {
		fmt.Fprint(w.out, content)
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w.out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprint(w.out, content)
	}
}

// resolvePager picks the pager command line. nil means print directly.
//
// Precedence:
//  1. --no-pager
//  2. output is not a TTY
//  3. --pager=<cmd>
//  4. the pager config key
//  5. $PAGER
//  6. less -FRSX
//
// "cat" at any level bypasses the pager.
func (w *Writer) resolvePager() []string {
	if w.pagerDisabled {
		return nil
	}
	if w.isTerminal == nil || !w.isTerminal(w.out) {
		return nil
	}

	if w.pagerOverride != "" {
		return pagerArgs(w.pagerOverride)
	}
	if w.configGetter != nil {
		if configPager, ok := w.configGetter("pager"); ok && configPager != "" {
			return pagerArgs(configPager)
		}
	}
	if w.envGetter != nil {
		if envPager := w.envGetter("PAGER"); envPager != "" {
			return pagerArgs(envPager)
		}
	}
	return defaultPager
}

func pagerArgs(pagerCmd string) []string {
	parts := strings.Fields(pagerCmd)
	if len(parts) == 0 || parts[0] == "cat" {
		return nil
	}
	return parts
}

func fileIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var _ domain.OutputWriter = (*Writer)(nil)
