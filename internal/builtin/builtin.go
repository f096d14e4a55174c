// Package builtin holds the commands shipped with the binary.
package builtin

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/footprint-tools/argot/internal/command"
	"github.com/footprint-tools/argot/internal/completions"
	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/format"
	"github.com/footprint-tools/argot/internal/ui/style"
)

// ErrNoHistory is returned by the history commands when no store is wired.
var ErrNoHistory = errors.New("history is not available")

// Deps are the side effects of the built-in commands.
type Deps struct {
	Printf  func(format string, a ...any) (int, error)
	Println func(a ...any) (int, error)
	Out     io.Writer
	Config  domain.ConfigProvider
	History domain.HistoryStore
	Styler  domain.Styler
	Format  format.Formatter
	Sleep   func(time.Duration)
	Now     func() time.Time
	Binary  string

	WriteFile func(path string, data []byte) error
}

// DefaultDeps wires the commands to the application.
func DefaultDeps(app *domain.Application) Deps {
	_, bin := completions.Binary()
	deps := Deps{
		Printf:  fmt.Printf,
		Println: fmt.Println,
		Out:     os.Stdout,
		Config:  app.Config,
		History: app.Store,
		Styler:  app.Styler,
		Sleep:   time.Sleep,
		Now:     time.Now,
		Binary:  bin,

		WriteFile: writeFile,
	}
	if app.Output != nil {
		deps.Printf = app.Output.Printf
		deps.Println = app.Output.Println
		deps.Out = app.Output
	}
	if app.Config != nil {
		deps.Format = format.New(app.Config.Get)
	}
	if deps.Styler == nil {
		deps.Styler = style.NopStyler{}
	}
	return deps
}

// Commands returns the root commands in display order.
func Commands(deps Deps) []*command.Command {
	return []*command.Command{
		Math(deps),
		Echo(deps),
		Greet(deps),
		Repeat(deps),
		Sleep(deps),
		History(deps),
		Config(deps),
		Theme(deps),
		Completions(deps),
	}
}

// formatNumber prints floats without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
