package app

import (
	"io"
	"os"
	"strconv"

	"github.com/footprint-tools/argot/internal/builtin"
	"github.com/footprint-tools/argot/internal/config"
	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/help"
	"github.com/footprint-tools/argot/internal/log"
	"github.com/footprint-tools/argot/internal/paths"
	"github.com/footprint-tools/argot/internal/registry"
	"github.com/footprint-tools/argot/internal/shell"
	"github.com/footprint-tools/argot/internal/store"
	"github.com/footprint-tools/argot/internal/ui"
	"github.com/footprint-tools/argot/internal/ui/style"
)

// Options configures the application factory. Empty paths select the
// default locations.
type Options struct {
	ConfigPath string
	DBPath     string
	LogPath    string

	// Output defaults to stdout.
	Output io.Writer

	// Pager options
	PagerDisabled bool
	PagerOverride string

	// LogLevel overrides the log_level config key.
	LogLevel string

	// Style options
	StyleEnabled bool
}

// DefaultOptions returns the default application options.
func DefaultOptions() Options {
	return Options{StyleEnabled: true}
}

// App is the wired application together with its command registry.
type App struct {
	*domain.Application
	Registry *registry.Registry

	historyLimit int
}

// New creates an App with all dependencies wired up.
func New(opts Options) (*App, error) {
	cfg, err := newConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = paths.LogFilePath()
	}
	logger, err := log.Setup(logPath, cfg, opts.LogLevel)
	if err != nil {
		// Logging is best effort; fall back to NopLogger.
		logger = log.NopLogger{}
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.DatabasePath()
	}
	history, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	styleConfig, _ := cfg.GetAll()
	style.Init(opts.StyleEnabled, styleConfig)
	var styler domain.Styler = style.NopStyler{}
	if opts.StyleEnabled {
		styler = style.NewStyler()
	}

	writerOpts := []ui.WriterOption{ui.WithConfigGetter(cfg.Get)}
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	writer := ui.NewWriterTo(out, writerOpts...)

	application := &domain.Application{
		Store:  history,
		Config: cfg,
		Logger: logger,
		Output: writer,
		Styler: styler,
	}

	historyLimit := intSetting(cfg, "history_limit", 500)
	gen := help.New(writer, styler, help.WithPageSize(intSetting(cfg, "help_page_size", help.DefaultPageSize)))
	reg := registry.New(
		registry.WithHelpGenerator(gen),
		registry.WithLogger(logger),
		registry.WithHistory(history, historyLimit),
	)
	if err := reg.Register(builtin.Commands(builtin.DefaultDeps(application))...); err != nil {
		_ = Close(application)
		return nil, err
	}

	return &App{Application: application, Registry: reg, historyLimit: historyLimit}, nil
}

func newConfig(path string) (*config.Provider, error) {
	if path != "" {
		return config.NewProvider(path), nil
	}
	return config.NewDefaultProvider()
}

// intSetting reads a non-negative integer key, using fallback when the
// value is missing or malformed.
func intSetting(cfg domain.ConfigProvider, key string, fallback int) int {
	v, ok := cfg.Get(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// Shell returns an interactive shell over the registry.
func (a *App) Shell(opts ...shell.Option) *shell.Shell {
	prompt, _ := a.Config.Get("prompt")
	if prompt == "" {
		prompt = shell.DefaultPrompt
	}

	base := []shell.Option{
		shell.WithPrompt(style.Prompt(prompt)),
		shell.WithStyler(a.Styler),
		shell.WithLogger(a.Logger),
		shell.WithHistory(a.Store, a.historyLimit),
	}
	return shell.New(a.Registry, append(base, opts...)...)
}

// Close releases the store and the log file.
func (a *App) Close() error {
	return Close(a.Application)
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Store != nil {
		_ = app.Store.Close()
	}
	return nil
}
