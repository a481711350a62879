// Package app wires the catalog, the grid and the navigator together and
// runs the terminal event loop.
package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/deeplus/internal/catalog"
	"github.com/dshills/deeplus/internal/config"
	"github.com/dshills/deeplus/internal/config/watcher"
	"github.com/dshills/deeplus/internal/event"
	"github.com/dshills/deeplus/internal/grid"
	"github.com/dshills/deeplus/internal/input"
	"github.com/dshills/deeplus/internal/nav"
	"github.com/dshills/deeplus/internal/renderer/backend"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses the
	// default location.
	ConfigPath string

	// Overrides are applied on top of file and environment settings, keyed
	// by dotted setting path (e.g. "api.url").
	Overrides map[string]any

	// Offline serves the catalog from the cache only.
	Offline bool

	// NoCache disables the response cache.
	NoCache bool

	// Watch reloads the configuration when the file changes.
	Watch bool

	// LogOutput replaces the configured log file.
	LogOutput io.Writer

	// Environ overrides os.Environ, for tests.
	Environ func() []string

	// HTTPClient overrides the catalog HTTP client, for tests.
	HTTPClient *http.Client
}

// fetchResult is delivered to the event loop when a catalog load finishes.
type fetchResult struct {
	gen     uint64
	cols    []catalog.Collection
	err     error
	elapsed time.Duration
}

// Application owns every component. All UI state is mutated only by the
// goroutine running Run.
type Application struct {
	opts Options

	cfg       *config.Config
	logger    *Logger
	logCloser io.Closer

	bus     *event.Bus
	cache   *catalog.Cache
	client  *catalog.Client
	builder *grid.Builder
	keymap  *input.Keymap
	theme   grid.Theme
	watcher *watcher.Watcher

	backend backend.Backend
	view    *grid.View
	nav     *nav.Navigator[*grid.Tile]
	loading *grid.Loading

	gen         uint64
	fetchCancel context.CancelFunc
	fetches     sync.WaitGroup

	results chan fetchResult
	reloads chan *config.Config
	refresh chan struct{}

	running     atomic.Bool
	done        chan struct{}
	doneOnce    sync.Once
	releaseOnce sync.Once
}

// New loads the configuration and creates every component except the
// terminal-bound view, which is created by Run.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		results: make(chan fetchResult, 1),
		reloads: make(chan *config.Config, 1),
		refresh: make(chan struct{}, 1),
		done:    make(chan struct{}),
		loading: grid.NewLoading(),
	}

	if err := app.bootstrap(); err != nil {
		app.release()
		return nil, err
	}
	return app, nil
}

func (app *Application) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		Path:      app.opts.ConfigPath,
		Environ:   app.opts.Environ,
		Overrides: app.opts.Overrides,
	}
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	cfg, err := config.Load(app.loadOptions())
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}

	app.bus = event.NewBus()
	busLog := app.logger.WithComponent("event")
	if _, err := app.bus.Subscribe("**", func(_ context.Context, ev any) error {
		if tp, ok := ev.(event.TopicProvider); ok {
			busLog.Debug("%s", tp.EventTopic())
		}
		return nil
	}); err != nil {
		return &InitError{Component: "event bus", Err: err}
	}

	if cfg.Cache.Enabled && !app.opts.NoCache {
		cache, err := catalog.OpenCache(cfg.Cache.Path)
		if err != nil {
			app.logger.Warn("cache disabled: %v", err)
		} else {
			app.cache = cache
			if n, err := cache.Prune(context.Background(), cfg.Cache.MaxAge); err != nil {
				app.logger.Warn("cache prune: %v", err)
			} else if n > 0 {
				app.logger.Debug("pruned %d cached responses", n)
			}
		}
	}
	app.client = app.newClient(cfg)

	if app.theme, err = grid.ThemeFromConfig(cfg.UI.Theme); err != nil {
		return &InitError{Component: "theme", Err: err}
	}
	if app.keymap, err = input.NewKeymap(cfg.Keys); err != nil {
		return &InitError{Component: "keymap", Err: err}
	}

	app.builder = grid.NewBuilder(app.bus, app.logger.WithComponent("grid"))

	app.logger.Info("configured api=%s window=%d cache=%t offline=%t",
		cfg.API.URL, cfg.Nav.WindowSize, app.cache != nil, app.opts.Offline)
	return nil
}

func (app *Application) initLogger() error {
	lc := LoggerConfig{Level: ParseLogLevel(app.cfg.Logging.Level), Prefix: "deeplus"}
	switch {
	case app.opts.LogOutput != nil:
		lc.Output = app.opts.LogOutput
	case app.cfg.LogDisabled():
		app.logger = NullLogger
		return nil
	default:
		f, err := OpenLogFile(app.cfg.Logging.File)
		if err != nil {
			return err
		}
		app.logCloser = f
		lc.Output = f
	}
	app.logger = NewLogger(lc)
	return nil
}

func (app *Application) newClient(cfg *config.Config) *catalog.Client {
	return catalog.NewClient(catalog.Options{
		URL:           cfg.API.URL,
		RefURL:        cfg.API.RefURL,
		ResolveRefs:   cfg.API.ResolveRefs,
		UserAgent:     cfg.API.UserAgent,
		Timeout:       cfg.API.Timeout,
		FallbackImage: cfg.API.FallbackImage,
		Cache:         app.cache,
		MaxAge:        cfg.Cache.MaxAge,
		Offline:       app.opts.Offline,
		HTTPClient:    app.opts.HTTPClient,
		Logger:        app.logger.WithComponent("catalog"),
	})
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initialises the backend, starts loading the catalog and serves the
// event loop until the user quits or Shutdown is called. Quitting returns
// nil. An Application runs at most once.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)
	defer app.release()

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()
	app.backend.HideCursor()

	app.newView()
	app.startWatcher()

	app.loading.Draw(app.backend, app.theme)
	app.startFetch()

	return app.eventLoop()
}

// newView creates the view and the navigator for the configured window size.
func (app *Application) newView() {
	window := app.cfg.Nav.WindowSize
	app.view = grid.NewView(app.backend,
		grid.WithTheme(app.theme),
		grid.WithTileWidth(app.cfg.UI.TileWidth),
		grid.WithRowHeight(app.cfg.UI.RowHeight),
		grid.WithWindowSize(window),
		grid.WithViewLogger(app.logger.WithComponent("view")),
	)
	app.nav = nav.New[*grid.Tile](app.view,
		nav.WithWindowSize(window),
		nav.WithLogger(app.logger.WithComponent("nav")),
	)
}

// Refresh reloads the catalog and rebuilds the grid. It is safe to call
// from any goroutine.
func (app *Application) Refresh() {
	select {
	case app.refresh <- struct{}{}:
	default:
	}
}

// startFetch cancels any load in flight and starts a new one.
func (app *Application) startFetch() {
	if app.fetchCancel != nil {
		app.fetchCancel()
	}
	app.gen++
	gen := app.gen

	ctx, cancel := context.WithCancel(context.Background())
	app.fetchCancel = cancel
	client := app.client

	app.fetches.Add(1)
	go func() {
		defer app.fetches.Done()
		start := time.Now()
		cols, err := client.Load(ctx)
		res := fetchResult{gen: gen, cols: cols, err: err, elapsed: time.Since(start)}
		select {
		case app.results <- res:
		case <-app.done:
		}
	}()
}

// startWatcher watches the config file when requested. Failures only
// disable live reload.
func (app *Application) startWatcher() {
	if !app.opts.Watch {
		return
	}
	path := app.cfg.Path
	if path == "" {
		path = app.opts.ConfigPath
	}
	if path == "" {
		path = config.DefaultPath()
	}

	log := app.logger.WithComponent("watcher")
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		log.Warn("%v", err)
	}))
	if err != nil {
		log.Warn("config reload disabled: %v", err)
		return
	}
	if err := w.Watch(path); err != nil {
		log.Warn("config reload disabled: %v", err)
		w.Stop()
		return
	}

	opts := app.loadOptions()
	opts.Path = path
	w.OnChange(func(ev watcher.Event) {
		log.Debug("%s %s", ev.Op, ev.Path)
		cfg, err := config.Load(opts)
		if err != nil {
			log.Warn("reload ignored: %v", err)
			return
		}
		select {
		case app.reloads <- cfg:
		case <-app.done:
		}
	})
	w.Start()
	app.watcher = w
	log.Info("watching %s", path)
}

// Shutdown stops the event loop. It is idempotent and safe to call from any
// goroutine.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() { close(app.done) })
	if !app.running.Load() {
		app.release()
	}
}

// release frees resources once the loop has stopped.
func (app *Application) release() {
	app.releaseOnce.Do(func() {
		app.doneOnce.Do(func() { close(app.done) })
		if app.fetchCancel != nil {
			app.fetchCancel()
		}
		if app.watcher != nil {
			app.watcher.Stop()
		}
		app.fetches.Wait()

		if app.cache != nil {
			if err := app.cache.Close(); err != nil && app.logger != nil {
				app.logger.Warn("close cache: %v", err)
			}
		}
		if app.logger != nil {
			app.logger.Info("shutdown")
		}
		if app.logCloser != nil {
			_ = app.logCloser.Close()
		}
	})
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// EventBus returns the event bus.
func (app *Application) EventBus() *event.Bus {
	return app.bus
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// isQuit reports whether err ends the loop normally.
func isQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
