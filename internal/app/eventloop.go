package app

import (
	"context"
	"errors"
	"time"

	"github.com/dshills/deeplus/internal/catalog"
	"github.com/dshills/deeplus/internal/config"
	"github.com/dshills/deeplus/internal/event"
	"github.com/dshills/deeplus/internal/grid"
	"github.com/dshills/deeplus/internal/input"
	"github.com/dshills/deeplus/internal/nav"
	"github.com/dshills/deeplus/internal/renderer/backend"
)

// spinnerInterval is the loading animation frame time.
const spinnerInterval = 100 * time.Millisecond

// eventLoop serialises terminal input, catalog results and config reloads
// onto one goroutine.
func (app *Application) eventLoop() error {
	events := make(chan backend.Event, 16)
	go app.pollEvents(events)

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-app.done:
			return nil

		case ev := <-events:
			if err := app.handleBackendEvent(ev); err != nil {
				if isQuit(err) {
					app.logger.Info("quit")
					app.doneOnce.Do(func() { close(app.done) })
					return nil
				}
				app.logger.Error("%v", err)
			}

		case res := <-app.results:
			app.handleFetchResult(res)

		case cfg := <-app.reloads:
			app.applyConfig(cfg)

		case <-app.refresh:
			app.reload()

		case <-ticker.C:
			if app.loading.Tick() {
				app.loading.Draw(app.backend, app.theme)
			}
		}
	}
}

// pollEvents forwards backend events until the application stops.
func (app *Application) pollEvents(out chan<- backend.Event) {
	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventNone {
			select {
			case <-app.done:
				return
			default:
				continue
			}
		}
		select {
		case out <- ev:
		case <-app.done:
			return
		}
	}
}

func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.redraw()
	case backend.EventKey:
		return app.handleAction(app.keymap.Lookup(ev), ev)
	case backend.EventFocus:
		if ev.Focused {
			app.redraw()
		}
	}
	return nil
}

func (app *Application) handleAction(a input.Action, ev backend.Event) error {
	switch {
	case a == input.ActionQuit:
		return ErrQuit
	case a == input.ActionRefresh:
		app.reload()
	case a.IsMove():
		app.move(a.Direction())
	case a == input.ActionSelect:
		if tile, ok := app.nav.Current(); ok && !app.loading.Visible() {
			app.logger.Info("select %s", tile.Item.Title)
		}
	case a == input.ActionBack:
		app.logger.Info("back")
	default:
		if k, ok := input.FromBackend(ev); ok {
			app.logger.Debug("unbound key %s", k)
		}
	}
	return nil
}

// move forwards a direction to the navigator and redraws on success.
func (app *Application) move(dir nav.Direction) {
	if app.loading.Visible() {
		return
	}
	from, _ := app.nav.Cursor()
	moved := app.nav.OnKey(dir)
	to, _ := app.nav.Cursor()

	topic := event.TopicNavRejected
	if moved {
		topic = event.TopicNavMoved
	}
	app.publish(event.NewEvent(topic, event.NavMoved{From: from, To: to, Direction: dir}, "nav"))

	if moved {
		app.redraw()
	}
}

// reload shows the loading screen and fetches the catalog again.
func (app *Application) reload() {
	app.logger.Info("refresh")
	app.loading.Reset()
	app.loading.Draw(app.backend, app.theme)
	app.startFetch()
}

func (app *Application) handleFetchResult(res fetchResult) {
	if res.gen != app.gen {
		return
	}
	app.fetchCancel = nil

	if res.err != nil {
		if errors.Is(res.err, context.Canceled) {
			return
		}
		err := &OperationError{Op: "load", Target: app.cfg.API.URL, Err: res.err}
		app.logger.Error("%v", err)
		app.publish(event.NewEvent(event.TopicCatalogFailed, event.CatalogFailed{Err: res.err}, "catalog"))
		app.loading.SetError(grid.ErrorMessage(res.err))
		app.loading.Draw(app.backend, app.theme)
		return
	}

	app.logger.Info("loaded %d collections in %s", len(res.cols), res.elapsed.Round(time.Millisecond))
	app.publish(event.NewEvent(event.TopicCatalogLoaded, event.CatalogLoaded{
		Collections: len(res.cols),
		Items:       countItems(res.cols),
		Elapsed:     res.elapsed,
	}, "catalog"))

	app.rebuild(res.cols)
}

// rebuild lays out a new board and resets the cursor to the origin. A
// pending window size change takes effect here.
func (app *Application) rebuild(cols []catalog.Collection) {
	if app.view.WindowSize() != app.cfg.Nav.WindowSize {
		app.logger.Info("window size %d -> %d", app.view.WindowSize(), app.cfg.Nav.WindowSize)
		app.newView()
	}

	board := app.builder.Build(context.Background(), cols)
	app.view.SetBoard(board)
	grid.Ready(app.nav, board)

	app.loading.SetComplete()
	app.redraw()
}

// applyConfig installs a reloaded configuration. Theme, key bindings and
// the log level apply at once; catalog settings apply to the next load and
// the window size to the next rebuild.
func (app *Application) applyConfig(cfg *config.Config) {
	theme, err := grid.ThemeFromConfig(cfg.UI.Theme)
	if err != nil {
		app.logger.Warn("reload ignored: %v", err)
		return
	}
	keymap, err := input.NewKeymap(cfg.Keys)
	if err != nil {
		app.logger.Warn("reload ignored: %v", err)
		return
	}

	if cfg.Nav.WindowSize != app.cfg.Nav.WindowSize {
		app.logger.Info("window size change to %d applies on the next refresh", cfg.Nav.WindowSize)
	}

	app.cfg = cfg
	app.theme = theme
	app.keymap = keymap
	app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	app.client = app.newClient(cfg)
	if app.view != nil {
		app.view.SetTheme(theme)
	}

	app.publish(event.NewEvent(event.TopicConfigReloaded, event.ConfigReloaded{Path: cfg.Path}, "config"))
	app.redraw()
}

// redraw paints whichever screen is active.
func (app *Application) redraw() {
	if app.loading.Visible() {
		app.loading.Draw(app.backend, app.theme)
		return
	}
	if app.view != nil {
		app.view.Draw()
	}
}

func (app *Application) publish(ev event.TopicProvider) {
	if err := app.bus.Publish(context.Background(), ev); err != nil {
		app.logger.Warn("publish %s: %v", ev.EventTopic(), err)
	}
}

func countItems(cols []catalog.Collection) int {
	n := 0
	for _, c := range cols {
		n += len(c.Items)
	}
	return n
}
