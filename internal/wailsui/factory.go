package wailsui

import (
	_ "embed"
	"fmt"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/gptdesk/gptdesk/winman"
)

//go:embed notes.html
var notesHTML string

// urlTrackerJS reports in-page navigation so the Go side can keep the
// current address up to date. History API rewrites are hooked because the
// wrapped page is a single-page app that never triggers full loads.
const urlTrackerJS = `(function () {
	if (!window.wails || !window.wails.Events) { return; }
	var report = function () {
		window.wails.Events.Emit({ name: %q, data: { url: window.location.href } });
	};
	var wrap = function (fn) {
		return function () { var r = fn.apply(this, arguments); report(); return r; };
	};
	history.pushState = wrap(history.pushState);
	history.replaceState = wrap(history.replaceState);
	window.addEventListener("popstate", report);
	report();
})();`

// Factory creates the real application windows.
type Factory struct {
	app *application.App
}

func NewFactory(app *application.App) *Factory {
	return &Factory{app: app}
}

// NewPrimary creates the primary window hidden; it shows itself once the
// page has finished loading so the user never sees an unpainted frame.
// The runtime-ready hook only fires for pages carrying the bridge, so a
// remote page must not be the only path that reveals the window.
func (f *Factory) NewPrimary(url string, width, height int) winman.Window {
	win := f.app.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:      "primary",
		Title:     "ChatGPT",
		Width:     width,
		Height:    height,
		MinWidth:  360,
		MinHeight: 400,
		URL:       url,
		Hidden:    true,
		Mac: application.MacWindow{
			TitleBar: application.MacTitleBarDefault,
		},
	})

	w := &Window{app: f.app, win: win, currentURL: url}

	win.RegisterHook(events.Common.WindowDidFinishLoadingContent, func(e *application.WindowEvent) {
		w.showFirstPaint()
	})
	win.RegisterHook(events.Common.WindowRuntimeReady, func(e *application.WindowEvent) {
		w.markBridgeReady()
		win.ExecJS(fmt.Sprintf(urlTrackerJS, EventPageURL))
		w.showFirstPaint()
	})
	cancelTracker := f.app.Event.On(EventPageURL, func(e *application.CustomEvent) {
		if m, ok := e.Data.(map[string]any); ok {
			if url, _ := m["url"].(string); url != "" {
				w.mu.Lock()
				w.currentURL = url
				w.mu.Unlock()
			}
		}
	})
	win.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		cancelTracker()
		w.fireClosed()
	})

	return w
}

// NewNotes creates the fixed-size scratch notes window. Its content is a
// static embedded document; nothing typed into it is persisted.
func (f *Factory) NewNotes(width, height int) winman.Window {
	win := f.app.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:      "notes",
		Title:     "Notes",
		Width:     width,
		Height:    height,
		MinWidth:  width,
		MinHeight: height,
		MaxWidth:  width,
		MaxHeight: height,
		HTML:      notesHTML,
	})

	w := &Window{app: f.app, win: win}
	win.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		w.fireClosed()
	})
	return w
}
