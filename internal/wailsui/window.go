package wailsui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/gptdesk/gptdesk/screenshot"
)

// snapshotTimeout bounds the wait for a document snapshot reply. A page
// that carries the bridge but never answers fails the action with a
// reportable error instead of stalling it forever.
const snapshotTimeout = 15 * time.Second

// errNoBridge means the loaded page does not carry the runtime bridge, so
// no script running inside it can reach the Go side. Remote origins only
// get the bridge when the webview injects it; a plain third-party page
// cannot answer document or address queries.
var errNoBridge = errors.New("page does not expose a scripting bridge")

// htmlSnapshotJS asks the page to report its rendered document. The guard
// keeps the script inert when the runtime bridge is not injected.
const htmlSnapshotJS = `(function () {
	if (!window.wails || !window.wails.Events) { return; }
	window.wails.Events.Emit({ name: %q, data: { id: %q, html: document.documentElement.outerHTML } });
})();`

// Window adapts a Wails webview window to the winman.Window surface.
type Window struct {
	app *application.App
	win *application.WebviewWindow

	// currentURL tracks the last known address. The wrapped page is opaque;
	// in-page navigation reaches us only through EventPageURL updates, and
	// without the bridge the launch address is the best we have.
	mu          sync.Mutex
	currentURL  string
	onTop       bool
	bridgeReady bool

	showOnce   sync.Once
	closedOnce sync.Once
	onClosed   []func()
}

func (w *Window) Show()             { w.win.Show() }
func (w *Window) Focus()            { w.win.Focus() }
func (w *Window) Restore()          { w.win.Restore() }
func (w *Window) IsMinimised() bool { return w.win.IsMinimised() }

func (w *Window) URL() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentURL
}

func (w *Window) SetURL(url string) {
	w.mu.Lock()
	w.currentURL = url
	w.mu.Unlock()
	w.win.SetURL(url)
}

func (w *Window) Reload() { w.win.Reload() }

func (w *Window) Size() (int, int)  { return w.win.Size() }
func (w *Window) SetSize(wd, h int) { w.win.SetSize(wd, h) }
func (w *Window) Center()           { w.win.Center() }

func (w *Window) Zoom() float64     { return w.win.GetZoom() }
func (w *Window) SetZoom(z float64) { w.win.SetZoom(z) }

func (w *Window) AlwaysOnTop() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.onTop
}

func (w *Window) SetAlwaysOnTop(onTop bool) {
	w.mu.Lock()
	w.onTop = onTop
	w.mu.Unlock()
	w.win.SetAlwaysOnTop(onTop)
}

func (w *Window) IsFullscreen() bool { return w.win.IsFullscreen() }

func (w *Window) SetFullscreen(full bool) {
	if full {
		w.win.Fullscreen()
	} else {
		w.win.UnFullscreen()
	}
}

// markBridgeReady records that the loaded page carries the runtime bridge
// and can answer snapshot and address queries.
func (w *Window) markBridgeReady() {
	w.mu.Lock()
	w.bridgeReady = true
	w.mu.Unlock()
}

func (w *Window) hasBridge() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bridgeReady
}

// showFirstPaint shows the window exactly once, on the first signal that
// the page has content to paint.
func (w *Window) showFirstPaint() {
	w.showOnce.Do(func() { w.win.Show() })
}

// HTML asks the webview for the rendered document and waits for the reply
// event. Pages without the runtime bridge cannot answer, so that case
// fails immediately instead of waiting for a reply that will never come.
func (w *Window) HTML(ctx context.Context) (string, error) {
	if !w.hasBridge() {
		return "", errNoBridge
	}

	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	id := uuid.NewString()
	reply := make(chan string, 1)

	off := w.app.Event.On(EventPageHTML, func(e *application.CustomEvent) {
		replyID, html, ok := decodeHTMLReply(e.Data)
		if !ok || replyID != id {
			return
		}
		select {
		case reply <- html:
		default:
		}
	})
	defer off()

	w.win.ExecJS(fmt.Sprintf(htmlSnapshotJS, EventPageHTML, id))

	select {
	case html := <-reply:
		return html, nil
	case <-ctx.Done():
		return "", fmt.Errorf("read page content: %w", ctx.Err())
	}
}

// decodeHTMLReply unpacks {id, html} from an event payload. Events arriving
// from the webview are decoded JSON, so the payload is a generic map.
func decodeHTMLReply(data any) (id, html string, ok bool) {
	m, ok := data.(map[string]any)
	if !ok {
		return "", "", false
	}
	id, _ = m["id"].(string)
	html, _ = m["html"].(string)
	return id, html, id != ""
}

// CaptureImage captures the window's current screen rectangle as PNG bytes.
func (w *Window) CaptureImage(ctx context.Context) ([]byte, error) {
	if !screenshot.HasPermission() {
		// Without the permission the capture tool silently records the
		// wallpaper instead of the window.
		screenshot.RequestPermission()
		return nil, errors.New("screen recording permission required")
	}

	x, y := w.win.Position()
	width, height := w.win.Size()

	path, err := screenshot.CaptureRect(x, y, width, height)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read captured image: %w", err)
	}
	return data, nil
}

func (w *Window) OnClosed(fn func()) {
	w.onClosed = append(w.onClosed, fn)
}

func (w *Window) fireClosed() {
	w.closedOnce.Do(func() {
		for _, fn := range w.onClosed {
			fn()
		}
	})
}
