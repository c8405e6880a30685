package winman

import "context"

// Window is the surface the lifecycle manager and command actions need from
// a native window. The Wails-backed implementation lives in internal/wailsui;
// tests use an in-memory fake.
type Window interface {
	Show()
	Focus()
	Restore()
	IsMinimised() bool

	URL() string
	SetURL(url string)
	Reload()

	Size() (width, height int)
	SetSize(width, height int)
	Center()

	Zoom() float64
	SetZoom(factor float64)

	AlwaysOnTop() bool
	SetAlwaysOnTop(onTop bool)

	IsFullscreen() bool
	SetFullscreen(full bool)

	// HTML returns the rendered document's current HTML. Blocks until the
	// webview answers; the context bounds the caller, not the webview.
	HTML(ctx context.Context) (string, error)

	// CaptureImage returns the window's visible contents as PNG bytes.
	CaptureImage(ctx context.Context) ([]byte, error)

	// OnClosed registers fn to run once when the window is destroyed.
	OnClosed(fn func())
}

// Factory creates native windows. The primary window is created hidden and
// shows itself on first paint-ready; the notes window shows immediately.
type Factory interface {
	NewPrimary(url string, width, height int) Window
	NewNotes(width, height int) Window
}
