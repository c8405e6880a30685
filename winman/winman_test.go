package winman

import (
	"context"
	"testing"
)

// fakeWindow records every operation so tests can assert on observable
// side effects only.
type fakeWindow struct {
	url        string
	width      int
	height     int
	zoom       float64
	minimised  bool
	onTop      bool
	fullscreen bool
	centered   bool

	showCount    int
	focusCount   int
	restoreCount int

	onClosed []func()
}

func newFakeWindow(url string, w, h int) *fakeWindow {
	return &fakeWindow{url: url, width: w, height: h, zoom: 1.0}
}

func (f *fakeWindow) Show()                 { f.showCount++ }
func (f *fakeWindow) Focus()                { f.focusCount++ }
func (f *fakeWindow) Restore()              { f.restoreCount++; f.minimised = false }
func (f *fakeWindow) IsMinimised() bool     { return f.minimised }
func (f *fakeWindow) URL() string           { return f.url }
func (f *fakeWindow) SetURL(url string)     { f.url = url }
func (f *fakeWindow) Reload()               {}
func (f *fakeWindow) Size() (int, int)      { return f.width, f.height }
func (f *fakeWindow) SetSize(w, h int)      { f.width, f.height = w, h; f.centered = false }
func (f *fakeWindow) Center()               { f.centered = true }
func (f *fakeWindow) Zoom() float64         { return f.zoom }
func (f *fakeWindow) SetZoom(z float64)     { f.zoom = z }
func (f *fakeWindow) AlwaysOnTop() bool     { return f.onTop }
func (f *fakeWindow) SetAlwaysOnTop(v bool) { f.onTop = v }
func (f *fakeWindow) IsFullscreen() bool    { return f.fullscreen }
func (f *fakeWindow) SetFullscreen(v bool)  { f.fullscreen = v }
func (f *fakeWindow) OnClosed(fn func())    { f.onClosed = append(f.onClosed, fn) }

func (f *fakeWindow) HTML(context.Context) (string, error)         { return "", nil }
func (f *fakeWindow) CaptureImage(context.Context) ([]byte, error) { return nil, nil }

// close runs the registered destruction callbacks, simulating the native
// window being destroyed.
func (f *fakeWindow) close() {
	for _, fn := range f.onClosed {
		fn()
	}
}

type fakeFactory struct {
	primaries []*fakeWindow
	notes     []*fakeWindow
}

func (f *fakeFactory) NewPrimary(url string, w, h int) Window {
	win := newFakeWindow(url, w, h)
	f.primaries = append(f.primaries, win)
	return win
}

func (f *fakeFactory) NewNotes(w, h int) Window {
	win := newFakeWindow("", w, h)
	f.notes = append(f.notes, win)
	return win
}

func TestEnsurePrimaryCreatesOnce(t *testing.T) {
	factory := &fakeFactory{}
	m := New(factory)

	first := m.EnsurePrimary()
	if len(factory.primaries) != 1 {
		t.Fatalf("expected 1 window created, got %d", len(factory.primaries))
	}
	if factory.primaries[0].url != ChatURL {
		t.Errorf("expected canonical URL %q, got %q", ChatURL, factory.primaries[0].url)
	}

	second := m.EnsurePrimary()
	if len(factory.primaries) != 1 {
		t.Fatalf("second EnsurePrimary created a window, want reuse")
	}
	if first != second {
		t.Errorf("expected same window identity")
	}
	if factory.primaries[0].focusCount == 0 {
		t.Errorf("existing window was not focused")
	}
}

func TestEnsurePrimaryRestoresMinimised(t *testing.T) {
	factory := &fakeFactory{}
	m := New(factory)

	m.EnsurePrimary()
	win := factory.primaries[0]
	win.minimised = true

	m.EnsurePrimary()
	if win.restoreCount != 1 {
		t.Errorf("expected restore on minimised window, got %d calls", win.restoreCount)
	}
	if win.minimised {
		t.Errorf("window still minimised")
	}
}

func TestClosingPrimaryClearsSlot(t *testing.T) {
	factory := &fakeFactory{}
	m := New(factory)

	m.EnsurePrimary()
	factory.primaries[0].close()

	if _, ok := m.Primary(); ok {
		t.Fatalf("slot not cleared after close")
	}

	m.EnsurePrimary()
	if len(factory.primaries) != 2 {
		t.Fatalf("expected a fresh window after close, got %d total", len(factory.primaries))
	}
}

func TestStaleCloseCallbackDoesNotClearNewWindow(t *testing.T) {
	factory := &fakeFactory{}
	m := New(factory)

	m.EnsurePrimary()
	old := factory.primaries[0]
	old.close()
	m.EnsurePrimary()

	// Running the old window's callback again must not evict the new one.
	old.close()
	if _, ok := m.Primary(); !ok {
		t.Fatalf("new window evicted by stale callback")
	}
}

func TestNewChatKeepsIdentityResetsAddress(t *testing.T) {
	factory := &fakeFactory{}
	m := New(factory)

	win := m.EnsurePrimary()
	factory.primaries[0].url = ChatURL + "c/123"

	got := m.NewChat()
	if got != win {
		t.Errorf("NewChat replaced the live window")
	}
	if factory.primaries[0].url != ChatURL {
		t.Errorf("expected URL reset to %q, got %q", ChatURL, factory.primaries[0].url)
	}
}

func TestNewChatCreatesWhenNoWindow(t *testing.T) {
	factory := &fakeFactory{}
	m := New(factory)

	m.NewChat()
	if len(factory.primaries) != 1 {
		t.Fatalf("expected window created, got %d", len(factory.primaries))
	}
}

func TestResetSize(t *testing.T) {
	factory := &fakeFactory{}
	m := New(factory)

	// No live window: must be a silent no-op.
	m.ResetSize()

	m.EnsurePrimary()
	win := factory.primaries[0]
	win.SetSize(1400, 200)

	m.ResetSize()
	if win.width != DefaultWidth || win.height != DefaultHeight {
		t.Errorf("expected %dx%d, got %dx%d", DefaultWidth, DefaultHeight, win.width, win.height)
	}
	if !win.centered {
		t.Errorf("window not re-centered")
	}
}

func TestEnsureNotesSingleton(t *testing.T) {
	factory := &fakeFactory{}
	m := New(factory)

	first := m.EnsureNotes()
	second := m.EnsureNotes()
	if len(factory.notes) != 1 {
		t.Fatalf("expected 1 notes window, got %d", len(factory.notes))
	}
	if first != second {
		t.Errorf("notes window duplicated")
	}
	if factory.notes[0].focusCount < 2 {
		t.Errorf("existing notes window not focused on second call")
	}
	if w, h := factory.notes[0].Size(); w != NotesWidth || h != NotesHeight {
		t.Errorf("expected %dx%d notes window, got %dx%d", NotesWidth, NotesHeight, w, h)
	}
}

func TestNotesLifecycleIndependentOfPrimary(t *testing.T) {
	factory := &fakeFactory{}
	m := New(factory)

	m.EnsurePrimary()
	m.EnsureNotes()

	factory.primaries[0].close()
	if len(factory.notes) != 1 {
		t.Fatalf("notes affected by primary close")
	}

	factory.notes[0].close()
	m.EnsureNotes()
	if len(factory.notes) != 2 {
		t.Fatalf("expected notes window recreated after close")
	}
}
