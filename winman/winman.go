// Package winman owns the application's two window slots: the primary window
// hosting the wrapped web page and the auxiliary notes window. At most one
// live window of each kind exists; everything else borrows references and
// must tolerate the slot being empty.
package winman

import (
	"log/slog"
	"sync"
)

const (
	// ChatURL is the canonical entry address of the wrapped page.
	ChatURL = "https://chatgpt.com/"

	DefaultWidth  = 900
	DefaultHeight = 700

	NotesWidth  = 400
	NotesHeight = 500
)

// Manager owns the primary and notes window slots. Menu clicks and the
// global hotkey invoke it from different goroutines, so the slots are
// guarded by a mutex; window methods themselves marshal onto the UI thread.
type Manager struct {
	factory Factory

	mu      sync.Mutex
	primary Window
	notes   Window
}

func New(factory Factory) *Manager {
	return &Manager{factory: factory}
}

// Primary returns the live primary window, or ok=false when none exists.
func (m *Manager) Primary() (Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.primary == nil {
		return nil, false
	}
	return m.primary, true
}

// EnsurePrimary creates the primary window if none is live, otherwise
// restores, shows and focuses the existing one. It never fails.
func (m *Manager) EnsurePrimary() Window {
	m.mu.Lock()
	w := m.primary
	if w == nil {
		w = m.createPrimary()
		m.mu.Unlock()
		return w
	}
	m.mu.Unlock()

	if w.IsMinimised() {
		w.Restore()
	}
	w.Show()
	w.Focus()
	return w
}

// createPrimary fills the primary slot; the caller holds the lock.
func (m *Manager) createPrimary() Window {
	w := m.factory.NewPrimary(ChatURL, DefaultWidth, DefaultHeight)
	m.primary = w
	w.OnClosed(func() {
		m.mu.Lock()
		if m.primary == w {
			m.primary = nil
			slog.Debug("primary window closed")
		}
		m.mu.Unlock()
	})
	return w
}

// NewChat guarantees the visible content is back at the canonical entry
// address: re-navigates the live primary window, or creates one.
func (m *Manager) NewChat() Window {
	m.mu.Lock()
	w := m.primary
	m.mu.Unlock()

	if w == nil {
		return m.EnsurePrimary()
	}
	w.SetURL(ChatURL)
	w.Show()
	w.Focus()
	return w
}

// ResetSize restores the primary window to the default dimensions and
// re-centers it. No-op when no primary window is live.
func (m *Manager) ResetSize() {
	w, ok := m.Primary()
	if !ok {
		return
	}
	w.SetSize(DefaultWidth, DefaultHeight)
	w.Center()
}

// EnsureNotes focuses the live notes window, creating it lazily on first
// request. The notes window's lifecycle is independent of the primary's.
func (m *Manager) EnsureNotes() Window {
	m.mu.Lock()
	w := m.notes
	if w == nil {
		w = m.factory.NewNotes(NotesWidth, NotesHeight)
		m.notes = w
		w.OnClosed(func() {
			m.mu.Lock()
			if m.notes == w {
				m.notes = nil
				slog.Debug("notes window closed")
			}
			m.mu.Unlock()
		})
	}
	m.mu.Unlock()

	w.Show()
	w.Focus()
	return w
}
