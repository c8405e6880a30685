// Package hotkey registers the application's single OS-wide shortcut and
// invokes a callback when it fires. Registration failure is logged and
// otherwise ignored: the shortcut is a convenience, never a startup gate.
package hotkey

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.design/x/hotkey"
)

// Registrar owns the process's global shortcut registration.
type Registrar struct {
	onTrigger func()

	mu   sync.Mutex
	hk   *hotkey.Hotkey
	done chan struct{}
}

func NewRegistrar(onTrigger func()) *Registrar {
	return &Registrar{onTrigger: onTrigger}
}

// Start registers the platform shortcut and listens for key-down events
// until Stop is called. Safe to call once; a second Start while running is
// a no-op.
func (r *Registrar) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hk != nil {
		return nil
	}

	mods, key := platformCombo()
	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register global shortcut: %w", err)
	}

	r.hk = hk
	r.done = make(chan struct{})
	go r.listen(hk, r.done)

	slog.Info("global shortcut registered", "combo", comboString())
	return nil
}

func (r *Registrar) listen(hk *hotkey.Hotkey, done chan struct{}) {
	for {
		select {
		case <-hk.Keydown():
			r.onTrigger()
		case <-done:
			return
		}
	}
}

// Stop releases the registration. Called once at process shutdown.
func (r *Registrar) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hk == nil {
		return
	}
	close(r.done)
	if err := r.hk.Unregister(); err != nil {
		slog.Error("unregister global shortcut", "error", err)
	}
	r.hk = nil
}
