// Package command implements the user-invocable actions behind menu entries
// and shortcuts. Every action borrows the current primary window from the
// lifecycle manager and silently no-ops when none is live; failures are
// logged and surfaced in an error dialog, never returned to the event loop.
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gptdesk/gptdesk/export"
	"github.com/gptdesk/gptdesk/menu"
	"github.com/gptdesk/gptdesk/winman"
)

const (
	// zoom step and bounds applied by the zoom actions.
	zoomStep  = 0.1
	zoomFloor = 0.5
	zoomReset = 1.0

	suggestedPDFName  = "chatgpt-chat.pdf"
	suggestedTextName = "chatgpt-chat.txt"
	suggestedPNGName  = "gpt-window.png"

	pdfTitle = "ChatGPT"
)

// UI is the dialog/clipboard/shell surface actions report through. The
// Wails-backed implementation lives in internal/wailsui.
type UI interface {
	// PromptSavePath asks the user for a destination path, suggesting
	// fileName. ok is false when the user cancels.
	PromptSavePath(title, fileName string) (path string, ok bool, err error)

	// ShowError blocks on a modal error dialog carrying err's message.
	ShowError(title string, err error)

	CopyToClipboard(text string) error
	OpenExternal(url string) error
}

// Actions binds every command action to the window manager and UI surface.
type Actions struct {
	windows *winman.Manager
	ui      UI
}

func New(windows *winman.Manager, ui UI) *Actions {
	return &Actions{windows: windows, ui: ui}
}

// Dispatch routes a menu action identifier to its implementation. Unknown
// identifiers are logged and ignored.
func (a *Actions) Dispatch(id menu.ActionID) {
	switch id {
	case menu.ActionNewChat:
		a.windows.NewChat()
	case menu.ActionReload:
		a.Reload()
	case menu.ActionCopyURL:
		a.CopyURL()
	case menu.ActionOpenInBrowser:
		a.OpenInBrowser()
	case menu.ActionExportPDF:
		a.ExportPDF()
	case menu.ActionExportText:
		a.ExportText()
	case menu.ActionScreenshot:
		a.Screenshot()
	case menu.ActionResetSize:
		a.windows.ResetSize()
	case menu.ActionZoomIn:
		a.ZoomIn()
	case menu.ActionZoomOut:
		a.ZoomOut()
	case menu.ActionZoomReset:
		a.ZoomReset()
	case menu.ActionToggleOnTop:
		a.ToggleAlwaysOnTop()
	case menu.ActionToggleFullscreen:
		a.ToggleFullscreen()
	case menu.ActionOpenNotes:
		a.windows.EnsureNotes()
	default:
		slog.Warn("unknown menu action", "id", id)
	}
}

// primary returns the live primary window, or ok=false. Every action checks
// this first so a destroyed window produces zero observable side effects.
func (a *Actions) primary() (winman.Window, bool) {
	return a.windows.Primary()
}

// Reload re-loads the current page in place.
func (a *Actions) Reload() {
	if w, ok := a.primary(); ok {
		w.Reload()
	}
}

// CopyURL writes the current address to the system clipboard. An empty
// address is a no-op.
func (a *Actions) CopyURL() {
	w, ok := a.primary()
	if !ok {
		return
	}
	url := w.URL()
	if url == "" {
		return
	}
	if err := a.ui.CopyToClipboard(url); err != nil {
		slog.Error("copy url to clipboard", "error", err)
		a.ui.ShowError("Copy URL", err)
	}
}

// OpenInBrowser hands the current address to the OS default handler.
func (a *Actions) OpenInBrowser() {
	w, ok := a.primary()
	if !ok {
		return
	}
	url := w.URL()
	if url == "" {
		return
	}
	if err := a.ui.OpenExternal(url); err != nil {
		slog.Error("open url externally", "url", url, "error", err)
		a.ui.ShowError("Open in Browser", err)
	}
}

// ExportPDF prompts for a destination and writes the page's visible content
// as a paginated PDF. Cancelling the prompt aborts silently.
func (a *Actions) ExportPDF() {
	w, ok := a.primary()
	if !ok {
		return
	}
	path, ok, err := a.ui.PromptSavePath("Export Chat as PDF", suggestedPDFName)
	if err != nil {
		slog.Error("save dialog", "error", err)
		a.ui.ShowError("Export PDF", err)
		return
	}
	if !ok {
		return
	}

	data, err := a.renderPDF(w)
	if err == nil {
		err = os.WriteFile(path, data, 0644)
	}
	if err != nil {
		slog.Error("export pdf", "path", path, "error", err)
		a.ui.ShowError("Export PDF", err)
		return
	}
	slog.Info("exported chat as pdf", "path", path)
}

func (a *Actions) renderPDF(w winman.Window) ([]byte, error) {
	pageHTML, err := w.HTML(context.Background())
	if err != nil {
		return nil, fmt.Errorf("read page content: %w", err)
	}
	text, err := export.VisibleText(pageHTML)
	if err != nil {
		return nil, err
	}
	return export.PDF(pdfTitle, text)
}

// ExportText prompts for a destination and writes the page's visible plain
// text as UTF-8. Empty content writes an empty file rather than failing.
func (a *Actions) ExportText() {
	w, ok := a.primary()
	if !ok {
		return
	}
	path, ok, err := a.ui.PromptSavePath("Export Chat as Text", suggestedTextName)
	if err != nil {
		slog.Error("save dialog", "error", err)
		a.ui.ShowError("Export Text", err)
		return
	}
	if !ok {
		return
	}

	text, err := a.renderText(w)
	if err == nil {
		err = os.WriteFile(path, []byte(text), 0644)
	}
	if err != nil {
		slog.Error("export text", "path", path, "error", err)
		a.ui.ShowError("Export Text", err)
		return
	}
	slog.Info("exported chat as text", "path", path)
}

func (a *Actions) renderText(w winman.Window) (string, error) {
	pageHTML, err := w.HTML(context.Background())
	if err != nil {
		return "", fmt.Errorf("read page content: %w", err)
	}
	return export.VisibleText(pageHTML)
}

// Screenshot prompts for a destination and writes the window's visible
// pixels as a PNG image.
func (a *Actions) Screenshot() {
	w, ok := a.primary()
	if !ok {
		return
	}
	path, ok, err := a.ui.PromptSavePath("Save Screenshot", suggestedPNGName)
	if err != nil {
		slog.Error("save dialog", "error", err)
		a.ui.ShowError("Screenshot", err)
		return
	}
	if !ok {
		return
	}

	data, err := w.CaptureImage(context.Background())
	if err == nil {
		err = os.WriteFile(path, data, 0644)
	}
	if err != nil {
		slog.Error("capture screenshot", "path", path, "error", err)
		a.ui.ShowError("Screenshot", err)
		return
	}
	slog.Info("saved window screenshot", "path", path)
}

func (a *Actions) ZoomIn() {
	if w, ok := a.primary(); ok {
		w.SetZoom(w.Zoom() + zoomStep)
	}
}

// ZoomOut never drives the factor below the floor.
func (a *Actions) ZoomOut() {
	w, ok := a.primary()
	if !ok {
		return
	}
	z := w.Zoom() - zoomStep
	if z < zoomFloor {
		z = zoomFloor
	}
	w.SetZoom(z)
}

func (a *Actions) ZoomReset() {
	if w, ok := a.primary(); ok {
		w.SetZoom(zoomReset)
	}
}

func (a *Actions) ToggleAlwaysOnTop() {
	if w, ok := a.primary(); ok {
		w.SetAlwaysOnTop(!w.AlwaysOnTop())
	}
}

func (a *Actions) ToggleFullscreen() {
	if w, ok := a.primary(); ok {
		w.SetFullscreen(!w.IsFullscreen())
	}
}
