package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/gptdesk/gptdesk/command"
	"github.com/gptdesk/gptdesk/hotkey"
	"github.com/gptdesk/gptdesk/internal/wailsui"
	"github.com/gptdesk/gptdesk/winman"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	})))
	slog.Info("starting gptdesk", "version", version, "commit", commit, "date", date)

	var registrar *hotkey.Registrar

	app := application.New(application.Options{
		Name:        "GPT Desk",
		Description: "Desktop shell for the ChatGPT web app",
		Mac: application.MacOptions{
			// Closing the window hides the app; the process stays alive
			// and reopening recreates the window.
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
		// Outside mac there is no dock to reopen from, so closing the
		// last window quits the app.
		Windows: application.WindowsOptions{
			DisableQuitOnLastWindowClosed: false,
		},
		Linux: application.LinuxOptions{
			DisableQuitOnLastWindowClosed: false,
			ProgramName:                   "gptdesk",
		},
		OnShutdown: func() {
			if registrar != nil {
				registrar.Stop()
			}
		},
	})

	windows := winman.New(wailsui.NewFactory(app))
	actions := command.New(windows, wailsui.Dialogs{})

	wailsui.AttachMenu(app, actions.Dispatch)

	windows.EnsurePrimary()

	registrar = hotkey.NewRegistrar(func() {
		windows.EnsurePrimary()
	})
	if err := registrar.Start(); err != nil {
		// The shortcut is a convenience; startup proceeds without it.
		slog.Error("start global shortcut", "error", err)
	}

	// Dock icon clicked with no open windows: bring back the primary window.
	app.OnApplicationEvent(events.Mac.ApplicationShouldHandleReopen, func(e *application.ApplicationEvent) {
		windows.EnsurePrimary()
	})

	if err := app.Run(); err != nil {
		slog.Error("run app", "error", err)
		os.Exit(1)
	}
}
