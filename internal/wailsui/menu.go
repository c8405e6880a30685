package wailsui

import (
	"runtime"

	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/gptdesk/gptdesk/menu"
)

// AttachMenu materializes the declarative menu table onto the application
// menu bar, binding each entry to the action dispatcher. Dispatch runs off
// the UI thread so blocking dialogs never stall the event loop.
func AttachMenu(app *application.App, dispatch func(menu.ActionID)) {
	root := app.NewMenu()

	for _, section := range menu.Build(runtime.GOOS) {
		switch section.Role {
		case menu.RoleAppMenu:
			root.AddRole(application.AppMenu)
		case menu.RoleEdit:
			root.AddRole(application.EditMenu)
		case menu.RoleWindow:
			root.AddRole(application.WindowMenu)
		default:
			sub := root.AddSubmenu(section.Title)
			for _, item := range section.Items {
				if item.Separator {
					sub.AddSeparator()
					continue
				}
				id := item.ID
				entry := sub.Add(item.Label)
				if item.Accelerator != "" {
					entry.SetAccelerator(item.Accelerator)
				}
				entry.OnClick(func(ctx *application.Context) {
					go dispatch(id)
				})
			}
		}
	}

	app.SetMenu(root)
}
