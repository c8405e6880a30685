// Package wailsui binds the pure application model (window manager, command
// actions, menu table) to the Wails toolkit: real webview windows, native
// menus, dialogs and the webview event bridge.
package wailsui

// Event names for webview communication.
const (
	// EventPageHTML carries {id, html} replies to document snapshots.
	EventPageHTML = "page-html"
	// EventPageURL carries address updates on in-page navigation.
	EventPageURL = "page-url"
)
