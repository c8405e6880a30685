// Package menu declares the application menu as data: a platform-conditional
// table of sections and items referencing command actions by identifier.
// Binding the table to the real windowing toolkit happens elsewhere, so the
// structure itself stays a pure function of platform identity.
package menu

// ActionID names a command action an item dispatches to.
type ActionID string

const (
	ActionNewChat          ActionID = "new-chat"
	ActionReload           ActionID = "reload"
	ActionCopyURL          ActionID = "copy-url"
	ActionOpenInBrowser    ActionID = "open-in-browser"
	ActionExportPDF        ActionID = "export-pdf"
	ActionExportText       ActionID = "export-text"
	ActionScreenshot       ActionID = "screenshot"
	ActionResetSize        ActionID = "reset-size"
	ActionZoomIn           ActionID = "zoom-in"
	ActionZoomOut          ActionID = "zoom-out"
	ActionZoomReset        ActionID = "zoom-reset"
	ActionToggleOnTop      ActionID = "toggle-always-on-top"
	ActionToggleFullscreen ActionID = "toggle-fullscreen"
	ActionOpenNotes        ActionID = "open-notes"
)

// Role marks an item or section as a platform-standard role the toolkit
// implements natively instead of dispatching to a command action.
type Role string

const (
	RoleNone    Role = ""
	RoleAppMenu Role = "app"  // application submenu (about/hide/quit)
	RoleEdit    Role = "edit" // undo/redo/cut/copy/paste
	RoleWindow  Role = "window"
)

// Item is one menu entry. Exactly one of ID, Role or Separator is set.
type Item struct {
	ID          ActionID
	Label       string
	Accelerator string
	Separator   bool
}

// Section is a titled top-level submenu, or a toolkit role submenu.
type Section struct {
	Title string
	Role  Role
	Items []Item
}

// Build returns the full menu for the given platform identity (a GOOS
// value). It is called once at startup.
func Build(platform string) []Section {
	darwin := platform == "darwin"

	var sections []Section
	if darwin {
		sections = append(sections, Section{Role: RoleAppMenu})
	}

	sections = append(sections,
		Section{
			Title: "Chat",
			Items: []Item{
				{ID: ActionNewChat, Label: "New Chat", Accelerator: "CmdOrCtrl+N"},
				{ID: ActionReload, Label: "Reload", Accelerator: "CmdOrCtrl+R"},
				{Separator: true},
				{ID: ActionCopyURL, Label: "Copy URL"},
				{ID: ActionOpenInBrowser, Label: "Open in Browser"},
				{Separator: true},
				{ID: ActionExportPDF, Label: "Export Chat as PDF..."},
				{ID: ActionExportText, Label: "Export Chat as Text..."},
				{ID: ActionScreenshot, Label: "Save Screenshot..."},
			},
		},
		Section{Role: RoleEdit},
		Section{
			Title: "View",
			Items: []Item{
				{ID: ActionZoomIn, Label: "Zoom In", Accelerator: "CmdOrCtrl+Plus"},
				{ID: ActionZoomOut, Label: "Zoom Out", Accelerator: "CmdOrCtrl+-"},
				{ID: ActionZoomReset, Label: "Actual Size", Accelerator: "CmdOrCtrl+0"},
				{Separator: true},
				{ID: ActionToggleFullscreen, Label: "Toggle Full Screen", Accelerator: "CmdOrCtrl+Shift+F"},
				{ID: ActionResetSize, Label: "Reset Window Size"},
			},
		},
		Section{
			Title: "Window",
			Items: []Item{
				{ID: ActionToggleOnTop, Label: "Always on Top", Accelerator: "CmdOrCtrl+T"},
				{ID: ActionOpenNotes, Label: "Notes", Accelerator: "CmdOrCtrl+Shift+N"},
			},
		},
	)

	if darwin {
		sections = append(sections, Section{Role: RoleWindow})
	}
	return sections
}
