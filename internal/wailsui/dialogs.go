package wailsui

import (
	"github.com/pkg/browser"
	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/gptdesk/gptdesk/clipboard"
)

// Dialogs implements the command.UI surface with native facilities.
type Dialogs struct{}

// PromptSavePath opens a native save dialog. Cancellation returns ok=false
// and no error.
func (Dialogs) PromptSavePath(title, fileName string) (string, bool, error) {
	dialog := application.SaveFileDialog().
		SetMessage(title).
		SetFilename(fileName).
		CanCreateDirectories(true)

	path, err := dialog.PromptForSingleSelection()
	if err != nil {
		return "", false, err
	}
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}

// ShowError blocks on a modal error dialog until the user dismisses it.
func (Dialogs) ShowError(title string, err error) {
	application.ErrorDialog().
		SetTitle(title).
		SetMessage(err.Error()).
		Show()
}

func (Dialogs) CopyToClipboard(text string) error {
	return clipboard.SetText(text)
}

func (Dialogs) OpenExternal(url string) error {
	return browser.OpenURL(url)
}
