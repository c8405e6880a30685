//go:build !darwin

package hotkey

import "golang.design/x/hotkey"

func platformCombo() ([]hotkey.Modifier, hotkey.Key) {
	return []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeyG
}

func comboString() string { return "Ctrl+Shift+G" }
