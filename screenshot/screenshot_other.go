//go:build !darwin

package screenshot

import "errors"

// HasPermission reports whether screen capture is permitted. There is no
// preflight concept outside darwin; CaptureRect reports the missing
// backend instead.
func HasPermission() bool { return true }

// RequestPermission is a no-op outside darwin.
func RequestPermission() {}

// CaptureRect captures the given screen rectangle to a temporary PNG file.
// Not implemented outside darwin; callers surface the error to the user.
func CaptureRect(x, y, width, height int) (string, error) {
	return "", errors.New("screen capture is not supported on this platform")
}
