//go:build darwin

package screenshot

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework Foundation
#import <CoreGraphics/CoreGraphics.h>
#import <Foundation/Foundation.h>

bool hasScreenRecordingPermission() {
    if (@available(macOS 11.0, *)) {
        return CGPreflightScreenCaptureAccess();
    }
    // No preflight API before macOS 11.
    return true;
}

void requestScreenRecordingPermission() {
    if (@available(macOS 11.0, *)) {
        CGRequestScreenCaptureAccess();
    }
}
*/
import "C"
import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// HasPermission reports whether the app has screen recording permission.
// Without it screencapture still exits 0 but records only the wallpaper.
func HasPermission() bool {
	return bool(C.hasScreenRecordingPermission())
}

// RequestPermission asks the system for screen recording permission. The
// system shows the prompt at most once; afterwards the user has to grant
// it in System Settings.
func RequestPermission() {
	C.requestScreenRecordingPermission()
}

// CaptureRect captures the given screen rectangle to a temporary PNG file
// and returns its path. The caller removes the file when done.
func CaptureRect(x, y, width, height int) (string, error) {
	tmpDir := os.TempDir()
	fileName := fmt.Sprintf("gptdesk_capture_%d.png", time.Now().UnixNano())
	filePath := filepath.Join(tmpDir, fileName)

	// screencapture -x: no sound, -R: capture the given rectangle.
	rect := fmt.Sprintf("%d,%d,%d,%d", x, y, width, height)
	cmd := exec.Command("screencapture", "-x", "-R", rect, filePath)

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("screencapture failed: %w", err)
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("screenshot was not written")
	}

	return filePath, nil
}
