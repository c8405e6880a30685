// Package clipboard wraps the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SetText writes text to the system clipboard.
func SetText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
