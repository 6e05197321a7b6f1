// Package clipboard wraps system clipboard access for export copy.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
)

// WriteAll places text on the system clipboard. Empty text is rejected so a
// failed export can never silently blank the clipboard.
func WriteAll(text string) error {
	if text == "" {
		return errors.NewInvalidRequest("nothing to copy")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// ReadAll returns the current text content of the system clipboard.
func ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.NewInternal(err)
	}
	return text, nil
}
