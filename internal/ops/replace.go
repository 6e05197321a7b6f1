package ops

import (
	"strings"

	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// ReplaceText performs a global substring replacement (not regex) across
// every item's text. An empty search string is a no-op, as is a search that
// matches nothing.
func ReplaceText(doc *transcript.Document, search, replacement string) (*transcript.Document, error) {
	if doc == nil || search == "" {
		return nil, nil
	}

	changed := false
	out := doc.Clone()
	for i := range out.Content {
		if !strings.Contains(out.Content[i].Text, search) {
			continue
		}
		out.Content[i].Text = strings.ReplaceAll(out.Content[i].Text, search, replacement)
		changed = true
	}
	if !changed {
		return nil, nil
	}
	return out, nil
}
