package ops

import (
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// RenameSpeaker rewrites the speaker on every speech item whose speaker
// equals oldName. Returns (nil, nil) when oldName is absent from the
// document.
func RenameSpeaker(doc *transcript.Document, oldName, newName string) (*transcript.Document, error) {
	if doc == nil {
		return nil, nil
	}

	changed := false
	out := doc.Clone()
	for i := range out.Content {
		if out.Content[i].Type == transcript.ItemSpeech && out.Content[i].Speaker == oldName {
			out.Content[i].Speaker = newName
			changed = true
		}
	}
	if !changed {
		return nil, nil
	}
	return out, nil
}

// ReassignSpeaker sets the speaker on every item whose id is in ids. Only
// meaningful for speech items; the field is harmless on others. Returns
// (nil, nil) when none of the ids are present.
func ReassignSpeaker(doc *transcript.Document, ids []string, newName string) (*transcript.Document, error) {
	if doc == nil || len(ids) == 0 {
		return nil, nil
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	changed := false
	out := doc.Clone()
	for i := range out.Content {
		if selected[out.Content[i].ID] {
			out.Content[i].Speaker = newName
			changed = true
		}
	}
	if !changed {
		return nil, nil
	}
	return out, nil
}
