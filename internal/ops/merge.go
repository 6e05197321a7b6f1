package ops

import (
	"strings"

	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// Merge combines the selected speech items into one. The merged item keeps
// the id and speaker of the first selected item in document order; its text
// is the selected texts concatenated in document order (not selection
// order), its start is the minimum start and its end the maximum end. The
// merged item replaces the selection and the whole content is re-sorted
// ascending by start time, the only operation that reorders content.
//
// Ids not present in the document are ignored; a selection that matches
// nothing is a no-op. A selection that includes a divider or markdown item
// is rejected with a VALIDATION_ERROR rather than silently coerced into
// speech.
func Merge(doc *transcript.Document, ids []string) (*transcript.Document, error) {
	if doc == nil || len(ids) == 0 {
		return nil, nil
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	// Walk content once so the merge respects document order.
	var picked []transcript.Item
	for _, it := range doc.Content {
		if selected[it.ID] {
			picked = append(picked, it)
		}
	}
	if len(picked) == 0 {
		return nil, nil
	}
	for _, it := range picked {
		if it.Type != transcript.ItemSpeech {
			return nil, errors.NewValidation("only speech items can be merged", nil)
		}
	}
	if len(picked) == 1 {
		return nil, nil
	}

	merged := transcript.Item{
		ID:      picked[0].ID,
		Type:    transcript.ItemSpeech,
		Speaker: picked[0].Speaker,
	}

	var texts []string
	for _, it := range picked {
		texts = append(texts, it.Text)
		if it.Start != nil && (merged.Start == nil || *it.Start < *merged.Start) {
			s := *it.Start
			merged.Start = &s
		}
		if it.End != nil && (merged.End == nil || *it.End > *merged.End) {
			e := *it.End
			merged.End = &e
		}
	}
	merged.Text = strings.Join(texts, "")

	out := doc.Clone()
	kept := out.Content[:0]
	for _, it := range out.Content {
		if !selected[it.ID] {
			kept = append(kept, it)
		}
	}
	out.Content = append(kept, merged)
	sortByStart(out.Content)

	return out, nil
}
