package ops

import (
	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// InsertBlock inserts a new divider or markdown item with a freshly
// generated id immediately after afterIndex. Later items shift by one
// position; existing ids are unchanged. afterIndex -1 inserts at the front.
// An afterIndex beyond the end of content is a no-op.
func InsertBlock(doc *transcript.Document, afterIndex int, kind transcript.ItemType) (*transcript.Document, error) {
	if kind != transcript.ItemDivider && kind != transcript.ItemMarkdown {
		return nil, errors.NewInvalidRequest("kind must be one of: divider, markdown")
	}
	if doc == nil || afterIndex < -1 || afterIndex >= len(doc.Content) {
		return nil, nil
	}

	id, err := transcript.NewItemID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	out := doc.Clone()
	item := transcript.Item{ID: id, Type: kind}
	at := afterIndex + 1
	out.Content = append(out.Content[:at], append([]transcript.Item{item}, out.Content[at:]...)...)

	return out, nil
}

// DeleteItem removes the item at index. Dangling references are not a
// concern: selections are recomputed from current ids, never retained
// across structural edits by index. An out-of-range index is a no-op.
func DeleteItem(doc *transcript.Document, index int) (*transcript.Document, error) {
	if doc == nil || index < 0 || index >= len(doc.Content) {
		return nil, nil
	}

	out := doc.Clone()
	out.Content = append(out.Content[:index], out.Content[index+1:]...)

	return out, nil
}
