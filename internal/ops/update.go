package ops

import (
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// ItemUpdate is a partial update to one item. Pointer fields distinguish
// "not provided" (nil) from "set to the zero value".
type ItemUpdate struct {
	Speaker *string
	Text    *string
	Start   *float64
	End     *float64
}

// empty reports whether the update carries no fields.
func (u ItemUpdate) empty() bool {
	return u.Speaker == nil && u.Text == nil && u.Start == nil && u.End == nil
}

// UpdateItem shallow-merges an update into exactly one item by id. This is
// the commit path for live speaker/text edits; debouncing is the caller's
// concern. An unknown id or an empty update is a no-op.
func UpdateItem(doc *transcript.Document, id string, update ItemUpdate) (*transcript.Document, error) {
	if doc == nil || update.empty() {
		return nil, nil
	}
	idx := doc.FindItem(id)
	if idx < 0 {
		return nil, nil
	}

	out := doc.Clone()
	item := &out.Content[idx]
	if update.Speaker != nil {
		item.Speaker = *update.Speaker
	}
	if update.Text != nil {
		item.Text = *update.Text
	}
	if update.Start != nil {
		s := *update.Start
		item.Start = &s
	}
	if update.End != nil {
		e := *update.End
		item.End = &e
	}

	return out, nil
}

// UpdateInfo shallow-merges metadata fields into the document info. The
// filename is immutable after import and cannot be updated here.
type InfoUpdate struct {
	Name        *string
	Slug        *string
	Date        *string
	Time        *string
	Description *string
}

// empty reports whether the update carries no fields.
func (u InfoUpdate) empty() bool {
	return u.Name == nil && u.Slug == nil && u.Date == nil && u.Time == nil && u.Description == nil
}

// UpdateInfo applies an InfoUpdate, creating the info block when absent.
func UpdateInfo(doc *transcript.Document, update InfoUpdate) (*transcript.Document, error) {
	if doc == nil || update.empty() {
		return nil, nil
	}

	out := doc.Clone()
	if out.Info == nil {
		out.Info = &transcript.Info{}
	}
	if update.Name != nil {
		out.Info.Name = *update.Name
	}
	if update.Slug != nil {
		out.Info.Slug = *update.Slug
	}
	if update.Date != nil {
		out.Info.Date = *update.Date
	}
	if update.Time != nil {
		out.Info.Time = *update.Time
	}
	if update.Description != nil {
		out.Info.Description = *update.Description
	}

	return out, nil
}
