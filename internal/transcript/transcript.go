package transcript

import "encoding/json"

// ItemType discriminates the three kinds of content items.
type ItemType string

const (
	ItemSpeech   ItemType = "speech"
	ItemDivider  ItemType = "divider"
	ItemMarkdown ItemType = "markdown"
)

// Item is one row of the transcript. Which fields are meaningful depends on
// Type: speech carries start/end/speaker/text, divider optionally carries
// start/end/text, markdown carries text only.
type Item struct {
	// ID uniquely identifies the item for the lifetime of the document.
	// Generated at creation, never reassigned on edit.
	ID string `json:"id"`

	// Type is the discriminator tag
	Type ItemType `json:"type"`

	// Start and End are playback positions in seconds. Nil when the item has
	// no time range (markdown, some dividers). Invariant: End >= Start.
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`

	// Speaker is the speaker name for speech items
	Speaker string `json:"speaker,omitempty"`

	// Text is the item body (speech transcript, divider label, markdown source)
	Text string `json:"text,omitempty"`
}

// StartOrZero returns the start time, treating an absent start as 0.
// Used when sorting content by start time.
func (it *Item) StartOrZero() float64 {
	if it.Start == nil {
		return 0
	}
	return *it.Start
}

// Info is the document metadata. Filename is immutable after import;
// Name, Slug and Date are required before the document can be exported.
type Info struct {
	Filename    string `json:"filename,omitempty"`
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
}

// Raw is the provenance payload preserved verbatim from import. The engine
// never interprets these blobs; they are re-emitted unchanged on save.
type Raw struct {
	Srt         string          `json:"srt,omitempty"`
	Diarization json.RawMessage `json:"diarization,omitempty"`
	Transcript  json.RawMessage `json:"transcript,omitempty"`
}

// Document is the root entity: metadata plus an ordered list of items.
// Content order is semantically meaningful (reading/playback order) and is
// preserved across every operation except merge, which re-sorts by start.
type Document struct {
	Info    *Info  `json:"info"`
	Content []Item `json:"content"`
	Raw     *Raw   `json:"raw"`
}

// Empty reports whether the document holds nothing: no metadata, no content,
// no provenance. This is the "closed file" state.
func (d *Document) Empty() bool {
	if d == nil {
		return true
	}
	return d.Info == nil && len(d.Content) == 0 && d.Raw == nil
}

// FindItem returns the index of the item with the given id, or -1.
func (d *Document) FindItem(id string) int {
	for i := range d.Content {
		if d.Content[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the document. History snapshots must be
// structurally independent so that in-place mutation of the live document
// cannot corrupt stored entries.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{}
	if d.Info != nil {
		info := *d.Info
		out.Info = &info
	}
	if d.Raw != nil {
		raw := Raw{Srt: d.Raw.Srt}
		if d.Raw.Diarization != nil {
			raw.Diarization = append(json.RawMessage(nil), d.Raw.Diarization...)
		}
		if d.Raw.Transcript != nil {
			raw.Transcript = append(json.RawMessage(nil), d.Raw.Transcript...)
		}
		out.Raw = &raw
	}
	if d.Content != nil {
		out.Content = make([]Item, len(d.Content))
		for i, it := range d.Content {
			out.Content[i] = it.clone()
		}
	}
	return out
}

func (it Item) clone() Item {
	if it.Start != nil {
		s := *it.Start
		it.Start = &s
	}
	if it.End != nil {
		e := *it.End
		it.End = &e
	}
	return it
}

// requiredExportFields are the info fields that must be set before export.
var requiredExportFields = []string{"name", "slug", "date"}

// MissingExportFields returns the required info fields that are still unset,
// in a stable order. An exportable document returns an empty slice.
func (d *Document) MissingExportFields() []string {
	var missing []string
	for _, f := range requiredExportFields {
		val := ""
		if d != nil && d.Info != nil {
			switch f {
			case "name":
				val = d.Info.Name
			case "slug":
				val = d.Info.Slug
			case "date":
				val = d.Info.Date
			}
		}
		if val == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
