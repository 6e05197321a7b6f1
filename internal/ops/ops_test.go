package ops

import (
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

func f(v float64) *float64 { return &v }

func str(s string) *string { return &s }

// sampleDoc mirrors the shape of an SRT import: two speakers with a silence
// divider between them, plus a trailing markdown note.
func sampleDoc() *transcript.Document {
	return &transcript.Document{
		Info: &transcript.Info{Filename: "meeting.srt"},
		Raw:  &transcript.Raw{Srt: "original"},
		Content: []transcript.Item{
			{ID: "s1", Type: transcript.ItemSpeech, Start: f(0), End: f(2.5), Speaker: "Alice", Text: "Hello"},
			{ID: "d1", Type: transcript.ItemDivider, Start: f(2.5), End: f(70)},
			{ID: "s2", Type: transcript.ItemSpeech, Start: f(70), End: f(72), Speaker: "Bob", Text: "Hi"},
			{ID: "s3", Type: transcript.ItemSpeech, Start: f(72), End: f(75), Speaker: "Alice", Text: "Bye"},
			{ID: "m1", Type: transcript.ItemMarkdown, Text: "# notes"},
		},
	}
}

// contentIDs extracts content ids in order.
func contentIDs(doc *transcript.Document) []string {
	ids := make([]string, len(doc.Content))
	for i, it := range doc.Content {
		ids[i] = it.ID
	}
	return ids
}
