package transcript

import (
	"encoding/json"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestClone_Independence(t *testing.T) {
	doc := &Document{
		Info: &Info{Filename: "meeting.srt", Name: "Meeting"},
		Raw: &Raw{
			Srt:         "1\n00:00:00,000 --> 00:00:01,000\nAlice: Hi",
			Diarization: json.RawMessage(`{"turns":[]}`),
		},
		Content: []Item{
			{ID: "a", Type: ItemSpeech, Start: f(0), End: f(1), Speaker: "Alice", Text: "Hi"},
			{ID: "b", Type: ItemMarkdown, Text: "# notes"},
		},
	}

	clone := doc.Clone()

	// Mutate the original in place; the clone must not observe any of it.
	doc.Info.Name = "Changed"
	doc.Content[0].Text = "Changed"
	*doc.Content[0].Start = 99
	doc.Raw.Diarization[0] = 'X'

	if clone.Info.Name != "Meeting" {
		t.Errorf("clone Info.Name = %q, want %q", clone.Info.Name, "Meeting")
	}
	if clone.Content[0].Text != "Hi" {
		t.Errorf("clone Content[0].Text = %q, want %q", clone.Content[0].Text, "Hi")
	}
	if *clone.Content[0].Start != 0 {
		t.Errorf("clone Content[0].Start = %v, want 0", *clone.Content[0].Start)
	}
	if string(clone.Raw.Diarization) != `{"turns":[]}` {
		t.Errorf("clone Raw.Diarization = %s, want original bytes", clone.Raw.Diarization)
	}
}

func TestClone_Nil(t *testing.T) {
	var doc *Document
	if doc.Clone() != nil {
		t.Error("Clone of nil document should be nil")
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		want bool
	}{
		{"nil document", nil, true},
		{"zero document", &Document{}, true},
		{"has info", &Document{Info: &Info{Name: "x"}}, false},
		{"has content", &Document{Content: []Item{{ID: "a", Type: ItemMarkdown}}}, false},
		{"has raw", &Document{Raw: &Raw{Srt: "x"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindItem(t *testing.T) {
	doc := &Document{Content: []Item{
		{ID: "a", Type: ItemSpeech},
		{ID: "b", Type: ItemDivider},
	}}

	if got := doc.FindItem("b"); got != 1 {
		t.Errorf("FindItem(b) = %d, want 1", got)
	}
	if got := doc.FindItem("missing"); got != -1 {
		t.Errorf("FindItem(missing) = %d, want -1", got)
	}
}

func TestStartOrZero(t *testing.T) {
	it := Item{ID: "a", Type: ItemDivider}
	if it.StartOrZero() != 0 {
		t.Errorf("StartOrZero() = %v, want 0 for absent start", it.StartOrZero())
	}
	it.Start = f(2.5)
	if it.StartOrZero() != 2.5 {
		t.Errorf("StartOrZero() = %v, want 2.5", it.StartOrZero())
	}
}

func TestMissingExportFields(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		want []string
	}{
		{"no info at all", &Document{}, []string{"name", "slug", "date"}},
		{
			"partial info",
			&Document{Info: &Info{Name: "Hearing"}},
			[]string{"slug", "date"},
		},
		{
			"complete info",
			&Document{Info: &Info{Name: "Hearing", Slug: "hearing", Date: "2024-05-01"}},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.doc.MissingExportFields()
			if len(got) != len(tt.want) {
				t.Fatalf("MissingExportFields() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MissingExportFields()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDocument_JSONKeys(t *testing.T) {
	// Export shape: exactly info, content and raw at the top level, even when
	// absent, so downstream consumers see a stable schema.
	data, err := json.Marshal(&Document{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{"info", "content", "raw"} {
		if _, ok := m[key]; !ok {
			t.Errorf("marshaled document missing top-level key %q", key)
		}
	}
	if len(m) != 3 {
		t.Errorf("marshaled document has %d top-level keys, want 3: %v", len(m), m)
	}
}
