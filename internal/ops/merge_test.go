package ops

import (
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

func TestMerge_TwoSpeechItems(t *testing.T) {
	// Selection order is deliberately reversed; merge must work in document
	// order.
	out, err := Merge(sampleDoc(), []string{"s2", "s1"})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if out == nil {
		t.Fatal("Merge returned no-op, want a new document")
	}

	idx := out.FindItem("s1")
	if idx < 0 {
		t.Fatal("merged item should keep the first selected id in document order")
	}
	merged := out.Content[idx]

	if merged.Type != transcript.ItemSpeech {
		t.Errorf("merged type = %q, want speech", merged.Type)
	}
	if merged.Speaker != "Alice" {
		t.Errorf("merged speaker = %q, want Alice (first item in document order)", merged.Speaker)
	}
	if merged.Text != "HelloHi" {
		t.Errorf("merged text = %q, want concatenation in document order", merged.Text)
	}
	if *merged.Start != 0 || *merged.End != 72 {
		t.Errorf("merged range = [%v,%v], want [0,72]", *merged.Start, *merged.End)
	}

	if out.FindItem("s2") >= 0 {
		t.Error("absorbed item should be removed")
	}
	if len(out.Content) != 4 {
		t.Errorf("content length = %d, want 4", len(out.Content))
	}

	// Content is re-sorted by start: merged [0,72] first, divider at 2.5,
	// then s3 at 72, markdown (no start) at the front among start=0 peers.
	for i := 1; i < len(out.Content); i++ {
		if out.Content[i-1].StartOrZero() > out.Content[i].StartOrZero() {
			t.Errorf("content not sorted by start at %d", i)
		}
	}
}

func TestMerge_MixedTypesRejected(t *testing.T) {
	_, err := Merge(sampleDoc(), []string{"s1", "d1", "s2"})
	if !errors.Is(err, errors.ErrValidation) {
		t.Errorf("Merge error = %v, want VALIDATION_ERROR for mixed types", err)
	}
}

func TestMerge_StaleSelection(t *testing.T) {
	out, err := Merge(sampleDoc(), []string{"gone"})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if out != nil {
		t.Error("merging a stale selection should be a no-op")
	}
}

func TestMerge_SingleItem(t *testing.T) {
	out, err := Merge(sampleDoc(), []string{"s1"})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if out != nil {
		t.Error("merging a single item should be a no-op")
	}
}

func TestMerge_PartiallyStaleSelection(t *testing.T) {
	out, err := Merge(sampleDoc(), []string{"s1", "gone", "s3"})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if out == nil {
		t.Fatal("Merge should proceed with the ids that still exist")
	}
	idx := out.FindItem("s1")
	if idx < 0 || out.Content[idx].Text != "HelloBye" {
		t.Errorf("merged text = %q, want HelloBye", out.Content[idx].Text)
	}
}

// Merge invariant: for any selection of speech items, start is the minimum
// start, end the maximum end, and text the document-order concatenation.
func TestMerge_Invariant(t *testing.T) {
	gofakeit.Seed(7)

	for round := 0; round < 20; round++ {
		doc := &transcript.Document{Content: []transcript.Item{}}
		n := 3 + gofakeit.Number(0, 7)
		cursor := 0.0
		for i := 0; i < n; i++ {
			id, err := transcript.NewItemID()
			if err != nil {
				t.Fatalf("NewItemID failed: %v", err)
			}
			start := cursor + gofakeit.Float64Range(0, 5)
			end := start + gofakeit.Float64Range(0.5, 10)
			cursor = end
			doc.Content = append(doc.Content, transcript.Item{
				ID:      id,
				Type:    transcript.ItemSpeech,
				Start:   f(start),
				End:     f(end),
				Speaker: gofakeit.Name(),
				Text:    gofakeit.Word(),
			})
		}

		// Select a random subset of at least 2, in shuffled order.
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		gofakeit.ShuffleInts(perm)
		k := 2 + gofakeit.Number(0, n-2)
		sel := perm[:k]

		var ids []string
		for _, i := range sel {
			ids = append(ids, doc.Content[i].ID)
		}

		wantStart, wantEnd := doc.Content[sel[0]].StartOrZero(), *doc.Content[sel[0]].End
		sort.Ints(sel)
		wantText := ""
		for _, i := range sel {
			wantText += doc.Content[i].Text
			if s := doc.Content[i].StartOrZero(); s < wantStart {
				wantStart = s
			}
			if e := *doc.Content[i].End; e > wantEnd {
				wantEnd = e
			}
		}

		out, err := Merge(doc, ids)
		if err != nil {
			t.Fatalf("Merge failed: %v", err)
		}
		idx := out.FindItem(doc.Content[sel[0]].ID)
		if idx < 0 {
			t.Fatal("merged item id should be the first selected in document order")
		}
		merged := out.Content[idx]
		if *merged.Start != wantStart || *merged.End != wantEnd {
			t.Errorf("merged range = [%v,%v], want [%v,%v]", *merged.Start, *merged.End, wantStart, wantEnd)
		}
		if merged.Text != wantText {
			t.Errorf("merged text = %q, want %q", merged.Text, wantText)
		}

		// Id uniqueness survives the merge.
		seen := make(map[string]bool)
		for _, it := range out.Content {
			if seen[it.ID] {
				t.Fatalf("duplicate id after merge: %s", it.ID)
			}
			seen[it.ID] = true
		}
	}
}
