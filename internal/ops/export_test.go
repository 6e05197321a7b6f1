package ops

import (
	"encoding/json"
	"testing"

	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
)

func TestExportJSON_RequiresInfo(t *testing.T) {
	doc := sampleDoc() // filename only, no name/slug/date

	_, err := ExportJSON(doc)
	if !errors.Is(err, errors.ErrValidation) {
		t.Fatalf("ExportJSON error = %v, want VALIDATION_ERROR", err)
	}
	eErr := err.(*errors.EngineError)
	missing, _ := eErr.Details["missing_fields"].([]string)
	if len(missing) != 3 {
		t.Errorf("missing fields = %v, want [name slug date]", missing)
	}
}

func TestExportJSON_Shape(t *testing.T) {
	doc := sampleDoc()
	doc.Info.Name = "Hearing"
	doc.Info.Slug = "hearing"
	doc.Info.Date = "2024-05-01"

	data, err := ExportJSON(doc)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(m) != 3 {
		t.Errorf("export has %d top-level keys, want exactly info/content/raw", len(m))
	}
	for _, key := range []string{"info", "content", "raw"} {
		if _, ok := m[key]; !ok {
			t.Errorf("export missing top-level key %q", key)
		}
	}

	// raw is re-emitted verbatim.
	var raw struct {
		Srt string `json:"srt"`
	}
	if err := json.Unmarshal(m["raw"], &raw); err != nil {
		t.Fatalf("raw unmarshal failed: %v", err)
	}
	if raw.Srt != "original" {
		t.Errorf("raw.srt = %q, want original", raw.Srt)
	}
}

func TestExportString_MatchesJSON(t *testing.T) {
	doc := sampleDoc()
	doc.Info.Name = "Hearing"
	doc.Info.Slug = "hearing"
	doc.Info.Date = "2024-05-01"

	data, err := ExportJSON(doc)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	s, err := ExportString(doc)
	if err != nil {
		t.Fatalf("ExportString failed: %v", err)
	}
	if s != string(data) {
		t.Error("ExportString should produce the same bytes as ExportJSON")
	}
}

func TestExportJSON_NilDocument(t *testing.T) {
	_, err := ExportJSON(nil)
	if !errors.Is(err, errors.ErrValidation) {
		t.Errorf("ExportJSON(nil) error = %v, want VALIDATION_ERROR", err)
	}
}

func TestExportFilename(t *testing.T) {
	doc := sampleDoc()
	doc.Info.Date = "2024-05-01"
	doc.Info.Slug = "hearing"

	if got := ExportFilename(doc); got != "2024-05-01 hearing.json" {
		t.Errorf("ExportFilename = %q, want %q", got, "2024-05-01 hearing.json")
	}
}
