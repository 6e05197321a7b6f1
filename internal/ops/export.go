package ops

import (
	"encoding/json"
	"fmt"

	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// ExportJSON serializes the document with exactly the three top-level keys
// info, content and raw; derived and ephemeral state is never exported.
// Export requires info name, slug and date to be set and fails with a
// VALIDATION_ERROR listing the missing fields otherwise.
func ExportJSON(doc *transcript.Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.NewValidation("no document to export", nil)
	}
	if missing := doc.MissingExportFields(); len(missing) > 0 {
		return nil, errors.NewValidation("document is missing required info fields", missing)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return data, nil
}

// ExportString returns the export JSON as a clipboard-ready string.
func ExportString(doc *transcript.Document) (string, error) {
	data, err := ExportJSON(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExportFilename is the default save name, "<date> <slug>.json".
func ExportFilename(doc *transcript.Document) string {
	return fmt.Sprintf("%s %s.json", doc.Info.Date, doc.Info.Slug)
}
