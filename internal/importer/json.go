package importer

import (
	"bytes"
	"encoding/json"

	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// importJSON decodes the native document schema. Unknown extra fields are
// ignored; a payload without a content array is rejected.
func importJSON(input Input) (*transcript.Document, error) {
	doc := &transcript.Document{}
	dec := json.NewDecoder(bytes.NewReader([]byte(input.Text)))
	if err := dec.Decode(doc); err != nil {
		return nil, errors.NewParse("json", err.Error())
	}
	if doc.Content == nil {
		return nil, errors.NewParse("json", "missing content")
	}

	if doc.Info == nil {
		doc.Info = &transcript.Info{}
	}
	if doc.Info.Filename == "" {
		doc.Info.Filename = input.Filename
	}

	if input.Normalize {
		for i := range doc.Content {
			if doc.Content[i].Text != "" {
				doc.Content[i].Text = transcript.NormalizeText(doc.Content[i].Text)
			}
		}
	}

	return doc, nil
}
