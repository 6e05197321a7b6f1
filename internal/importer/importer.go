// Package importer parses the two supported source formats, subtitle-style
// time-coded text and the native JSON schema, into a transcript document.
package importer

import (
	"unicode/utf8"

	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// Format identifies an import source format.
type Format string

const (
	FormatSRT  Format = "srt"
	FormatJSON Format = "json"
)

// DefaultGapSeconds is the silence threshold above which the SRT importer
// emits a divider item between cues.
const DefaultGapSeconds = 60

// Input contains parameters for the Import operation.
type Input struct {
	// Text is the already-decoded source text. Reading bytes from a file
	// picker or drag event is the caller's concern.
	Text string

	// Format declares the source grammar.
	Format Format

	// Filename is recorded in info.filename; immutable after import.
	Filename string

	// Normalize applies the CJK/Latin spacing pass to every item's text.
	Normalize bool

	// GapSeconds overrides DefaultGapSeconds when > 0. Only meaningful for
	// the SRT format.
	GapSeconds float64
}

// Import parses input into a fresh document. It returns a PARSE_ERROR when
// the text is not valid UTF-8 or does not match the declared format's
// grammar; the caller's current document is never touched on failure.
func Import(input Input) (*transcript.Document, error) {
	if !utf8.ValidString(input.Text) {
		return nil, errors.NewParse(string(input.Format), "input is not valid UTF-8")
	}

	switch input.Format {
	case FormatSRT:
		return importSRT(input)
	case FormatJSON:
		return importJSON(input)
	default:
		return nil, errors.NewInvalidRequest("format must be one of: srt, json")
	}
}
