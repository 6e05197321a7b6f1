// Package preview renders a transcript document as a standalone HTML page.
package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

//go:embed templates/*.html
var templateFS embed.FS

// RowData is the template data for a single content item row.
type RowData struct {
	Type         transcript.ItemType
	Speaker      string
	SpeakerColor string
	Text         string
	Timecode     string
	RenderedHTML template.HTML
}

// PageData is the template data for the preview page.
type PageData struct {
	Title       string
	Date        string
	Description template.HTML
	Rows        []RowData
}

// Renderer converts documents to HTML using an embedded template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded preview template.
func NewRenderer() *Renderer {
	tmpl := template.Must(template.New("preview").ParseFS(templateFS, "templates/preview.html"))
	return &Renderer{tmpl: tmpl}
}

// Render produces a complete HTML page for the document.
func (r *Renderer) Render(doc *transcript.Document) (string, error) {
	if doc == nil || doc.Empty() {
		return "", errors.NewValidation("no document is loaded", nil)
	}

	data := PageData{Title: "Transcript"}
	if doc.Info != nil {
		if doc.Info.Name != "" {
			data.Title = doc.Info.Name
		}
		data.Date = doc.Info.Date
		if doc.Info.Description != "" {
			data.Description = renderMarkdown(doc.Info.Description)
		}
	}

	colors := transcript.SpeakerColors(transcript.Speakers(doc.Content))
	data.Rows = make([]RowData, 0, len(doc.Content))
	for _, item := range doc.Content {
		row := RowData{Type: item.Type}
		switch item.Type {
		case transcript.ItemSpeech:
			row.Speaker = item.Speaker
			row.SpeakerColor = colors[item.Speaker]
			row.Text = item.Text
			if item.Start != nil {
				row.Timecode = formatTimecode(*item.Start)
			}
		case transcript.ItemMarkdown:
			row.RenderedHTML = renderMarkdown(item.Text)
		}
		data.Rows = append(data.Rows, row)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "preview.html", data); err != nil {
		return "", errors.NewInternal(err)
	}
	return buf.String(), nil
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// formatTimecode renders seconds as h:mm:ss for display next to speech rows.
func formatTimecode(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
