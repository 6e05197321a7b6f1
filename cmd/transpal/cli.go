package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/DrJuChunKoO/transpal-engine/internal/clipboard"
	"github.com/DrJuChunKoO/transpal-engine/internal/errors"
	"github.com/DrJuChunKoO/transpal-engine/internal/importer"
	"github.com/DrJuChunKoO/transpal-engine/internal/ops"
	"github.com/DrJuChunKoO/transpal-engine/internal/preview"
	"github.com/DrJuChunKoO/transpal-engine/internal/session"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(sess *session.Session, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "transpal",
		Usage:   "Transcript editing engine",
		Version: Version,
		Commands: []*cli.Command{
			openCmd(sess),
			showCmd(sess),
			statusCmd(sess),
			speakersCmd(sess),
			setInfoCmd(sess),
			renameSpeakerCmd(sess),
			reassignCmd(sess),
			mergeCmd(sess),
			insertCmd(sess),
			deleteCmd(sess),
			replaceCmd(sess),
			updateCmd(sess),
			undoCmd(sess),
			redoCmd(sess),
			saveCmd(sess, baseDir),
			copyCmd(sess),
			previewCmd(sess),
			closeCmd(sess),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// openResult is the JSON output of the open command.
type openResult struct {
	Filename string   `json:"filename"`
	Items    int      `json:"items"`
	Speakers []string `json:"speakers"`
}

// changeResult is the JSON output of edit commands.
type changeResult struct {
	Changed bool `json:"changed"`
}

// statusResult is the JSON output of the status command.
type statusResult struct {
	Loaded  bool `json:"loaded"`
	Items   int  `json:"items"`
	CanUndo bool `json:"can_undo"`
	CanRedo bool `json:"can_redo"`
}

// openCmd creates the open command.
func openCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:      "open",
		Usage:     "Import a transcript file and make it the current document",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Source format: srt|json (default: from extension)"},
			&cli.Float64Flag{Name: "gap", Usage: "Silence threshold in seconds for divider insertion"},
			&cli.BoolFlag{Name: "no-spacing", Usage: "Skip CJK/Latin spacing normalization"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("file path is required"))
			}
			path := c.Args().First()

			data, err := os.ReadFile(path)
			if err != nil {
				return outputError(errors.NewInternal(err))
			}

			format, err := resolveFormat(c.String("format"), path)
			if err != nil {
				return outputError(err)
			}

			cfg := sess.Config()
			input := importer.Input{
				Text:       string(data),
				Format:     format,
				Filename:   filepath.Base(path),
				Normalize:  !c.Bool("no-spacing") && !cfg.DisableSpacing,
				GapSeconds: cfg.DividerGapSeconds,
			}
			if c.IsSet("gap") {
				input.GapSeconds = c.Float64("gap")
			}

			doc, err := importer.Import(input)
			if err != nil {
				return outputError(err)
			}
			if err := sess.Commit(doc); err != nil {
				return outputError(err)
			}

			return outputJSON(openResult{
				Filename: doc.Info.Filename,
				Items:    len(doc.Content),
				Speakers: transcript.Speakers(doc.Content),
			})
		},
	}
}

// showCmd creates the show command.
func showCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the current document as JSON",
		Action: func(c *cli.Context) error {
			if !sess.Loaded() {
				return outputError(errors.NewValidation("no document is loaded", nil))
			}
			return outputJSON(sess.Current())
		},
	}
}

// statusCmd creates the status command.
func statusCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show session state",
		Action: func(c *cli.Context) error {
			result := statusResult{
				Loaded:  sess.Loaded(),
				CanUndo: sess.CanUndo(),
				CanRedo: sess.CanRedo(),
			}
			if doc := sess.Current(); doc != nil {
				result.Items = len(doc.Content)
			}
			return outputJSON(result)
		},
	}
}

// speakersCmd creates the speakers command.
func speakersCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "speakers",
		Usage: "List distinct speakers with their palette colors",
		Action: func(c *cli.Context) error {
			if !sess.Loaded() {
				return outputError(errors.NewValidation("no document is loaded", nil))
			}
			speakers := transcript.Speakers(sess.Current().Content)
			colors := transcript.SpeakerColors(speakers)

			type entry struct {
				Name  string `json:"name"`
				Color string `json:"color"`
			}
			entries := make([]entry, 0, len(speakers))
			for _, name := range speakers {
				entries = append(entries, entry{Name: name, Color: colors[name]})
			}
			return outputJSON(entries)
		},
	}
}

// setInfoCmd creates the set-info command.
func setInfoCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "set-info",
		Usage: "Update document metadata",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Display name"},
			&cli.StringFlag{Name: "slug", Usage: "URL slug"},
			&cli.StringFlag{Name: "date", Usage: "Recording date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "time", Usage: "Recording time"},
			&cli.StringFlag{Name: "description", Usage: "Markdown description"},
		},
		Action: func(c *cli.Context) error {
			update := ops.InfoUpdate{}
			if c.IsSet("name") {
				v := c.String("name")
				update.Name = &v
			}
			if c.IsSet("slug") {
				v := c.String("slug")
				update.Slug = &v
			}
			if c.IsSet("date") {
				v := c.String("date")
				update.Date = &v
			}
			if c.IsSet("time") {
				v := c.String("time")
				update.Time = &v
			}
			if c.IsSet("description") {
				v := c.String("description")
				update.Description = &v
			}

			return applyOp(sess, func(doc *transcript.Document) (*transcript.Document, error) {
				return ops.UpdateInfo(doc, update)
			})
		},
	}
}

// renameSpeakerCmd creates the rename-speaker command.
func renameSpeakerCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:      "rename-speaker",
		Usage:     "Rename every speech item of one speaker",
		ArgsUsage: "<old> <new>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("old and new speaker names are required"))
			}
			oldName, newName := c.Args().Get(0), c.Args().Get(1)
			return applyOp(sess, func(doc *transcript.Document) (*transcript.Document, error) {
				return ops.RenameSpeaker(doc, oldName, newName)
			})
		},
	}
}

// reassignCmd creates the reassign command.
func reassignCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "reassign",
		Usage: "Set the speaker of selected items",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ids", Required: true, Usage: "Comma-separated item IDs"},
			&cli.StringFlag{Name: "name", Required: true, Usage: "New speaker name"},
		},
		Action: func(c *cli.Context) error {
			ids := parseIDs(c.String("ids"))
			name := c.String("name")
			return applyOp(sess, func(doc *transcript.Document) (*transcript.Document, error) {
				return ops.ReassignSpeaker(doc, ids, name)
			})
		},
	}
}

// mergeCmd creates the merge command.
func mergeCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "merge",
		Usage: "Merge selected speech items into one",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ids", Required: true, Usage: "Comma-separated item IDs"},
		},
		Action: func(c *cli.Context) error {
			ids := parseIDs(c.String("ids"))
			return applyOp(sess, func(doc *transcript.Document) (*transcript.Document, error) {
				return ops.Merge(doc, ids)
			})
		},
	}
}

// insertCmd creates the insert command.
func insertCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "insert",
		Usage: "Insert a divider or markdown block",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "after", Value: -1, Usage: "Index to insert after (-1 for front)"},
			&cli.StringFlag{Name: "kind", Required: true, Usage: "Block kind: divider|markdown"},
		},
		Action: func(c *cli.Context) error {
			after := c.Int("after")
			kind := transcript.ItemType(c.String("kind"))
			return applyOp(sess, func(doc *transcript.Document) (*transcript.Document, error) {
				return ops.InsertBlock(doc, after, kind)
			})
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Remove the item at an index",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "index", Required: true, Usage: "Content index to remove"},
		},
		Action: func(c *cli.Context) error {
			index := c.Int("index")
			return applyOp(sess, func(doc *transcript.Document) (*transcript.Document, error) {
				return ops.DeleteItem(doc, index)
			})
		},
	}
}

// replaceCmd creates the replace command.
func replaceCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "replace",
		Usage: "Replace every occurrence of a string across all item texts",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Required: true, Usage: "Text to search for"},
			&cli.StringFlag{Name: "with", Usage: "Replacement text"},
		},
		Action: func(c *cli.Context) error {
			search, with := c.String("search"), c.String("with")
			return applyOp(sess, func(doc *transcript.Document) (*transcript.Document, error) {
				return ops.ReplaceText(doc, search, with)
			})
		},
	}
}

// updateCmd creates the update command.
func updateCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update fields of a single item",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "speaker", Usage: "New speaker name"},
			&cli.StringFlag{Name: "text", Usage: "New text"},
			&cli.Float64Flag{Name: "start", Usage: "New start time in seconds"},
			&cli.Float64Flag{Name: "end", Usage: "New end time in seconds"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("item id is required"))
			}
			id := c.Args().First()

			update := ops.ItemUpdate{}
			if c.IsSet("speaker") {
				v := c.String("speaker")
				update.Speaker = &v
			}
			if c.IsSet("text") {
				v := c.String("text")
				update.Text = &v
			}
			if c.IsSet("start") {
				v := c.Float64("start")
				update.Start = &v
			}
			if c.IsSet("end") {
				v := c.Float64("end")
				update.End = &v
			}

			return applyOp(sess, func(doc *transcript.Document) (*transcript.Document, error) {
				return ops.UpdateItem(doc, id, update)
			})
		},
	}
}

// undoCmd creates the undo command.
func undoCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "undo",
		Usage: "Step one edit back",
		Action: func(c *cli.Context) error {
			moved, err := sess.Undo()
			if err != nil {
				return outputError(err)
			}
			return outputJSON(changeResult{Changed: moved})
		},
	}
}

// redoCmd creates the redo command.
func redoCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "redo",
		Usage: "Step one undone edit forward",
		Action: func(c *cli.Context) error {
			moved, err := sess.Redo()
			if err != nil {
				return outputError(err)
			}
			return outputJSON(changeResult{Changed: moved})
		},
	}
}

// saveCmd creates the save command.
func saveCmd(sess *session.Session, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "save",
		Usage: "Export the current document to a JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Output path (default: exports dir, \"<date> <slug>.json\")"},
		},
		Action: func(c *cli.Context) error {
			data, err := ops.ExportJSON(sess.Current())
			if err != nil {
				return outputError(err)
			}

			path := c.String("path")
			if path == "" {
				dir := sess.Config().ExportDir
				if dir == "" {
					dir = filepath.Join(baseDir, "exports")
				}
				path = filepath.Join(dir, ops.ExportFilename(sess.Current()))
			}

			if err := os.WriteFile(path, data, 0o644); err != nil {
				return outputError(errors.NewInternal(err))
			}

			return outputJSON(struct {
				Path  string `json:"path"`
				Bytes int    `json:"bytes"`
			}{Path: path, Bytes: len(data)})
		},
	}
}

// copyCmd creates the copy command.
func copyCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "copy",
		Usage: "Copy the current document JSON to the system clipboard",
		Action: func(c *cli.Context) error {
			text, err := ops.ExportString(sess.Current())
			if err != nil {
				return outputError(err)
			}
			if err := clipboard.WriteAll(text); err != nil {
				return outputError(err)
			}
			return outputJSON(struct {
				Copied bool `json:"copied"`
				Bytes  int  `json:"bytes"`
			}{Copied: true, Bytes: len(text)})
		},
	}
}

// previewCmd creates the preview command.
func previewCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Render the current document to an HTML file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Required: true, Usage: "Output HTML path"},
		},
		Action: func(c *cli.Context) error {
			html, err := preview.NewRenderer().Render(sess.Current())
			if err != nil {
				return outputError(err)
			}
			path := c.String("path")
			if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return outputJSON(struct {
				Path string `json:"path"`
			}{Path: path})
		},
	}
}

// closeCmd creates the close command.
func closeCmd(sess *session.Session) *cli.Command {
	return &cli.Command{
		Name:  "close",
		Usage: "Close the current document (undoable)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "purge", Usage: "Also discard the persisted history (not undoable)"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("purge") {
				if err := sess.Purge(); err != nil {
					return outputError(err)
				}
				return outputJSON(changeResult{Changed: true})
			}
			if err := sess.CloseFile(); err != nil {
				return outputError(err)
			}
			return outputJSON(changeResult{Changed: true})
		},
	}
}

// Helper functions

// applyOp runs an edit operation through the session and reports whether
// anything changed.
func applyOp(sess *session.Session, op session.Op) error {
	changed, err := sess.Apply(op)
	if err != nil {
		return outputError(err)
	}
	return outputJSON(changeResult{Changed: changed})
}

// resolveFormat picks the import format from an explicit flag or the file
// extension.
func resolveFormat(flag, path string) (importer.Format, error) {
	switch flag {
	case "srt":
		return importer.FormatSRT, nil
	case "json":
		return importer.FormatJSON, nil
	case "":
	default:
		return "", errors.NewInvalidRequest("format must be one of: srt, json")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return importer.FormatSRT, nil
	case ".json":
		return importer.FormatJSON, nil
	}
	return "", errors.NewInvalidRequest(fmt.Sprintf("cannot infer format from %q, pass --format", filepath.Base(path)))
}

// parseIDs splits a comma-separated string into a slice of item IDs.
func parseIDs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		id := strings.TrimSpace(p)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if engineErr, ok := err.(*errors.EngineError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", engineErr.Code, engineErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
