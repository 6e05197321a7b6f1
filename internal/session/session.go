// Package session owns the editing state for one document: the history
// stack, its persistence, and the loaded/closed lifecycle. It replaces the
// ambient module-level store of earlier tooling with an explicit object
// handed to the components that need it.
package session

import (
	"database/sql"
	"sync"

	"github.com/DrJuChunKoO/transpal-engine/internal/config"
	"github.com/DrJuChunKoO/transpal-engine/internal/db"
	"github.com/DrJuChunKoO/transpal-engine/internal/player"
	"github.com/DrJuChunKoO/transpal-engine/internal/store"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// Op is a pure edit transform over the current document. It returns nil
// when the operation is a no-op and nothing should be committed.
type Op func(*transcript.Document) (*transcript.Document, error)

// Session is the single mutable editing context. All mutation funnels
// through Commit; reads come from Current.
type Session struct {
	cfg      *config.Config
	database *sql.DB
	hist     *store.History

	mu      sync.Mutex
	players []*player.Controller
}

// Open creates a session backed by the given database, restoring any
// previously persisted history stack.
func Open(database *sql.DB, cfg *config.Config) (*Session, error) {
	s := &Session{
		cfg:      cfg,
		database: database,
		hist:     store.NewHistory(cfg.HistoryLimit),
	}

	st, ok, err := db.LoadState(database)
	if err != nil {
		return nil, err
	}
	if ok {
		s.hist.Restore(st)
	}
	return s, nil
}

// Current returns the current document, nil when nothing was ever loaded.
// Callers must treat it as read-only; operations clone before transforming.
func (s *Session) Current() *transcript.Document {
	return s.hist.Present()
}

// Loaded reports whether a non-empty document is open.
func (s *Session) Loaded() bool {
	return !s.Current().Empty()
}

// Commit replaces the current document through the history manager and
// persists the updated stack. Controllers issued by NewPlayer are
// invalidated first: playback stops and segment bindings clear before the
// new document is accepted.
func (s *Session) Commit(doc *transcript.Document) error {
	s.invalidatePlayers()
	return s.commit(doc)
}

// commit records doc without touching audio state. In-place edits flow
// through here: their stale bindings are handled item-by-item on the tick
// path, so playback survives an edit mid-listen.
func (s *Session) commit(doc *transcript.Document) error {
	s.hist.Commit(doc)
	return s.persist()
}

// Apply runs an edit operation against the current document and commits the
// result. Returns false when the operation was a no-op (nothing committed).
func (s *Session) Apply(op Op) (bool, error) {
	out, err := op(s.Current())
	if err != nil {
		return false, err
	}
	if out == nil {
		return false, nil
	}
	return true, s.commit(out)
}

// Undo steps one snapshot back. Returns false when there is nothing to undo.
func (s *Session) Undo() (bool, error) {
	if !s.hist.Undo() {
		return false, nil
	}
	return true, s.persist()
}

// Redo steps one snapshot forward. Returns false when there is nothing to
// redo.
func (s *Session) Redo() (bool, error) {
	if !s.hist.Redo() {
		return false, nil
	}
	return true, s.persist()
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// CloseFile commits the empty "closed" document. The close itself is
// undoable, matching editor behavior where closing flows through the same
// history as any other mutation.
func (s *Session) CloseFile() error {
	return s.Commit(nil)
}

// Purge discards the whole history stack, persisted state included. Unlike
// CloseFile this is not undoable: the session comes back as if freshly
// created.
func (s *Session) Purge() error {
	s.invalidatePlayers()
	s.hist = store.NewHistory(s.cfg.HistoryLimit)
	return db.ClearState(s.database)
}

// Config returns the session configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// NewPlayer creates an audio sync controller bound to this session's
// current document, so segment lookups always run against the latest
// committed state. The session keeps a reference: replacing the document
// invalidates every issued controller.
func (s *Session) NewPlayer() *player.Controller {
	c := player.NewController(s.Current)
	s.mu.Lock()
	s.players = append(s.players, c)
	s.mu.Unlock()
	return c
}

// invalidatePlayers stops playback and clears segment bindings on every
// issued controller. Runs before a replacement document is accepted, so no
// controller can observe the old binding against the new content.
func (s *Session) invalidatePlayers() {
	s.mu.Lock()
	players := s.players
	s.mu.Unlock()
	for _, c := range players {
		c.DocumentReplaced()
	}
}

func (s *Session) persist() error {
	return db.SaveState(s.database, s.hist.Snapshot())
}
