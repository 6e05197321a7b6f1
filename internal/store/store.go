// Package store holds the single current document and the bounded undo/redo
// history that wraps it. All committed mutation flows through the History
// type; the Store itself is a plain slot with get/replace semantics.
package store

import (
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// Store holds the single current document. It is the only place mutation is
// committed.
type Store struct {
	doc *transcript.Document
}

// Get returns the current document, or nil when no document has ever been
// loaded. Callers must treat the returned value as read-only; edit
// operations clone before transforming.
func (s *Store) Get() *transcript.Document {
	return s.doc
}

// Replace unconditionally overwrites the current document. There are no
// merge or patch semantics. Replacing with nil resets to the "closed file"
// state: empty content, absent info and raw.
func (s *Store) Replace(doc *transcript.Document) {
	if doc == nil {
		doc = &transcript.Document{Content: []transcript.Item{}}
	}
	s.doc = doc
}

// Loaded reports whether a document slot is occupied (including the closed
// empty state).
func (s *Store) Loaded() bool {
	return s.doc != nil
}
