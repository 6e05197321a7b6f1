package store

import (
	"sync"

	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// DefaultLimit bounds the undo and redo stacks when no limit is configured.
const DefaultLimit = 100

// History wraps a Store with a bounded, linear undo/redo log. Commit, Undo
// and Redo are serialized behind one mutex guarding the whole stack, so no
// partially-applied transition is observable even when the host is
// multi-threaded.
type History struct {
	mu     sync.Mutex
	limit  int
	store  Store
	past   []*transcript.Document
	future []*transcript.Document
}

// NewHistory creates an empty history with the given stack bound.
// A limit <= 0 falls back to DefaultLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Present returns the current document, nil before the first commit.
func (h *History) Present() *transcript.Document {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.store.Get()
}

// Commit replaces the current document with doc. The prior present is pushed
// onto the past stack (deep-copied, bounded, oldest dropped first) and the
// future stack is cleared. The very first commit is not undoable: loading a
// document is not an edit relative to "no document".
func (h *History) Commit(doc *transcript.Document) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prev := h.store.Get(); prev != nil {
		h.past = append(h.past, prev.Clone())
		if len(h.past) > h.limit {
			h.past = h.past[len(h.past)-h.limit:]
		}
		h.future = nil
	}
	h.store.Replace(doc)
}

// Undo moves one snapshot from past to present, pushing the displaced
// present onto the future stack. Returns false (no-op) when there is nothing
// to undo.
func (h *History) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.past) == 0 || !h.store.Loaded() {
		return false
	}

	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]

	h.future = append([]*transcript.Document{h.store.Get().Clone()}, h.future...)
	if len(h.future) > h.limit {
		h.future = h.future[:h.limit]
	}

	h.store.Replace(prev)
	return true
}

// Redo moves one snapshot from future back to present. Returns false
// (no-op) when there is nothing to redo.
func (h *History) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.future) == 0 || !h.store.Loaded() {
		return false
	}

	next := h.future[0]
	h.future = h.future[1:]

	h.past = append(h.past, h.store.Get().Clone())
	if len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}

	h.store.Replace(next)
	return true
}

// CanUndo reports whether an Undo would change state.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past) > 0 && h.store.Loaded()
}

// CanRedo reports whether a Redo would change state.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future) > 0 && h.store.Loaded()
}

// Depths returns the current past and future stack depths.
func (h *History) Depths() (past, future int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past), len(h.future)
}

// State is a serializable snapshot of the whole history stack, used for
// persisting a session across process restarts.
type State struct {
	Past    []*transcript.Document `json:"past"`
	Present *transcript.Document   `json:"present"`
	Future  []*transcript.Document `json:"future"`
}

// Snapshot captures the full stack as deep copies.
func (h *History) Snapshot() State {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := State{Present: nil}
	if doc := h.store.Get(); doc != nil {
		st.Present = doc.Clone()
	}
	for _, d := range h.past {
		st.Past = append(st.Past, d.Clone())
	}
	for _, d := range h.future {
		st.Future = append(st.Future, d.Clone())
	}
	return st
}

// Restore replaces the whole stack from a snapshot, re-applying the bound.
func (h *History) Restore(st State) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.past = nil
	h.future = nil
	for _, d := range st.Past {
		h.past = append(h.past, d.Clone())
	}
	if len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	for _, d := range st.Future {
		h.future = append(h.future, d.Clone())
	}
	if len(h.future) > h.limit {
		h.future = h.future[:h.limit]
	}
	if st.Present != nil {
		h.store.Replace(st.Present.Clone())
	} else {
		h.store.doc = nil
	}
}
