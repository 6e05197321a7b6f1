// Package ops is the catalogue of document-level edit operations. Every
// operation is a pure transform: it deep-copies the input document, applies
// the change and returns the copy, leaving the input untouched. The caller
// commits the result through the history manager.
//
// Operations that reference an id or index no longer present return
// (nil, nil): a no-op, not an error. Selection state can legitimately go
// stale after a concurrent structural edit and must not crash the engine.
package ops

import (
	"sort"

	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

// sortByStart re-sorts content ascending by start time, absent starts
// treated as 0. Merge is the only operation that calls this; everything else
// preserves document order.
func sortByStart(content []transcript.Item) {
	sort.SliceStable(content, func(i, j int) bool {
		return content[i].StartOrZero() < content[j].StartOrZero()
	})
}
