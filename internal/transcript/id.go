package transcript

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewItemID generates a ULID for a new content item. ULIDs replace the short
// base36 tokens used by earlier tooling, which had a non-zero collision
// probability at scale.
func NewItemID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
