package archive

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// newRandomUUID is a seam for tests to simulate an exhausted entropy source.
var newRandomUUID = uuid.NewRandom

// NewID returns a fresh entity id of the form "<prefix>-<uuid>". When a
// random UUID cannot be generated it falls back to
// "<prefix>-<unix millis>-<random hex>".
func NewID(prefix string) string {
	if u, err := newRandomUUID(); err == nil {
		return prefix + "-" + u.String()
	}
	return fmt.Sprintf("%s-%d-%x", prefix, time.Now().UnixMilli(), rand.Uint64())
}

// Id prefixes used by entity constructors and the sanitizer.
const (
	PrefixJournal   = "journal"
	PrefixAlbum     = "album"
	PrefixEvent     = "event"
	PrefixFood      = "food"
	PrefixGuestbook = "guestbook"
	PrefixShare     = "share"
)
