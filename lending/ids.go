package lending

import (
	"crypto/rand"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDGenerator hands out identifiers for members, items and contracts.
type IDGenerator interface {
	New() (string, error)
}

// ulidGen produces ULIDs. Monotonic entropy keeps IDs generated within the same
// millisecond unique and sortable; 80 random bits make cross-process collisions negligible.
type ulidGen struct {
	mu      sync.Mutex
	entropy io.Reader
}

func newULIDGen() *ulidGen {
	return &ulidGen{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ulidGen) New() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), g.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ShortID returns a lowercase display form of id: its last six characters, which sit in
// the random part of a ULID. Use the full ID for lookups.
func ShortID(id string) string {
	if len(id) <= 6 {
		return strings.ToLower(id)
	}
	return strings.ToLower(id[len(id)-6:])
}
