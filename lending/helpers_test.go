package lending

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// seqIDs hands out predictable IDs; failAfter > 0 makes call number failAfter+1 fail.
type seqIDs struct {
	n         int
	failAfter int
}

func (s *seqIDs) New() (string, error) {
	if s.failAfter > 0 && s.n >= s.failAfter {
		return "", errors.New("entropy exhausted")
	}
	s.n++
	return fmt.Sprintf("ID%06d", s.n), nil
}

var testToday = MustDate("2024-05-01")

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	base := []Option{WithIDGenerator(&seqIDs{}), WithClock(FixedClock(testToday))}
	return NewRegistry(append(base, opts...)...)
}

func mustMember(t *testing.T, r *Registry, name string) *Member {
	t.Helper()
	m, err := r.AddMember(name, name+"@example.com", "000")
	if err != nil {
		t.Fatalf("add member %s: %v", name, err)
	}
	return m
}

func mustItem(t *testing.T, r *Registry, owner, name string, cost int) *Item {
	t.Helper()
	it, err := r.AddItem(owner, name, name+" description", "Misc", cost)
	if err != nil {
		t.Fatalf("add item %s: %v", name, err)
	}
	return it
}

func day(offset int) time.Time {
	return testToday.AddDate(0, 0, offset)
}
