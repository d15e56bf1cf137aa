// util/idgen/idgen.go
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator hands out record ids. Repositories take one so tests can swap
// in deterministic ids.
type Generator interface {
	NewID() string
}

type uuidGen struct{}

func NewUUID() Generator { return uuidGen{} }

func (uuidGen) NewID() string { return uuid.NewString() }

// Sequence yields prefix-1, prefix-2, ... for deterministic tests.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func NewSequence(prefix string) *Sequence { return &Sequence{prefix: prefix} }

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}
