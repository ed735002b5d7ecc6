// Package checksum resolves streaming checksum algorithms by name.
//
// An algorithm is any hash.Hash: a stateful accumulator that is reset, fed
// bytes in order, and finalized into a fixed-size digest. Implementations
// register a constructor under a well-known name (usually from an init
// function) and codecs look the constructor up at runtime. Registration is
// process-wide and idempotent so that concurrent first use never has to
// coordinate.
package checksum

import (
	"hash"
	"sync"

	"github.com/calebcase/oops"
)

// ErrUnsupported indicates that an algorithm cannot be resolved: either no
// constructor is registered under the name, or the constructed hash reports
// a non-positive digest size and cannot carry integrity information.
var ErrUnsupported = Error.New("unsupported algorithm")

// Constructor returns a new accumulator for an algorithm. Each call must
// return independent state.
type Constructor func() hash.Hash

var (
	mu           sync.RWMutex
	constructors = map[string]Constructor{}
)

// Register makes fn available under name. Registering a name that is
// already taken is a no-op.
func Register(name string, fn Constructor) {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := constructors[name]; ok {
		return
	}

	constructors[name] = fn
}

// New returns a fresh accumulator for the named algorithm.
func New(name string) (h hash.Hash, err error) {
	mu.RLock()
	fn, ok := constructors[name]
	mu.RUnlock()

	if !ok {
		return nil, oops.Trace(ErrUnsupported)
	}

	h = fn()
	if h == nil || h.Size() <= 0 {
		return nil, oops.Trace(ErrUnsupported)
	}

	return h, nil
}
