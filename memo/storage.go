package memo

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// position marks the most recently evaluated sequencing step in the current
// scope. It is an ordinal derived from dynamic execution order, not from the
// lexical location of a cache-lookup expression.
type position int

const (
	// posOutside is installed when a scope is entered, before any sequencing
	// step of that scope has run.
	posOutside position = 0

	// posAnywhere addresses floating cells, which opt out of position-based
	// collision protection.
	posAnywhere position = -1
)

// defaultKey is the sentinel user key of unkeyed cells.
type defaultKey struct{}

func (defaultKey) String() string { return "default" }

// address identifies one cache slot within a storage node. Equality is
// structural on (position, key).
type address struct {
	pos position
	key any
}

func (a address) String() string {
	switch a.pos {
	case posAnywhere:
		return fmt.Sprintf("(floating, key %v)", a.key)
	default:
		return fmt.Sprintf("(step %d, key %v)", a.pos, a.key)
	}
}

// traced wraps a stored value with a per-run usage flag, consumed by the
// post-run sweep.
type traced[T any] struct {
	val  T
	used bool
}

// nodeID indexes a storage node inside its arena. Parent-to-child ownership is
// expressed through these indices, never through shared pointers.
type nodeID int

// node is one level of the storage tree: cached value slots plus named child
// scopes, each entry usage-traced.
type node struct {
	values map[address]*traced[any]
	scopes map[any]*traced[nodeID]
}

func newNode() *node {
	return &node{
		values: make(map[address]*traced[any]),
		scopes: make(map[any]*traced[nodeID]),
	}
}

// arena owns every node of one storage tree. Freed subtrees return their
// indices to the free list for reuse by later scope creations.
type arena struct {
	nodes []*node
	free  []nodeID
}

func newArena() *arena {
	return &arena{}
}

func (a *arena) alloc() nodeID {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[id] = newNode()
		return id
	}
	a.nodes = append(a.nodes, newNode())
	return nodeID(len(a.nodes) - 1)
}

func (a *arena) node(id nodeID) *node {
	return a.nodes[id]
}

// release frees a node and, recursively, every scope subtree it owns.
func (a *arena) release(id nodeID) {
	for _, tr := range a.nodes[id].scopes {
		a.release(tr.val)
	}
	a.nodes[id] = nil
	a.free = append(a.free, id)
}

// Storage is the persistent half of the engine: a tree of usage-traced value
// slots and named child scopes, surviving across runs. A Storage must not be
// shared by concurrent runs; create independent storages instead.
type Storage struct {
	arena *arena
	root  nodeID

	logger  *zap.Logger
	rec     recorder
	lastRun TimeSpan
}

// Option configures a Storage at construction time.
type Option func(*Storage)

// WithLogger installs a zap logger; the engine logs run completion and
// contract violations at debug level. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Storage) { s.logger = logger }
}

// WithMeterProvider installs an OpenTelemetry meter provider used to count
// cell hits/misses, scope entries and sweep evictions. Metrics are disabled
// when omitted.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Storage) { s.rec = newOtelRecorder(mp) }
}

// NewStorage creates an empty, independent storage handle.
func NewStorage(opts ...Option) *Storage {
	s := &Storage{
		arena:  newArena(),
		logger: zap.NewNop(),
		rec:    noopRecorder{},
	}
	s.root = s.arena.alloc()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LastRun reports the time span of the last successful run against this
// storage. The zero TimeSpan is returned before the first run.
func (s *Storage) LastRun() TimeSpan {
	return s.lastRun
}
