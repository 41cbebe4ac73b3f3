package hashmap

import "hash/fnv"

const (
	// DefaultBucketCount is the bucket count used by New. It is sized so
	// that catalogs in the low thousands of entries never rehash during
	// an initial bulk load.
	DefaultBucketCount = 1003

	// MaxLoadFactor is the growth trigger. An insert that creates a new
	// entry and pushes entries/buckets above this ratio rehashes before
	// returning.
	MaxLoadFactor = 0.9
)

// node is one chain entry. Nodes are stored by value inside their
// chain; the chain is the sole owner.
type node[V any] struct {
	key   string
	value V
}

// Map is a string-keyed hash table with separate chaining.
// The zero value is not usable; construct with New or NewWithBuckets.
type Map[V any] struct {
	buckets [][]node[V]
	size    int
}

// New creates a Map with DefaultBucketCount buckets.
func New[V any]() *Map[V] {
	return NewWithBuckets[V](DefaultBucketCount)
}

// NewWithBuckets creates a Map with the given initial bucket count.
// Counts below 1 are clamped to 1; a single-bucket table degrades to a
// linear scan but stays correct.
func NewWithBuckets[V any](bucketCount int) *Map[V] {
	if bucketCount < 1 {
		bucketCount = 1
	}
	return &Map[V]{
		buckets: make([][]node[V], bucketCount),
	}
}

// Insert stores value under key. It returns true when the key was not
// present before, false when an existing entry was overwritten in
// place. Inserting a new entry may grow the table; overwrites never do.
func (m *Map[V]) Insert(key string, value V) bool {
	idx := m.indexFor(key)
	chain := m.buckets[idx]
	for i := range chain {
		if chain[i].key == key {
			chain[i].value = value
			return false
		}
	}
	m.buckets[idx] = append(chain, node[V]{key: key, value: value})
	m.size++
	if m.LoadFactor() > MaxLoadFactor {
		m.rehash(len(m.buckets)*2 + 1)
	}
	return true
}

// Find returns a pointer to the value stored under key, or (nil, false)
// when the key is absent. The pointer stays valid until the next
// mutation of the map.
func (m *Map[V]) Find(key string) (*V, bool) {
	chain := m.buckets[m.indexFor(key)]
	for i := range chain {
		if chain[i].key == key {
			return &chain[i].value, true
		}
	}
	return nil, false
}

// Erase removes the entry stored under key. It returns true when an
// entry was removed, false when the key was absent.
func (m *Map[V]) Erase(key string) bool {
	idx := m.indexFor(key)
	chain := m.buckets[idx]
	for i := range chain {
		if chain[i].key == key {
			m.buckets[idx] = append(chain[:i], chain[i+1:]...)
			m.size--
			return true
		}
	}
	return false
}

// Len returns the number of entries stored.
func (m *Map[V]) Len() int { return m.size }

// BucketCount returns the current number of buckets. Always > 0.
func (m *Map[V]) BucketCount() int { return len(m.buckets) }

// LoadFactor returns entries divided by buckets.
func (m *Map[V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// Stats reports table metrics, mainly for the stats command and tests.
type Stats struct {
	Entries      int     // Number of stored entries
	Buckets      int     // Current bucket count
	LoadFactor   float64 // Entries / Buckets
	MaxChain     int     // Longest chain
	UsedBuckets  int     // Buckets with at least one entry
	AvgChainUsed float64 // Entries / UsedBuckets (0 when empty)
}

// Stats walks all buckets and returns distribution metrics.
func (m *Map[V]) Stats() Stats {
	s := Stats{
		Entries:    m.size,
		Buckets:    len(m.buckets),
		LoadFactor: m.LoadFactor(),
	}
	for _, chain := range m.buckets {
		if len(chain) == 0 {
			continue
		}
		s.UsedBuckets++
		if len(chain) > s.MaxChain {
			s.MaxChain = len(chain)
		}
	}
	if s.UsedBuckets > 0 {
		s.AvgChainUsed = float64(s.Entries) / float64(s.UsedBuckets)
	}
	return s
}

// indexFor hashes key with FNV-1a and reduces it modulo the bucket
// count.
func (m *Map[V]) indexFor(key string) int {
	return bucketIndex(key, len(m.buckets))
}

// bucketIndex is split out so the rehash loop can hash against the new
// bucket count before the bucket slice is swapped in.
func bucketIndex(key string, bucketCount int) int {
	h := fnv.New64a()
	h.Write([]byte(key)) //nolint:errcheck // fnv hash.Write never errors
	return int(h.Sum64() % uint64(bucketCount))
}

// rehash redistributes every entry into newBucketCount buckets. All
// nodes are moved, none copied with loss; the old bucket slice is
// dropped only after every node has a new home.
func (m *Map[V]) rehash(newBucketCount int) {
	newBuckets := make([][]node[V], newBucketCount)
	for _, chain := range m.buckets {
		for _, n := range chain {
			idx := bucketIndex(n.key, newBucketCount)
			newBuckets[idx] = append(newBuckets[idx], n)
		}
	}
	m.buckets = newBuckets
}
