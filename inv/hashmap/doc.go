// Package hashmap implements the string-keyed hash table backing the
// product catalog.
//
// # Overview
//
// Map is a separate-chaining hash table, generic over its value type.
// Each bucket holds an ordered chain of key/value nodes; lookups,
// inserts, and erases scan the chain for an exact key match. Chains own
// their nodes outright, so there are no shared references between
// buckets and no back pointers to manage.
//
// # Growth
//
// The table tracks its load factor (entries / buckets) and grows
// synchronously whenever an insert that added a new entry pushes the
// load factor above MaxLoadFactor. Growth allocates 2n+1 buckets (odd
// counts reduce clustering with power-of-two-ish key distributions) and
// redistributes every existing node. From the caller's point of view
// the rehash is atomic: Insert returns only after all entries are
// reachable at their new positions. Amortized over a sequence of N
// inserts the growth cost is O(1) per insert.
//
// # Typical usage
//
//	m := hashmap.New[Product]()
//	m.Insert("B07XYZ", p)
//	if v, ok := m.Find("B07XYZ"); ok {
//	    fmt.Println(v.ProductName)
//	}
//
// # Thread safety
//
// Map is not safe for concurrent mutation. The catalog's access pattern
// is bulk-write-then-many-reads; concurrent readers are safe once
// loading has finished, but any interleaved write requires external
// locking.
package hashmap
