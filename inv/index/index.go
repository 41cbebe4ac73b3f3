// Package index provides the secondary category index for the catalog.
//
// The index maps a category label to the ordered list of product ids
// first seen under that label during a bulk load. Order within a list
// is append order; a product with several categories appears in several
// lists. The index never inspects or validates ids, it only records
// them.
package index

import "sort"

// CategoryIndex maps category label → ordered product ids.
//
// Built once during load and read-only afterwards. Not safe for
// concurrent mutation.
type CategoryIndex struct {
	ids map[string][]string
}

// NewCategoryIndex creates an empty index with an optional capacity
// hint for the expected number of distinct categories.
func NewCategoryIndex(capHint int) *CategoryIndex {
	if capHint <= 0 {
		capHint = 64
	}
	return &CategoryIndex{
		ids: make(map[string][]string, capHint),
	}
}

// Add appends id to the bucket for category. Callers are expected to
// pass categories already deduplicated per product; Add itself does not
// deduplicate, matching append-order semantics across products.
func (c *CategoryIndex) Add(category, id string) {
	c.ids[category] = append(c.ids[category], id)
}

// Get returns the ordered ids recorded under category and whether the
// category is known at all.
func (c *CategoryIndex) Get(category string) ([]string, bool) {
	ids, ok := c.ids[category]
	return ids, ok
}

// Categories returns all known category labels, sorted for stable
// output.
func (c *CategoryIndex) Categories() []string {
	out := make([]string, 0, len(c.ids))
	for cat := range c.ids {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct categories.
func (c *CategoryIndex) Len() int { return len(c.ids) }

// Stats reports index metrics.
type Stats struct {
	Categories int // Number of distinct category labels
	Entries    int // Total id references across all labels
	MaxBucket  int // Largest number of ids under one label
}

// Stats walks all buckets and returns size metrics.
func (c *CategoryIndex) Stats() Stats {
	s := Stats{Categories: len(c.ids)}
	for _, ids := range c.ids {
		s.Entries += len(ids)
		if len(ids) > s.MaxBucket {
			s.MaxBucket = len(ids)
		}
	}
	return s
}
