package inv

import (
	"github.com/invkit/invkit/inv/hashmap"
	"github.com/invkit/invkit/inv/index"
)

// Catalog owns the product table and the category index. It replaces
// the pattern of process-wide mutable globals: construct one at
// startup, load it, and pass it to every query site.
type Catalog struct {
	products   *hashmap.Map[Product]
	categories *index.CategoryIndex
}

// NewCatalog creates an empty catalog with default table sizing.
func NewCatalog() *Catalog {
	return NewCatalogWithBuckets(hashmap.DefaultBucketCount)
}

// NewCatalogWithBuckets creates an empty catalog whose product table
// starts with the given bucket count.
func NewCatalogWithBuckets(bucketCount int) *Catalog {
	return &Catalog{
		products:   hashmap.NewWithBuckets[Product](bucketCount),
		categories: index.NewCategoryIndex(0),
	}
}

// Find returns the product stored under id, or (nil, false) when the
// id is unknown. The pointer stays valid until the next load into this
// catalog.
func (c *Catalog) Find(id string) (*Product, bool) {
	return c.products.Find(id)
}

// InCategory returns the ordered product ids recorded under category
// and whether the category is known at all.
func (c *Catalog) InCategory(category string) ([]string, bool) {
	return c.categories.Get(category)
}

// Categories returns all known category labels, sorted.
func (c *Catalog) Categories() []string {
	return c.categories.Categories()
}

// Len returns the number of products stored.
func (c *Catalog) Len() int { return c.products.Len() }

// Insert stores p under its UniqID, overwriting any prior product with
// the same id, and records p's categories in the index. Products with
// an empty UniqID are ignored.
func (c *Catalog) Insert(p Product) {
	if p.UniqID == "" {
		return
	}
	c.products.Insert(p.UniqID, p)
	for _, cat := range p.Categories {
		c.categories.Add(cat, p.UniqID)
	}
}

// Stats aggregates table and index metrics.
type Stats struct {
	Table      hashmap.Stats
	Categories index.Stats
}

// Stats returns current table and index metrics.
func (c *Catalog) Stats() Stats {
	return Stats{
		Table:      c.products.Stats(),
		Categories: c.categories.Stats(),
	}
}
