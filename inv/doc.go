// Package inv provides an in-memory product catalog loaded from
// delimited text sources.
//
// # Overview
//
// A Catalog owns two structures built in one streaming pass over a CSV
// source: a hash table mapping unique product id to Product, and a
// secondary index mapping category label to the ordered ids belonging
// to it. Both are built once during load and are read-only afterwards.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Product: one catalog entity, all fields retained as cleaned
//     display strings
//   - Catalog: the explicit owner of the hash table and category index
//   - LoadOptions: source encoding and table sizing knobs
//
// # Loading a Catalog
//
//	c, err := inv.LoadCSV("products.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if p, ok := c.Find("4c69b61db1fc16e7013b43fc926e502d"); ok {
//	    fmt.Println(p.ProductName)
//	}
//
// On Unix the source file is memory-mapped for the load pass; elsewhere
// it is read into memory. Sources may be UTF-8 (with or without BOM),
// UTF-16LE, or Windows-1252.
//
// # Error Model
//
// Only an unopenable or headerless source fails a load. Everything at
// record granularity is absorbed: a quoted field left open at EOF is
// returned best effort, a record without a usable unique id is skipped
// silently, and a missing optional column reads as the empty string.
//
// # Thread Safety
//
// Catalog is not safe for concurrent mutation. The intended pattern is
// bulk-load-then-read; once Load has returned, any number of goroutines
// may query concurrently.
//
// # Related Packages
//
//   - github.com/invkit/invkit/inv/hashmap: the chained hash table
//   - github.com/invkit/invkit/inv/index: the category index
package inv
