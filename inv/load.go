package inv

import (
	"fmt"
	"io"

	"github.com/invkit/invkit/internal/clean"
	"github.com/invkit/invkit/internal/csvtext"
	"github.com/invkit/invkit/internal/mmfile"
)

// LoadOptions controls how a source is read.
type LoadOptions struct {
	// Encoding selects the source text encoding: "", "UTF-8",
	// "UTF-16LE", or "Windows-1252". A byte order mark in the source
	// overrides it.
	Encoding string

	// InitialBuckets sizes the product table; 0 means the hashmap
	// default.
	InitialBuckets int
}

// LoadCSV loads the source at path into a fresh catalog with default
// options.
func LoadCSV(path string) (*Catalog, error) {
	return LoadCSVWithOptions(path, LoadOptions{})
}

// LoadCSVWithOptions loads the source at path into a fresh catalog.
// The only failures are an unopenable source, an undecodable encoding,
// and a source with no header record; per-record problems are absorbed
// during the pass (see the package documentation).
func LoadCSVWithOptions(path string, opts LoadOptions) (*Catalog, error) {
	c := NewCatalog()
	if opts.InitialBuckets > 0 {
		c = NewCatalogWithBuckets(opts.InitialBuckets)
	}
	if err := c.LoadCSV(path, opts); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadCSV loads the source at path into c. On Unix the file is
// memory-mapped for the duration of the pass.
func (c *Catalog) LoadCSV(path string, opts LoadOptions) error {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("inv: open source %s: %w", path, err)
	}
	defer cleanup() //nolint:errcheck // unmap failure is unactionable here

	src, err := csvtext.DecodeSource(data, opts.Encoding)
	if err != nil {
		return fmt.Errorf("inv: decode source %s: %w", path, err)
	}
	return c.Load(src)
}

// Load streams records from r into c: header first, then one logical
// record at a time through the tokenizer and sanitizer. Records whose
// unique id is empty after normalization are skipped silently and
// leave both structures untouched.
func (c *Catalog) Load(r io.Reader) error {
	records := csvtext.NewRecordReader(r)

	headerRec, ok := records.Next()
	if !ok {
		if err := records.Err(); err != nil {
			return fmt.Errorf("inv: read header: %w", err)
		}
		return fmt.Errorf("inv: source has no header record")
	}
	header := csvtext.ParseHeader(headerRec)

	for {
		rec, ok := records.Next()
		if !ok {
			break
		}
		if rec == "" {
			continue
		}
		row := csvtext.SplitFields(rec)
		p := assembleProduct(header, row)
		c.Insert(p) // no-op for empty UniqID
	}
	if err := records.Err(); err != nil {
		return fmt.Errorf("inv: read source: %w", err)
	}
	return nil
}

// assembleProduct resolves row values by column name and runs each
// through the relevant sanitizer. Absent columns read as "".
func assembleProduct(h *csvtext.Header, row []string) Product {
	var p Product

	p.UniqID = clean.Text(h.Field(row, ColUniqID))
	if p.UniqID == "" {
		return p
	}

	p.ProductName = clean.Text(h.Field(row, ColProductName))
	p.BrandName = clean.Text(h.Field(row, ColBrandName))

	rawCat := clean.Text(h.Field(row, ColCategory))
	p.Categories = clean.Categories(rawCat)
	p.Category = clean.Join(p.Categories)

	p.ListPrice = clean.Price(h.Field(row, ColListPrice))
	p.SellingPrice = clean.Price(h.Field(row, ColSellingPrice))
	p.Quantity = clean.Text(h.Field(row, ColQuantity))

	p.ASIN = clean.Text(h.Field(row, ColASIN))
	p.ModelNumber = clean.Text(h.Field(row, ColModelNumber))
	p.ProductDescription = clean.Text(h.Field(row, ColProductDescription))
	if p.ProductDescription == "" {
		p.ProductDescription = clean.Text(h.Field(row, ColAboutProduct))
	}
	p.Stock = clean.Text(h.Field(row, ColStock))

	return p
}
