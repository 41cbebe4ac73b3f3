package inv

import (
	"fmt"
	"io"
	"strings"
)

// DefaultWrapWidth is the line width used for long description fields.
const DefaultWrapWidth = 100

// WriteProduct prints p field by field in a human-readable form.
// Optional fields are omitted when empty; the description is wrapped at
// wrapWidth columns with a four-space indent. A wrapWidth of 0 or less
// falls back to DefaultWrapWidth.
func WriteProduct(w io.Writer, p *Product, wrapWidth int) error {
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Uniq Id: %s\n", p.UniqID)
	fmt.Fprintf(&b, "Product Name: %s\n", p.ProductName)
	fmt.Fprintf(&b, "Brand Name: %s\n", p.BrandName)
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	fmt.Fprintf(&b, "List Price: %s\n", p.ListPrice)
	fmt.Fprintf(&b, "Selling Price: %s\n", p.SellingPrice)
	fmt.Fprintf(&b, "Quantity: %s\n", p.Quantity)
	if p.ASIN != "" {
		fmt.Fprintf(&b, "Asin: %s\n", p.ASIN)
	}
	if p.ModelNumber != "" {
		fmt.Fprintf(&b, "Model Number: %s\n", p.ModelNumber)
	}
	b.WriteString("Product Description:")
	if p.ProductDescription == "" {
		b.WriteByte('\n')
	} else {
		b.WriteByte('\n')
		b.WriteString(wrapText(p.ProductDescription, wrapWidth, "    "))
	}
	if p.Stock != "" {
		fmt.Fprintf(&b, "Stock: %s\n", p.Stock)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatProduct renders p as WriteProduct would, returning the text.
func FormatProduct(p *Product, wrapWidth int) string {
	var b strings.Builder
	_ = WriteProduct(&b, p, wrapWidth) // strings.Builder never errors
	return b.String()
}

// wrapText greedily packs words into lines no wider than width, each
// line prefixed with indent. Words longer than the width get a line of
// their own.
func wrapText(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	cur := indent + words[0]
	for _, word := range words[1:] {
		if len(cur)+1+len(word) > width {
			b.WriteString(cur)
			b.WriteByte('\n')
			cur = indent + word
			continue
		}
		cur += " " + word
	}
	b.WriteString(cur)
	b.WriteByte('\n')
	return b.String()
}
