package inv

// Source column names. Header order in the source is arbitrary; values
// are resolved by name.
const (
	ColUniqID             = "Uniq Id"
	ColProductName        = "Product Name"
	ColBrandName          = "Brand Name"
	ColCategory           = "Category"
	ColListPrice          = "List Price"
	ColSellingPrice       = "Selling Price"
	ColQuantity           = "Quantity"
	ColASIN               = "Asin"
	ColModelNumber        = "Model Number"
	ColProductDescription = "Product Description"
	ColAboutProduct       = "About Product"
	ColStock              = "Stock"
)

// Product is one catalog entity. Every field holds cleaned display
// text; prices and quantities are opaque formatted strings (they may
// carry currency symbols) and are never parsed to numbers.
type Product struct {
	// Required fields
	UniqID       string   // primary key
	ProductName  string
	BrandName    string
	Category     string   // joined display form, e.g. "A | B | C"
	Categories   []string // individual categories for indexing
	ListPrice    string
	SellingPrice string
	Quantity     string

	// Optional fields
	ASIN               string
	ModelNumber        string
	ProductDescription string // Product Description, or About Product as fallback
	Stock              string
}
