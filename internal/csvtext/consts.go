package csvtext

const (
	// ============================================================================
	// CSV Structural Tokens
	// ============================================================================

	// Quote is the double-quote character delimiting quoted fields
	Quote = '"'

	// Comma is the field separator
	Comma = ','

	// Newline joins physical lines when a quoted field spans several of them
	Newline = '\n'

	// ============================================================================
	// Scanner Sizing
	// ============================================================================

	// ScannerInitialBufferSize is the initial buffer size for the record scanner
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the maximum physical line size for the record scanner.
	// Product descriptions can run long, but a single physical line past this
	// is treated as malformed input.
	ScannerMaxLineSize = 4 * 1024 * 1024 // 4MB

	// InitialFieldCapacity is the estimated field count per record for pre-allocation
	InitialFieldCapacity = 16

	// ============================================================================
	// Source Encodings
	// ============================================================================

	// EncodingUTF8 selects plain UTF-8 input (the default)
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE selects UTF-16 little-endian input
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 selects Windows-1252 (Latin-1 superset) input
	EncodingWindows1252 = "WINDOWS-1252"

	// UTF16CodeUnitSize is the byte width of one UTF-16 code unit
	UTF16CodeUnitSize = 2
)

// UTF8BOM is the UTF-8 byte order mark.
var UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

// UTF16LEBOM is the UTF-16LE byte order mark.
var UTF16LEBOM = []byte{0xFF, 0xFE}
