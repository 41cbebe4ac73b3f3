package csvtext

import (
	"bufio"
	"io"
	"strings"
)

// BalancedQuotes reports whether s, taken alone, is a syntactically
// complete record. It scans with an inside-quotes flag: a quote toggles
// the flag, except that a quote pair inside a quoted field is an escape
// and toggles nothing. A false result means the record continues on the
// next physical line (an embedded newline inside a quoted field).
func BalancedQuotes(s string) bool {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		if s[i] != Quote {
			continue
		}
		if inQuotes && i+1 < len(s) && s[i+1] == Quote {
			i++ // escaped quote, skip the pair
			continue
		}
		inQuotes = !inQuotes
	}
	return !inQuotes
}

// RecordReader assembles logical records from a physical line stream.
// One logical record may span several physical lines when a quoted
// field embeds literal newlines.
type RecordReader struct {
	scanner *bufio.Scanner
}

// NewRecordReader wraps r with a scanner sized for long description
// fields.
func NewRecordReader(r io.Reader) *RecordReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, ScannerInitialBufferSize), ScannerMaxLineSize)
	return &RecordReader{scanner: scanner}
}

// Next returns the next logical record. While the accumulated text is
// unbalanced it appends the following physical line, joined with '\n'.
// Input ending mid-quote is best effort: whatever text accumulated is
// returned as the final record. The second result is false once the
// input is exhausted.
func (r *RecordReader) Next() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}

	line := r.scanner.Text()
	if BalancedQuotes(line) {
		return line, true
	}

	var record strings.Builder
	record.WriteString(line)
	for !BalancedQuotes(record.String()) {
		if !r.scanner.Scan() {
			break // best effort: unterminated quote at EOF
		}
		record.WriteByte(Newline)
		record.WriteString(r.scanner.Text())
	}
	return record.String(), true
}

// Err returns the first non-EOF error hit by the underlying scanner,
// such as a physical line exceeding ScannerMaxLineSize.
func (r *RecordReader) Err() error {
	return r.scanner.Err()
}
