package csvtext

import "strings"

// SplitFields splits one complete logical record into field values.
//
// The scan has two states. Outside quotes a comma ends the current
// field and a quote enters quoted state without being copied. Inside
// quotes a doubled quote emits one literal quote and stays quoted, a
// lone quote leaves quoted state, and commas are literal. The final
// field is emitted even without a trailing comma, so a record always
// yields at least one field.
func SplitFields(record string) []string {
	fields := make([]string, 0, InitialFieldCapacity)
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(record); i++ {
		c := record[i]
		if inQuotes {
			switch {
			case c == Quote && i+1 < len(record) && record[i+1] == Quote:
				cur.WriteByte(Quote)
				i++
			case c == Quote:
				inQuotes = false
			default:
				cur.WriteByte(c)
			}
			continue
		}
		switch c {
		case Quote:
			inQuotes = true
		case Comma:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// Header maps column names to their positional index, built from the
// first logical record of a source. Names are trimmed of surrounding
// whitespace so ragged headers still resolve.
type Header struct {
	idx map[string]int
}

// ParseHeader tokenizes headerRecord and builds the name→index map.
// Later duplicates of a name win, matching plain map assignment.
func ParseHeader(headerRecord string) *Header {
	cols := SplitFields(headerRecord)
	h := &Header{idx: make(map[string]int, len(cols))}
	for i, col := range cols {
		h.idx[strings.TrimSpace(col)] = i
	}
	return h
}

// Index returns the position of the named column. A missing column is
// an explicit absent result, never a sentinel index.
func (h *Header) Index(name string) (int, bool) {
	i, ok := h.idx[name]
	return i, ok
}

// Field returns row's value for the named column, or "" when the
// column is absent from the header or the row is too short.
func (h *Header) Field(row []string, name string) string {
	i, ok := h.idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// Len returns the number of named columns.
func (h *Header) Len() int { return len(h.idx) }
