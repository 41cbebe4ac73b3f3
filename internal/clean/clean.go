// Package clean normalizes raw field text before it enters the catalog.
//
// Every textual field passes through Text; price fields additionally
// lose their interior spaces via Price; the multi-valued category field
// is split, trimmed, and deduplicated by Categories. All results stay
// display strings, prices are never parsed to numbers.
package clean

import "strings"

// FallbackCategory is substituted when a product has no usable category
// so every product belongs to at least one.
const FallbackCategory = "NA"

// CategorySeparator is the in-field separator for multi-category
// products.
const CategorySeparator = '|'

// categoryJoin is the display form separator produced by Join.
const categoryJoin = " | "

// Text replaces CR, LF, and TAB with single spaces, collapses runs of
// whitespace to one space, and trims the ends.
func Text(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	prevSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' || c == '\r' || c == '\t' {
			c = ' '
		}
		if c == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		out.WriteByte(c)
	}
	return strings.TrimSpace(out.String())
}

// Price normalizes like Text, then removes interior spaces. Currency
// symbols, digits, and punctuation pass through untouched; the result
// remains a display string.
func Price(s string) string {
	t := Text(s)
	if !strings.ContainsRune(t, ' ') {
		return t
	}
	return strings.ReplaceAll(t, " ", "")
}

// Categories splits raw on '|', trims each part, drops empties, and
// deduplicates while preserving first-seen order. An empty result falls
// back to [FallbackCategory].
func Categories(raw string) []string {
	parts := strings.Split(raw, string(CategorySeparator))
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	if len(out) == 0 {
		out = append(out, FallbackCategory)
	}
	return out
}

// Join renders categories in their display form, parts separated by
// " | ". For non-degenerate input this is the inverse of Categories.
func Join(categories []string) string {
	return strings.Join(categories, categoryJoin)
}
