package clean

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Widget", "Widget"},
		{"crlf to space", "line1\r\nline2", "line1 line2"},
		{"tabs to space", "a\tb", "a b"},
		{"collapse runs", "a   b\t\t c", "a b c"},
		{"trim ends", "  padded  ", "padded"},
		{"only whitespace", " \r\n\t ", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "$10.99", "$10.99"},
		{"interior space", "$ 10.99", "$10.99"},
		{"newline and spaces", "$\n1 234,99", "$1234,99"},
		{"left as text", "USD10.99-USD12.99", "USD10.99-USD12.99"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Price(tt.in); got != tt.want {
				t.Errorf("Price(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"dedupe and trim", "Electronics | Computers | Electronics | ", []string{"Electronics", "Computers"}},
		{"empty falls back", "", []string{FallbackCategory}},
		{"only separators", "|||", []string{FallbackCategory}},
		{"single", "Toys", []string{"Toys"}},
		{"preserves first-seen order", "B|A|B|C|A", []string{"B", "A", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categories(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Categories(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"A", "B"}); got != "A | B" {
		t.Errorf("Join = %q, want A | B", got)
	}
	if got := Join([]string{"Solo"}); got != "Solo" {
		t.Errorf("Join = %q, want Solo", got)
	}

	// Round trip for non-degenerate input.
	cats := []string{"Electronics", "Computers"}
	if got := Categories(Join(cats)); !reflect.DeepEqual(got, cats) {
		t.Errorf("Categories(Join(%v)) = %v", cats, got)
	}
}
