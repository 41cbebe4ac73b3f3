package csvtext

import (
	"strings"
	"testing"
)

func TestBalancedQuotes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"plain fields", "a,b,c", true},
		{"closed quotes", `a,"b,c",d`, true},
		{"open quote", `field1,"field2`, false},
		{"escaped quote inside", `"He said ""Hi"""`, true},
		{"escaped quote then open", `"He said ""Hi`, false},
		{"only escaped pair outside has no escape meaning", `""`, true},
		{"lone quote", `"`, false},
		{"quote at end", `a,b,"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BalancedQuotes(tt.in); got != tt.want {
				t.Errorf("BalancedQuotes(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRecordReader_SingleLines(t *testing.T) {
	r := NewRecordReader(strings.NewReader("a,b\nc,d\n"))

	rec, ok := r.Next()
	if !ok || rec != "a,b" {
		t.Fatalf("Next() = %q, %v; want a,b, true", rec, ok)
	}
	rec, ok = r.Next()
	if !ok || rec != "c,d" {
		t.Fatalf("Next() = %q, %v; want c,d, true", rec, ok)
	}
	if rec, ok = r.Next(); ok {
		t.Fatalf("Next() past EOF = %q, true; want exhausted", rec)
	}
}

func TestRecordReader_EmbeddedNewline(t *testing.T) {
	in := "id,desc\nX1,\"line one\nline two\"\nX2,plain\n"
	r := NewRecordReader(strings.NewReader(in))

	rec, _ := r.Next()
	if rec != "id,desc" {
		t.Fatalf("header = %q", rec)
	}

	rec, ok := r.Next()
	if !ok {
		t.Fatal("expected joined record")
	}
	want := "X1,\"line one\nline two\""
	if rec != want {
		t.Errorf("joined record = %q, want %q", rec, want)
	}

	rec, ok = r.Next()
	if !ok || rec != "X2,plain" {
		t.Errorf("Next() = %q, %v; want X2,plain, true", rec, ok)
	}
}

// TestRecordReader_UnterminatedQuote verifies the best-effort path:
// input ending mid-quote returns the accumulated text instead of
// failing.
func TestRecordReader_UnterminatedQuote(t *testing.T) {
	r := NewRecordReader(strings.NewReader("X1,\"never closed\ncontinues"))

	rec, ok := r.Next()
	if !ok {
		t.Fatal("expected a best-effort record")
	}
	want := "X1,\"never closed\ncontinues"
	if rec != want {
		t.Errorf("record = %q, want %q", rec, want)
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}

	if rec, ok = r.Next(); ok {
		t.Errorf("Next() after EOF = %q, true; want exhausted", rec)
	}
}

func TestRecordReader_Empty(t *testing.T) {
	r := NewRecordReader(strings.NewReader(""))
	if rec, ok := r.Next(); ok {
		t.Errorf("Next() on empty input = %q, true; want exhausted", rec)
	}
}
