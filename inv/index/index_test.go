package index

import (
	"testing"
)

// Test_Add_PreservesOrder tests that ids keep their append order.
func Test_Add_PreservesOrder(t *testing.T) {
	idx := NewCategoryIndex(10)

	idx.Add("Electronics", "X1")
	idx.Add("Electronics", "X2")
	idx.Add("Toys", "X2")
	idx.Add("Electronics", "X3")

	ids, ok := idx.Get("Electronics")
	if !ok {
		t.Fatal("Get(Electronics) should be known")
	}
	want := []string{"X1", "X2", "X3"}
	if len(ids) != len(want) {
		t.Fatalf("Get(Electronics) = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %s, want %s", i, ids[i], want[i])
		}
	}

	if ids, ok := idx.Get("Toys"); !ok || len(ids) != 1 || ids[0] != "X2" {
		t.Errorf("Get(Toys) = %v, %v; want [X2], true", ids, ok)
	}
}

// Test_Get_Unknown tests the absent signal for unknown categories.
func Test_Get_Unknown(t *testing.T) {
	idx := NewCategoryIndex(0)

	if ids, ok := idx.Get("Nope"); ok {
		t.Errorf("Get(Nope) on empty index = %v, true; want absent", ids)
	}

	idx.Add("A", "X1")
	if _, ok := idx.Get("a"); ok {
		t.Error("Get is case-sensitive; Get(a) should be absent")
	}
}

// Test_Categories_Sorted tests the sorted label listing.
func Test_Categories_Sorted(t *testing.T) {
	idx := NewCategoryIndex(0)
	idx.Add("Zoo", "1")
	idx.Add("Apple", "2")
	idx.Add("Mango", "3")

	cats := idx.Categories()
	want := []string{"Apple", "Mango", "Zoo"}
	if len(cats) != len(want) {
		t.Fatalf("Categories() = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("Categories()[%d] = %s, want %s", i, cats[i], want[i])
		}
	}

	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}
}

// Test_Stats verifies index metrics.
func Test_Stats(t *testing.T) {
	idx := NewCategoryIndex(0)
	idx.Add("A", "1")
	idx.Add("A", "2")
	idx.Add("A", "3")
	idx.Add("B", "1")

	s := idx.Stats()
	if s.Categories != 2 {
		t.Errorf("Stats().Categories = %d, want 2", s.Categories)
	}
	if s.Entries != 4 {
		t.Errorf("Stats().Entries = %d, want 4", s.Entries)
	}
	if s.MaxBucket != 3 {
		t.Errorf("Stats().MaxBucket = %d, want 3", s.MaxBucket)
	}
}
