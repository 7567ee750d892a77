package rbtree

import (
	"math/rand"
	"testing"

	gc "github.com/TomTonic/gocontainers"
	"github.com/TomTonic/gocontainers/internal/setcheck"
)

func intCmp(a, b int) int { return a - b }

func TestCreateRequiresComparator(t *testing.T) {
	if _, err := Create[int](nil, nil, nil); err != gc.ErrBadArg {
		t.Fatalf("Create(nil cmp) = %v, want ErrBadArg", err)
	}
}

func TestInsertSearchDelete(t *testing.T) {
	tr, _ := Create[int](intCmp, nil, nil)
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		if err := tr.Insert(v); err != nil {
			t.Fatalf("Insert(%d): %v", v, err)
		}
	}
	var out int
	if !tr.Search(4, &out) || out != 4 {
		t.Fatalf("Search(4) = (%d,%v), want (4,true)", out, true)
	}
	if !tr.KeyExists(8) {
		t.Fatalf("KeyExists(8) = false, want true")
	}
	if tr.KeyExists(42) {
		t.Fatalf("KeyExists(42) = true, want false")
	}
	if err := tr.Delete(3); err != nil {
		t.Fatalf("Delete(3): %v", err)
	}
	if tr.KeyExists(3) {
		t.Fatalf("KeyExists(3) = true after delete")
	}
	if err := tr.Delete(999); err != gc.ErrAbsent {
		t.Fatalf("Delete(999) = %v, want ErrAbsent", err)
	}
}

// TestDuplicateRejection is spec.md §8.3 scenario 4.
func TestDuplicateRejection(t *testing.T) {
	tr, _ := Create[int](intCmp, nil, nil)
	for i := 1; i <= 100; i++ {
		if err := tr.Insert(i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	for i := 1; i <= 100; i++ {
		if err := tr.Insert(i); err != gc.ErrDuplicate {
			t.Fatalf("second Insert(%d) = %v, want ErrDuplicate", i, err)
		}
		if tr.NumEntries() != 100 {
			t.Fatalf("NumEntries = %d, want 100", tr.NumEntries())
		}
	}
}

// TestHeightBoundOn1000 is spec.md §8.3 scenario 3.
func TestHeightBoundOn1000(t *testing.T) {
	tr, _ := Create[int](intCmp, nil, nil)
	perm := rand.New(rand.NewSource(1)).Perm(1000)
	for _, v := range perm {
		_ = tr.Insert(v + 1)
	}
	if h := tr.Height(); h >= 22 {
		t.Fatalf("Height() = %d, want < 22", h)
	}
}

func TestMinMaxOnEmpty(t *testing.T) {
	tr, _ := Create[int](intCmp, nil, nil)
	var out int
	if ok := tr.Min(&out); ok {
		t.Fatalf("Min on empty tree: ok = true")
	}
	if ok := tr.Max(&out); ok {
		t.Fatalf("Max on empty tree: ok = true")
	}
}

func TestMinMax(t *testing.T) {
	tr, _ := Create[int](intCmp, nil, nil)
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		_ = tr.Insert(v)
	}
	var minV, maxV int
	if ok := tr.Min(&minV); !ok || minV != 1 {
		t.Fatalf("Min = (%d,%v), want (1,true)", minV, ok)
	}
	if ok := tr.Max(&maxV); !ok || maxV != 9 {
		t.Fatalf("Max = (%d,%v), want (9,true)", maxV, ok)
	}
}

func TestToArrayIsSorted(t *testing.T) {
	tr, _ := Create[int](intCmp, nil, nil)
	vals := []int{9, 1, 8, 2, 7, 3, 6, 4, 5}
	for _, v := range vals {
		_ = tr.Insert(v)
	}
	arr := tr.ToArray()
	for i := 1; i < len(arr); i++ {
		if arr[i-1] >= arr[i] {
			t.Fatalf("ToArray not strictly sorted: %v", arr)
		}
	}
	if len(arr) != tr.NumEntries() {
		t.Fatalf("len(ToArray) = %d, want %d", len(arr), tr.NumEntries())
	}
}

// TestRBArrayRoundTrip is spec.md §8.2's "RB array round trip" law.
func TestRBArrayRoundTrip(t *testing.T) {
	tr, _ := Create[int](intCmp, nil, nil)
	for _, v := range []int{5, 1, 4, 8, 3, 9, 2, 6, 7} {
		_ = tr.Insert(v)
	}
	arr := tr.ToArray()

	tr2, _ := Create[int](intCmp, nil, nil)
	for _, v := range arr {
		if err := tr2.Insert(v); err != nil {
			t.Fatalf("re-insert %d: %v", v, err)
		}
	}
	arr2 := tr2.ToArray()
	if !setcheck.EqualAsSet(arr, arr2) {
		t.Fatalf("round trip not element-equivalent: %v vs %v", arr, arr2)
	}
	for i := range arr {
		if arr[i] != arr2[i] {
			t.Fatalf("round trip mismatch at %d: %d vs %d", i, arr[i], arr2[i])
		}
	}
}

func TestDeleteWithEntryInvokesDestructor(t *testing.T) {
	var destroyed []int
	tr, _ := Create[int](intCmp, func(v int) { destroyed = append(destroyed, v) }, nil)
	for _, v := range []int{5, 3, 8, 1, 4} {
		_ = tr.Insert(v)
	}
	if err := tr.DeleteWithEntry(3); err != nil {
		t.Fatalf("DeleteWithEntry: %v", err)
	}
	if len(destroyed) != 1 || destroyed[0] != 3 {
		t.Fatalf("destroyed = %v, want [3]", destroyed)
	}
	if tr.KeyExists(3) {
		t.Fatalf("KeyExists(3) = true after DeleteWithEntry")
	}
	if err := tr.DeleteWithEntry(999); err != gc.ErrAbsent {
		t.Fatalf("DeleteWithEntry(999) = %v, want ErrAbsent", err)
	}
}

func TestDataSizeMatchesNumEntries(t *testing.T) {
	tr, _ := Create[int](intCmp, nil, nil)
	for _, v := range []int{1, 2, 3} {
		_ = tr.Insert(v)
	}
	if tr.DataSize() != tr.NumEntries() {
		t.Fatalf("DataSize() = %d, want %d (NumEntries)", tr.DataSize(), tr.NumEntries())
	}
}

func TestDestroyWithEntriesInvokesDestructorOnce(t *testing.T) {
	counts := map[int]int{}
	tr, _ := Create[int](intCmp, func(v int) { counts[v]++ }, nil)
	for _, v := range []int{1, 2, 3, 4, 5} {
		_ = tr.Insert(v)
	}
	tr.DestroyWithEntries()
	for v := 1; v <= 5; v++ {
		if counts[v] != 1 {
			t.Fatalf("destructor invoked %d times for %d, want 1", counts[v], v)
		}
	}
	if tr.NumEntries() != 0 {
		t.Fatalf("NumEntries after DestroyWithEntries = %d, want 0", tr.NumEntries())
	}
}

func TestPrintIsNoOpWithoutPrinter(t *testing.T) {
	tr, _ := Create[int](intCmp, nil, nil)
	_ = tr.Insert(1)
	tr.Print() // must not panic
}
