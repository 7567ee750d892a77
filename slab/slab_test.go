package slab

import (
	"math"
	"reflect"
	"testing"

	gc "github.com/TomTonic/gocontainers"
)

func intCmp(a, b int) int { return a - b }

func TestCreateRejectsBadLength(t *testing.T) {
	if _, err := Create[int](0); err != gc.ErrBadArg {
		t.Fatalf("Create(0) = %v, want ErrBadArg", err)
	}
	if _, err := Create[int](-1); err != gc.ErrBadArg {
		t.Fatalf("Create(-1) = %v, want ErrBadArg", err)
	}
}

// TestCreateRejectsOverflowingLength checks spec.md §4.A's AllocError path:
// a length whose byte span (length*sizeof(T)) would overflow int is
// rejected before any allocation is attempted.
func TestCreateRejectsOverflowingLength(t *testing.T) {
	type big [1 << 30]byte // 1 GiB element, no actual allocation occurs
	overflowing := math.MaxInt/(1<<30) + 1
	if _, err := Create[big](overflowing); err != gc.ErrAlloc {
		t.Fatalf("Create(overflowing length) = %v, want ErrAlloc", err)
	}
}

func TestCreateZeroFilled(t *testing.T) {
	s, err := Create[int](5)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i, v := range s.Raw() {
		if v != 0 {
			t.Fatalf("element %d = %d, want 0", i, v)
		}
	}
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}
}

func TestDestroyWithInvokesEveryElementOnce(t *testing.T) {
	s, _ := Create[int](4)
	copy(s.Raw(), []int{1, 2, 3, 4})
	counts := make(map[int]int)
	s.DestroyWith(func(v int) { counts[v]++ })
	for v := 1; v <= 4; v++ {
		if counts[v] != 1 {
			t.Fatalf("element %d destroyed %d times, want 1", v, counts[v])
		}
	}
	if s.Raw() != nil {
		t.Fatalf("DestroyWith did not release backing array")
	}
}

func TestCopyWritesIntoDst(t *testing.T) {
	src := []int{1, 2, 3}
	dst := make([]int, 3)
	Copy(dst, src)
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("Copy = %v, want %v", dst, src)
	}
}

func TestMoveToleratesOverlap(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5}
	Move(buf[1:], buf[:4])
	if want := []int{1, 1, 2, 3, 4}; !reflect.DeepEqual(buf, want) {
		t.Fatalf("Move = %v, want %v", buf, want)
	}
}

func TestCloneIsIndependentCopy(t *testing.T) {
	src := []int{1, 2, 3}
	dst := Clone(src)
	dst[0] = 99
	if src[0] != 1 {
		t.Fatalf("Clone aliased source: %v", src)
	}
	if dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("Clone mismatched contents: %v", dst)
	}
}

func TestZeroFillsWithZeroValue(t *testing.T) {
	buf := []int{1, 2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, v)
		}
	}
}
