package location

import "testing"

func TestWithLineAndColumnAreImmutable(t *testing.T) {
	base := New("main.zoid", 1, 1, 0, 1)

	moved := base.WithLine(5).WithColumn(3)

	if base.Line != 1 || base.Column != 1 {
		t.Fatalf("original Location mutated: %+v", base)
	}
	if moved.Line != 5 || moved.Column != 3 {
		t.Fatalf("expected (5,3), got (%d,%d)", moved.Line, moved.Column)
	}
}

func TestExtendRange(t *testing.T) {
	base := New("main.zoid", 1, 1, 10, 10)

	extended := base.ExtendRange(14)

	if extended.Len() != 4 {
		t.Fatalf("expected length 4, got %d", extended.Len())
	}
	if base.Len() != 0 {
		t.Fatalf("original Location mutated: %+v", base)
	}
}

func TestNewRange(t *testing.T) {
	base := New("main.zoid", 2, 1, 0, 0)

	ranged := base.NewRange(3, 9)

	if ranged.Start != 3 || ranged.End != 9 {
		t.Fatalf("expected [3,9), got [%d,%d)", ranged.Start, ranged.End)
	}
}
