package vector

import "testing"

func TestIntervalContains(t *testing.T) {
	i := NewInterval(1.0, 3.0)
	if !i.Contains(1.0) || !i.Contains(3.0) || !i.Contains(2.0) {
		t.Error("expected closed interval to contain its bounds and midpoint")
	}
	if i.Contains(0.999) || i.Contains(3.001) {
		t.Error("expected interval to reject values outside bounds")
	}
}

func TestIntervalContainsExclusive(t *testing.T) {
	i := NewInterval(1.0, 3.0)
	if i.ContainsExclusive(1.0) || i.ContainsExclusive(3.0) {
		t.Error("expected open interval to exclude its own bounds")
	}
	if !i.ContainsExclusive(2.0) {
		t.Error("expected open interval to contain its midpoint")
	}
}

func TestIntervalEmpty(t *testing.T) {
	if !NewInterval(2.0, 1.0).Empty() {
		t.Error("expected min > max to be empty")
	}
	if NewInterval(1.0, 1.0).Empty() {
		t.Error("expected min == max to be non-empty")
	}
}

func TestIntervalClamp(t *testing.T) {
	i := NewInterval(0.0, 10.0)
	if got := i.Clamp(-5); got != 0 {
		t.Errorf("Clamp(-5) = %v, want 0", got)
	}
	if got := i.Clamp(15); got != 10 {
		t.Errorf("Clamp(15) = %v, want 10", got)
	}
	if got := i.Clamp(5); got != 5 {
		t.Errorf("Clamp(5) = %v, want 5", got)
	}
}

func TestIntervalHull(t *testing.T) {
	a := NewInterval(1.0, 3.0)
	b := NewInterval(-1.0, 2.0)
	h := Hull(a, b)
	if h.Min != -1 || h.Max != 3 {
		t.Errorf("Hull = %v, want [-1,3]", h)
	}
}

func TestIntervalGenericInt(t *testing.T) {
	i := NewInterval(0, 10)
	if i.Size() != 10 {
		t.Errorf("Size = %v, want 10", i.Size())
	}
}
