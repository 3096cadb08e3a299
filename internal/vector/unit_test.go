package vector

import "testing"

func TestNewUnitNormalizes(t *testing.T) {
	u := NewUnit(New(3, 0, 0))
	if !almostEqual(u.Vec().Length(), 1) {
		t.Errorf("expected unit length, got %v", u.Vec().Length())
	}
}

func TestNewUnitSkipsRenormalizationWhenAlreadyUnit(t *testing.T) {
	v := New(1, 0, 0)
	u := NewUnit(v)
	if u.Vec() != v {
		t.Errorf("expected already-unit vector to pass through unchanged, got %v", u.Vec())
	}
}

func TestUnitNegatePreservesLength(t *testing.T) {
	u := New(0, 1, 0).Normalize()
	neg := u.Negate()
	if !almostEqual(neg.Vec().Length(), 1) {
		t.Errorf("expected negated unit to stay unit length, got %v", neg.Vec().Length())
	}
	if neg.Vec() != New(0, -1, 0) {
		t.Errorf("Negate = %v, want (0,-1,0)", neg.Vec())
	}
}

func TestIsUnit(t *testing.T) {
	if !IsUnit(New(1, 0, 0)) {
		t.Error("expected (1,0,0) to be a unit vector")
	}
	if IsUnit(New(1, 1, 0)) {
		t.Error("expected (1,1,0) to not be a unit vector")
	}
}

func TestRayNormalizesDirection(t *testing.T) {
	r := NewRay(New(0, 0, 0), New(2, 0, 0))
	if !IsUnit(r.Direction.Vec()) {
		t.Errorf("expected ray direction to be normalized, got %v", r.Direction.Vec())
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(New(0, 0, 0), New(1, 0, 0))
	p := r.At(5)
	if p != New(5, 0, 0) {
		t.Errorf("At(5) = %v, want (5,0,0)", p)
	}
}
