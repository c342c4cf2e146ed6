package scene

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewGroupBoundingBoxAndRebase(t *testing.T) {
	a := rectAt(10, 20, 30, 40)
	b := rectAt(100, 50, 20, 10)
	g := NewGroup([]Object{a, b})

	box := g.Transform()
	if !almostEqual(box.Left, 10) || !almostEqual(box.Top, 20) {
		t.Errorf("box origin = (%v, %v), want (10, 20)", box.Left, box.Top)
	}
	if !almostEqual(box.Width, 110) || !almostEqual(box.Height, 40) {
		t.Errorf("box size = (%v, %v), want (110, 40)", box.Width, box.Height)
	}

	// Members are rebased to group-relative coordinates.
	at := a.Transform()
	if !almostEqual(at.Left, 0) || !almostEqual(at.Top, 0) {
		t.Errorf("member a relative origin = (%v, %v), want (0, 0)", at.Left, at.Top)
	}
	bt := b.Transform()
	if !almostEqual(bt.Left, 90) || !almostEqual(bt.Top, 30) {
		t.Errorf("member b relative origin = (%v, %v), want (90, 30)", bt.Left, bt.Top)
	}
}

func TestBoundingBoxUsesScaledExtent(t *testing.T) {
	a := NewShape("rect", "#fff", Transform{Left: 0, Top: 0, Width: 10, Height: 10, ScaleX: 3, ScaleY: 2})
	g := NewGroup([]Object{a})

	box := g.Transform()
	if !almostEqual(box.Width, 30) || !almostEqual(box.Height, 20) {
		t.Errorf("box size = (%v, %v), want (30, 20)", box.Width, box.Height)
	}
}

func TestRealizeTransformBakesGroupTransform(t *testing.T) {
	a := rectAt(10, 20, 30, 40)
	b := rectAt(100, 50, 20, 10)
	g := NewGroup([]Object{a, b})

	// Move and scale the group, then realize one member.
	box := g.Transform()
	box.Left += 5
	box.Top += 5
	box.ScaleX = 2
	box.ScaleY = 2
	box.Angle = 15
	g.SetTransform(box)

	if err := g.RealizeTransform(b); err != nil {
		t.Fatalf("RealizeTransform() error = %v", err)
	}
	bt := b.Transform()
	if !almostEqual(bt.Left, 15+90*2) || !almostEqual(bt.Top, 25+30*2) {
		t.Errorf("realized origin = (%v, %v), want (195, 85)", bt.Left, bt.Top)
	}
	if !almostEqual(bt.ScaleX, 2) || !almostEqual(bt.ScaleY, 2) {
		t.Errorf("realized scale = (%v, %v), want (2, 2)", bt.ScaleX, bt.ScaleY)
	}
	if !almostEqual(bt.Angle, 15) {
		t.Errorf("realized angle = %v, want 15", bt.Angle)
	}
}

func TestRealizeTransformRejectsNonMember(t *testing.T) {
	g := NewGroup([]Object{rectAt(0, 0, 1, 1)})
	outsider := rectAt(9, 9, 1, 1)

	err := g.RealizeTransform(outsider)
	if !errors.Is(err, ErrNotMember) {
		t.Errorf("RealizeTransform(outsider) error = %v, want ErrNotMember", err)
	}
}

func TestRealizeThenRestoreIsANoOp(t *testing.T) {
	a := rectAt(10, 20, 30, 40)
	b := rectAt(100, 50, 20, 10)
	g := NewGroup([]Object{a, b})
	saved := b.Transform()

	if err := g.RealizeTransform(b); err != nil {
		t.Fatalf("RealizeTransform() error = %v", err)
	}
	b.SetTransform(saved)

	if got := b.Transform(); got != saved {
		t.Errorf("round-trip transform = %+v, want %+v", got, saved)
	}
}

func TestDissolveRealizesAndDetaches(t *testing.T) {
	a := rectAt(10, 20, 30, 40)
	b := rectAt(100, 50, 20, 10)
	g := NewGroup([]Object{a, b})

	released := g.Dissolve()
	if len(released) != 2 {
		t.Fatalf("Dissolve released %d objects, want 2", len(released))
	}
	if len(g.Members()) != 0 {
		t.Errorf("group still has %d members after Dissolve", len(g.Members()))
	}

	// An untouched group's transform is its members' bounding box with unit
	// scale and no rotation, so dissolving restores the original absolutes.
	at := a.Transform()
	if !almostEqual(at.Left, 10) || !almostEqual(at.Top, 20) {
		t.Errorf("member a absolute origin = (%v, %v), want (10, 20)", at.Left, at.Top)
	}
	bt := b.Transform()
	if !almostEqual(bt.Left, 100) || !almostEqual(bt.Top, 50) {
		t.Errorf("member b absolute origin = (%v, %v), want (100, 50)", bt.Left, bt.Top)
	}
}
