package scene

// Shape is the reference implementation of a drawable primitive: rectangle,
// ellipse, line and friends. The primitive tag only matters to the external
// renderer; the editor treats every shape the same way.
type Shape struct {
	primitive string
	fill      string
	opacity   float64
	transform Transform
}

// NewShape creates a shape. Zero scale factors are normalized to 1 so a
// literal Transform{Left: ..., Width: ...} behaves as expected.
func NewShape(primitive, fill string, t Transform) *Shape {
	return &Shape{
		primitive: primitive,
		fill:      fill,
		opacity:   1.0,
		transform: normalizeScale(t),
	}
}

func normalizeScale(t Transform) Transform {
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return t
}

// Kind implements Object.
func (s *Shape) Kind() Kind { return KindShape }

// Transform implements Object.
func (s *Shape) Transform() Transform { return s.transform }

// SetTransform implements Object.
func (s *Shape) SetTransform(t Transform) { s.transform = t }

// Primitive returns the renderer tag ("rect", "ellipse", ...).
func (s *Shape) Primitive() string { return s.primitive }

// Fill returns the fill color.
func (s *Shape) Fill() string { return s.fill }

// SetFill sets the fill color.
func (s *Shape) SetFill(fill string) { s.fill = fill }

// Opacity returns the shape opacity in [0, 1].
func (s *Shape) Opacity() float64 { return s.opacity }

// SetOpacity sets the shape opacity.
func (s *Shape) SetOpacity(o float64) { s.opacity = o }

// State implements Object.
func (s *Shape) State() map[string]any {
	state := map[string]any{
		PropKind:      KindShape.String(),
		PropPrimitive: s.primitive,
		PropFill:      s.fill,
		PropOpacity:   s.opacity,
	}
	return transformState(state, s.transform)
}
