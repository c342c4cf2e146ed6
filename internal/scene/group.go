package scene

import "math"

// Group is the reference aggregate selection. It is built over objects whose
// transforms are absolute; on entry each member's position is rebased to be
// relative to the group's bounding box, and RealizeTransform converts it
// back. The reference model composes translation and scale arithmetically
// and adds angles; rotating member offsets through the group angle is full
// matrix math and belongs to the external canvas library.
type Group struct {
	members   []Object
	transform Transform
}

// NewGroup builds a group over members, whose transforms must be absolute.
// The group's own transform becomes the members' bounding box; member
// positions become group-relative.
func NewGroup(members []Object) *Group {
	g := &Group{
		members:   make([]Object, len(members)),
		transform: boundingBox(members),
	}
	copy(g.members, members)
	for _, member := range g.members {
		t := member.Transform()
		t.Left -= g.transform.Left
		t.Top -= g.transform.Top
		member.SetTransform(t)
	}
	return g
}

// boundingBox computes the axis-aligned box around every member's scaled
// extent. An empty member list yields a zero transform with unit scale.
func boundingBox(members []Object) Transform {
	box := Transform{ScaleX: 1, ScaleY: 1}
	if len(members) == 0 {
		return box
	}
	left, top := math.Inf(1), math.Inf(1)
	right, bottom := math.Inf(-1), math.Inf(-1)
	for _, member := range members {
		t := member.Transform()
		left = math.Min(left, t.Left)
		top = math.Min(top, t.Top)
		right = math.Max(right, t.Left+t.Width*t.ScaleX)
		bottom = math.Max(bottom, t.Top+t.Height*t.ScaleY)
	}
	box.Left = left
	box.Top = top
	box.Width = right - left
	box.Height = bottom - top
	return box
}

// Kind implements Object.
func (g *Group) Kind() Kind { return KindGroup }

// Transform implements Object.
func (g *Group) Transform() Transform { return g.transform }

// SetTransform implements Object. Members stay group-relative, so moving or
// scaling the group moves every member with it.
func (g *Group) SetTransform(t Transform) { g.transform = t }

// Members implements GroupObject. The returned slice is the group's own;
// callers must not reorder it.
func (g *Group) Members() []Object { return g.members }

// RealizeTransform implements GroupObject: it bakes the group transform
// into member's own fields so its coordinates become absolute. The member
// stays in the group; callers that only need a transient absolute snapshot
// restore the previous transform afterwards.
func (g *Group) RealizeTransform(member Object) error {
	if !g.contains(member) {
		return ErrNotMember
	}
	t := member.Transform()
	t.Left = g.transform.Left + t.Left*g.transform.ScaleX
	t.Top = g.transform.Top + t.Top*g.transform.ScaleY
	t.ScaleX *= g.transform.ScaleX
	t.ScaleY *= g.transform.ScaleY
	t.Angle += g.transform.Angle
	member.SetTransform(t)
	return nil
}

// Dissolve realizes every member and detaches them from the group. After it
// returns the group is empty and the members carry absolute transforms.
func (g *Group) Dissolve() []Object {
	released := g.members
	for _, member := range released {
		g.RealizeTransform(member) // member is known to belong
	}
	g.members = nil
	return released
}

func (g *Group) contains(member Object) bool {
	for _, m := range g.members {
		if m == member {
			return true
		}
	}
	return false
}

// State implements Object. A group carries no properties beyond its kind
// tag and bounding-box transform; richer state lives on the members.
func (g *Group) State() map[string]any {
	state := map[string]any{
		PropKind: KindGroup.String(),
	}
	return transformState(state, g.transform)
}
