// Package scene defines the contract the editor consumes from canvas
// objects, plus a reference in-memory implementation used by the console
// and tests. Rendering, hit-testing and full transform math belong to the
// external canvas library; this package only models the state the undo
// engine needs to capture and restore.
package scene

import "errors"

// ErrNotMember is returned when a group operation targets an object the
// group does not contain.
var ErrNotMember = errors.New("object is not a member of the group")

// Kind distinguishes the three object variants the editor handles.
type Kind uint8

const (
	KindShape Kind = iota // a single drawable primitive
	KindText              // editable text
	KindGroup             // an aggregate selection of several objects
)

// String returns the kind tag used in state maps and logs.
func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindText:
		return "text"
	case KindGroup:
		return "group"
	}
	return "unknown"
}

// Transform holds the seven geometry fields every canvas object carries.
// Angle is in degrees; Left/Top locate the object's origin in its parent's
// coordinate space (the document for free objects, the group for members).
type Transform struct {
	Angle  float64
	Left   float64
	Top    float64
	Width  float64
	Height float64
	ScaleX float64
	ScaleY float64
}

// Object is what the editor needs from any canvas object.
type Object interface {
	Kind() Kind
	Transform() Transform
	SetTransform(Transform)
	// State returns a full shallow copy of the object's properties as a
	// fresh map. Mutating the map never affects the object.
	State() map[string]any
}

// TextObject is an Object holding editable text. Its editing-mode flag
// mirrors whether the host GUI currently shows the text cursor in it.
type TextObject interface {
	Object
	Content() string
	SetContent(string)
	EditingMode() bool
	SetEditingMode(bool)
}

// GroupObject is an aggregate selection. Member transforms are relative to
// the group; RealizeTransform bakes the group transform into one member's
// own fields so its coordinates become absolute. It errors only when the
// member does not belong to the group.
type GroupObject interface {
	Object
	Members() []Object
	RealizeTransform(member Object) error
}
