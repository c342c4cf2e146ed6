// Package undo builds the snapshot records a geometry-changing operation
// stores before mutating selected objects, plus the single-slot cache a
// resize gesture parks its "before" snapshot in until commit.
package undo

import (
	"fmt"

	"github.com/tovenaar/easel/internal/scene"
)

// Datum is one snapshot record, enough to revert a single object's change.
// It is a sealed two-variant union: GroupDatum for captures made through an
// aggregate selection, ObjectDatum for direct captures.
type Datum interface {
	// ObjectID identifies the object the record was captured from.
	ObjectID() int64
	sealedDatum()
}

// GroupDatum is the record captured through an aggregate selection: the
// five geometry fields plus identifier. Objects addressed through an
// aggregate are not addressed by richer state, and scales are deliberately
// absent so replay leaves them untouched.
type GroupDatum struct {
	ID     int64
	Angle  float64
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

func (d GroupDatum) ObjectID() int64 { return d.ID }
func (d GroupDatum) sealedDatum()    {}

// ObjectDatum is the record for a directly captured object: a full shallow
// copy of its properties plus identifier. For text objects the editing key
// is always false, so undo never resurrects an open text-editing UI state.
type ObjectDatum struct {
	ID    int64
	Props map[string]any
}

func (d ObjectDatum) ObjectID() int64 { return d.ID }
func (d ObjectDatum) sealedDatum()    {}

// Maker turns one object into its snapshot record. The editor supplies it
// so the id allocation strategy stays out of this package.
type Maker func(obj scene.Object) Datum

// MakeSelectionUndoDatum builds one record for obj. forAggregate selects
// the five-field variant used for captures made through an aggregate
// selection; otherwise the record carries the object's full state.
func MakeSelectionUndoDatum(id int64, obj scene.Object, forAggregate bool) Datum {
	if forAggregate {
		t := obj.Transform()
		return GroupDatum{
			ID:     id,
			Angle:  t.Angle,
			Left:   t.Left,
			Top:    t.Top,
			Width:  t.Width,
			Height: t.Height,
		}
	}
	props := obj.State()
	if obj.Kind() == scene.KindText {
		props[scene.PropEditing] = false
	}
	return ObjectDatum{ID: id, Props: props}
}

// MakeSelectionUndoData captures a snapshot of obj for undo. A group is
// captured member by member: each member's transform is saved, the group
// transform is baked into it so the record holds absolute coordinates, the
// maker runs, and the saved transform is restored. Group-relative
// coordinates are meaningless for undo outside the group context, and the
// transient mutation leaves no observable change behind. A non-group input
// yields a one-element slice built directly by the maker.
func MakeSelectionUndoData(obj scene.Object, maker Maker) ([]Datum, error) {
	group, ok := obj.(scene.GroupObject)
	if !ok {
		return []Datum{maker(obj)}, nil
	}
	members := group.Members()
	data := make([]Datum, 0, len(members))
	for _, member := range members {
		saved := member.Transform()
		if err := group.RealizeTransform(member); err != nil {
			return nil, fmt.Errorf("realize transform for member: %w", err)
		}
		data = append(data, maker(member))
		member.SetTransform(saved)
	}
	return data, nil
}
