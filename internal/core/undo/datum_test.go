package undo

import (
	"testing"

	"github.com/tovenaar/easel/internal/scene"
	"github.com/tovenaar/easel/internal/utils"
)

// makerWith returns a Maker that stamps objects through the given allocator
// and records them with the given aggregate flag.
func makerWith(stamper *utils.Stamper, forAggregate bool) Maker {
	return func(obj scene.Object) Datum {
		return MakeSelectionUndoDatum(stamper.Stamp(obj), obj, forAggregate)
	}
}

func TestMakeSelectionUndoDatumForAggregate(t *testing.T) {
	obj := scene.NewShape("rect", "#000", scene.Transform{
		Angle: 45, Left: 10, Top: 20, Width: 30, Height: 40, ScaleX: 2, ScaleY: 3,
	})

	d := MakeSelectionUndoDatum(7, obj, true)
	got, ok := d.(GroupDatum)
	if !ok {
		t.Fatalf("datum is %T, want GroupDatum", d)
	}
	want := GroupDatum{ID: 7, Angle: 45, Left: 10, Top: 20, Width: 30, Height: 40}
	if got != want {
		t.Errorf("datum = %+v, want %+v", got, want)
	}
}

func TestMakeSelectionUndoDatumFullCopy(t *testing.T) {
	obj := scene.NewShape("rect", "#123456", scene.Transform{Left: 1, Top: 2, Width: 3, Height: 4})

	d := MakeSelectionUndoDatum(3, obj, false)
	od, ok := d.(ObjectDatum)
	if !ok {
		t.Fatalf("datum is %T, want ObjectDatum", d)
	}
	if od.ID != 3 {
		t.Errorf("ID = %d, want 3", od.ID)
	}
	if od.Props[scene.PropFill] != "#123456" {
		t.Errorf("fill = %v, want #123456", od.Props[scene.PropFill])
	}
	if _, ok := scene.TransformFromState(od.Props); !ok {
		t.Error("props do not carry a full transform")
	}
}

func TestTextDatumNeverCapturesOpenEditingMode(t *testing.T) {
	txt := scene.NewText("hello", 0, 0, 16)

	// Ends on true so the live-flag check below observes the open session.
	for _, live := range []bool{false, true} {
		txt.SetEditingMode(live)
		d := MakeSelectionUndoDatum(1, txt, false)
		od := d.(ObjectDatum)
		if od.Props[scene.PropEditing] != false {
			t.Errorf("editing in datum = %v with live flag %v, want false", od.Props[scene.PropEditing], live)
		}
	}
	// The live object keeps its flag; only the copy is forced off.
	if !txt.EditingMode() {
		t.Error("capturing must not clear the live editing flag")
	}
}

func TestMakeSelectionUndoDataSingleObject(t *testing.T) {
	stamper := utils.NewStamper()
	obj := scene.NewShape("rect", "#000", scene.Transform{Left: 5, Top: 6, Width: 7, Height: 8})

	data, err := MakeSelectionUndoData(obj, makerWith(stamper, false))
	if err != nil {
		t.Fatalf("MakeSelectionUndoData() error = %v", err)
	}
	if len(data) != 1 {
		t.Fatalf("got %d data, want 1", len(data))
	}
	if data[0].ObjectID() != 1 {
		t.Errorf("datum id = %d, want 1", data[0].ObjectID())
	}
}

func TestMakeSelectionUndoDataGroupCapturesAbsolutes(t *testing.T) {
	stamper := utils.NewStamper()
	a := scene.NewShape("rect", "#000", scene.Transform{Left: 10, Top: 20, Width: 30, Height: 40})
	b := scene.NewShape("rect", "#000", scene.Transform{Left: 100, Top: 50, Width: 20, Height: 10})
	c := scene.NewShape("rect", "#000", scene.Transform{Left: 60, Top: 30, Width: 10, Height: 10})
	idA, idB, idC := stamper.Stamp(a), stamper.Stamp(b), stamper.Stamp(c)

	group := scene.NewGroup([]scene.Object{a, b, c})
	relA, relB, relC := a.Transform(), b.Transform(), c.Transform()

	data, err := MakeSelectionUndoData(group, makerWith(stamper, true))
	if err != nil {
		t.Fatalf("MakeSelectionUndoData() error = %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("got %d data, want 3 (one per member)", len(data))
	}

	// Records map 1:1 to members in member order and hold absolute
	// coordinates, not the group-relative ones the live members carry.
	wantIDs := []int64{idA, idB, idC}
	wantAbs := []GroupDatum{
		{ID: idA, Left: 10, Top: 20, Width: 30, Height: 40},
		{ID: idB, Left: 100, Top: 50, Width: 20, Height: 10},
		{ID: idC, Left: 60, Top: 30, Width: 10, Height: 10},
	}
	for i, d := range data {
		if d.ObjectID() != wantIDs[i] {
			t.Errorf("data[%d] id = %d, want %d", i, d.ObjectID(), wantIDs[i])
		}
		if got := d.(GroupDatum); got != wantAbs[i] {
			t.Errorf("data[%d] = %+v, want %+v", i, got, wantAbs[i])
		}
	}

	// Bake-then-restore is a no-op on the live scene.
	if a.Transform() != relA || b.Transform() != relB || c.Transform() != relC {
		t.Error("capture disturbed a live member transform")
	}
}

func TestCacheRoundTripAndOverwrite(t *testing.T) {
	cache := NewCache()
	first := []Datum{GroupDatum{ID: 1}}
	second := []Datum{GroupDatum{ID: 2}}

	cache.SetDimension(first)
	if got := cache.Dimension(); len(got) != 1 || got[0].ObjectID() != 1 {
		t.Errorf("Dimension() = %v, want the first snapshot", got)
	}

	cache.SetDimension(second)
	if got := cache.Dimension(); got[0].ObjectID() != 2 {
		t.Error("second SetDimension did not overwrite the first")
	}

	if got := cache.TakeDimension(); got[0].ObjectID() != 2 {
		t.Error("TakeDimension returned the wrong snapshot")
	}
	if got := cache.Dimension(); got != nil {
		t.Errorf("cache not cleared after TakeDimension: %v", got)
	}
}
