package clipboard

import (
	"errors"
	"testing"

	"github.com/tovenaar/easel/internal/core/undo"
	"github.com/tovenaar/easel/internal/scene"
)

// fakeEditor backs the clipboard with a real scene and a plain selection
// slot, recording what AddPasted receives.
type fakeEditor struct {
	scene  *scene.Scene
	active scene.Object
	pasted []scene.Object
}

func newFakeEditor() *fakeEditor {
	return &fakeEditor{scene: scene.NewScene()}
}

func (f *fakeEditor) ActiveSelection() (scene.Object, bool) {
	return f.active, f.active != nil
}

func (f *fakeEditor) SnapshotMaker() undo.Maker {
	return func(obj scene.Object) undo.Datum {
		return undo.MakeSelectionUndoDatum(f.scene.ID(obj), obj, false)
	}
}

func (f *fakeEditor) AddPasted(objects []scene.Object) []int64 {
	f.pasted = objects
	ids := make([]int64, len(objects))
	for i, obj := range objects {
		ids[i] = f.scene.Add(obj)
	}
	return ids
}

func TestCopyWithoutSelection(t *testing.T) {
	m := NewManager(newFakeEditor(), false, 10)
	n, err := m.CopySelection()
	if n != 0 || err != nil {
		t.Errorf("CopySelection() = (%d, %v), want (0, nil)", n, err)
	}
}

func TestPasteEmptyClipboard(t *testing.T) {
	m := NewManager(newFakeEditor(), false, 10)
	if _, err := m.Paste(); !errors.Is(err, ErrEmptyClipboard) {
		t.Errorf("Paste() error = %v, want ErrEmptyClipboard", err)
	}
}

func TestCopyPasteShapeRoundTrip(t *testing.T) {
	ed := newFakeEditor()
	shape := scene.NewShape("ellipse", "#00ff00", scene.Transform{
		Angle: 30, Left: 100, Top: 200, Width: 40, Height: 20, ScaleX: 2, ScaleY: 3,
	})
	shape.SetOpacity(0.5)
	ed.scene.Add(shape)
	ed.active = shape

	m := NewManager(ed, false, 10)
	n, err := m.CopySelection()
	if err != nil || n != 1 {
		t.Fatalf("CopySelection() = (%d, %v), want (1, nil)", n, err)
	}

	ids, err := m.Paste()
	if err != nil {
		t.Fatalf("Paste() error = %v", err)
	}
	if len(ids) != 1 || len(ed.pasted) != 1 {
		t.Fatalf("pasted %d objects, want 1", len(ids))
	}

	got, ok := ed.pasted[0].(*scene.Shape)
	if !ok {
		t.Fatalf("pasted object is %T, want *scene.Shape", ed.pasted[0])
	}
	if got == shape {
		t.Fatal("paste returned the original object, want a fresh copy")
	}
	if got.Primitive() != "ellipse" || got.Fill() != "#00ff00" || got.Opacity() != 0.5 {
		t.Errorf("pasted shape properties = %s/%s/%v, want ellipse/#00ff00/0.5",
			got.Primitive(), got.Fill(), got.Opacity())
	}
	tr := got.Transform()
	if tr.Left != 110 || tr.Top != 210 {
		t.Errorf("pasted origin = (%v, %v), want the original offset by 10", tr.Left, tr.Top)
	}
	if tr.Angle != 30 || tr.Width != 40 || tr.Height != 20 || tr.ScaleX != 2 || tr.ScaleY != 3 {
		t.Errorf("pasted transform = %+v, want the original's angle/size/scale", tr)
	}
}

func TestCopyPasteTextKeepsContentAndSize(t *testing.T) {
	ed := newFakeEditor()
	txt := scene.NewText("hello", 10, 20, 24)
	txt.SetEditingMode(true)
	ed.scene.Add(txt)
	ed.active = txt

	m := NewManager(ed, false, 5)
	if _, err := m.CopySelection(); err != nil {
		t.Fatalf("CopySelection() error = %v", err)
	}
	if _, err := m.Paste(); err != nil {
		t.Fatalf("Paste() error = %v", err)
	}

	got, ok := ed.pasted[0].(*scene.Text)
	if !ok {
		t.Fatalf("pasted object is %T, want *scene.Text", ed.pasted[0])
	}
	if got.Content() != "hello" {
		t.Errorf("pasted content = %q, want %q", got.Content(), "hello")
	}
	if got.EditingMode() {
		t.Error("pasted text is in editing mode; the captured flag must be off")
	}
	if got.Transform() == txt.Transform() {
		t.Error("pasted text not offset from the original")
	}
}

func TestCopyGroupCapturesAbsoluteCoordinates(t *testing.T) {
	ed := newFakeEditor()
	a := scene.NewShape("rect", "#000", scene.Transform{Left: 10, Top: 20, Width: 30, Height: 40})
	b := scene.NewShape("rect", "#000", scene.Transform{Left: 100, Top: 50, Width: 20, Height: 10})
	ed.scene.Add(a)
	ed.scene.Add(b)
	ed.active = scene.NewGroup([]scene.Object{a, b})

	m := NewManager(ed, false, 0) // Zero offset: paste in place
	n, err := m.CopySelection()
	if err != nil || n != 2 {
		t.Fatalf("CopySelection() = (%d, %v), want (2, nil)", n, err)
	}
	if _, err := m.Paste(); err != nil {
		t.Fatalf("Paste() error = %v", err)
	}

	// Pasted coordinates are the members' absolutes, not group-relative.
	first := ed.pasted[0].Transform()
	second := ed.pasted[1].Transform()
	if first.Left != 10 || first.Top != 20 {
		t.Errorf("first pasted origin = (%v, %v), want (10, 20)", first.Left, first.Top)
	}
	if second.Left != 100 || second.Top != 50 {
		t.Errorf("second pasted origin = (%v, %v), want (100, 50)", second.Left, second.Top)
	}

	// The live members are still group-relative; copy must not disturb them.
	if a.Transform().Left != 0 || b.Transform().Left != 90 {
		t.Error("copy disturbed the live group members")
	}
}

func TestPasteRejectsForeignPayload(t *testing.T) {
	ed := newFakeEditor()
	m := NewManager(ed, false, 10)
	m.register = `{"app":"other","objects":[{"kind":"shape"}]}`

	if _, err := m.Paste(); !errors.Is(err, ErrEmptyClipboard) {
		t.Errorf("Paste(foreign) error = %v, want ErrEmptyClipboard", err)
	}
}
