package scene

import "testing"

func TestStateCarriesTransformAndKind(t *testing.T) {
	s := NewShape("ellipse", "#ff0000", Transform{Angle: 30, Left: 1, Top: 2, Width: 3, Height: 4})
	state := s.State()

	if state[PropKind] != "shape" || state[PropPrimitive] != "ellipse" {
		t.Errorf("kind/primitive = %v/%v, want shape/ellipse", state[PropKind], state[PropPrimitive])
	}
	got, ok := TransformFromState(state)
	if !ok {
		t.Fatal("TransformFromState failed on a freshly captured state")
	}
	if got != s.Transform() {
		t.Errorf("decoded transform = %+v, want %+v", got, s.Transform())
	}
}

func TestStateIsAFreshCopy(t *testing.T) {
	s := rectAt(1, 2, 3, 4)
	state := s.State()
	state[PropLeft] = 999.0

	if got := s.Transform().Left; got != 1 {
		t.Errorf("mutating the state map changed the object: Left = %v, want 1", got)
	}
}

func TestTransformFromStateMissingKey(t *testing.T) {
	state := rectAt(1, 2, 3, 4).State()
	delete(state, PropScaleY)

	if _, ok := TransformFromState(state); ok {
		t.Error("TransformFromState succeeded with a geometry key missing")
	}
}

func TestTransformFromStateWrongType(t *testing.T) {
	state := rectAt(1, 2, 3, 4).State()
	state[PropAngle] = "45"

	if _, ok := TransformFromState(state); ok {
		t.Error("TransformFromState succeeded with a non-float value")
	}
}

func TestApplyStateRestoresTextContentAndTransform(t *testing.T) {
	txt := NewText("before", 10, 20, 16)
	txt.SetEditingMode(true)
	state := txt.State()

	txt.SetContent("after, much longer than before")
	txt.SetTransform(Transform{Left: 99, Top: 99, ScaleX: 1, ScaleY: 1})

	if !ApplyState(txt, state) {
		t.Fatal("ApplyState failed")
	}
	if txt.Content() != "before" {
		t.Errorf("Content = %q, want %q", txt.Content(), "before")
	}
	if !txt.EditingMode() {
		t.Error("editing flag not restored from state")
	}
	// The captured transform wins over the width SetContent re-measured.
	decoded, _ := TransformFromState(state)
	if txt.Transform() != decoded {
		t.Errorf("transform = %+v, want %+v", txt.Transform(), decoded)
	}
}

func TestApplyStateRejectsIncompleteState(t *testing.T) {
	obj := rectAt(1, 2, 3, 4)
	if ApplyState(obj, map[string]any{PropLeft: 5.0}) {
		t.Error("ApplyState succeeded on a state without full geometry")
	}
}
