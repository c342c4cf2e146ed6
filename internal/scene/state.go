package scene

import "github.com/tovenaar/easel/internal/utils"

// Keys used in object state maps. External implementations must use the
// same keys so snapshots stay portable across object sources.
const (
	PropKind      = "kind"
	PropPrimitive = "primitive"
	PropAngle     = "angle"
	PropLeft      = "left"
	PropTop       = "top"
	PropWidth     = "width"
	PropHeight    = "height"
	PropScaleX    = "scaleX"
	PropScaleY    = "scaleY"
	PropFill      = "fill"
	PropOpacity   = "opacity"
	PropText      = "text"
	PropFontSize  = "fontSize"
	PropEditing   = "editing"
)

// transformState writes t's fields into state and returns state.
func transformState(state map[string]any, t Transform) map[string]any {
	return utils.Extend(state, map[string]any{
		PropAngle:  t.Angle,
		PropLeft:   t.Left,
		PropTop:    t.Top,
		PropWidth:  t.Width,
		PropHeight: t.Height,
		PropScaleX: t.ScaleX,
		PropScaleY: t.ScaleY,
	})
}

// TransformFromState decodes the seven geometry keys from a state map.
// The second return is false if any key is absent or not a float64.
func TransformFromState(state map[string]any) (Transform, bool) {
	var t Transform
	fields := []struct {
		key string
		dst *float64
	}{
		{PropAngle, &t.Angle},
		{PropLeft, &t.Left},
		{PropTop, &t.Top},
		{PropWidth, &t.Width},
		{PropHeight, &t.Height},
		{PropScaleX, &t.ScaleX},
		{PropScaleY, &t.ScaleY},
	}
	for _, f := range fields {
		v, ok := utils.Pick(state, f.key)
		if !ok {
			return Transform{}, false
		}
		n, ok := v.(float64)
		if !ok {
			return Transform{}, false
		}
		*f.dst = n
	}
	return t, true
}

// ApplyState restores a previously captured state map onto obj. Text
// content is applied before the transform so the restored width/height win
// over any auto-measured size.
func ApplyState(obj Object, state map[string]any) bool {
	t, ok := TransformFromState(state)
	if !ok {
		return false
	}
	if txt, isText := obj.(TextObject); isText {
		if v, found := utils.Pick(state, PropText); found {
			if s, isStr := v.(string); isStr {
				txt.SetContent(s)
			}
		}
		if v, found := utils.Pick(state, PropEditing); found {
			if b, isBool := v.(bool); isBool {
				txt.SetEditingMode(b)
			}
		}
	}
	obj.SetTransform(t)
	return true
}
