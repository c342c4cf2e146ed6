package scene

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Reference text metrics: a monospace advance of 0.6em per terminal cell
// and fabric-style 1.16 line height. Real glyph metrics belong to the
// external renderer; these only keep auto-sizing deterministic for tests
// and the console.
const (
	glyphAspect = 0.6
	lineHeight  = 1.16
)

// Text is the reference implementation of an editable text object. Width
// and height derive from the content (grapheme-cluster cell width times the
// font size) and are recomputed whenever content or font size change.
type Text struct {
	content   string
	fontSize  float64
	editing   bool
	transform Transform
}

// NewText creates a text object at the given position. A fontSize <= 0
// falls back to 16.
func NewText(content string, left, top, fontSize float64) *Text {
	if fontSize <= 0 {
		fontSize = 16
	}
	t := &Text{
		content:  content,
		fontSize: fontSize,
		transform: Transform{
			Left:   left,
			Top:    top,
			ScaleX: 1,
			ScaleY: 1,
		},
	}
	t.measure()
	return t
}

// measure recomputes width/height from the content. Multi-line content is
// as wide as its widest line.
func (t *Text) measure() {
	lines := strings.Split(t.content, "\n")
	widest := 0
	for _, line := range lines {
		if w := uniseg.StringWidth(line); w > widest {
			widest = w
		}
	}
	t.transform.Width = float64(widest) * t.fontSize * glyphAspect
	t.transform.Height = float64(len(lines)) * t.fontSize * lineHeight
}

// Kind implements Object.
func (t *Text) Kind() Kind { return KindText }

// Transform implements Object.
func (t *Text) Transform() Transform { return t.transform }

// SetTransform implements Object.
func (t *Text) SetTransform(tr Transform) { t.transform = tr }

// Content implements TextObject.
func (t *Text) Content() string { return t.content }

// SetContent implements TextObject and re-measures the object.
func (t *Text) SetContent(content string) {
	t.content = content
	t.measure()
}

// FontSize returns the font size.
func (t *Text) FontSize() float64 { return t.fontSize }

// SetFontSize sets the font size and re-measures the object.
func (t *Text) SetFontSize(size float64) {
	if size <= 0 {
		return
	}
	t.fontSize = size
	t.measure()
}

// EditingMode implements TextObject.
func (t *Text) EditingMode() bool { return t.editing }

// SetEditingMode implements TextObject.
func (t *Text) SetEditingMode(editing bool) { t.editing = editing }

// State implements Object.
func (t *Text) State() map[string]any {
	state := map[string]any{
		PropKind:     KindText.String(),
		PropText:     t.content,
		PropFontSize: t.fontSize,
		PropEditing:  t.editing,
	}
	return transformState(state, t.transform)
}
