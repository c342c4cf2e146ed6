package scene

import "testing"

func TestTextMeasuresFromContent(t *testing.T) {
	txt := NewText("hello", 0, 0, 10)

	tr := txt.Transform()
	if !almostEqual(tr.Width, 5*10*glyphAspect) {
		t.Errorf("Width = %v, want %v", tr.Width, 5*10*glyphAspect)
	}
	if !almostEqual(tr.Height, 1*10*lineHeight) {
		t.Errorf("Height = %v, want %v", tr.Height, 10*lineHeight)
	}
}

func TestTextMultiLineUsesWidestLine(t *testing.T) {
	txt := NewText("ab\nwidest\ncd", 0, 0, 10)

	tr := txt.Transform()
	if !almostEqual(tr.Width, 6*10*glyphAspect) {
		t.Errorf("Width = %v, want width of %q", tr.Width, "widest")
	}
	if !almostEqual(tr.Height, 3*10*lineHeight) {
		t.Errorf("Height = %v, want three lines", tr.Height)
	}
}

func TestTextWideGraphemes(t *testing.T) {
	// CJK glyphs occupy two cells; the measured width must reflect that.
	narrow := NewText("ab", 0, 0, 10)
	wide := NewText("你好", 0, 0, 10)

	if !almostEqual(wide.Transform().Width, 2*narrow.Transform().Width) {
		t.Errorf("wide Width = %v, want twice %v", wide.Transform().Width, narrow.Transform().Width)
	}
}

func TestSetContentReMeasures(t *testing.T) {
	txt := NewText("ab", 0, 0, 10)
	before := txt.Transform().Width

	txt.SetContent("abcd")
	if got := txt.Transform().Width; !almostEqual(got, 2*before) {
		t.Errorf("Width after SetContent = %v, want %v", got, 2*before)
	}
}

func TestSetFontSizeIgnoresNonPositive(t *testing.T) {
	txt := NewText("ab", 0, 0, 10)
	txt.SetFontSize(0)
	if txt.FontSize() != 10 {
		t.Errorf("FontSize = %v, want 10 after rejected update", txt.FontSize())
	}
	txt.SetFontSize(20)
	if txt.FontSize() != 20 {
		t.Errorf("FontSize = %v, want 20", txt.FontSize())
	}
}
