// Package clipboard copies and pastes scene objects through a JSON payload,
// either in an internal register or via the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	sysclip "github.com/atotto/clipboard"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/tovenaar/easel/internal/core/undo"
	"github.com/tovenaar/easel/internal/logger"
	"github.com/tovenaar/easel/internal/scene"
)

// payloadApp tags payloads so paste can reject foreign clipboard content.
const payloadApp = "easel"

// ErrEmptyClipboard is returned by Paste when no usable payload exists.
var ErrEmptyClipboard = errors.New("clipboard is empty")

// EditorInterface defines methods needed from the editor.
type EditorInterface interface {
	ActiveSelection() (scene.Object, bool)
	// SnapshotMaker returns a maker producing full-state records; the
	// clipboard needs complete objects, not aggregate geometry.
	SnapshotMaker() undo.Maker
	// AddPasted registers the objects as one undoable add change and
	// returns their ids.
	AddPasted(objects []scene.Object) []int64
}

// Manager handles clipboard operations.
type Manager struct {
	editor          EditorInterface
	register        string // Internal fallback register
	systemClipboard bool
	pasteOffset     float64
}

// NewManager creates a clipboard manager. With systemClipboard set, copy
// and paste go through the OS clipboard and fall back to the internal
// register when that fails.
func NewManager(editor EditorInterface, systemClipboard bool, pasteOffset float64) *Manager {
	return &Manager{
		editor:          editor,
		systemClipboard: systemClipboard,
		pasteOffset:     pasteOffset,
	}
}

// CopySelection serializes the active selection to the clipboard payload.
// Group members are captured through the undo helper, so the payload holds
// absolute coordinates regardless of grouping. Returns the number of
// objects copied; zero with no error means no selection.
func (m *Manager) CopySelection() (int, error) {
	active, ok := m.editor.ActiveSelection()
	if !ok {
		return 0, nil
	}

	data, err := undo.MakeSelectionUndoData(active, m.editor.SnapshotMaker())
	if err != nil {
		return 0, fmt.Errorf("capture selection for copy: %w", err)
	}

	payload := fmt.Sprintf(`{"app":%q,"objects":[]}`, payloadApp)
	for _, d := range data {
		od, ok := d.(undo.ObjectDatum)
		if !ok {
			return 0, fmt.Errorf("copy needs full-state records, got %T", d)
		}
		payload, err = sjson.Set(payload, "objects.-1", od.Props)
		if err != nil {
			return 0, fmt.Errorf("encode clipboard payload: %w", err)
		}
	}

	m.write(payload)
	logger.DebugTagf("clipboard", "Clipboard Manager: Copied %d object(s)", len(data))
	return len(data), nil
}

// Paste decodes the clipboard payload, builds fresh objects offset by the
// configured paste offset, and adds them to the scene as one undoable
// change. It returns the new object ids.
func (m *Manager) Paste() ([]int64, error) {
	payload := m.read()
	if payload == "" || !gjson.Valid(payload) {
		return nil, ErrEmptyClipboard
	}
	if gjson.Get(payload, "app").String() != payloadApp {
		return nil, ErrEmptyClipboard
	}
	entries := gjson.Get(payload, "objects").Array()
	if len(entries) == 0 {
		return nil, ErrEmptyClipboard
	}

	objects := make([]scene.Object, 0, len(entries))
	for _, entry := range entries {
		obj, err := m.buildObject(entry)
		if err != nil {
			return nil, fmt.Errorf("paste: %w", err)
		}
		objects = append(objects, obj)
	}

	ids := m.editor.AddPasted(objects)
	logger.DebugTagf("clipboard", "Clipboard Manager: Pasted %d object(s) as %v", len(ids), ids)
	return ids, nil
}

// buildObject reconstructs one reference object from its payload entry,
// offset so a paste never lands exactly on the original.
func (m *Manager) buildObject(entry gjson.Result) (scene.Object, error) {
	t := scene.Transform{
		Angle:  entry.Get(scene.PropAngle).Float(),
		Left:   entry.Get(scene.PropLeft).Float() + m.pasteOffset,
		Top:    entry.Get(scene.PropTop).Float() + m.pasteOffset,
		Width:  entry.Get(scene.PropWidth).Float(),
		Height: entry.Get(scene.PropHeight).Float(),
		ScaleX: entry.Get(scene.PropScaleX).Float(),
		ScaleY: entry.Get(scene.PropScaleY).Float(),
	}

	switch kind := entry.Get(scene.PropKind).String(); kind {
	case scene.KindShape.String():
		shape := scene.NewShape(entry.Get(scene.PropPrimitive).String(), entry.Get(scene.PropFill).String(), t)
		if opacity := entry.Get(scene.PropOpacity); opacity.Exists() {
			shape.SetOpacity(opacity.Float())
		}
		return shape, nil
	case scene.KindText.String():
		txt := scene.NewText(entry.Get(scene.PropText).String(), t.Left, t.Top, entry.Get(scene.PropFontSize).Float())
		txt.SetTransform(t) // Captured size wins over the measured one
		return txt, nil
	default:
		return nil, fmt.Errorf("payload entry has unsupported kind %q", kind)
	}
}

// write stores the payload, preferring the system clipboard when enabled.
func (m *Manager) write(payload string) {
	m.register = payload
	if !m.systemClipboard {
		return
	}
	if err := sysclip.WriteAll(payload); err != nil {
		logger.WarnTagf("clipboard", "Clipboard Manager: system clipboard write failed, using register: %v", err)
	}
}

// read fetches the payload, falling back to the register when the system
// clipboard is unavailable or holds foreign content.
func (m *Manager) read() string {
	if m.systemClipboard {
		payload, err := sysclip.ReadAll()
		if err != nil {
			logger.WarnTagf("clipboard", "Clipboard Manager: system clipboard read failed, using register: %v", err)
		} else if gjson.Valid(payload) && gjson.Get(payload, "app").String() == payloadApp {
			return payload
		}
	}
	return m.register
}
