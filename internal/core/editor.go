// internal/core/editor.go
package core

import (
	"errors"
	"fmt"

	"github.com/tovenaar/easel/internal/config"
	"github.com/tovenaar/easel/internal/core/clipboard"
	"github.com/tovenaar/easel/internal/core/history"
	"github.com/tovenaar/easel/internal/core/selection"
	"github.com/tovenaar/easel/internal/core/undo"
	"github.com/tovenaar/easel/internal/event"
	"github.com/tovenaar/easel/internal/logger"
	"github.com/tovenaar/easel/internal/scene"
)

// Sentinel errors surfaced by editor operations.
var (
	ErrNoSelection        = errors.New("no active selection")
	ErrNotText            = errors.New("object is not a text object")
	ErrNoDimensionGesture = errors.New("no dimension change in progress")
)

// Editor wires the scene, selection, history, undo cache and clipboard
// into the operation surface a host GUI (or the console) drives. Every
// mutating operation snapshots the affected objects before and after the
// change and records a single reversible history entry.
type Editor struct {
	cfg          config.EditorConfig
	scene        *scene.Scene
	eventManager *event.Manager

	selectionMgr *selection.Manager
	historyMgr   *history.Manager
	clipboardMgr *clipboard.Manager
	undoCache    *undo.Cache
}

// NewEditor creates an editor over an empty scene.
func NewEditor(cfg config.EditorConfig) *Editor {
	e := &Editor{
		cfg:       cfg,
		scene:     scene.NewScene(),
		undoCache: undo.NewCache(),
	}
	e.selectionMgr = selection.NewManager(e)
	e.historyMgr = history.NewManager(e, cfg.MaxHistory)
	e.clipboardMgr = clipboard.NewManager(e, cfg.SystemClipboard, cfg.PasteOffset)
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager (may be nil).
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// Scene returns the object registry.
func (e *Editor) Scene() *scene.Scene { return e.scene }

// SelectionManager returns the selection manager.
func (e *Editor) SelectionManager() *selection.Manager { return e.selectionMgr }

// HistoryManager returns the undo/redo coordinator.
func (e *Editor) HistoryManager() *history.Manager { return e.historyMgr }

// ClipboardManager returns the object clipboard.
func (e *Editor) ClipboardManager() *clipboard.Manager { return e.clipboardMgr }

// UndoCache returns the dimension-gesture snapshot slot.
func (e *Editor) UndoCache() *undo.Cache { return e.undoCache }

// --- manager interfaces (history, selection, clipboard) ---

// ObjectByID resolves an id to its registered object.
func (e *Editor) ObjectByID(id int64) (scene.Object, bool) {
	return e.scene.Object(id)
}

// RestoreObject re-registers an object removed earlier. The scene's
// allocator remembers it, so it comes back under its original id.
func (e *Editor) RestoreObject(obj scene.Object) int64 {
	id := e.scene.Add(obj)
	e.dispatch(event.TypeObjectAdded, event.ObjectAddedData{ID: id, Kind: obj.Kind()})
	return id
}

// DetachObject removes an object without recording history, used by replay.
func (e *Editor) DetachObject(id int64) {
	e.selectionMgr.Drop(id)
	e.scene.Remove(id)
	e.dispatch(event.TypeObjectRemoved, event.ObjectRemovedData{ID: id})
}

// ActiveSelection returns the selected object, if any.
func (e *Editor) ActiveSelection() (scene.Object, bool) {
	return e.selectionMgr.Active()
}

// SnapshotMaker returns a maker producing full-state records keyed by the
// scene's ids.
func (e *Editor) SnapshotMaker() undo.Maker {
	return func(obj scene.Object) undo.Datum {
		return undo.MakeSelectionUndoDatum(e.scene.ID(obj), obj, false)
	}
}

// AddPasted registers pasted objects as one undoable add change.
func (e *Editor) AddPasted(objects []scene.Object) []int64 {
	ids := make([]int64, len(objects))
	after := make([]undo.Datum, len(objects))
	for i, obj := range objects {
		ids[i] = e.scene.Add(obj)
		after[i] = undo.MakeSelectionUndoDatum(ids[i], obj, false)
		e.dispatch(event.TypeObjectAdded, event.ObjectAddedData{ID: ids[i], Kind: obj.Kind()})
	}
	e.historyMgr.RecordChange(history.Change{
		Op:      history.AddOp,
		Label:   "paste",
		After:   after,
		Objects: objects,
		IDs:     ids,
	})
	return ids
}

// --- object lifecycle ---

// AddShape creates a shape and registers it as an undoable add.
func (e *Editor) AddShape(primitive, fill string, t scene.Transform) (int64, error) {
	if primitive == "" {
		return 0, fmt.Errorf("add shape: empty primitive")
	}
	obj := scene.NewShape(primitive, fill, t)
	return e.recordAdd(obj, "add "+primitive), nil
}

// AddText creates a text object and registers it as an undoable add. A
// fontSize <= 0 falls back to the configured default.
func (e *Editor) AddText(content string, left, top, fontSize float64) (int64, error) {
	if fontSize <= 0 {
		fontSize = e.cfg.DefaultFontSize
	}
	obj := scene.NewText(content, left, top, fontSize)
	return e.recordAdd(obj, "add text"), nil
}

func (e *Editor) recordAdd(obj scene.Object, label string) int64 {
	id := e.scene.Add(obj)
	e.historyMgr.RecordChange(history.Change{
		Op:      history.AddOp,
		Label:   label,
		After:   []undo.Datum{undo.MakeSelectionUndoDatum(id, obj, false)},
		Objects: []scene.Object{obj},
		IDs:     []int64{id},
	})
	e.dispatch(event.TypeObjectAdded, event.ObjectAddedData{ID: id, Kind: obj.Kind()})
	logger.DebugTagf("core", "Editor: %s -> id %d", label, id)
	return id
}

// RemoveObject removes an object as an undoable change. A selected object
// is dropped from the selection first.
func (e *Editor) RemoveObject(id int64) error {
	obj, ok := e.scene.Object(id)
	if !ok {
		return fmt.Errorf("remove %d: %w", id, scene.ErrUnknownObject)
	}
	e.selectionMgr.Drop(id)
	before := []undo.Datum{undo.MakeSelectionUndoDatum(id, obj, false)}
	e.scene.Remove(id)
	e.historyMgr.RecordChange(history.Change{
		Op:      history.RemoveOp,
		Label:   fmt.Sprintf("remove %d", id),
		Before:  before,
		Objects: []scene.Object{obj},
		IDs:     []int64{id},
	})
	e.dispatch(event.TypeObjectRemoved, event.ObjectRemovedData{ID: id})
	return nil
}

// --- selection-wide transform operations ---

// Translate moves the active selection by (dx, dy).
func (e *Editor) Translate(dx, dy float64) error {
	return e.transformSelection("move", func(t scene.Transform) scene.Transform {
		t.Left += dx
		t.Top += dy
		return t
	})
}

// Scale multiplies the active selection's scale factors.
func (e *Editor) Scale(sx, sy float64) error {
	if sx == 0 || sy == 0 {
		return fmt.Errorf("scale: zero factor")
	}
	return e.transformSelection("scale", func(t scene.Transform) scene.Transform {
		t.ScaleX *= sx
		t.ScaleY *= sy
		return t
	})
}

// Rotate adds deg to the active selection's angle.
func (e *Editor) Rotate(deg float64) error {
	return e.transformSelection("rotate", func(t scene.Transform) scene.Transform {
		t.Angle += deg
		return t
	})
}

// SetDimensions sets the active selection's width and height directly,
// recording a single undoable change. Hosts streaming a resize drag use
// the Begin/Update/Commit gesture instead.
func (e *Editor) SetDimensions(w, h float64) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("set dimensions: non-positive size %gx%g", w, h)
	}
	return e.transformSelection("resize", func(t scene.Transform) scene.Transform {
		t.Width = w
		t.Height = h
		return t
	})
}

// transformSelection runs the snapshot-mutate-snapshot-record cycle for a
// geometry change on the active selection.
func (e *Editor) transformSelection(label string, mutate func(scene.Transform) scene.Transform) error {
	active, ok := e.selectionMgr.Active()
	if !ok {
		return ErrNoSelection
	}
	before, err := e.snapshotSelection(active)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	active.SetTransform(mutate(active.Transform()))

	after, err := e.snapshotSelection(active)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	e.historyMgr.RecordChange(history.Change{
		Op:     history.TransformOp,
		Label:  label,
		Before: before,
		After:  after,
	})
	e.dispatch(event.TypeObjectModified, event.ObjectModifiedData{IDs: e.selectionMgr.SelectedIDs(), Op: label})
	return nil
}

// snapshotSelection captures the selection through the undo helper with
// full-state records, so replay restores every field a transform can
// touch, scale factors included. Group members are captured with the
// group transform baked in; undo dissolves the group first, so the
// absolute records land on free objects.
func (e *Editor) snapshotSelection(active scene.Object) ([]undo.Datum, error) {
	return undo.MakeSelectionUndoData(active, e.SnapshotMaker())
}

// --- text ---

// SetText changes a text object's content as an undoable change.
func (e *Editor) SetText(id int64, content string) error {
	obj, ok := e.scene.Object(id)
	if !ok {
		return fmt.Errorf("set text %d: %w", id, scene.ErrUnknownObject)
	}
	txt, ok := obj.(scene.TextObject)
	if !ok {
		return fmt.Errorf("set text %d: %w", id, ErrNotText)
	}

	before := []undo.Datum{undo.MakeSelectionUndoDatum(id, txt, false)}
	txt.SetContent(content)
	after := []undo.Datum{undo.MakeSelectionUndoDatum(id, txt, false)}

	e.historyMgr.RecordChange(history.Change{
		Op:     history.TextOp,
		Label:  "set text",
		Before: before,
		After:  after,
	})
	e.dispatch(event.TypeTextChanged, event.TextChangedData{ID: id, Content: content})
	return nil
}

// --- dimension gesture ---

// BeginDimensionChange snapshots the active selection into the undo cache.
// A second Begin overwrites the parked snapshot; the last write wins.
func (e *Editor) BeginDimensionChange() error {
	active, ok := e.selectionMgr.Active()
	if !ok {
		return ErrNoSelection
	}
	data, err := e.snapshotSelection(active)
	if err != nil {
		return fmt.Errorf("begin dimension change: %w", err)
	}
	e.undoCache.SetDimension(data)
	logger.DebugTagf("core", "Editor: dimension gesture began, %d record(s) cached", len(data))
	return nil
}

// UpdateDimension applies an intermediate size to the live selection
// without recording anything.
func (e *Editor) UpdateDimension(w, h float64) error {
	active, ok := e.selectionMgr.Active()
	if !ok {
		return ErrNoSelection
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("update dimension: non-positive size %gx%g", w, h)
	}
	t := active.Transform()
	t.Width = w
	t.Height = h
	active.SetTransform(t)
	e.dispatch(event.TypeObjectModified, event.ObjectModifiedData{IDs: e.selectionMgr.SelectedIDs(), Op: "resize"})
	return nil
}

// CommitDimensionChange records one change whose Before side is the
// snapshot parked at Begin and whose After side is the live state.
func (e *Editor) CommitDimensionChange() error {
	before := e.undoCache.TakeDimension()
	if before == nil {
		return ErrNoDimensionGesture
	}
	active, ok := e.selectionMgr.Active()
	if !ok {
		return ErrNoSelection
	}
	after, err := e.snapshotSelection(active)
	if err != nil {
		return fmt.Errorf("commit dimension change: %w", err)
	}
	e.historyMgr.RecordChange(history.Change{
		Op:     history.TransformOp,
		Label:  "resize",
		Before: before,
		After:  after,
	})
	return nil
}

// --- undo/redo ---

// Undo reverts the most recent change. An active group selection is
// dissolved first so replay writes absolute coordinates into free objects.
func (e *Editor) Undo() (bool, error) {
	e.dissolveGroupSelection()
	return e.historyMgr.Undo()
}

// Redo reapplies the most recently undone change.
func (e *Editor) Redo() (bool, error) {
	e.dissolveGroupSelection()
	return e.historyMgr.Redo()
}

func (e *Editor) dissolveGroupSelection() {
	if active, ok := e.selectionMgr.Active(); ok && active.Kind() == scene.KindGroup {
		e.selectionMgr.ClearSelection()
	}
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}
