package history

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tovenaar/easel/internal/core/undo"
	"github.com/tovenaar/easel/internal/event"
	"github.com/tovenaar/easel/internal/logger"
	"github.com/tovenaar/easel/internal/scene"
)

const DefaultMaxHistory = 100

// Sentinel errors for empty stack ends.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// EditorInterface defines the methods the history manager needs from the
// editor to replay changes against the scene.
type EditorInterface interface {
	ObjectByID(id int64) (scene.Object, bool)
	RestoreObject(obj scene.Object) int64 // re-registers under the object's stable id
	DetachObject(id int64)
	GetEventManager() *event.Manager
}

// Manager handles the undo/redo stack.
type Manager struct {
	editor       EditorInterface
	changes      []Change
	currentIndex int // Index of the *next* change to potentially Redo
	maxHistory   int
	mutex        sync.Mutex
}

// NewManager creates a history manager.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:       editor,
		changes:      make([]Change, 0, maxHistory),
		currentIndex: 0,
		maxHistory:   maxHistory,
	}
}

// RecordChange adds a new change, clearing any redo history.
func (m *Manager) RecordChange(change Change) {
	m.mutex.Lock()

	// If current index isn't at the end, truncate the redo history
	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}

	m.changes = append(m.changes, change)

	// Limit history size (simple FIFO eviction)
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}

	m.currentIndex = len(m.changes)
	index := m.currentIndex
	label := change.Label
	m.mutex.Unlock()

	logger.DebugTagf("history", "History: Recorded %q. Index: %d", label, index)
	m.dispatchHistoryChanged(label)
}

// Undo reverts the last recorded change.
func (m *Manager) Undo() (bool, error) {
	m.mutex.Lock()

	if m.currentIndex <= 0 {
		m.mutex.Unlock()
		return false, ErrNothingToUndo
	}

	m.currentIndex--
	change := m.changes[m.currentIndex]
	logger.DebugTagf("history", "History: Undoing change %d (%s %q)", m.currentIndex, change.Op, change.Label)

	var err error
	switch change.Op {
	case AddOp:
		// Undo an add by detaching the added objects
		for _, id := range change.IDs {
			m.editor.DetachObject(id)
		}
	case RemoveOp:
		// Undo a remove by re-registering the removed objects
		for _, obj := range change.Objects {
			m.editor.RestoreObject(obj)
		}
	default:
		err = m.applyData(change.Before)
	}

	if err != nil {
		m.currentIndex++ // Revert index change on error
		m.mutex.Unlock()
		return false, fmt.Errorf("undo failed: %w", err)
	}
	label := change.Label
	m.mutex.Unlock()

	m.dispatchHistoryChanged(label)
	return true, nil
}

// Redo reapplies the last undone change.
func (m *Manager) Redo() (bool, error) {
	m.mutex.Lock()

	if m.currentIndex >= len(m.changes) {
		m.mutex.Unlock()
		return false, ErrNothingToRedo
	}

	change := m.changes[m.currentIndex]
	logger.DebugTagf("history", "History: Redoing change %d (%s %q)", m.currentIndex, change.Op, change.Label)

	var err error
	switch change.Op {
	case AddOp:
		for _, obj := range change.Objects {
			m.editor.RestoreObject(obj)
		}
	case RemoveOp:
		for _, id := range change.IDs {
			m.editor.DetachObject(id)
		}
	default:
		err = m.applyData(change.After)
	}

	if err != nil {
		// Don't advance the index if redo failed
		m.mutex.Unlock()
		return false, fmt.Errorf("redo failed: %w", err)
	}

	m.currentIndex++
	label := change.Label
	m.mutex.Unlock()

	m.dispatchHistoryChanged(label)
	return true, nil
}

// applyData restores each datum onto the object its id resolves to. A
// GroupDatum restores the five geometry fields and leaves scales untouched;
// an ObjectDatum restores the full captured state. An unresolvable id fails
// the whole step.
func (m *Manager) applyData(data []undo.Datum) error {
	for _, d := range data {
		obj, ok := m.editor.ObjectByID(d.ObjectID())
		if !ok {
			return fmt.Errorf("datum for object %d: %w", d.ObjectID(), scene.ErrUnknownObject)
		}
		switch d := d.(type) {
		case undo.GroupDatum:
			t := obj.Transform()
			t.Angle = d.Angle
			t.Left = d.Left
			t.Top = d.Top
			t.Width = d.Width
			t.Height = d.Height
			obj.SetTransform(t)
		case undo.ObjectDatum:
			if !scene.ApplyState(obj, d.Props) {
				return fmt.Errorf("datum for object %d carries no full state", d.ObjectID())
			}
		}
	}
	return nil
}

// dispatchHistoryChanged publishes the stack state. Called without the
// mutex held so handlers can query CanUndo/CanRedo freely.
func (m *Manager) dispatchHistoryChanged(label string) {
	eventMgr := m.editor.GetEventManager()
	if eventMgr == nil {
		return
	}
	eventMgr.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		Label:   label,
		CanUndo: m.CanUndo(),
		CanRedo: m.CanRedo(),
	})
}

// Clear resets the history stack.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.changes = m.changes[:0] // Keep allocated capacity
	m.currentIndex = 0
	logger.DebugTagf("history", "History: Cleared.")
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.changes)
}

// EntryInfo describes one history entry for display.
type EntryInfo struct {
	Op      OpKind
	Label   string
	Applied bool // false for entries on the redo side of the cursor
}

// Entries returns the stack contents, oldest first.
func (m *Manager) Entries() []EntryInfo {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	out := make([]EntryInfo, len(m.changes))
	for i, c := range m.changes {
		out[i] = EntryInfo{Op: c.Op, Label: c.Label, Applied: i < m.currentIndex}
	}
	return out
}
