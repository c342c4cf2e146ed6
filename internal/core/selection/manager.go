// Package selection tracks the active selection: nothing, a single object,
// or a group built over two or more members.
package selection

import (
	"fmt"

	"github.com/tovenaar/easel/internal/event"
	"github.com/tovenaar/easel/internal/logger"
	"github.com/tovenaar/easel/internal/scene"
)

// EditorInterface defines what the selection manager needs from the editor.
type EditorInterface interface {
	ObjectByID(id int64) (scene.Object, bool)
	GetEventManager() *event.Manager
}

// Manager handles selection state and logic.
type Manager struct {
	editor EditorInterface

	active scene.Object // nil, a scene object, or a *scene.Group
	ids    []int64      // Selected ids in selection order
}

// NewManager creates a new selection manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{editor: editor}
}

// Select makes the objects with the given ids the active selection. One id
// selects the object itself; two or more build a group aggregate over the
// members. An unknown id fails the whole call and leaves the previous
// selection in place. No ids is equivalent to ClearSelection.
func (m *Manager) Select(ids ...int64) error {
	if len(ids) == 0 {
		m.ClearSelection()
		return nil
	}

	objects := make([]scene.Object, len(ids))
	for i, id := range ids {
		obj, ok := m.editor.ObjectByID(id)
		if !ok {
			return fmt.Errorf("select %d: %w", id, scene.ErrUnknownObject)
		}
		objects[i] = obj
	}

	// Dissolve any previous group before building the new selection, so
	// members rejoin the scene with absolute coordinates.
	m.release()

	if len(objects) == 1 {
		m.active = objects[0]
	} else {
		m.active = scene.NewGroup(objects)
	}
	m.ids = append([]int64(nil), ids...)

	logger.DebugTagf("selection", "Selection Manager: Selected %v", m.ids)
	if eventMgr := m.editor.GetEventManager(); eventMgr != nil {
		eventMgr.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{IDs: m.SelectedIDs()})
	}
	return nil
}

// Active returns the selected object: the object itself for a single
// selection, the group aggregate for a multi selection.
func (m *Manager) Active() (scene.Object, bool) {
	if m.active == nil {
		return nil, false
	}
	return m.active, true
}

// HasSelection returns whether there is an active selection.
func (m *Manager) HasSelection() bool {
	return m.active != nil
}

// SelectedIDs returns the selected ids in selection order.
func (m *Manager) SelectedIDs() []int64 {
	return append([]int64(nil), m.ids...)
}

// Contains reports whether id is part of the active selection.
func (m *Manager) Contains(id int64) bool {
	for _, sel := range m.ids {
		if sel == id {
			return true
		}
	}
	return false
}

// Drop removes one id from the selection without dissolving the rest,
// used when a selected object is deleted. A group selection is rebuilt
// over the remaining members.
func (m *Manager) Drop(id int64) {
	if !m.Contains(id) {
		return
	}
	remaining := make([]int64, 0, len(m.ids)-1)
	for _, sel := range m.ids {
		if sel != id {
			remaining = append(remaining, sel)
		}
	}
	m.release()
	m.ids = nil
	if len(remaining) > 0 {
		// Reselect the survivors; ids are known valid.
		if err := m.Select(remaining...); err != nil {
			logger.WarnTagf("selection", "Selection Manager: reselect after drop failed: %v", err)
		}
		return
	}
	if eventMgr := m.editor.GetEventManager(); eventMgr != nil {
		eventMgr.Dispatch(event.TypeSelectionCleared, event.SelectionClearedData{})
	}
}

// ClearSelection resets the selection state. An active group is dissolved,
// so its members keep their realized absolute transforms.
func (m *Manager) ClearSelection() {
	if m.active == nil {
		return
	}
	m.release()
	m.ids = nil
	logger.DebugTagf("selection", "Selection Manager: Cleared")
	if eventMgr := m.editor.GetEventManager(); eventMgr != nil {
		eventMgr.Dispatch(event.TypeSelectionCleared, event.SelectionClearedData{})
	}
}

// release dissolves an active group without dispatching events.
func (m *Manager) release() {
	if group, ok := m.active.(*scene.Group); ok {
		group.Dissolve()
	}
	m.active = nil
}
