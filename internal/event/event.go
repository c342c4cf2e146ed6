// internal/event/events.go
package event

import "github.com/tovenaar/easel/internal/scene"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Scene events
	TypeObjectAdded    // Fired after an object is registered in the scene
	TypeObjectRemoved  // Fired after an object is removed from the scene
	TypeObjectModified // Fired after a geometry change (move/scale/rotate/resize)
	TypeTextChanged    // Fired after a text object's content changes

	// Selection events
	TypeSelectionChanged // Fired when the active selection changes
	TypeSelectionCleared // Fired when the selection is cleared

	// History events
	TypeHistoryChanged // Fired after record, undo or redo

	// Application lifecycle events
	TypeAppReady // Fired when the editor is fully wired
	TypeAppQuit  // Fired just before termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// ObjectAddedData describes a newly registered object.
type ObjectAddedData struct {
	ID   int64
	Kind scene.Kind
}

// ObjectRemovedData describes a removed object.
type ObjectRemovedData struct {
	ID int64
}

// ObjectModifiedData lists the objects a geometry change touched and the
// operation label ("move", "resize", ...).
type ObjectModifiedData struct {
	IDs []int64
	Op  string
}

// TextChangedData carries a text object's new content.
type TextChangedData struct {
	ID      int64
	Content string
}

// SelectionChangedData lists the newly selected object ids.
type SelectionChangedData struct {
	IDs []int64
}

// SelectionClearedData accompanies TypeSelectionCleared.
type SelectionClearedData struct{}

// HistoryChangedData reflects the undo/redo stack after a history event.
type HistoryChangedData struct {
	Label   string
	CanUndo bool
	CanRedo bool
}

// AppReadyData accompanies TypeAppReady.
type AppReadyData struct{}

// AppQuitData accompanies TypeAppQuit.
type AppQuitData struct{}
