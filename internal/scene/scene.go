package scene

import (
	"errors"
	"sort"

	"github.com/tovenaar/easel/internal/utils"
)

// ErrUnknownObject is returned when an id does not resolve to a registered
// object.
var ErrUnknownObject = errors.New("unknown object id")

// Scene is the object registry. It owns the id allocator, so an object's id
// is stable for the scene's lifetime: removing and re-adding the same object
// yields the same id, which is what lets undo data recorded before a delete
// still address the object after the delete is undone.
type Scene struct {
	stamper *utils.Stamper
	objects map[int64]Object
}

// NewScene creates an empty scene with its own id allocator.
func NewScene() *Scene {
	return &Scene{
		stamper: utils.NewStamper(),
		objects: make(map[int64]Object),
	}
}

// Add registers obj and returns its id.
func (s *Scene) Add(obj Object) int64 {
	id := s.stamper.Stamp(obj)
	s.objects[id] = obj
	return id
}

// Remove unregisters the object with the given id. Removing an unknown id
// is a no-op.
func (s *Scene) Remove(id int64) {
	delete(s.objects, id)
}

// Object resolves an id to its registered object.
func (s *Scene) Object(id int64) (Object, bool) {
	obj, ok := s.objects[id]
	return obj, ok
}

// ID returns obj's identifier, assigning one if the object has never been
// seen. The assignment does not register the object; Add does that.
func (s *Scene) ID(obj Object) int64 {
	return s.stamper.Stamp(obj)
}

// Objects returns the registered objects in ascending id order.
func (s *Scene) Objects() []Object {
	ids := make([]int64, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Object, len(ids))
	for i, id := range ids {
		out[i] = s.objects[id]
	}
	return out
}

// IDs returns the registered ids in ascending order.
func (s *Scene) IDs() []int64 {
	ids := make([]int64, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of registered objects.
func (s *Scene) Len() int {
	return len(s.objects)
}
