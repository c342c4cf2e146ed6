// Package history provides undo/redo over the datum sequences the undo
// helper captures around scene mutations.
package history

import (
	"github.com/tovenaar/easel/internal/core/undo"
	"github.com/tovenaar/easel/internal/scene"
)

// OpKind indicates what kind of mutation a change records.
type OpKind int

const (
	TransformOp OpKind = iota // move, scale, rotate, resize
	TextOp                    // text content change
	AddOp                     // object added to the scene
	RemoveOp                  // object removed from the scene
)

// String returns the kind tag used in logs and event payloads.
func (k OpKind) String() string {
	switch k {
	case TransformOp:
		return "transform"
	case TextOp:
		return "text"
	case AddOp:
		return "add"
	case RemoveOp:
		return "remove"
	}
	return "unknown"
}

// Change represents a single, reversible scene operation. Before is the
// snapshot applied on undo, After the one applied on redo; both were
// captured by the undo helper around the mutation. Objects and IDs carry
// the added or removed objects themselves for AddOp/RemoveOp so replay can
// re-register or detach them; the two slices are parallel.
type Change struct {
	Op      OpKind
	Label   string // Human-readable, e.g. "move", "resize", "add rect"
	Before  []undo.Datum
	After   []undo.Datum
	Objects []scene.Object
	IDs     []int64
}
