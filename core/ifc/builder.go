// Package ifc builds IFC4 entity graphs. A Builder owns an append-only
// arena of (id, type, attrs) records plus the identifier allocator; one
// strongly-typed factory exists per entity kind the exporter emits. Each
// factory formats its attribute list through core/step, allocates the
// next id, appends the record, and returns the id for use as a backward
// reference by later factories. Entities are never mutated or removed
// after creation.
package ifc

import (
	"strings"

	"github.com/stratumcad/ifcgen/core/step"
)

// Entity is one record in the entity arena.
type Entity struct {
	// ID is the entity identifier, unique and contiguous from 1.
	ID int

	// Type is the IFC schema keyword, e.g. "IFCCARTESIANPOINT".
	Type string

	// Attrs is the formatted attribute list, without the surrounding
	// parentheses.
	Attrs string
}

// allocator hands out strictly increasing entity identifiers starting at
// 1. It is exclusively owned by one Builder; calls are sequential by
// construction, so no locking is needed.
type allocator struct {
	last int
}

// next allocates and returns the next identifier.
func (a *allocator) next() int {
	a.last++
	return a.last
}

// current returns the last issued identifier (0 before the first next).
func (a *allocator) current() int {
	return a.last
}

// Builder accumulates the entity graph for one export run. Not safe for
// concurrent use; the generator is single-threaded by design.
type Builder struct {
	ids      allocator
	entities []Entity
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// append formats the attribute list, allocates an id, and records the
// entity. All factories funnel through here.
func (b *Builder) append(entityType string, attrs ...string) int {
	id := b.ids.next()
	b.entities = append(b.entities, Entity{
		ID:    id,
		Type:  entityType,
		Attrs: strings.Join(attrs, ","),
	})
	return id
}

// Entities returns the arena in creation order. The returned slice is
// the Builder's backing store; callers must treat it as read-only.
func (b *Builder) Entities() []Entity {
	return b.entities
}

// Count returns the number of entities created so far.
func (b *Builder) Count() int {
	return len(b.entities)
}

// LastID returns the most recently allocated identifier.
func (b *Builder) LastID() int {
	return b.ids.current()
}

// refOrNull encodes an optional entity reference; id 0 means unset.
func refOrNull(id int) string {
	if id == 0 {
		return step.Null
	}
	return step.EncodeRef(id)
}
