// Package lifecycle tracks widget mount identity so one-shot effects run once
// and late results for a torn-down widget are dropped.
package lifecycle

import "github.com/google/uuid"

// Instance is one mounted widget. Its ID tags every async result it starts.
type Instance struct {
	id      uuid.UUID
	mounted bool
	started bool
}

// Mount returns a fresh, mounted instance.
func Mount() *Instance {
	return &Instance{id: uuid.New(), mounted: true}
}

// ID identifies this mount.
func (i *Instance) ID() uuid.UUID { return i.id }

// Mounted reports whether Unmount has not yet been called.
func (i *Instance) Mounted() bool { return i.mounted }

// Once reports true the first time it is called on a mounted instance and
// false on every later call.
func (i *Instance) Once() bool {
	if !i.mounted || i.started {
		return false
	}
	i.started = true
	return true
}

// Unmount tears the instance down. Later results addressed to it are ignored.
func (i *Instance) Unmount() { i.mounted = false }

// Accepts reports whether a result tagged with id belongs to this live mount.
func (i *Instance) Accepts(id uuid.UUID) bool {
	return i.mounted && i.id == id
}
