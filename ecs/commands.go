package ecs

// Commands buffers structural changes requested while systems run. They are
// applied by Flush at the end of the frame: deletes, then spawns, then
// deferred functions in the order they were queued.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues the creation of an entity.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues the deletion of an entity.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Defer queues fn to run after the structural changes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.defers)
}

// Flush applies the buffered commands to storage and resets the buffer.
// Deferred functions may queue further commands; those are applied by the
// next Flush.
func (c *Commands) Flush(storage *Storage) {
	deletes, spawns, defers := c.deletes, c.spawns, c.defers
	c.deletes, c.spawns, c.defers = nil, nil, nil

	for _, id := range deletes {
		storage.Delete(id)
	}
	for _, components := range spawns {
		storage.Spawn(components...)
	}
	for _, fn := range defers {
		fn()
	}
}
