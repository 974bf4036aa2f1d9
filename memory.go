package tracy

import "github.com/tracygo/tracy/internal/binding"

// Go offers no hook on the allocator, so memory events are emitted
// explicitly, typically from arena or pool implementations that hand out
// stable identifiers. The id plays the role of the allocation address: a
// MemFree must carry the id of a prior MemAlloc.

// MemAlloc reports an allocation of size bytes identified by id.
func (c *Client) MemAlloc(id uintptr, size uint64) {
	if !c.active() {
		return
	}
	binding.MemAlloc(id, size, true)
}

// MemFree reports the release of the allocation identified by id.
func (c *Client) MemFree(id uintptr) {
	if !c.active() {
		return
	}
	binding.MemFree(id, true)
}

// MemAllocNamed is MemAlloc against a named pool, keeping distinct
// allocators apart in the viewer. Pool names are interned for the process
// lifetime.
func (c *Client) MemAllocNamed(id uintptr, size uint64, pool string) {
	if !c.active() {
		return
	}
	binding.MemAllocNamed(id, size, true, pool)
}

// MemFreeNamed is MemFree against a named pool.
func (c *Client) MemFreeNamed(id uintptr, pool string) {
	if !c.active() {
		return
	}
	binding.MemFreeNamed(id, true, pool)
}
