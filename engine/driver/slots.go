package driver

// SlotAllocator hands out texture slots keyed by sampler uniform name.
// The first name seen receives slot 0, the next new name slot 1, and a name
// that was seen before always receives the same slot again.
//
// The zero value is ready to use.
type SlotAllocator struct {
	slots map[string]uint32
	next  uint32
}

// Slot returns the slot for name, assigning the next free slot on first use.
//
// Parameters:
//   - name: the sampler uniform name
//
// Returns:
//   - uint32: the slot assigned to name
func (a *SlotAllocator) Slot(name string) uint32 {
	if s, ok := a.slots[name]; ok {
		return s
	}
	if a.slots == nil {
		a.slots = make(map[string]uint32)
	}
	s := a.next
	a.slots[name] = s
	a.next++
	return s
}

// Len returns the number of assigned slots.
func (a *SlotAllocator) Len() int {
	return len(a.slots)
}
