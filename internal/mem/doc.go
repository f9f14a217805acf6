// Package mem provides slot-storage allocation for rawvec containers.
//
// # Slot Regions
//
// A slot region is storage for a fixed number of element slots with no
// element lifecycle attached: the container that owns the region decides
// when a slot starts and stops holding a live element. Regions are obtained
// with AllocSlots and handed back with FreeSlots exactly once.
//
// # Failure Model
//
// Oversized requests fail with ErrAllocTooLarge instead of aborting the
// process, so containers can surface allocation failure to their callers.
package mem
