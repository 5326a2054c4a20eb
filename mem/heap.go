package mem

import "github.com/pkg/errors"

// Allocator manages ranges of heap memory for programs, and for data
// within those programs.
type Allocator interface {
	// FindFree returns the offset of a free region of at least size bytes.
	FindFree(size int) (int, error)

	// Alloc reserves a region of size bytes and returns its start offset.
	Alloc(size int) (int, error)

	// Free releases the previously reserved region starting at position.
	Free(position int) error
}

// Heap returns the allocator bound to this store. Allocation state is
// scoped to the owning store, never process-wide.
func (s *Store) Heap() Allocator {
	return heap{s}
}

// heap is a placeholder allocator. Every operation fails with
// ErrUnimplemented until an allocation policy (free list, bitmap) is
// chosen and implemented.
type heap struct {
	store *Store
}

func (h heap) FindFree(size int) (int, error) {
	return 0, errors.Wrapf(ErrUnimplemented, "find free region of %d bytes", size)
}

func (h heap) Alloc(size int) (int, error) {
	return 0, errors.Wrapf(ErrUnimplemented, "allocate %d bytes", size)
}

func (h heap) Free(position int) error {
	return errors.Wrapf(ErrUnimplemented, "free region at %d", position)
}
