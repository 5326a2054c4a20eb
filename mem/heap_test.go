package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapUnimplemented(t *testing.T) {
	assert := assert.New(t)

	h := New().Heap()

	_, err := h.FindFree(16)
	assert.ErrorIs(err, ErrUnimplemented)

	_, err = h.Alloc(16)
	assert.ErrorIs(err, ErrUnimplemented)

	err = h.Free(0)
	assert.ErrorIs(err, ErrUnimplemented)
}
