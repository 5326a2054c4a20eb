package mem

import (
	"github.com/pkg/errors"

	"github.com/emu86/emu86/arch"
)

// registerTable maps each known register to its byte offset in the store.
type registerTable map[arch.Register]int

// newRegisterTable builds the fixed register layout.
//
// Overlap between entries is deliberate: a 16-bit register and the
// 8-bit registers sharing its byte range alias the same storage.
// The offsets are a compatibility surface and must not change.
func newRegisterTable() registerTable {
	return registerTable{
		arch.AL: 3,
		arch.BL: 7,
		arch.CL: 11,
		arch.DL: 15,
		arch.AH: 2,
		arch.BH: 6,
		arch.CH: 10,
		arch.DH: 14,

		arch.AX: 0,
		arch.BX: 4,
		arch.CX: 8,
		arch.DX: 12,

		arch.EAX: 0,
		arch.EBX: 4,
		arch.ECX: 8,
		arch.EDX: 12,

		arch.ESP: 16,
		arch.EBP: 20,
	}
}

// addressOf returns the byte offset for the given register.
// There is no sentinel address: a register without an entry is
// rejected before any address arithmetic can use it.
func (t registerTable) addressOf(r arch.Register) (int, error) {
	offset, ok := t[r]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownRegister, "%d (%s)", int(r), r)
	}
	return offset, nil
}
