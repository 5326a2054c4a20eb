// Package mem implements the system's flat memory bank and the
// register address table that maps named registers into it.
package mem

import (
	"github.com/pkg/errors"

	"github.com/emu86/emu86/arch"
)

// StoreCapacity is the total number of addressable bytes.
const StoreCapacity = 4096

// Store is a fixed-size, byte-addressable memory bank with signed
// cell semantics. Named registers alias byte ranges inside the same
// array, so a write through one register name is observable through
// any register whose range overlaps it.
type Store struct {
	cells   []int8        // Backing storage, zeroed at creation.
	offsets registerTable // Register address table, immutable after New.
}

// New returns a zeroed store with the register address table bound to it.
func New() *Store {
	return &Store{
		cells:   make([]int8, StoreCapacity),
		offsets: newRegisterTable(),
	}
}

// Read returns the value at the given position, widened to a signed int.
// Word reads compose two consecutive cells big-endian: the cell at
// position holds the most significant byte.
func (s *Store) Read(position int, size arch.Size) (int, error) {
	if err := s.check(position, size); err != nil {
		return 0, err
	}
	if size == arch.Word {
		return s.i16(position), nil
	}
	return s.i8(position), nil
}

// Write truncates value to the given width and stores it at position.
// Word writes store the high byte at position and the low byte at
// position+1.
func (s *Store) Write(position, value int, size arch.Size) error {
	if err := s.check(position, size); err != nil {
		return err
	}
	if size == arch.Word {
		s.setI16(position, value)
	} else {
		s.setI8(position, value)
	}
	return nil
}

// AddressOf resolves a register to its byte offset in the store.
// Unknown and unmapped registers fail with ErrUnknownRegister.
func (s *Store) AddressOf(r arch.Register) (int, error) {
	return s.offsets.addressOf(r)
}

// ReadRegister reads the given register through the address table,
// using the access width assigned by arch.RegisterSize.
func (s *Store) ReadRegister(r arch.Register) (int, error) {
	addr, err := s.AddressOf(r)
	if err != nil {
		return 0, err
	}
	return s.Read(addr, arch.RegisterSize(r))
}

// WriteRegister writes the given register through the address table,
// using the access width assigned by arch.RegisterSize.
func (s *Store) WriteRegister(r arch.Register, value int) error {
	addr, err := s.AddressOf(r)
	if err != nil {
		return err
	}
	return s.Write(addr, value, arch.RegisterSize(r))
}

// Load copies len(p) bytes from p into memory, starting at the given address.
func (s *Store) Load(address int, p []byte) error {
	if address < 0 || address+len(p) > len(s.cells) {
		return errors.Wrapf(ErrOutOfBounds, "load of %d bytes at %d", len(p), address)
	}
	for i, b := range p {
		s.cells[address+i] = int8(b)
	}
	return nil
}

// Dump copies len(p) bytes from memory into p, starting at the given address.
func (s *Store) Dump(address int, p []byte) error {
	if address < 0 || address+len(p) > len(s.cells) {
		return errors.Wrapf(ErrOutOfBounds, "dump of %d bytes at %d", len(p), address)
	}
	for i := range p {
		p[i] = byte(s.cells[address+i])
	}
	return nil
}

// i8 returns the signed 8-bit value at the given address.
func (s *Store) i8(addr int) int {
	return int(s.cells[addr])
}

// setI8 sets the 8-bit value at the given address.
func (s *Store) setI8(addr, value int) {
	s.cells[addr] = int8(value)
}

// i16 returns the signed 16-bit value at the given address.
// The low cell contributes its raw bit pattern, not its signed value.
func (s *Store) i16(addr int) int {
	return int(int16(s.cells[addr])<<8 | int16(uint8(s.cells[addr+1])))
}

// setI16 sets the 16-bit value at the given address.
func (s *Store) setI16(addr, value int) {
	s.cells[addr] = int8(int16(value) >> 8)
	s.cells[addr+1] = int8(int16(value))
}

// check validates that the full access lies within [0, StoreCapacity).
func (s *Store) check(position int, size arch.Size) error {
	last := position
	if size == arch.Word {
		last++
	}
	if position < 0 || last >= len(s.cells) {
		return errors.Wrapf(ErrOutOfBounds, "%s access at %d", arch.SizeName(size), position)
	}
	return nil
}
