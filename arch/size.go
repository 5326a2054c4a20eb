package arch

// Known access widths for memory operations.
const (
	Byte Size = iota // 8-bit access
	Word             // 16-bit access
)

// Size selects the access width of a memory operation.
type Size int

// SizeName returns the string representation of the given access width.
func SizeName(s Size) string {
	switch s {
	case Byte:
		return "Byte"
	case Word:
		return "Word"
	}
	return ""
}

// RegisterSize returns the access width used when the given register
// is read or written through the memory core.
//
// The 32-bit registers, the pointer registers and Unknown all fall
// through to Byte; 4-byte operations do not exist yet.
// TODO: classify EAX..EDX as a dedicated width once dword memory
// operations are implemented.
func RegisterSize(r Register) Size {
	if r >= AL && r <= DH {
		return Byte
	}
	if r >= AX && r <= DX {
		return Word
	}
	return Byte
}
