// Package arch defines the system's register set along with
// some related helper functions.
package arch

import "strings"

// Register identifies a named CPU register.
type Register int

// Known registers. The ordinals are fixed: they are used as lookup
// keys by the memory core and by the size classifier.
const (
	AL Register = iota
	BL
	CL
	DL
	AH
	BH
	CH
	DH

	AX
	BX
	CX
	DX

	EAX
	EBX
	ECX
	EDX

	ESP
	EBP
)

// Unknown marks the absence of a register. It has no address and no
// defined access width.
const Unknown Register = -1

// IsRegister returns true if the given name represents a known register.
func IsRegister(name string) bool {
	return RegisterIndex(name) != Unknown
}

// RegisterIndex returns the register for the given name.
// Returns Unknown if the name is not recognized.
func RegisterIndex(name string) Register {
	switch strings.ToLower(name) {
	case "al":
		return AL
	case "bl":
		return BL
	case "cl":
		return CL
	case "dl":
		return DL
	case "ah":
		return AH
	case "bh":
		return BH
	case "ch":
		return CH
	case "dh":
		return DH
	case "ax":
		return AX
	case "bx":
		return BX
	case "cx":
		return CX
	case "dx":
		return DX
	case "eax":
		return EAX
	case "ebx":
		return EBX
	case "ecx":
		return ECX
	case "edx":
		return EDX
	case "esp":
		return ESP
	case "ebp":
		return EBP
	}
	return Unknown
}

// String returns the name associated with the given register.
// Returns "" if the register is not recognized.
func (r Register) String() string {
	switch r {
	case AL:
		return "AL"
	case BL:
		return "BL"
	case CL:
		return "CL"
	case DL:
		return "DL"
	case AH:
		return "AH"
	case BH:
		return "BH"
	case CH:
		return "CH"
	case DH:
		return "DH"
	case AX:
		return "AX"
	case BX:
		return "BX"
	case CX:
		return "CX"
	case DX:
		return "DX"
	case EAX:
		return "EAX"
	case EBX:
		return "EBX"
	case ECX:
		return "ECX"
	case EDX:
		return "EDX"
	case ESP:
		return "ESP"
	case EBP:
		return "EBP"
	}
	return ""
}
