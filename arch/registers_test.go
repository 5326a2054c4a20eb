package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var registerNames = map[string]Register{
	"AL": AL, "BL": BL, "CL": CL, "DL": DL,
	"AH": AH, "BH": BH, "CH": CH, "DH": DH,
	"AX": AX, "BX": BX, "CX": CX, "DX": DX,
	"EAX": EAX, "EBX": EBX, "ECX": ECX, "EDX": EDX,
	"ESP": ESP, "EBP": EBP,
}

func TestRegisterIndex(t *testing.T) {
	assert := assert.New(t)

	for name, want := range registerNames {
		assert.Equal(want, RegisterIndex(name), name)
		assert.True(IsRegister(name), name)
	}

	assert.Equal(Unknown, RegisterIndex("foo"))
	assert.Equal(Unknown, RegisterIndex(""))
	assert.False(IsRegister("foo"))
}

func TestRegisterIndexCaseInsensitive(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(AL, RegisterIndex("al"))
	assert.Equal(EAX, RegisterIndex("Eax"))
	assert.Equal(EBP, RegisterIndex("ebp"))
}

func TestRegisterString(t *testing.T) {
	assert := assert.New(t)

	for name, r := range registerNames {
		assert.Equal(name, r.String())
	}

	assert.Equal("", Unknown.String())
	assert.Equal("", Register(99).String())
}

func TestRegisterOrdinals(t *testing.T) {
	assert := assert.New(t)

	// The ordinals are a compatibility surface: they key the address
	// table and drive the size classifier.
	assert.Equal(Register(0), AL)
	assert.Equal(Register(7), DH)
	assert.Equal(Register(8), AX)
	assert.Equal(Register(11), DX)
	assert.Equal(Register(12), EAX)
	assert.Equal(Register(16), ESP)
	assert.Equal(Register(17), EBP)
	assert.Equal(Register(-1), Unknown)
}
