package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistersDirect(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	regs.Reset()

	table := []struct {
		token string
		reg   uint16
	}{
		{"r0", 0},
		{"R0", 0},
		{"r7", 7},
		{"r29", 29},
		{"r30", 30},
		{"r31", 31},
		{"R31", 31},
		{"sp", REG_SP},
		{"SP", REG_SP},
		{"pc", REG_PC},
		{"Pc", REG_PC},
	}

	for _, entry := range table {
		reg, err := regs.Lookup(entry.token)
		assert.NoError(err, entry.token)
		assert.Equal(entry.reg, reg, entry.token)
	}

	var eu ErrUnknownRegister
	for _, token := range []string{"r32", "r33", "r99", "R40"} {
		_, err := regs.Lookup(token)
		assert.ErrorAs(err, &eu, token)
	}
}

func TestRegistersVariables(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	regs.Reset()

	reg, err := regs.Lookup("count")
	assert.NoError(err)
	assert.Equal(uint16(1), reg)

	reg, err = regs.Lookup("total")
	assert.NoError(err)
	assert.Equal(uint16(2), reg)

	// Bindings are case-insensitive.
	reg, err = regs.Lookup("COUNT")
	assert.NoError(err)
	assert.Equal(uint16(1), reg)

	// Tokens shaped like literals cannot become variables.
	var ev ErrVariableName
	for _, token := range []string{"9lives", "0", "#size"} {
		_, err = regs.Lookup(token)
		assert.ErrorAs(err, &ev, token)
	}

	err = regs.Free("Count")
	assert.NoError(err)

	// The freed slot is the lowest again, so a new name reuses it.
	reg, err = regs.Lookup("fresh")
	assert.NoError(err)
	assert.Equal(uint16(1), reg)

	var ef ErrVariableUnbound
	err = regs.Free("ghost")
	assert.ErrorAs(err, &ef)
	assert.Equal("ghost", string(ef))

	// sp and pc are pre-bound and never freeable.
	err = regs.Free("sp")
	assert.ErrorAs(err, &ef)
}

func TestRegistersPool(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	regs.Reset()

	// Slots 1-29 are assignable; the 30th distinct name must fail.
	for n := VAR_FIRST; n <= VAR_LAST; n++ {
		reg, err := regs.Lookup(fmt.Sprintf("var%d", n))
		assert.NoError(err)
		assert.Equal(uint16(n), reg)
	}

	var el ErrVariableLimit
	_, err := regs.Lookup("overflow")
	assert.ErrorAs(err, &el)
	assert.Equal("overflow", string(el))

	err = regs.Free("var7")
	assert.NoError(err)

	reg, err := regs.Lookup("overflow")
	assert.NoError(err)
	assert.Equal(uint16(7), reg)

	count := 0
	for reg, name := range regs.Bindings() {
		count++
		if reg == 7 {
			assert.Equal("overflow", name)
		}
	}
	assert.Equal(29, count)
}

func TestRegistersNoVariables(t *testing.T) {
	assert := assert.New(t)

	regs := Registers{NoVariables: true}
	regs.Reset()

	// Physical registers and the fixed aliases still resolve.
	reg, err := regs.Lookup("r5")
	assert.NoError(err)
	assert.Equal(uint16(5), reg)

	reg, err = regs.Lookup("sp")
	assert.NoError(err)
	assert.Equal(uint16(REG_SP), reg)

	var eu ErrUnknownRegister
	_, err = regs.Lookup("count")
	assert.ErrorAs(err, &eu)
}
