package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpArity(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		op       Op
		arity    Arity
		operands int
	}{
		{OP_FLAG, ARITY_NONE, 0},
		{OP_LDI, ARITY_IMM16, 1},
		{OP_NOT, ARITY_REG, 1},
		{OP_JMP, ARITY_REG, 1},
		{OP_PUSH, ARITY_REG, 1},
		{OP_POP, ARITY_REG, 1},
		{OP_MV, ARITY_REG_REG, 2},
		{OP_ADD, ARITY_REG_REG, 2},
		{OP_JZ, ARITY_REG_REG, 2},
		{OP_LD, ARITY_REG_REG, 2},
		{OP_ST, ARITY_REG_REG, 2},
		{OP_ADDI, ARITY_REG_IMM6, 2},
		{OP_SHRI, ARITY_REG_IMM6, 2},
	}

	for _, entry := range table {
		assert.Equal(entry.arity, entry.op.Arity(), entry.op.String())
		assert.Equal(entry.operands, entry.op.Arity().Operands(), entry.op.String())
	}
}

func TestOpMap(t *testing.T) {
	assert := assert.New(t)

	// Every operation has exactly one mnemonic.
	assert.Equal(24, len(opMap))

	op, ok := opMap["mv"]
	assert.True(ok)
	assert.Equal(OP_MV, op)

	_, ok = opMap["MV"]
	assert.False(ok) // callers lowercase before lookup
}

func TestWordRoundTrip(t *testing.T) {
	assert := assert.New(t)

	word := MakeWord(OP_MV) | Word(3)<<5 | Word(4)
	assert.Equal(OP_MV, word.Op())
	assert.Equal(uint16(3), word.RegA())
	assert.Equal(uint16(4), word.RegB())

	word = MakeWord(OP_ADDI) | Word(1)<<5 | Word(63)
	assert.Equal(OP_ADDI, word.Op())
	assert.Equal(uint16(1), word.RegA())
	assert.Equal(uint16(63), word.Imm6())

	// LDI's opcode is zero, so the word is the immediate itself.
	word = MakeWord(OP_LDI) | Word(1000)
	assert.Equal(Word(1000), word)
	assert.Equal(uint16(1000), word.Imm16())

	assert.Equal(Word(0xfc00), FILLER)
	assert.Equal(OP_FLAG, FILLER.Op())
	assert.Equal(uint16(0), FILLER.RegA())
	assert.Equal(uint16(0), FILLER.RegB())
}

func TestWordString(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		word Word
		out  string
	}{
		{MakeWord(OP_MV) | Word(1)<<5 | Word(2), "mv r1 r2"},
		{MakeWord(OP_JMP) | Word(REG_SP) << 5, "jmp sp"},
		{MakeWord(OP_ADD) | Word(REG_PC) << 5, "add pc r0"},
		{MakeWord(OP_ADDI) | Word(1)<<5 | Word(63), "addi r1 63"},
		{MakeWord(OP_LDI) | Word(1000), "ldi 1000"},
		{FILLER, "flag"},
	}

	for _, entry := range table {
		assert.Equal(entry.out, entry.word.String())
	}
}
