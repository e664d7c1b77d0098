package cpu

import (
	"fmt"
)

// Op is a 6-bit operation code.
type Op uint16

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_LDI  = Op(0x00) // ldi
	OP_MV   = Op(0x20) // mv
	OP_ADD  = Op(0x21) // add
	OP_SUB  = Op(0x22) // sub
	OP_NOT  = Op(0x23) // not
	OP_AND  = Op(0x24) // and
	OP_OR   = Op(0x25) // or
	OP_XOR  = Op(0x26) // xor
	OP_SHL  = Op(0x27) // shl
	OP_SHR  = Op(0x28) // shr
	OP_JMP  = Op(0x29) // jmp
	OP_JZ   = Op(0x2a) // jz
	OP_JNZ  = Op(0x2b) // jnz
	OP_JN   = Op(0x2c) // jn
	OP_JP   = Op(0x2d) // jp
	OP_LD   = Op(0x2e) // ld
	OP_ST   = Op(0x2f) // st
	OP_PUSH = Op(0x30) // push
	OP_POP  = Op(0x31) // pop
	OP_ADDI = Op(0x32) // addi
	OP_SUBI = Op(0x33) // subi
	OP_SHLI = Op(0x34) // shli
	OP_SHRI = Op(0x35) // shri
	OP_FLAG = Op(0x3f) // flag
)

// opMap maps mnemonics to operation codes. Lookup is on the lowercased token.
var opMap = map[string]Op{
	"ldi":  OP_LDI,
	"mv":   OP_MV,
	"add":  OP_ADD,
	"sub":  OP_SUB,
	"not":  OP_NOT,
	"and":  OP_AND,
	"or":   OP_OR,
	"xor":  OP_XOR,
	"shl":  OP_SHL,
	"shr":  OP_SHR,
	"jmp":  OP_JMP,
	"jz":   OP_JZ,
	"jnz":  OP_JNZ,
	"jn":   OP_JN,
	"jp":   OP_JP,
	"ld":   OP_LD,
	"st":   OP_ST,
	"push": OP_PUSH,
	"pop":  OP_POP,
	"addi": OP_ADDI,
	"subi": OP_SUBI,
	"shli": OP_SHLI,
	"shri": OP_SHRI,
	"flag": OP_FLAG,
}

// Arity is the operand class of an operation.
type Arity int

const (
	ARITY_NONE     = Arity(iota) // no operands
	ARITY_IMM16                  // one 16-bit immediate
	ARITY_REG                    // one register
	ARITY_REG_REG                // two registers
	ARITY_REG_IMM6               // register and 6-bit immediate
)

// Arity returns the operand class of the operation.
func (op Op) Arity() Arity {
	switch op {
	case OP_FLAG:
		return ARITY_NONE
	case OP_LDI:
		return ARITY_IMM16
	case OP_NOT, OP_JMP, OP_PUSH, OP_POP:
		return ARITY_REG
	case OP_ADDI, OP_SUBI, OP_SHLI, OP_SHRI:
		return ARITY_REG_IMM6
	default:
		return ARITY_REG_REG
	}
}

// Operands returns the number of operands the class expects.
func (a Arity) Operands() int {
	switch a {
	case ARITY_NONE:
		return 0
	case ARITY_IMM16, ARITY_REG:
		return 1
	default:
		return 2
	}
}

// Word is a single assembled 16-bit instruction.
type Word uint16

// FILLER is the word used to pad instruction slots skipped by #starts:
// a FLAG opcode with zero operand bits.
const FILLER = Word(OP_FLAG) << 10

// MakeWord creates an instruction word with the opcode in the top 6 bits
// and no operand bits set.
func MakeWord(op Op) Word {
	return Word(op&0x3f) << 10
}

// Op returns the operation code from the instruction word.
func (w Word) Op() Op {
	return Op((uint16(w) >> 10) & 0x3f)
}

// RegA returns the first register operand, bits 9-5.
func (w Word) RegA() uint16 {
	return (uint16(w) >> 5) & 0x1f
}

// RegB returns the second register operand, bits 4-0.
func (w Word) RegB() uint16 {
	return uint16(w) & 0x1f
}

// Imm6 returns the 6-bit immediate operand, bits 5-0.
func (w Word) Imm6() uint16 {
	return uint16(w) & 0x3f
}

// Imm16 returns the 16-bit immediate of an LDI word.
func (w Word) Imm16() uint16 {
	return uint16(w)
}

// regName returns the assembly name of a register index.
func regName(reg uint16) string {
	switch reg {
	case REG_SP:
		return "sp"
	case REG_PC:
		return "pc"
	}
	return fmt.Sprintf("r%d", reg)
}

// String returns the assembly language representation of the word.
func (w Word) String() (out string) {
	op := w.Op()

	switch op.Arity() {
	case ARITY_NONE:
		out = op.String()
	case ARITY_IMM16:
		out = fmt.Sprintf("%v %d", op, w.Imm16())
	case ARITY_REG:
		out = fmt.Sprintf("%v %v", op, regName(w.RegA()))
	case ARITY_REG_IMM6:
		out = fmt.Sprintf("%v %v %d", op, regName(w.RegA()), w.Imm6())
	default:
		out = fmt.Sprintf("%v %v %v", op, regName(w.RegA()), regName(w.RegB()))
	}

	return
}
