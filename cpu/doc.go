// Package cpu implements the instruction set and assembler for the BattleASM CPU.
//
// The CPU is a 16-bit machine with 32 registers (r0-r31), where r30 doubles as
// the stack pointer ("sp") and r31 as the program counter ("pc"). Every
// instruction assembles to a single 16-bit word: the opcode in the top 6 bits,
// the first operand in bits 9-5, and the second operand in bits 4-0. LDI is
// opcode zero, so an LDI word is numerically equal to its 16-bit immediate.
//
// The assembler provides a line-oriented assembly language for the instruction
// set, supporting symbolic register variables, compile-time constants and
// expressions, and padding/repetition directives.
package cpu
