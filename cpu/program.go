package cpu

import (
	"iter"
)

// Variable is a symbolic name left bound to a register when assembly finished.
type Variable struct {
	Register int
	Name     string
}

// Instruction is one assembled word with its source location.
type Instruction struct {
	LineNo int    // 1-based source line that produced the word
	Index  int    // word index in the program
	Source string // trimmed source text; empty for filler and replayed words
	Word   Word
}

// Program is the result of one assembly run.
type Program struct {
	Name      string // program name from the header line
	Offset    int    // resolved base memory offset
	Size      int    // total word count, fixed by the sizing pass
	Code      []Instruction
	Variables []Variable // final variable bindings, in slot order
}

// Words returns the assembled word sequence.
func (prog *Program) Words() (words []Word) {
	words = make([]Word, 0, len(prog.Code))
	for _, inst := range prog.Code {
		words = append(words, inst.Word)
	}
	return
}

// Instructions iterates the assembled instructions in word order.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(index int, inst Instruction) bool) {
		for _, inst := range prog.Code {
			if !yield(inst.Index, inst) {
				return
			}
		}
	}
}
