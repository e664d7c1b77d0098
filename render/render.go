// Package render writes an assembled program as C source text: the word
// sequence as an array declaration, followed by its size and base offset.
package render

import (
	"fmt"
	"io"

	"github.com/ezrec/basm/cpu"
)

// Renderer controls the textual form of the output. It never changes the
// assembled words, only how they are written.
type Renderer struct {
	Comments bool // annotate each word with its source line
	Decimal  bool // plain decimal integers instead of binary literals
	VarTable bool // append the final variable bindings
}

// Render writes the program to out.
func (r *Renderer) Render(out io.Writer, prog *cpu.Program) (err error) {
	_, err = fmt.Fprintf(out, "static uint16_t %s_mem[] = {\n", prog.Name)
	if err != nil {
		return
	}

	for _, inst := range prog.Instructions() {
		err = r.renderWord(out, inst)
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintf(out, "\n};\nstatic uint16_t %s_size = %d;\nstatic uint16_t %s_offset = %d;\n",
		prog.Name, prog.Size, prog.Name, prog.Offset)
	if err != nil {
		return
	}

	if r.VarTable {
		_, err = fmt.Fprintln(out)
		if err != nil {
			return
		}
		for _, v := range prog.Variables {
			_, err = fmt.Fprintf(out, "// %s: r%d\n", v.Name, v.Register)
			if err != nil {
				return
			}
		}
	}

	return
}

func (r *Renderer) renderWord(out io.Writer, inst cpu.Instruction) (err error) {
	var literal string
	if r.Decimal {
		literal = fmt.Sprintf("%d", uint16(inst.Word))
	} else {
		literal = fmt.Sprintf("0b%016b", uint16(inst.Word))
	}

	if r.Comments && len(inst.Source) > 0 {
		_, err = fmt.Fprintf(out, "\t%s, // %s\n", literal, inst.Source)
	} else {
		_, err = fmt.Fprintf(out, "\t%s,\n", literal)
	}

	return
}
