// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/basm/cpu"
	"github.com/ezrec/basm/render"
)

func main() {
	var nocomments bool
	var vartable bool
	var decimal bool
	var obfuscate bool
	var novars bool
	var verbose bool
	var output string

	flag.BoolVar(&nocomments, "nocomments", false, "Omit source comments from the output")
	flag.BoolVar(&vartable, "vartable", false, "Append the variable table to the output")
	flag.BoolVar(&decimal, "decimal", false, "Write words as decimal instead of binary literals")
	flag.BoolVar(&obfuscate, "obfuscate", false, "Shorthand for -nocomments -decimal")
	flag.BoolVar(&novars, "novars", false, "Reject symbolic variable operands")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&output, "o", "-", "Output file")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected exactly one input file, got: %v", os.Args[0], flag.Args())
	}
	input := flag.Arg(0)

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose, NoVariables: novars}
	prog, err := asm.Assemble(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	r := &render.Renderer{
		Comments: !nocomments && !obfuscate,
		Decimal:  decimal || obfuscate,
		VarTable: vartable,
	}
	err = r.Render(ouf, prog)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
