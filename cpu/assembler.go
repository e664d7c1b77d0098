// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
)

// PLACEMENT_WINDOW is the memory window, in words, that a program with a
// random-placement header offset must fit inside.
const PLACEMENT_WINDOW = 1024

// Assembler is a two-pass assembler for the BattleASM CPU. A sizing pass
// counts the words the source will produce, then an emission pass encodes
// each line; the two counts must agree. The zero value is ready to use.
type Assembler struct {
	Verbose     bool // If set, verbosely logs the assembler actions.
	NoVariables bool // If set, symbolic variable operands are rejected.

	registers Registers
}

var exprRe = regexp.MustCompile(`\$\([^\$]*\)`)

// directiveKind selects the directive state transition for a '#' line.
type directiveKind int

const (
	DIR_NONE = directiveKind(iota) // unrecognized, ignored
	DIR_STARTS
	DIR_FREE
	DIR_REPEAT
)

type directive struct {
	kind  directiveKind
	n     int    // #starts target index, or #repeat capture count
	times int    // #repeat total emission count
	name  string // #free variable name
}

// parseDirective dispatches on the directive keyword. Both passes run this
// same parser, so their directive handling cannot drift apart.
func parseDirective(line string) (dir directive, err error) {
	fields := strings.Fields(line)

	switch strings.ToLower(fields[0]) {
	case "#starts":
		dir.kind = DIR_STARTS
		if len(fields) < 2 {
			err = ErrDirectiveSyntax("starts")
			return
		}
		dir.n, err = strconv.Atoi(fields[1])
		if err != nil || dir.n < 0 || dir.n >= 1<<16 {
			err = ErrDirectiveSyntax("starts")
			return
		}
	case "#free":
		dir.kind = DIR_FREE
		if len(fields) < 2 {
			err = ErrDirectiveSyntax("free")
			return
		}
		dir.name = fields[1]
	case "#repeat":
		dir.kind = DIR_REPEAT
		if len(fields) < 3 {
			err = ErrDirectiveSyntax("repeat")
			return
		}
		dir.n, err = strconv.Atoi(fields[1])
		if err == nil {
			dir.times, err = strconv.Atoi(fields[2])
		}
		if err != nil || dir.n < 1 || dir.n >= 1<<16 || dir.times < 1 || dir.times >= 1<<16 {
			err = ErrDirectiveSyntax("repeat")
			return
		}
	default:
		// Unrecognized directives are ignored; the directive marker is
		// shared with the compile-time constants.
	}

	return
}

// repeatState is the capture buffer of an active #repeat directive.
type repeatState struct {
	active bool
	quota  int // instructions to capture
	times  int // total emissions of the captured block
	words  []Word
}

// countWords is the sizing pass: it runs the directive state machine in dry
// mode, tracking only the word count the emission pass will produce. The
// repeat capture is tracked as a remaining quota so that directives illegal
// inside a capture fail here, on the same line the emission pass would.
func countWords(lines []string) (size int, lineno int, err error) {
	capturing := 0 // words left to capture for an open #repeat

	for n := 1; n < len(lines); n++ {
		line := lines[n]
		lineno = n + 1

		if strings.HasPrefix(line, "#") {
			var dir directive
			dir, err = parseDirective(line)
			if err != nil {
				return
			}
			switch dir.kind {
			case DIR_STARTS:
				if capturing > 0 {
					err = ErrRepeatStarts
					return
				}
				size = dir.n
			case DIR_REPEAT:
				if capturing > 0 {
					err = ErrRepeatNesting
					return
				}
				capturing = dir.n
				size += dir.n * (dir.times - 1)
			}
			continue
		}

		if len(lineTokens(line)) > 0 {
			size++
			if capturing > 0 {
				capturing--
			}
		}
	}

	return
}

// parseHeader parses the first source line: `name offset`. A negative
// offset requests random placement.
func parseHeader(line string) (name string, offset int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		err = ErrHeaderSyntax
		return
	}
	name = fields[0]
	offset, err = strconv.Atoi(fields[1])
	if err != nil {
		err = ErrHeaderSyntax
	}
	return
}

// Assemble assembles an input stream into a Program.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(line), Err: err}
		}
	}()

	scanner := bufio.NewScanner(input)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		// The failure is on the line the scanner could not finish.
		lineno, line = len(lines)+1, ""
		return
	}

	asm.registers.NoVariables = asm.NoVariables
	asm.registers.Reset()

	lineno = 1
	if len(lines) == 0 {
		err = ErrHeaderSyntax
		return
	}

	line = lines[0]
	name, offset, err := parseHeader(line)
	if err != nil {
		return
	}

	size, sizeLine, err := countWords(lines)
	if err != nil {
		lineno, line = sizeLine, lines[sizeLine-1]
		return
	}
	if size >= 1<<16 {
		err = ErrProgramLimit(size)
		return
	}

	prog = &Program{Name: name, Offset: offset, Size: size}

	var rep repeatState
	num := 0 // current instruction index

	for n := 1; n < len(lines); n++ {
		lineno = n + 1
		line = lines[n]

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if strings.HasPrefix(line, "#") {
			var dir directive
			dir, err = parseDirective(line)
			if err != nil {
				return
			}

			switch dir.kind {
			case DIR_STARTS:
				if rep.active {
					err = ErrRepeatStarts
					return
				}
				if dir.n < num {
					err = ErrStartsBack{Current: num, Wanted: dir.n}
					return
				}
				for ; num < dir.n; num++ {
					prog.Code = append(prog.Code, Instruction{LineNo: lineno, Index: num, Word: FILLER})
				}
			case DIR_FREE:
				err = asm.registers.Free(dir.name)
				if err != nil {
					return
				}
			case DIR_REPEAT:
				if rep.active {
					err = ErrRepeatNesting
					return
				}
				rep = repeatState{active: true, quota: dir.n, times: dir.times}
			}

			continue
		}

		var word Word
		var emitted bool
		word, emitted, err = asm.encodeLine(line, size, num)
		if err != nil {
			return
		}
		if !emitted {
			continue
		}

		prog.Code = append(prog.Code, Instruction{LineNo: lineno, Index: num, Source: strings.TrimSpace(line), Word: word})
		num++

		if rep.active {
			rep.words = append(rep.words, word)
			if len(rep.words) == rep.quota {
				// Quota reached: replay the captured block verbatim.
				for t := 1; t < rep.times; t++ {
					for _, w := range rep.words {
						prog.Code = append(prog.Code, Instruction{LineNo: lineno, Index: num, Word: w})
						num++
					}
				}
				rep = repeatState{}
			}
		}
	}

	if rep.active {
		err = ErrRepeatLonely
		return
	}

	// The two passes interpret directives through the same machine; a
	// divergence here is a defect, not a source error.
	if num != size {
		err = ErrSizeCount{Counted: size, Emitted: num}
		return
	}

	if prog.Offset < 0 {
		if size >= PLACEMENT_WINDOW {
			err = ErrProgramSize(size)
			return
		}
		prog.Offset = rand.IntN(PLACEMENT_WINDOW - size)
	}

	for reg, name := range asm.registers.Bindings() {
		prog.Variables = append(prog.Variables, Variable{Register: reg, Name: name})
	}

	return
}

// encodeLine resolves one source line into a single instruction word.
// A blank or comment-only line reports emitted == false; callers must not
// advance the instruction index for it.
func (asm *Assembler) encodeLine(line string, size, num int) (word Word, emitted bool, err error) {
	line = cutComment(line)

	// Do $() evaluations
	line = exprRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := evalExpr(str[2:len(str)-1], size, num)
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	tokens := lineTokens(line)
	if len(tokens) == 0 {
		return
	}

	op, ok := opMap[strings.ToLower(tokens[0])]
	if !ok {
		err = ErrUnknownOp(tokens[0])
		return
	}

	word = MakeWord(op)

	arity := op.Arity()
	expect := arity.Operands()

	for ind, token := range tokens[1:] {
		if ind >= expect {
			err = ErrParamCount{Expected: expect, Extra: true}
			return
		}

		switch {
		case arity == ARITY_IMM16:
			var value int
			value, err = resolveValue(token, size, num)
			if err != nil {
				return
			}
			if value < 0 || value >= 1<<16 {
				err = ErrValueRange{Token: token, Value: value, Bits: 16}
				return
			}
			word |= Word(value)

		case arity == ARITY_REG_IMM6 && ind == 1:
			var value int
			value, err = resolveValue(token, size, num)
			if err != nil {
				return
			}
			if value < 0 || value >= 1<<6 {
				err = ErrValueRange{Token: token, Value: value, Bits: 6}
				return
			}
			word |= Word(value)

		default:
			var reg uint16
			reg, err = asm.registers.Lookup(token)
			if err != nil {
				return
			}
			word |= Word(reg) << ((1 - ind) * 5)
		}
	}

	if len(tokens)-1 < expect {
		err = ErrParamCount{Expected: expect}
		return
	}

	emitted = true
	return
}

// cutComment cuts the line at the first token beginning with the comment
// marker.
func cutComment(line string) string {
	start := true
	for n := 0; n < len(line); n++ {
		if start && line[n] == ';' {
			return line[:n]
		}
		start = isDelimiter(rune(line[n]))
	}
	return line
}

// lineTokens splits a source line into tokens, honoring the comment marker.
func lineTokens(line string) []string {
	return strings.FieldsFunc(cutComment(line), isDelimiter)
}

func isDelimiter(r rune) bool {
	switch r {
	case ' ', ',', '\t', '\r':
		return true
	}
	return false
}
