package cpu

import (
	"iter"
	"strings"
)

const (
	REGISTER_COUNT = 32
	REG_SP         = 30 // stack pointer alias
	REG_PC         = 31 // program counter alias

	// Slots assignable to symbolic variables. Slot 0 is the LDI
	// accumulator; sp and pc are pre-bound and never freed.
	VAR_FIRST = 1
	VAR_LAST  = 29
)

// Registers resolves operand tokens to register indexes, allocating slots
// for symbolic variable names from the free pool. The zero value must be
// Reset before use.
type Registers struct {
	NoVariables bool // reject symbolic variable operands

	name [REGISTER_COUNT]string
}

// Reset clears all variable bindings and re-binds the fixed aliases.
func (r *Registers) Reset() {
	clear(r.name[:])
	r.name[0] = "r0"
	r.name[REG_SP] = "sp"
	r.name[REG_PC] = "pc"
}

// Lookup resolves an operand token to a register index. An rN token
// addresses a physical slot directly; any other token is a symbolic
// variable name, bound to the lowest free slot on first use.
// Names are case-insensitive.
func (r *Registers) Lookup(token string) (reg uint16, err error) {
	if len(token) == 0 {
		err = ErrUnknownRegister(token)
		return
	}

	if num, ok := directRegister(token); ok {
		if num >= REGISTER_COUNT {
			err = ErrUnknownRegister(token)
			return
		}
		reg = num
		return
	}

	symbol := strings.ToLower(token)

	for n, name := range r.name {
		if name == symbol {
			reg = uint16(n)
			return
		}
	}

	if r.NoVariables {
		err = ErrUnknownRegister(token)
		return
	}

	// A name shaped like a literal or constant would be ambiguous.
	if symbol[0] == '#' || (symbol[0] >= '0' && symbol[0] <= '9') {
		err = ErrVariableName(token)
		return
	}

	for n := VAR_FIRST; n <= VAR_LAST; n++ {
		if len(r.name[n]) == 0 {
			r.name[n] = symbol
			reg = uint16(n)
			return
		}
	}

	err = ErrVariableLimit(token)
	return
}

// Free releases a variable binding, returning its slot to the pool.
func (r *Registers) Free(token string) (err error) {
	symbol := strings.ToLower(token)

	for n := VAR_FIRST; n <= VAR_LAST; n++ {
		if r.name[n] == symbol {
			r.name[n] = ""
			return
		}
	}

	return ErrVariableUnbound(token)
}

// Bindings iterates the active variable bindings in slot order.
func (r *Registers) Bindings() iter.Seq2[int, string] {
	return func(yield func(reg int, name string) bool) {
		for n := VAR_FIRST; n <= VAR_LAST; n++ {
			if len(r.name[n]) == 0 {
				continue
			}
			if !yield(n, r.name[n]) {
				return
			}
		}
	}
}

// directRegister matches the physical register pattern: 'r' or 'R'
// followed by one or two decimal digits.
func directRegister(token string) (reg uint16, ok bool) {
	if len(token) < 2 || len(token) > 3 {
		return
	}
	if token[0] != 'r' && token[0] != 'R' {
		return
	}
	for _, c := range []byte(token[1:]) {
		if c < '0' || c > '9' {
			return
		}
		reg = reg*10 + uint16(c-'0')
	}
	ok = true
	return
}
