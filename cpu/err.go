package cpu

import (
	"errors"

	"github.com/ezrec/basm/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrHeaderSyntax  = errors.New(f("malformed header (expected: name offset)"))
	ErrRepeatNesting = errors.New(f("#repeat in #repeat prohibited"))
	ErrRepeatStarts  = errors.New(f("#starts in #repeat prohibited"))
	ErrRepeatLonely  = errors.New(f("#repeat capture still open at end of input"))
)

// ErrSyntax wraps any assembly error with the 1-based source line it occurred on.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrUnknownOp string

func (err ErrUnknownOp) Error() string {
	return f("unknown instruction '%v'", string(err))
}

type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("unknown register '%v'", string(err))
}

type ErrUnknownConstant string

func (err ErrUnknownConstant) Error() string {
	return f("unknown compile-time constant '%v'", string(err))
}

type ErrVariableName string

func (err ErrVariableName) Error() string {
	return f("invalid variable name '%v'", string(err))
}

type ErrVariableUnbound string

func (err ErrVariableUnbound) Error() string {
	return f("variable '%v' is not in use", string(err))
}

type ErrVariableLimit string

func (err ErrVariableLimit) Error() string {
	return f("too many variables: '%v'", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrParamCount reports an arity violation against the expected operand count.
type ErrParamCount struct {
	Expected int
	Extra    bool
}

func (err ErrParamCount) Error() string {
	if err.Extra {
		return f("too many parameters (%d expected)", err.Expected)
	}
	return f("too few parameters (%d expected)", err.Expected)
}

// ErrValueRange reports an immediate outside the field width of its operand.
type ErrValueRange struct {
	Token string
	Value int
	Bits  int
}

func (err ErrValueRange) Error() string {
	return f("number not in range [0, 2^%d): '%v' -> %d", err.Bits, err.Token, err.Value)
}

// ErrDirectiveSyntax reports a recognized directive with malformed parameters.
type ErrDirectiveSyntax string

func (err ErrDirectiveSyntax) Error() string {
	return f("malformed #%v directive", string(err))
}

// ErrStartsBack reports a #starts directive that targets an already-emitted slot.
type ErrStartsBack struct {
	Current int
	Wanted  int
}

func (err ErrStartsBack) Error() string {
	return f("#starts directive wants to go back (current instruction: %d, wanted instruction: %d)", err.Current, err.Wanted)
}

// ErrProgramSize reports a program too large for random placement.
type ErrProgramSize int

func (err ErrProgramSize) Error() string {
	return f("program of %d words does not fit the %d word placement window", int(err), PLACEMENT_WINDOW)
}

// ErrProgramLimit reports a program too large for the 16-bit address space.
type ErrProgramLimit int

func (err ErrProgramLimit) Error() string {
	return f("program of %d words exceeds the 16-bit address space", int(err))
}

// ErrSizeCount reports a divergence between the sizing and emission passes.
// It is an internal consistency failure, never a source error.
type ErrSizeCount struct {
	Counted int
	Emitted int
}

func (err ErrSizeCount) Error() string {
	return f("internal: sizing pass counted %d words but %d were emitted", err.Counted, err.Emitted)
}
