package cpu

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// parseConstant resolves a compile-time constant token of the form
// #name[:change[:multiplier]], where change defaults to 0 and multiplier to 1.
// Recognized names (case-insensitive):
//
//	size    total program size in words
//	before  index of the current instruction
//	after   instructions remaining past the current one
//
// The resolved value is name*multiplier + change, letting source code express
// position- and size-relative literals without manual arithmetic.
func parseConstant(token string, size, num int) (value int, err error) {
	parts := strings.SplitN(token[1:], ":", 3)

	change := 0
	multiplier := 1
	if len(parts) > 1 && len(parts[1]) > 0 {
		change, err = strconv.Atoi(parts[1])
		if err != nil {
			err = ErrParseNumber(parts[1])
			return
		}
	}
	if len(parts) > 2 && len(parts[2]) > 0 {
		multiplier, err = strconv.Atoi(parts[2])
		if err != nil {
			err = ErrParseNumber(parts[2])
			return
		}
	}

	switch strings.ToLower(parts[0]) {
	case "size":
		value = size*multiplier + change
	case "before":
		value = num*multiplier + change
	case "after":
		value = (size-num-1)*multiplier + change
	default:
		err = ErrUnknownConstant(parts[0])
	}

	return
}

// resolveValue resolves an immediate operand: a compile-time constant if the
// token carries the constant marker, a plain numeric literal otherwise.
func resolveValue(token string, size, num int) (value int, err error) {
	if strings.HasPrefix(token, "#") {
		return parseConstant(token, size, num)
	}
	return parseNumber(token)
}

// evalExpr does compile-time $(...) evaluations. The same quantities the
// #-constants expose are predeclared as integers, so position arithmetic can
// be written as real expressions.
func evalExpr(expr string, size, num int) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"size":   starlark.MakeInt(size),
		"before": starlark.MakeInt(num),
		"after":  starlark.MakeInt(size - num - 1),
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}
