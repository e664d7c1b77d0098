package cpu

import (
	"strconv"
	"strings"
)

// parseNumber parses a numeric literal token. Three forms are recognized:
// binary with a 'b' prefix (where '.' separators are ignored), hexadecimal
// with an 'x' prefix, and signed decimal. The value is range-checked by the
// caller against the field width it is destined for.
func parseNumber(token string) (value int, err error) {
	var v64 int64

	switch {
	case strings.HasPrefix(token, "b"):
		digits := strings.ReplaceAll(token[1:], ".", "")
		if len(digits) == 0 {
			// A lone prefix is the zero-digit literal.
			return
		}
		if strings.ContainsAny(digits, "+-") {
			err = ErrParseNumber(token)
			return
		}
		v64, err = strconv.ParseInt(digits, 2, 64)
	case strings.HasPrefix(token, "x"):
		v64, err = strconv.ParseInt(token[1:], 16, 64)
	default:
		v64, err = strconv.ParseInt(token, 10, 64)
	}

	if err != nil {
		err = ErrParseNumber(token)
		return
	}

	value = int(v64)
	return
}
