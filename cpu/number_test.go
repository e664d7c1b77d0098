package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		token string
		value int
		ok    bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-1", -1, true},
		{"+7", 7, true},
		{"65535", 65535, true},
		{"x1f", 31, true},
		{"xFF", 255, true},
		{"b1010", 10, true},
		{"b1010.1010", 170, true},
		{"b....", 0, true},
		{"b", 0, true},
		{"", 0, false},
		{"12a", 0, false},
		{"x", 0, false},
		{"xg", 0, false},
		{"b12", 0, false},
		{"b-1", 0, false},
		{"1.5", 0, false},
	}

	for _, entry := range table {
		value, err := parseNumber(entry.token)
		if entry.ok {
			assert.NoError(err, entry.token)
			assert.Equal(entry.value, value, entry.token)
		} else {
			var en ErrParseNumber
			assert.ErrorAs(err, &en, entry.token)
		}
	}
}
