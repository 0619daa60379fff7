package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  *float64
	}{
		{"100000", f(100000)},
		{"1234,56", f(1234.56)},
		{" 1 234,56 ", f(1234.56)},
		{"38.7223", f(38.7223)},
		{"-9,1393", f(-9.1393)},
		{"", nil},
		{"abc", nil},
		{"12,34,56", nil},
	}

	for _, tt := range tests {
		got := ParseDecimal(tt.input)
		if tt.want == nil {
			assert.Nil(t, got, "input %q", tt.input)
			continue
		}
		require.NotNil(t, got, "input %q", tt.input)
		assert.InDelta(t, *tt.want, *got, 1e-9, "input %q", tt.input)
	}
}

func f(v float64) *float64 { return &v }

func TestParseCount(t *testing.T) {
	assert.Equal(t, 3, ParseCount("3"))
	assert.Equal(t, 0, ParseCount(""))
	assert.Equal(t, 0, ParseCount("muitos"))
	assert.Equal(t, 0, ParseCount("-2"))
}

func TestParseID(t *testing.T) {
	id := ParseID(" 42 ")
	require.NotNil(t, id)
	assert.Equal(t, int64(42), *id)

	assert.Nil(t, ParseID(""))
	assert.Nil(t, ParseID("x"))
}
