package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayAddress(t *testing.T) {
	p := &Property{
		Street:       "Rua das Flores 12",
		Parish:       "Cedofeita",
		Municipality: "Porto",
		District:     "Porto",
	}
	assert.Equal(t, "Rua das Flores 12, Cedofeita, Porto, Porto", p.DisplayAddress())
}

func TestDisplayAddressSkipsEmptyParts(t *testing.T) {
	p := &Property{Municipality: "Lisboa", District: "Lisboa"}
	assert.Equal(t, "Lisboa, Lisboa", p.DisplayAddress())

	assert.Equal(t, "", (&Property{}).DisplayAddress())
}
