package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGSeeded(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestPRNGSignedRange(t *testing.T) {
	p := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := p.Signed()
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}
