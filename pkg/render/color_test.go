package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, got)
}

func TestWithAlpha(t *testing.T) {
	got := WithAlpha(color.RGBA{1, 2, 3, 255}, 128)
	assert.Equal(t, color.RGBA{1, 2, 3, 128}, got)
}
