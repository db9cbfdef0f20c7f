package utils

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestColourValidate(t *testing.T) {
	assert.True(t, ColourValidate("#1a1a1aff"))
	assert.True(t, ColourValidate("#FFFFFF00"))
	assert.False(t, ColourValidate("#fff"))
	assert.False(t, ColourValidate("1a1a1aff"))
	assert.False(t, ColourValidate("#1a1a1aff00"))
	assert.False(t, ColourValidate("#gggggggg"))
}

func TestColourParse(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, ColourParse("#1a2b3cff"))

	r, g, b, a := ColourFloats(color.RGBA{R: 255, G: 0, B: 51, A: 255})
	assert.InDelta(t, 1.0, r, 1e-6)
	assert.InDelta(t, 0.0, g, 1e-6)
	assert.InDelta(t, 0.2, b, 1e-6)
	assert.InDelta(t, 1.0, a, 1e-6)
}

func TestDeltaTimer(t *testing.T) {
	var d DeltaTimer
	assert.Equal(t, time.Duration(0), d.Next(), "first call has no previous frame")

	d.Set(time.Now().Add(-time.Second))
	assert.GreaterOrEqual(t, d.Next(), time.Second)
}

func TestSeconds(t *testing.T) {
	assert.InDelta(t, 0.016, Seconds(16*time.Millisecond), 1e-6)
}
