package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewColorClampsChannels(t *testing.T) {
	c := NewColor(300, -20, 128)
	assert.Equal(t, Color{R: 255, G: 0, B: 128}, c)
}

func TestColorHexRoundTrip(t *testing.T) {
	c := ColorFromHex(0x333355)
	assert.Equal(t, Color{R: 0x33, G: 0x33, B: 0x55}, c)
	assert.Equal(t, uint32(0x333355), c.Hex())

	// High bits beyond the low 24 are ignored on unpack.
	assert.Equal(t, Color{R: 0xFF, G: 0x00, B: 0x01}, ColorFromHex(0xAAFF0001))
}

func TestColorLerp(t *testing.T) {
	black := NewColor(0, 0, 0)
	white := NewColor(255, 255, 255)

	assert.Equal(t, black, black.Lerp(white, 0))
	assert.Equal(t, white, black.Lerp(white, 1))

	mid := black.Lerp(white, 0.5)
	assert.Equal(t, Color{R: 127, G: 127, B: 127}, mid)

	// The factor clamps, so out-of-range values hit the endpoints.
	assert.Equal(t, black, black.Lerp(white, -3))
	assert.Equal(t, white, black.Lerp(white, 2))
}

func TestColorScale(t *testing.T) {
	c := NewColor(255, 100, 40)

	// The conversion truncates toward zero.
	assert.Equal(t, Color{R: 127, G: 50, B: 20}, c.Scale(0.5))

	assert.Equal(t, c, c.Scale(1))
	assert.Equal(t, Color{R: 255, G: 200, B: 80}, c.Scale(2))
	assert.Equal(t, Color{R: 0, G: 0, B: 0}, c.Scale(-1))
}
