package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func countLit(d *Display) int {
	n := 0
	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if d.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

func TestDisplayDraw(t *testing.T) {
	var d Display

	collision := d.Draw(0, 0, []byte{0b10100000})
	assert.False(t, collision)
	assert.True(t, d.Pixel(0, 0))
	assert.False(t, d.Pixel(1, 0))
	assert.True(t, d.Pixel(2, 0))
	assert.Equal(t, 2, countLit(&d))
}

// drawing the same sprite twice at the same location erases it and reports
// a collision on the second draw
func TestDisplayDrawCollision(t *testing.T) {
	var d Display
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

	collision := d.Draw(4, 4, sprite)
	assert.False(t, collision)
	assert.True(t, countLit(&d) > 0)

	collision = d.Draw(4, 4, sprite)
	assert.True(t, collision)
	assert.Equal(t, 0, countLit(&d))
}

func TestDisplayDrawWraps(t *testing.T) {
	var d Display

	d.Draw(DisplayWidth-1, DisplayHeight-1, []byte{0b11000000, 0b10000000})

	assert.True(t, d.Pixel(DisplayWidth-1, DisplayHeight-1))
	assert.True(t, d.Pixel(0, DisplayHeight-1)) // wrapped horizontally
	assert.True(t, d.Pixel(DisplayWidth-1, 0))  // wrapped vertically
}

func TestDisplayClear(t *testing.T) {
	var d Display

	d.Draw(10, 10, []byte{0xFF})
	d.Clear()
	assert.Equal(t, 0, countLit(&d))
}
