package chip8

// Display dimensions in logical pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome 64x32 pixel buffer. Sprites are drawn by XOR
// with wraparound on both axes; the rendering collaborator reads the buffer
// and scales it, the core does no scaling of its own.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]bool{}
}

// Pixel reports whether the pixel at (x, y) is on.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[y*DisplayWidth+x]
}

// Draw XORs an 8 pixel wide sprite onto the buffer at (x, y), one byte per
// row, most significant bit leftmost. Coordinates wrap around the screen
// edges. It reports whether any lit pixel was turned off, the VF collision
// output of the DRW instruction.
func (d *Display) Draw(x, y uint8, sprite []byte) bool {
	collision := false

	for row, b := range sprite {
		py := (int(y) + row) % DisplayHeight
		for bit := 0; bit < 8; bit++ {
			if b>>(7-bit)&1 == 0 {
				continue
			}
			px := (int(x) + bit) % DisplayWidth
			idx := py*DisplayWidth + px
			if d.pixels[idx] {
				collision = true
			}
			d.pixels[idx] = !d.pixels[idx]
		}
	}

	return collision
}
