// Package frontend renders the machine's display buffer in a window and
// feeds keyboard state into its keypad, using ebiten as the windowing
// layer. Its update loop is also the host pacing loop: timers tick at the
// fixed 60Hz frame rate while machine steps run at the configured clock
// rate, decoupled through a fractional step accumulator.
package frontend

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/halfhorst/yac8/internal/chip8"
)

// scaleFactor is the window scaling of the logical 64x32 display.
const scaleFactor = 10

// keyMap maps the upper left keyboard block to the hexpad layout:
//
//	keyboard      hexpad
//	1 2 3 4   |   1 2 3 C
//	Q W E R   |   4 5 6 D
//	A S D F   |   7 8 9 E
//	Z X C V   |   A 0 B F
var keyMap = map[ebiten.Key]uint8{
	ebiten.Key1: 0x1, ebiten.Key2: 0x2, ebiten.Key3: 0x3, ebiten.Key4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

// stepClock accumulates machine steps owed per frame so that any clock rate
// is honored exactly over time, not just multiples of the frame rate.
type stepClock struct {
	hz      float64
	pending float64
}

// steps returns the number of machine steps to run this frame.
func (c *stepClock) steps() int {
	c.pending += c.hz / chip8.TimerRateHz
	n := int(c.pending)
	c.pending -= float64(n)
	return n
}

// Frontend drives a machine from the ebiten game loop.
type Frontend struct {
	ctx     context.Context
	machine *chip8.Machine
	clock   stepClock

	img   *ebiten.Image
	frame []byte // RGBA scratch buffer for the display image
}

// New returns a frontend driving the given machine at the given clock rate.
func New(ctx context.Context, machine *chip8.Machine, clockHz float64) *Frontend {
	return &Frontend{
		ctx:     ctx,
		machine: machine,
		clock:   stepClock{hz: clockHz},
		img:     ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight),
		frame:   make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4),
	}
}

// Update advances the machine by one frame: poll the keyboard into the
// keypad, tick the timers once and run the machine steps owed at the
// configured clock rate. A machine error aborts the game loop.
func (f *Frontend) Update() error {
	select {
	case <-f.ctx.Done():
		return ebiten.Termination
	default:
	}

	for key, pad := range keyMap {
		f.machine.SetKey(pad, ebiten.IsKeyPressed(key))
	}

	f.machine.TickTimers()

	for i := f.clock.steps(); i > 0; i-- {
		if err := f.machine.Step(); err != nil {
			return fmt.Errorf("machine halted: %w", err)
		}
	}
	return nil
}

// Draw renders the display buffer scaled into the window.
func (f *Frontend) Draw(screen *ebiten.Image) {
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			var v byte
			if f.machine.Display().Pixel(x, y) {
				v = 0xFF
			}
			i := (y*chip8.DisplayWidth + x) * 4
			f.frame[i] = v
			f.frame[i+1] = v
			f.frame[i+2] = v
			f.frame[i+3] = 0xFF
		}
	}
	f.img.WritePixels(f.frame)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleFactor, scaleFactor)
	screen.DrawImage(f.img, op)
}

// Layout fixes the window at the scaled display size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth * scaleFactor, chip8.DisplayHeight * scaleFactor
}

// Run opens the window and runs the game loop until the program ends or
// the machine halts with an error.
func (f *Frontend) Run(title string) error {
	ebiten.SetWindowSize(chip8.DisplayWidth*scaleFactor, chip8.DisplayHeight*scaleFactor)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(chip8.TimerRateHz)
	return ebiten.RunGame(f)
}
