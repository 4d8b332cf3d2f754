// Package ili9163c controls an ILI9163C colour TFT display via SPI.
//
// The ILI9163C is a 262K colour controller with a 132x162 pixel memory. This
// driver runs it in 16-bit 5-6-5 mode; the common panels are 128x128.
//
// See the examples for how to use this package.
package ili9163c

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ili9163c/rgb565"
)

// Controller memory size, the upper bound of any panel.
const (
	maxWidth  = 132
	maxHeight = 162
)

// Opts is the configuration for the ILI9163C display.
type Opts struct {
	// Panel dimensions in pixels
	W int // Width (default: 128, must be ≤132)
	H int // Height (default: 128, must be ≤162)

	// SPI clock (default: 10MHz)
	Frequency physic.Frequency

	// Delay blocks for the given duration during initialization.
	// Defaults to time.Sleep. The panel needs the full duration, do not
	// replace it with a no-op on real hardware.
	Delay func(time.Duration)
}

// Dev is the device handle for the ILI9163C display.
//
// Dev is not safe for concurrent use. Callers sharing a display between
// goroutines must serialize all calls.
type Dev struct {
	// Communication
	c  conn.Conn   // SPI connection
	dc gpio.PinOut // Data/Command select, low for command
	cs gpio.PinOut // Chip enable, active low

	delay func(time.Duration)
	rect  image.Rectangle
}

var _ display.Drawer = (*Dev)(nil)

// NewSPI creates a new ILI9163C device connected via SPI and runs the power-up
// sequence.
//
// The SPI port is configured for Mode0, 8-bit transfers. dc selects between
// command and data bytes; cs is driven around every transfer, so the port's own
// chip select should be left unconnected or tied to the same line.
//
// opts can be nil to use defaults (128x128 panel).
//
// The controller cannot be read back over this bus, so a nil error only means
// every byte was transferred, not that the panel responded.
func NewSPI(p spi.Port, dc, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	// Apply defaults
	o := *opts
	if o.W == 0 {
		o.W = 128
	}
	if o.H == 0 {
		o.H = 128
	}
	if o.Frequency == 0 {
		o.Frequency = 10 * physic.MegaHertz
	}
	if o.Delay == nil {
		o.Delay = time.Sleep
	}

	// Validate options
	if o.W < 0 || o.W > maxWidth {
		return nil, errors.New("ili9163c: width must be between 1 and 132")
	}
	if o.H < 0 || o.H > maxHeight {
		return nil, errors.New("ili9163c: height must be between 1 and 162")
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("ili9163c: dc pin is required")
	}
	if cs == nil || cs == gpio.INVALID {
		return nil, errors.New("ili9163c: cs pin is required")
	}

	// Establish SPI connection
	c, err := p.Connect(o.Frequency, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ili9163c: %w", err)
	}

	// Create device
	d := &Dev{
		c:     c,
		dc:    dc,
		cs:    cs,
		delay: o.Delay,
		rect:  image.Rect(0, 0, o.W, o.H),
	}
	// Initialize display
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init brings the controller from reset to 16-bit drawing mode.
//
// Nothing is verified; the controller offers no read path on this bus.
func (d *Dev) init() error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("ili9163c: failed to assert CS: %w", err)
	}

	// Reset, then wait for the registers to settle
	if err := d.writeCommand(SoftwareReset); err != nil {
		return err
	}
	d.delay(500 * time.Millisecond)

	// Wake from sleep
	if err := d.writeCommand(SleepOut); err != nil {
		return err
	}
	d.delay(5 * time.Millisecond)

	// 16-bit colour, gamma curve 3 with adjustment enabled
	if err := d.SetPixelFormat(Bpp16); err != nil {
		return err
	}
	if err := d.SetGammaCurve(GammaCurve3); err != nil {
		return err
	}
	if err := d.SetGammaAdjustment(true); err != nil {
		return err
	}
	if err := d.writeCommand(NormalModeOn); err != nil {
		return err
	}
	// Display function control
	return d.sendCommand(DisplayFunctionSet5, 0xFF, 0x00)
}

// SendCommand sends cmd followed by its parameter bytes.
//
// The driver does not track controller modes, so commands sent this way are
// never reflected in Dev's behaviour.
func (d *Dev) SendCommand(cmd Command, params ...byte) error {
	return d.sendCommand(cmd, params...)
}

// SetPixelFormat selects the interface pixel format.
//
// Drawing methods always stream 16-bit words; any format other than Bpp16
// makes their output undefined.
func (d *Dev) SetPixelFormat(f PixelFormat) error {
	return d.sendCommand(InterfacePixelFormat, byte(f))
}

// SetGammaCurve selects one of the four predefined gamma curves.
func (d *Dev) SetGammaCurve(g GammaCurve) error {
	return d.sendCommand(GammaSet, byte(g))
}

// SetGammaAdjustment enables or disables the gamma correction tables.
func (d *Dev) SetGammaAdjustment(enable bool) error {
	var b byte
	if enable {
		b = 1
	}
	return d.sendCommand(GammaAdjustmentSelect, b)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw streams src onto the display.
//
// dst is clipped to the display; src is sampled starting at sp, as with
// draw.Draw. Nothing is buffered: the clipped region is written once, in a
// single window.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	// Clip to the panel and shift sp by the clipped amount
	r := dst.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))

	// Convert unless src is already RGB565 and covers the region

	img, ok := src.(*rgb565.Image)
	if !ok || !r.Sub(r.Min).Add(sp).In(img.Rect) {
		img = rgb565.NewImage(r)
		draw.Draw(img, r, src, sp, draw.Src)
		sp = r.Min
	}

	// Stream row by row into a single window
	if err := d.SetWindow(r); err != nil {
		return err
	}
	if err := d.writeCommand(MemoryWrite); err != nil {
		return err
	}
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			if err := d.writeData16(uint16(img.RGB565At(sp.X+x, sp.Y+y))); err != nil {
				return err
			}
		}
	}
	return nil
}

// Show turns the panel on or off. Memory content is preserved.
func (d *Dev) Show(on bool) error {
	if on {
		return d.writeCommand(DisplayOn)
	}
	return d.writeCommand(DisplayOff)
}

// Invert inverts the colour of every pixel.
func (d *Dev) Invert(invert bool) error {
	if invert {
		return d.writeCommand(DisplayInversionOn)
	}
	return d.writeCommand(DisplayInversionOff)
}

// SetSleep enters or leaves the low power sleep mode.
//
// Leaving sleep mode requires 5ms before the next command; SetSleep waits for
// it.
func (d *Dev) SetSleep(sleep bool) error {
	if sleep {
		return d.writeCommand(SleepIn)
	}
	if err := d.writeCommand(SleepOut); err != nil {
		return err
	}
	d.delay(5 * time.Millisecond)
	return nil
}

// Halt turns the panel off.
//
// The driver keeps no mode state; calling Show(true) turns it back on.
func (d *Dev) Halt() error {
	return d.Show(false)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9163c.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
