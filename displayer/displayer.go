// Package displayer exposes an ILI9163C device as a tinygo.org/x/drivers
// Displayer, so the TinyGo graphics and font packages can draw on it.
//
// The ILI9163C driver has no frame buffer: SetPixel and FillRectangle go to
// the controller immediately and Display only reports errors.
package displayer

import (
	"image"
	"image/color"

	"periph.io/x/devices/v3/ili9163c/rgb565"
	"tinygo.org/x/drivers"
)

// Drawer is the part of *ili9163c.Dev used by Display.
type Drawer interface {
	Bounds() image.Rectangle
	DrawPixel(p image.Point, c rgb565.Color) error
	FillRect(r image.Rectangle, c rgb565.Color) error
}

// Display adapts a Drawer to drivers.Displayer.
type Display struct {
	d   Drawer
	err error
}

var _ drivers.Displayer = (*Display)(nil)

// New returns a Display drawing on d.
func New(d Drawer) *Display {
	return &Display{d: d}
}

// Size returns the panel size.
func (p *Display) Size() (x, y int16) {
	b := p.d.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel draws a single pixel. Pixels outside the panel are ignored.
//
// The first transfer error is kept and returned by the next Display call.
func (p *Display) SetPixel(x, y int16, c color.RGBA) {
	pt := image.Pt(int(x), int(y))
	if !pt.In(p.d.Bounds()) {
		return
	}
	if err := p.d.DrawPixel(pt, rgb565.RGB(c.R, c.G, c.B)); err != nil && p.err == nil {
		p.err = err
	}
}

// FillRectangle fills the part of the rectangle that lies on the panel. A
// non-positive width or height draws nothing.
func (p *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	// Built directly, image.Rect would mirror a negative size.
	r := image.Rectangle{
		Min: image.Pt(int(x), int(y)),
		Max: image.Pt(int(x)+int(width), int(y)+int(height)),
	}
	return p.d.FillRect(r.Intersect(p.d.Bounds()), rgb565.RGB(c.R, c.G, c.B))
}

// Display returns and clears the first error recorded by SetPixel.
func (p *Display) Display() error {
	err := p.err
	p.err = nil
	return err
}
