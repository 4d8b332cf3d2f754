// Package rgb565 provides the 16-bit 5-6-5 colour format of the ILI9163C.
//
// Red occupies the top 5 bits, green the middle 6 and blue the low 5.
// Image stores pixels most significant byte first, the order the controller
// expects on the wire.
package rgb565

import (
	"image"
	"image/color"
)

// Color is a packed 5-6-5 pixel value.
type Color uint16

// Common colours.
const (
	Black Color = 0x0000
	White Color = 0xFFFF
	Red   Color = 0xF800
	Green Color = 0x07E0
	Blue  Color = 0x001F
)

// RGB packs 8-bit channels into a Color.
// The low bits of each channel are dropped; no rounding is applied.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b&0xF8)>>3)
}

// Components returns the 5-bit red, 6-bit green and 5-bit blue fields.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 11), uint8(c>>5) & 0x3F, uint8(c) & 0x1F
}

// RGBA implements color.Color.
// Each field is widened by replicating its high bits into the low bits so
// that full intensity maps to 0xFFFF.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5, g6, b5 := c.Components()
	r8 := uint32(r5<<3 | r5>>2)
	g8 := uint32(g6<<2 | g6>>4)
	b8 := uint32(b5<<3 | b5>>2)
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// toRGB565 converts any color.Color to Color.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to Color.
var Model = color.ModelFunc(toRGB565)

// Image is an in-memory image of Color pixels, 2 bytes per pixel, most
// significant byte first.
type Image struct {
	Pix    []byte          // Pixel data
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage returns a new Image with the given bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

// ColorModel returns Model.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the Color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Black
	}
	i := p.PixOffset(x, y)
	return Color(p.Pix[i])<<8 | Color(p.Pix[i+1])
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(Color))
}

// SetRGB565 sets the pixel at (x, y) without colour conversion.
func (p *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = byte(c >> 8)
	p.Pix[i+1] = byte(c)
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
