package ili9163c

import (
	"image"

	"periph.io/x/devices/v3/ili9163c/rgb565"
)

// SetWindow programs the controller's write window to r.
//
// The window covers r.Min up to and including r.Max-1 on both axes. The
// window lives only in the controller, it is not cached by the driver.
func (d *Dev) SetWindow(r image.Rectangle) error {
	return d.setWindow(r.Min, r.Max.Sub(image.Pt(1, 1)))
}

// setWindow programs the column and page ranges, both ends inclusive.
func (d *Dev) setWindow(start, end image.Point) error {
	if err := d.writeCommand(ColumnAddressSet); err != nil {
		return err
	}
	if err := d.writeData16(uint16(start.X)); err != nil {
		return err
	}
	if err := d.writeData16(uint16(end.X)); err != nil {
		return err
	}
	if err := d.writeCommand(PageAddressSet); err != nil {
		return err
	}
	if err := d.writeData16(uint16(start.Y)); err != nil {
		return err
	}
	return d.writeData16(uint16(end.Y))
}

// writePixels streams n copies of c into the current window.
func (d *Dev) writePixels(c rgb565.Color, n int) error {
	for i := 0; i < n; i++ {
		if err := d.writeData16(uint16(c)); err != nil {
			return err
		}
	}
	return nil
}

// FillRect fills r with c.
//
// Every other drawing primitive is built on FillRect. An empty rectangle
// sends nothing.
func (d *Dev) FillRect(r image.Rectangle, c rgb565.Color) error {
	if r.Empty() {
		return nil
	}
	if err := d.SetWindow(r); err != nil {
		return err
	}
	// Pixel words follow the write command directly
	if err := d.writeCommand(MemoryWrite); err != nil {
		return err
	}
	return d.writePixels(c, r.Dx()*r.Dy())
}

// DrawPixel sets the pixel at p.
func (d *Dev) DrawPixel(p image.Point, c rgb565.Color) error {
	return d.FillRect(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}, c)
}

// DrawHLine draws length pixels to the right of p, p included.
func (d *Dev) DrawHLine(p image.Point, length int, c rgb565.Color) error {
	return d.FillRect(image.Rectangle{Min: p, Max: p.Add(image.Pt(length, 1))}, c)
}

// DrawVLine draws length pixels below p, p included.
func (d *Dev) DrawVLine(p image.Point, length int, c rgb565.Color) error {
	return d.FillRect(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, length))}, c)
}

// DrawRect draws the outline of r.
//
// A rectangle one pixel high or wide is drawn as a single line.
func (d *Dev) DrawRect(r image.Rectangle, c rgb565.Color) error {
	if r.Empty() {
		return nil
	}
	w, h := r.Dx(), r.Dy()
	// Degenerate outlines collapse to one line
	switch {
	case h == 1:
		return d.DrawHLine(r.Min, w, c)
	case w == 1:
		return d.DrawVLine(r.Min, h, c)
	}
	// Top, left, bottom, right
	if err := d.DrawHLine(r.Min, w, c); err != nil {
		return err
	}
	if err := d.DrawVLine(r.Min, h, c); err != nil {
		return err
	}
	if err := d.DrawHLine(image.Pt(r.Min.X, r.Max.Y-1), w, c); err != nil {
		return err
	}
	return d.DrawVLine(image.Pt(r.Max.X-1, r.Min.Y), h, c)
}

// DrawLine draws a straight line from p1 to p2, both ends included.
//
// The line is mapped into the first octant, stepped one column at a time and
// mapped back. y advances once the error term is no longer negative.
func (d *Dev) DrawLine(p1, p2 image.Point, c rgb565.Color) error {
	o := lineOctant(p2.Sub(p1))
	start, end := o.toFirst(p1), o.toFirst(p2)
	dx, dy := end.X-start.X, end.Y-start.Y
	e := dy - dx
	for p := start; p.X < end.X; p.X++ {
		if err := d.DrawPixel(o.fromFirst(p), c); err != nil {
			return err
		}
		if e >= 0 {
			p.Y++
			e -= dx
		}
		e += dy
	}
	// Stepping stops one column short of p2.
	return d.DrawPixel(p2, c)
}

// octant numbers the eight line directions, 0 being 0 <= dy <= dx.
type octant int

func lineOctant(v image.Point) octant {
	var o octant
	if v.Y < 0 {
		v = v.Mul(-1)
		o += 4
	}
	if v.X < 0 {
		v = image.Pt(v.Y, -v.X)
		o += 2
	}
	if v.X < v.Y {
		o++
	}
	return o
}

// toFirst maps p from octant o into octant 0.
func (o octant) toFirst(p image.Point) image.Point {
	switch o {
	case 1:
		return image.Pt(p.Y, p.X)
	case 2:
		return image.Pt(p.Y, -p.X)
	case 3:
		return image.Pt(-p.X, p.Y)
	case 4:
		return image.Pt(-p.X, -p.Y)
	case 5:
		return image.Pt(-p.Y, -p.X)
	case 6:
		return image.Pt(-p.Y, p.X)
	case 7:
		return image.Pt(p.X, -p.Y)
	}
	return p
}

// fromFirst is the inverse of toFirst.
func (o octant) fromFirst(p image.Point) image.Point {
	switch o {
	case 1:
		return image.Pt(p.Y, p.X)
	case 2:
		return image.Pt(-p.Y, p.X)
	case 3:
		return image.Pt(-p.X, p.Y)
	case 4:
		return image.Pt(-p.X, -p.Y)
	case 5:
		return image.Pt(-p.Y, -p.X)
	case 6:
		return image.Pt(p.Y, -p.X)
	case 7:
		return image.Pt(p.X, -p.Y)
	}
	return p
}

// DrawCircle draws the outline of a circle with the midpoint algorithm.
//
// A radius of 0 draws the center pixel. A negative radius draws nothing.
func (d *Dev) DrawCircle(center image.Point, radius int, c rgb565.Color) error {
	dx, dy, e := radius, 0, 0
	for dx >= dy {
		if err := d.drawOctants(center, dx, dy, c); err != nil {
			return err
		}
		dy++
		e += 1 + 2*dy
		if 2*(e-dx)+1 > 0 {
			dx--
			e += 1 - 2*dx
		}
	}
	return nil
}

// drawOctants draws the eight reflections of (dx, dy) around center.
// Reflections that land on the same pixel are drawn once.
func (d *Dev) drawOctants(center image.Point, dx, dy int, c rgb565.Color) error {
	pts := [8]image.Point{
		center.Add(image.Pt(dx, dy)),
		center.Add(image.Pt(dy, dx)),
		center.Add(image.Pt(-dx, dy)),
		center.Add(image.Pt(-dy, dx)),
		center.Add(image.Pt(dx, -dy)),
		center.Add(image.Pt(dy, -dx)),
		center.Add(image.Pt(-dx, -dy)),
		center.Add(image.Pt(-dy, -dx)),
	}
next:
	for i, p := range pts {
		for _, q := range pts[:i] {
			if p == q {
				continue next
			}
		}
		if err := d.DrawPixel(p, c); err != nil {
			return err
		}
	}
	return nil
}

// ClearScreen fills the whole panel with c.
func (d *Dev) ClearScreen(c rgb565.Color) error {
	return d.FillRect(d.rect, c)
}
