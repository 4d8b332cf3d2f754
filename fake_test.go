package ili9163c

import (
	"errors"
	"fmt"
	"image"
	"testing"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

var errTx = errors.New("tx failed")

// event is one observable action on the bus, in order.
type event struct {
	pin   string // "DC" or "CS" for pin changes
	level gpio.Level
	tx    []byte
	delay time.Duration
}

type trace struct {
	events []event
}

// tracePin records every level change into the shared trace.
type tracePin struct {
	gpiotest.Pin
	tr  *trace
	err error
}

func (p *tracePin) Out(l gpio.Level) error {
	if p.err != nil {
		return p.err
	}
	p.tr.events = append(p.tr.events, event{pin: p.N, level: l})
	return p.Pin.Out(l)
}

type traceConn struct {
	tr     *trace
	n      int
	failAt int // 1-based index of the Tx call that fails, 0 for never
}

func (c *traceConn) String() string { return "traceConn" }

func (c *traceConn) Duplex() conn.Duplex { return conn.Half }

func (c *traceConn) TxPackets(p []spi.Packet) error {
	return errors.New("not implemented")
}

func (c *traceConn) Tx(w, r []byte) error {
	c.n++
	if c.failAt != 0 && c.n == c.failAt {
		return errTx
	}
	c.tr.events = append(c.tr.events, event{tx: append([]byte(nil), w...)})
	return nil
}

type tracePort struct {
	c    *traceConn
	err  error
	f    physic.Frequency
	mode spi.Mode
	bits int
}

func (p *tracePort) String() string { return "tracePort" }

func (p *tracePort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.f, p.mode, p.bits = f, mode, bits
	return p.c, nil
}

func (p *tracePort) LimitSpeed(f physic.Frequency) error { return nil }

type harness struct {
	tr   *trace
	port *tracePort
	dc   *tracePin
	cs   *tracePin
	dev  *Dev
}

func newHarness(t *testing.T, opts *Opts) *harness {
	t.Helper()
	tr := &trace{}
	h := &harness{
		tr:   tr,
		port: &tracePort{c: &traceConn{tr: tr}},
		dc:   &tracePin{Pin: gpiotest.Pin{N: "DC"}, tr: tr},
		cs:   &tracePin{Pin: gpiotest.Pin{N: "CS"}, tr: tr},
	}
	if opts == nil {
		opts = &Opts{}
	}
	opts.Delay = func(d time.Duration) {
		tr.events = append(tr.events, event{delay: d})
	}
	dev, err := NewSPI(h.port, h.dc, h.cs, opts)
	if err != nil {
		t.Fatalf("NewSPI() error = %v", err)
	}
	h.dev = dev
	return h
}

// reset drops everything recorded so far.
func (h *harness) reset() {
	h.tr.events = nil
}

// frame is a decoded transfer or delay.
type frame struct {
	cmd   bool
	b     []byte
	delay time.Duration
}

func (f frame) String() string {
	switch {
	case f.delay != 0:
		return "S" + f.delay.String()
	case f.cmd:
		return fmt.Sprintf("C%X", f.b)
	}
	return fmt.Sprintf("D%X", f.b)
}

// frames decodes the trace and checks the framing rules: every transfer
// happens with CS asserted, CS is released between transfers, and DC never
// changes while a transfer is bracketed.
func (h *harness) frames(t *testing.T) []frame {
	t.Helper()
	var out []frame
	dc, cs := gpio.High, gpio.High
	sent := false
	for i, e := range h.tr.events {
		switch {
		case e.delay != 0:
			out = append(out, frame{delay: e.delay})
		case e.pin == "DC":
			if cs == gpio.Low && sent {
				t.Fatalf("event %d: DC changed inside a CS bracket", i)
			}
			dc = e.level
		case e.pin == "CS":
			cs = e.level
			sent = false
		default:
			if cs != gpio.Low {
				t.Fatalf("event %d: transfer % X with CS released", i, e.tx)
			}
			if sent {
				t.Fatalf("event %d: two transfers in one CS bracket", i)
			}
			sent = true
			out = append(out, frame{cmd: dc == gpio.Low, b: e.tx})
		}
	}
	if cs != gpio.High && len(h.tr.events) != 0 {
		t.Fatal("CS left asserted")
	}
	return out
}

// strings renders frames for comparison.
func strs(frames []frame) []string {
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = f.String()
	}
	return out
}

// fill is one decoded window + memory write.
type fill struct {
	r     image.Rectangle
	words []uint16
}

// fills decodes a trace made only of FillRect style sequences.
func (h *harness) fills(t *testing.T) []fill {
	t.Helper()
	fr := h.frames(t)
	word := func(i int) int {
		if i >= len(fr) || fr[i].cmd || len(fr[i].b) != 2 {
			t.Fatalf("frame %d: want a data word, got %v", i, fr)
		}
		return int(fr[i].b[0])<<8 | int(fr[i].b[1])
	}
	expect := func(i int, c Command) {
		if i >= len(fr) || !fr[i].cmd || fr[i].b[0] != byte(c) {
			t.Fatalf("frame %d: want %s, got %v", i, c, strs(fr))
		}
	}
	var out []fill
	for i := 0; i < len(fr); {
		expect(i, ColumnAddressSet)
		x0, x1 := word(i+1), word(i+2)
		expect(i+3, PageAddressSet)
		y0, y1 := word(i+4), word(i+5)
		expect(i+6, MemoryWrite)
		i += 7
		f := fill{r: image.Rect(x0, y0, x1+1, y1+1)}
		for i < len(fr) && !fr[i].cmd {
			f.words = append(f.words, uint16(word(i)))
			i++
		}
		out = append(out, f)
	}
	return out
}

// pixels returns the origin of each single pixel fill.
func (h *harness) pixels(t *testing.T) []image.Point {
	t.Helper()
	var out []image.Point
	for _, f := range h.fills(t) {
		if f.r.Dx() != 1 || f.r.Dy() != 1 || len(f.words) != 1 {
			t.Fatalf("fill %v with %d words is not a pixel", f.r, len(f.words))
		}
		out = append(out, f.r.Min)
	}
	return out
}
