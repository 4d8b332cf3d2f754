package ili9163c

import (
	"fmt"
	"log"
	"os"

	"periph.io/x/conn/v3/gpio"
)

var debug bool

func init() {
	debug = os.Getenv("ILI9163C_DEBUG") != ""
}

// writeCommand sends a single opcode with dc low.
func (d *Dev) writeCommand(cmd Command) error {
	if debug {
		log.Printf("ili9163c: command %s (%#02x)", cmd, byte(cmd))
	}
	return d.transfer(gpio.Low, []byte{byte(cmd)})
}

// writeData sends a single parameter byte with dc high.
func (d *Dev) writeData(b byte) error {
	return d.transfer(gpio.High, []byte{b})
}

// writeData16 sends a 16-bit word, most significant byte first, within a
// single chip-enable bracket.
func (d *Dev) writeData16(w uint16) error {
	return d.transfer(gpio.High, []byte{byte(w >> 8), byte(w)})
}

// sendCommand sends an opcode followed by its parameter bytes.
func (d *Dev) sendCommand(cmd Command, params ...byte) error {
	if err := d.writeCommand(cmd); err != nil {
		return err
	}
	if debug && len(params) != 0 {
		log.Printf("ili9163c: data % x", params)
	}
	for _, b := range params {
		if err := d.writeData(b); err != nil {
			return err
		}
	}
	return nil
}

// transfer selects command or data mode, then brackets w with chip-enable.
//
// The dc line is settled before chip-enable is asserted, and chip-enable is
// always released before returning so that the next transfer starts from the
// deasserted state.
func (d *Dev) transfer(dc gpio.Level, w []byte) error {
	if err := d.dc.Out(dc); err != nil {
		return fmt.Errorf("ili9163c: failed to drive DC: %w", err)
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("ili9163c: failed to assert CS: %w", err)
	}
	if err := d.c.Tx(w, nil); err != nil {
		// Best effort, the bus error is the one worth reporting.
		_ = d.cs.Out(gpio.High)
		return fmt.Errorf("ili9163c: transfer failed: %w", err)
	}
	if err := d.cs.Out(gpio.High); err != nil {
		return fmt.Errorf("ili9163c: failed to release CS: %w", err)
	}
	return nil
}
