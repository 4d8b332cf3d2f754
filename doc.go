// Package ili9163c controls an ILI9163C colour TFT display via SPI.
//
// The ILI9163C is a 262K colour LCD controller with a 132×162 pixel memory.
// This driver runs it in 16-bit 5-6-5 mode and implements the display.Drawer
// interface from periph.io.
//
// # Display Characteristics
//
// - 16-bit colour, 5 bits red, 6 bits green, 5 bits blue
// - Common panel size 128×128 (configurable up to 132×162)
// - Write-only 4-wire serial interface (SCL, SDA, D/C, CS)
// - No frame buffer on the host: every call goes straight to the controller
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDA         → SPI Data (MOSI)
//	A0 / DC     → GPIO (data/command select)
//	CS          → GPIO (chip enable, driven by this package)
//	RESET       → 3.3V (the driver uses the software reset)
//
// Some boards label the data/command line A0 and the chip enable CS.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ili9163c"
//		"periph.io/x/devices/v3/ili9163c/rgb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		p, _ := spireg.Open("")
//		defer p.Close()
//
//		dev, _ := ili9163c.NewSPI(p, gpioreg.ByName("GPIO25"), gpioreg.ByName("GPIO24"), nil)
//		defer dev.Halt()
//		dev.Show(true)
//
//		dev.ClearScreen(rgb565.Black)
//		dev.DrawRect(image.Rect(10, 10, 118, 118), rgb565.White)
//		dev.DrawLine(image.Pt(10, 10), image.Pt(117, 117), rgb565.RGB(0xFF, 0x80, 0x00))
//		dev.DrawCircle(image.Pt(64, 64), 40, rgb565.Green)
//	}
//
// # Initialization
//
// NewSPI sends the power-up sequence and blocks for about 505ms:
//
//	SWRESET, wait 500ms
//	SLPOUT, wait 5ms
//	COLMOD 0x05 (16 bpp)
//	GAMSET 0x04 (curve 3)
//	GAM_R_SEL 0x01
//	NORON
//	DISSET5 0xFF 0x00
//
// The controller cannot be read back, so initialization is never verified.
// The display stays blank until Show(true) is called.
//
// # Drawing
//
// Every primitive reduces to FillRect: the controller window is programmed with
// CASET/PASET, RAMWR is issued once and the colour is streamed as one 16-bit
// word per pixel. Lines use Bresenham's algorithm and circles the midpoint
// algorithm, one DrawPixel per plotted point.
//
// Coordinates are not checked. Drawing outside the panel gives undefined
// output on the glass but is never reported as an error.
//
// # Modes
//
// Show, Invert and SetSleep send the matching mode commands. The driver does
// not remember which mode is active.
//
// # Debugging
//
// Set ILI9163C_DEBUG to any value to log every command through the log
// package. Pixel data is not logged.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/ILI9163.pdf
package ili9163c
