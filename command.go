package ili9163c

import "fmt"

// Command is an ILI9163C command opcode.
//
// Unless noted otherwise a command takes a fixed number of parameter bytes,
// each sent as a separate data transfer after the opcode.
type Command byte

const (
	// NOP, no parameters.
	Nop Command = 0x00
	// SWRESET, no parameters. Wait 120ms before sending SleepOut.
	SoftwareReset Command = 0x01
	// RDDIDIF, reads 3 parameters after a dummy clock.
	ReadDisplayID Command = 0x04
	// RDDST, reads 4 parameters after a dummy clock.
	ReadDisplayStatus Command = 0x09
	// RDDPM
	ReadDisplayPowerMode Command = 0x0A
	// RDDMADCTL
	ReadDisplayMADCTL Command = 0x0B
	// RDDCOLMOD
	ReadDisplayPixelFormat Command = 0x0C
	// RDDIM
	ReadDisplayImageMode Command = 0x0D
	// RDDSM
	ReadDisplaySignalMode Command = 0x0E
	// RDDSDR
	ReadDisplaySelfDiagnostic Command = 0x0F

	// SLPIN enters the low power sleep mode.
	SleepIn Command = 0x10
	// SLPOUT leaves sleep mode. The controller needs at least 5ms before the
	// next command.
	SleepOut Command = 0x11
	// PTLON enters partial mode, see PartialArea.
	PartialModeOn Command = 0x12
	// NORON leaves partial mode.
	NormalModeOn Command = 0x13

	// INVOFF
	DisplayInversionOff Command = 0x20
	// INVON inverts the colour of every pixel.
	DisplayInversionOn Command = 0x21
	// GAMSET, 1 parameter: a GammaCurve.
	GammaSet Command = 0x26
	// DISPOFF blanks the panel. Memory is not affected.
	DisplayOff Command = 0x28
	// DISPON
	DisplayOn Command = 0x29

	// CASET, 4 parameters: start and end column, MSB first.
	ColumnAddressSet Command = 0x2A
	// PASET, 4 parameters: start and end page (row), MSB first.
	PageAddressSet Command = 0x2B
	// RAMWR takes every data byte until the next command and stores it in
	// the current window, auto-incrementing in row-major order.
	MemoryWrite Command = 0x2C
	// RGBSET, 128 parameters: colour lookup table for 12 and 16 bit modes.
	ColorSetting Command = 0x2D
	// RAMRD
	MemoryRead Command = 0x2E

	// PTLAR, 4 parameters: start and end row of the partial area.
	PartialArea Command = 0x30
	// VSCRDEF, 6 parameters.
	VerticalScrollingDefinition Command = 0x33
	// TEOFF
	TearingEffectLineOff Command = 0x34
	// TEON, 1 parameter: V-blanking mode.
	TearingEffectLineOn Command = 0x35
	// MADCTL, 1 parameter: mirror, exchange and RGB/BGR order bits.
	MemoryAccessControl Command = 0x36
	// VSCRSADD, 2 parameters.
	VerticalScrollingStartAddress Command = 0x37
	// IDMOFF
	IdleModeOff Command = 0x38
	// IDMON enters 8 colour mode at a lower frame frequency.
	IdleModeOn Command = 0x39
	// COLMOD, 1 parameter: a PixelFormat.
	InterfacePixelFormat Command = 0x3A

	// FRMCTR1, frame rate in normal mode.
	FrameRateControlNormal Command = 0xB1
	// FRMCTR2, frame rate in idle mode.
	FrameRateControlIdle Command = 0xB2
	// FRMCTR3, frame rate in partial mode.
	FrameRateControlPartial Command = 0xB3
	// INVCTR
	DisplayInversionControl Command = 0xB4
	// BPCTR
	RGBInterfaceBlankingPorch Command = 0xB5
	// DISSET5, 2 parameters.
	DisplayFunctionSet5 Command = 0xB6
	// SDOCTR
	SourceDriverDirectionControl Command = 0xB7
	// GDOCTR
	GateDriverDirectionControl Command = 0xB8

	// PWCTR1 sets GVDD.
	PowerControl1 Command = 0xC0
	// PWCTR2 sets AVDD, VCL, VGH and VGL.
	PowerControl2 Command = 0xC1
	// PWCTR3, op-amp current in normal mode.
	PowerControl3 Command = 0xC2
	// PWCTR4, op-amp current in idle mode.
	PowerControl4 Command = 0xC3
	// PWCTR5, op-amp current in partial mode.
	PowerControl5 Command = 0xC4
	// VMCTR1
	VCOMControl1 Command = 0xC5
	// VMOFCTR
	VCOMOffsetControl Command = 0xC7

	// WRID4
	WriteID4Value Command = 0xD3
	// NVFCTR1
	NVMemoryFunctionController1 Command = 0xD5
	// NVFCTR2
	NVMemoryFunctionController2 Command = 0xD6
	// NVFCTR3
	NVMemoryFunctionController3 Command = 0xD7
	// RDID1
	ReadID1 Command = 0xDA
	// RDID2
	ReadID2 Command = 0xDB
	// RDID3
	ReadID3 Command = 0xDC

	// GAMCTRP1, 15 parameters.
	PositiveGammaCorrection Command = 0xE0
	// GAMCTRN1, 15 parameters.
	NegativeGammaCorrection Command = 0xE1
	// GAM_R_SEL, 1 parameter: enables the E0h/E1h gamma adjustment.
	GammaAdjustmentSelect Command = 0xF2
)

var commandNames = map[Command]string{
	Nop:                           "NOP",
	SoftwareReset:                 "SWRESET",
	ReadDisplayID:                 "RDDIDIF",
	ReadDisplayStatus:             "RDDST",
	ReadDisplayPowerMode:          "RDDPM",
	ReadDisplayMADCTL:             "RDDMADCTL",
	ReadDisplayPixelFormat:        "RDDCOLMOD",
	ReadDisplayImageMode:          "RDDIM",
	ReadDisplaySignalMode:         "RDDSM",
	ReadDisplaySelfDiagnostic:     "RDDSDR",
	SleepIn:                       "SLPIN",
	SleepOut:                      "SLPOUT",
	PartialModeOn:                 "PTLON",
	NormalModeOn:                  "NORON",
	DisplayInversionOff:           "INVOFF",
	DisplayInversionOn:            "INVON",
	GammaSet:                      "GAMSET",
	DisplayOff:                    "DISPOFF",
	DisplayOn:                     "DISPON",
	ColumnAddressSet:              "CASET",
	PageAddressSet:                "PASET",
	MemoryWrite:                   "RAMWR",
	ColorSetting:                  "RGBSET",
	MemoryRead:                    "RAMRD",
	PartialArea:                   "PTLAR",
	VerticalScrollingDefinition:   "VSCRDEF",
	TearingEffectLineOff:          "TEOFF",
	TearingEffectLineOn:           "TEON",
	MemoryAccessControl:           "MADCTL",
	VerticalScrollingStartAddress: "VSCRSADD",
	IdleModeOff:                   "IDMOFF",
	IdleModeOn:                    "IDMON",
	InterfacePixelFormat:          "COLMOD",
	FrameRateControlNormal:        "FRMCTR1",
	FrameRateControlIdle:          "FRMCTR2",
	FrameRateControlPartial:       "FRMCTR3",
	DisplayInversionControl:       "INVCTR",
	RGBInterfaceBlankingPorch:     "BPCTR",
	DisplayFunctionSet5:           "DISSET5",
	SourceDriverDirectionControl:  "SDOCTR",
	GateDriverDirectionControl:    "GDOCTR",
	PowerControl1:                 "PWCTR1",
	PowerControl2:                 "PWCTR2",
	PowerControl3:                 "PWCTR3",
	PowerControl4:                 "PWCTR4",
	PowerControl5:                 "PWCTR5",
	VCOMControl1:                  "VMCTR1",
	VCOMOffsetControl:             "VMOFCTR",
	WriteID4Value:                 "WRID4",
	NVMemoryFunctionController1:   "NVFCTR1",
	NVMemoryFunctionController2:   "NVFCTR2",
	NVMemoryFunctionController3:   "NVFCTR3",
	ReadID1:                       "RDID1",
	ReadID2:                       "RDID2",
	ReadID3:                       "RDID3",
	PositiveGammaCorrection:       "GAMCTRP1",
	NegativeGammaCorrection:       "GAMCTRN1",
	GammaAdjustmentSelect:         "GAM_R_SEL",
}

// String returns the datasheet mnemonic of the command.
func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(0x%02X)", byte(c))
}

// PixelFormat is the COLMOD parameter selecting the interface pixel format.
type PixelFormat byte

const (
	Bpp16    PixelFormat = 0x05 // 5-6-5, one pixel per data word
	Bpp18    PixelFormat = 0x06 // 6-6-6, three bytes per pixel
	Bpp18Alt PixelFormat = 0x0E
)

// GammaCurve is the GAMSET parameter. Each curve is a single bit.
type GammaCurve byte

const (
	GammaCurve1 GammaCurve = 0x01
	GammaCurve2 GammaCurve = 0x02
	GammaCurve3 GammaCurve = 0x04
	GammaCurve4 GammaCurve = 0x08
)
