package wslcd1602rgb

// Default I²C addresses, already shifted from the 8-bit forms printed in the
// datasheets (0x7C and 0xC0).
const (
	DefaultLCDAddress uint16 = 0x3E
	DefaultRGBAddress uint16 = 0x60
)

// Geometry of the module.
const (
	numRows = 2
	numCols = 16
)

// PCA9633 backlight registers.
const (
	RegMode1  byte = 0x00
	RegMode2  byte = 0x01
	RegBlue   byte = 0x02
	RegGreen  byte = 0x03
	RegRed    byte = 0x04
	RegOutput byte = 0x08
)

// AiP31068 register offsets. The DDRAM address register doubles as the
// command register and the CGRAM address register as the data register.
const (
	regCommand byte = 0x80
	regData    byte = 0x40
)

// AiP31068 command bytes and their flags.
const (
	cmdClearDisplay byte = 0x01
	cmdReturnHome   byte = 0x02

	cmdEntryModeSet     byte = 0x04
	entryRight          byte = 0x00
	entryLeft           byte = 0x02
	entryShiftIncrement byte = 0x01
	entryShiftDecrement byte = 0x00

	cmdDisplayControl byte = 0x08
	displayOn         byte = 0x04
	displayOff        byte = 0x00
	cursorOn          byte = 0x02
	cursorOff         byte = 0x00
	blinkOn           byte = 0x01
	blinkOff          byte = 0x00

	cmdCursorShift byte = 0x10
	shiftDisplay   byte = 0x08
	shiftCursor    byte = 0x00
	moveRight      byte = 0x04
	moveLeft       byte = 0x00

	cmdFunctionSet   byte = 0x20
	cmdFunctionReset byte = 0x30
	mode8Bit         byte = 0x10
	mode4Bit         byte = 0x00
	lines2           byte = 0x08
	lines1           byte = 0x00
	dots5x10         byte = 0x04
	dots5x8          byte = 0x00

	cmdSetDDRAMAddr byte = 0x80
)

// functionMode is the function-set command used at init and by PrintLines:
// 8-bit interface, 2 lines, 5x8 font.
const functionMode = cmdFunctionSet | mode8Bit | lines2 | dots5x8

// rowOffsets maps a row to its DDRAM base address.
var rowOffsets = [numRows]byte{0x00, 0x40}
