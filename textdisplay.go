package wslcd1602rgb

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// ErrNotImplemented is returned for cursor movements the controller can't do.
var ErrNotImplemented = fmt.Errorf("wslcd1602rgb: %w", display.ErrNotImplemented)

// Rows returns the number of rows of the display.
func (d *Dev) Rows() int {
	return numRows
}

// Cols returns the number of columns of the display.
func (d *Dev) Cols() int {
	return numCols
}

// MinRow returns the first row index accepted by MoveTo.
func (d *Dev) MinRow() int {
	return 0
}

// MinCol returns the first column index accepted by MoveTo.
func (d *Dev) MinCol() int {
	return 0
}

// MoveTo places the cursor at row, col.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || row >= d.Rows() || col < d.MinCol() || col >= d.Cols() {
		return fmt.Errorf("wslcd1602rgb: MoveTo(%d, %d) out of range", row, col)
	}
	return d.WriteCommand(cmdSetDDRAMAddr | (rowOffsets[row] + byte(col)))
}

// Move shifts the cursor one position forward or backward.
func (d *Dev) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Backward:
		return d.WriteCommand(cmdCursorShift | shiftCursor | moveLeft)
	case display.Forward:
		return d.WriteCommand(cmdCursorShift | shiftCursor | moveRight)
	default:
		return ErrNotImplemented
	}
}

// Cursor sets the cursor mode. Modes can be combined:
//
//	Cursor(display.CursorUnderline, display.CursorBlink)
//
// The display is left on.
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	val := cmdDisplayControl | displayOn
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			val &^= cursorOn | blinkOn
		case display.CursorUnderline:
			val |= cursorOn
		case display.CursorBlink, display.CursorBlock:
			val |= blinkOn
		default:
			return fmt.Errorf("wslcd1602rgb: cursor mode %v: %w", mode, display.ErrInvalidCommand)
		}
	}
	return d.WriteCommand(val)
}

// AutoScroll makes the display shift on every character written instead of
// the cursor.
func (d *Dev) AutoScroll(enabled bool) error {
	shift := entryShiftDecrement
	if enabled {
		shift = entryShiftIncrement
	}
	return d.WriteCommand(cmdEntryModeSet | entryLeft | shift)
}

// Display turns the display output on or off.
func (d *Dev) Display(on bool) error {
	if on {
		return d.DisplayOn()
	}
	return d.DisplayOff()
}

// Write sends p as character data. It returns the number of bytes
// accepted before the first bus error.
func (d *Dev) Write(p []byte) (int, error) {
	for n, b := range p {
		if err := d.WriteData(b); err != nil {
			return n, err
		}
	}
	return len(p), nil
}

// WriteString sends text as character data.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// Backlight sets all three backlight channels to intensity.
func (d *Dev) Backlight(intensity display.Intensity) error {
	return d.RGBBacklight(intensity, intensity, intensity)
}

// RGBBacklight sets the backlight colour. Values are truncated to 0-255.
func (d *Dev) RGBBacklight(red, green, blue display.Intensity) error {
	return d.SetRGB(byte(red), byte(green), byte(blue))
}

// Halt turns the display and the backlight off. Display memory is kept.
func (d *Dev) Halt() error {
	if err := d.DisplayOff(); err != nil {
		return err
	}
	return d.SetRGB(0, 0, 0)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("wslcd1602rgb.Dev{lcd:%#x rgb:%#x}", d.lcd.Addr, d.rgb.Addr)
}

var _ conn.Resource = &Dev{}
var _ display.TextDisplay = &Dev{}
var _ display.DisplayBacklight = &Dev{}
var _ display.DisplayRGBBacklight = &Dev{}
