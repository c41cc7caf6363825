// Package wslcd1602rgb controls a Waveshare LCD1602 RGB module via I²C.
//
// The module pairs an AiP31068 character LCD controller with a PCA9633 RGB
// backlight driver. Both sit on the same bus at different addresses.
//
// See the examples for how to use this package.
package wslcd1602rgb

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/i2c"
)

// sleep is replaced in tests to observe the init delays.
var sleep = time.Sleep

// Opts is the configuration for the LCD1602 RGB module.
type Opts struct {
	LCDAddr uint16 // Character controller address (default: 0x3E)
	RGBAddr uint16 // Backlight driver address (default: 0x60)
}

// Dev is the device handle for the LCD1602 RGB module.
//
// Dev does not serialize access to the bus. Callers sharing the bus between
// goroutines must do their own locking.
type Dev struct {
	lcd i2c.Dev // AiP31068 character controller
	rgb i2c.Dev // PCA9633 backlight driver
}

// New creates a new LCD1602 RGB device on the given I²C bus and runs the
// power-on initialization sequence. It blocks for at least 60ms.
//
// opts can be nil to use the default addresses.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	o := Opts{LCDAddr: DefaultLCDAddress, RGBAddr: DefaultRGBAddress}
	if opts != nil {
		if opts.LCDAddr != 0 {
			o.LCDAddr = opts.LCDAddr
		}
		if opts.RGBAddr != 0 {
			o.RGBAddr = opts.RGBAddr
		}
	}

	d := &Dev{
		lcd: i2c.Dev{Bus: bus, Addr: o.LCDAddr},
		rgb: i2c.Dev{Bus: bus, Addr: o.RGBAddr},
	}
	if err := d.init(); err != nil {
		return nil, fmt.Errorf("wslcd1602rgb: init: %w", err)
	}
	return d, nil
}

// init sends the initialization sequence to both chips.
func (d *Dev) init() error {
	glog.V(1).Infof("wslcd1602rgb: initializing lcd=%#x rgb=%#x", d.lcd.Addr, d.rgb.Addr)

	// Power-on settle time.
	sleep(50 * time.Millisecond)

	if err := d.WriteCommand(cmdFunctionSet | cmdFunctionReset); err != nil {
		return err
	}
	// Four function-set writes resync the controller from an unknown state.
	for i := 0; i < 4; i++ {
		if err := d.WriteCommand(functionMode); err != nil {
			return err
		}
		if i == 1 || i == 2 {
			sleep(5 * time.Millisecond)
		}
	}

	steps := []func() error{
		d.DisplayOff,
		d.Clear,
		d.HideCursor,
		d.DisplayOn,
		func() error {
			return d.WriteCommand(cmdEntryModeSet | entryLeft | entryShiftDecrement)
		},
		func() error { return d.SetRGBReg(RegMode1, 0) },
		// LEDs driven by both the individual and group PWM registers.
		func() error { return d.SetRGBReg(RegOutput, 0xFF) },
		// DMBLNK=1, group control is blinking.
		func() error { return d.SetRGBReg(RegMode2, 0x20) },
		d.SetColourWhite,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	glog.V(1).Info("wslcd1602rgb: initialized")
	return nil
}

// writeReg writes a single byte to register reg of dev.
func writeReg(dev *i2c.Dev, reg, b byte) error {
	glog.V(2).Infof("wslcd1602rgb: %#x[%#02x] <- %#02x", dev.Addr, reg, b)
	return dev.Tx([]byte{reg, b}, nil)
}

// WriteCommand sends a raw command byte to the character controller.
func (d *Dev) WriteCommand(cmd byte) error {
	return writeReg(&d.lcd, regCommand, cmd)
}

// WriteData sends one character byte to the character controller. The
// character is drawn at the cursor and the cursor advances per entry mode.
func (d *Dev) WriteData(b byte) error {
	return writeReg(&d.lcd, regData, b)
}

// Clear blanks the display and moves the cursor to (0,0).
func (d *Dev) Clear() error {
	if err := d.WriteCommand(cmdClearDisplay); err != nil {
		return err
	}
	return d.WriteCommand(cmdReturnHome)
}

// Home moves the cursor to (0,0) without touching the content.
func (d *Dev) Home() error {
	return d.WriteCommand(cmdReturnHome)
}

func (d *Dev) ShowCursor() error {
	return d.WriteCommand(cmdDisplayControl | displayOn | cursorOn)
}

func (d *Dev) HideCursor() error {
	return d.WriteCommand(cmdDisplayControl | displayOn | cursorOff)
}

func (d *Dev) BlinkCursorOn() error {
	return d.WriteCommand(cmdDisplayControl | displayOn | cursorOn | blinkOn)
}

// BlinkCursorOff stops blinking and leaves the cursor visible. It sends the
// same command as ShowCursor.
//
// TODO: confirm with the module vendor whether blink off should also hide
// the cursor.
func (d *Dev) BlinkCursorOff() error {
	return d.WriteCommand(cmdDisplayControl | displayOn | cursorOn | blinkOff)
}

// DisplayOn turns the display output on. The cursor is hidden.
func (d *Dev) DisplayOn() error {
	return d.WriteCommand(cmdDisplayControl | displayOn)
}

// DisplayOff blanks the output. Display memory is kept.
func (d *Dev) DisplayOff() error {
	return d.WriteCommand(cmdDisplayControl | displayOff)
}

// SetRGBReg writes value to register reg of the backlight driver.
func (d *Dev) SetRGBReg(reg, value byte) error {
	return writeReg(&d.rgb, reg, value)
}

// SetRGB sets the backlight colour. The channels are written one at a time,
// so a failure can leave a mix of old and new values.
func (d *Dev) SetRGB(red, green, blue byte) error {
	if err := d.SetRGBReg(RegRed, red); err != nil {
		return err
	}
	if err := d.SetRGBReg(RegGreen, green); err != nil {
		return err
	}
	return d.SetRGBReg(RegBlue, blue)
}

// SetColourWhite sets the backlight to full white.
func (d *Dev) SetColourWhite() error {
	return d.SetRGB(0xFF, 0xFF, 0xFF)
}

// PrintOut writes t at the cursor, one UTF-8 byte per data write. Nothing
// stops the text from running past the last column.
func (d *Dev) PrintOut(t Text) error {
	s := t.String()
	for i := 0; i < len(s); i++ {
		if err := d.WriteData(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// PrintLines writes line1 on the first row and line2 on the second.
//
// The function-set command is sent again after Home; without it the first
// row drifts on this controller. Selecting the second row needs the DDRAM
// command followed by two left shifts.
func (d *Dev) PrintLines(line1, line2 Text) error {
	if err := d.Home(); err != nil {
		return err
	}
	if err := d.WriteCommand(functionMode); err != nil {
		return err
	}
	if err := d.PrintOut(line1); err != nil {
		return err
	}
	if err := d.WriteCommand(cmdSetDDRAMAddr); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		if err := d.WriteCommand(cmdCursorShift | shiftCursor | moveLeft); err != nil {
			return err
		}
	}
	return d.PrintOut(line2)
}
