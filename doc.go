// Package wslcd1602rgb controls a Waveshare LCD1602 RGB module via I²C.
//
// The module is a 16x2 character LCD driven by an AiP31068 controller, with
// an RGB backlight driven by a PCA9633 LED controller. Both chips share the
// bus. This driver implements the display.TextDisplay and
// display.DisplayRGBBacklight interfaces from periph.io.
//
// # Hardware Connection
//
//	Module Pin → System Pin
//	VCC        → 3.3V or 5V
//	GND        → GND
//	SDA        → I²C SDA
//	SCL        → I²C SCL
//
// The character controller answers at 0x3E and the backlight at 0x60. The
// datasheets give these as 8-bit addresses (0x7C and 0xC0).
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//		"github.com/johanmeiring/wslcd1602rgb"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Runs the init sequence; takes about 60ms.
//		dev, _ := wslcd1602rgb.New(bus, nil)
//
//		dev.SetRGB(0, 128, 255)
//		dev.PrintLines(wslcd1602rgb.String("Hello"), wslcd1602rgb.Int(42))
//	}
//
// # Writing Text
//
// PrintOut writes at the cursor. Each UTF-8 byte goes out as one data write,
// so characters outside ASCII print as whatever the controller's ROM holds at
// those codes. Text is not wrapped or clipped at column 16.
//
// PrintLines redraws both rows. It works around two quirks of the
// controller: the first row drifts unless the function-set command is sent
// again after Home, and selecting the second row needs two extra left shifts.
//
// MoveTo, Move and WriteString give finer control in the periph.io style.
//
// # Backlight
//
// SetRGB writes the red, green and blue PWM registers one after the other.
// Values are 0-255:
//
//	dev.SetRGB(255, 0, 0) // red
//	dev.SetColourWhite()
//
// Lower level access to the PCA9633 is available through SetRGBReg.
//
// # Concurrency
//
// Dev holds no lock. Each method is a short series of bus transactions, and
// interleaving two of them from different goroutines will garble the output.
//
// # Logging
//
// The driver logs through glog: -v=1 for initialization, -v=2 for every
// register write.
//
// # Datasheets
//
// AiP31068: https://www.newhavendisplay.com/resources_dataFiles/datasheets/LCDs/AiP31068.pdf
//
// PCA9633: https://files.seeedstudio.com/wiki/Grove_LCD_RGB_Backlight/res/PCA9633.pdf
//
// Module: https://www.waveshare.com/wiki/LCD1602_RGB_Module
package wslcd1602rgb
