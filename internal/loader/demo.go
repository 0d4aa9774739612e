package loader

// DemoName is the name of the built-in demo program.
const DemoName = "Screenwipe"

// screenwipe fills the screen with vertical bars, waits for a key press and
// wipes the screen again.
var screenwipe = [...]byte{
	0xA2, 0x6E, 0x22, 0x3A, 0xA2, 0x76, 0x6D, 0x03,
	0xFD, 0x15, 0xFF, 0x07, 0x3F, 0x00, 0x12, 0x0A,
	0x22, 0x3A, 0x70, 0x01, 0x30, 0x7E, 0x12, 0x08,
	0xA2, 0x6E, 0x22, 0x3A, 0x60, 0x00, 0xA2, 0x7E,
	0x22, 0x4C, 0xA2, 0x7F, 0xFD, 0x15, 0xFF, 0x07,
	0x3F, 0x00, 0x12, 0x26, 0x22, 0x4C, 0x70, 0x01,
	0x30, 0x3F, 0x12, 0x24, 0xA2, 0x7E, 0x22, 0x4C,
	0xFF, 0x0A, 0x61, 0x00, 0xD0, 0x18, 0x61, 0x08,
	0xD0, 0x18, 0x61, 0x10, 0xD0, 0x18, 0x61, 0x18,
	0xD0, 0x18, 0x00, 0xEE, 0x61, 0x00, 0xD1, 0x03,
	0x61, 0x08, 0xD1, 0x03, 0x61, 0x10, 0xD1, 0x03,
	0x61, 0x18, 0xD1, 0x03, 0x61, 0x20, 0xD1, 0x03,
	0x61, 0x28, 0xD1, 0x03, 0x61, 0x30, 0xD1, 0x03,
	0x61, 0x38, 0xD1, 0x03, 0x00, 0xEE, 0xC0, 0xC0,
	0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xA0, 0xA0,
	0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xA0, 0xFF, 0xFF,
	0x00, 0xFF,
}

// Demo returns a copy of the built-in demo program.
func Demo() []byte {
	program := make([]byte, len(screenwipe))
	copy(program, screenwipe[:])
	return program
}
