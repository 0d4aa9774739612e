package vm

// Memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the address that the program image is loaded to and
	// where execution starts.
	ProgramStart = 0x200

	// FontStart is the address of the built-in font glyphs.
	FontStart = 0x50

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose registers.
	RegisterCount = 16

	addressMask  = 0xFFF
	flagRegister = 0xF
)

// Memory is the flat address space of the machine.
type Memory [MemorySize]byte

func (m *Memory) read(address uint16) byte {
	return m[address&addressMask]
}

func (m *Memory) write(address uint16, value byte) {
	m[address&addressMask] = value
}

// Registers is the bank of general purpose registers V0-VF.
// VF doubles as carry, borrow and collision flag.
type Registers [RegisterCount]byte

// callStack holds return addresses of subroutine calls. It has no depth limit.
type callStack []uint16

func (s *callStack) push(address uint16) {
	*s = append(*s, address)
}

// pop returns the most recent return address and reports whether the stack
// held one.
func (s *callStack) pop() (uint16, bool) {
	n := len(*s)
	if n == 0 {
		return 0, false
	}
	address := (*s)[n-1]
	*s = (*s)[:n-1]
	return address, true
}
