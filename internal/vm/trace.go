package vm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonic returns the instruction name of the given opcode as defined by
// the CHIP-8 opcode table, or an empty string for unknown encodings.
func Mnemonic(opcode uint16) string {
	for _, op := range chip8.Opcodes[int(opcode>>12)] {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}

// Disassemble returns the assembly text of the given opcode, for example
// "ld V1, $23". Unknown encodings are returned as a data word.
func Disassemble(opcode uint16) string {
	name := Mnemonic(opcode)
	if name == "" {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	if operands := formatOperands(opcode); operands != "" {
		return name + " " + operands
	}
	return name
}

// formatOperands formats the operands encoded in the opcode.
func formatOperands(opcode uint16) string {
	x := (opcode >> 8) & 0xF
	y := (opcode >> 4) & 0xF
	address := opcode & addressMask
	value := opcode & 0xFF

	switch opcode >> 12 {
	case 0x0:
		return ""
	case 0x1, 0x2:
		return fmt.Sprintf("$%03X", address)
	case 0xB:
		return fmt.Sprintf("V0, $%03X", address)
	case 0x3, 0x4, 0x6, 0x7, 0xC:
		return fmt.Sprintf("V%X, $%02X", x, value)
	case 0x5, 0x8, 0x9:
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0xA:
		return fmt.Sprintf("I, $%03X", address)
	case 0xD:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, opcode&0xF)
	case 0xE:
		return fmt.Sprintf("V%X", x)
	case 0xF:
		return formatMiscOperands(x, byte(value))
	}
	return ""
}

func formatMiscOperands(x uint16, function byte) string {
	switch function {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x1E:
		return fmt.Sprintf("I, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}
