package isa

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Instruction is one decoded instruction.
//
// First word layout (little-endian): bits [31:26] opcode, [25:21] rd,
// [20:16] rs1, [15:11] rs2, [10:8] mode, [7:0] reserved. Extended
// opcodes append a second little-endian word holding a signed 32-bit
// immediate.
type Instruction struct {
	Op   Opcode
	Rd   Register
	Rs1  Register
	Rs2  Register
	Mode byte
	Imm  *int32
}

// New creates an instruction without an immediate.
func New(op Opcode, rd, rs1, rs2 Register, mode byte) Instruction {
	return Instruction{Op: op, Rd: rd, Rs1: rs1, Rs2: rs2, Mode: mode}
}

// WithImm creates an instruction with rd, rs1 and an immediate operand.
func WithImm(op Opcode, rd, rs1 Register, mode byte, imm int32) Instruction {
	v := imm
	return Instruction{Op: op, Rd: rd, Rs1: rs1, Rs2: Zero, Mode: mode, Imm: &v}
}

// Imm32 returns a pointer to v for building instruction literals.
func Imm32(v int32) *int32 { return &v }

// SetImm replaces the immediate, keeping the instruction value-like.
func (i *Instruction) SetImm(v int32) {
	i.Imm = &v
}

// ImmValue returns the immediate and whether one is present.
func (i Instruction) ImmValue() (int32, bool) {
	if i.Imm == nil {
		return 0, false
	}
	return *i.Imm, true
}

// Size returns the encoded size in bytes: 8 if an immediate is present
// or the opcode is extended, otherwise 4.
func (i Instruction) Size() int {
	if i.Imm != nil || i.Op.Extended() {
		return 8
	}
	return 4
}

// Equal compares two instructions field by field, treating immediates
// by value.
func (i Instruction) Equal(o Instruction) bool {
	if i.Op != o.Op || i.Rd != o.Rd || i.Rs1 != o.Rs1 || i.Rs2 != o.Rs2 || i.Mode != o.Mode {
		return false
	}
	if (i.Imm == nil) != (o.Imm == nil) {
		return false
	}
	return i.Imm == nil || *i.Imm == *o.Imm
}

// Encode serializes the instruction to its 4- or 8-byte form.
func (i Instruction) Encode() []byte {
	word := uint32(i.Op)<<26 |
		uint32(i.Rd&0x1F)<<21 |
		uint32(i.Rs1&0x1F)<<16 |
		uint32(i.Rs2&0x1F)<<11 |
		uint32(i.Mode&0x07)<<8

	buf := make([]byte, 0, i.Size())
	buf = binary.LittleEndian.AppendUint32(buf, word)

	if i.Imm != nil || i.Op.Extended() {
		var imm int32
		if i.Imm != nil {
			imm = *i.Imm
		}
		buf = binary.LittleEndian.AppendUint32(buf, uint32(imm))
	}
	return buf
}

// DecodeInstruction decodes one instruction from the front of data,
// returning the instruction, the number of bytes consumed, and whether
// decoding succeeded. Decoding fails when fewer than 4 bytes remain or
// a packed field does not name a known variant. An extended opcode with
// fewer than 8 bytes available decodes with Imm == nil; a consumer of a
// full instruction stream should treat that as corruption.
func DecodeInstruction(data []byte) (Instruction, int, bool) {
	if len(data) < 4 {
		return Instruction{}, 0, false
	}
	word := binary.LittleEndian.Uint32(data[0:4])

	op, ok := OpcodeFromByte(byte(word >> 26 & 0x3F))
	if !ok {
		return Instruction{}, 0, false
	}
	rd, ok := RegisterFromByte(byte(word >> 21 & 0x1F))
	if !ok {
		return Instruction{}, 0, false
	}
	rs1, ok := RegisterFromByte(byte(word >> 16 & 0x1F))
	if !ok {
		return Instruction{}, 0, false
	}
	rs2, ok := RegisterFromByte(byte(word >> 11 & 0x1F))
	if !ok {
		return Instruction{}, 0, false
	}
	mode := byte(word >> 8 & 0x07)

	instr := Instruction{Op: op, Rd: rd, Rs1: rs1, Rs2: rs2, Mode: mode}
	size := 4
	if op.Extended() && len(data) >= 8 {
		imm := int32(binary.LittleEndian.Uint32(data[4:8]))
		instr.Imm = &imm
		size = 8
	}
	return instr, size, true
}

// String renders the instruction in assembly syntax.
func (i Instruction) String() string {
	var b strings.Builder
	b.WriteString(i.Op.String())

	switch i.Op {
	case OpAlu, OpAluI:
		op, _ := AluOpFromByte(i.Mode)
		fmt.Fprintf(&b, ".%s %s, %s, ", op, i.Rd, i.Rs1)
		if i.Imm != nil {
			fmt.Fprintf(&b, "%d", *i.Imm)
		} else {
			b.WriteString(i.Rs2.String())
		}

	case OpMulDiv:
		op, _ := MulDivOpFromByte(i.Mode)
		fmt.Fprintf(&b, ".%s %s, %s, %s", op, i.Rd, i.Rs1, i.Rs2)

	case OpLoad, OpStore:
		w, ok := MemWidthFromByte(i.Mode)
		if !ok {
			w = WidthDouble
		}
		fmt.Fprintf(&b, ".%s %s, [%s", w, i.Rd, i.Rs1)
		if i.Imm != nil && *i.Imm != 0 {
			fmt.Fprintf(&b, " + %d", *i.Imm)
		}
		b.WriteString("]")

	case OpBranch:
		cond, _ := BranchCondFromByte(i.Mode)
		if cond == CondAlways {
			b.WriteString(" ")
		} else {
			fmt.Fprintf(&b, ".%s %s, %s, ", cond, i.Rs1, i.Rs2)
		}
		if i.Imm != nil {
			fmt.Fprintf(&b, "%d", *i.Imm)
		}

	case OpMov:
		fmt.Fprintf(&b, " %s, ", i.Rd)
		switch {
		case i.Rs1 != Zero:
			b.WriteString(i.Rs1.String())
		case i.Imm != nil:
			fmt.Fprintf(&b, "%d", *i.Imm)
		default:
			b.WriteString("0")
		}

	case OpRet, OpNop, OpHalt, OpYield:
		// No operands.

	case OpFile:
		op, _ := FileOpFromByte(i.Mode)
		fmt.Fprintf(&b, ".%s %s, %s", op, i.Rd, i.Rs1)
		if i.Rs2 != Zero {
			fmt.Fprintf(&b, ", %s", i.Rs2)
		}
		if i.Imm != nil {
			fmt.Fprintf(&b, ", %d", *i.Imm)
		}

	case OpNet:
		op, _ := NetOpFromByte(i.Mode)
		fmt.Fprintf(&b, ".%s %s, %s", op, i.Rd, i.Rs1)
		if i.Rs2 != Zero {
			fmt.Fprintf(&b, ", %s", i.Rs2)
		}
		if i.Imm != nil {
			fmt.Fprintf(&b, ", %d", *i.Imm)
		}

	case OpNetSetopt:
		opt, _ := NetOptionFromByte(i.Mode)
		fmt.Fprintf(&b, ".%s %s", opt, i.Rs1)
		if i.Imm != nil {
			fmt.Fprintf(&b, ", %d", *i.Imm)
		}

	case OpIo:
		op, _ := IoOpFromByte(i.Mode)
		fmt.Fprintf(&b, ".%s %s, %s", op, i.Rd, i.Rs1)
		if i.Rs2 != Zero {
			fmt.Fprintf(&b, ", %s", i.Rs2)
		}
		if i.Imm != nil {
			fmt.Fprintf(&b, ", %d", *i.Imm)
		}

	case OpTime:
		op, _ := TimeOpFromByte(i.Mode)
		switch op {
		case TimeNow, TimeMonotonic:
			fmt.Fprintf(&b, ".%s %s", op, i.Rd)
		case TimeSleep:
			fmt.Fprintf(&b, ".%s", op)
			if i.Imm != nil {
				fmt.Fprintf(&b, " %d", *i.Imm)
			}
		default:
			b.WriteString(".reserved")
		}

	case OpFpu:
		op, _ := FpuOpFromByte(i.Mode)
		switch op {
		case FpuSqrt, FpuAbs, FpuFloor, FpuCeil:
			fmt.Fprintf(&b, ".%s %s, %s", op, i.Rd, i.Rs1)
		default:
			fmt.Fprintf(&b, ".%s %s, %s, %s", op, i.Rd, i.Rs1, i.Rs2)
		}

	case OpRand:
		op, _ := RandOpFromByte(i.Mode)
		if op == RandBytes {
			fmt.Fprintf(&b, ".bytes %s, %s", i.Rd, i.Rs1)
		} else {
			fmt.Fprintf(&b, ".u64 %s", i.Rd)
		}

	case OpBits:
		op, _ := BitsOpFromByte(i.Mode)
		fmt.Fprintf(&b, ".%s %s, %s", op, i.Rd, i.Rs1)

	case OpExtCall:
		fmt.Fprintf(&b, " %s", i.Rd)
		if i.Imm != nil {
			fmt.Fprintf(&b, ", %d", *i.Imm)
		}
		if i.Rs1 != Zero {
			fmt.Fprintf(&b, ", %s", i.Rs1)
		}
		if i.Rs2 != Zero {
			fmt.Fprintf(&b, ", %s", i.Rs2)
		}

	default:
		fmt.Fprintf(&b, " %s, %s, %s", i.Rd, i.Rs1, i.Rs2)
		if i.Imm != nil {
			fmt.Fprintf(&b, ", %d", *i.Imm)
		}
	}

	return b.String()
}
