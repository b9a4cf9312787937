package isa

import (
	"encoding/binary"
	"fmt"
)

// Magic identifies a serialized program.
const Magic = "NRLG"

// headerSize is magic(4) + entry(4) + codeLen(4) + dataLen(4).
const headerSize = 16

// Program is a fully assembled unit: an instruction sequence, the data
// section blob, and the entry point as an instruction index (byte
// offsets are derived, never stored). EntryLabel is a transient field
// used during assembly; a Program handed to an executor has it resolved
// into EntryPoint and cleared.
type Program struct {
	Instructions []Instruction
	EntryPoint   uint32
	DataSection  []byte
	EntryLabel   string
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{}
}

// FromInstructions wraps an instruction list in a program with entry
// point 0 and no data.
func FromInstructions(instrs []Instruction) *Program {
	return &Program{Instructions: instrs}
}

// CodeSize returns the total encoded size of the code section in bytes.
func (p *Program) CodeSize() int {
	n := 0
	for _, i := range p.Instructions {
		n += i.Size()
	}
	return n
}

// Encode serializes the program:
//
//	"NRLG" | entry_point:u32 LE | code_len:u32 LE | data_len:u32 LE | code | data
func (p *Program) Encode() []byte {
	codeSize := p.CodeSize()
	buf := make([]byte, 0, headerSize+codeSize+len(p.DataSection))

	buf = append(buf, Magic...)
	buf = binary.LittleEndian.AppendUint32(buf, p.EntryPoint)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(codeSize))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(p.DataSection)))

	for _, i := range p.Instructions {
		buf = append(buf, i.Encode()...)
	}
	buf = append(buf, p.DataSection...)
	return buf
}

// DecodeProgram deserializes a program, rejecting bad magic and any
// form of truncation.
func DecodeProgram(data []byte) (*Program, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("isa: program too short: %d bytes", len(data))
	}
	if string(data[0:4]) != Magic {
		return nil, fmt.Errorf("isa: bad magic %q", data[0:4])
	}

	entry := binary.LittleEndian.Uint32(data[4:8])
	codeLen := int(binary.LittleEndian.Uint32(data[8:12]))
	dataLen := int(binary.LittleEndian.Uint32(data[12:16]))

	if len(data) < headerSize+codeLen+dataLen {
		return nil, fmt.Errorf("isa: truncated program: header declares %d code + %d data bytes, %d available",
			codeLen, dataLen, len(data)-headerSize)
	}

	code := data[headerSize : headerSize+codeLen]
	dataSection := make([]byte, dataLen)
	copy(dataSection, data[headerSize+codeLen:headerSize+codeLen+dataLen])

	var instrs []Instruction
	pos := 0
	for pos < len(code) {
		instr, size, ok := DecodeInstruction(code[pos:])
		if !ok {
			return nil, fmt.Errorf("isa: invalid instruction at code offset %d", pos)
		}
		instrs = append(instrs, instr)
		pos += size
	}

	return &Program{
		Instructions: instrs,
		EntryPoint:   entry,
		DataSection:  dataSection,
	}, nil
}
