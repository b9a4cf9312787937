package asm

import (
	"fmt"
	"strings"

	"github.com/chazu/nrl/pkg/isa"
)

// Disassembler renders programs back to text. Output with default
// options is re-assemblable.
type Disassembler struct {
	showBytes   bool
	showOffsets bool
}

// NewDisassembler returns a disassembler that prints byte offsets but
// not raw encoding bytes.
func NewDisassembler() *Disassembler {
	return &Disassembler{showOffsets: true}
}

// WithBytes toggles printing the raw encoded bytes of each instruction.
func (d *Disassembler) WithBytes(show bool) *Disassembler {
	d.showBytes = show
	return d
}

// WithOffsets toggles printing the byte offset of each instruction.
func (d *Disassembler) WithOffsets(show bool) *Disassembler {
	d.showOffsets = show
	return d
}

// Disassemble renders a program's code section as text, one instruction
// per line.
func (d *Disassembler) Disassemble(prog *isa.Program) string {
	var b strings.Builder
	offset := 0

	for _, instr := range prog.Instructions {
		if d.showOffsets {
			fmt.Fprintf(&b, "%04x:  ", offset)
		}
		if d.showBytes {
			enc := instr.Encode()
			for _, by := range enc {
				fmt.Fprintf(&b, "%02x ", by)
			}
			for i := len(enc); i < 8; i++ {
				b.WriteString("   ")
			}
		}
		b.WriteString(instr.String())
		b.WriteByte('\n')
		offset += instr.Size()
	}
	return b.String()
}

// DisassembleBytes decodes a serialized program and disassembles it.
func (d *Disassembler) DisassembleBytes(data []byte) (string, error) {
	prog, err := isa.DecodeProgram(data)
	if err != nil {
		return "", err
	}
	return d.Disassemble(prog), nil
}
