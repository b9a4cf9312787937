package isa

import (
	"bytes"
	"testing"
)

func TestInstructionRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		instr Instruction
		size  int
	}{
		{"alu add", New(OpAlu, R0, R1, R2, byte(AluAdd)), 4},
		{"alu sar", New(OpAlu, R3, R4, R5, byte(AluSar)), 4},
		{"alui", WithImm(OpAluI, R0, R1, byte(AluAdd), 42), 8},
		{"alui negative", WithImm(OpAluI, R0, R1, byte(AluSub), -7), 8},
		{"muldiv", New(OpMulDiv, R2, R3, R4, byte(MulDivMod)), 4},
		{"load", WithImm(OpLoad, R1, Sp, byte(WidthDouble), 16), 8},
		{"store", WithImm(OpStore, R1, Fp, byte(WidthByte), -8), 8},
		{"branch", WithImm(OpBranch, Zero, R0, byte(CondNe), -3), 8},
		{"mov imm", WithImm(OpMov, R0, Zero, 0, 0x7FFFFFFF), 8},
		{"mov min", WithImm(OpMov, R0, Zero, 0, -0x80000000), 8},
		{"ret", New(OpRet, Zero, Zero, Zero, 0), 4},
		{"halt", New(OpHalt, Zero, Zero, Zero, 0), 4},
		{"cap new", New(OpCapNew, R0, R1, R2, 0), 4},
		{"ext call", WithImm(OpExtCall, R0, R1, 0, 170), 8},
		{"bits", New(OpBits, R0, R1, Zero, byte(BitsBswap)), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := tt.instr.Encode()
			if len(enc) != tt.size {
				t.Fatalf("Encode() produced %d bytes, want %d", len(enc), tt.size)
			}
			dec, n, ok := DecodeInstruction(enc)
			if !ok {
				t.Fatal("DecodeInstruction failed")
			}
			if n != tt.size {
				t.Errorf("consumed %d bytes, want %d", n, tt.size)
			}
			if !dec.Equal(tt.instr) {
				t.Errorf("round trip mismatch: got %+v, want %+v", dec, tt.instr)
			}
		})
	}
}

func TestDecodeInstructionFailures(t *testing.T) {
	if _, _, ok := DecodeInstruction(nil); ok {
		t.Error("decoding nil should fail")
	}
	if _, _, ok := DecodeInstruction([]byte{1, 2, 3}); ok {
		t.Error("decoding 3 bytes should fail")
	}

	// First word with opcode field 0x21 (out of range).
	bad := make([]byte, 4)
	word := uint32(0x21) << 26
	bad[0] = byte(word)
	bad[1] = byte(word >> 8)
	bad[2] = byte(word >> 16)
	bad[3] = byte(word >> 24)
	if _, _, ok := DecodeInstruction(bad); ok {
		t.Error("decoding invalid opcode should fail")
	}
}

func TestDecodeExtendedShortTail(t *testing.T) {
	full := WithImm(OpMov, R0, Zero, 0, 42).Encode()
	dec, n, ok := DecodeInstruction(full[:4])
	if !ok {
		t.Fatal("DecodeInstruction failed on short extended form")
	}
	if n != 4 {
		t.Errorf("consumed %d bytes, want 4", n)
	}
	if dec.Imm != nil {
		t.Error("short extended form should decode without an immediate")
	}
}

func TestInstructionFieldPacking(t *testing.T) {
	instr := New(OpAlu, R3, R7, R15, byte(AluXor))
	enc := instr.Encode()
	word := uint32(enc[0]) | uint32(enc[1])<<8 | uint32(enc[2])<<16 | uint32(enc[3])<<24

	if got := word >> 26 & 0x3F; got != uint32(OpAlu) {
		t.Errorf("opcode field = %d, want %d", got, OpAlu)
	}
	if got := word >> 21 & 0x1F; got != uint32(R3) {
		t.Errorf("rd field = %d, want %d", got, R3)
	}
	if got := word >> 16 & 0x1F; got != uint32(R7) {
		t.Errorf("rs1 field = %d, want %d", got, R7)
	}
	if got := word >> 11 & 0x1F; got != uint32(R15) {
		t.Errorf("rs2 field = %d, want %d", got, R15)
	}
	if got := word >> 8 & 0x07; got != uint32(AluXor) {
		t.Errorf("mode field = %d, want %d", got, AluXor)
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		instr Instruction
		want  string
	}{
		{New(OpAlu, R0, R1, R2, byte(AluAdd)), "alu.add r0, r1, r2"},
		{WithImm(OpAluI, R0, R1, byte(AluAdd), 5), "alui.add r0, r1, 5"},
		{WithImm(OpMov, R0, Zero, 0, 42), "mov r0, 42"},
		{New(OpMov, R0, R1, Zero, 0), "mov r0, r1"},
		{New(OpHalt, Zero, Zero, Zero, 0), "halt"},
		{WithImm(OpLoad, R1, Sp, byte(WidthWord), 8), "load.w r1, [sp + 8]"},
		{New(OpBits, R0, R1, Zero, byte(BitsPopcount)), "bits.popcount r0, r1"},
	}
	for _, tt := range tests {
		if got := tt.instr.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestProgramRoundTrip(t *testing.T) {
	p := &Program{
		Instructions: []Instruction{
			WithImm(OpMov, R0, Zero, 0, 42),
			New(OpAlu, R0, R0, R0, byte(AluAdd)),
			New(OpHalt, Zero, Zero, Zero, 0),
		},
		EntryPoint:  1,
		DataSection: []byte("hello\x00"),
	}

	enc := p.Encode()
	dec, err := DecodeProgram(enc)
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}

	if dec.EntryPoint != p.EntryPoint {
		t.Errorf("entry point = %d, want %d", dec.EntryPoint, p.EntryPoint)
	}
	if !bytes.Equal(dec.DataSection, p.DataSection) {
		t.Errorf("data section = %q, want %q", dec.DataSection, p.DataSection)
	}
	if len(dec.Instructions) != len(p.Instructions) {
		t.Fatalf("decoded %d instructions, want %d", len(dec.Instructions), len(p.Instructions))
	}
	for i := range p.Instructions {
		if !dec.Instructions[i].Equal(p.Instructions[i]) {
			t.Errorf("instruction %d mismatch: got %+v, want %+v", i, dec.Instructions[i], p.Instructions[i])
		}
	}
}

func TestDecodeProgramRejects(t *testing.T) {
	p := FromInstructions([]Instruction{New(OpNop, Zero, Zero, Zero, 0)})
	enc := p.Encode()

	if _, err := DecodeProgram(enc[:10]); err == nil {
		t.Error("truncated header should be rejected")
	}

	bad := append([]byte(nil), enc...)
	bad[0] = 'X'
	if _, err := DecodeProgram(bad); err == nil {
		t.Error("bad magic should be rejected")
	}

	if _, err := DecodeProgram(enc[:len(enc)-1]); err == nil {
		t.Error("truncated body should be rejected")
	}
}

func TestProgramCodeSize(t *testing.T) {
	p := FromInstructions([]Instruction{
		New(OpNop, Zero, Zero, Zero, 0),
		WithImm(OpMov, R0, Zero, 0, 1),
	})
	if got := p.CodeSize(); got != 12 {
		t.Errorf("CodeSize() = %d, want 12", got)
	}
}
