package isa

import "testing"

func TestOpcodeFromByte(t *testing.T) {
	tests := []struct {
		b    byte
		want Opcode
		ok   bool
	}{
		{0x00, OpAlu, true},
		{0x14, OpFile, true},
		{0x15, OpNet, true},
		{0x19, OpFpu, true},
		{0x1F, OpHalt, true},
		{0x20, OpExtCall, true},
		{0x21, 0, false},
		{0x3F, 0, false},
		{0xFF, 0, false},
	}
	for _, tt := range tests {
		got, ok := OpcodeFromByte(tt.b)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("OpcodeFromByte(0x%02x) = (%v, %v), want (%v, %v)", tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOpcodeExtended(t *testing.T) {
	extended := map[Opcode]bool{
		OpAluI: true, OpLoad: true, OpStore: true, OpBranch: true,
		OpCall: true, OpJump: true, OpMov: true, OpFile: true,
		OpNet: true, OpNetSetopt: true, OpIo: true, OpTime: true,
		OpExtCall: true,
	}
	for _, op := range AllOpcodes() {
		if got := op.Extended(); got != extended[op] {
			t.Errorf("%s.Extended() = %v, want %v", op, got, extended[op])
		}
	}
}

func TestOpcodeString(t *testing.T) {
	if got := OpCapRestrict.String(); got != "cap.restrict" {
		t.Errorf("OpCapRestrict.String() = %q, want %q", got, "cap.restrict")
	}
	if got := OpExtCall.String(); got != "ext.call" {
		t.Errorf("OpExtCall.String() = %q, want %q", got, "ext.call")
	}
	if got := Opcode(0x3E).String(); got != "opcode(0x3e)" {
		t.Errorf("unknown opcode String() = %q", got)
	}
}

func TestModeFromByteBounds(t *testing.T) {
	if _, ok := AluOpFromByte(7); !ok {
		t.Error("AluOpFromByte(7) should succeed")
	}
	if _, ok := AluOpFromByte(8); ok {
		t.Error("AluOpFromByte(8) should fail")
	}
	if _, ok := MulDivOpFromByte(4); ok {
		t.Error("MulDivOpFromByte(4) should fail")
	}
	if _, ok := IoOpFromByte(4); ok {
		t.Error("IoOpFromByte(4) should fail")
	}
	if op, ok := FpuOpFromByte(13); !ok || op != FpuCmpGe {
		t.Errorf("FpuOpFromByte(13) = (%v, %v), want (fcmpge, true)", op, ok)
	}
	if _, ok := FpuOpFromByte(14); ok {
		t.Error("FpuOpFromByte(14) should fail")
	}
	if _, ok := BitsOpFromByte(4); ok {
		t.Error("BitsOpFromByte(4) should fail")
	}
}

func TestMemWidthByteSize(t *testing.T) {
	tests := []struct {
		w    MemWidth
		want int
	}{
		{WidthByte, 1},
		{WidthHalf, 2},
		{WidthWord, 4},
		{WidthDouble, 8},
	}
	for _, tt := range tests {
		if got := tt.w.ByteSize(); got != tt.want {
			t.Errorf("%v.ByteSize() = %d, want %d", tt.w, got, tt.want)
		}
	}
}

func TestRegisterParsing(t *testing.T) {
	tests := []struct {
		name string
		want Register
		ok   bool
	}{
		{"r0", R0, true},
		{"r15", R15, true},
		{"r16", 0, false},
		{"a0", R0, true},
		{"a5", R5, true},
		{"ret", R0, true},
		{"sp", Sp, true},
		{"zero", Zero, true},
		{"x0", Zero, true},
		{"csp", Csp, true},
		{"bogus", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseRegister(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseRegister(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRegisterWritable(t *testing.T) {
	if Pc.IsWritable() {
		t.Error("pc must not be writable")
	}
	if Zero.IsWritable() {
		t.Error("zero must not be writable")
	}
	if !R0.IsWritable() || !Sp.IsWritable() || !Cfp.IsWritable() {
		t.Error("general and special registers should be writable")
	}
}

func TestRegisterFromByte(t *testing.T) {
	if r, ok := RegisterFromByte(31); !ok || r != Zero {
		t.Errorf("RegisterFromByte(31) = (%v, %v), want (zero, true)", r, ok)
	}
	if _, ok := RegisterFromByte(32); ok {
		t.Error("RegisterFromByte(32) should fail")
	}
}
