// Package isa defines the instruction set: opcodes, registers, operation
// modes, the instruction binary codec, and the program container format.
package isa

import "fmt"

// Opcode identifies an operation family. The full set fits in the 6-bit
// opcode field of the first instruction word.
type Opcode byte

const (
	// ========================================================================
	// Arithmetic and data movement (0x00-0x02, 0x1C)
	// ========================================================================

	OpAlu    Opcode = 0x00 // Register ALU op, sub-op in mode
	OpAluI   Opcode = 0x01 // ALU with immediate operand
	OpMulDiv Opcode = 0x02 // Multiply/divide/modulo family

	// ========================================================================
	// Memory (0x03-0x05)
	// ========================================================================

	OpLoad   Opcode = 0x03 // Load from [rs1 + imm], width in mode
	OpStore  Opcode = 0x04 // Store to [rs1 + imm], width in mode
	OpAtomic Opcode = 0x05 // Atomic read-modify-write, op in mode

	// ========================================================================
	// Control flow (0x06-0x09)
	// ========================================================================

	OpBranch Opcode = 0x06 // Conditional/unconditional branch, cond in mode
	OpCall   Opcode = 0x07 // Call to instruction index
	OpRet    Opcode = 0x08 // Return
	OpJump   Opcode = 0x09 // Jump (mode 1 = indirect via register)

	// ========================================================================
	// Capabilities (0x0A-0x0C)
	// ========================================================================

	OpCapNew      Opcode = 0x0A // Create capability: rd <- cap(rs1, rs2)
	OpCapRestrict Opcode = 0x0B // Narrow bounds/permissions
	OpCapQuery    Opcode = 0x0C // Query capability field, field in mode

	// ========================================================================
	// Concurrency (0x0D-0x11)
	// ========================================================================

	OpSpawn Opcode = 0x0D // Spawn task at instruction index in rs1
	OpJoin  Opcode = 0x0E // Join task handle in rs1
	OpChan  Opcode = 0x0F // Channel create/send/recv/close, op in mode
	OpFence Opcode = 0x10 // Memory fence, ordering in mode
	OpYield Opcode = 0x11 // Cooperative yield

	// ========================================================================
	// Information flow (0x12-0x13)
	// ========================================================================

	OpTaint    Opcode = 0x12 // Mark rd's capability tainted
	OpSanitize Opcode = 0x13 // Clear taint on rd's capability

	// ========================================================================
	// Host interface (0x14-0x1A)
	// ========================================================================

	OpFile      Opcode = 0x14 // File operations, op in mode
	OpNet       Opcode = 0x15 // Network operations, op in mode
	OpNetSetopt Opcode = 0x16 // Socket option, option in mode
	OpIo        Opcode = 0x17 // Console/environment I/O, op in mode
	OpTime      Opcode = 0x18 // Clock and sleep, op in mode
	OpFpu       Opcode = 0x19 // Floating point, op in mode
	OpRand      Opcode = 0x1A // Random bytes / random u64

	// ========================================================================
	// Misc (0x1B-0x20)
	// ========================================================================

	OpBits    Opcode = 0x1B // Bit manipulation (popcount/clz/ctz/bswap)
	OpMov     Opcode = 0x1C // Move register or immediate into rd
	OpTrap    Opcode = 0x1D // Trap to host, type in mode
	OpNop     Opcode = 0x1E // No operation
	OpHalt    Opcode = 0x1F // Stop execution
	OpExtCall Opcode = 0x20 // Call registered extension, id in imm
)

// NumOpcodes is the count of defined opcodes; byte values at or above
// this do not decode.
const NumOpcodes = 0x21

// OpcodeInfo holds static metadata about an opcode.
type OpcodeInfo struct {
	Name string
	// Extended opcodes always encode an 8-byte form carrying a 32-bit
	// immediate.
	Extended bool
}

var opcodeInfoTable = map[Opcode]OpcodeInfo{
	OpAlu:         {Name: "alu"},
	OpAluI:        {Name: "alui", Extended: true},
	OpMulDiv:      {Name: "muldiv"},
	OpLoad:        {Name: "load", Extended: true},
	OpStore:       {Name: "store", Extended: true},
	OpAtomic:      {Name: "atomic"},
	OpBranch:      {Name: "branch", Extended: true},
	OpCall:        {Name: "call", Extended: true},
	OpRet:         {Name: "ret"},
	OpJump:        {Name: "jump", Extended: true},
	OpCapNew:      {Name: "cap.new"},
	OpCapRestrict: {Name: "cap.restrict"},
	OpCapQuery:    {Name: "cap.query"},
	OpSpawn:       {Name: "spawn"},
	OpJoin:        {Name: "join"},
	OpChan:        {Name: "chan"},
	OpFence:       {Name: "fence"},
	OpYield:       {Name: "yield"},
	OpTaint:       {Name: "taint"},
	OpSanitize:    {Name: "sanitize"},
	OpFile:        {Name: "file", Extended: true},
	OpNet:         {Name: "net", Extended: true},
	OpNetSetopt:   {Name: "net.setopt", Extended: true},
	OpIo:          {Name: "io", Extended: true},
	OpTime:        {Name: "time", Extended: true},
	OpFpu:         {Name: "fpu"},
	OpRand:        {Name: "rand"},
	OpBits:        {Name: "bits"},
	OpMov:         {Name: "mov", Extended: true},
	OpTrap:        {Name: "trap"},
	OpNop:         {Name: "nop"},
	OpHalt:        {Name: "halt"},
	OpExtCall:     {Name: "ext.call", Extended: true},
}

// OpcodeFromByte returns the opcode for a raw byte value, or false if the
// value does not name a defined opcode.
func OpcodeFromByte(b byte) (Opcode, bool) {
	if b >= NumOpcodes {
		return 0, false
	}
	return Opcode(b), true
}

// Info returns the metadata for this opcode.
func (op Opcode) Info() OpcodeInfo {
	return opcodeInfoTable[op]
}

// Extended reports whether this opcode uses the 8-byte encoding with a
// 32-bit immediate word.
func (op Opcode) Extended() bool {
	return opcodeInfoTable[op].Extended
}

// String returns the canonical mnemonic.
func (op Opcode) String() string {
	if info, ok := opcodeInfoTable[op]; ok {
		return info.Name
	}
	return fmt.Sprintf("opcode(0x%02x)", byte(op))
}

// AllOpcodes returns every defined opcode in ascending order.
func AllOpcodes() []Opcode {
	ops := make([]Opcode, 0, NumOpcodes)
	for b := byte(0); b < NumOpcodes; b++ {
		ops = append(ops, Opcode(b))
	}
	return ops
}
