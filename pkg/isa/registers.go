package isa

import "fmt"

// Register identifies one of the 32 architectural registers (5-bit field).
type Register byte

const (
	// General purpose
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	// Special purpose
	Sp  // Stack pointer
	Fp  // Frame pointer
	Lr  // Link register
	Pc  // Program counter (read-only)
	Csp // Capability stack pointer
	Cfp // Capability frame pointer
	// Reserved for future use
	Reserved22
	Reserved23
	Reserved24
	Reserved25
	Reserved26
	Reserved27
	Reserved28
	Reserved29
	Reserved30
	Zero // Always reads as zero
)

// NumRegisters is the size of the register file.
const NumRegisters = 32

// RegisterFromByte returns the register for a raw 5-bit value, or false
// if the value is out of range.
func RegisterFromByte(b byte) (Register, bool) {
	if b >= NumRegisters {
		return 0, false
	}
	return Register(b), true
}

// IsWritable reports whether the register may be used as a destination.
// Pc and Zero are never writable.
func (r Register) IsWritable() bool {
	return r != Pc && r != Zero
}

// String returns the canonical register name.
func (r Register) String() string {
	switch {
	case r <= R15:
		return fmt.Sprintf("r%d", byte(r))
	case r == Sp:
		return "sp"
	case r == Fp:
		return "fp"
	case r == Lr:
		return "lr"
	case r == Pc:
		return "pc"
	case r == Csp:
		return "csp"
	case r == Cfp:
		return "cfp"
	case r == Zero:
		return "zero"
	default:
		return "reserved"
	}
}

// registerAliases maps every accepted spelling to a register. The
// argument aliases a0-a5 name r0-r5 per the calling convention, ret is
// the return-value register, x0 is the zero sink.
var registerAliases = map[string]Register{
	"sp": Sp, "fp": Fp, "lr": Lr, "pc": Pc, "csp": Csp, "cfp": Cfp,
	"zero": Zero, "x0": Zero,
	"a0": R0, "a1": R1, "a2": R2, "a3": R3, "a4": R4, "a5": R5,
	"ret": R0,
}

// ParseRegister resolves a register name (canonical or alias) to a
// register. Matching is case-insensitive for the rN forms handled here;
// callers lowercase their input.
func ParseRegister(name string) (Register, bool) {
	if r, ok := registerAliases[name]; ok {
		return r, true
	}
	if len(name) >= 2 && name[0] == 'r' {
		var n int
		for i := 1; i < len(name); i++ {
			c := name[i]
			if c < '0' || c > '9' {
				return 0, false
			}
			n = n*10 + int(c-'0')
			if n > 15 {
				return 0, false
			}
		}
		return Register(n), true
	}
	return 0, false
}
