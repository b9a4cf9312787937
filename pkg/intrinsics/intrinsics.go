// Package intrinsics holds the catalog of named macro templates that
// expand at assembly time into fixed instruction sequences with
// register/immediate substitution at declared patch points.
//
// Expansion is zero-overhead at runtime: a single @memcpy call site
// becomes an inlined loop over base instructions. Templates use
// r10-r15 as scratch registers for loop counters and temporaries;
// that is part of each intrinsic's documented calling convention.
package intrinsics

import (
	"fmt"

	"github.com/chazu/nrl/pkg/isa"
)

// PatchField names the instruction field a patch point substitutes.
type PatchField int

const (
	FieldRd PatchField = iota
	FieldRs1
	FieldRs2
	FieldImm
)

// PatchPoint declares a substitution site in a template: which
// instruction, which field, and which call-site argument supplies the
// value.
type PatchPoint struct {
	InstrIndex int
	Field      PatchField
	ArgIndex   int
}

// ArgKind constrains what a call-site argument may be.
type ArgKind int

const (
	KindRegister ArgKind = iota
	KindImmediate
	KindRegOrImm
)

// Arg is one call-site argument: a register or an immediate.
type Arg struct {
	Reg   isa.Register
	Imm   int32
	IsReg bool
}

// Register wraps a register argument.
func Register(r isa.Register) Arg { return Arg{Reg: r, IsReg: true} }

// Immediate wraps an immediate argument.
func Immediate(v int32) Arg { return Arg{Imm: v} }

// Category groups intrinsics for listing and documentation.
type Category int

const (
	CatMemory Category = iota
	CatString
	CatConversion
	CatSearch
	CatSort
	CatHash
	CatMath
	CatArray
	CatBitwise
)

var categoryNames = [...]string{
	"memory", "string", "conversion", "search", "sort", "hash", "math", "array", "bitwise",
}

func (c Category) String() string { return categoryNames[c] }

// Def is an immutable intrinsic definition. Templates are catalog data
// built once at registry construction; every expansion clones the
// template before patching.
type Def struct {
	Name        string
	Description string
	Category    Category
	Args        []ArgKind
	Template    []isa.Instruction
	PatchPoints []PatchPoint
	// Labels maps template-internal label names to instruction
	// indexes, kept for documentation and disassembly tooling.
	Labels map[string]int
}

// Registry is the immutable intrinsic catalog. Construct with
// NewRegistry; safe for concurrent readers afterwards.
type Registry struct {
	defs map[string]*Def
}

// NewRegistry builds the full built-in catalog.
func NewRegistry() *Registry {
	defs := make(map[string]*Def)
	addMemoryIntrinsics(defs)
	addStringIntrinsics(defs)
	addMathIntrinsics(defs)
	addSearchIntrinsics(defs)
	addArrayIntrinsics(defs)
	addBitwiseIntrinsics(defs)
	addHashIntrinsics(defs)
	return &Registry{defs: defs}
}

// Lookup returns the definition for name, if registered.
func (r *Registry) Lookup(name string) (*Def, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// All returns every registered definition, in no particular order.
func (r *Registry) All() []*Def {
	out := make([]*Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	return out
}

// ByCategory returns the definitions in one category.
func (r *Registry) ByCategory(c Category) []*Def {
	var out []*Def
	for _, d := range r.defs {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// Expand instantiates the named intrinsic with the given call-site
// arguments. Argument count is validated first; then the template is
// cloned and each patch point substitutes its argument, rejecting a
// register argument at an immediate field and vice versa.
func (r *Registry) Expand(name string, args []Arg) ([]isa.Instruction, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, &UnknownIntrinsicError{Name: name}
	}
	if len(args) != len(def.Args) {
		return nil, &ArgCountError{Name: name, Expected: len(def.Args), Got: len(args)}
	}

	instrs := make([]isa.Instruction, len(def.Template))
	copy(instrs, def.Template)

	for _, p := range def.PatchPoints {
		arg := args[p.ArgIndex]
		instr := &instrs[p.InstrIndex]

		switch p.Field {
		case FieldRd, FieldRs1, FieldRs2:
			if !arg.IsReg {
				return nil, &TypeMismatchError{
					Name: name, ArgIndex: p.ArgIndex, Expected: "register", Got: "immediate",
				}
			}
			switch p.Field {
			case FieldRd:
				instr.Rd = arg.Reg
			case FieldRs1:
				instr.Rs1 = arg.Reg
			case FieldRs2:
				instr.Rs2 = arg.Reg
			}
		case FieldImm:
			if arg.IsReg {
				return nil, &TypeMismatchError{
					Name: name, ArgIndex: p.ArgIndex, Expected: "immediate", Got: "register",
				}
			}
			instr.SetImm(arg.Imm)
		}
	}
	return instrs, nil
}

// UnknownIntrinsicError reports a call to an unregistered intrinsic.
type UnknownIntrinsicError struct {
	Name string
}

func (e *UnknownIntrinsicError) Error() string {
	return fmt.Sprintf("unknown intrinsic: @%s", e.Name)
}

// ArgCountError reports an argument count mismatch. Intrinsics take an
// exact argument count, no variadics or defaults.
type ArgCountError struct {
	Name     string
	Expected int
	Got      int
}

func (e *ArgCountError) Error() string {
	return fmt.Sprintf("@%s expects %d arguments, got %d", e.Name, e.Expected, e.Got)
}

// TypeMismatchError reports a register argument supplied to an
// immediate patch field or vice versa.
type TypeMismatchError struct {
	Name     string
	ArgIndex int
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("@%s argument %d expected %s, got %s", e.Name, e.ArgIndex, e.Expected, e.Got)
}
