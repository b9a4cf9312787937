package intrinsics

import (
	"errors"
	"testing"

	"github.com/chazu/nrl/pkg/isa"
)

func TestRegistryContents(t *testing.T) {
	r := NewRegistry()

	byCategory := map[Category][]string{
		CatMemory:  {"memcpy", "memset", "memzero", "memcmp"},
		CatString:  {"strlen", "strcmp", "strcpy"},
		CatMath:    {"abs", "min", "max", "clamp", "gcd", "pow", "factorial"},
		CatSearch:  {"linear_search", "binary_search", "find_min", "find_max"},
		CatArray:   {"sum", "reverse", "fill", "count"},
		CatBitwise: {"popcount", "clz", "ctz", "bswap", "nextpow2"},
		CatHash:    {"fnv_hash", "djb2_hash"},
	}

	total := 0
	for cat, names := range byCategory {
		got := r.ByCategory(cat)
		if len(got) != len(names) {
			t.Errorf("category %v has %d intrinsics, want %d", cat, len(got), len(names))
		}
		for _, name := range names {
			d, ok := r.Lookup(name)
			if !ok {
				t.Errorf("Lookup(%q) failed", name)
				continue
			}
			if d.Category != cat {
				t.Errorf("%s category = %v, want %v", name, d.Category, cat)
			}
			if len(d.Template) == 0 {
				t.Errorf("%s has an empty template", name)
			}
		}
		total += len(names)
	}

	if got := len(r.All()); got != total {
		t.Errorf("registry holds %d intrinsics, want %d", got, total)
	}
}

func TestTemplateLabelsInRange(t *testing.T) {
	r := NewRegistry()
	for _, d := range r.All() {
		for label, idx := range d.Labels {
			if idx < 0 || idx >= len(d.Template) {
				t.Errorf("%s label %q index %d out of range (template has %d instructions)",
					d.Name, label, idx, len(d.Template))
			}
		}
		for i, p := range d.PatchPoints {
			if p.InstrIndex < 0 || p.InstrIndex >= len(d.Template) {
				t.Errorf("%s patch point %d instruction index %d out of range", d.Name, i, p.InstrIndex)
			}
			if p.ArgIndex < 0 || p.ArgIndex >= len(d.Args) {
				t.Errorf("%s patch point %d argument index %d out of range", d.Name, i, p.ArgIndex)
			}
		}
	}
}

func TestExpandMemcpy(t *testing.T) {
	r := NewRegistry()

	instrs, err := r.Expand("memcpy", []Arg{
		Register(isa.R1), Register(isa.R2), Register(isa.R3),
	})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(instrs) != 9 {
		t.Fatalf("memcpy expanded to %d instructions, want 9", len(instrs))
	}
	if instrs[0].Rd != isa.R1 {
		t.Errorf("patched rd = %v, want r1", instrs[0].Rd)
	}
	if instrs[len(instrs)-1].Op != isa.OpNop {
		t.Errorf("last instruction = %v, want nop", instrs[len(instrs)-1].Op)
	}
}

func TestExpandClonesTemplate(t *testing.T) {
	r := NewRegistry()
	def, _ := r.Lookup("memcpy")
	origRd := def.Template[0].Rd

	if _, err := r.Expand("memcpy", []Arg{
		Register(isa.R7), Register(isa.R2), Register(isa.R3),
	}); err != nil {
		t.Fatalf("Expand: %v", err)
	}

	if def.Template[0].Rd != origRd {
		t.Error("expansion mutated the catalog template")
	}
}

func TestExpandArgCountErrors(t *testing.T) {
	r := NewRegistry()

	_, err := r.Expand("memcpy", []Arg{Register(isa.R1), Register(isa.R2)})
	var argErr *ArgCountError
	if !errors.As(err, &argErr) {
		t.Fatalf("err = %v, want ArgCountError", err)
	}
	if argErr.Expected != 3 || argErr.Got != 2 {
		t.Errorf("ArgCountError = expected %d got %d, want 3/2", argErr.Expected, argErr.Got)
	}
	if want := "@memcpy expects 3 arguments, got 2"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	_, err = r.Expand("abs", []Arg{Register(isa.R1), Register(isa.R2)})
	if !errors.As(err, &argErr) {
		t.Fatalf("err = %v, want ArgCountError", err)
	}
	if argErr.Expected != 1 || argErr.Got != 2 {
		t.Errorf("ArgCountError = expected %d got %d, want 1/2", argErr.Expected, argErr.Got)
	}
}

func TestExpandUnknownIntrinsic(t *testing.T) {
	r := NewRegistry()
	_, err := r.Expand("frobnicate", nil)
	var unknownErr *UnknownIntrinsicError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("err = %v, want UnknownIntrinsicError", err)
	}
	if want := "unknown intrinsic: @frobnicate"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestExpandTypeMismatch(t *testing.T) {
	r := NewRegistry()

	// memcpy's only patch point targets a register field.
	_, err := r.Expand("memcpy", []Arg{
		Immediate(100), Register(isa.R2), Register(isa.R3),
	})
	var typeErr *TypeMismatchError
	if !errors.As(err, &typeErr) {
		t.Fatalf("err = %v, want TypeMismatchError", err)
	}
	if typeErr.ArgIndex != 0 || typeErr.Expected != "register" {
		t.Errorf("TypeMismatchError = %+v", typeErr)
	}
}

func TestSingleInstructionBitwise(t *testing.T) {
	r := NewRegistry()
	for name, mode := range map[string]isa.BitsOp{
		"popcount": isa.BitsPopcount,
		"clz":      isa.BitsClz,
		"ctz":      isa.BitsCtz,
		"bswap":    isa.BitsBswap,
	} {
		instrs, err := r.Expand(name, []Arg{Register(isa.R5)})
		if err != nil {
			t.Fatalf("Expand(%s): %v", name, err)
		}
		if len(instrs) != 1 {
			t.Fatalf("%s expanded to %d instructions, want 1", name, len(instrs))
		}
		if instrs[0].Op != isa.OpBits || instrs[0].Mode != byte(mode) {
			t.Errorf("%s = %+v, want bits mode %d", name, instrs[0], mode)
		}
	}
}

func TestBranchOffsetsStayInTemplate(t *testing.T) {
	r := NewRegistry()
	for _, d := range r.All() {
		for i, instr := range d.Template {
			if instr.Op != isa.OpBranch {
				continue
			}
			off, ok := instr.ImmValue()
			if !ok {
				continue
			}
			target := i + int(off)
			if target < 0 || target >= len(d.Template) {
				t.Errorf("%s instruction %d branches to %d, outside template of %d",
					d.Name, i, target, len(d.Template))
			}
		}
	}
}
