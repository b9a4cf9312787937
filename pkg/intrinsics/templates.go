package intrinsics

import "github.com/chazu/nrl/pkg/isa"

// Template catalog. Branch immediates are relative instruction-index
// offsets, matching the assembler's pass-2 output. Scratch register
// convention: arguments arrive in r10-r12, temporaries use r13-r15.

func addMemoryIntrinsics(defs map[string]*Def) {
	// @memcpy dst, src, len
	defs["memcpy"] = &Def{
		Name:        "memcpy",
		Description: "Copy len bytes from src to dst. Usage: @memcpy dst_reg, src_reg, len_imm_or_reg",
		Category:    CatMemory,
		Args:        []ArgKind{KindRegister, KindRegister, KindRegOrImm},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R13, isa.Zero, isa.Zero, 0), // counter = 0
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.R12, byte(isa.CondGe)), // counter >= len -> done
			isa.New(isa.OpAlu, isa.R14, isa.R11, isa.R13, byte(isa.AluAdd)),     // r14 = src + counter
			isa.New(isa.OpLoad, isa.R15, isa.R14, isa.Zero, byte(isa.WidthByte)),
			isa.New(isa.OpAlu, isa.R14, isa.R10, isa.R13, byte(isa.AluAdd)), // r14 = dst + counter
			isa.New(isa.OpStore, isa.R15, isa.R14, isa.Zero, byte(isa.WidthByte)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -6),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		PatchPoints: []PatchPoint{
			{InstrIndex: 0, Field: FieldRd, ArgIndex: 0},
		},
		Labels: map[string]int{"loop": 1, "done": 8},
	}

	// @memset dst, val, len
	defs["memset"] = &Def{
		Name:        "memset",
		Description: "Set len bytes at dst to val. Usage: @memset dst_reg, val_reg_or_imm, len_imm_or_reg",
		Category:    CatMemory,
		Args:        []ArgKind{KindRegister, KindRegOrImm, KindRegOrImm},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R13, isa.Zero, isa.Zero, 0), // counter = 0
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.R12, byte(isa.CondGe)),
			isa.New(isa.OpAlu, isa.R14, isa.R10, isa.R13, byte(isa.AluAdd)), // r14 = dst + counter
			isa.New(isa.OpStore, isa.R11, isa.R14, isa.Zero, byte(isa.WidthByte)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -4),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 1, "done": 6},
	}

	// @memzero dst, len
	defs["memzero"] = &Def{
		Name:        "memzero",
		Description: "Zero out len bytes at dst. Usage: @memzero dst_reg, len_imm_or_reg",
		Category:    CatMemory,
		Args:        []ArgKind{KindRegister, KindRegOrImm},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R13, isa.Zero, isa.Zero, 0), // counter = 0
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.R11, byte(isa.CondGe)),
			isa.New(isa.OpAlu, isa.R14, isa.R10, isa.R13, byte(isa.AluAdd)),
			isa.New(isa.OpStore, isa.Zero, isa.R14, isa.Zero, byte(isa.WidthByte)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -4),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 1, "done": 6},
	}

	// @memcmp ptr1, ptr2, len -> r0 (0 if equal)
	defs["memcmp"] = &Def{
		Name:        "memcmp",
		Description: "Compare len bytes at ptr1 and ptr2. Returns 0 if equal. Usage: @memcmp ptr1_reg, ptr2_reg, len_reg",
		Category:    CatMemory,
		Args:        []ArgKind{KindRegister, KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.Zero, isa.Zero, 0),  // result = 0
			isa.New(isa.OpMov, isa.R13, isa.Zero, isa.Zero, 0), // counter = 0
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.R12, byte(isa.CondGe)),
			isa.New(isa.OpAlu, isa.R14, isa.R10, isa.R13, byte(isa.AluAdd)),
			isa.New(isa.OpLoad, isa.R14, isa.R14, isa.Zero, byte(isa.WidthByte)),
			isa.New(isa.OpAlu, isa.R15, isa.R11, isa.R13, byte(isa.AluAdd)),
			isa.New(isa.OpLoad, isa.R15, isa.R15, isa.Zero, byte(isa.WidthByte)),
			isa.New(isa.OpBranch, isa.Zero, isa.R14, isa.R15, byte(isa.CondNe)), // differ -> diff
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -7),
			// diff:
			isa.New(isa.OpAlu, isa.R0, isa.R14, isa.R15, byte(isa.AluSub)),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "diff": 10, "done": 11},
	}
}

func addStringIntrinsics(defs map[string]*Def) {
	// @strlen str -> length in r0
	defs["strlen"] = &Def{
		Name:        "strlen",
		Description: "Calculate length of null-terminated string. Result in r0. Usage: @strlen str_reg",
		Category:    CatString,
		Args:        []ArgKind{KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.Zero, isa.Zero, 0), // length = 0
			isa.New(isa.OpMov, isa.R13, isa.R10, isa.Zero, 0), // ptr = str
			// loop:
			isa.New(isa.OpLoad, isa.R14, isa.R13, isa.Zero, byte(isa.WidthByte)),
			isa.New(isa.OpBranch, isa.Zero, isa.R14, isa.Zero, byte(isa.CondEq)), // *ptr == 0 -> done
			isa.WithImm(isa.OpAluI, isa.R0, isa.R0, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -4),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "done": 7},
	}

	// @strcmp str1, str2 -> r0 (0 if equal)
	defs["strcmp"] = &Def{
		Name:        "strcmp",
		Description: "Compare two null-terminated strings. Returns 0 if equal. Usage: @strcmp str1_reg, str2_reg",
		Category:    CatString,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R13, isa.R10, isa.Zero, 0), // ptr1 = str1
			isa.New(isa.OpMov, isa.R14, isa.R11, isa.Zero, 0), // ptr2 = str2
			// loop:
			isa.New(isa.OpLoad, isa.R0, isa.R13, isa.Zero, byte(isa.WidthByte)),
			isa.New(isa.OpLoad, isa.R15, isa.R14, isa.Zero, byte(isa.WidthByte)),
			isa.New(isa.OpBranch, isa.Zero, isa.R0, isa.R15, byte(isa.CondNe)),  // differ -> done
			isa.New(isa.OpBranch, isa.Zero, isa.R0, isa.Zero, byte(isa.CondEq)), // terminator -> done
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpAluI, isa.R14, isa.R14, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -6),
			// done:
			isa.New(isa.OpAlu, isa.R0, isa.R0, isa.R15, byte(isa.AluSub)),
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "done": 10},
	}

	// @strcpy dst, src -> dst in r0
	defs["strcpy"] = &Def{
		Name:        "strcpy",
		Description: "Copy null-terminated string from src to dst. Returns dst. Usage: @strcpy dst_reg, src_reg",
		Category:    CatString,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.R10, isa.Zero, 0),  // save dst for return
			isa.New(isa.OpMov, isa.R13, isa.R10, isa.Zero, 0), // dst_ptr = dst
			isa.New(isa.OpMov, isa.R14, isa.R11, isa.Zero, 0), // src_ptr = src
			// loop:
			isa.New(isa.OpLoad, isa.R15, isa.R14, isa.Zero, byte(isa.WidthByte)),
			isa.New(isa.OpStore, isa.R15, isa.R13, isa.Zero, byte(isa.WidthByte)),
			isa.New(isa.OpBranch, isa.Zero, isa.R15, isa.Zero, byte(isa.CondEq)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpAluI, isa.R14, isa.R14, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -5),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 3, "done": 9},
	}
}

func addMathIntrinsics(defs map[string]*Def) {
	// @abs val -> |val| in r0
	defs["abs"] = &Def{
		Name:        "abs",
		Description: "Calculate absolute value. Result in r0. Usage: @abs val_reg",
		Category:    CatMath,
		Args:        []ArgKind{KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.R10, isa.Zero, 0),
			isa.New(isa.OpBranch, isa.Zero, isa.R0, isa.Zero, byte(isa.CondGe)), // val >= 0 -> done
			isa.New(isa.OpAlu, isa.R0, isa.Zero, isa.R0, byte(isa.AluSub)),      // r0 = 0 - val
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"done": 3},
	}

	// @min a, b -> r0
	defs["min"] = &Def{
		Name:        "min",
		Description: "Return minimum of two values. Result in r0. Usage: @min a_reg, b_reg",
		Category:    CatMath,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.R10, isa.Zero, 0),
			isa.New(isa.OpBranch, isa.Zero, isa.R10, isa.R11, byte(isa.CondLe)),
			isa.New(isa.OpMov, isa.R0, isa.R11, isa.Zero, 0),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"done": 3},
	}

	// @max a, b -> r0
	defs["max"] = &Def{
		Name:        "max",
		Description: "Return maximum of two values. Result in r0. Usage: @max a_reg, b_reg",
		Category:    CatMath,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.R10, isa.Zero, 0),
			isa.New(isa.OpBranch, isa.Zero, isa.R10, isa.R11, byte(isa.CondGe)),
			isa.New(isa.OpMov, isa.R0, isa.R11, isa.Zero, 0),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"done": 3},
	}

	// @clamp val, min, max -> r0
	defs["clamp"] = &Def{
		Name:        "clamp",
		Description: "Clamp value between min and max. Result in r0. Usage: @clamp val_reg, min_reg, max_reg",
		Category:    CatMath,
		Args:        []ArgKind{KindRegister, KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.R10, isa.Zero, 0),
			isa.New(isa.OpBranch, isa.Zero, isa.R0, isa.R11, byte(isa.CondGe)), // val >= min -> check_max
			isa.New(isa.OpMov, isa.R0, isa.R11, isa.Zero, 0),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), 3),
			// check_max:
			isa.New(isa.OpBranch, isa.Zero, isa.R0, isa.R12, byte(isa.CondLe)),
			isa.New(isa.OpMov, isa.R0, isa.R12, isa.Zero, 0),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"check_max": 4, "done": 6},
	}

	// @gcd a, b -> r0
	defs["gcd"] = &Def{
		Name:        "gcd",
		Description: "Calculate GCD using Euclidean algorithm. Result in r0. Usage: @gcd a_reg, b_reg",
		Category:    CatMath,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.R10, isa.Zero, 0),
			isa.New(isa.OpMov, isa.R13, isa.R11, isa.Zero, 0),
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.Zero, byte(isa.CondEq)),
			isa.New(isa.OpMulDiv, isa.R14, isa.R0, isa.R13, byte(isa.MulDivMod)),
			isa.New(isa.OpMov, isa.R0, isa.R13, isa.Zero, 0),
			isa.New(isa.OpMov, isa.R13, isa.R14, isa.Zero, 0),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -4),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "done": 7},
	}

	// @pow base, exp -> r0
	defs["pow"] = &Def{
		Name:        "pow",
		Description: "Calculate base raised to exp (integer exponent). Result in r0. Usage: @pow base_reg, exp_reg",
		Category:    CatMath,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.WithImm(isa.OpMov, isa.R0, isa.Zero, 0, 1), // result = 1
			isa.New(isa.OpMov, isa.R13, isa.R11, isa.Zero, 0),
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.Zero, byte(isa.CondEq)),
			isa.New(isa.OpMulDiv, isa.R0, isa.R0, isa.R10, byte(isa.MulDivMul)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluSub), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -3),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "done": 6},
	}

	// @factorial n -> r0
	defs["factorial"] = &Def{
		Name:        "factorial",
		Description: "Calculate factorial of n. Result in r0. Usage: @factorial n_reg",
		Category:    CatMath,
		Args:        []ArgKind{KindRegister},
		Template: []isa.Instruction{
			isa.WithImm(isa.OpMov, isa.R0, isa.Zero, 0, 1),
			isa.New(isa.OpMov, isa.R13, isa.R10, isa.Zero, 0),
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.Zero, byte(isa.CondEq)),
			isa.New(isa.OpMulDiv, isa.R0, isa.R0, isa.R13, byte(isa.MulDivMul)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluSub), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -3),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "done": 6},
	}
}

func addSearchIntrinsics(defs map[string]*Def) {
	// @linear_search arr, len, target -> index in r0 (-1 if not found)
	defs["linear_search"] = &Def{
		Name:        "linear_search",
		Description: "Linear search for target in array. Returns index or -1. Usage: @linear_search arr_reg, len_reg, target_reg",
		Category:    CatSearch,
		Args:        []ArgKind{KindRegister, KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.Zero, isa.Zero, 0), // index = 0
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R0, isa.R11, byte(isa.CondGe)),
			isa.New(isa.OpMulDiv, isa.R13, isa.R0, isa.Zero, byte(isa.MulDivMul)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R0, byte(isa.AluShl), 3), // r13 = index * 8
			isa.New(isa.OpAlu, isa.R13, isa.R10, isa.R13, byte(isa.AluAdd)),
			isa.New(isa.OpLoad, isa.R14, isa.R13, isa.Zero, byte(isa.WidthDouble)),
			isa.New(isa.OpBranch, isa.Zero, isa.R14, isa.R12, byte(isa.CondEq)),
			isa.WithImm(isa.OpAluI, isa.R0, isa.R0, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -7),
			// not_found:
			isa.WithImm(isa.OpMov, isa.R0, isa.Zero, 0, -1),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 1, "not_found": 9, "done": 10},
	}

	// @binary_search arr, len, target -> index in r0 (-1 if not found)
	defs["binary_search"] = &Def{
		Name:        "binary_search",
		Description: "Binary search for target in sorted array. Returns index or -1. Usage: @binary_search arr_reg, len_reg, target_reg",
		Category:    CatSearch,
		Args:        []ArgKind{KindRegister, KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R13, isa.Zero, isa.Zero, 0), // left = 0
			isa.New(isa.OpMov, isa.R14, isa.R11, isa.Zero, 0),  // right = len
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.R14, byte(isa.CondGe)),
			isa.New(isa.OpAlu, isa.R0, isa.R13, isa.R14, byte(isa.AluAdd)),
			isa.WithImm(isa.OpAluI, isa.R0, isa.R0, byte(isa.AluShr), 1), // mid
			isa.WithImm(isa.OpAluI, isa.R15, isa.R0, byte(isa.AluShl), 3),
			isa.New(isa.OpAlu, isa.R15, isa.R10, isa.R15, byte(isa.AluAdd)),
			isa.New(isa.OpLoad, isa.R15, isa.R15, isa.Zero, byte(isa.WidthDouble)),
			isa.New(isa.OpBranch, isa.Zero, isa.R15, isa.R12, byte(isa.CondEq)),
			isa.New(isa.OpBranch, isa.Zero, isa.R15, isa.R12, byte(isa.CondLt)),
			// search_left:
			isa.New(isa.OpMov, isa.R14, isa.R0, isa.Zero, 0), // right = mid
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -9),
			// search_right:
			isa.WithImm(isa.OpAluI, isa.R13, isa.R0, byte(isa.AluAdd), 1), // left = mid + 1
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -11),
			// not_found:
			isa.WithImm(isa.OpMov, isa.R0, isa.Zero, 0, -1),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "search_left": 10, "search_right": 12, "not_found": 14, "done": 15},
	}

	// @find_min arr, len -> index in r0
	defs["find_min"] = &Def{
		Name:        "find_min",
		Description: "Find index of minimum element in array. Result in r0. Usage: @find_min arr_reg, len_reg",
		Category:    CatSearch,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template:    extremumTemplate(isa.CondGe),
		Labels:      map[string]int{"loop": 3, "skip": 10, "done": 12},
	}

	// @find_max arr, len -> index in r0
	defs["find_max"] = &Def{
		Name:        "find_max",
		Description: "Find index of maximum element in array. Result in r0. Usage: @find_max arr_reg, len_reg",
		Category:    CatSearch,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template:    extremumTemplate(isa.CondLe),
		Labels:      map[string]int{"loop": 3, "skip": 10, "done": 12},
	}
}

// extremumTemplate is the shared find_min/find_max scan; skipCond keeps
// the current extremum when it holds for (candidate, extremum).
func extremumTemplate(skipCond isa.BranchCond) []isa.Instruction {
	return []isa.Instruction{
		isa.New(isa.OpMov, isa.R0, isa.Zero, isa.Zero, 0),                    // best_idx = 0
		isa.New(isa.OpLoad, isa.R13, isa.R10, isa.Zero, byte(isa.WidthDouble)), // best = arr[0]
		isa.WithImm(isa.OpMov, isa.R14, isa.Zero, 0, 1),                      // i = 1
		// loop:
		isa.New(isa.OpBranch, isa.Zero, isa.R14, isa.R11, byte(isa.CondGe)),
		isa.WithImm(isa.OpAluI, isa.R15, isa.R14, byte(isa.AluShl), 3),
		isa.New(isa.OpAlu, isa.R15, isa.R10, isa.R15, byte(isa.AluAdd)),
		isa.New(isa.OpLoad, isa.R15, isa.R15, isa.Zero, byte(isa.WidthDouble)),
		isa.New(isa.OpBranch, isa.Zero, isa.R15, isa.R13, byte(skipCond)),
		isa.New(isa.OpMov, isa.R13, isa.R15, isa.Zero, 0),
		isa.New(isa.OpMov, isa.R0, isa.R14, isa.Zero, 0),
		// skip:
		isa.WithImm(isa.OpAluI, isa.R14, isa.R14, byte(isa.AluAdd), 1),
		isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -8),
		// done:
		isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
	}
}

func addArrayIntrinsics(defs map[string]*Def) {
	// @sum arr, len -> r0
	defs["sum"] = &Def{
		Name:        "sum",
		Description: "Sum all elements in array. Result in r0. Usage: @sum arr_reg, len_reg",
		Category:    CatArray,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.Zero, isa.Zero, 0),  // sum = 0
			isa.New(isa.OpMov, isa.R13, isa.Zero, isa.Zero, 0), // i = 0
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.R11, byte(isa.CondGe)),
			isa.WithImm(isa.OpAluI, isa.R14, isa.R13, byte(isa.AluShl), 3),
			isa.New(isa.OpAlu, isa.R14, isa.R10, isa.R14, byte(isa.AluAdd)),
			isa.New(isa.OpLoad, isa.R14, isa.R14, isa.Zero, byte(isa.WidthDouble)),
			isa.New(isa.OpAlu, isa.R0, isa.R0, isa.R14, byte(isa.AluAdd)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -6),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "done": 9},
	}

	// @reverse arr, len
	defs["reverse"] = &Def{
		Name:        "reverse",
		Description: "Reverse array in place. Usage: @reverse arr_reg, len_reg",
		Category:    CatArray,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R13, isa.Zero, isa.Zero, 0),             // left = 0
			isa.WithImm(isa.OpAluI, isa.R14, isa.R11, byte(isa.AluSub), 1), // right = len - 1
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.R14, byte(isa.CondGe)),
			isa.WithImm(isa.OpAluI, isa.R15, isa.R13, byte(isa.AluShl), 3),
			isa.New(isa.OpAlu, isa.R15, isa.R10, isa.R15, byte(isa.AluAdd)),
			isa.New(isa.OpLoad, isa.R0, isa.R15, isa.Zero, byte(isa.WidthDouble)),
			isa.WithImm(isa.OpAluI, isa.R1, isa.R14, byte(isa.AluShl), 3),
			isa.New(isa.OpAlu, isa.R1, isa.R10, isa.R1, byte(isa.AluAdd)),
			isa.New(isa.OpLoad, isa.R2, isa.R1, isa.Zero, byte(isa.WidthDouble)),
			isa.New(isa.OpStore, isa.R2, isa.R15, isa.Zero, byte(isa.WidthDouble)),
			isa.New(isa.OpStore, isa.R0, isa.R1, isa.Zero, byte(isa.WidthDouble)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpAluI, isa.R14, isa.R14, byte(isa.AluSub), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -11),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "done": 14},
	}

	// @fill arr, len, val
	defs["fill"] = &Def{
		Name:        "fill",
		Description: "Fill array with value. Usage: @fill arr_reg, len_reg, val_reg",
		Category:    CatArray,
		Args:        []ArgKind{KindRegister, KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R13, isa.Zero, isa.Zero, 0), // i = 0
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.R11, byte(isa.CondGe)),
			isa.WithImm(isa.OpAluI, isa.R14, isa.R13, byte(isa.AluShl), 3),
			isa.New(isa.OpAlu, isa.R14, isa.R10, isa.R14, byte(isa.AluAdd)),
			isa.New(isa.OpStore, isa.R12, isa.R14, isa.Zero, byte(isa.WidthDouble)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -5),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 1, "done": 7},
	}

	// @count arr, len, val -> r0
	defs["count"] = &Def{
		Name:        "count",
		Description: "Count occurrences of value in array. Result in r0. Usage: @count arr_reg, len_reg, val_reg",
		Category:    CatArray,
		Args:        []ArgKind{KindRegister, KindRegister, KindRegister},
		Template: []isa.Instruction{
			isa.New(isa.OpMov, isa.R0, isa.Zero, isa.Zero, 0),  // count = 0
			isa.New(isa.OpMov, isa.R13, isa.Zero, isa.Zero, 0), // i = 0
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R13, isa.R11, byte(isa.CondGe)),
			isa.WithImm(isa.OpAluI, isa.R14, isa.R13, byte(isa.AluShl), 3),
			isa.New(isa.OpAlu, isa.R14, isa.R10, isa.R14, byte(isa.AluAdd)),
			isa.New(isa.OpLoad, isa.R14, isa.R14, isa.Zero, byte(isa.WidthDouble)),
			isa.New(isa.OpBranch, isa.Zero, isa.R14, isa.R12, byte(isa.CondNe)),
			isa.WithImm(isa.OpAluI, isa.R0, isa.R0, byte(isa.AluAdd), 1),
			// skip:
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -7),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "skip": 8, "done": 10},
	}
}

func addBitwiseIntrinsics(defs map[string]*Def) {
	single := func(name, desc string, op isa.BitsOp) *Def {
		return &Def{
			Name:        name,
			Description: desc,
			Category:    CatBitwise,
			Args:        []ArgKind{KindRegister},
			Template: []isa.Instruction{
				isa.New(isa.OpBits, isa.R0, isa.R10, isa.Zero, byte(op)),
			},
			Labels: map[string]int{},
		}
	}
	defs["popcount"] = single("popcount",
		"Count number of set bits. Result in r0. Usage: @popcount val_reg", isa.BitsPopcount)
	defs["clz"] = single("clz",
		"Count leading zeros. Result in r0. Usage: @clz val_reg", isa.BitsClz)
	defs["ctz"] = single("ctz",
		"Count trailing zeros. Result in r0. Usage: @ctz val_reg", isa.BitsCtz)
	defs["bswap"] = single("bswap",
		"Byte swap for endian conversion. Result in r0. Usage: @bswap val_reg", isa.BitsBswap)

	// @nextpow2 val -> r0, shift-or cascade then +1
	tmpl := []isa.Instruction{
		isa.WithImm(isa.OpAluI, isa.R0, isa.R10, byte(isa.AluSub), 1),
	}
	for _, sh := range []int32{1, 2, 4, 8, 16, 32} {
		tmpl = append(tmpl,
			isa.WithImm(isa.OpAluI, isa.R13, isa.R0, byte(isa.AluShr), sh),
			isa.New(isa.OpAlu, isa.R0, isa.R0, isa.R13, byte(isa.AluOr)),
		)
	}
	tmpl = append(tmpl, isa.WithImm(isa.OpAluI, isa.R0, isa.R0, byte(isa.AluAdd), 1))
	defs["nextpow2"] = &Def{
		Name:        "nextpow2",
		Description: "Round up to next power of 2. Result in r0. Usage: @nextpow2 val_reg",
		Category:    CatBitwise,
		Args:        []ArgKind{KindRegister},
		Template:    tmpl,
		Labels:      map[string]int{},
	}
}

func addHashIntrinsics(defs map[string]*Def) {
	// @fnv_hash data, len -> r0 (FNV-1a 64-bit)
	defs["fnv_hash"] = &Def{
		Name:        "fnv_hash",
		Description: "FNV-1a 64-bit hash. Result in r0. Usage: @fnv_hash data_reg, len_reg",
		Category:    CatHash,
		Args:        []ArgKind{KindRegister, KindRegister},
		Template: []isa.Instruction{
			// Offset basis 0xcbf29ce484222325 built from two halves.
			isa.WithImm(isa.OpMov, isa.R0, isa.Zero, 0, int32(int64(0x84222325)-(1<<32))),
			isa.WithImm(isa.OpMov, isa.R13, isa.Zero, 0, int32(int64(0xcbf29ce4)-(1<<32))),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluShl), 32),
			isa.New(isa.OpAlu, isa.R0, isa.R0, isa.R13, byte(isa.AluOr)),
			isa.New(isa.OpMov, isa.R14, isa.Zero, isa.Zero, 0), // i = 0
			// loop:
			isa.New(isa.OpBranch, isa.Zero, isa.R14, isa.R11, byte(isa.CondGe)),
			isa.New(isa.OpAlu, isa.R15, isa.R10, isa.R14, byte(isa.AluAdd)),
			isa.New(isa.OpLoad, isa.R15, isa.R15, isa.Zero, byte(isa.WidthByte)),
			isa.New(isa.OpAlu, isa.R0, isa.R0, isa.R15, byte(isa.AluXor)),
			// Multiply by the FNV prime, simplified to shift and add.
			isa.WithImm(isa.OpAluI, isa.R13, isa.R0, byte(isa.AluShl), 8),
			isa.New(isa.OpAlu, isa.R0, isa.R0, isa.R13, byte(isa.AluAdd)),
			isa.WithImm(isa.OpAluI, isa.R14, isa.R14, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -7),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 5, "done": 13},
	}

	// @djb2_hash str -> r0
	defs["djb2_hash"] = &Def{
		Name:        "djb2_hash",
		Description: "DJB2 hash for null-terminated string. Result in r0. Usage: @djb2_hash str_reg",
		Category:    CatHash,
		Args:        []ArgKind{KindRegister},
		Template: []isa.Instruction{
			isa.WithImm(isa.OpMov, isa.R0, isa.Zero, 0, 5381),
			isa.New(isa.OpMov, isa.R13, isa.R10, isa.Zero, 0), // ptr = str
			// loop:
			isa.New(isa.OpLoad, isa.R14, isa.R13, isa.Zero, byte(isa.WidthByte)),
			isa.New(isa.OpBranch, isa.Zero, isa.R14, isa.Zero, byte(isa.CondEq)),
			// hash = hash*33 + c = (hash << 5) + hash + c
			isa.WithImm(isa.OpAluI, isa.R15, isa.R0, byte(isa.AluShl), 5),
			isa.New(isa.OpAlu, isa.R0, isa.R15, isa.R0, byte(isa.AluAdd)),
			isa.New(isa.OpAlu, isa.R0, isa.R0, isa.R14, byte(isa.AluAdd)),
			isa.WithImm(isa.OpAluI, isa.R13, isa.R13, byte(isa.AluAdd), 1),
			isa.WithImm(isa.OpBranch, isa.Zero, isa.Zero, byte(isa.CondAlways), -6),
			// done:
			isa.New(isa.OpNop, isa.Zero, isa.Zero, isa.Zero, 0),
		},
		Labels: map[string]int{"loop": 2, "done": 9},
	}
}
