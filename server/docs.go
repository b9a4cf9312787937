package server

import "github.com/chazu/nrl/pkg/isa"

// Hover and completion documentation tables. Only base mnemonics are
// listed; suffixed forms (load.w, branch.ne) hover with the base doc.

type mnemonicEntry struct {
	name     string
	synopsis string
}

var mnemonicList = []mnemonicEntry{
	{"add", "add rd, rs1, rs2|imm"},
	{"sub", "sub rd, rs1, rs2|imm"},
	{"and", "and rd, rs1, rs2|imm"},
	{"or", "or rd, rs1, rs2|imm"},
	{"xor", "xor rd, rs1, rs2|imm"},
	{"shl", "shl rd, rs1, rs2|imm"},
	{"shr", "shr rd, rs1, rs2|imm"},
	{"sar", "sar rd, rs1, rs2|imm"},
	{"mul", "mul rd, rs1, rs2"},
	{"mulh", "mulh rd, rs1, rs2"},
	{"div", "div rd, rs1, rs2"},
	{"mod", "mod rd, rs1, rs2"},
	{"mov", "mov rd, rs1|imm|label"},
	{"li", "li rd, imm"},
	{"load", "load.b|h|w|d rd, [rs1 + off]"},
	{"store", "store.b|h|w|d rd, [rs1 + off]"},
	{"b", "b label"},
	{"beq", "beq rs1, rs2, label"},
	{"bne", "bne rs1, rs2, label"},
	{"blt", "blt rs1, rs2, label"},
	{"ble", "ble rs1, rs2, label"},
	{"bgt", "bgt rs1, rs2, label"},
	{"bge", "bge rs1, rs2, label"},
	{"bltu", "bltu rs1, rs2, label"},
	{"call", "call label"},
	{"ret", "ret"},
	{"jump", "jump label|rs1"},
	{"spawn", "spawn rd, label [, rs1]"},
	{"join", "join rs1"},
	{"chan", "chan.create|send|recv|close rd [, rs1]"},
	{"send", "send rd, rs1"},
	{"recv", "recv rd, rs1"},
	{"fence", "fence.acquire|release|acqrel|seqcst"},
	{"yield", "yield"},
	{"cas", "cas rd, rs1, rs2"},
	{"xchg", "xchg rd, rs1, rs2"},
	{"cap", "cap.restrict|query rd, rs1 [, rs2]"},
	{"taint", "taint rd [, rs1]"},
	{"sanitize", "sanitize rd [, rs1]"},
	{"trap", "trap [imm]"},
	{"syscall", "syscall [imm]"},
	{"nop", "nop"},
	{"halt", "halt"},
	{"file", "file.open|read|write|close|seek|stat|mkdir|delete rd, rs1 ..."},
	{"net", "net.socket|connect|bind|listen|accept|send|recv|close rd, rs1 ..."},
	{"setopt", "setopt.nonblock|timeout|keepalive|... rs1 [, imm]"},
	{"io", "io.print|readline|getargs|getenv rd, rs1"},
	{"print", "print rd, rs1"},
	{"time", "time.now|sleep|monotonic rd [, imm]"},
	{"fpu", "fpu.fadd|fsub|fmul|fdiv|fsqrt|... rd, rs1 [, rs2]"},
	{"rand", "rand.bytes|u64 rd [, rs1]"},
	{"bits", "bits.popcount|clz|ctz|bswap rd, rs1"},
	{"ext.call", "ext.call rd, id|name|@\"intent\" [, rs1 [, rs2]]"},
	{"alu", "alu.add|sub|and|or|xor|shl|shr|sar rd, rs1, rs2"},
	{"alui", "alui.add|sub|and|or|xor|shl|shr|sar rd, rs1, imm"},
	{"muldiv", "muldiv.mul|mulh|div|mod rd, rs1, rs2"},
	{"atomic", "atomic.cas|xchg|add|and|or|xor|min|max rd, rs1, rs2"},
	{"branch", "branch.eq|ne|lt|le|gt|ge|ltu rs1, rs2, label"},
}

var mnemonicDocs = buildMnemonicDocs()

func buildMnemonicDocs() map[string]string {
	docs := make(map[string]string, len(mnemonicList))
	for _, m := range mnemonicList {
		docs[m.name] = "`" + m.synopsis + "`"
	}
	// Aliases hover with their base doc.
	for alias, base := range map[string]string{
		"sll": "shl", "srl": "shr", "sra": "sar", "rem": "mod",
		"ld": "load", "st": "store", "lb": "load", "lh": "load",
		"lw": "load", "sb": "store", "sh": "store", "sw": "store",
		"sd": "store", "br": "b", "jmp": "b", "j": "b",
		"move": "mov", "return": "ret", "cmpxchg": "cas",
		"puts": "print", "gets": "io", "hlt": "halt",
		"untaint": "sanitize", "extcall": "ext.call",
	} {
		docs[alias] = docs[base]
	}
	return docs
}

var directives = []string{
	".entry", ".section", ".text", ".data", ".bss",
	".align", ".p2align", ".global", ".globl",
	".byte", ".word", ".dword", ".quad",
	".space", ".skip", ".zero",
	".ascii", ".string", ".asciz",
}

func registerDoc(reg isa.Register) string {
	switch reg {
	case isa.Sp:
		return "Stack pointer."
	case isa.Fp:
		return "Frame pointer."
	case isa.Lr:
		return "Link register, holds the return address after call."
	case isa.Pc:
		return "Program counter (read-only)."
	case isa.Csp:
		return "Capability stack pointer."
	case isa.Cfp:
		return "Capability frame pointer."
	case isa.Zero:
		return "Hard-wired zero; writes are discarded."
	default:
		return "General purpose register."
	}
}
