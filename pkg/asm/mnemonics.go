package asm

import (
	"strings"

	"github.com/chazu/nrl/pkg/isa"
)

// parseMnemonic maps a lowercased mnemonic to its opcode and mode.
// Both terse forms (add, beq, lw) and dotted forms (alu.add, branch.eq,
// load.w) are accepted.
func (a *Assembler) parseMnemonic(mnemonic string) (isa.Opcode, byte, error) {
	base := mnemonic
	suffix := ""
	if dot := strings.Index(mnemonic, "."); dot >= 0 {
		base = mnemonic[:dot]
		suffix = mnemonic[dot+1:]
	}

	switch base {
	// ALU
	case "add":
		return isa.OpAlu, byte(isa.AluAdd), nil
	case "sub":
		return isa.OpAlu, byte(isa.AluSub), nil
	case "and":
		return isa.OpAlu, byte(isa.AluAnd), nil
	case "or":
		return isa.OpAlu, byte(isa.AluOr), nil
	case "xor":
		return isa.OpAlu, byte(isa.AluXor), nil
	case "shl", "sll":
		return isa.OpAlu, byte(isa.AluShl), nil
	case "shr", "srl":
		return isa.OpAlu, byte(isa.AluShr), nil
	case "sar", "sra":
		return isa.OpAlu, byte(isa.AluSar), nil
	case "alu":
		op, ok := aluSuffix(suffix)
		if !ok {
			return 0, 0, &InvalidOpcodeError{Mnemonic: mnemonic}
		}
		return isa.OpAlu, byte(op), nil

	// ALU immediate
	case "addi":
		return isa.OpAluI, byte(isa.AluAdd), nil
	case "subi":
		return isa.OpAluI, byte(isa.AluSub), nil
	case "andi":
		return isa.OpAluI, byte(isa.AluAnd), nil
	case "ori":
		return isa.OpAluI, byte(isa.AluOr), nil
	case "xori":
		return isa.OpAluI, byte(isa.AluXor), nil
	case "shli", "slli":
		return isa.OpAluI, byte(isa.AluShl), nil
	case "shri", "srli":
		return isa.OpAluI, byte(isa.AluShr), nil
	case "sari", "srai":
		return isa.OpAluI, byte(isa.AluSar), nil
	case "alui":
		op, ok := aluSuffix(suffix)
		if !ok {
			return 0, 0, &InvalidOpcodeError{Mnemonic: mnemonic}
		}
		return isa.OpAluI, byte(op), nil

	// Multiply/divide
	case "mul":
		return isa.OpMulDiv, byte(isa.MulDivMul), nil
	case "mulh":
		return isa.OpMulDiv, byte(isa.MulDivMulH), nil
	case "div":
		return isa.OpMulDiv, byte(isa.MulDivDiv), nil
	case "mod", "rem":
		return isa.OpMulDiv, byte(isa.MulDivMod), nil
	case "muldiv":
		switch suffix {
		case "mul":
			return isa.OpMulDiv, byte(isa.MulDivMul), nil
		case "mulh":
			return isa.OpMulDiv, byte(isa.MulDivMulH), nil
		case "div":
			return isa.OpMulDiv, byte(isa.MulDivDiv), nil
		case "mod", "rem":
			return isa.OpMulDiv, byte(isa.MulDivMod), nil
		}
		return 0, 0, &InvalidOpcodeError{Mnemonic: mnemonic}

	// Memory
	case "load", "ld":
		return isa.OpLoad, byte(widthSuffix(suffix)), nil
	case "store", "st":
		return isa.OpStore, byte(widthSuffix(suffix)), nil
	case "lb":
		return isa.OpLoad, byte(isa.WidthByte), nil
	case "lh":
		return isa.OpLoad, byte(isa.WidthHalf), nil
	case "lw":
		return isa.OpLoad, byte(isa.WidthWord), nil
	case "sb":
		return isa.OpStore, byte(isa.WidthByte), nil
	case "sh":
		return isa.OpStore, byte(isa.WidthHalf), nil
	case "sw":
		return isa.OpStore, byte(isa.WidthWord), nil
	case "sd":
		return isa.OpStore, byte(isa.WidthDouble), nil

	// Atomics
	case "cas", "cmpxchg":
		return isa.OpAtomic, byte(isa.AtomicCas), nil
	case "xchg":
		return isa.OpAtomic, byte(isa.AtomicXchg), nil
	case "atomic":
		op := isa.AtomicAdd
		switch suffix {
		case "add":
			op = isa.AtomicAdd
		case "and":
			op = isa.AtomicAnd
		case "or":
			op = isa.AtomicOr
		case "xor":
			op = isa.AtomicXor
		case "min":
			op = isa.AtomicMin
		case "max":
			op = isa.AtomicMax
		case "cas":
			op = isa.AtomicCas
		case "xchg":
			op = isa.AtomicXchg
		}
		return isa.OpAtomic, byte(op), nil

	// Branches
	case "b", "br", "jmp", "j":
		return isa.OpBranch, byte(isa.CondAlways), nil
	case "beq":
		return isa.OpBranch, byte(isa.CondEq), nil
	case "bne":
		return isa.OpBranch, byte(isa.CondNe), nil
	case "blt":
		return isa.OpBranch, byte(isa.CondLt), nil
	case "ble":
		return isa.OpBranch, byte(isa.CondLe), nil
	case "bgt":
		return isa.OpBranch, byte(isa.CondGt), nil
	case "bge":
		return isa.OpBranch, byte(isa.CondGe), nil
	case "bltu":
		return isa.OpBranch, byte(isa.CondLtu), nil
	case "branch":
		switch suffix {
		case "eq":
			return isa.OpBranch, byte(isa.CondEq), nil
		case "ne":
			return isa.OpBranch, byte(isa.CondNe), nil
		case "lt":
			return isa.OpBranch, byte(isa.CondLt), nil
		case "le":
			return isa.OpBranch, byte(isa.CondLe), nil
		case "gt":
			return isa.OpBranch, byte(isa.CondGt), nil
		case "ge":
			return isa.OpBranch, byte(isa.CondGe), nil
		case "ltu":
			return isa.OpBranch, byte(isa.CondLtu), nil
		case "", "always":
			return isa.OpBranch, byte(isa.CondAlways), nil
		}
		return 0, 0, &InvalidOpcodeError{Mnemonic: mnemonic}

	// Control flow
	case "call":
		return isa.OpCall, 0, nil
	case "ret", "return":
		return isa.OpRet, 0, nil
	case "jump":
		return isa.OpJump, 0, nil

	// Capabilities
	case "cap":
		switch suffix {
		case "restrict":
			return isa.OpCapRestrict, 0, nil
		case "query", "get":
			return isa.OpCapQuery, 0, nil
		default:
			return isa.OpCapNew, 0, nil
		}

	// Concurrency
	case "spawn":
		return isa.OpSpawn, 0, nil
	case "join":
		return isa.OpJoin, 0, nil
	case "chan":
		op := isa.ChanCreate
		switch suffix {
		case "send":
			op = isa.ChanSend
		case "recv":
			op = isa.ChanRecv
		case "close":
			op = isa.ChanClose
		}
		return isa.OpChan, byte(op), nil
	case "send":
		return isa.OpChan, byte(isa.ChanSend), nil
	case "recv":
		return isa.OpChan, byte(isa.ChanRecv), nil
	case "fence":
		mode := isa.FenceSeqCst
		switch suffix {
		case "acquire", "acq":
			mode = isa.FenceAcquire
		case "release", "rel":
			mode = isa.FenceRelease
		case "acqrel":
			mode = isa.FenceAcqRel
		case "seqcst", "seq":
			mode = isa.FenceSeqCst
		}
		return isa.OpFence, byte(mode), nil
	case "yield":
		return isa.OpYield, 0, nil

	// Information flow
	case "taint":
		return isa.OpTaint, 0, nil
	case "sanitize", "untaint":
		return isa.OpSanitize, 0, nil

	// System
	case "mov", "move":
		return isa.OpMov, 0, nil
	case "li":
		return isa.OpMov, 1, nil
	case "trap", "syscall":
		return isa.OpTrap, byte(isa.TrapSyscall), nil
	case "break", "brk", "bkpt":
		return isa.OpTrap, byte(isa.TrapBreakpoint), nil
	case "nop":
		return isa.OpNop, 0, nil
	case "halt", "hlt":
		return isa.OpHalt, 0, nil

	// File I/O
	case "file":
		op := isa.FileOpen
		switch suffix {
		case "read":
			op = isa.FileRead
		case "write":
			op = isa.FileWrite
		case "close":
			op = isa.FileClose
		case "seek":
			op = isa.FileSeek
		case "stat":
			op = isa.FileStat
		case "mkdir":
			op = isa.FileMkdir
		case "delete", "rm":
			op = isa.FileDelete
		}
		return isa.OpFile, byte(op), nil
	case "fopen":
		return isa.OpFile, byte(isa.FileOpen), nil
	case "fread":
		return isa.OpFile, byte(isa.FileRead), nil
	case "fwrite":
		return isa.OpFile, byte(isa.FileWrite), nil
	case "fclose":
		return isa.OpFile, byte(isa.FileClose), nil
	case "fseek":
		return isa.OpFile, byte(isa.FileSeek), nil
	case "fstat":
		return isa.OpFile, byte(isa.FileStat), nil
	case "mkdir":
		return isa.OpFile, byte(isa.FileMkdir), nil
	case "fdelete", "frm":
		return isa.OpFile, byte(isa.FileDelete), nil

	// Network I/O
	case "net":
		op := isa.NetSocket
		switch suffix {
		case "connect":
			op = isa.NetConnect
		case "bind":
			op = isa.NetBind
		case "listen":
			op = isa.NetListen
		case "accept":
			op = isa.NetAccept
		case "send":
			op = isa.NetSend
		case "recv":
			op = isa.NetRecv
		case "close":
			op = isa.NetClose
		}
		return isa.OpNet, byte(op), nil
	case "socket":
		return isa.OpNet, byte(isa.NetSocket), nil
	case "connect":
		return isa.OpNet, byte(isa.NetConnect), nil
	case "bind":
		return isa.OpNet, byte(isa.NetBind), nil
	case "listen":
		return isa.OpNet, byte(isa.NetListen), nil
	case "accept":
		return isa.OpNet, byte(isa.NetAccept), nil
	case "nsend":
		return isa.OpNet, byte(isa.NetSend), nil
	case "nrecv":
		return isa.OpNet, byte(isa.NetRecv), nil
	case "nclose":
		return isa.OpNet, byte(isa.NetClose), nil

	// Socket options
	case "setopt", "setsockopt":
		opt := isa.OptNonblock
		switch suffix {
		case "timeout":
			opt = isa.OptTimeoutMs
		case "keepalive":
			opt = isa.OptKeepalive
		case "reuseaddr":
			opt = isa.OptReuseAddr
		case "nodelay":
			opt = isa.OptNoDelay
		case "rcvbuf":
			opt = isa.OptRecvBufSize
		case "sndbuf":
			opt = isa.OptSendBufSize
		case "linger":
			opt = isa.OptLinger
		}
		return isa.OpNetSetopt, byte(opt), nil

	// Console I/O
	case "io":
		op := isa.IoPrint
		switch suffix {
		case "readline", "read":
			op = isa.IoReadLine
		case "getargs", "args":
			op = isa.IoGetArgs
		case "getenv", "env":
			op = isa.IoGetEnv
		}
		return isa.OpIo, byte(op), nil
	case "print", "puts":
		return isa.OpIo, byte(isa.IoPrint), nil
	case "readline", "gets":
		return isa.OpIo, byte(isa.IoReadLine), nil
	case "getargs":
		return isa.OpIo, byte(isa.IoGetArgs), nil
	case "getenv":
		return isa.OpIo, byte(isa.IoGetEnv), nil

	// Time
	case "time":
		op := isa.TimeNow
		switch suffix {
		case "sleep":
			op = isa.TimeSleep
		case "mono", "monotonic":
			op = isa.TimeMonotonic
		}
		return isa.OpTime, byte(op), nil
	case "now":
		return isa.OpTime, byte(isa.TimeNow), nil
	case "sleep":
		return isa.OpTime, byte(isa.TimeSleep), nil
	case "monotonic":
		return isa.OpTime, byte(isa.TimeMonotonic), nil

	// Floating point
	case "fpu":
		op, ok := fpuSuffix(suffix)
		if !ok {
			op = isa.FpuAdd
		}
		return isa.OpFpu, byte(op), nil
	case "fadd", "fsub", "fmul", "fdiv", "fsqrt", "fabs", "ffloor", "fceil",
		"fcmpeq", "fcmpne", "fcmplt", "fcmple", "fcmpgt", "fcmpge":
		op, _ := fpuSuffix(base[1:])
		return isa.OpFpu, byte(op), nil

	// Random
	case "rand":
		op := isa.RandU64
		if suffix == "bytes" {
			op = isa.RandBytes
		}
		return isa.OpRand, byte(op), nil
	case "randbytes":
		return isa.OpRand, byte(isa.RandBytes), nil
	case "randu64", "randint":
		return isa.OpRand, byte(isa.RandU64), nil

	// Bit manipulation
	case "bits":
		op := isa.BitsPopcount
		switch suffix {
		case "clz":
			op = isa.BitsClz
		case "ctz":
			op = isa.BitsCtz
		case "bswap":
			op = isa.BitsBswap
		}
		return isa.OpBits, byte(op), nil
	case "popcount", "popcnt":
		return isa.OpBits, byte(isa.BitsPopcount), nil
	case "clz":
		return isa.OpBits, byte(isa.BitsClz), nil
	case "ctz":
		return isa.OpBits, byte(isa.BitsCtz), nil
	case "bswap":
		return isa.OpBits, byte(isa.BitsBswap), nil

	// Extension calls
	case "ext":
		if suffix == "call" {
			return isa.OpExtCall, 0, nil
		}
		return 0, 0, &InvalidOpcodeError{Mnemonic: mnemonic}
	case "extcall":
		return isa.OpExtCall, 0, nil
	}

	return 0, 0, &InvalidOpcodeError{Mnemonic: mnemonic}
}

func aluSuffix(suffix string) (isa.AluOp, bool) {
	switch suffix {
	case "add":
		return isa.AluAdd, true
	case "sub":
		return isa.AluSub, true
	case "and":
		return isa.AluAnd, true
	case "or":
		return isa.AluOr, true
	case "xor":
		return isa.AluXor, true
	case "shl", "sll":
		return isa.AluShl, true
	case "shr", "srl":
		return isa.AluShr, true
	case "sar", "sra":
		return isa.AluSar, true
	}
	return 0, false
}

func widthSuffix(suffix string) isa.MemWidth {
	switch suffix {
	case "b", "byte":
		return isa.WidthByte
	case "h", "half", "w16":
		return isa.WidthHalf
	case "w", "word", "w32":
		return isa.WidthWord
	default:
		return isa.WidthDouble
	}
}

func fpuSuffix(suffix string) (isa.FpuOp, bool) {
	switch suffix {
	case "add", "fadd":
		return isa.FpuAdd, true
	case "sub", "fsub":
		return isa.FpuSub, true
	case "mul", "fmul":
		return isa.FpuMul, true
	case "div", "fdiv":
		return isa.FpuDiv, true
	case "sqrt", "fsqrt":
		return isa.FpuSqrt, true
	case "abs", "fabs":
		return isa.FpuAbs, true
	case "floor", "ffloor":
		return isa.FpuFloor, true
	case "ceil", "fceil":
		return isa.FpuCeil, true
	case "cmpeq", "fcmpeq":
		return isa.FpuCmpEq, true
	case "cmpne", "fcmpne":
		return isa.FpuCmpNe, true
	case "cmplt", "fcmplt":
		return isa.FpuCmpLt, true
	case "cmple", "fcmple":
		return isa.FpuCmpLe, true
	case "cmpgt", "fcmpgt":
		return isa.FpuCmpGt, true
	case "cmpge", "fcmpge":
		return isa.FpuCmpGe, true
	}
	return 0, false
}
