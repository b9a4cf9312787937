package isa

// Mode enumerations. The 3-bit mode field selects the sub-operation
// within an opcode family; semantics are opcode-specific. Every
// enumeration provides a bounds-checked FromByte lookup so that an
// out-of-range mode surfaces as an unknown operation instead of
// aliasing to variant zero.

// AluOp selects the ALU sub-operation for OpAlu and OpAluI.
type AluOp byte

const (
	AluAdd AluOp = iota
	AluSub
	AluAnd
	AluOr
	AluXor
	AluShl
	AluShr
	AluSar
)

var aluOpNames = [...]string{"add", "sub", "and", "or", "xor", "shl", "shr", "sar"}

func AluOpFromByte(b byte) (AluOp, bool) {
	if int(b) >= len(aluOpNames) {
		return 0, false
	}
	return AluOp(b), true
}

func (o AluOp) String() string { return aluOpNames[o] }

// MulDivOp selects the OpMulDiv sub-operation.
type MulDivOp byte

const (
	MulDivMul MulDivOp = iota
	MulDivMulH
	MulDivDiv
	MulDivMod
)

var mulDivOpNames = [...]string{"mul", "mulh", "div", "mod"}

func MulDivOpFromByte(b byte) (MulDivOp, bool) {
	if int(b) >= len(mulDivOpNames) {
		return 0, false
	}
	return MulDivOp(b), true
}

func (o MulDivOp) String() string { return mulDivOpNames[o] }

// MemWidth selects the access width for OpLoad and OpStore.
type MemWidth byte

const (
	WidthByte MemWidth = iota
	WidthHalf
	WidthWord
	WidthDouble
)

var memWidthNames = [...]string{"b", "h", "w", "d"}

func MemWidthFromByte(b byte) (MemWidth, bool) {
	if int(b) >= len(memWidthNames) {
		return 0, false
	}
	return MemWidth(b), true
}

func (w MemWidth) String() string { return memWidthNames[w] }

// ByteSize returns the access width in bytes.
func (w MemWidth) ByteSize() int {
	switch w {
	case WidthByte:
		return 1
	case WidthHalf:
		return 2
	case WidthWord:
		return 4
	default:
		return 8
	}
}

// AtomicOp selects the OpAtomic read-modify-write operation.
type AtomicOp byte

const (
	AtomicCas AtomicOp = iota
	AtomicXchg
	AtomicAdd
	AtomicAnd
	AtomicOr
	AtomicXor
	AtomicMin
	AtomicMax
)

var atomicOpNames = [...]string{"cas", "xchg", "add", "and", "or", "xor", "min", "max"}

func AtomicOpFromByte(b byte) (AtomicOp, bool) {
	if int(b) >= len(atomicOpNames) {
		return 0, false
	}
	return AtomicOp(b), true
}

func (o AtomicOp) String() string { return atomicOpNames[o] }

// BranchCond selects the OpBranch condition. CondAlways ignores rs1/rs2.
type BranchCond byte

const (
	CondAlways BranchCond = iota
	CondEq
	CondNe
	CondLt
	CondLe
	CondGt
	CondGe
	CondLtu
)

var branchCondNames = [...]string{"always", "eq", "ne", "lt", "le", "gt", "ge", "ltu"}

func BranchCondFromByte(b byte) (BranchCond, bool) {
	if int(b) >= len(branchCondNames) {
		return 0, false
	}
	return BranchCond(b), true
}

func (c BranchCond) String() string { return branchCondNames[c] }

// ChanOp selects the OpChan channel operation.
type ChanOp byte

const (
	ChanCreate ChanOp = iota
	ChanSend
	ChanRecv
	ChanClose
)

var chanOpNames = [...]string{"create", "send", "recv", "close"}

func ChanOpFromByte(b byte) (ChanOp, bool) {
	if int(b) >= len(chanOpNames) {
		return 0, false
	}
	return ChanOp(b), true
}

func (o ChanOp) String() string { return chanOpNames[o] }

// FenceMode selects the OpFence memory ordering.
type FenceMode byte

const (
	FenceAcquire FenceMode = iota
	FenceRelease
	FenceAcqRel
	FenceSeqCst
)

var fenceModeNames = [...]string{"acquire", "release", "acqrel", "seqcst"}

func FenceModeFromByte(b byte) (FenceMode, bool) {
	if int(b) >= len(fenceModeNames) {
		return 0, false
	}
	return FenceMode(b), true
}

func (m FenceMode) String() string { return fenceModeNames[m] }

// TrapType selects the OpTrap trap class.
type TrapType byte

const (
	TrapSyscall TrapType = iota
	TrapBreakpoint
	TrapBounds
	TrapCapability
	TrapTaint
	TrapDivZero
	TrapInvalidOp
	TrapUser
)

var trapTypeNames = [...]string{
	"syscall", "breakpoint", "bounds", "capability", "taint", "divzero", "invalidop", "user",
}

func TrapTypeFromByte(b byte) (TrapType, bool) {
	if int(b) >= len(trapTypeNames) {
		return 0, false
	}
	return TrapType(b), true
}

func (t TrapType) String() string { return trapTypeNames[t] }

// FileOp selects the OpFile host file operation.
type FileOp byte

const (
	FileOpen FileOp = iota
	FileRead
	FileWrite
	FileClose
	FileSeek
	FileStat
	FileMkdir
	FileDelete
)

var fileOpNames = [...]string{"open", "read", "write", "close", "seek", "stat", "mkdir", "delete"}

func FileOpFromByte(b byte) (FileOp, bool) {
	if int(b) >= len(fileOpNames) {
		return 0, false
	}
	return FileOp(b), true
}

func (o FileOp) String() string { return fileOpNames[o] }

// NetOp selects the OpNet host network operation.
type NetOp byte

const (
	NetSocket NetOp = iota
	NetConnect
	NetBind
	NetListen
	NetAccept
	NetSend
	NetRecv
	NetClose
)

var netOpNames = [...]string{"socket", "connect", "bind", "listen", "accept", "send", "recv", "close"}

func NetOpFromByte(b byte) (NetOp, bool) {
	if int(b) >= len(netOpNames) {
		return 0, false
	}
	return NetOp(b), true
}

func (o NetOp) String() string { return netOpNames[o] }

// NetOption selects the OpNetSetopt socket option.
type NetOption byte

const (
	OptNonblock NetOption = iota
	OptTimeoutMs
	OptKeepalive
	OptReuseAddr
	OptNoDelay
	OptRecvBufSize
	OptSendBufSize
	OptLinger
)

var netOptionNames = [...]string{
	"nonblock", "timeout", "keepalive", "reuseaddr", "nodelay", "rcvbuf", "sndbuf", "linger",
}

func NetOptionFromByte(b byte) (NetOption, bool) {
	if int(b) >= len(netOptionNames) {
		return 0, false
	}
	return NetOption(b), true
}

func (o NetOption) String() string { return netOptionNames[o] }

// IoOp selects the OpIo console/environment operation.
type IoOp byte

const (
	IoPrint IoOp = iota
	IoReadLine
	IoGetArgs
	IoGetEnv
)

var ioOpNames = [...]string{"print", "readline", "getargs", "getenv"}

func IoOpFromByte(b byte) (IoOp, bool) {
	if int(b) >= len(ioOpNames) {
		return 0, false
	}
	return IoOp(b), true
}

func (o IoOp) String() string { return ioOpNames[o] }

// TimeOp selects the OpTime clock operation.
type TimeOp byte

const (
	TimeNow TimeOp = iota
	TimeSleep
	TimeMonotonic
	TimeReserved
)

var timeOpNames = [...]string{"now", "sleep", "monotonic", "reserved"}

func TimeOpFromByte(b byte) (TimeOp, bool) {
	if int(b) >= len(timeOpNames) {
		return 0, false
	}
	return TimeOp(b), true
}

func (o TimeOp) String() string { return timeOpNames[o] }

// FpuOp selects the OpFpu floating-point operation. The comparison
// variants produce 1 or 0 in rd.
type FpuOp byte

const (
	FpuAdd FpuOp = iota
	FpuSub
	FpuMul
	FpuDiv
	FpuSqrt
	FpuAbs
	FpuFloor
	FpuCeil
	FpuCmpEq
	FpuCmpNe
	FpuCmpLt
	FpuCmpLe
	FpuCmpGt
	FpuCmpGe
)

var fpuOpNames = [...]string{
	"fadd", "fsub", "fmul", "fdiv", "fsqrt", "fabs", "ffloor", "fceil",
	"fcmpeq", "fcmpne", "fcmplt", "fcmple", "fcmpgt", "fcmpge",
}

func FpuOpFromByte(b byte) (FpuOp, bool) {
	if int(b) >= len(fpuOpNames) {
		return 0, false
	}
	return FpuOp(b), true
}

func (o FpuOp) String() string { return fpuOpNames[o] }

// RandOp selects the OpRand operation.
type RandOp byte

const (
	RandBytes RandOp = iota
	RandU64
)

var randOpNames = [...]string{"bytes", "u64"}

func RandOpFromByte(b byte) (RandOp, bool) {
	if int(b) >= len(randOpNames) {
		return 0, false
	}
	return RandOp(b), true
}

func (o RandOp) String() string { return randOpNames[o] }

// BitsOp selects the OpBits bit-manipulation operation.
type BitsOp byte

const (
	BitsPopcount BitsOp = iota
	BitsClz
	BitsCtz
	BitsBswap
)

var bitsOpNames = [...]string{"popcount", "clz", "ctz", "bswap"}

func BitsOpFromByte(b byte) (BitsOp, bool) {
	if int(b) >= len(bitsOpNames) {
		return 0, false
	}
	return BitsOp(b), true
}

func (o BitsOp) String() string { return bitsOpNames[o] }
