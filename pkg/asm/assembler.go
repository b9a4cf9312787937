// Package asm converts between text assembly and the binary program
// format. The assembler is two-pass: pass one parses instructions and
// collects labels, pass two resolves branch targets and data
// references. Intrinsic calls (@memcpy r0, r1, 64) expand inline at
// parse time, and ext.call accepts numeric ids, symbolic names, or
// @"intent description" strings resolved through the extension
// resolver.
package asm

import (
	"strconv"
	"strings"

	"github.com/chazu/nrl/pkg/intrinsics"
	"github.com/chazu/nrl/pkg/isa"
	"github.com/chazu/nrl/pkg/rag"
)

// DataBase is the base address the data section is mapped at. Data
// label references resolve to DataBase plus the label's offset.
const DataBase uint64 = 0x10000

type labelKind int

const (
	labelCode labelKind = iota // value is an instruction index
	labelData                  // value is a data section offset
)

type label struct {
	kind  labelKind
	value int
}

type pendingRef struct {
	instrIdx int
	label    string
	line     int
}

// Assembler assembles text source into programs. An Assembler can be
// reused; Assemble resets all per-program state.
type Assembler struct {
	labels          map[string]label
	pendingLabels   []pendingRef
	pendingDataRefs []pendingRef
	inDataSection   bool
	lineMap         []int
	intrinsics      *intrinsics.Registry
	resolver        *rag.Resolver
}

// NewAssembler returns an assembler with the built-in intrinsic catalog
// and the bundled extension resolver.
func NewAssembler() *Assembler {
	return NewAssemblerWithResolver(rag.NewResolver())
}

// NewAssemblerWithResolver returns an assembler using a caller-supplied
// extension resolver, typically one with user extensions registered.
func NewAssemblerWithResolver(resolver *rag.Resolver) *Assembler {
	return &Assembler{
		labels:     make(map[string]label),
		intrinsics: intrinsics.NewRegistry(),
		resolver:   resolver,
	}
}

// Resolver returns the extension resolver, for registering user
// extensions before assembly.
func (a *Assembler) Resolver() *rag.Resolver { return a.resolver }

// Intrinsics returns the intrinsic registry.
func (a *Assembler) Intrinsics() *intrinsics.Registry { return a.intrinsics }

// CodeLabels returns the code labels of the last assembled program as
// label name to instruction index.
func (a *Assembler) CodeLabels() map[string]int {
	out := make(map[string]int)
	for name, l := range a.labels {
		if l.kind == labelCode {
			out[name] = l.value
		}
	}
	return out
}

// Assemble assembles source text into a program.
func (a *Assembler) Assemble(source string) (*isa.Program, error) {
	a.labels = make(map[string]label)
	a.pendingLabels = a.pendingLabels[:0]
	a.pendingDataRefs = a.pendingDataRefs[:0]
	a.lineMap = a.lineMap[:0]
	a.inDataSection = false

	prog := isa.NewProgram()

	for lineIdx, raw := range strings.Split(source, "\n") {
		lineNum := lineIdx + 1
		line := stripComment(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			handled, err := a.parseDirective(line, prog)
			if err != nil {
				return nil, err
			}
			if handled {
				continue
			}
			// Unhandled dot-prefixed tokens fall through as local
			// labels like .loop: below.
		}

		if colon := strings.Index(line, ":"); colon >= 0 {
			name := strings.TrimSpace(line[:colon])
			if _, dup := a.labels[name]; dup {
				return nil, &DuplicateLabelError{Label: name}
			}
			rest := strings.TrimSpace(line[colon+1:])

			if a.inDataSection && isDataDirective(rest) {
				a.labels[name] = label{kind: labelData, value: len(prog.DataSection)}
				a.appendData(prog, rest)
				continue
			}

			// A code label ends any data section.
			a.inDataSection = false
			a.labels[name] = label{kind: labelCode, value: len(prog.Instructions)}
			if rest == "" {
				continue
			}
			if err := a.parseLine(rest, lineNum, prog); err != nil {
				return nil, err
			}
			continue
		}

		if a.inDataSection {
			continue
		}
		if err := a.parseLine(line, lineNum, prog); err != nil {
			return nil, err
		}
	}

	if err := a.resolveLabels(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

func (a *Assembler) parseLine(line string, lineNum int, prog *isa.Program) error {
	if strings.HasPrefix(line, "@") {
		return a.parseIntrinsic(line, lineNum, prog)
	}
	return a.parseInstruction(line, lineNum, prog)
}

// resolveLabels is the second pass: branch targets become relative
// instruction index offsets, data references become absolute addresses,
// and the entry label becomes the entry point.
func (a *Assembler) resolveLabels(prog *isa.Program) error {
	for _, ref := range a.pendingLabels {
		l, ok := a.labels[ref.label]
		if !ok {
			return &UndefinedLabelError{Label: ref.label}
		}
		if l.kind == labelData {
			return &ParseError{
				Line:    ref.line,
				Message: "cannot branch to data label: " + ref.label,
			}
		}
		prog.Instructions[ref.instrIdx].SetImm(int32(l.value - ref.instrIdx))
	}

	for _, ref := range a.pendingDataRefs {
		l, ok := a.labels[ref.label]
		if !ok {
			return &UndefinedLabelError{Label: ref.label}
		}
		switch l.kind {
		case labelData:
			prog.Instructions[ref.instrIdx].SetImm(int32(DataBase) + int32(l.value))
		case labelCode:
			prog.Instructions[ref.instrIdx].SetImm(int32(l.value))
		}
	}

	if prog.EntryLabel != "" {
		l, ok := a.labels[prog.EntryLabel]
		if !ok {
			return &UndefinedLabelError{Label: prog.EntryLabel}
		}
		if l.kind != labelCode {
			return &ParseError{
				Line:    0,
				Message: "entry point cannot be a data label: " + prog.EntryLabel,
			}
		}
		prog.EntryPoint = uint32(l.value)
	}
	return nil
}

// parseDirective handles a dot directive. It reports handled=false for
// dot-prefixed tokens that look like local labels (.loop:) so the
// caller can treat them as labels.
func (a *Assembler) parseDirective(line string, prog *isa.Program) (bool, error) {
	parts := strings.Fields(line)
	directive := parts[0]

	switch directive {
	case ".entry":
		if len(parts) > 1 {
			prog.EntryLabel = parts[1]
		}
	case ".section":
		if len(parts) > 1 {
			a.inDataSection = parts[1] == ".data" || parts[1] == "data"
		}
	case ".text":
		a.inDataSection = false
	case ".data", ".bss":
		a.inDataSection = true
	case ".align", ".p2align":
		if a.inDataSection {
			align := 4
			if len(parts) > 1 {
				if v, err := strconv.Atoi(parts[1]); err == nil {
					align = v
				}
			}
			if align > 0 {
				pad := (align - len(prog.DataSection)%align) % align
				prog.DataSection = append(prog.DataSection, make([]byte, pad)...)
			}
		}
	case ".global", ".globl":
		// Symbol visibility is not tracked.
	case ".byte", ".word", ".dword", ".quad", ".space", ".skip", ".zero", ".ascii", ".string", ".asciz":
		if a.inDataSection {
			a.appendData(prog, line)
		}
	default:
		if len(directive) > 1 && isAlpha(directive[1]) {
			return false, nil // local label like .loop
		}
		return false, &InvalidOpcodeError{Mnemonic: directive}
	}
	return true, nil
}

func isDataDirective(rest string) bool {
	for _, d := range []string{
		".word", ".space", ".skip", ".zero", ".byte",
		".dword", ".quad", ".ascii", ".asciz", ".string",
	} {
		if strings.HasPrefix(rest, d) {
			return true
		}
	}
	return false
}

// appendData emits data directive contents into the data section.
func (a *Assembler) appendData(prog *isa.Program, line string) {
	parts := strings.Fields(line)
	directive := parts[0]

	switch directive {
	case ".byte":
		for _, p := range parts[1:] {
			if v, ok := a.tryParseImmediate(strings.TrimSuffix(p, ",")); ok {
				prog.DataSection = append(prog.DataSection, byte(v))
			}
		}
	case ".word":
		for _, p := range parts[1:] {
			if v, ok := a.tryParseImmediate(strings.TrimSuffix(p, ",")); ok {
				u := uint32(v)
				prog.DataSection = append(prog.DataSection,
					byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
			}
		}
	case ".dword", ".quad":
		for _, p := range parts[1:] {
			if v, ok := a.tryParseImmediate(strings.TrimSuffix(p, ",")); ok {
				u := uint64(int64(v))
				prog.DataSection = append(prog.DataSection,
					byte(u), byte(u>>8), byte(u>>16), byte(u>>24),
					byte(u>>32), byte(u>>40), byte(u>>48), byte(u>>56))
			}
		}
	case ".space", ".skip", ".zero":
		size := 0
		if len(parts) > 1 {
			if v, err := strconv.Atoi(strings.TrimSuffix(parts[1], ",")); err == nil {
				size = v
			}
		}
		fill := byte(0)
		if len(parts) > 2 {
			if v, ok := a.tryParseImmediate(parts[2]); ok {
				fill = byte(v)
			}
		}
		for i := 0; i < size; i++ {
			prog.DataSection = append(prog.DataSection, fill)
		}
	case ".ascii", ".string", ".asciz":
		start := strings.Index(line, "\"")
		end := strings.LastIndex(line, "\"")
		if start < 0 || end <= start {
			return
		}
		prog.DataSection = append(prog.DataSection, unescape(line[start+1:end])...)
		if directive == ".asciz" || directive == ".string" {
			prog.DataSection = append(prog.DataSection, 0)
		}
	}
}

func unescape(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(s) {
			out = append(out, '\\')
			break
		}
		switch s[i] {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case '0':
			out = append(out, 0)
		case '\\':
			out = append(out, '\\')
		case '"':
			out = append(out, '"')
		default:
			out = append(out, '\\', s[i])
		}
	}
	return out
}

func (a *Assembler) parseInstruction(line string, lineNum int, prog *isa.Program) error {
	parts := splitOperands(line)
	if len(parts) == 0 {
		return nil
	}

	mnemonic := strings.ToLower(parts[0])
	opcode, mode, err := a.parseMnemonic(mnemonic)
	if err != nil {
		return err
	}

	var instr isa.Instruction
	switch opcode {
	case isa.OpNop, isa.OpHalt, isa.OpYield, isa.OpRet:
		instr = isa.New(opcode, isa.Zero, isa.Zero, isa.Zero, 0)

	case isa.OpMov:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		if len(parts) < 3 {
			return &MissingOperandError{Line: lineNum}
		}
		src := strings.TrimSuffix(strings.TrimSpace(parts[2]), ",")
		if imm, ok := a.tryParseImmediate(src); ok {
			instr = isa.WithImm(opcode, rd, isa.Zero, 0, imm)
		} else if rs1, ok := a.tryParseRegister(src); ok {
			instr = isa.New(opcode, rd, rs1, isa.Zero, 0)
		} else {
			// Label reference, resolved in pass two.
			a.pendingDataRefs = append(a.pendingDataRefs,
				pendingRef{instrIdx: len(prog.Instructions), label: src, line: lineNum})
			instr = isa.WithImm(opcode, rd, isa.Zero, 0, 0)
		}

	case isa.OpAlu, isa.OpAluI:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		rs1, err := a.parseRegister(parts, 2, lineNum)
		if err != nil {
			return err
		}
		if imm, ok := a.tryParseImmediateAt(parts, 3); ok {
			instr = isa.WithImm(isa.OpAluI, rd, rs1, mode, imm)
		} else {
			rs2, err := a.parseRegister(parts, 3, lineNum)
			if err != nil {
				return err
			}
			instr = isa.New(isa.OpAlu, rd, rs1, rs2, mode)
		}

	case isa.OpMulDiv:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		rs1, err := a.parseRegister(parts, 2, lineNum)
		if err != nil {
			return err
		}
		rs2, err := a.parseRegister(parts, 3, lineNum)
		if err != nil {
			return err
		}
		instr = isa.New(opcode, rd, rs1, rs2, mode)

	case isa.OpLoad, isa.OpStore:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		if len(parts) < 3 {
			return &MissingOperandError{Line: lineNum}
		}
		rs1, off, err := a.parseMemoryOperand(parts[2:], lineNum)
		if err != nil {
			return err
		}
		instr = isa.WithImm(opcode, rd, rs1, mode, off)

	case isa.OpBranch:
		if mode == byte(isa.CondAlways) {
			if len(parts) < 2 {
				return &MissingOperandError{Line: lineNum}
			}
			a.pendingLabels = append(a.pendingLabels,
				pendingRef{instrIdx: len(prog.Instructions), label: parts[1], line: lineNum})
			instr = isa.WithImm(opcode, isa.Zero, isa.Zero, mode, 0)
		} else {
			rs1, err := a.parseRegister(parts, 1, lineNum)
			if err != nil {
				return err
			}
			rs2, err := a.parseRegister(parts, 2, lineNum)
			if err != nil {
				return err
			}
			if len(parts) < 4 {
				return &MissingOperandError{Line: lineNum}
			}
			a.pendingLabels = append(a.pendingLabels,
				pendingRef{instrIdx: len(prog.Instructions), label: parts[3], line: lineNum})
			instr = isa.WithImm(opcode, isa.Zero, rs1, mode, 0)
			instr.Rs2 = rs2
		}

	case isa.OpCall:
		if len(parts) < 2 {
			return &MissingOperandError{Line: lineNum}
		}
		if imm, ok := a.tryParseImmediate(parts[1]); ok {
			instr = isa.WithImm(opcode, isa.Zero, isa.Zero, 0, imm)
		} else {
			a.pendingLabels = append(a.pendingLabels,
				pendingRef{instrIdx: len(prog.Instructions), label: parts[1], line: lineNum})
			instr = isa.WithImm(opcode, isa.Zero, isa.Zero, 0, 0)
		}

	case isa.OpJump:
		if len(parts) < 2 {
			return &MissingOperandError{Line: lineNum}
		}
		target := parts[1]
		if rs1, ok := a.tryParseRegister(target); ok {
			instr = isa.New(opcode, isa.Zero, rs1, isa.Zero, 1) // indirect
		} else if imm, ok := a.tryParseImmediate(target); ok {
			instr = isa.WithImm(opcode, isa.Zero, isa.Zero, 0, imm)
		} else {
			a.pendingLabels = append(a.pendingLabels,
				pendingRef{instrIdx: len(prog.Instructions), label: target, line: lineNum})
			instr = isa.WithImm(opcode, isa.Zero, isa.Zero, 0, 0)
		}

	case isa.OpSpawn:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		if len(parts) < 3 {
			return &MissingOperandError{Line: lineNum}
		}
		a.pendingLabels = append(a.pendingLabels,
			pendingRef{instrIdx: len(prog.Instructions), label: parts[2], line: lineNum})
		rs1 := isa.Zero
		if len(parts) > 3 {
			if rs1, err = a.parseRegister(parts, 3, lineNum); err != nil {
				return err
			}
		}
		instr = isa.WithImm(opcode, rd, rs1, 0, 0)

	case isa.OpJoin:
		rs1, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		instr = isa.New(opcode, isa.Zero, rs1, isa.Zero, 0)

	case isa.OpChan:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		rs1 := isa.Zero
		if len(parts) > 2 {
			if rs1, err = a.parseRegister(parts, 2, lineNum); err != nil {
				return err
			}
		}
		instr = isa.New(opcode, rd, rs1, isa.Zero, mode)

	case isa.OpAtomic, isa.OpCapNew, isa.OpCapRestrict:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		rs1, err := a.parseRegister(parts, 2, lineNum)
		if err != nil {
			return err
		}
		rs2 := isa.Zero
		if len(parts) > 3 {
			if rs2, err = a.parseRegister(parts, 3, lineNum); err != nil {
				return err
			}
		}
		instr = isa.New(opcode, rd, rs1, rs2, mode)

	case isa.OpFence:
		instr = isa.New(opcode, isa.Zero, isa.Zero, isa.Zero, mode)

	case isa.OpCapQuery:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		rs1, err := a.parseRegister(parts, 2, lineNum)
		if err != nil {
			return err
		}
		query, _ := a.tryParseImmediateAt(parts, 3)
		instr = isa.WithImm(opcode, rd, rs1, mode, query)

	case isa.OpTaint, isa.OpSanitize:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		rs1 := rd
		if len(parts) > 2 {
			if rs1, err = a.parseRegister(parts, 2, lineNum); err != nil {
				return err
			}
		}
		instr = isa.New(opcode, rd, rs1, isa.Zero, mode)

	case isa.OpTrap:
		if imm, ok := a.tryParseImmediateAt(parts, 1); ok {
			instr = isa.WithImm(opcode, isa.Zero, isa.Zero, mode, imm)
		} else {
			instr = isa.New(opcode, isa.Zero, isa.Zero, isa.Zero, mode)
		}

	case isa.OpFile, isa.OpNet, isa.OpIo:
		var err error
		if instr, err = a.parseHostOp(opcode, mode, parts, lineNum); err != nil {
			return err
		}

	case isa.OpNetSetopt:
		rs1, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		imm, _ := a.tryParseImmediateAt(parts, 2)
		instr = isa.WithImm(opcode, isa.Zero, rs1, mode, imm)

	case isa.OpTime:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		if imm, ok := a.tryParseImmediateAt(parts, 2); ok {
			instr = isa.WithImm(opcode, rd, isa.Zero, mode, imm)
		} else {
			instr = isa.New(opcode, rd, isa.Zero, isa.Zero, mode)
		}

	case isa.OpFpu:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		rs1, err := a.parseRegister(parts, 2, lineNum)
		if err != nil {
			return err
		}
		rs2 := isa.Zero
		if len(parts) > 3 {
			if rs2, err = a.parseRegister(parts, 3, lineNum); err != nil {
				return err
			}
		}
		instr = isa.New(opcode, rd, rs1, rs2, mode)

	case isa.OpRand:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		rs1 := isa.Zero
		if len(parts) > 2 {
			if rs1, err = a.parseRegister(parts, 2, lineNum); err != nil {
				return err
			}
		}
		instr = isa.New(opcode, rd, rs1, isa.Zero, mode)

	case isa.OpBits:
		rd, err := a.parseRegister(parts, 1, lineNum)
		if err != nil {
			return err
		}
		rs1, err := a.parseRegister(parts, 2, lineNum)
		if err != nil {
			return err
		}
		instr = isa.New(opcode, rd, rs1, isa.Zero, mode)

	case isa.OpExtCall:
		var err error
		if instr, err = a.parseExtCall(line, parts, lineNum); err != nil {
			return err
		}

	default:
		return &InvalidOpcodeError{Mnemonic: mnemonic}
	}

	prog.Instructions = append(prog.Instructions, instr)
	a.lineMap = append(a.lineMap, lineNum)
	return nil
}

// parseHostOp parses the shared file/net/io operand shape:
// op rd [, rs1 [, rs2|imm [, imm]]].
func (a *Assembler) parseHostOp(opcode isa.Opcode, mode byte, parts []string, lineNum int) (isa.Instruction, error) {
	rd, err := a.parseRegister(parts, 1, lineNum)
	if err != nil {
		return isa.Instruction{}, err
	}
	rs1 := isa.Zero
	if len(parts) > 2 {
		if rs1, err = a.parseRegister(parts, 2, lineNum); err != nil {
			return isa.Instruction{}, err
		}
	}
	rs2 := isa.Zero
	if len(parts) > 3 {
		if reg, ok := a.tryParseRegister(parts[3]); ok {
			rs2 = reg
		}
	}
	imm, haveImm := a.tryParseImmediateAt(parts, 4)
	if !haveImm && rs2 == isa.Zero {
		imm, haveImm = a.tryParseImmediateAt(parts, 3)
	}
	if haveImm {
		instr := isa.WithImm(opcode, rd, rs1, mode, imm)
		instr.Rs2 = rs2
		return instr, nil
	}
	return isa.New(opcode, rd, rs1, rs2, mode), nil
}

// parseExtCall parses ext.call rd, <id|name|@"intent">[, rs1[, rs2]].
func (a *Assembler) parseExtCall(line string, parts []string, lineNum int) (isa.Instruction, error) {
	rd, err := a.parseRegister(parts, 1, lineNum)
	if err != nil {
		return isa.Instruction{}, err
	}

	var extID int32
	var argParts []string

	if idx := strings.Index(line, `@"`); idx >= 0 {
		afterQuote := line[idx+2:]
		end := strings.Index(afterQuote, `"`)
		if end < 0 {
			return isa.Instruction{}, &ParseError{
				Line:    lineNum,
				Message: `unterminated intent string (missing closing ")`,
			}
		}
		intent := afterQuote[:end]
		resolved, ok := a.resolver.Resolve(intent)
		if !ok {
			return isa.Instruction{}, &ExtensionNotFoundError{Line: lineNum, Intent: intent}
		}
		extID = int32(resolved.ID)
		argParts = splitOperands(afterQuote[end+1:])
	} else {
		if len(parts) < 3 {
			return isa.Instruction{}, &MissingOperandError{Line: lineNum}
		}
		target := strings.TrimSuffix(strings.TrimSpace(parts[2]), ",")
		if imm, ok := a.tryParseImmediate(target); ok {
			extID = imm
		} else if resolved, ok := a.resolver.GetByName(target); ok {
			extID = int32(resolved.ID)
		} else {
			return isa.Instruction{}, &ExtensionNotFoundError{Line: lineNum, Intent: target}
		}
		argParts = parts[3:]
	}

	rs1, rs2 := isa.Zero, isa.Zero
	if len(argParts) > 0 {
		if rs1, err = a.parseRegister(argParts, 0, lineNum); err != nil {
			return isa.Instruction{}, err
		}
	}
	if len(argParts) > 1 {
		if rs2, err = a.parseRegister(argParts, 1, lineNum); err != nil {
			return isa.Instruction{}, err
		}
	}

	instr := isa.WithImm(isa.OpExtCall, rd, rs1, 0, extID)
	instr.Rs2 = rs2
	return instr, nil
}

// parseIntrinsic expands an @name call inline.
func (a *Assembler) parseIntrinsic(line string, lineNum int, prog *isa.Program) error {
	parts := splitOperands(strings.TrimSpace(line[1:]))
	if len(parts) == 0 {
		return &ParseError{Line: lineNum, Message: "empty intrinsic call"}
	}
	name := strings.ToLower(parts[0])

	var args []intrinsics.Arg
	for _, p := range parts[1:] {
		p = strings.TrimSuffix(strings.TrimSpace(p), ",")
		if reg, ok := a.tryParseRegister(p); ok {
			args = append(args, intrinsics.Register(reg))
		} else if imm, ok := a.tryParseImmediate(p); ok {
			args = append(args, intrinsics.Immediate(imm))
		} else {
			return &IntrinsicError{Line: lineNum, Message: "invalid argument: " + p}
		}
	}

	expanded, err := a.intrinsics.Expand(name, args)
	if err != nil {
		return &IntrinsicError{Line: lineNum, Message: err.Error()}
	}
	prog.Instructions = append(prog.Instructions, expanded...)
	for range expanded {
		a.lineMap = append(a.lineMap, lineNum)
	}
	return nil
}

func (a *Assembler) parseRegister(parts []string, idx, lineNum int) (isa.Register, error) {
	if idx >= len(parts) {
		return 0, &MissingOperandError{Line: lineNum}
	}
	s := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(parts[idx])), ",")
	reg, ok := isa.ParseRegister(s)
	if !ok {
		return 0, &InvalidRegisterError{Operand: s}
	}
	return reg, nil
}

func (a *Assembler) tryParseRegister(s string) (isa.Register, bool) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ",")
	return isa.ParseRegister(s)
}

func (a *Assembler) tryParseImmediateAt(parts []string, idx int) (int32, bool) {
	if idx >= len(parts) {
		return 0, false
	}
	return a.tryParseImmediate(parts[idx])
}

// tryParseImmediate parses decimal, 0x hex, and 0b binary immediates.
// Hex, binary, and positive decimal parse through uint32 so the full
// 32-bit range round-trips as a bit pattern.
func (a *Assembler) tryParseImmediate(s string) (int32, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ",")
	if s == "" {
		return 0, false
	}
	if isAlpha(s[0]) && !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0b") {
		return 0, false // label
	}

	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, false
		}
		return int32(uint32(v)), true
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		v, err := strconv.ParseUint(s[2:], 2, 32)
		if err != nil {
			return 0, false
		}
		return int32(uint32(v)), true
	case strings.HasPrefix(s, "-"):
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, false
		}
		return int32(v), true
	default:
		if v, err := strconv.ParseUint(s, 10, 32); err == nil {
			return int32(uint32(v)), true
		}
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, false
		}
		return int32(v), true
	}
}

// parseMemoryOperand accepts [reg], [reg + imm], [reg - imm], and
// off(reg) operand forms.
func (a *Assembler) parseMemoryOperand(parts []string, lineNum int) (isa.Register, int32, error) {
	combined := strings.TrimSpace(strings.Join(parts, ""))

	if strings.HasPrefix(combined, "[") && strings.HasSuffix(combined, "]") {
		inner := combined[1 : len(combined)-1]
		if plus := strings.Index(inner, "+"); plus >= 0 {
			reg, err := a.parseRegisterName(inner[:plus], lineNum)
			if err != nil {
				return 0, 0, err
			}
			imm, _ := a.tryParseImmediate(inner[plus+1:])
			return reg, imm, nil
		}
		if minus := strings.Index(inner, "-"); minus >= 0 {
			reg, err := a.parseRegisterName(inner[:minus], lineNum)
			if err != nil {
				return 0, 0, err
			}
			imm, _ := a.tryParseImmediate(inner[minus+1:])
			return reg, -imm, nil
		}
		reg, err := a.parseRegisterName(inner, lineNum)
		return reg, 0, err
	}

	if paren := strings.Index(combined, "("); paren >= 0 && strings.HasSuffix(combined, ")") {
		reg, err := a.parseRegisterName(combined[paren+1:len(combined)-1], lineNum)
		if err != nil {
			return 0, 0, err
		}
		var off int32
		if offStr := combined[:paren]; offStr != "" {
			off, _ = a.tryParseImmediate(offStr)
		}
		return reg, off, nil
	}

	reg, err := a.parseRegisterName(combined, lineNum)
	return reg, 0, err
}

func (a *Assembler) parseRegisterName(s string, lineNum int) (isa.Register, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, &MissingOperandError{Line: lineNum}
	}
	reg, ok := isa.ParseRegister(s)
	if !ok {
		return 0, &InvalidRegisterError{Operand: s}
	}
	return reg, nil
}

// stripComment removes ; and # comments and surrounding whitespace.
func stripComment(line string) string {
	if i := strings.Index(line, ";"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// splitOperands splits a line on whitespace and commas, dropping empty
// fields.
func splitOperands(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
