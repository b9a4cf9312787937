package asm

import "fmt"

// InvalidOpcodeError reports an unrecognized mnemonic or directive.
type InvalidOpcodeError struct {
	Mnemonic string
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("asm: invalid opcode: %s", e.Mnemonic)
}

// InvalidRegisterError reports an operand that should have been a
// register name.
type InvalidRegisterError struct {
	Operand string
}

func (e *InvalidRegisterError) Error() string {
	return fmt.Sprintf("asm: invalid register: %s", e.Operand)
}

// InvalidImmediateError reports an operand that should have been an
// immediate value.
type InvalidImmediateError struct {
	Operand string
}

func (e *InvalidImmediateError) Error() string {
	return fmt.Sprintf("asm: invalid immediate value: %s", e.Operand)
}

// MissingOperandError reports a line with too few operands.
type MissingOperandError struct {
	Line int
}

func (e *MissingOperandError) Error() string {
	return fmt.Sprintf("asm: missing operand at line %d", e.Line)
}

// UndefinedLabelError reports a reference to a label that was never
// defined.
type UndefinedLabelError struct {
	Label string
}

func (e *UndefinedLabelError) Error() string {
	return fmt.Sprintf("asm: undefined label: %s", e.Label)
}

// DuplicateLabelError reports a label defined twice.
type DuplicateLabelError struct {
	Label string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("asm: duplicate label: %s", e.Label)
}

// ParseError reports a malformed line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("asm: parse error at line %d: %s", e.Line, e.Message)
}

// IntrinsicError reports a failed @intrinsic expansion.
type IntrinsicError struct {
	Line    int
	Message string
}

func (e *IntrinsicError) Error() string {
	return fmt.Sprintf("asm: intrinsic error at line %d: %s", e.Line, e.Message)
}

// ExtensionNotFoundError reports an ext.call intent or name that the
// resolver could not map to an extension id.
type ExtensionNotFoundError struct {
	Line   int
	Intent string
}

func (e *ExtensionNotFoundError) Error() string {
	return fmt.Sprintf("asm: extension not found at line %d: %s", e.Line, e.Intent)
}
