package server

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/chazu/nrl/pkg/asm"
)

func newTestLSP() *LspServer {
	return NewLSP(asm.NewAssembler())
}

// ---------------------------------------------------------------------------
// LSP text extraction helpers
// ---------------------------------------------------------------------------

func TestExtractPrefix_SimpleWord(t *testing.T) {
	text := "mov r0, 42"
	pos := protocol.Position{Line: 0, Character: 3}
	if prefix := extractPrefix(text, pos); prefix != "mov" {
		t.Errorf("extractPrefix = %q, want %q", prefix, "mov")
	}
}

func TestExtractPrefix_DottedMnemonic(t *testing.T) {
	text := "load.w r0, [sp]"
	pos := protocol.Position{Line: 0, Character: 6}
	if prefix := extractPrefix(text, pos); prefix != "load.w" {
		t.Errorf("extractPrefix = %q, want %q", prefix, "load.w")
	}
}

func TestExtractPrefix_Intrinsic(t *testing.T) {
	text := "@memc"
	pos := protocol.Position{Line: 0, Character: 5}
	if prefix := extractPrefix(text, pos); prefix != "@memc" {
		t.Errorf("extractPrefix = %q, want %q", prefix, "@memc")
	}
}

func TestExtractPrefix_EmptyLine(t *testing.T) {
	pos := protocol.Position{Line: 0, Character: 0}
	if prefix := extractPrefix("", pos); prefix != "" {
		t.Errorf("extractPrefix = %q, want empty string", prefix)
	}
}

func TestExtractPrefix_MultiLine(t *testing.T) {
	text := "mov r0, 1\nhalt\nbne"
	pos := protocol.Position{Line: 2, Character: 3}
	if prefix := extractPrefix(text, pos); prefix != "bne" {
		t.Errorf("extractPrefix = %q, want %q", prefix, "bne")
	}
}

func TestExtractPrefix_LineBeyondDocument(t *testing.T) {
	pos := protocol.Position{Line: 5, Character: 0}
	if prefix := extractPrefix("single line", pos); prefix != "" {
		t.Errorf("extractPrefix = %q, want empty string", prefix)
	}
}

func TestExtractWord_UnderCursor(t *testing.T) {
	text := "bne r0, zero, loop"
	pos := protocol.Position{Line: 0, Character: 16}
	if word := extractWord(text, pos); word != "loop" {
		t.Errorf("extractWord = %q, want %q", word, "loop")
	}
}

func TestExtractWord_MiddleOfToken(t *testing.T) {
	text := "ext.call r0, sha256"
	pos := protocol.Position{Line: 0, Character: 4}
	if word := extractWord(text, pos); word != "ext.call" {
		t.Errorf("extractWord = %q, want %q", word, "ext.call")
	}
}

// ---------------------------------------------------------------------------
// Labels
// ---------------------------------------------------------------------------

func TestDocumentLabels(t *testing.T) {
	text := `
	main:
		mov r0, 5
	.loop:
		sub r0, r0, 1
		bne r0, zero, .loop ; note: comment with colon: here
		halt
	`
	labels := documentLabels(text)
	if len(labels) != 2 {
		t.Fatalf("labels = %v, want [main .loop]", labels)
	}
	if labels[0] != "main" || labels[1] != ".loop" {
		t.Errorf("labels = %v, want [main .loop]", labels)
	}
}

func TestFindLabelDefinition(t *testing.T) {
	text := "mov r0, 1\nloop:\n  b loop"

	line, col := findLabelDefinition(text, "loop")
	if line != 1 || col != 0 {
		t.Errorf("found at (%d, %d), want (1, 0)", line, col)
	}

	if line, _ := findLabelDefinition(text, "missing"); line != -1 {
		t.Errorf("missing label found at line %d, want -1", line)
	}
}

// ---------------------------------------------------------------------------
// Hover
// ---------------------------------------------------------------------------

func TestHover_Mnemonic(t *testing.T) {
	s := newTestLSP()

	h := s.hover("mov", "")
	if h == nil {
		t.Fatal("no hover for mov")
	}
	if !strings.Contains(h.Contents.(protocol.MarkupContent).Value, "mov") {
		t.Errorf("hover = %q", h.Contents)
	}
}

func TestHover_SuffixedMnemonic(t *testing.T) {
	s := newTestLSP()

	if s.hover("load.w", "") == nil {
		t.Error("no hover for load.w")
	}
	if s.hover("branch.ne", "") == nil {
		t.Error("no hover for branch.ne")
	}
}

func TestHover_Register(t *testing.T) {
	s := newTestLSP()

	h := s.hover("sp", "")
	if h == nil {
		t.Fatal("no hover for sp")
	}
	if !strings.Contains(h.Contents.(protocol.MarkupContent).Value, "Stack pointer") {
		t.Errorf("hover = %q", h.Contents)
	}
}

func TestHover_Intrinsic(t *testing.T) {
	s := newTestLSP()

	h := s.hover("@memcpy", "")
	if h == nil {
		t.Fatal("no hover for @memcpy")
	}
	value := h.Contents.(protocol.MarkupContent).Value
	if !strings.Contains(value, "memcpy") || !strings.Contains(value, "9 instructions") {
		t.Errorf("hover = %q", value)
	}
}

func TestHover_Extension(t *testing.T) {
	s := newTestLSP()

	h := s.hover("json_parse", "")
	if h == nil {
		t.Fatal("no hover for json_parse")
	}
	if !strings.Contains(h.Contents.(protocol.MarkupContent).Value, "170") {
		t.Errorf("hover = %q", h.Contents)
	}
}

func TestHover_Label(t *testing.T) {
	s := newTestLSP()
	text := "main:\n  halt"

	h := s.hover("main", text)
	if h == nil {
		t.Fatal("no hover for label")
	}
	if !strings.Contains(h.Contents.(protocol.MarkupContent).Value, "line 1") {
		t.Errorf("hover = %q", h.Contents)
	}
}

func TestHover_Unknown(t *testing.T) {
	s := newTestLSP()
	if h := s.hover("frobnicate", ""); h != nil {
		t.Errorf("hover for unknown word = %v, want nil", h)
	}
}

// ---------------------------------------------------------------------------
// Completion
// ---------------------------------------------------------------------------

func TestComplete_Mnemonics(t *testing.T) {
	s := newTestLSP()

	items := s.complete("mo", "")
	if !hasCompletion(items, "mov") {
		t.Errorf("completions for \"mo\" = %v, missing mov", completionLabels(items))
	}
}

func TestComplete_Directives(t *testing.T) {
	s := newTestLSP()

	items := s.complete(".da", "")
	if !hasCompletion(items, ".data") {
		t.Errorf("completions for \".da\" = %v, missing .data", completionLabels(items))
	}
}

func TestComplete_Intrinsics(t *testing.T) {
	s := newTestLSP()

	items := s.complete("@mem", "")
	for _, want := range []string{"@memcpy", "@memset", "@memzero", "@memcmp"} {
		if !hasCompletion(items, want) {
			t.Errorf("completions for \"@mem\" = %v, missing %s", completionLabels(items), want)
		}
	}
}

func TestComplete_Extensions(t *testing.T) {
	s := newTestLSP()

	items := s.complete("json_", "")
	if !hasCompletion(items, "json_parse") {
		t.Errorf("completions for \"json_\" = %v, missing json_parse", completionLabels(items))
	}
}

func TestComplete_Labels(t *testing.T) {
	s := newTestLSP()
	text := "main_loop:\n  b main_loop"

	items := s.complete("main", text)
	if !hasCompletion(items, "main_loop") {
		t.Errorf("completions for \"main\" = %v, missing main_loop", completionLabels(items))
	}
}

func hasCompletion(items []protocol.CompletionItem, label string) bool {
	for _, item := range items {
		if item.Label == label {
			return true
		}
	}
	return false
}

func completionLabels(items []protocol.CompletionItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

// ---------------------------------------------------------------------------
// Diagnostics
// ---------------------------------------------------------------------------

func TestDiagnosticFor_LineCarryingError(t *testing.T) {
	s := newTestLSP()
	text := "mov r0, 1\nmov r1\nhalt"

	_, err := s.asm.Assemble(text)
	if err == nil {
		t.Fatal("Assemble succeeded, want missing operand error")
	}

	d := s.diagnosticFor(err, text)
	if d.Range.Start.Line != 1 {
		t.Errorf("diagnostic line = %d, want 1", d.Range.Start.Line)
	}
	if !strings.Contains(d.Message, "missing operand") {
		t.Errorf("message = %q", d.Message)
	}
}

func TestDiagnosticFor_TokenSearch(t *testing.T) {
	s := newTestLSP()
	text := "mov r0, 1\nb nowhere\nhalt"

	_, err := s.asm.Assemble(text)
	if err == nil {
		t.Fatal("Assemble succeeded, want undefined label error")
	}

	d := s.diagnosticFor(err, text)
	if d.Range.Start.Line != 1 {
		t.Errorf("diagnostic line = %d, want 1", d.Range.Start.Line)
	}
}
