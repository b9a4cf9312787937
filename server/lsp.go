// Package server implements the assembly language server: diagnostics,
// hover, completion, and label definitions over LSP stdio.
package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/chazu/nrl/pkg/asm"
	"github.com/chazu/nrl/pkg/intrinsics"
	"github.com/chazu/nrl/pkg/isa"

	_ "github.com/tliron/commonlog/simple"
)

const lspName = "nrl-lsp"

// LspServer bridges LSP editor features to the assembler.
type LspServer struct {
	mu   sync.Mutex
	asm  *asm.Assembler
	docs map[string]string // URI -> full document content

	handler protocol.Handler
	server  *glspserver.Server
	version string
}

// NewLSP creates a language server around an assembler. The assembler's
// resolver supplies extension names for hover and completion.
func NewLSP(assembler *asm.Assembler) *LspServer {
	s := &LspServer{
		asm:     assembler,
		docs:    make(map[string]string),
		version: "0.1.0",
	}

	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		SetTrace:    s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentCompletion: s.textDocumentCompletion,
		TextDocumentHover:      s.textDocumentHover,
		TextDocumentDefinition: s.textDocumentDefinition,
	}

	s.server = glspserver.NewServer(&s.handler, lspName, false)

	return s
}

// Run starts the LSP server on stdio. Blocks until the client disconnects.
func (s *LspServer) Run() error {
	return s.server.RunStdio()
}

// --- LSP lifecycle handlers ---

func (s *LspServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	commonlog.NewInfoMessage(0, "NRL LSP initializing")

	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{".", "@"},
	}

	capabilities.HoverProvider = true
	capabilities.DefinitionProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lspName,
			Version: &s.version,
		},
	}, nil
}

func (s *LspServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *LspServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *LspServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// --- Document synchronization ---

func (s *LspServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	text := params.TextDocument.Text

	s.mu.Lock()
	s.docs[string(uri)] = text
	s.mu.Unlock()

	s.publishDiagnostics(ctx, uri, text)
	return nil
}

func (s *LspServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	// With Full sync, the last change event contains the full text
	if len(params.ContentChanges) > 0 {
		last := params.ContentChanges[len(params.ContentChanges)-1]
		if whole, ok := last.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.mu.Lock()
			s.docs[string(uri)] = whole.Text
			s.mu.Unlock()

			s.publishDiagnostics(ctx, uri, whole.Text)
		}
	}
	return nil
}

func (s *LspServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI

	s.mu.Lock()
	delete(s.docs, string(uri))
	s.mu.Unlock()

	// Clear diagnostics for the closed document
	go ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// --- Diagnostics ---

func (s *LspServer) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	s.mu.Lock()
	_, err := s.asm.Assemble(text)
	s.mu.Unlock()

	var diagnostics []protocol.Diagnostic
	if err != nil {
		diagnostics = append(diagnostics, s.diagnosticFor(err, text))
	}

	go ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// diagnosticFor maps an assembler error to a diagnostic. Errors that
// carry a line number point at that line; the rest point at the first
// line mentioning the offending token.
func (s *LspServer) diagnosticFor(err error, text string) protocol.Diagnostic {
	line := 0
	token := ""

	var missing *asm.MissingOperandError
	var parse *asm.ParseError
	var intr *asm.IntrinsicError
	var notFound *asm.ExtensionNotFoundError
	var badOp *asm.InvalidOpcodeError
	var badReg *asm.InvalidRegisterError
	var badImm *asm.InvalidImmediateError
	var undef *asm.UndefinedLabelError
	var dup *asm.DuplicateLabelError

	switch {
	case errors.As(err, &missing):
		line = missing.Line
	case errors.As(err, &parse):
		line = parse.Line
	case errors.As(err, &intr):
		line = intr.Line
	case errors.As(err, &notFound):
		line = notFound.Line
	case errors.As(err, &badOp):
		token = badOp.Mnemonic
	case errors.As(err, &badReg):
		token = badReg.Operand
	case errors.As(err, &badImm):
		token = badImm.Operand
	case errors.As(err, &undef):
		token = undef.Label
	case errors.As(err, &dup):
		token = dup.Label
	}

	if line == 0 && token != "" {
		line = findTokenLine(text, token)
	}
	if line > 0 {
		line-- // LSP lines are 0-based
	}

	severity := protocol.DiagnosticSeverityError
	source := lspName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line), Character: 0},
			End:   protocol.Position{Line: protocol.UInteger(line), Character: 0},
		},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}

// findTokenLine returns the 1-based line of the first occurrence of
// token, or 0 when absent.
func findTokenLine(text, token string) int {
	for i, line := range strings.Split(text, "\n") {
		if strings.Contains(line, token) {
			return i + 1
		}
	}
	return 0
}

// --- Language features ---

func (s *LspServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	s.mu.Lock()
	text, ok := s.docs[string(params.TextDocument.URI)]
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}

	prefix := extractPrefix(text, params.Position)
	if prefix == "" {
		return nil, nil
	}

	return s.complete(prefix, text), nil
}

func (s *LspServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	s.mu.Lock()
	text, ok := s.docs[string(params.TextDocument.URI)]
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}

	word := extractWord(text, params.Position)
	if word == "" {
		return nil, nil
	}

	return s.hover(word, text), nil
}

func (s *LspServer) textDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := params.TextDocument.URI

	s.mu.Lock()
	text, ok := s.docs[string(uri)]
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}

	word := extractWord(text, params.Position)
	if word == "" {
		return nil, nil
	}

	line, col := findLabelDefinition(text, strings.TrimPrefix(word, "@"))
	if line < 0 {
		return nil, nil
	}

	return []protocol.Location{{
		URI: uri,
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)},
			End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col + len(word))},
		},
	}}, nil
}

func (s *LspServer) complete(prefix, text string) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	lower := strings.ToLower(prefix)

	add := func(label, detail string, kind protocol.CompletionItemKind) {
		labelCopy := label
		items = append(items, protocol.CompletionItem{
			Label:      label,
			Kind:       &kind,
			Detail:     &detail,
			InsertText: &labelCopy,
		})
	}

	switch {
	case strings.HasPrefix(lower, "@"):
		want := strings.TrimPrefix(lower, "@")
		for _, def := range s.asm.Intrinsics().All() {
			if strings.HasPrefix(def.Name, want) {
				add("@"+def.Name, def.Description, protocol.CompletionItemKindSnippet)
			}
		}

	case strings.HasPrefix(lower, "."):
		for _, d := range directives {
			if strings.HasPrefix(d, lower) {
				add(d, "directive", protocol.CompletionItemKindKeyword)
			}
		}

	default:
		for _, m := range mnemonicList {
			if strings.HasPrefix(m.name, lower) {
				add(m.name, m.synopsis, protocol.CompletionItemKindFunction)
			}
		}
		for _, ext := range s.asm.Resolver().All() {
			if strings.HasPrefix(strings.ToLower(ext.Name), lower) {
				detail := fmt.Sprintf("extension %d: %s", ext.ID, ext.Description)
				add(ext.Name, detail, protocol.CompletionItemKindModule)
			}
		}
		for _, name := range documentLabels(text) {
			if strings.HasPrefix(strings.ToLower(name), lower) {
				add(name, "label", protocol.CompletionItemKindReference)
			}
		}
	}

	// Limit results
	const maxItems = 100
	if len(items) > maxItems {
		items = items[:maxItems]
	}

	return items
}

func (s *LspServer) hover(word, text string) *protocol.Hover {
	lower := strings.ToLower(word)

	// Intrinsic
	if strings.HasPrefix(lower, "@") {
		if def, ok := s.asm.Intrinsics().Lookup(lower[1:]); ok {
			return intrinsicHover(def)
		}
		return nil
	}

	// Register
	if reg, ok := isa.ParseRegister(lower); ok {
		return markdownHover(fmt.Sprintf("**%s** (register %d)\n\n%s", lower, reg, registerDoc(reg)))
	}

	// Mnemonic
	if doc, ok := mnemonicDocs[lower]; ok {
		return markdownHover(fmt.Sprintf("**%s**\n\n%s", lower, doc))
	}
	if dot := strings.Index(lower, "."); dot > 0 {
		if doc, ok := mnemonicDocs[lower[:dot]]; ok {
			return markdownHover(fmt.Sprintf("**%s**\n\n%s", lower, doc))
		}
	}

	// Intrinsic without the @ sigil
	if def, ok := s.asm.Intrinsics().Lookup(lower); ok {
		return intrinsicHover(def)
	}

	// Extension
	if ext, ok := s.asm.Resolver().GetByName(lower); ok {
		value := fmt.Sprintf("**%s** (extension %d)\n\n%s\n\nInputs: %d",
			ext.Name, ext.ID, ext.Description, ext.InputCount)
		return markdownHover(value)
	}

	// Label
	if line, _ := findLabelDefinition(text, word); line >= 0 {
		return markdownHover(fmt.Sprintf("**%s** label defined at line %d", word, line+1))
	}

	return nil
}

func intrinsicHover(def *intrinsics.Def) *protocol.Hover {
	value := fmt.Sprintf("**@%s** (%s intrinsic)\n\n%s\n\nExpands to %d instructions.",
		def.Name, def.Category, def.Description, len(def.Template))
	return markdownHover(value)
}

func markdownHover(value string) *protocol.Hover {
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: value,
		},
	}
}

// --- Text extraction helpers ---

// documentLabels collects label names defined in the document.
func documentLabels(text string) []string {
	var names []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if i := strings.IndexAny(line, ";#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		colon := strings.Index(line, ":")
		if colon <= 0 {
			continue
		}
		name := strings.TrimSpace(line[:colon])
		if isIdentifier(name) {
			names = append(names, name)
		}
	}
	return names
}

// findLabelDefinition returns the 0-based line and column of "name:",
// or (-1, 0) when the label is not defined.
func findLabelDefinition(text, name string) (int, int) {
	for i, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimLeft(raw, " \t")
		if strings.HasPrefix(trimmed, name+":") {
			return i, len(raw) - len(trimmed)
		}
	}
	return -1, 0
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_' || r == '.':
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}

// extractPrefix returns the word fragment before the cursor for completion.
func extractPrefix(text string, pos protocol.Position) string {
	lines := strings.Split(text, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	line := lines[pos.Line]
	col := int(pos.Character)
	if col > len(line) {
		col = len(line)
	}

	// Walk backwards from cursor to find the start of the token
	start := col
	for start > 0 {
		ch := rune(line[start-1])
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '.' || ch == '@' {
			start--
		} else {
			break
		}
	}

	if start == col {
		return ""
	}

	return line[start:col]
}

// extractWord returns the full token under the cursor.
func extractWord(text string, pos protocol.Position) string {
	lines := strings.Split(text, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	line := lines[pos.Line]
	col := int(pos.Character)
	if col > len(line) {
		col = len(line)
	}

	isTokenChar := func(ch rune) bool {
		return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '.' || ch == '@'
	}

	start := col
	for start > 0 && isTokenChar(rune(line[start-1])) {
		start--
	}

	end := col
	for end < len(line) && isTokenChar(rune(line[end])) {
		end++
	}

	if start == end {
		return ""
	}

	return strings.Trim(line[start:end], ".")
}

func boolPtr(b bool) *bool {
	return &b
}
