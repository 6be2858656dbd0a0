package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"mers/internal/ast"
	"mers/internal/parser"
)

const lsName = "mers"

// parseCacheSize bounds how many parsed documents are kept in memory.
const parseCacheSize = 64

var log = commonlog.GetLogger("mers.lsp")

// Define the set of supported semantic token types (sent in the legend)
var SemanticTokenTypes = []string{
	"keyword",
	"string",
	"number",
	"variable",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// MersHandler implements the LSP server handlers for the mers language
type MersHandler struct {
	Version string

	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
	parsed  *lru.ARCCache // DocumentUri -> *parser.ParseResult
	trace   protocol.TraceValue
}

// NewMersHandler creates and returns a new MersHandler instance
func NewMersHandler() *MersHandler {
	cache, _ := lru.NewARC(parseCacheSize)
	return &MersHandler{
		Version: "0.1.0",
		content: make(map[protocol.DocumentUri]string),
		parsed:  cache,
		trace:   protocol.TraceValueOff,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *MersHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: true,
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &h.Version,
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *MersHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("mers LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *MersHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("mers LSP Shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.content = make(map[protocol.DocumentUri]string)
	h.parsed.Purge()
	return nil
}

func (h *MersHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)

	h.mu.Lock()
	h.trace = params.Value
	h.mu.Unlock()
	return nil
}

// Trace returns the value last set by the client.
func (h *MersHandler) Trace() protocol.TraceValue {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.trace
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *MersHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("Opened file: %s", params.TextDocument.URI)

	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// The server asks for full sync, so the last change carries the whole text.
func (h *MersHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("Changed file: %s", params.TextDocument.URI)

	text, ok := fullText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no full-text change for %s", params.TextDocument.URI)
	}

	h.update(ctx, params.TextDocument.URI, text)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *MersHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("Closed file: %s", params.TextDocument.URI)

	uri := params.TextDocument.URI
	h.mu.Lock()
	delete(h.content, uri)
	h.mu.Unlock()
	h.parsed.Remove(uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// TextDocumentHover describes the innermost definition under the cursor.
func (h *MersHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	text, result, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if result.File == nil {
		return nil, nil
	}

	offset := offsetAt(text, params.Position)
	node := ast.NodeAt(result.File, offset)
	if node == nil || node == ast.Node(result.File) {
		return nil, nil
	}

	r := nodeRange(node)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: fmt.Sprintf("**%s**\n\n```mers\n%s\n```", ast.Describe(node), node.String()),
		},
		Range: &r,
	}, nil
}

// TextDocumentCompletion offers the keywords and every variable bound by an
// Init in the document.
func (h *MersHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	keyword := protocol.CompletionItemKindKeyword
	variable := protocol.CompletionItemKindVariable

	items := []protocol.CompletionItem{
		{Label: "if", Kind: &keyword},
		{Label: "else", Kind: &keyword},
	}

	_, result, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, v := range result.Declarations() {
		if seen[v.Name] {
			continue
		}
		seen[v.Name] = true
		detail := fmt.Sprintf("declared at %d:%d", v.Pos.Line, v.Pos.Column)
		items = append(items, protocol.CompletionItem{Label: v.Name, Kind: &variable, Detail: &detail})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *MersHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("TextDocumentSemanticTokensFull called for: %s", params.TextDocument.URI)

	_, result, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(result)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// update stores new text for uri, reparses it and publishes diagnostics. An
// empty list is sent for clean documents so stale errors are cleared.
func (h *MersHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	h.mu.Lock()
	h.content[uri] = text
	h.mu.Unlock()

	result := h.parseAndCache(uri, text)

	diagnostics := []protocol.Diagnostic{}
	if result.Err != nil {
		diagnostics = ConvertError(result.Err)
	}
	sendDiagnosticNotification(ctx, uri, diagnostics)
}

func (h *MersHandler) parseAndCache(uri protocol.DocumentUri, text string) *parser.ParseResult {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}
	result := parser.ParseSourceWithTokens(path, text)
	h.parsed.Add(uri, result)
	return result
}

// document returns the text and parse result for uri. Documents the client
// never opened are read from disk; evicted results are reparsed.
func (h *MersHandler) document(uri protocol.DocumentUri) (string, *parser.ParseResult, error) {
	h.mu.RLock()
	text, open := h.content[uri]
	h.mu.RUnlock()

	if !open {
		path, err := uriToPath(uri)
		if err != nil {
			return "", nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		text = string(content)
	}

	if cached, ok := h.parsed.Get(uri); ok && open {
		return text, cached.(*parser.ParseResult), nil
	}
	return text, h.parseAndCache(uri, text), nil
}

func fullText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch c := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				return c.Text, true
			}
		case *protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				return c.Text, true
			}
		}
	}
	return "", false
}

// offsetAt converts a 0-based line/character position to a byte offset.
func offsetAt(text string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			return len(text)
		}
		offset += next + 1
	}
	offset += int(pos.Character)
	if offset > len(text) {
		return len(text)
	}
	return offset
}

func nodeRange(n ast.Node) protocol.Range {
	start, end := n.NodePos(), n.NodeEndPos()
	return protocol.Range{
		Start: protocol.Position{Line: uint32(start.Line - 1), Character: uint32(start.Column - 1)},
		End:   protocol.Position{Line: uint32(end.Line - 1), Character: uint32(end.Column - 1)},
	}
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	log.Debugf("Sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
