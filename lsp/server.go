// Package lsp implements a language server that surfaces parse errors for
// the markup subset as diagnostics.
package lsp

import (
	"errors"

	"github.com/dhamidi/htx/html/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "htx"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string) *Server {
	ls := &Server{
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.publishDiagnostics(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.publishDiagnostics(ctx, params.TextDocument.URI, []byte(textChange.Text))
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.publishDiagnostics(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	// Drop any diagnostics still shown for the closed document.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// publishDiagnostics parses content and reports the first parse error, if
// any, for the document. The parser is fail-fast, so there is at most one
// diagnostic per document.
func (ls *Server) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, content []byte) {
	diagnostics := []protocol.Diagnostic{}

	_, err := parser.New(content, parser.WithFile(string(uri))).Parse()
	var perr *parser.Error
	if errors.As(err, &perr) {
		severity := protocol.DiagnosticSeverityError
		source := lsName
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rangeAt(perr.Pos),
			Severity: &severity,
			Source:   &source,
			Message:  perr.Message,
		})
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// rangeAt converts a 1-based parser position into a zero-width 0-based
// protocol range.
func rangeAt(pos parser.Position) protocol.Range {
	line := pos.Line - 1
	if line < 0 {
		line = 0
	}
	column := pos.Column - 1
	if column < 0 {
		column = 0
	}
	point := protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(column),
	}
	return protocol.Range{Start: point, End: point}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
