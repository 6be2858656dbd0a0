// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"mers/internal/lsp"
)

const lsName = "mers" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("mers.lsp.main")

	mersHandler := lsp.NewMersHandler()

	handler = protocol.Handler{
		Initialize:                     mersHandler.Initialize,
		Initialized:                    mersHandler.Initialized,
		Shutdown:                       mersHandler.Shutdown,
		SetTrace:                       mersHandler.SetTrace,
		TextDocumentDidOpen:            mersHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           mersHandler.TextDocumentDidClose,
		TextDocumentDidChange:          mersHandler.TextDocumentDidChange,
		TextDocumentHover:              mersHandler.TextDocumentHover,
		TextDocumentCompletion:         mersHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: mersHandler.TextDocumentSemanticTokensFull,
	}

	// debug=false keeps glsp's own wire logging off
	s := server.NewServer(&handler, lsName, false)

	log.Info("Starting mers LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Errorf("Error starting mers LSP server: %s", err)
		os.Exit(1)
	}
}
