package lsp

import (
	"fmt"
	"time"

	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/driver"
)

// scheduleDiagnostics (re)arms the debounce timer; only the last edit
// in a burst triggers a check.
func (s *Server) scheduleDiagnostics() {
	s.mu.Lock()
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.debounceTimer = time.AfterFunc(s.debounce, s.runDiagnostics)
	s.mu.Unlock()
}

// runDiagnostics re-checks every open document from its overlay text.
// The pipeline is total, so a check cannot fail; each file gets either
// its aggregated diagnostic or a clearing publish.
func (s *Server) runDiagnostics() {
	s.mu.Lock()
	docs := make(map[string]string, len(s.openDocs))
	for uri, text := range s.openDocs {
		docs[uri] = text
	}
	maxDiagnostics := s.maxDiagnostics
	s.mu.Unlock()

	if len(docs) == 0 {
		s.clearPublishedDiagnostics()
		return
	}

	for uri, text := range docs {
		path := uriToPath(uri)
		if path == "" {
			continue
		}
		result := driver.CheckSource(path, []byte(text), maxDiagnostics)
		s.publishFor(uri, aggregate(result))
	}
}

// aggregate reduces a check result to at most one published
// diagnostic: the first error in document order, with a count of the
// rest. A clean file returns nil so the client clears its markers.
func aggregate(result *driver.CheckResult) []lspDiagnostic {
	if result.OK {
		return nil
	}
	items := result.Bag.Items()
	var first *diag.Diagnostic
	rest := 0
	for i := range items {
		if items[i].Severity != diag.SevError {
			continue
		}
		if first == nil {
			first = &items[i]
		} else {
			rest++
		}
	}
	if first == nil {
		return nil
	}
	msg := first.Message
	if rest > 0 {
		msg = fmt.Sprintf("%s (and %d more)", msg, rest)
	}
	return []lspDiagnostic{{
		Range:    rangeForSpan(result.File, first.Primary),
		Severity: 1, // LSP Error
		Code:     first.Code.ID(),
		Source:   "sage",
		Message:  msg,
	}}
}

// publishFor sends diagnostics for uri; nil clears. It avoids
// re-clearing files that never had a publish.
func (s *Server) publishFor(uri string, diags []lspDiagnostic) {
	s.mu.Lock()
	if diags == nil {
		if _, ok := s.published[uri]; !ok {
			s.mu.Unlock()
			return
		}
		delete(s.published, uri)
	} else {
		s.published[uri] = struct{}{}
	}
	s.mu.Unlock()

	if diags == nil {
		diags = []lspDiagnostic{}
	}
	if err := s.sendNotification("textDocument/publishDiagnostics", publishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	}); err != nil {
		s.logf("publish failed: %v", err)
	}
}

func (s *Server) clearPublishedDiagnostics() {
	s.mu.Lock()
	uris := make([]string, 0, len(s.published))
	for uri := range s.published {
		uris = append(uris, uri)
	}
	s.mu.Unlock()
	for _, uri := range uris {
		s.publishFor(uri, nil)
	}
}
