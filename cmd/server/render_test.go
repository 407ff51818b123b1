package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunRenderWritesPDFFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "doc.json")
	outPath := filepath.Join(dir, "out.pdf")

	doc := `{"root":{"type":"page","style":{},"children":[
 {"type":"text","style":{"fontSize":12},"text":"Hello, world"}
	]}}`
	if err := os.WriteFile(inPath, []byte(doc), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	renderIn, renderOut, serveConfigPath = inPath, outPath, ""
	var stdout bytes.Buffer
	renderCmd.SetOut(&stdout)

	if err := runRender(renderCmd, nil); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	pdf, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-1.4")) {
		t.Fatalf("output missing PDF header, got %q", pdf[:minInt(20, len(pdf))])
	}
	if stdout.Len() == 0 {
		t.Fatalf("expected a status line on stdout")
	}
}

func TestRunRenderMissingInputErrors(t *testing.T) {
	renderIn, renderOut, serveConfigPath = filepath.Join(t.TempDir(), "missing.json"), filepath.Join(t.TempDir(), "out.pdf"), ""
	if err := runRender(renderCmd, nil); err == nil {
		t.Fatalf("runRender with missing input: error = nil, want error")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
