package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSkipsBlankLines(t *testing.T) {
	words, err := Read(strings.NewReader("tote\n\n  mote  \nvote\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	if words[1] != "mote" {
		t.Fatalf("expected trimmed word, got %q", words[1])
	}
}

func TestReadEmptyDictionary(t *testing.T) {
	// An empty dictionary loads fine and just produces zero answers.
	words, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("expected no words, got %v", words)
	}
}

func TestReadAllBlankDictionary(t *testing.T) {
	words, err := Read(strings.NewReader("\n  \n\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("expected no words, got %v", words)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("tote\nmote\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	words, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 2 || words[0] != "tote" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestFold(t *testing.T) {
	words := Fold([]string{"Tote", "MOTE"})
	if words[0] != "tote" || words[1] != "mote" {
		t.Fatalf("unexpected fold result: %v", words)
	}
}
