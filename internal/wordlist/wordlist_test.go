package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(path, []byte("The\n\nand \nhmm\n"), 0o644); err != nil {
		t.Fatalf("write stop list: %v", err)
	}
	set, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(set))
	}
	if !set.Contains("the") || !set.Contains("and") || !set.Contains("hmm") {
		t.Fatalf("missing tokens: %v", set)
	}
	if set.Contains("other") {
		t.Fatalf("unexpected token")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write stop list: %v", err)
	}
	set, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %d", len(set))
	}
}

func TestDefault(t *testing.T) {
	set := Default()
	if len(set) == 0 {
		t.Fatalf("embedded stop-word list is empty")
	}
	if !set.Contains("the") {
		t.Fatalf("expected embedded list to contain common words")
	}
}
