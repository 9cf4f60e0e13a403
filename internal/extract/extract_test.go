package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextFromTxt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballot.txt")
	content := "MAYOR / Vote for 1\n1. RIZAL, JOSE (KNP)\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	text, err := Text(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != content {
		t.Errorf("got %q, want %q", text, content)
	}
}

func TestTextUnsupportedType(t *testing.T) {
	tests := []string{"ballot.docx", "ballot.png", "ballot"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Text(filepath.Join(t.TempDir(), name))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "unsupported document type") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTextMissingFile(t *testing.T) {
	_, err := Text(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestTextInvalidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := Text(path)
	if err == nil {
		t.Fatal("expected error for invalid PDF")
	}
}

func TestTextWithRetry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballot.txt")
	if err := os.WriteFile(path, []byte("some ballot text"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	text, err := TextWithRetry(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "some ballot text" {
		t.Errorf("got %q", text)
	}
}
