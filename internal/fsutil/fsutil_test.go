package fsutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFileScoped(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")
	want := []byte(`{"mcpServers":{}}`)
	if err := os.WriteFile(path, want, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFileScoped(path)
	if err != nil {
		t.Fatalf("ReadFileScoped: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestReadFileScopedMissing(t *testing.T) {
	t.Parallel()
	_, err := ReadFileScoped(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFileCapped(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "big.txt")
	content := strings.Repeat("x", 100)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	data, truncated, err := ReadFileCapped(path, 40)
	if err != nil {
		t.Fatalf("ReadFileCapped: %v", err)
	}
	if !truncated {
		t.Error("expected truncated = true")
	}
	if len(data) != 40 {
		t.Errorf("len(data) = %d, want 40", len(data))
	}
}

func TestReadFileCappedUnderCap(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "small.txt")
	if err := os.WriteFile(path, []byte("short"), 0o600); err != nil {
		t.Fatal(err)
	}

	data, truncated, err := ReadFileCapped(path, 40)
	if err != nil {
		t.Fatalf("ReadFileCapped: %v", err)
	}
	if truncated {
		t.Error("expected truncated = false")
	}
	if string(data) != "short" {
		t.Errorf("data = %q", data)
	}
}

func TestReadFileCappedExactCap(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "exact.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("y", 40)), 0o600); err != nil {
		t.Fatal(err)
	}

	data, truncated, err := ReadFileCapped(path, 40)
	if err != nil {
		t.Fatalf("ReadFileCapped: %v", err)
	}
	if truncated {
		t.Error("file exactly at cap must not report truncation")
	}
	if len(data) != 40 {
		t.Errorf("len(data) = %d, want 40", len(data))
	}
}
