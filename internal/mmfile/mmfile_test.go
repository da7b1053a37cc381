package mmfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transmission.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	want := []byte("9C0141080250320F1802104A08")
	f, err := Open(writeFile(t, want), 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()
	if string(f.Data) != string(want) {
		t.Fatalf("data mismatch: got %q want %q", f.Data, want)
	}
}

func TestOpenZeroLength(t *testing.T) {
	f, err := Open(writeFile(t, nil), 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(f.Data) != 0 {
		t.Fatalf("expected empty data, got %d bytes", len(f.Data))
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpenTooLarge(t *testing.T) {
	_, err := Open(writeFile(t, make([]byte, 64)), 63)
	if err == nil {
		t.Fatal("expected error for oversized file")
	}
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	f, err := Open(writeFile(t, make([]byte, 64)), 64)
	if err != nil {
		t.Fatalf("Open at exact cap: %v", err)
	}
	_ = f.Close()
}

func TestCloseTwice(t *testing.T) {
	f, err := Open(writeFile(t, []byte{0xd2, 0xfe, 0x28}), 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if f.Data != nil {
		t.Fatal("Data should be cleared after Close")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing"), 0); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
