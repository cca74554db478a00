package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.config")
	c := Config{Version: version, WindowSizeX: 1920, WindowSizeY: 1080, WindowOffsetX: 10, WindowOffsetY: 20, FullScreen: true}

	if err := Write(path, c); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, result := Load(path)
	if result != Success {
		t.Fatalf("Load result = %v, want Success", result)
	}
	if got != c {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, c)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, result := Load(filepath.Join(t.TempDir(), "missing.config"))
	if result != NotFound {
		t.Fatalf("result = %v, want NotFound", result)
	}
}

func TestLoadWrongMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.config")
	buf := make([]byte, recordSize)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}
	_, result := Load(path)
	if result != WrongMagic {
		t.Fatalf("result = %v, want WrongMagic", result)
	}
}
