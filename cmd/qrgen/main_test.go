package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeLogoFixture(t *testing.T, name string, padding int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("Cannot encode fixture: %v", err)
	}
	data := append(buf.Bytes(), make([]byte, padding)...)

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Cannot write fixture: %v", err)
	}
	return path
}

func TestLoadLogoFile(t *testing.T) {
	t.Run("Empty Path", func(t *testing.T) {
		logo, err := loadLogoFile("")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if logo != nil {
			t.Error("Expected no logo for empty path")
		}
	})

	t.Run("Valid Logo", func(t *testing.T) {
		path := writeLogoFixture(t, "logo.png", 0)
		logo, err := loadLogoFile(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if logo == nil {
			t.Error("Expected a decoded logo")
		}
	})

	t.Run("Oversized Logo Skipped", func(t *testing.T) {
		// Rejected at intake; the render proceeds without a logo.
		path := writeLogoFixture(t, "big.png", 6<<20)
		logo, err := loadLogoFile(path)
		if err != nil {
			t.Fatalf("Oversized logo must be skipped, not fatal: %v", err)
		}
		if logo != nil {
			t.Error("Oversized logo must not be used")
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		if _, err := loadLogoFile(filepath.Join(t.TempDir(), "absent.png")); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}
