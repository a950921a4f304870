package assets

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTemplate_Missing(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "blank.png"))
	if !errors.Is(err, ErrTemplateMissing) {
		t.Fatalf("expected ErrTemplateMissing, got %v", err)
	}
}

func TestLoadTemplate_DecodesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 7, 5))); err != nil {
		t.Fatal(err)
	}
	f.Close()
	img, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds().Dx() != 7 || img.Bounds().Dy() != 5 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestLoadTemplate_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadTemplate(path)
	if err == nil || errors.Is(err, ErrTemplateMissing) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestFontLoader_FallsBackAndCaches(t *testing.T) {
	l := NewFontLoader(filepath.Join(t.TempDir(), "times.ttf"), nil)
	a, err := l.Face(42)
	if err != nil {
		t.Fatalf("face: %v", err)
	}
	if !l.Fallback() {
		t.Fatalf("expected fallback font")
	}
	b, _ := l.Face(42)
	if a != b {
		t.Fatalf("expected cached face")
	}
	c, err := l.Face(20)
	if err != nil || c == a {
		t.Fatalf("expected a new face for another size, err=%v", err)
	}
	if h := a.Metrics().Height.Ceil(); h < 30 {
		t.Fatalf("42pt face too small: height %d", h)
	}
}

func TestOpenTemplate_MissingAppendsLogLine(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "log.txt")
	img, err := OpenTemplate(filepath.Join(dir, "blank.png"), logPath, nil)
	if !errors.Is(err, ErrTemplateMissing) || img != nil {
		t.Fatalf("expected ErrTemplateMissing, got %v", err)
	}
	data, rerr := os.ReadFile(logPath)
	if rerr != nil {
		t.Fatalf("log file not written: %v", rerr)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], "base map image not found") || !strings.Contains(lines[0], "blank.png") {
		t.Fatalf("unexpected log contents %q", data)
	}
}

func TestOpenTemplate_PresentWritesNoLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 3, 3))); err != nil {
		t.Fatal(err)
	}
	f.Close()
	logPath := filepath.Join(dir, "log.txt")
	if _, err := OpenTemplate(path, logPath, nil); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Fatalf("log file must not be created on success: %v", err)
	}
}
