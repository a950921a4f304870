package assets

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontLoader parses a TrueType/OpenType file once and hands out a face at the
// label size. When the file cannot be used it falls back to Go Regular.
type FontLoader struct {
	path   string
	logger *slog.Logger

	once     sync.Once
	font     *opentype.Font
	fallback bool
	err      error

	mu       sync.Mutex
	faceSize float64
	face     font.Face
}

// NewFontLoader creates a loader for the font file at path.
func NewFontLoader(path string, logger *slog.Logger) *FontLoader {
	return &FontLoader{path: path, logger: logger}
}

func (l *FontLoader) parse() {
	data, err := os.ReadFile(l.path)
	if err == nil {
		l.font, err = opentype.Parse(data)
	}
	if err == nil {
		return
	}
	if l.logger != nil {
		l.logger.Warn("label font unavailable, using Go Regular", "path", l.path, "error", err)
	}
	l.fallback = true
	l.font, l.err = opentype.Parse(goregular.TTF)
}

// Fallback reports whether the embedded Go Regular font is in use.
func (l *FontLoader) Fallback() bool {
	l.once.Do(l.parse)
	return l.fallback
}

// Face returns a face at the given size in points (72 DPI, so points equal
// pixels, matching how labels are sized on the map). The last face is kept
// and returned again for the same size.
func (l *FontLoader) Face(size float64) (font.Face, error) {
	l.once.Do(l.parse)
	if l.err != nil {
		return nil, fmt.Errorf("font: %w", l.err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.face != nil && l.faceSize == size {
		return l.face, nil
	}
	face, err := opentype.NewFace(l.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.1fpt: %w", size, err)
	}
	l.faceSize, l.face = size, face
	return face, nil
}
