package output

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultTitle prefixes every saved map ("fire danger map").
const DefaultTitle = "Карта пожарной опасности"

// FileName returns "<title> DD.MM.YYYY.png" for the calendar date of t.
func FileName(title string, t time.Time) string {
	return fmt.Sprintf("%s %02d.%02d.%04d.png", title, t.Day(), int(t.Month()), t.Year())
}

// Saver writes finished maps into Dir using a date-stamped name.
type Saver struct {
	dir    string
	title  string
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewSaver creates a saver. An empty dir means the working directory, an empty
// title means DefaultTitle and a nil clock means the real local clock.
func NewSaver(dir, title string, clock clockwork.Clock, logger *slog.Logger) *Saver {
	if dir == "" {
		dir = "."
	}
	if title == "" {
		title = DefaultTitle
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Saver{dir: dir, title: title, clock: clock, logger: logger}
}

// Path returns where a map saved right now would be written.
func (s *Saver) Path() string {
	return filepath.Join(s.dir, FileName(s.title, s.clock.Now().Local()))
}

// Save encodes img as PNG and writes it atomically. It returns the absolute
// path and the number of bytes written.
func (s *Saver) Save(img image.Image) (string, int64, error) {
	if img == nil {
		return "", 0, fmt.Errorf("save: nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", 0, fmt.Errorf("save: encode png: %w", err)
	}
	path, err := filepath.Abs(s.Path())
	if err != nil {
		return "", 0, fmt.Errorf("save: %w", err)
	}
	if err := WriteFileAtomic(path, buf.Bytes()); err != nil {
		return "", 0, fmt.Errorf("save %s: %w", path, err)
	}
	if s.logger != nil {
		s.logger.Info("map saved", "path", path, "bytes", buf.Len())
	}
	return path, int64(buf.Len()), nil
}

// WriteFileAtomic writes payload to a temp file next to path and renames it
// into place.
func WriteFileAtomic(path string, payload []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(payload); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		// Windows refuses to rename over an existing file.
		if _, statErr := os.Stat(path); statErr != nil {
			return fmt.Errorf("rename temp file: %w", err)
		}
		if rmErr := os.Remove(path); rmErr != nil {
			return fmt.Errorf("replace existing file: %w (rename err: %v)", rmErr, err)
		}
		if err := os.Rename(tmpName, path); err != nil {
			return fmt.Errorf("rename temp file: %w", err)
		}
	}
	success = true
	return nil
}
