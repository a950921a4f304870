package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/n1tr0xs/fire-danger-map/observability"
)

// ErrTemplateMissing means the blank base map does not exist.
var ErrTemplateMissing = errors.New("blank map image not found")

// LoadTemplate decodes the blank base map at path. PNG is expected; JPEG is
// accepted as well.
func LoadTemplate(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrTemplateMissing)
		}
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// OpenTemplate loads the base map for startup. Without it there is nothing to
// draw on, so a failure is logged and also appended to the diagnostics file
// at logPath; the caller is expected to exit before creating any window.
func OpenTemplate(path, logPath string, logger *slog.Logger) (image.Image, error) {
	img, err := LoadTemplate(path)
	if err == nil {
		return img, nil
	}
	msg := "base map image could not be loaded"
	if errors.Is(err, ErrTemplateMissing) {
		msg = "base map image not found"
	}
	if logger != nil {
		logger.Error(msg, "path", path, "error", err)
	}
	if werr := observability.AppendFatal(logPath, msg, err); werr != nil && logger != nil {
		logger.Error("write startup log", "path", logPath, "error", werr)
	}
	return nil, err
}
