package observability

import (
	"io"
	"log/slog"
	"os"
)

// AppendFatal writes one text record to the append-only diagnostics file at
// path. It serves startup failures that happen before the UI exists.
func AppendFatal(path, msg string, err error) error {
	f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if ferr != nil {
		return ferr
	}
	defer f.Close()
	WriteFatal(f, msg, err)
	return nil
}

// WriteFatal writes a single ERROR record in slog text format to w.
func WriteFatal(w io.Writer, msg string, err error) {
	slog.New(slog.NewTextHandler(w, nil)).Error(msg, "error", err)
}
