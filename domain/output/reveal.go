package output

import (
	"errors"
	"log/slog"
	"os/exec"
)

// Revealer opens the system file browser with a file selected.
type Revealer interface {
	Reveal(path string) error
}

// SystemRevealer uses the platform file browser. The browser process is
// detached; only failures to launch it are reported.
type SystemRevealer struct {
	Logger *slog.Logger
}

func (r SystemRevealer) Reveal(path string) error {
	if path == "" {
		return errors.New("reveal: empty path")
	}
	err := reveal(path)
	if r.Logger != nil {
		if err != nil {
			r.Logger.Error("reveal in file browser", "path", path, "error", err)
		} else {
			r.Logger.Debug("revealed in file browser", "path", path)
		}
	}
	return err
}

// startDetached launches cmd without waiting for it; the child is reaped in
// the background.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
