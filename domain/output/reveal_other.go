//go:build !windows && !darwin

package output

import (
	"os/exec"
	"path/filepath"
)

// reveal opens the containing directory; xdg-open has no portable way to
// preselect a file.
func reveal(path string) error {
	return startDetached(exec.Command("xdg-open", filepath.Dir(path)))
}
