//go:build darwin

package output

import "os/exec"

func reveal(path string) error {
	return startDetached(exec.Command("open", "-R", path))
}
