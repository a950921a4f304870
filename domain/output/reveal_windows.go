//go:build windows

package output

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// reveal runs `explorer /select,"path"` through ShellExecute.
func reveal(path string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	exe, err := windows.UTF16PtrFromString("explorer.exe")
	if err != nil {
		return err
	}
	args, err := windows.UTF16PtrFromString(fmt.Sprintf(`/select,"%s"`, path))
	if err != nil {
		return err
	}
	return windows.ShellExecute(0, verb, exe, args, nil, windows.SW_SHOWNORMAL)
}
