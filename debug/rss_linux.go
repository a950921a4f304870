//go:build linux

package debug

import "github.com/prometheus/procfs"

// processRSS returns the resident set size of the current process.
func processRSS() (uint64, error) {
	p, err := procfs.Self()
	if err != nil {
		return 0, err
	}
	stat, err := p.Stat()
	if err != nil {
		return 0, err
	}
	return uint64(stat.ResidentMemory()), nil
}
