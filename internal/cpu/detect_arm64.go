//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// ASIMD is mandatory on ARMv8, the flag is read anyway.
func detectFeatures() Features {
	return Features{
		Architecture: runtime.GOARCH,
		HasNEON:      cpu.ARM64.HasASIMD,
	}
}
