package stopwatch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"
)

// processAlive reports whether pid still runs this program. The executable name
// guards against a recycled PID; it may be truncated by the platform.
func processAlive(pid int) (bool, error) {
	if pid <= 0 {
		return false, nil
	}

	process, err := ps.FindProcess(pid)
	if err != nil {
		return false, err
	}

	if process == nil {
		return false, nil
	}

	executable := process.Executable()
	if executable == "" {
		return true, nil
	}

	self := filepath.Base(os.Args[0])

	return strings.HasPrefix(self, executable) || strings.HasPrefix(executable, self), nil
}
