package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// CheckMode reports whether path carries exactly the permission bits in want.
// On Windows every existing file passes. The returned mode is the actual one.
func CheckMode(path string, want os.FileMode) (bool, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	got := info.Mode().Perm()
	if runtime.GOOS == "windows" {
		return true, got, nil
	}
	return got == want, got, nil
}
