package platform

import (
	"os"
	"runtime"
)

// Default permissions for extracted entries that carry no mode bits.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// Chmod sets permissions on name, resolved inside root. On Windows this is
// a no-op because Windows does not support Unix-style permission bits.
func Chmod(root *os.Root, name string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return root.Chmod(name, mode)
}

// FileMode returns the permission bits to apply to an extracted regular file.
// Archives written without Unix attributes report zero bits; those fall back
// to FilePermNormal. The owner always keeps read/write access.
func FileMode(archived os.FileMode) os.FileMode {
	perm := archived.Perm()
	if perm == 0 {
		return FilePermNormal
	}
	return perm | 0600
}
