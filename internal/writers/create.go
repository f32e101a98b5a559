package writers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrOutputExists is returned when the output destination already exists.
var ErrOutputExists = errors.New("output already exists")

// CreateExclusive creates path for writing and fails with ErrOutputExists if
// anything is already there.
func CreateExclusive(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%w: %s", ErrOutputExists, path)
	}
	return f, err
}

// CheckAbsent fails with ErrOutputExists when path exists. CreateExclusive
// is still the authoritative check.
func CheckAbsent(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
