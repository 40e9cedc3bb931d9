package store

import (
	"errors"
	"os"
)

const fileMode os.FileMode = 0o600

// readFile reads the file at path; exists is false when there is no file.
func readFile(path string) (b []byte, exists bool, err error) {
	b, err = os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// writeFile truncates path and writes b in place. There is no temp file and
// no rename, so a crash mid-write can leave a truncated file behind.
func writeFile(path string, b []byte) error {
	return os.WriteFile(path, b, fileMode)
}
