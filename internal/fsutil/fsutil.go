// Package fsutil provides scoped, bounded file reads.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadFileScoped reads a file by opening a root at the file's directory.
// This scopes access to the intended directory and avoids path traversal.
func ReadFileScoped(path string) ([]byte, error) {
	data, _, err := ReadFileCapped(path, -1)
	return data, err
}

// ReadFileCapped reads at most cap bytes of a file, reporting whether the
// content was truncated. A negative cap reads the whole file. The capped
// read keeps arbitrarily large files from being pulled into memory.
func ReadFileCapped(path string, cap int) ([]byte, bool, error) {
	cleaned := filepath.Clean(path)
	dir := filepath.Dir(cleaned)
	base := filepath.Base(cleaned)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return nil, false, fmt.Errorf("invalid file path: %q", path)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, false, err
	}
	defer root.Close()

	file, err := root.Open(base)
	if err != nil {
		return nil, false, err
	}
	defer file.Close()

	if cap < 0 {
		data, err := io.ReadAll(file)
		return data, false, err
	}

	data, err := io.ReadAll(io.LimitReader(file, int64(cap)+1))
	if err != nil {
		return nil, false, err
	}
	if len(data) > cap {
		return data[:cap], true, nil
	}
	return data, false, nil
}
