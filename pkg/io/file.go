package io

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/xqboard/pkg/errors"
)

// ReadFile returns the contents of path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFile(err, "read %s", path)
	}
	return data, nil
}

// WriteFile atomically replaces path with data, creating parent
// directories as needed. The file mode is 0644.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapFile(err, "create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.WrapFile(err, "create %s", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.WrapFile(err, "write %s", path)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errors.WrapFile(err, "chmod %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapFile(err, "close %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.WrapFile(err, "rename %s", path)
	}
	return nil
}
