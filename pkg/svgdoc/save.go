package svgdoc

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save renders the document and writes it to path. The file is written
// next to its destination under a temporary name and renamed into place,
// so a failed save never leaves a truncated panel behind.
func (p *Panel) Save(path string) error {
	if err := atomicWrite(path, p.Bytes()); err != nil {
		return fmt.Errorf("svgdoc: save %s: %w: %w", path, ErrWrite, err)
	}
	return nil
}

// atomicWrite writes data to path via a temporary file and rename.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".svgpanel-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	success = true
	return nil
}
