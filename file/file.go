// Package file wraps the handful of filesystem operations the host needs,
// adding the path to every error.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ReadFile returns the whole contents of path.
func ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// SaveFile writes buf to path, truncating any existing file.
func SaveFile(path string, buf []byte) error {
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether path names something other than a directory.
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// DirectoryExists reports whether path names a directory.
func DirectoryExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// CreateDirectory creates path and any missing parents. An existing
// directory is not an error.
func CreateDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// DeleteFile removes the file at path.
func DeleteFile(path string) error {
	if DirectoryExists(path) {
		return fmt.Errorf("delete %s: %w", path, ErrIsDirectory)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// DeleteFileIfPresent is DeleteFile that ignores a missing file.
func DeleteFileIfPresent(path string) error {
	err := DeleteFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// DeleteEmptyDirectory removes path, which must be an empty directory.
func DeleteEmptyDirectory(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("delete directory %s: %w", path, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("delete directory %s: %w", path, ErrNotDirectory)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete directory %s: %w", path, err)
	}
	return nil
}

// DeleteEmptyDirectoryIfPresent is DeleteEmptyDirectory that ignores a
// missing directory.
func DeleteEmptyDirectoryIfPresent(path string) error {
	err := DeleteEmptyDirectory(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ReadJSON decodes one JSON value from r into v.
func ReadJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// WriteJSON encodes v to w followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

var (
	ErrIsDirectory  = errors.New("file: is a directory")
	ErrNotDirectory = errors.New("file: not a directory")
)
