// Package fsops provides the filesystem facade behind the file manager.
// Every operation is a thin, stateless delegation to the OS filesystem
// that reports one of a closed set of status kinds instead of raw errors.
package fsops

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Manager performs file and directory operations. It holds no state
// between calls; construct one and share it with the controller.
type Manager struct{}

// NewManager creates a new Manager instance
func NewManager() *Manager {
	return &Manager{}
}

// List returns the immediate (non-recursive) children of a directory.
// Children are joined onto the input path, so relative input yields
// relative output and absolute input yields absolute output.
func (m *Manager) List(path string) (Status, []string) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return NotFound, nil
	}
	if err != nil {
		return InternalError, nil
	}
	if !info.IsDir() {
		return InvalidRequest, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return InternalError, nil
	}

	contents := make([]string, 0, len(entries))
	for _, entry := range entries {
		contents = append(contents, filepath.Join(path, entry.Name()))
	}
	return Success, contents
}

// CreateFile creates an empty file at the given path. An existing file
// is truncated silently, matching os.Create semantics; there is no
// pre-existence check. A missing parent or denied permission reports
// InternalError.
func (m *Manager) CreateFile(path string) Status {
	file, err := os.Create(path)
	if err != nil {
		return InternalError
	}
	if err := file.Close(); err != nil {
		return InternalError
	}
	return Success
}

// DeleteFile removes a regular file. Directories and other non-regular
// entries are rejected with InvalidRequest.
func (m *Manager) DeleteFile(path string) Status {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return NotFound
	}
	if err != nil {
		return InternalError
	}
	if !info.Mode().IsRegular() {
		return InvalidRequest
	}

	if err := os.Remove(path); err != nil {
		return InternalError
	}
	return Success
}

// CreateDirectory creates a single directory. It is not recursive:
// missing parents fail with InternalError, and a path that already
// exists (file or directory) is rejected with InvalidRequest.
func (m *Manager) CreateDirectory(path string) Status {
	if _, err := os.Stat(path); err == nil {
		return InvalidRequest
	} else if !os.IsNotExist(err) {
		return InternalError
	}

	if err := os.Mkdir(path, 0755); err != nil {
		return InternalError
	}
	return Success
}

// DeleteDirectory removes a directory and everything under it.
func (m *Manager) DeleteDirectory(path string) Status {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return NotFound
	}
	if err != nil {
		return InternalError
	}
	if !info.IsDir() {
		return InvalidRequest
	}

	if err := os.RemoveAll(path); err != nil {
		return InternalError
	}
	return Success
}

// Rename moves a file or directory to a new path. It works across
// directories on the same filesystem. There is no existence check on
// newPath; whether an existing target is overwritten is up to the OS.
func (m *Manager) Rename(oldPath, newPath string) Status {
	if _, err := os.Stat(oldPath); os.IsNotExist(err) {
		return NotFound
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return InternalError
	}
	return Success
}

// Info describes a single filesystem entry for the stat command.
type Info struct {
	Path    string
	Size    int64
	Mode    os.FileMode
	ModTime time.Time
	IsDir   bool
	// MIME is the detected content type of a regular file, or empty
	// when detection was skipped or failed.
	MIME string
}

// Stat reports metadata for a file or directory, including a
// best-effort MIME type for regular files.
func (m *Manager) Stat(path string) (Status, Info) {
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return NotFound, Info{}
	}
	if err != nil {
		return InternalError, Info{}
	}

	info := Info{
		Path:    path,
		Size:    fi.Size(),
		Mode:    fi.Mode(),
		ModTime: fi.ModTime(),
		IsDir:   fi.IsDir(),
	}
	if fi.Mode().IsRegular() {
		// Detection failure is not worth failing the whole stat over.
		if mt, err := mimetype.DetectFile(path); err == nil {
			info.MIME = mt.String()
		}
	}
	return Success, info
}
