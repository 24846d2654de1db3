//go:build !unix

// Package mmfile maps files into memory so tooling can read and edit binary
// fields in place without loading or rewriting whole files.
package mmfile

import "os"

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}

// File is the read-modify-write fallback for platforms without mmap support:
// the whole file is held in memory and written back on Sync or Close.
type File struct {
	Data []byte

	path string
	mode os.FileMode
}

// OpenRW loads the file at path for in-place editing.
func OpenRW(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{Data: data, path: path, mode: info.Mode()}, nil
}

// Sync writes the buffered contents back to the file.
func (f *File) Sync() error {
	return os.WriteFile(f.path, f.Data, f.mode)
}

// Close syncs and releases the buffer. Safe to call more than once.
func (f *File) Close() error {
	if f.Data == nil {
		return nil
	}
	err := f.Sync()
	f.Data = nil
	return err
}
