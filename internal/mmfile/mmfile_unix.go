//go:build unix

// Package mmfile maps files into memory so tooling can read and edit binary
// fields in place without loading or rewriting whole files.
package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path read-only and returns its contents plus a cleanup
// function.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return unmap(data) }, nil
}

// File is a writable memory-mapped file. Mutations through Data hit the page
// cache immediately; Sync forces them to disk.
type File struct {
	Data []byte
}

// OpenRW maps the file at path read-write, shared.
func OpenRW(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &File{Data: []byte{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &File{Data: data}, nil
}

// Sync flushes modified pages to disk.
func (f *File) Sync() error {
	if len(f.Data) == 0 {
		return nil
	}
	return unix.Msync(f.Data, unix.MS_SYNC)
}

// Close syncs and unmaps. Safe to call more than once.
func (f *File) Close() error {
	if f.Data == nil {
		return nil
	}
	if len(f.Data) == 0 {
		f.Data = nil
		return nil
	}
	if err := unix.Msync(f.Data, unix.MS_SYNC); err != nil {
		return err
	}
	err := unmap(f.Data)
	f.Data = nil
	return err
}

func unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
