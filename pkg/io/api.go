package io

import (
	"io/fs"
	"os"
)

//go:generate mockgen -package mocks -destination mocks/mock_file_io.go github.com/openmediastation/mediaserver/pkg/io FileIO

// FileIO is an interface for file io operations
type FileIO interface {
	Stat(name string) (os.FileInfo, error)
	Open(name string) (*os.File, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]os.DirEntry, error)
	MkdirAll(name string, perm os.FileMode) error
	WriteFileAtomic(name string, data []byte, perm os.FileMode) error
	WalkDir(root string, fn fs.WalkDirFunc) error
}
