package io

import (
	"errors"
	stdio "io"
	"os"

	"github.com/bobycv06fpm/news-credibility/compression"
)

var ErrFileNotOpened = errors.New("file not opened")

type FileReader struct {
	path   string
	file   *os.File
	opened bool

	exists bool
}

func NewFileReader(path string) *FileReader {

	_, err := os.Stat(path)

	freader := &FileReader{
		path:   path,
		exists: err == nil,
	}

	return freader
}

func (f *FileReader) Path() string {
	return f.path
}

func (f *FileReader) Exists() bool {
	return f.exists
}

// Open in write mode creates or truncates the file
func (f *FileReader) Open(readOnly bool) (topErr error) {

	var perm os.FileMode = 0644

	if readOnly {
		f.file, topErr = os.OpenFile(f.path, os.O_RDONLY, perm)
	} else {
		f.file, topErr = os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	}

	if topErr == nil {
		f.opened = true
		f.exists = true
	}

	return topErr

}

func (f *FileReader) Close() error {
	if !f.opened {
		return nil
	}

	f.opened = false
	return f.file.Close()
}

func (f *FileReader) Raw() *os.File {
	return f.file
}

// Content returns a reader over the decoded file content,
// lz4 frames are decompressed for paths ending with .lz4
func (f *FileReader) Content() (stdio.Reader, error) {
	if !f.opened {
		return nil, ErrFileNotOpened
	}

	if compression.IsLz4Path(f.path) {
		return compression.NewLz4Reader(f.file), nil
	}

	return f.file, nil
}

func (f *FileReader) ReadAll() ([]byte, error) {
	content, err := f.Content()
	if err != nil {
		return nil, err
	}

	return stdio.ReadAll(content)
}
