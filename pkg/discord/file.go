package discord

import (
	"fmt"
	"io"
	"os"
)

// File is a binary payload to upload with a response. It is backed by
// either a filesystem path or an io.Reader; the contents are read once
// and cached so a file can be encoded into both a defer-patch and a
// follow-up without re-reading.
type File struct {
	Name        string
	Description string
	Spoiler     bool

	path string
	r    io.Reader
	data []byte
}

// NewFile creates a file payload backed by a path on disk.
func NewFile(path, name string) *File {
	return &File{Name: name, path: path}
}

// NewFileReader creates a file payload backed by a reader. The reader is
// consumed on first encode.
func NewFileReader(r io.Reader, name string) *File {
	return &File{Name: name, r: r}
}

// WithDescription sets the attachment description shown to clients.
func (f *File) WithDescription(desc string) *File {
	f.Description = desc
	return f
}

// WithSpoiler marks the attachment as a spoiler.
func (f *File) WithSpoiler() *File {
	f.Spoiler = true
	return f
}

// Read returns the file contents, reading the backing source on first
// call.
func (f *File) Read() ([]byte, error) {
	if f.data != nil {
		return f.data, nil
	}
	switch {
	case f.path != "":
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", f.path, err)
		}
		f.data = data
	case f.r != nil:
		data, err := io.ReadAll(f.r)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", f.Name, err)
		}
		f.data = data
	default:
		return nil, fmt.Errorf("file %q has no backing source", f.Name)
	}
	return f.data, nil
}
