// Package loader handles program image loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
)

// Loader handles loading program images from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw program image from the file. Images are headerless,
// every byte sequence is accepted as is.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file)
}

// LoadFromReader reads the raw program image from a reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	image, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	return image, nil
}
