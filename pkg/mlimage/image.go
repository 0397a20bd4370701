// Package mlimage holds the image value objects handed to detector calls.
//
// An Image is either file-backed (the native side reads the file itself) or
// buffer-backed (raw bytes plus the metadata needed to reconstruct them).
// Images are immutable; they are built once by the caller, validated up
// front, and serialized into the argument mapping of each detection call.
package mlimage

import (
	"fmt"
	"os"
)

// Image is a detection input. Exactly one of the two variants exists:
// file-backed or buffer-backed. Construct one with FromFile, FromFilePath or
// FromBytes; all validation happens there, before any bridge call.
type Image interface {
	// Marshal produces the wire mapping sent alongside detection arguments.
	Marshal() map[string]any

	isImage()
}

type fileImage struct {
	path string
}

type bytesImage struct {
	data     []byte
	metadata Metadata
}

// FromFile creates a file-backed image from an open file.
func FromFile(f *os.File) (Image, error) {
	if f == nil {
		return nil, fmt.Errorf("image file must not be nil")
	}
	return FromFilePath(f.Name())
}

// FromFilePath creates a file-backed image. The path is handed to the native
// side untouched; no metadata accompanies it.
func FromFilePath(path string) (Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image file path must not be empty")
	}
	return fileImage{path: path}, nil
}

// FromBytes creates a buffer-backed image. Metadata is mandatory: without it
// the native side cannot reconstruct the buffer.
func FromBytes(data []byte, metadata Metadata) (Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image bytes must not be empty")
	}
	if metadata == nil {
		return nil, fmt.Errorf("buffer-backed image requires metadata")
	}
	if err := metadata.validate(); err != nil {
		return nil, fmt.Errorf("invalid image metadata: %w", err)
	}
	return bytesImage{data: data, metadata: metadata}, nil
}

func (i fileImage) Marshal() map[string]any {
	return map[string]any{
		"type": "file",
		"path": i.path,
	}
}

func (i fileImage) isImage() {}

func (i bytesImage) Marshal() map[string]any {
	return map[string]any{
		"type":     "bytes",
		"bytes":    i.data,
		"metadata": i.metadata.marshal(),
	}
}

func (i bytesImage) isImage() {}
