package mlimage

import "fmt"

// Rotation is the clockwise rotation applied to a buffer before detection.
// Only the four 90-degree increments exist; the zero value means no rotation.
type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// Degrees returns the wire representation of the rotation.
func (r Rotation) Degrees() int {
	switch r {
	case Rotation90:
		return 90
	case Rotation180:
		return 180
	case Rotation270:
		return 270
	default:
		return 0
	}
}

func (r Rotation) String() string {
	return fmt.Sprintf("Rotation%d", r.Degrees())
}

// RawFormat is the platform-specific pixel format code of a raw buffer. It is
// opaque passthrough data; this layer assigns it no meaning.
type RawFormat int32

// Plane describes the buffer layout of a single color plane.
type Plane struct {
	BytesPerRow int
	Height      int
	Width       int
}

func (p Plane) validate() error {
	if p.BytesPerRow <= 0 || p.Height <= 0 || p.Width <= 0 {
		return fmt.Errorf("plane requires positive bytesPerRow, height and width, got %d/%d/%d",
			p.BytesPerRow, p.Height, p.Width)
	}
	return nil
}

func (p Plane) marshal() map[string]any {
	return map[string]any{
		"bytesPerRow": p.BytesPerRow,
		"height":      p.Height,
		"width":       p.Width,
	}
}

// Metadata describes a raw image buffer. It is a closed set of two variants,
// chosen at construction time by how the capture environment lays buffers out:
// FrameMetadata for packed single-buffer frames, PlanarMetadata for per-plane
// layouts that additionally require the raw pixel format code.
type Metadata interface {
	validate() error
	marshal() map[string]any
}

// FrameMetadata describes a packed buffer. Only dimensions and rotation are
// needed to reconstruct the frame.
type FrameMetadata struct {
	Width    int
	Height   int
	Rotation Rotation
}

func (m FrameMetadata) validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("metadata requires positive dimensions, got %dx%d", m.Width, m.Height)
	}
	return nil
}

func (m FrameMetadata) marshal() map[string]any {
	return map[string]any{
		"width":    m.Width,
		"height":   m.Height,
		"rotation": m.Rotation.Degrees(),
	}
}

// PlanarMetadata describes a buffer split into color planes. The raw format
// code and at least one plane are mandatory; the native side needs both to
// reassemble the pixel buffer.
type PlanarMetadata struct {
	Width     int
	Height    int
	Rotation  Rotation
	RawFormat RawFormat
	Planes    []Plane
}

func (m PlanarMetadata) validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("metadata requires positive dimensions, got %dx%d", m.Width, m.Height)
	}
	if m.RawFormat == 0 {
		return fmt.Errorf("planar metadata requires a raw format code")
	}
	if len(m.Planes) == 0 {
		return fmt.Errorf("planar metadata requires at least one plane")
	}
	for i, p := range m.Planes {
		if err := p.validate(); err != nil {
			return fmt.Errorf("plane %d: %w", i, err)
		}
	}
	return nil
}

func (m PlanarMetadata) marshal() map[string]any {
	planes := make([]map[string]any, 0, len(m.Planes))
	for _, p := range m.Planes {
		planes = append(planes, p.marshal())
	}
	return map[string]any{
		"width":     m.Width,
		"height":    m.Height,
		"rotation":  m.Rotation.Degrees(),
		"rawFormat": int32(m.RawFormat),
		"planeData": planes,
	}
}
