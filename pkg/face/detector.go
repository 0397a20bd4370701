// Package face is the front-end for the native face detector.
package face

import (
	"context"
	"fmt"

	"github.com/menta2k/vision-bridge/pkg/bridge"
	"github.com/menta2k/vision-bridge/pkg/mlimage"
)

// Mode trades accuracy against latency in the native detector.
type Mode string

const (
	FastMode     Mode = "fast"
	AccurateMode Mode = "accurate"
)

// Options configures a Detector.
type Options struct {
	// EnableClassification computes smiling/eye-open probabilities.
	EnableClassification bool
	// EnableLandmarks reports facial landmark positions.
	EnableLandmarks bool
	// EnableContours reports facial contour point sets.
	EnableContours bool
	// EnableTracking assigns stable ids to faces across frames.
	EnableTracking bool
	// MinFaceSize is the smallest face to report, as a fraction of the
	// image width.
	MinFaceSize float64
	// Mode selects the fast or accurate native model.
	Mode Mode
}

// DefaultOptions returns the configuration used when none is supplied.
func DefaultOptions() *Options {
	return &Options{
		MinFaceSize: 0.1,
		Mode:        FastMode,
	}
}

func (o *Options) marshal() map[string]any {
	return map[string]any{
		"enableClassification": o.EnableClassification,
		"enableLandmarks":      o.EnableLandmarks,
		"enableContours":       o.EnableContours,
		"enableTracking":       o.EnableTracking,
		"minFaceSize":          o.MinFaceSize,
		"mode":                 string(o.Mode),
	}
}

// Detector is a handle-bound front-end for a native face detector instance.
// Obtain one from the visionbridge façade.
type Detector struct {
	ch     bridge.Channel
	handle int64
	opts   Options
}

// New binds a detector front-end to a channel and handle.
func New(ch bridge.Channel, handle int64, opts *Options) *Detector {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Detector{ch: ch, handle: handle, opts: *opts}
}

// Handle returns the native instance handle this detector is bound to.
func (d *Detector) Handle() int64 { return d.handle }

// Options returns the configuration the detector was created with.
func (d *Detector) Options() Options { return d.opts }

// Process runs face detection on an image.
func (d *Detector) Process(ctx context.Context, img mlimage.Image) ([]Face, error) {
	args := img.Marshal()
	args["handle"] = d.handle
	args["options"] = d.opts.marshal()

	reply, err := d.ch.Invoke(ctx, bridge.VisionChannel, "FaceDetector#processImage", args)
	if err != nil {
		return nil, err
	}

	items, err := bridge.Maps(reply)
	if err != nil {
		return nil, fmt.Errorf("malformed face reply: %w", err)
	}

	faces := make([]Face, 0, len(items))
	for _, m := range items {
		faces = append(faces, parseFace(m))
	}
	return faces, nil
}

// Close releases the native detector instance. The handle is not reused.
func (d *Detector) Close(ctx context.Context) error {
	_, err := d.ch.Invoke(ctx, bridge.VisionChannel, "FaceDetector#close", map[string]any{
		"handle": d.handle,
	})
	return err
}
