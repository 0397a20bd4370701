// Package barcode is the front-end for the native barcode detector.
package barcode

import (
	"context"
	"fmt"

	"github.com/menta2k/vision-bridge/pkg/bridge"
	"github.com/menta2k/vision-bridge/pkg/mlimage"
)

// Options configures a Detector. The zero value detects nothing useful;
// use DefaultOptions (all formats) unless a restriction is wanted.
type Options struct {
	// Formats is a bitmask of the symbologies to look for.
	Formats Format
}

// DefaultOptions returns the configuration used when none is supplied.
func DefaultOptions() *Options {
	return &Options{Formats: FormatAll}
}

func (o *Options) marshal() map[string]any {
	return map[string]any{
		"barcodeFormats": int(o.Formats),
	}
}

// Detector is a handle-bound front-end for a native barcode detector
// instance. Obtain one from the visionbridge façade.
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

// Detect runs barcode detection on an image.
func (d *Detector) Detect(ctx context.Context, img mlimage.Image) ([]Barcode, error) {
	args := img.Marshal()
	args["handle"] = d.handle
	args["options"] = d.opts.marshal()

	reply, err := d.ch.Invoke(ctx, bridge.VisionChannel, "BarcodeDetector#detectInImage", args)
	if err != nil {
		return nil, err
	}

	items, err := bridge.Maps(reply)
	if err != nil {
		return nil, fmt.Errorf("malformed barcode reply: %w", err)
	}

	barcodes := make([]Barcode, 0, len(items))
	for _, m := range items {
		barcodes = append(barcodes, parseBarcode(m))
	}
	return barcodes, nil
}

// Close releases the native detector instance. The handle is not reused.
func (d *Detector) Close(ctx context.Context) error {
	_, err := d.ch.Invoke(ctx, bridge.VisionChannel, "BarcodeDetector#close", map[string]any{
		"handle": d.handle,
	})
	return err
}
