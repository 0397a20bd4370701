// Package label is the front-end for the native image labelers, both the
// on-device and the cloud model.
package label

import (
	"context"
	"fmt"

	"github.com/menta2k/vision-bridge/pkg/bridge"
	"github.com/menta2k/vision-bridge/pkg/mlimage"
)

// ModelType selects where label inference runs.
type ModelType string

const (
	OnDeviceModel ModelType = "onDevice"
	CloudModel    ModelType = "cloud"
)

// Options configures an on-device Labeler.
type Options struct {
	// ConfidenceThreshold drops labels scored below it.
	ConfidenceThreshold float64
}

// DefaultOptions returns the configuration used when none is supplied.
func DefaultOptions() *Options {
	return &Options{ConfidenceThreshold: 0.5}
}

// CloudOptions configures a cloud Labeler.
type CloudOptions struct {
	// ConfidenceThreshold drops labels scored below it.
	ConfidenceThreshold float64
	// MaxResults caps the number of labels returned by the service.
	MaxResults int
}

// DefaultCloudOptions returns the configuration used when none is supplied.
func DefaultCloudOptions() *CloudOptions {
	return &CloudOptions{
		ConfidenceThreshold: 0.5,
		MaxResults:          10,
	}
}

// Label is one recognized entity.
type Label struct {
	Text       string
	EntityID   string
	Confidence float64
}

// Labeler is a handle-bound front-end for a native image labeler instance.
// Obtain one from the visionbridge façade.
type Labeler struct {
	ch     bridge.Channel
	handle int64
	model  ModelType
	opts   CloudOptions
}

// New binds an on-device labeler front-end to a channel and handle.
func New(ch bridge.Channel, handle int64, opts *Options) *Labeler {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Labeler{
		ch:     ch,
		handle: handle,
		model:  OnDeviceModel,
		opts:   CloudOptions{ConfidenceThreshold: opts.ConfidenceThreshold},
	}
}

// NewCloud binds a cloud labeler front-end to a channel and handle.
func NewCloud(ch bridge.Channel, handle int64, opts *CloudOptions) *Labeler {
	if opts == nil {
		opts = DefaultCloudOptions()
	}
	return &Labeler{
		ch:     ch,
		handle: handle,
		model:  CloudModel,
		opts:   *opts,
	}
}

// Handle returns the native instance handle this labeler is bound to.
func (l *Labeler) Handle() int64 { return l.handle }

// Model returns where inference runs for this labeler.
func (l *Labeler) Model() ModelType { return l.model }

// ConfidenceThreshold returns the configured threshold.
func (l *Labeler) ConfidenceThreshold() float64 {
	return l.opts.ConfidenceThreshold
}

func (l *Labeler) marshalOptions() map[string]any {
	options := map[string]any{
		"modelType":           string(l.model),
		"confidenceThreshold": l.opts.ConfidenceThreshold,
	}
	if l.model == CloudModel {
		options["maxResults"] = l.opts.MaxResults
	}
	return options
}

// Process labels the entities in an image.
func (l *Labeler) Process(ctx context.Context, img mlimage.Image) ([]Label, error) {
	args := img.Marshal()
	args["handle"] = l.handle
	args["options"] = l.marshalOptions()

	reply, err := l.ch.Invoke(ctx, bridge.VisionChannel, "ImageLabeler#processImage", args)
	if err != nil {
		return nil, err
	}

	items, err := bridge.Maps(reply)
	if err != nil {
		return nil, fmt.Errorf("malformed label reply: %w", err)
	}

	labels := make([]Label, 0, len(items))
	for _, m := range items {
		labels = append(labels, Label{
			Text:       bridge.String(m, "text"),
			EntityID:   bridge.String(m, "entityId"),
			Confidence: bridge.Float(m, "confidence"),
		})
	}
	return labels, nil
}

// Close releases the native labeler instance. The handle is not reused.
func (l *Labeler) Close(ctx context.Context) error {
	_, err := l.ch.Invoke(ctx, bridge.VisionChannel, "ImageLabeler#close", map[string]any{
		"handle": l.handle,
	})
	return err
}
