// Package text is the front-end for the native text recognizers: the
// on-device model, the cloud model, and the cloud document model for dense
// scanned text.
package text

import (
	"context"
	"fmt"

	"github.com/menta2k/vision-bridge/pkg/bridge"
	"github.com/menta2k/vision-bridge/pkg/mlimage"
)

// CloudOptions configures the cloud-backed recognizers.
type CloudOptions struct {
	// LanguageHints are BCP-47 codes nudging the service toward the
	// expected languages. Empty means automatic detection.
	LanguageHints []string
}

// DefaultCloudOptions returns the configuration used when none is supplied.
func DefaultCloudOptions() *CloudOptions {
	return &CloudOptions{}
}

type kind struct {
	prefix    string
	modelType string
}

var (
	onDeviceKind      = kind{prefix: "TextRecognizer", modelType: "onDevice"}
	cloudKind         = kind{prefix: "TextRecognizer", modelType: "cloud"}
	cloudDocumentKind = kind{prefix: "DocumentTextRecognizer", modelType: "cloud"}
)

// Recognizer is a handle-bound front-end for a native text recognizer
// instance. Obtain one from the visionbridge façade.
type Recognizer struct {
	ch     bridge.Channel
	handle int64
	kind   kind
	opts   CloudOptions
}

// New binds an on-device recognizer front-end to a channel and handle.
func New(ch bridge.Channel, handle int64) *Recognizer {
	return &Recognizer{ch: ch, handle: handle, kind: onDeviceKind}
}

// NewCloud binds a cloud recognizer front-end to a channel and handle.
func NewCloud(ch bridge.Channel, handle int64, opts *CloudOptions) *Recognizer {
	if opts == nil {
		opts = DefaultCloudOptions()
	}
	return &Recognizer{ch: ch, handle: handle, kind: cloudKind, opts: *opts}
}

// NewCloudDocument binds a cloud document recognizer front-end to a channel
// and handle. The document model targets dense, formatted text.
func NewCloudDocument(ch bridge.Channel, handle int64, opts *CloudOptions) *Recognizer {
	if opts == nil {
		opts = DefaultCloudOptions()
	}
	return &Recognizer{ch: ch, handle: handle, kind: cloudDocumentKind, opts: *opts}
}

// Handle returns the native instance handle this recognizer is bound to.
func (r *Recognizer) Handle() int64 { return r.handle }

func (r *Recognizer) marshalOptions() map[string]any {
	options := map[string]any{
		"modelType": r.kind.modelType,
	}
	if len(r.opts.LanguageHints) > 0 {
		options["hintedLanguages"] = r.opts.LanguageHints
	}
	return options
}

// Process recognizes text in an image.
func (r *Recognizer) Process(ctx context.Context, img mlimage.Image) (*Text, error) {
	args := img.Marshal()
	args["handle"] = r.handle
	args["options"] = r.marshalOptions()

	reply, err := r.ch.Invoke(ctx, bridge.VisionChannel, r.kind.prefix+"#processImage", args)
	if err != nil {
		return nil, err
	}

	m, ok := bridge.Map(reply)
	if !ok {
		return nil, fmt.Errorf("malformed text reply: expected mapping, got %T", reply)
	}
	return parseText(m), nil
}

// Close releases the native recognizer instance. The handle is not reused.
func (r *Recognizer) Close(ctx context.Context) error {
	_, err := r.ch.Invoke(ctx, bridge.VisionChannel, r.kind.prefix+"#close", map[string]any{
		"handle": r.handle,
	})
	return err
}
