// Package visionbridge provides typed Go front-ends for a native ML-vision
// and authentication service reached over an opaque bridge channel.
//
// The package implements no detection algorithm and no auth protocol. Each
// detector front-end serializes its image and options into a method
// invocation, sends it over the channel, and deserializes the native reply
// into typed results; models, sessions and tokens all live on the native side.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		visionbridge "github.com/menta2k/vision-bridge"
//		"github.com/menta2k/vision-bridge/pkg/bridge"
//		"github.com/menta2k/vision-bridge/pkg/mlimage"
//	)
//
//	func main() {
//		ch, err := bridge.NewHTTPChannel("http://localhost:8090")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		vision := visionbridge.New(ch)
//		labeler := vision.ImageLabeler(nil) // default options
//
//		img, err := mlimage.FromFilePath("photo.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		labels, err := labeler.Process(context.Background(), img)
//		if err != nil {
//			log.Fatal(err)
//		}
//		for _, l := range labels {
//			fmt.Printf("%s (%.2f)\n", l.Text, l.Confidence)
//		}
//	}
//
// The package consists of these components:
//
// 1. visionbridge (root): the façade constructing handle-bound front-ends
// 2. pkg/bridge: the channel transports (HTTP and WebSocket)
// 3. pkg/mlimage: image value objects and their wire marshalling
// 4. pkg/barcode, pkg/face, pkg/label, pkg/text: detector front-ends
// 5. pkg/auth: the authentication front-end
// 6. pkg/processing: client-side helpers for producing buffer-backed images
package visionbridge

import (
	"sync/atomic"

	"github.com/menta2k/vision-bridge/pkg/auth"
	"github.com/menta2k/vision-bridge/pkg/barcode"
	"github.com/menta2k/vision-bridge/pkg/bridge"
	"github.com/menta2k/vision-bridge/pkg/face"
	"github.com/menta2k/vision-bridge/pkg/label"
	"github.com/menta2k/vision-bridge/pkg/text"
)

// Version of the vision-bridge library
const Version = "1.0.0"

// Vision is the detector factory. It owns the bridge channel and the handle
// counter identifying native detector instances. Handles increase
// monotonically and are never reused; the counter is atomic, so a Vision may
// be shared across goroutines.
type Vision struct {
	ch         bridge.Channel
	nextHandle atomic.Int64
}

// New creates a Vision session on the given channel.
func New(ch bridge.Channel) *Vision {
	return &Vision{ch: ch}
}

// handle allocates the next unused native instance handle. Handles start at
// zero and only ever increase.
func (v *Vision) handle() int64 {
	return v.nextHandle.Add(1) - 1
}

// BarcodeDetector creates a barcode detector front-end. A nil opts means
// barcode.DefaultOptions. Construction never fails; the native instance is
// created lazily on first use of the handle.
func (v *Vision) BarcodeDetector(opts *barcode.Options) *barcode.Detector {
	return barcode.New(v.ch, v.handle(), opts)
}

// FaceDetector creates a face detector front-end. A nil opts means
// face.DefaultOptions.
func (v *Vision) FaceDetector(opts *face.Options) *face.Detector {
	return face.New(v.ch, v.handle(), opts)
}

// ImageLabeler creates an on-device image labeler front-end. A nil opts
// means label.DefaultOptions.
func (v *Vision) ImageLabeler(opts *label.Options) *label.Labeler {
	return label.New(v.ch, v.handle(), opts)
}

// CloudImageLabeler creates a cloud image labeler front-end. A nil opts
// means label.DefaultCloudOptions.
func (v *Vision) CloudImageLabeler(opts *label.CloudOptions) *label.Labeler {
	return label.NewCloud(v.ch, v.handle(), opts)
}

// TextRecognizer creates an on-device text recognizer front-end.
func (v *Vision) TextRecognizer() *text.Recognizer {
	return text.New(v.ch, v.handle())
}

// CloudTextRecognizer creates a cloud text recognizer front-end. A nil opts
// means text.DefaultCloudOptions.
func (v *Vision) CloudTextRecognizer(opts *text.CloudOptions) *text.Recognizer {
	return text.NewCloud(v.ch, v.handle(), opts)
}

// CloudDocumentTextRecognizer creates a cloud document text recognizer
// front-end for dense, formatted text. A nil opts means
// text.DefaultCloudOptions.
func (v *Vision) CloudDocumentTextRecognizer(opts *text.CloudOptions) *text.Recognizer {
	return text.NewCloudDocument(v.ch, v.handle(), opts)
}

// Auth returns the authentication front-end bound to the same transport.
func (v *Vision) Auth() *auth.Client {
	return auth.New(v.ch)
}

// GetVersion returns the library version.
func GetVersion() string {
	return Version
}
