package visionbridge

import (
	"context"
	"testing"

	"github.com/menta2k/vision-bridge/pkg/barcode"
	"github.com/menta2k/vision-bridge/pkg/face"
	"github.com/menta2k/vision-bridge/pkg/label"
)

// stubChannel records invocations and replies with a fixed result.
type stubChannel struct {
	lastChannel string
	lastMethod  string
	lastArgs    map[string]any
	result      any
	err         error
}

func (s *stubChannel) Invoke(_ context.Context, channel, method string, args map[string]any) (any, error) {
	s.lastChannel = channel
	s.lastMethod = method
	s.lastArgs = args
	return s.result, s.err
}

func TestNew(t *testing.T) {
	vision := New(&stubChannel{})
	if vision == nil {
		t.Fatal("New() returned nil")
	}

	if vision.Auth() == nil {
		t.Error("Auth() returned nil")
	}
}

func TestHandlesAreMonotonic(t *testing.T) {
	vision := New(&stubChannel{})

	handles := []int64{
		vision.BarcodeDetector(nil).Handle(),
		vision.FaceDetector(nil).Handle(),
		vision.ImageLabeler(nil).Handle(),
		vision.CloudImageLabeler(nil).Handle(),
		vision.TextRecognizer().Handle(),
		vision.CloudTextRecognizer(nil).Handle(),
		vision.CloudDocumentTextRecognizer(nil).Handle(),
		vision.BarcodeDetector(nil).Handle(),
	}

	if handles[0] != 0 {
		t.Errorf("Expected first handle 0, got %d", handles[0])
	}

	for i := 1; i < len(handles); i++ {
		if handles[i] <= handles[i-1] {
			t.Errorf("Handle %d (%d) not greater than previous (%d)", i, handles[i], handles[i-1])
		}
	}
}

func TestHandlesUniqueAcrossGoroutines(t *testing.T) {
	vision := New(&stubChannel{})

	const n = 64
	results := make(chan int64, n)
	for i := 0; i < n; i++ {
		go func() {
			results <- vision.ImageLabeler(nil).Handle()
		}()
	}

	seen := make(map[int64]bool, n)
	for i := 0; i < n; i++ {
		h := <-results
		if seen[h] {
			t.Fatalf("Handle %d issued twice", h)
		}
		seen[h] = true
	}
}

func TestImageLabelerDefaultOptions(t *testing.T) {
	vision := New(&stubChannel{})

	first := vision.ImageLabeler(nil)
	second := vision.ImageLabeler(nil)

	if first.Handle() != 0 || second.Handle() != 1 {
		t.Errorf("Expected handles 0 and 1, got %d and %d", first.Handle(), second.Handle())
	}

	// Nil options must match the explicit default options.
	explicit := vision.ImageLabeler(label.DefaultOptions())

	if first.ConfidenceThreshold() != explicit.ConfidenceThreshold() {
		t.Errorf("Nil options threshold %f differs from explicit default %f",
			first.ConfidenceThreshold(), explicit.ConfidenceThreshold())
	}

	if first.Model() != label.OnDeviceModel {
		t.Errorf("Expected on-device model, got %s", first.Model())
	}
}

func TestFactoryDefaultsMatchExplicitDefaults(t *testing.T) {
	vision := New(&stubChannel{})

	if got, want := vision.BarcodeDetector(nil).Options(), *barcode.DefaultOptions(); got != want {
		t.Errorf("Barcode defaults mismatch: got %+v, want %+v", got, want)
	}

	if got, want := vision.FaceDetector(nil).Options(), *face.DefaultOptions(); got != want {
		t.Errorf("Face defaults mismatch: got %+v, want %+v", got, want)
	}

	if vision.CloudImageLabeler(nil).Model() != label.CloudModel {
		t.Error("Cloud labeler should use the cloud model")
	}
}
