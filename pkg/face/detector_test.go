package face

import (
	"context"
	"testing"

	"github.com/menta2k/vision-bridge/pkg/mlimage"
)

type stubChannel struct {
	lastMethod string
	lastArgs   map[string]any
	result     any
	err        error
}

func (s *stubChannel) Invoke(_ context.Context, _, method string, args map[string]any) (any, error) {
	s.lastMethod = method
	s.lastArgs = args
	return s.result, s.err
}

func testImage(t *testing.T) mlimage.Image {
	t.Helper()
	img, err := mlimage.FromFilePath("/tmp/portrait.jpg")
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.MinFaceSize != 0.1 {
		t.Errorf("Expected min face size 0.1, got %f", opts.MinFaceSize)
	}
	if opts.Mode != FastMode {
		t.Errorf("Expected fast mode, got %s", opts.Mode)
	}
	if opts.EnableClassification || opts.EnableLandmarks || opts.EnableContours || opts.EnableTracking {
		t.Error("All feature flags should default to off")
	}
}

func TestProcess(t *testing.T) {
	ch := &stubChannel{
		result: []any{
			map[string]any{
				"left":                    float64(40),
				"top":                     float64(50),
				"width":                   float64(120),
				"height":                  float64(120),
				"headEulerAngleY":         float64(-3.5),
				"headEulerAngleZ":         float64(1.25),
				"smilingProbability":      float64(0.92),
				"leftEyeOpenProbability":  float64(0.88),
				"rightEyeOpenProbability": float64(0.9),
				"trackingId":              float64(12),
				"landmarks": map[string]any{
					"noseBase": []any{float64(100), float64(110)},
				},
				"contours": map[string]any{
					"face": []any{[]any{float64(40), float64(50)}, []any{float64(160), float64(170)}},
				},
			},
		},
	}

	d := New(ch, 2, &Options{
		EnableClassification: true,
		EnableLandmarks:      true,
		EnableContours:       true,
		EnableTracking:       true,
		MinFaceSize:          0.2,
		Mode:                 AccurateMode,
	})

	faces, err := d.Process(context.Background(), testImage(t))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if ch.lastMethod != "FaceDetector#processImage" {
		t.Errorf("Unexpected method: %s", ch.lastMethod)
	}

	opts := ch.lastArgs["options"].(map[string]any)
	if opts["mode"] != "accurate" || opts["minFaceSize"] != 0.2 {
		t.Errorf("Options not serialized: %v", opts)
	}
	if opts["enableClassification"] != true || opts["enableTracking"] != true {
		t.Errorf("Feature flags not serialized: %v", opts)
	}

	if len(faces) != 1 {
		t.Fatalf("Expected 1 face, got %d", len(faces))
	}

	f := faces[0]
	if f.BoundingBox.Dx() != 120 || f.BoundingBox.Dy() != 120 {
		t.Errorf("Bounding box did not parse: %v", f.BoundingBox)
	}
	if f.HeadEulerAngleY != -3.5 || f.HeadEulerAngleZ != 1.25 {
		t.Errorf("Head angles did not parse: %+v", f)
	}
	if f.SmilingProbability != 0.92 {
		t.Errorf("Smiling probability did not parse: %f", f.SmilingProbability)
	}
	if f.TrackingID != 12 {
		t.Errorf("Expected tracking id 12, got %d", f.TrackingID)
	}
	if p, ok := f.Landmarks[LandmarkNose]; !ok || p.X != 100 || p.Y != 110 {
		t.Errorf("Nose landmark did not parse: %v", f.Landmarks)
	}
	if pts := f.Contours[ContourFace]; len(pts) != 2 || pts[1].X != 160 {
		t.Errorf("Face contour did not parse: %v", f.Contours)
	}
}

func TestProcessWithoutTracking(t *testing.T) {
	ch := &stubChannel{
		result: []any{
			map[string]any{
				"left":   float64(0),
				"top":    float64(0),
				"width":  float64(10),
				"height": float64(10),
			},
		},
	}

	d := New(ch, 0, nil)
	faces, err := d.Process(context.Background(), testImage(t))
	if err != nil {
		t.Fatal(err)
	}
	if faces[0].TrackingID != NoTrackingID {
		t.Errorf("Expected NoTrackingID, got %d", faces[0].TrackingID)
	}
	if faces[0].Landmarks != nil || faces[0].Contours != nil {
		t.Error("Landmarks and contours should be nil when not reported")
	}
}

func TestClose(t *testing.T) {
	ch := &stubChannel{}
	d := New(ch, 9, nil)

	if err := d.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ch.lastMethod != "FaceDetector#close" || ch.lastArgs["handle"] != int64(9) {
		t.Errorf("Unexpected close invocation: %s %v", ch.lastMethod, ch.lastArgs)
	}
}
