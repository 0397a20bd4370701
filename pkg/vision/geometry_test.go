package vision

import "testing"

func TestRectFrom(t *testing.T) {
	m := map[string]any{
		"left":   float64(10),
		"top":    float64(20),
		"width":  float64(30),
		"height": float64(40),
	}

	r := RectFrom(m)
	if r.Min.X != 10 || r.Min.Y != 20 || r.Max.X != 40 || r.Max.Y != 60 {
		t.Errorf("Unexpected rectangle: %v", r)
	}
}

func TestRectFromMissing(t *testing.T) {
	if r := RectFrom(map[string]any{}); !r.Empty() {
		t.Errorf("Missing box fields should yield an empty rectangle, got %v", r)
	}
}

func TestPointsFrom(t *testing.T) {
	points := PointsFrom([]any{
		[]any{float64(1), float64(2)},
		"garbage",
		[]any{float64(3)},
		[]any{float64(5), float64(6)},
	})

	if len(points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(points))
	}
	if points[0].X != 1 || points[0].Y != 2 || points[1].X != 5 || points[1].Y != 6 {
		t.Errorf("Points did not parse: %v", points)
	}
}

func TestPointsFromEmpty(t *testing.T) {
	if points := PointsFrom(nil); points != nil {
		t.Errorf("Expected nil for empty input, got %v", points)
	}
}
