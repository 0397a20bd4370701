// Package vision holds the pieces shared by the detector front-ends:
// geometry decoding for native reply mappings.
package vision

import (
	"image"

	"github.com/menta2k/vision-bridge/pkg/bridge"
)

// RectFrom reads a bounding box serialized as left/top/width/height.
func RectFrom(m map[string]any) image.Rectangle {
	left := bridge.Int(m, "left")
	top := bridge.Int(m, "top")
	width := bridge.Int(m, "width")
	height := bridge.Int(m, "height")
	if width == 0 && height == 0 {
		return image.Rectangle{}
	}
	return image.Rect(left, top, left+width, top+height)
}

// PointFrom reads a point serialized as a two-element [x, y] list.
func PointFrom(v any) (image.Point, bool) {
	pair, ok := v.([]any)
	if !ok || len(pair) != 2 {
		return image.Point{}, false
	}
	x, xok := asInt(pair[0])
	y, yok := asInt(pair[1])
	if !xok || !yok {
		return image.Point{}, false
	}
	return image.Pt(x, y), true
}

// PointsFrom reads a list of [x, y] pairs, skipping malformed entries.
func PointsFrom(l []any) []image.Point {
	if len(l) == 0 {
		return nil
	}
	points := make([]image.Point, 0, len(l))
	for _, item := range l {
		if p, ok := PointFrom(item); ok {
			points = append(points, p)
		}
	}
	return points
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
