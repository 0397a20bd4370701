package face

import (
	"image"

	"github.com/menta2k/vision-bridge/pkg/bridge"
	"github.com/menta2k/vision-bridge/pkg/vision"
)

// LandmarkType names a facial landmark reported by the native detector.
type LandmarkType string

const (
	LandmarkBottomMouth LandmarkType = "bottomMouth"
	LandmarkLeftCheek   LandmarkType = "leftCheek"
	LandmarkLeftEar     LandmarkType = "leftEar"
	LandmarkLeftEye     LandmarkType = "leftEye"
	LandmarkLeftMouth   LandmarkType = "leftMouth"
	LandmarkNose        LandmarkType = "noseBase"
	LandmarkRightCheek  LandmarkType = "rightCheek"
	LandmarkRightEar    LandmarkType = "rightEar"
	LandmarkRightEye    LandmarkType = "rightEye"
	LandmarkRightMouth  LandmarkType = "rightMouth"
)

// ContourType names a facial contour reported by the native detector.
type ContourType string

const (
	ContourFace            ContourType = "face"
	ContourLeftEye         ContourType = "leftEye"
	ContourRightEye        ContourType = "rightEye"
	ContourLeftEyebrowTop  ContourType = "leftEyebrowTop"
	ContourLeftEyebrowBot  ContourType = "leftEyebrowBottom"
	ContourRightEyebrowTop ContourType = "rightEyebrowTop"
	ContourRightEyebrowBot ContourType = "rightEyebrowBottom"
	ContourUpperLipTop     ContourType = "upperLipTop"
	ContourUpperLipBottom  ContourType = "upperLipBottom"
	ContourLowerLipTop     ContourType = "lowerLipTop"
	ContourLowerLipBottom  ContourType = "lowerLipBottom"
	ContourNoseBridge      ContourType = "noseBridge"
	ContourNoseBottom      ContourType = "noseBottom"
)

// NoTrackingID marks a face detected without tracking enabled.
const NoTrackingID = -1

// Face is one detected face. Probability fields are only populated when
// classification was enabled in the options; landmark and contour maps are
// only populated when the respective modes were enabled.
type Face struct {
	BoundingBox             image.Rectangle
	HeadEulerAngleY         float64
	HeadEulerAngleZ         float64
	SmilingProbability      float64
	LeftEyeOpenProbability  float64
	RightEyeOpenProbability float64
	TrackingID              int
	Landmarks               map[LandmarkType]image.Point
	Contours                map[ContourType][]image.Point
}

func parseFace(m map[string]any) Face {
	f := Face{
		BoundingBox:             vision.RectFrom(m),
		HeadEulerAngleY:         bridge.Float(m, "headEulerAngleY"),
		HeadEulerAngleZ:         bridge.Float(m, "headEulerAngleZ"),
		SmilingProbability:      bridge.Float(m, "smilingProbability"),
		LeftEyeOpenProbability:  bridge.Float(m, "leftEyeOpenProbability"),
		RightEyeOpenProbability: bridge.Float(m, "rightEyeOpenProbability"),
		TrackingID:              NoTrackingID,
	}
	if _, ok := m["trackingId"]; ok {
		f.TrackingID = bridge.Int(m, "trackingId")
	}

	if landmarks, ok := bridge.Map(m["landmarks"]); ok {
		f.Landmarks = make(map[LandmarkType]image.Point, len(landmarks))
		for name, v := range landmarks {
			if p, ok := vision.PointFrom(v); ok {
				f.Landmarks[LandmarkType(name)] = p
			}
		}
	}

	if contours, ok := bridge.Map(m["contours"]); ok {
		f.Contours = make(map[ContourType][]image.Point, len(contours))
		for name, v := range contours {
			if l, ok := v.([]any); ok {
				f.Contours[ContourType(name)] = vision.PointsFrom(l)
			}
		}
	}

	return f
}
