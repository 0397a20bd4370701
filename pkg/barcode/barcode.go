package barcode

import (
	"image"

	"github.com/menta2k/vision-bridge/pkg/bridge"
	"github.com/menta2k/vision-bridge/pkg/vision"
)

// Format identifies a barcode symbology. Values are a bitmask so options can
// restrict detection to several formats at once.
type Format int

const (
	FormatUnknown Format = 0
	FormatAll     Format = 0xFFFF

	FormatCode128    Format = 1
	FormatCode39     Format = 2
	FormatCode93     Format = 4
	FormatCodabar    Format = 8
	FormatDataMatrix Format = 16
	FormatEAN13      Format = 32
	FormatEAN8       Format = 64
	FormatITF        Format = 128
	FormatQRCode     Format = 256
	FormatUPCA       Format = 512
	FormatUPCE       Format = 1024
	FormatPDF417     Format = 2048
	FormatAztec      Format = 4096
)

// ValueType classifies the content of a detected barcode.
type ValueType int

const (
	ValueUnknown ValueType = iota
	ValueContactInfo
	ValueEmail
	ValueISBN
	ValuePhone
	ValueProduct
	ValueSMS
	ValueText
	ValueURL
	ValueWiFi
	ValueGeo
	ValueCalendarEvent
	ValueDriverLicense
)

// Barcode is one detected barcode.
type Barcode struct {
	RawValue     string
	DisplayValue string
	Format       Format
	ValueType    ValueType
	BoundingBox  image.Rectangle
	CornerPoints []image.Point
}

func parseBarcode(m map[string]any) Barcode {
	return Barcode{
		RawValue:     bridge.String(m, "rawValue"),
		DisplayValue: bridge.String(m, "displayValue"),
		Format:       Format(bridge.Int(m, "format")),
		ValueType:    ValueType(bridge.Int(m, "valueType")),
		BoundingBox:  vision.RectFrom(m),
		CornerPoints: vision.PointsFrom(bridge.List(m, "points")),
	}
}
