package text

import (
	"image"

	"golang.org/x/text/language"

	"github.com/menta2k/vision-bridge/pkg/bridge"
	"github.com/menta2k/vision-bridge/pkg/vision"
)

// RecognizedLanguage is a language the native recognizer believes a piece of
// text is written in.
type RecognizedLanguage struct {
	// Code is the BCP-47 language code as reported by the native side.
	Code string
}

// Tag parses the code as a BCP-47 tag. The second return is false when the
// native side reported something unparseable; Code still carries it verbatim.
func (l RecognizedLanguage) Tag() (language.Tag, bool) {
	tag, err := language.Parse(l.Code)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Text is the full recognition result for one image.
type Text struct {
	// Text is the recognized text of the whole image.
	Text   string
	Blocks []Block
}

// Block is a paragraph-like group of lines.
type Block struct {
	Text         string
	BoundingBox  image.Rectangle
	CornerPoints []image.Point
	Confidence   float64
	Languages    []RecognizedLanguage
	Lines        []Line
}

// Line is a single line of text inside a block.
type Line struct {
	Text         string
	BoundingBox  image.Rectangle
	CornerPoints []image.Point
	Confidence   float64
	Languages    []RecognizedLanguage
	Elements     []Element
}

// Element is a word-like unit inside a line.
type Element struct {
	Text         string
	BoundingBox  image.Rectangle
	CornerPoints []image.Point
	Confidence   float64
	Languages    []RecognizedLanguage
}

func parseText(m map[string]any) *Text {
	result := &Text{Text: bridge.String(m, "text")}
	for _, v := range bridge.List(m, "blocks") {
		bm, ok := bridge.Map(v)
		if !ok {
			continue
		}
		block := Block{
			Text:         bridge.String(bm, "text"),
			BoundingBox:  vision.RectFrom(bm),
			CornerPoints: vision.PointsFrom(bridge.List(bm, "points")),
			Confidence:   bridge.Float(bm, "confidence"),
			Languages:    parseLanguages(bridge.List(bm, "recognizedLanguages")),
		}
		for _, lv := range bridge.List(bm, "lines") {
			lm, ok := bridge.Map(lv)
			if !ok {
				continue
			}
			line := Line{
				Text:         bridge.String(lm, "text"),
				BoundingBox:  vision.RectFrom(lm),
				CornerPoints: vision.PointsFrom(bridge.List(lm, "points")),
				Confidence:   bridge.Float(lm, "confidence"),
				Languages:    parseLanguages(bridge.List(lm, "recognizedLanguages")),
			}
			for _, ev := range bridge.List(lm, "elements") {
				em, ok := bridge.Map(ev)
				if !ok {
					continue
				}
				line.Elements = append(line.Elements, Element{
					Text:         bridge.String(em, "text"),
					BoundingBox:  vision.RectFrom(em),
					CornerPoints: vision.PointsFrom(bridge.List(em, "points")),
					Confidence:   bridge.Float(em, "confidence"),
					Languages:    parseLanguages(bridge.List(em, "recognizedLanguages")),
				})
			}
			block.Lines = append(block.Lines, line)
		}
		result.Blocks = append(result.Blocks, block)
	}
	return result
}

func parseLanguages(l []any) []RecognizedLanguage {
	if len(l) == 0 {
		return nil
	}
	langs := make([]RecognizedLanguage, 0, len(l))
	for _, v := range l {
		m, ok := bridge.Map(v)
		if !ok {
			continue
		}
		if code := bridge.String(m, "languageCode"); code != "" {
			langs = append(langs, RecognizedLanguage{Code: code})
		}
	}
	return langs
}
