package highlight

import (
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// labelFontCandidates are well-known bold font locations tried in order when
// sizing and drawing labels. Absence of all of them is tolerated; the
// embedded Go Bold face is the guaranteed final fallback.
var labelFontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
	"arial.ttf",
}

// measurementFontSize is the small fixed size used for the orchestrator's
// fallback measurement face.
const measurementFontSize = 12

var embeddedBold = func() *truetype.Font {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		// gobold.TTF is embedded in the binary; it always parses.
		panic(err)
	}
	return f
}()

// loadFirstAvailable tries each candidate font path in order at the given
// size and returns the first face that loads. When none of them do it falls
// back to the embedded Go Bold face, so the result is never nil.
func loadFirstAvailable(candidates []string, points float64) font.Face {
	for _, path := range candidates {
		if face, err := gg.LoadFontFace(path, points); err == nil {
			return face
		}
	}
	return truetype.NewFace(embeddedBold, &truetype.Options{Size: points})
}

// textBounds measures the tight glyph bounding box of s on face. The
// returned offsets are the box origin relative to the text pen, used to
// correct for the left side bearing and the ascent bump so glyphs do not
// clip against a container edge.
func textBounds(face font.Face, s string) (width, height, offsetX, offsetY int) {
	bounds, _ := font.BoundString(face, s)
	width = (bounds.Max.X - bounds.Min.X).Ceil()
	height = (bounds.Max.Y - bounds.Min.Y).Ceil()
	offsetX = bounds.Min.X.Floor()
	offsetY = bounds.Min.Y.Floor()
	return width, height, offsetX, offsetY
}
