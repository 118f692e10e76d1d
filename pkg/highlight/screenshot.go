// Package highlight draws visual markers for interactive elements onto a
// screenshot: a dashed outline per element plus a numeric index label placed
// to stay legible without leaving the image or obscuring small elements.
package highlight

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"

	"github.com/vishalbelsare/browser-use/pkg/dom"
	"github.com/vishalbelsare/browser-use/pkg/images"
	"github.com/vishalbelsare/browser-use/pkg/viewport"
)

// Options configures one annotation pass.
type Options struct {
	// DevicePixelRatio scales CSS-pixel element bounds to screenshot pixels.
	// Values <= 0 are treated as 1.0.
	DevicePixelRatio float64
	// ViewportOffsetX/Y are accepted and carried but not applied in the
	// pixel math; they are reserved for offset-aware cropping.
	ViewportOffsetX int
	ViewportOffsetY int
	// FilterHighlightIDs suppresses the numeric label on elements whose
	// meaningful text already identifies them.
	FilterHighlightIDs bool
	Style              Style
}

// DefaultOptions returns the options used by the session entry point.
func DefaultOptions() Options {
	return Options{
		DevicePixelRatio:   1.0,
		FilterHighlightIDs: true,
		Style:              StyleEnhanced,
	}
}

// RenderParams are the per-frame parameters, fixed for an entire pass.
type RenderParams struct {
	DevicePixelRatio   float64
	ImageWidth         int
	ImageHeight        int
	FilterHighlightIDs bool
	Style              Style

	labelFace   font.Face
	measureFace font.Face
	padding     int
}

// newRenderParams resolves the frame's label font size and padding from the
// image width so labels keep a consistent apparent size across viewports.
func newRenderParams(width, height int, opts Options) *RenderParams {
	fontSize := clampInt(int(math.Round(float64(width)*0.03)), 16, 48)
	padding := int(math.Round(float64(width) * 0.005))
	if padding < 4 {
		padding = 4
	}
	return &RenderParams{
		DevicePixelRatio:   opts.DevicePixelRatio,
		ImageWidth:         width,
		ImageHeight:        height,
		FilterHighlightIDs: opts.FilterHighlightIDs,
		Style:              opts.Style,
		labelFace:          loadFirstAvailable(labelFontCandidates, float64(fontSize)),
		measureFace:        loadFirstAvailable(labelFontCandidates, measurementFontSize),
		padding:            padding,
	}
}

// CreateHighlightedScreenshot annotates the encoded screenshot with markers
// for every element in the selector map, in insertion order, and returns the
// re-encoded PNG. It never fails: a frame-level decode or encode problem
// returns the input bytes unchanged, and a problem with one element skips
// that element and continues.
func CreateHighlightedScreenshot(screenshot []byte, selectorMap *dom.SelectorMap, opts Options) []byte {
	if opts.DevicePixelRatio <= 0 {
		opts.DevicePixelRatio = 1.0
	}

	frame, err := images.Decode(screenshot)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode screenshot, returning input unchanged")
		return screenshot
	}

	// The frame is exclusively owned by this call; elements are drawn
	// strictly sequentially because the surface is not safe for concurrent
	// mutation.
	dc := gg.NewContextForRGBA(frame)
	bounds := frame.Bounds()
	params := newRenderParams(bounds.Dx(), bounds.Dy(), opts)

	skipped := 0
	if selectorMap != nil {
		selectorMap.Each(func(id int, el *dom.Element) {
			if drawErr := annotateElement(dc, el, params); drawErr != nil {
				skipped++
				log.Debug().Err(drawErr).Int("element", id).Msg("failed to draw highlight")
			}
		})
	}

	out, err := images.EncodePNG(dc.Image())
	if err != nil {
		log.Error().Err(err).Msg("failed to encode highlighted screenshot, returning input unchanged")
		return screenshot
	}

	if selectorMap != nil {
		log.Debug().
			Int("elements", selectorMap.Len()).
			Int("skipped", skipped).
			Msg("created highlighted screenshot")
	}
	return out
}

// CreateHighlightedScreenshotForSession queries the remote session for
// viewport metrics before running the synchronous annotation pass. A nil
// session, or any metrics failure, falls back to a ratio of 1.0 and zero
// offsets.
func CreateHighlightedScreenshotForSession(screenshot []byte, selectorMap *dom.SelectorMap, session viewport.Session, filterHighlightIDs bool) []byte {
	opts := DefaultOptions()
	opts.FilterHighlightIDs = filterHighlightIDs
	if session != nil {
		ratio, scrollX, scrollY := viewport.QueryMetrics(session)
		opts.DevicePixelRatio = ratio
		opts.ViewportOffsetX = scrollX
		opts.ViewportOffsetY = scrollY
	}
	return CreateHighlightedScreenshot(screenshot, selectorMap, opts)
}

// annotateElement scales one element's CSS bounds to device pixels, clips
// them to the image, and renders the outline and label. Boxes under 2px on
// either axis are too small to annotate meaningfully and are skipped.
func annotateElement(dc *gg.Context, el *dom.Element, p *RenderParams) error {
	if el == nil || el.AbsolutePosition == nil {
		return nil
	}

	pos := el.AbsolutePosition
	ratio := p.DevicePixelRatio
	x1 := clampInt(int(pos.X*ratio), 0, p.ImageWidth)
	y1 := clampInt(int(pos.Y*ratio), 0, p.ImageHeight)
	x2 := clampInt(int((pos.X+pos.Width)*ratio), x1, p.ImageWidth)
	y2 := clampInt(int((pos.Y+pos.Height)*ratio), y1, p.ImageHeight)

	if x2-x1 < 2 || y2-y1 < 2 {
		return nil
	}

	box := BoundingBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
	color := ColorFor(el.TagName, el.Type())
	label := LabelTextFor(el, p.FilterHighlightIDs)

	if p.Style == StyleBasic {
		return drawBasicBox(dc, box, color, label, p)
	}
	return drawEnhancedBox(dc, box, color, label, p)
}
