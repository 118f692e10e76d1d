package highlight

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
)

// BoundingBox is an element's rectangle in device pixels, already
// intersected with the image rectangle. X1 <= X2 and Y1 <= Y2.
type BoundingBox struct {
	X1, Y1, X2, Y2 int
}

// Style selects the renderer variant.
type Style int

const (
	// StyleEnhanced draws larger dashes and a color-filled index container
	// with a viewport-scaled font, preferring the element's top-left corner.
	StyleEnhanced Style = iota
	// StyleBasic is the older variant with small doubled dashes and a
	// light-background label placed by a size-ratio heuristic. Superseded by
	// StyleEnhanced, kept for compatibility.
	StyleBasic
)

const (
	outlineWidth = 2

	enhancedDashLength = 4
	enhancedGapLength  = 8

	basicDashLength = 2
	basicGapLength  = 6
)

// drawDashedLine adds dash segments for one horizontal or vertical edge to
// the current path. The walk steps by dash+gap and clips the final segment
// to the edge end, so the pattern is consistent regardless of edge length.
func drawDashedLine(dc *gg.Context, x1, y1, x2, y2, dash, gap float64) {
	if x1 == x2 {
		for y := y1; y < y2; y += dash + gap {
			dc.DrawLine(x1, y, x1, math.Min(y+dash, y2))
		}
		return
	}
	for x := x1; x < x2; x += dash + gap {
		dc.DrawLine(x, y1, math.Min(x+dash, x2), y1)
	}
}

// drawDashedRect strokes a dashed rectangle along the four box edges using
// the color and line width already set on the context.
func drawDashedRect(dc *gg.Context, box BoundingBox, dash, gap float64) {
	x1, y1 := float64(box.X1), float64(box.Y1)
	x2, y2 := float64(box.X2), float64(box.Y2)
	drawDashedLine(dc, x1, y1, x2, y1, dash, gap) // top
	drawDashedLine(dc, x2, y1, x2, y2, dash, gap) // right
	drawDashedLine(dc, x1, y2, x2, y2, dash, gap) // bottom
	drawDashedLine(dc, x1, y1, x1, y2, dash, gap) // left
	dc.Stroke()
}

// drawEnhancedBox renders one element's dashed outline and, when label is
// non-empty, its index container in the enhanced style.
func drawEnhancedBox(dc *gg.Context, box BoundingBox, hexColor, label string, p *RenderParams) error {
	dc.SetHexColor(hexColor)
	dc.SetLineWidth(outlineWidth)
	drawDashedRect(dc, box, enhancedDashLength, enhancedGapLength)

	if label == "" {
		return nil
	}
	if p.labelFace == nil {
		return fmt.Errorf("no label face available")
	}

	textW, textH, offX, offY := textBounds(p.labelFace, label)
	placement := placeLabel(box, textW, textH, offX, offY, p.padding, p.ImageWidth, p.ImageHeight)

	dc.SetHexColor(hexColor)
	dc.DrawRectangle(float64(placement.bgX), float64(placement.bgY),
		float64(placement.containerW), float64(placement.containerH))
	dc.FillPreserve()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(outlineWidth)
	dc.Stroke()

	dc.SetFontFace(p.labelFace)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(label, float64(placement.penX), float64(placement.penY))
	return nil
}

// labelPlacement is a resolved label container position plus the text pen
// that centers the glyphs inside it.
type labelPlacement struct {
	bgX, bgY               int
	containerW, containerH int
	penX, penY             int
}

// placeLabel chooses where the enhanced label container goes for an element
// box: inside the top-left corner when the element can hold it, otherwise
// directly above the top-left corner, then translated fully inside the image
// without changing the container's size.
func placeLabel(box BoundingBox, textW, textH, offX, offY, padding, imgW, imgH int) labelPlacement {
	containerW := textW + 2*padding
	containerH := textH + 2*padding

	elementW := box.X2 - box.X1
	elementH := box.Y2 - box.Y1
	var bgX, bgY int
	if elementW >= containerW && elementH >= containerH {
		bgX = box.X1 + 2
		bgY = box.Y1 + 2
	} else {
		bgX = box.X1
		bgY = box.Y1 - containerH
		if bgY < 0 {
			bgY = 0
		}
	}

	// Pen position that centers the tight glyph box in the container,
	// corrected for the left side bearing and the ascent bump.
	penX := bgX + (containerW-textW)/2 - offX
	penY := bgY + (containerH-textH)/2 - offY

	if bgX < 0 {
		penX -= bgX
		bgX = 0
	}
	if bgY < 0 {
		penY -= bgY
		bgY = 0
	}
	if over := bgX + containerW - imgW; over > 0 {
		bgX -= over
		penX -= over
	}
	if over := bgY + containerH - imgH; over > 0 {
		bgY -= over
		penY -= over
	}

	return labelPlacement{
		bgX: bgX, bgY: bgY,
		containerW: containerW, containerH: containerH,
		penX: penX, penY: penY,
	}
}

// drawBasicBox renders one element in the superseded basic style: doubled
// small dashes and a white label box placed by the element-area to
// label-area ratio.
func drawBasicBox(dc *gg.Context, box BoundingBox, hexColor, label string, p *RenderParams) error {
	x1, y1 := float64(box.X1), float64(box.Y1)
	x2, y2 := float64(box.X2), float64(box.Y2)

	dc.SetHexColor(hexColor)
	dc.SetLineWidth(outlineWidth)
	drawDashedLine(dc, x1, y1, x2, y1, basicDashLength, basicGapLength)
	drawDashedLine(dc, x1, y1+1, x2, y1+1, basicDashLength, basicGapLength)
	drawDashedLine(dc, x1, y2, x2, y2, basicDashLength, basicGapLength)
	drawDashedLine(dc, x1, y2-1, x2, y2-1, basicDashLength, basicGapLength)
	drawDashedLine(dc, x1, y1, x1, y2, basicDashLength, basicGapLength)
	drawDashedLine(dc, x1+1, y1, x1+1, y2, basicDashLength, basicGapLength)
	drawDashedLine(dc, x2, y1, x2, y2, basicDashLength, basicGapLength)
	drawDashedLine(dc, x2-1, y1, x2-1, y2, basicDashLength, basicGapLength)
	dc.Stroke()

	if label == "" {
		return nil
	}
	if p.measureFace == nil {
		return fmt.Errorf("no label face available")
	}

	textW, textH, offX, offY := textBounds(p.measureFace, label)
	const padding = 5

	elementW := box.X2 - box.X1
	elementH := box.Y2 - box.Y1
	labelArea := (textW + 2*padding) * (textH + 2*padding)
	if labelArea < 1 {
		labelArea = 1
	}
	sizeRatio := float64(elementW*elementH) / float64(labelArea)

	var textX, textY int
	switch {
	case sizeRatio < 4:
		// Very small elements: outside, bottom-right.
		textX = box.X2 + padding
		textY = box.Y2 - textH
	case sizeRatio < 16:
		// Medium elements: inside, bottom-right.
		textX = box.X2 - textW - padding
		textY = box.Y2 - textH - padding
	default:
		// Large elements: centered.
		textX = box.X1 + (elementW-textW)/2
		textY = box.Y1 + (elementH-textH)/2
	}
	textX = clampInt(textX, 0, p.ImageWidth-textW)
	textY = clampInt(textY, 0, p.ImageHeight-textH)

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(float64(textX-padding), float64(textY-padding),
		float64(textW+2*padding), float64(textH+2*padding))
	dc.FillPreserve()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(outlineWidth)
	dc.Stroke()

	dc.SetFontFace(p.measureFace)
	dc.SetRGB(0, 0, 0)
	dc.DrawString(label, float64(textX-offX), float64(textY-offY))
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
