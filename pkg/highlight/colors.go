package highlight

import (
	"strconv"
	"strings"

	"github.com/vishalbelsare/browser-use/pkg/dom"
)

// Color scheme for the different interactive element types.
var elementColors = map[string]string{
	"button":   "#FF6B6B", // red
	"input":    "#4ECDC4", // teal
	"select":   "#45B7D1", // blue
	"a":        "#96CEB4", // green
	"textarea": "#FF8C42", // orange
	"default":  "#DDA0DD", // light purple for other interactive elements
}

// meaningfulTextThreshold is the length below which an element's own text is
// considered too short to identify it, so the numeric index is shown.
const meaningfulTextThreshold = 5

// ColorFor maps an element's tag and type attribute to its display color.
// An input of type button or submit gets the button color regardless of the
// generic input color; unknown tags get the default color.
func ColorFor(tagName, elementType string) string {
	if strings.EqualFold(tagName, "input") {
		switch strings.ToLower(elementType) {
		case "button", "submit":
			return elementColors["button"]
		}
	}
	if c, ok := elementColors[strings.ToLower(tagName)]; ok {
		return c
	}
	return elementColors["default"]
}

// LabelTextFor decides the label text for an element. An empty string means
// no label. With filterHighlightIDs set, the index is shown only when the
// element's meaningful text is too short to identify it on its own.
func LabelTextFor(el *dom.Element, filterHighlightIDs bool) string {
	if el.ElementIndex == nil {
		return ""
	}
	if filterHighlightIDs && len(el.MeaningfulText()) >= meaningfulTextThreshold {
		return ""
	}
	return strconv.Itoa(*el.ElementIndex)
}
