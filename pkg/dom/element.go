package dom

import "strings"

// Rect is an element's absolute position in CSS pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Element is one interactive element supplied by the geometry source.
// The core treats it as read-only.
type Element struct {
	TagName          string
	Attributes       map[string]string
	AbsolutePosition *Rect
	// ElementIndex is the stable identity used for numeric labels.
	// Nil means the element is outlined but never labeled.
	ElementIndex *int
	// Text is the element's visible text as reported by the source.
	Text string
}

// Attribute returns the named attribute and whether it is present.
// Elements from loosely-typed sources may carry a nil attribute map.
func (e *Element) Attribute(name string) (string, bool) {
	if e.Attributes == nil {
		return "", false
	}
	v, ok := e.Attributes[name]
	return v, ok
}

// Type returns the element's type attribute, or "" when absent.
func (e *Element) Type() string {
	v, _ := e.Attribute("type")
	return v
}

// MeaningfulText returns the human-readable text that identifies this
// element to a downstream consumer: the visible text, or failing that the
// first populated fallback attribute.
func (e *Element) MeaningfulText() string {
	if t := strings.TrimSpace(e.Text); t != "" {
		return t
	}
	for _, attr := range []string{"value", "placeholder", "aria-label", "title"} {
		if v, ok := e.Attribute(attr); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}
