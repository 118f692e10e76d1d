// Package viewport retrieves device-pixel-ratio and scroll offsets from a
// remote debugging session via the CDP Page.getLayoutMetrics command.
package viewport

import (
	"github.com/rs/zerolog/log"
)

// Session is the one remote exchange this package needs. It is satisfied by
// a playwright CDPSession.
type Session interface {
	Send(method string, params map[string]interface{}) (interface{}, error)
}

// defaultCSSWidth is assumed when the metrics omit every client width field.
const defaultCSSWidth = 1280.0

// QueryMetrics issues one Page.getLayoutMetrics exchange and returns the
// device pixel ratio and page scroll offsets in CSS pixels. Any failure,
// from transport errors to missing fields, yields the neutral (1.0, 0, 0):
// callers must treat that as "no scaling or offset available", not as an
// error to propagate.
func QueryMetrics(session Session) (devicePixelRatio float64, scrollX, scrollY int) {
	result, err := session.Send("Page.getLayoutMetrics", nil)
	if err != nil {
		log.Debug().Err(err).Msg("layout metrics query failed, using neutral viewport defaults")
		return 1.0, 0, 0
	}

	metrics, ok := result.(map[string]interface{})
	if !ok {
		log.Debug().Msg("unexpected layout metrics shape, using neutral viewport defaults")
		return 1.0, 0, 0
	}

	visualViewport := nestedMap(metrics, "visualViewport")
	cssVisualViewport := nestedMap(metrics, "cssVisualViewport")
	cssLayoutViewport := nestedMap(metrics, "cssLayoutViewport")

	cssWidth, ok := getFloat(cssVisualViewport, "clientWidth")
	if !ok {
		cssWidth, ok = getFloat(cssLayoutViewport, "clientWidth")
	}
	if !ok {
		cssWidth = defaultCSSWidth
	}
	deviceWidth, ok := getFloat(visualViewport, "clientWidth")
	if !ok {
		deviceWidth = cssWidth
	}

	devicePixelRatio = 1.0
	if cssWidth > 0 {
		devicePixelRatio = deviceWidth / cssWidth
	}

	if x, ok := getFloat(cssVisualViewport, "pageX"); ok {
		scrollX = int(x)
	}
	if y, ok := getFloat(cssVisualViewport, "pageY"); ok {
		scrollY = int(y)
	}

	return devicePixelRatio, scrollX, scrollY
}

// nestedMap extracts a nested object field, returning nil when absent or of
// the wrong type. Lookups on the nil result simply miss.
func nestedMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if nested, ok := v.(map[string]interface{}); ok {
			return nested
		}
	}
	return nil
}

// getFloat extracts a numeric field from a decoded JSON object.
func getFloat(m map[string]interface{}, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}
