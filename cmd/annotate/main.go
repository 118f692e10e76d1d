// Command annotate captures a live page with Playwright, extracts its
// interactive elements, and writes a screenshot annotated with dashed
// outlines and numeric index labels.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vishalbelsare/browser-use/pkg/dom"
	"github.com/vishalbelsare/browser-use/pkg/highlight"
	"github.com/vishalbelsare/browser-use/pkg/viewport"
)

// extractElementsJS collects the visible interactive elements with their
// tag, attributes, visible text and viewport-relative bounding rect.
const extractElementsJS = `
() => {
	const selectors = ['button', 'a', 'input', 'select', 'textarea', '[role="button"]', '[onclick]'];
	const seen = new Set();
	const elements = [];
	selectors.forEach(selector => {
		document.querySelectorAll(selector).forEach(el => {
			if (seen.has(el)) return;
			seen.add(el);
			const rect = el.getBoundingClientRect();
			const style = window.getComputedStyle(el);
			if (rect.width <= 0 || rect.height <= 0) return;
			if (style.display === 'none' || style.visibility === 'hidden') return;
			const attributes = {};
			Array.from(el.attributes).forEach(attr => {
				attributes[attr.name] = attr.value;
			});
			const text = (el.value || el.placeholder || el.textContent || '').trim();
			elements.push({
				tag: el.tagName.toLowerCase(),
				attributes: attributes,
				text: text.substring(0, 200),
				rect: { x: rect.left, y: rect.top, width: rect.width, height: rect.height }
			});
		});
	});
	return elements;
}
`

func main() {
	urlFlag := flag.String("url", "", "page URL to annotate (required)")
	outFlag := flag.String("out", "highlighted.png", "output PNG path")
	allFlag := flag.Bool("all", false, "label every indexed element, even ones with meaningful text")
	styleFlag := flag.String("style", "enhanced", "renderer style: enhanced or basic")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *urlFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Optional .env overrides: ANNOTATE_HEADLESS, ANNOTATE_TIMEOUT_MS.
	_ = godotenv.Load()
	headless := envBool("ANNOTATE_HEADLESS", true)
	timeoutMs := envFloat("ANNOTATE_TIMEOUT_MS", 30000)

	if err := run(*urlFlag, *outFlag, *styleFlag, headless, timeoutMs, !*allFlag); err != nil {
		log.Fatal().Err(err).Msg("annotation failed")
	}
}

// pageOptions returns the new-page options for the capture page.
func pageOptions() playwright.BrowserNewPageOptions {
	return playwright.BrowserNewPageOptions{
		Viewport: &playwright.Size{Width: 1280, Height: 720},
	}
}

func run(url, out, styleName string, headless bool, timeoutMs float64, filterHighlightIDs bool) error {
	style := highlight.StyleEnhanced
	if styleName == "basic" {
		style = highlight.StyleBasic
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage(pageOptions())
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(timeoutMs),
	}); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	selectorMap, err := extractElements(page)
	if err != nil {
		return fmt.Errorf("failed to extract elements: %w", err)
	}
	log.Info().Int("elements", selectorMap.Len()).Str("url", url).Msg("extracted interactive elements")

	screenshot, err := page.Screenshot()
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}

	// The CDP session supplies the device pixel ratio; metrics failures fall
	// back to neutral defaults inside the annotation pass.
	var session viewport.Session
	if cdp, err := page.Context().NewCDPSession(page); err == nil {
		session = cdp
	} else {
		log.Debug().Err(err).Msg("no CDP session available, using neutral viewport defaults")
	}

	opts := highlight.DefaultOptions()
	opts.FilterHighlightIDs = filterHighlightIDs
	opts.Style = style
	if session != nil {
		ratio, scrollX, scrollY := viewport.QueryMetrics(session)
		opts.DevicePixelRatio = ratio
		opts.ViewportOffsetX = scrollX
		opts.ViewportOffsetY = scrollY
	}
	annotated := highlight.CreateHighlightedScreenshot(screenshot, selectorMap, opts)

	if err := os.WriteFile(out, annotated, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	log.Info().Str("path", out).Msg("wrote annotated screenshot")
	return nil
}

// extractElements runs the extraction script and converts its loosely-typed
// result into an ordered selector map, assigning indices in document order.
func extractElements(page playwright.Page) (*dom.SelectorMap, error) {
	result, err := page.Evaluate(extractElementsJS)
	if err != nil {
		return nil, err
	}

	selectorMap := dom.NewSelectorMap()
	raw, ok := result.([]interface{})
	if !ok {
		return selectorMap, nil
	}

	for i, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		index := i + 1
		el := &dom.Element{
			TagName:      getString(m, "tag"),
			Attributes:   map[string]string{},
			Text:         getString(m, "text"),
			ElementIndex: &index,
		}
		if attrs, ok := m["attributes"].(map[string]interface{}); ok {
			for k, v := range attrs {
				if s, ok := v.(string); ok {
					el.Attributes[k] = s
				}
			}
		}
		if rect, ok := m["rect"].(map[string]interface{}); ok {
			el.AbsolutePosition = &dom.Rect{
				X:      getFloat(rect, "x"),
				Y:      getFloat(rect, "y"),
				Width:  getFloat(rect, "width"),
				Height: getFloat(rect, "height"),
			}
		}
		selectorMap.Set(index, el)
	}
	return selectorMap, nil
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getFloat(m map[string]interface{}, key string) float64 {
	if v, ok := m[key]; ok {
		switch val := v.(type) {
		case float64:
			return val
		case int:
			return float64(val)
		}
	}
	return 0
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
