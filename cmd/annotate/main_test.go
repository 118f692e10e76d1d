package main

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

func TestPageOptionsViewport(t *testing.T) {
	// Pin the options type Browser.NewPage expects alongside the values.
	var opts playwright.BrowserNewPageOptions = pageOptions()
	if opts.Viewport == nil || opts.Viewport.Width != 1280 || opts.Viewport.Height != 720 {
		t.Errorf("unexpected viewport options: %+v", opts.Viewport)
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		want     bool
	}{
		{"unset uses fallback", "", true, true},
		{"true", "true", false, true},
		{"false", "false", true, false},
		{"numeric true", "1", false, true},
		{"garbage uses fallback", "maybe", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ANNOTATE_HEADLESS", tt.value)
			if got := envBool("ANNOTATE_HEADLESS", tt.fallback); got != tt.want {
				t.Errorf("envBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestEnvFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback float64
		want     float64
	}{
		{"unset uses fallback", "", 30000, 30000},
		{"valid", "5000", 30000, 5000},
		{"fractional", "1500.5", 30000, 1500.5},
		{"garbage uses fallback", "soon", 30000, 30000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ANNOTATE_TIMEOUT_MS", tt.value)
			if got := envFloat("ANNOTATE_TIMEOUT_MS", tt.fallback); got != tt.want {
				t.Errorf("envFloat(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestGetStringAndFloat(t *testing.T) {
	m := map[string]interface{}{
		"tag":   "button",
		"x":     12.5,
		"count": 3,
		"wrong": []string{"a"},
	}
	if got := getString(m, "tag"); got != "button" {
		t.Errorf("getString(tag) = %q", got)
	}
	if got := getString(m, "missing"); got != "" {
		t.Errorf("getString(missing) = %q, want empty", got)
	}
	if got := getFloat(m, "x"); got != 12.5 {
		t.Errorf("getFloat(x) = %v", got)
	}
	if got := getFloat(m, "count"); got != 3 {
		t.Errorf("getFloat(count) = %v", got)
	}
	if got := getFloat(m, "wrong"); got != 0 {
		t.Errorf("getFloat(wrong) = %v, want 0", got)
	}
}
