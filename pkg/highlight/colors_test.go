package highlight

import (
	"testing"

	"github.com/vishalbelsare/browser-use/pkg/dom"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		name        string
		tagName     string
		elementType string
		want        string
	}{
		{"button", "button", "", "#FF6B6B"},
		{"input", "input", "", "#4ECDC4"},
		{"input text", "input", "text", "#4ECDC4"},
		{"select", "select", "", "#45B7D1"},
		{"anchor", "a", "", "#96CEB4"},
		{"textarea", "textarea", "", "#FF8C42"},
		{"unknown tag", "div", "", "#DDA0DD"},
		{"empty tag", "", "", "#DDA0DD"},
		{"input submit overrides", "input", "submit", "#FF6B6B"},
		{"input button overrides", "input", "button", "#FF6B6B"},
		{"uppercase tag", "BUTTON", "", "#FF6B6B"},
		{"mixed case input submit", "Input", "Submit", "#FF6B6B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFor(tt.tagName, tt.elementType); got != tt.want {
				t.Errorf("ColorFor(%q, %q) = %q, want %q", tt.tagName, tt.elementType, got, tt.want)
			}
		})
	}
}

func TestColorForIdempotent(t *testing.T) {
	first := ColorFor("input", "submit")
	for i := 0; i < 3; i++ {
		if got := ColorFor("input", "submit"); got != first {
			t.Fatalf("ColorFor changed between calls: %q then %q", first, got)
		}
	}
}

func intPtr(v int) *int { return &v }

func TestLabelTextFor(t *testing.T) {
	tests := []struct {
		name   string
		el     dom.Element
		filter bool
		want   string
	}{
		{"no index, no label", dom.Element{TagName: "button"}, false, ""},
		{"no index with filter", dom.Element{TagName: "button", Text: "OK"}, true, ""},
		{"index without filter", dom.Element{ElementIndex: intPtr(3)}, false, "3"},
		{"index without filter ignores text", dom.Element{ElementIndex: intPtr(7), Text: "Subscribe now"}, false, "7"},
		{"short text shows index", dom.Element{ElementIndex: intPtr(12), Text: "Go"}, true, "12"},
		{"four chars shows index", dom.Element{ElementIndex: intPtr(4), Text: "Okay"}, true, "4"},
		{"five chars hides index", dom.Element{ElementIndex: intPtr(4), Text: "Click"}, true, ""},
		{"long text hides index", dom.Element{ElementIndex: intPtr(8), Text: "Subscribe now"}, true, ""},
		{"attribute text counts", dom.Element{ElementIndex: intPtr(2), Attributes: map[string]string{"placeholder": "Search the site"}}, true, ""},
		{"empty text shows index", dom.Element{ElementIndex: intPtr(101)}, true, "101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelTextFor(&tt.el, tt.filter); got != tt.want {
				t.Errorf("LabelTextFor(filter=%v) = %q, want %q", tt.filter, got, tt.want)
			}
		})
	}
}
