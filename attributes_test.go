package livedom

import "testing"

func TestValidAttribute(t *testing.T) {
	tests := []struct {
		tag, name string
		want      bool
	}{
		{"a", "href", true},
		{"A", "HREF", true},
		{"div", "href", false},
		{"div", "class", true},
		{"td", "colspan", true},
		{"span", "colspan", false},
		{"input", "placeholder", true},
		{"button", "data-anything", true},
		{"img", "aria-label", true},
		{"my-widget", "whatever", true},
		{"div", "", false},
	}
	for _, tt := range tests {
		if got := ValidAttribute(tt.tag, tt.name); got != tt.want {
			t.Errorf("ValidAttribute(%q, %q) = %v, want %v", tt.tag, tt.name, got, tt.want)
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	for tag, want := range map[string]bool{
		"br":    true,
		"INPUT": true,
		"img":   true,
		"div":   false,
		"p":     false,
	} {
		if got := IsVoidElement(tag); got != want {
			t.Errorf("IsVoidElement(%q) = %v, want %v", tag, got, want)
		}
	}
}

func TestGeneratedTableSorted(t *testing.T) {
	for i := 1; i < len(elementTable); i++ {
		if elementTable[i-1].Name >= elementTable[i].Name {
			t.Fatalf("element table out of order at %q", elementTable[i].Name)
		}
	}
}
