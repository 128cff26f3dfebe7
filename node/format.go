package node

import (
	"sort"
	"strings"
)

// Margin sides and border parts used as keys in Format maps.
const (
	SideTop    = "top"
	SideRight  = "right"
	SideBottom = "bottom"
	SideLeft   = "left"

	BorderWidth = "width"
	BorderStyle = "style"
	BorderColor = "color"
)

// Format is the optional styling intent attached to a node. It is not part
// of the tree structure.
type Format struct {
	Classes        []string
	FontSize       string
	Color          string
	Background     string
	TextDecoration string
	Margin         map[string]string // keyed by side
	Border         map[string]string // keyed by part or side
	VerticalAlign  string
	TextAlign      string
	Width          string
	Height         string
	WritingMode    string
}

// HasFormat reports whether at least one field is set.
func (f *Format) HasFormat() bool {
	if f == nil {
		return false
	}
	return len(f.Classes) > 0 ||
		f.FontSize != "" ||
		f.Color != "" ||
		f.Background != "" ||
		f.TextDecoration != "" ||
		len(f.Margin) > 0 ||
		len(f.Border) > 0 ||
		f.VerticalAlign != "" ||
		f.TextAlign != "" ||
		f.Width != "" ||
		f.Height != "" ||
		f.WritingMode != ""
}

// SetMargin records one margin side, allocating the map on first use.
func (f *Format) SetMargin(side, value string) {
	if f.Margin == nil {
		f.Margin = map[string]string{}
	}
	f.Margin[side] = value
}

// SetBorder records one border part, allocating the map on first use.
func (f *Format) SetBorder(part, value string) {
	if f.Border == nil {
		f.Border = map[string]string{}
	}
	f.Border[part] = value
}

// String summarizes the set fields, e.g. {color=red margin.left=auto}.
func (f *Format) String() string {
	if !f.HasFormat() {
		return "{}"
	}
	var parts []string
	add := func(name, value string) {
		if value != "" {
			parts = append(parts, name+"="+value)
		}
	}
	add("class", strings.Join(f.Classes, ","))
	add("font-size", f.FontSize)
	add("color", f.Color)
	add("background", f.Background)
	add("text-decoration", f.TextDecoration)
	for _, k := range sortedKeys(f.Margin) {
		add("margin."+k, f.Margin[k])
	}
	for _, k := range sortedKeys(f.Border) {
		add("border."+k, f.Border[k])
	}
	add("vertical-align", f.VerticalAlign)
	add("text-align", f.TextAlign)
	add("width", f.Width)
	add("height", f.Height)
	add("writing-mode", f.WritingMode)
	return "{" + strings.Join(parts, " ") + "}"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
