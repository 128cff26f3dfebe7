package translate

import (
	"slices"
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"

	"github.com/alnah/go-docinsert/node"
)

var sides = []string{node.SideTop, node.SideRight, node.SideBottom, node.SideLeft}

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

// format collects the styling intent of an element: its classes, its style
// attribute and the presentational attributes older markup uses. It returns
// nil when the element carries none.
func (t *Translator) format(el *html.Node) *node.Format {
	f := &node.Format{}

	if class := attr(el, "class"); class != "" {
		f.Classes = strings.Fields(class)
	}
	presentational(f, el)

	if style := attr(el, "style"); strings.TrimSpace(style) != "" {
		decls, err := parser.ParseDeclarations(style)
		if err != nil {
			t.logger.Warn("ignoring unparsable style attribute", "tag", el.Data, "style", style, "err", err)
		}
		for _, d := range decls {
			applyDeclaration(f, strings.ToLower(strings.TrimSpace(d.Property)), strings.TrimSpace(d.Value))
		}
	}

	if !f.HasFormat() {
		return nil
	}
	return f
}

func presentational(f *node.Format, el *html.Node) {
	for _, a := range el.Attr {
		switch a.Key {
		case "width":
			if el.Data != "img" {
				f.Width = a.Val
			}
		case "height":
			if el.Data != "img" {
				f.Height = a.Val
			}
		case "align":
			f.TextAlign = a.Val
		case "valign":
			f.VerticalAlign = a.Val
		case "bgcolor":
			f.Background = a.Val
		case "color":
			if el.Data == "font" {
				f.Color = a.Val
			}
		}
	}
}

// applyDeclaration merges one declaration into f. Unknown names are dropped.
func applyDeclaration(f *node.Format, name, value string) {
	if value == "" {
		return
	}
	switch name {
	case "font-size":
		f.FontSize = value
	case "color":
		f.Color = value
	case "background", "background-color":
		f.Background = value
	case "text-decoration", "text-decoration-line":
		f.TextDecoration = value
	case "vertical-align":
		f.VerticalAlign = value
	case "text-align":
		f.TextAlign = value
	case "width":
		f.Width = value
	case "height":
		f.Height = value
	case "writing-mode":
		f.WritingMode = value
	case "margin":
		for side, v := range expandBox(value) {
			f.SetMargin(side, v)
		}
	case "border":
		for part, v := range splitBorder(value) {
			f.SetBorder(part, v)
		}
	default:
		if side, ok := strings.CutPrefix(name, "margin-"); ok && isSide(side) {
			f.SetMargin(side, value)
		} else if part, ok := strings.CutPrefix(name, "border-"); ok && (isSide(part) || isBorderPart(part)) {
			f.SetBorder(part, value)
		}
	}
}

// expandBox expands a one to four value box shorthand into its sides.
func expandBox(value string) map[string]string {
	v := strings.Fields(value)
	var top, right, bottom, left string
	switch len(v) {
	case 1:
		top, right, bottom, left = v[0], v[0], v[0], v[0]
	case 2:
		top, right, bottom, left = v[0], v[1], v[0], v[1]
	case 3:
		top, right, bottom, left = v[0], v[1], v[2], v[1]
	case 4:
		top, right, bottom, left = v[0], v[1], v[2], v[3]
	default:
		return nil
	}
	return map[string]string{
		node.SideTop: top, node.SideRight: right, node.SideBottom: bottom, node.SideLeft: left,
	}
}

// splitBorder sorts the parts of a border shorthand into width, style and
// color. Each part is recognized by its shape, in any order.
func splitBorder(value string) map[string]string {
	parts := map[string]string{}
	for _, tok := range strings.Fields(value) {
		lower := strings.ToLower(tok)
		switch {
		case borderStyles[lower]:
			parts[node.BorderStyle] = lower
		case isLength(lower):
			parts[node.BorderWidth] = lower
		default:
			parts[node.BorderColor] = tok
		}
	}
	return parts
}

func isLength(s string) bool {
	switch s {
	case "thin", "medium", "thick":
		return true
	}
	return s != "" && (s[0] >= '0' && s[0] <= '9' || s[0] == '.')
}

func isSide(s string) bool {
	return slices.Contains(sides, s)
}

func isBorderPart(s string) bool {
	return s == node.BorderWidth || s == node.BorderStyle || s == node.BorderColor
}
