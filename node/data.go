package node

import (
	"fmt"
	"strconv"
)

// FootnoteContentAttr is the attribute carrying a footnote's text.
const FootnoteContentAttr = "data-content"

// Data is the kind-specific field set of a node.
type Data interface {
	// Validate reports a missing required field.
	Validate() error
	// summary is the short form used by Dump.
	summary() string
}

// TextData holds the content of a Text node.
type TextData struct {
	Text string // required
}

func (d *TextData) Validate() error {
	if d.Text == "" {
		return fmt.Errorf("%w: text", ErrMissingField)
	}
	return nil
}

func (d *TextData) summary() string {
	txt := d.Text
	if r := []rune(txt); len(r) > 20 {
		txt = string(r[:20]) + "..."
	}
	return strconv.Quote(txt)
}

// CodeData holds the optional fields of a CodeBlock.
type CodeData struct {
	Highlight string // lexer name, empty disables highlighting
	Text      string // raw source text
}

func (d *CodeData) Validate() error { return nil }

func (d *CodeData) summary() string {
	if d.Highlight == "" {
		return ""
	}
	return "highlight=" + d.Highlight
}

// StyleData names a backend paragraph style.
type StyleData struct {
	Name string // required
}

func (d *StyleData) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	return nil
}

func (d *StyleData) summary() string { return strconv.Quote(d.Name) }

// HeadingData holds a heading level, 1 through 6.
type HeadingData struct {
	Level int // required
}

func (d *HeadingData) Validate() error {
	if d.Level < 1 || d.Level > 6 {
		return fmt.Errorf("%w: level (got %d, want 1-6)", ErrMissingField, d.Level)
	}
	return nil
}

func (d *HeadingData) summary() string { return "level=" + strconv.Itoa(d.Level) }

// ImageData describes an image reference.
type ImageData struct {
	Location string // required
	Width    string
	Height   string
	Caption  string
}

func (d *ImageData) Validate() error {
	if d.Location == "" {
		return fmt.Errorf("%w: location", ErrMissingField)
	}
	return nil
}

func (d *ImageData) summary() string { return strconv.Quote(d.Location) }

// LinkData describes a hyperlink target.
type LinkData struct {
	Location string // required
	Label    string
}

func (d *LinkData) Validate() error {
	if d.Location == "" {
		return fmt.Errorf("%w: location", ErrMissingField)
	}
	return nil
}

func (d *LinkData) summary() string { return strconv.Quote(d.Location) }

// List numbering types.
const (
	ListRomanLower = "roman-lowercase"
	ListRomanUpper = "roman-uppercase"
	ListAlphaLower = "alpha-lowercase"
	ListAlphaUpper = "alpha-uppercase"
	ListDecimal    = "decimal"
)

// ListData holds the optional numbering type of a list.
type ListData struct {
	Type string
}

func (d *ListData) Validate() error { return nil }

func (d *ListData) summary() string {
	if d.Type == "" {
		return ""
	}
	return "type=" + d.Type
}

// TableData holds optional table attributes.
type TableData struct {
	Border string
}

func (d *TableData) Validate() error { return nil }

func (d *TableData) summary() string {
	if d.Border == "" {
		return ""
	}
	return "border=" + d.Border
}

// CellData holds the spans of a table cell. Zero spans read as 1.
type CellData struct {
	ColSpan int
	RowSpan int
	Header  bool
}

func (d *CellData) Validate() error { return nil }

func (d *CellData) summary() string {
	s := fmt.Sprintf("colspan=%d rowspan=%d", d.Cols(), d.Rows())
	if d.Header {
		s += " header"
	}
	return s
}

// Cols returns the column span, at least 1.
func (d *CellData) Cols() int {
	if d == nil || d.ColSpan < 1 {
		return 1
	}
	return d.ColSpan
}

// Rows returns the row span, at least 1.
func (d *CellData) Rows() int {
	if d == nil || d.RowSpan < 1 {
		return 1
	}
	return d.RowSpan
}

// checkData verifies that data fits kind and returns the payload to store.
// Optional payloads default to their zero value.
func checkData(kind Kind, data Data) (Data, error) {
	var ok bool
	switch kind {
	case KindText:
		_, ok = data.(*TextData)
		if data == nil {
			return nil, fmt.Errorf("%w: text", ErrMissingField)
		}
	case KindStyle:
		_, ok = data.(*StyleData)
		if data == nil {
			return nil, fmt.Errorf("%w: name", ErrMissingField)
		}
	case KindHeading:
		_, ok = data.(*HeadingData)
		if data == nil {
			return nil, fmt.Errorf("%w: level", ErrMissingField)
		}
	case KindImage:
		_, ok = data.(*ImageData)
		if data == nil {
			return nil, fmt.Errorf("%w: location", ErrMissingField)
		}
	case KindHyperLink:
		_, ok = data.(*LinkData)
		if data == nil {
			return nil, fmt.Errorf("%w: location", ErrMissingField)
		}
	case KindCodeBlock:
		if data == nil {
			return &CodeData{}, nil
		}
		_, ok = data.(*CodeData)
	case KindBulletList, KindNumberedList:
		if data == nil {
			return &ListData{}, nil
		}
		_, ok = data.(*ListData)
	case KindTable:
		if data == nil {
			return &TableData{}, nil
		}
		_, ok = data.(*TableData)
	case KindTableCell:
		if data == nil {
			return &CellData{}, nil
		}
		_, ok = data.(*CellData)
	default:
		if data == nil {
			return nil, nil
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedData, data)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}
