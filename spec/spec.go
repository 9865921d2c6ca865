/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package spec provides the typed assertions produced by the spec-language reader.
//
// Every value here is built once by the reader and then handed, read-only,
// to whatever validates it against a rendered page.
package spec

// Kind identifies a Spec variant.
type Kind int

const (
	KindInside Kind = iota
	KindContains
	KindNear
	KindHorizontally
	KindVertically
	KindAbsent
	KindVisible
	KindWidth
	KindHeight
	KindText
	KindCss
	KindAbove
	KindBelow
	KindLeftOf
	KindRightOf
	KindCentered
	KindOn
	KindColorScheme
	KindImage
	KindComponent
)

var kindNames = [...]string{
	KindInside:       "inside",
	KindContains:     "contains",
	KindNear:         "near",
	KindHorizontally: "horizontally",
	KindVertically:   "vertically",
	KindAbsent:       "absent",
	KindVisible:      "visible",
	KindWidth:        "width",
	KindHeight:       "height",
	KindText:         "text",
	KindCss:          "css",
	KindAbove:        "above",
	KindBelow:        "below",
	KindLeftOf:       "left-of",
	KindRightOf:      "right-of",
	KindCentered:     "centered",
	KindOn:           "on",
	KindColorScheme:  "color-scheme",
	KindImage:        "image",
	KindComponent:    "component",
}

// String returns the variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Spec is a parsed layout assertion. The set of implementations is closed.
type Spec interface {
	Kind() Kind
	OriginalText() string
	sealed()
}

// Base holds what every variant carries.
type Base struct {
	Text string `json:"originalText" yaml:"originalText"`
}

// OriginalText returns the trimmed spec line the value was read from.
func (b Base) OriginalText() string { return b.Text }

func (Base) sealed() {}

// Alignment is the edge or axis along which objects are aligned.
type Alignment int

const (
	AlignAll Alignment = iota
	AlignTop
	AlignBottom
	AlignLeft
	AlignRight
	AlignCentered
)

// String returns the spec-language word for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignAll:
		return "all"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCentered:
		return "centered"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// HorizontalAlignments are the alignments legal in "aligned horizontally".
var HorizontalAlignments = []Alignment{AlignAll, AlignTop, AlignBottom, AlignCentered}

// VerticalAlignments are the alignments legal in "aligned vertically".
var VerticalAlignments = []Alignment{AlignAll, AlignLeft, AlignRight, AlignCentered}

// CenteredAlignment is the axis of a centered assertion.
type CenteredAlignment int

const (
	CenteredAll CenteredAlignment = iota
	CenteredHorizontally
	CenteredVertically
)

// String returns the spec-language word.
func (a CenteredAlignment) String() string {
	switch a {
	case CenteredHorizontally:
		return "horizontally"
	case CenteredVertically:
		return "vertically"
	default:
		return "all"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a CenteredAlignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// CenteredLocation says whether an object is centered inside or on another.
type CenteredLocation int

const (
	CenteredInside CenteredLocation = iota
	CenteredOn
)

// String returns the spec-language word.
func (l CenteredLocation) String() string {
	if l == CenteredOn {
		return "on"
	}
	return "inside"
}

// MarshalText implements encoding.TextMarshaler.
func (l CenteredLocation) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Inside asserts an object lies inside another.
type Inside struct {
	Base      `yaml:",inline"`
	Object    string     `json:"object" yaml:"object"`
	Partly    bool       `json:"partly" yaml:"partly"`
	Locations []Location `json:"locations" yaml:"locations"`
}

// Contains asserts an object contains the listed children.
type Contains struct {
	Base         `yaml:",inline"`
	ChildObjects []string `json:"childObjects" yaml:"childObjects"`
	Partly       bool     `json:"partly" yaml:"partly"`
}

// Near asserts an object lies at given distances from another.
type Near struct {
	Base      `yaml:",inline"`
	Object    string     `json:"object" yaml:"object"`
	Locations []Location `json:"locations" yaml:"locations"`
}

// Horizontally asserts horizontal alignment with another object.
type Horizontally struct {
	Base      `yaml:",inline"`
	Object    string    `json:"object" yaml:"object"`
	Alignment Alignment `json:"alignment" yaml:"alignment"`
	ErrorRate int       `json:"errorRate" yaml:"errorRate"`
}

// Vertically asserts vertical alignment with another object.
type Vertically struct {
	Base      `yaml:",inline"`
	Object    string    `json:"object" yaml:"object"`
	Alignment Alignment `json:"alignment" yaml:"alignment"`
	ErrorRate int       `json:"errorRate" yaml:"errorRate"`
}

// Absent asserts the object is not displayed.
type Absent struct {
	Base `yaml:",inline"`
}

// Visible asserts the object is displayed.
type Visible struct {
	Base `yaml:",inline"`
}

// Width asserts the object's width.
type Width struct {
	Base  `yaml:",inline"`
	Range Range `json:"range" yaml:"range"`
}

// Height asserts the object's height.
type Height struct {
	Base  `yaml:",inline"`
	Range Range `json:"range" yaml:"range"`
}

// Text asserts the object's visible text.
type Text struct {
	Base       `yaml:",inline"`
	Type       TextType        `json:"type" yaml:"type"`
	Text       string          `json:"text" yaml:"text"`
	Operations []TextOperation `json:"operations,omitempty" yaml:"operations,omitempty"`
}

// Css asserts the value of a computed css property.
type Css struct {
	Base         `yaml:",inline"`
	PropertyName string          `json:"propertyName" yaml:"propertyName"`
	Type         TextType        `json:"type" yaml:"type"`
	Text         string          `json:"text" yaml:"text"`
	Operations   []TextOperation `json:"operations,omitempty" yaml:"operations,omitempty"`
}

// Above asserts the object is above another.
type Above struct {
	Base   `yaml:",inline"`
	Object string `json:"object" yaml:"object"`
	Range  Range  `json:"range" yaml:"range"`
}

// Below asserts the object is below another.
type Below struct {
	Base   `yaml:",inline"`
	Object string `json:"object" yaml:"object"`
	Range  Range  `json:"range" yaml:"range"`
}

// LeftOf asserts the object is left of another.
type LeftOf struct {
	Base   `yaml:",inline"`
	Object string `json:"object" yaml:"object"`
	Range  Range  `json:"range" yaml:"range"`
}

// RightOf asserts the object is right of another.
type RightOf struct {
	Base   `yaml:",inline"`
	Object string `json:"object" yaml:"object"`
	Range  Range  `json:"range" yaml:"range"`
}

// Centered asserts the object is centered inside or on another.
type Centered struct {
	Base      `yaml:",inline"`
	Object    string            `json:"object" yaml:"object"`
	Location  CenteredLocation  `json:"location" yaml:"location"`
	Alignment CenteredAlignment `json:"alignment" yaml:"alignment"`
	ErrorRate int               `json:"errorRate" yaml:"errorRate"`
}

// On asserts the object is placed relative to a corner of another.
type On struct {
	Base           `yaml:",inline"`
	Object         string     `json:"object" yaml:"object"`
	SideHorizontal Side       `json:"sideHorizontal" yaml:"sideHorizontal"`
	SideVertical   Side       `json:"sideVertical" yaml:"sideVertical"`
	Locations      []Location `json:"locations" yaml:"locations"`
}

// ColorScheme asserts the color distribution of the object's pixels.
type ColorScheme struct {
	Base        `yaml:",inline"`
	ColorRanges []ColorRange `json:"colorRanges" yaml:"colorRanges"`
}

// Image asserts the object looks like one of the given images.
type Image struct {
	Base            `yaml:",inline"`
	ImagePaths      []string  `json:"imagePaths" yaml:"imagePaths"`
	ErrorRate       ErrorRate `json:"errorRate" yaml:"errorRate"`
	Tolerance       int       `json:"tolerance" yaml:"tolerance"`
	Stretch         bool      `json:"stretch" yaml:"stretch"`
	CropIfOutside   bool      `json:"cropIfOutside" yaml:"cropIfOutside"`
	SelectedArea    *Rect     `json:"selectedArea,omitempty" yaml:"selectedArea,omitempty"`
	OriginalFilters []Filter  `json:"originalFilters,omitempty" yaml:"originalFilters,omitempty"`
	SampleFilters   []Filter  `json:"sampleFilters,omitempty" yaml:"sampleFilters,omitempty"`
	MapFilters      []Filter  `json:"mapFilters,omitempty" yaml:"mapFilters,omitempty"`
}

// Component asserts the object satisfies another spec file.
type Component struct {
	Base     `yaml:",inline"`
	SpecPath string `json:"specPath" yaml:"specPath"`
	Frame    bool   `json:"frame" yaml:"frame"`
}

func (*Inside) Kind() Kind       { return KindInside }
func (*Contains) Kind() Kind     { return KindContains }
func (*Near) Kind() Kind         { return KindNear }
func (*Horizontally) Kind() Kind { return KindHorizontally }
func (*Vertically) Kind() Kind   { return KindVertically }
func (*Absent) Kind() Kind       { return KindAbsent }
func (*Visible) Kind() Kind      { return KindVisible }
func (*Width) Kind() Kind        { return KindWidth }
func (*Height) Kind() Kind       { return KindHeight }
func (*Text) Kind() Kind         { return KindText }
func (*Css) Kind() Kind          { return KindCss }
func (*Above) Kind() Kind        { return KindAbove }
func (*Below) Kind() Kind        { return KindBelow }
func (*LeftOf) Kind() Kind       { return KindLeftOf }
func (*RightOf) Kind() Kind      { return KindRightOf }
func (*Centered) Kind() Kind     { return KindCentered }
func (*On) Kind() Kind           { return KindOn }
func (*ColorScheme) Kind() Kind  { return KindColorScheme }
func (*Image) Kind() Kind        { return KindImage }
func (*Component) Kind() Kind    { return KindComponent }
