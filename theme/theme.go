// Package theme models inline-style themes and compiles them from a small
// set of parameters.
//
// A Theme carries one Style per element group. Themes are values: Compile and
// the helpers in this package always return new themes and never modify the
// theme they were given.
package theme

// Group identifies the element kind a Style applies to.
type Group int

const (
	GroupContainer Group = iota
	GroupH1
	GroupH2
	GroupH3
	GroupParagraph
	GroupStrong
	GroupEmphasis
	GroupBlockquote
	GroupUnorderedList
	GroupOrderedList
	GroupListItem
	GroupDivider
	GroupCode
	GroupPre
	GroupLink
	GroupImage

	groupCount
)

var groupNames = [groupCount]string{
	GroupContainer:     "container",
	GroupH1:            "h1",
	GroupH2:            "h2",
	GroupH3:            "h3",
	GroupParagraph:     "p",
	GroupStrong:        "strong",
	GroupEmphasis:      "em",
	GroupBlockquote:    "blockquote",
	GroupUnorderedList: "ul",
	GroupOrderedList:   "ol",
	GroupListItem:      "li",
	GroupDivider:       "hr",
	GroupCode:          "code",
	GroupPre:           "pre",
	GroupLink:          "link",
	GroupImage:         "image",
}

// Groups returns every style group in declaration order.
func Groups() []Group {
	out := make([]Group, groupCount)
	for i := range out {
		out[i] = Group(i)
	}
	return out
}

func (g Group) String() string {
	if g < 0 || g >= groupCount {
		return "unknown"
	}
	return groupNames[g]
}

// ParseGroup looks a group up by its serialized name.
func ParseGroup(name string) (Group, bool) {
	for i, n := range groupNames {
		if n == name {
			return Group(i), true
		}
	}
	return 0, false
}

// Metadata is the parameter set a generated theme is compiled from. It is
// stored on the theme so later edits can recompile it.
type Metadata struct {
	Font            Font         `json:"fontId" yaml:"fontId"`
	HeadingStyle    HeadingStyle `json:"h2StyleId" yaml:"h2StyleId"`
	Texture         Texture      `json:"textureId" yaml:"textureId"`
	BrandColor      string       `json:"brandColor" yaml:"brandColor"`
	BackgroundColor string       `json:"bgColor" yaml:"bgColor"`
	StrongColor     string       `json:"strongColor" yaml:"strongColor"`
}

// Theme is a complete set of per-element inline styles.
type Theme struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Pinned      bool      `json:"isPinned,omitempty" yaml:"isPinned,omitempty"`
	Preset      bool      `json:"isPreset,omitempty" yaml:"isPreset,omitempty"`
	Metadata    *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	Container  Style `json:"container" yaml:"container"`
	H1         Style `json:"h1" yaml:"h1"`
	H2         Style `json:"h2" yaml:"h2"`
	H3         Style `json:"h3" yaml:"h3"`
	Paragraph  Style `json:"p" yaml:"p"`
	Strong     Style `json:"strong" yaml:"strong"`
	Emphasis   Style `json:"em" yaml:"em"`
	Blockquote Style `json:"blockquote" yaml:"blockquote"`
	UL         Style `json:"ul" yaml:"ul"`
	OL         Style `json:"ol" yaml:"ol"`
	LI         Style `json:"li" yaml:"li"`
	HR         Style `json:"hr" yaml:"hr"`
	Code       Style `json:"code" yaml:"code"`
	Pre        Style `json:"pre" yaml:"pre"`
	Link       Style `json:"link" yaml:"link"`
	Image      Style `json:"image" yaml:"image"`
}

func (t *Theme) group(g Group) *Style {
	switch g {
	case GroupContainer:
		return &t.Container
	case GroupH1:
		return &t.H1
	case GroupH2:
		return &t.H2
	case GroupH3:
		return &t.H3
	case GroupParagraph:
		return &t.Paragraph
	case GroupStrong:
		return &t.Strong
	case GroupEmphasis:
		return &t.Emphasis
	case GroupBlockquote:
		return &t.Blockquote
	case GroupUnorderedList:
		return &t.UL
	case GroupOrderedList:
		return &t.OL
	case GroupListItem:
		return &t.LI
	case GroupDivider:
		return &t.HR
	case GroupCode:
		return &t.Code
	case GroupPre:
		return &t.Pre
	case GroupLink:
		return &t.Link
	case GroupImage:
		return &t.Image
	}
	return nil
}

// Style returns the style of group g.
func (t Theme) Style(g Group) Style {
	if s := t.group(g); s != nil {
		return s.Clone()
	}
	return Style{}
}

// WithStyle returns a copy of t with group g replaced.
func (t Theme) WithStyle(g Group, s Style) Theme {
	out := t.Clone()
	if p := out.group(g); p != nil {
		*p = s.Clone()
	}
	return out
}

// Clone returns a deep copy of t.
func (t Theme) Clone() Theme {
	out := t
	if t.Metadata != nil {
		m := *t.Metadata
		out.Metadata = &m
	}
	for _, g := range Groups() {
		p := out.group(g)
		*p = p.Clone()
	}
	return out
}

// Params returns the stored parameter set, if any.
func (t Theme) Params() (Metadata, bool) {
	if t.Metadata == nil {
		return Metadata{}, false
	}
	return *t.Metadata, true
}
