package theme

import (
	"fmt"
	"strings"

	cssast "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// selectors used when exporting, one per group
var groupSelectors = [groupCount]string{
	GroupContainer:     ".container",
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
	GroupLink:          "a",
	GroupImage:         "img",
}

// selectorGroup maps the last compound of a selector to a style group.
func selectorGroup(sel string) (Group, bool) {
	fields := strings.FieldsFunc(sel, func(r rune) bool {
		return r == ' ' || r == '>' || r == '+' || r == '~'
	})
	if len(fields) == 0 {
		return 0, false
	}
	last := strings.ToLower(fields[len(fields)-1])
	if i := strings.IndexByte(last, ':'); i >= 0 {
		last = last[:i]
	}

	switch last {
	case ".container", "section", "section.container", "body":
		return GroupContainer, true
	case "h1":
		return GroupH1, true
	case "h2":
		return GroupH2, true
	case "h3", "h4", "h5", "h6":
		return GroupH3, true
	case "p":
		return GroupParagraph, true
	case "strong", "b":
		return GroupStrong, true
	case "em", "i":
		return GroupEmphasis, true
	case "blockquote":
		return GroupBlockquote, true
	case "ul":
		return GroupUnorderedList, true
	case "ol":
		return GroupOrderedList, true
	case "li":
		return GroupListItem, true
	case "hr":
		return GroupDivider, true
	case "code":
		return GroupCode, true
	case "pre":
		return GroupPre, true
	case "a":
		return GroupLink, true
	case "img":
		return GroupImage, true
	}
	return 0, false
}

// Stylesheet renders the theme as a CSS stylesheet, one rule per group.
func (t Theme) Stylesheet() string {
	sheet := cssast.NewStylesheet()
	for _, g := range Groups() {
		s := t.Style(g)
		if s.Len() == 0 {
			continue
		}
		rule := cssast.NewRule(cssast.QualifiedRule)
		rule.Prelude = groupSelectors[g]
		rule.Selectors = []string{groupSelectors[g]}
		for _, d := range s.Declarations() {
			rule.Declarations = append(rule.Declarations, &cssast.Declaration{
				Property: d.Property,
				Value:    d.Value,
			})
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet.String()
}

// ImportStylesheet applies the rules of a CSS stylesheet on top of base.
// Rules whose selectors do not name a known element are skipped, at-rules are
// ignored. The result carries no parameters since it was not compiled.
func ImportStylesheet(base Theme, src string) (Theme, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to parse stylesheet: %w", err)
	}

	t := base.Clone()
	t.Metadata = nil
	for _, rule := range sheet.Rules {
		if rule == nil || rule.Kind != cssast.QualifiedRule {
			continue
		}
		decls := declarationsStyle(rule.Declarations)
		if decls.Len() == 0 {
			continue
		}
		for _, sel := range rule.Selectors {
			g, ok := selectorGroup(sel)
			if !ok {
				continue
			}
			p := t.group(g)
			*p = p.With(decls)
		}
	}
	return t, nil
}

func declarationsStyle(list []*cssast.Declaration) Style {
	var s Style
	for _, d := range list {
		if d == nil {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		val := strings.TrimSpace(d.Value)
		if prop == "" || val == "" {
			continue
		}
		s.Set(prop, val)
	}
	return s
}
