package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/watzon/penscape/theme"
)

// groupFor maps an element to the style group it takes, if any.
func groupFor(n *html.Node) (theme.Group, bool) {
	switch n.DataAtom {
	case atom.H1:
		return theme.GroupH1, true
	case atom.H2:
		return theme.GroupH2, true
	case atom.H3, atom.H4, atom.H5, atom.H6:
		return theme.GroupH3, true
	case atom.P:
		return theme.GroupParagraph, true
	case atom.Strong, atom.B:
		return theme.GroupStrong, true
	case atom.Em, atom.I:
		return theme.GroupEmphasis, true
	case atom.Blockquote:
		return theme.GroupBlockquote, true
	case atom.Ul:
		return theme.GroupUnorderedList, true
	case atom.Ol:
		return theme.GroupOrderedList, true
	case atom.Li:
		return theme.GroupListItem, true
	case atom.Hr:
		return theme.GroupDivider, true
	case atom.Code:
		// the enclosing block owns the box
		if n.Parent != nil && n.Parent.DataAtom == atom.Pre {
			return 0, false
		}
		return theme.GroupCode, true
	case atom.Pre:
		return theme.GroupPre, true
	case atom.A:
		return theme.GroupLink, true
	case atom.Img:
		return theme.GroupImage, true
	}
	return 0, false
}

// Inject copies nodes under a new <section> root carrying the container style
// and appends each element's group style to its style attribute. The input
// nodes are not modified.
func Inject(nodes []*html.Node, t theme.Theme) *html.Node {
	root := &html.Node{
		Type:     html.ElementNode,
		Data:     "section",
		DataAtom: atom.Section,
	}
	appendStyle(root, t.Container)

	for _, n := range nodes {
		root.AppendChild(cloneNode(n))
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		walk(c, t)
	}
	return root
}

// walk styles n and its descendants in pre-order.
func walk(n *html.Node, t theme.Theme) {
	if n.Type == html.ElementNode {
		if g, ok := groupFor(n); ok {
			appendStyle(n, t.Style(g))
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, t)
	}
}

// appendStyle adds s after any inline style n already has.
func appendStyle(n *html.Node, s theme.Style) {
	decl := s.String()
	if decl == "" {
		return
	}

	for i, a := range n.Attr {
		if a.Namespace != "" || a.Key != "style" {
			continue
		}
		existing := strings.TrimSpace(a.Val)
		switch {
		case existing == "":
			n.Attr[i].Val = decl
		case strings.HasSuffix(existing, ";"):
			n.Attr[i].Val = existing + " " + decl
		default:
			n.Attr[i].Val = existing + "; " + decl
		}
		return
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: decl})
}

func cloneNode(n *html.Node) *html.Node {
	out := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out.AppendChild(cloneNode(c))
	}
	return out
}
