package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Declaration is a single CSS property and its value.
type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered set of CSS declarations for one element kind.
// Setting an existing property keeps its position; new properties are appended.
type Style struct {
	decls []Declaration
}

// NewStyle builds a style from alternating property/value pairs.
func NewStyle(pairs ...string) Style {
	var s Style
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Set(pairs[i], pairs[i+1])
	}
	return s
}

// Kebab converts a camelCase property name to its hyphenated CSS form.
// Names that are already hyphenated are returned unchanged.
func Kebab(prop string) string {
	var b strings.Builder
	for _, r := range prop {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Get returns the value of prop, or "" when unset.
func (s Style) Get(prop string) string {
	prop = Kebab(prop)
	for _, d := range s.decls {
		if d.Property == prop {
			return d.Value
		}
	}
	return ""
}

// Has reports whether prop is set.
func (s Style) Has(prop string) bool {
	prop = Kebab(prop)
	for _, d := range s.decls {
		if d.Property == prop {
			return true
		}
	}
	return false
}

// Set assigns value to prop. The receiver never writes into storage shared
// with copies of the same Style.
func (s *Style) Set(prop, value string) {
	prop = Kebab(prop)
	decls := s.Declarations()
	for i := range decls {
		if decls[i].Property == prop {
			decls[i].Value = value
			s.decls = decls
			return
		}
	}
	s.decls = append(decls, Declaration{Property: prop, Value: value})
}

// Delete removes prop if present.
func (s *Style) Delete(prop string) {
	prop = Kebab(prop)
	for i := range s.decls {
		if s.decls[i].Property == prop {
			s.decls = append(s.decls[:i:i], s.decls[i+1:]...)
			return
		}
	}
}

// Len returns the number of declarations.
func (s Style) Len() int {
	return len(s.decls)
}

// Declarations returns a copy of the declarations in order.
func (s Style) Declarations() []Declaration {
	return append([]Declaration(nil), s.decls...)
}

// Clone returns an independent copy.
func (s Style) Clone() Style {
	return Style{decls: s.Declarations()}
}

// With returns a copy of s with every declaration of other applied on top.
func (s Style) With(other Style) Style {
	out := s.Clone()
	for _, d := range other.decls {
		out.Set(d.Property, d.Value)
	}
	return out
}

// String serializes the style for an inline style attribute, e.g. "color: red; margin: 0;".
func (s Style) String() string {
	if len(s.decls) == 0 {
		return ""
	}
	parts := make([]string, len(s.decls))
	for i, d := range s.decls {
		parts[i] = d.Property + ": " + d.Value
	}
	return strings.Join(parts, "; ") + ";"
}

// MarshalJSON writes the style as a JSON object keeping declaration order.
func (s Style) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range s.decls {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d.Property)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping key order. Numeric values are accepted.
func (s *Style) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = Style{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("style must be a JSON object")
	}

	var out Style
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		switch v := valTok.(type) {
		case string:
			out.Set(key, v)
		case json.Number:
			out.Set(key, v.String())
		case bool:
			out.Set(key, fmt.Sprint(v))
		default:
			return fmt.Errorf("style property %q has unsupported value %v", key, valTok)
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalYAML writes the style as an ordered mapping.
func (s Style) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, d := range s.decls {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: d.Property},
			&yaml.Node{Kind: yaml.ScalarNode, Value: d.Value, Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}

// UnmarshalYAML reads an ordered mapping.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("style must be a mapping, got line %d", node.Line)
	}
	var out Style
	for i := 0; i+1 < len(node.Content); i += 2 {
		out.Set(node.Content[i].Value, node.Content[i+1].Value)
	}
	*s = out
	return nil
}
