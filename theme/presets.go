package theme

import "fmt"

// Preset theme ids.
const (
	PresetPenScape  = "penscape"
	PresetMinimal   = "minimal"
	PresetNeon      = "neon"
	PresetEditorial = "editorial"
	PresetSoft      = "soft"
)

var presetOrder = []string{PresetPenScape, PresetMinimal, PresetNeon, PresetEditorial, PresetSoft}

var presets = map[string]func() Theme{
	PresetPenScape:  penscape,
	PresetMinimal:   Minimal,
	PresetNeon:      neon,
	PresetEditorial: editorial,
	PresetSoft:      soft,
}

// Presets returns fresh copies of the built-in themes in display order.
func Presets() []Theme {
	out := make([]Theme, 0, len(presetOrder))
	for _, id := range presetOrder {
		out = append(out, presets[id]())
	}
	return out
}

// Preset returns a fresh copy of the built-in theme with the given id.
func Preset(id string) (Theme, error) {
	build, ok := presets[id]
	if !ok {
		return Theme{}, fmt.Errorf("unknown preset %q", id)
	}
	return build(), nil
}

// IsPresetID reports whether id names a built-in theme.
func IsPresetID(id string) bool {
	_, ok := presets[id]
	return ok
}

func baseBlockquote() Style {
	return NewStyle(
		"margin", "20px 0",
		"padding", "16px",
		"border-left", "4px solid #ddd",
		"background-color", "#f8f8f8",
		"color", "#666",
		"font-size", "15px",
		"line-height", "1.6",
	)
}

func baseImage() Style {
	return NewStyle(
		"display", "block",
		"max-width", "100%",
		"height", "auto",
		"margin", "20px auto",
		"border-radius", "8px",
	)
}

func penscape() Theme {
	return Theme{
		ID:          PresetPenScape,
		Name:        "笔境 (PenScape)",
		Description: "沉浸式书房风格，羊皮纸质感与朱砂红点缀",
		Preset:      true,
		Container:   NewStyle("background-color", "#F5F5F0", "padding", "20px", "font-family", "'Noto Sans SC', sans-serif", "color", "#2C3E50"),
		H1:          NewStyle("font-size", "26px", "font-weight", "bold", "color", "#2C3E50", "margin", "30px 0 20px 0", "text-align", "center", "font-family", "'Noto Serif SC', serif", "letter-spacing", "1px"),
		H2:          NewStyle("font-size", "20px", "font-weight", "bold", "color", "#2C3E50", "margin", "30px 0 16px 0", "border-left", "4px solid #C0392B", "padding-left", "12px", "line-height", "1.4", "font-family", "'Noto Serif SC', serif", "background-color", "transparent"),
		H3:          NewStyle("font-size", "18px", "font-weight", "600", "color", "#2C3E50", "margin", "20px 0 8px 0", "font-family", "'Noto Serif SC', serif"),
		Paragraph:   NewStyle("font-size", "16px", "line-height", "1.8", "color", "#2C3E50", "margin", "16px 0", "text-align", "justify"),
		Strong:      NewStyle("font-weight", "bold", "color", "#C0392B"),
		Emphasis:    NewStyle("font-style", "italic", "color", "#5D6D7E", "font-family", "'Noto Serif SC', serif"),
		Blockquote:  NewStyle("margin", "24px 0", "padding", "16px 20px", "border-left", "6px solid #C0392B", "background-color", "#EAEAE5", "color", "#2C3E50", "border-radius", "4px", "font-style", "normal", "font-size", "15px", "line-height", "1.7"),
		UL:          NewStyle("padding-left", "20px", "margin", "16px 0"),
		OL:          NewStyle("padding-left", "20px", "margin", "16px 0"),
		LI:          NewStyle("margin", "8px 0", "color", "#2C3E50", "font-size", "16px", "line-height", "1.6"),
		HR:          NewStyle("border", "none", "border-top", "1px solid #D6D6D0", "margin", "40px 0", "height", "1px"),
		Code:        NewStyle("background-color", "#EAEAE5", "padding", "2px 6px", "border-radius", "4px", "font-family", "monospace", "font-size", "14px", "color", "#C0392B"),
		Pre:         NewStyle("background-color", "#2C3E50", "padding", "16px", "border-radius", "8px", "overflow-x", "auto", "font-size", "13px", "line-height", "1.5", "margin", "20px 0", "color", "#F5F5F0"),
		Link:        NewStyle("color", "#C0392B", "text-decoration", "none", "border-bottom", "1px solid #C0392B"),
		Image:       NewStyle("display", "block", "max-width", "100%", "height", "auto", "margin", "24px auto", "border-radius", "6px", "box-shadow", "0 4px 12px rgba(44, 62, 80, 0.1)"),
	}
}

// Minimal returns the minimal preset, which is also the skeleton every
// generated theme is compiled from.
func Minimal() Theme {
	return Theme{
		ID:          PresetMinimal,
		Name:        "极简 (Minimal)",
		Description: "黑白灰，大留白，苹果风",
		Preset:      true,
		Container:   NewStyle("background-color", "#ffffff", "padding", "16px", "font-family", "'Noto Sans SC', sans-serif"),
		H1:          NewStyle("font-size", "24px", "font-weight", "bold", "color", "#111", "margin", "24px 0 16px 0", "line-height", "1.4"),
		H2:          NewStyle("font-size", "20px", "font-weight", "600", "color", "#333", "margin", "20px 0 12px 0", "border-bottom", "1px solid #eee", "padding-bottom", "8px"),
		H3:          NewStyle("font-size", "18px", "font-weight", "600", "color", "#444", "margin", "16px 0 8px 0"),
		Paragraph:   NewStyle("font-size", "16px", "line-height", "1.8", "color", "#333", "margin", "16px 0", "text-align", "justify"),
		Strong:      NewStyle("font-weight", "bold", "color", "#000"),
		Emphasis:    NewStyle("font-style", "italic", "color", "#666"),
		Blockquote:  baseBlockquote().With(NewStyle("border-left", "4px solid #000", "background-color", "#f9f9f9")),
		UL:          NewStyle("padding-left", "20px", "margin", "10px 0"),
		OL:          NewStyle("padding-left", "20px", "margin", "10px 0"),
		LI:          NewStyle("margin", "8px 0", "color", "#333", "font-size", "16px", "line-height", "1.6"),
		HR:          NewStyle("border", "none", "border-top", "1px solid #eee", "margin", "30px 0"),
		Code:        NewStyle("background-color", "#f5f5f5", "padding", "2px 6px", "border-radius", "4px", "font-family", "monospace", "font-size", "14px", "color", "#d63384"),
		Pre:         NewStyle("background-color", "#f5f5f5", "padding", "16px", "border-radius", "8px", "overflow-x", "auto", "font-size", "13px", "line-height", "1.5", "margin", "16px 0"),
		Link:        NewStyle("color", "#0066cc", "text-decoration", "none", "border-bottom", "1px solid #0066cc"),
		Image:       baseImage(),
	}
}

func neon() Theme {
	return Theme{
		ID:          PresetNeon,
		Name:        "赛博 (Neon)",
		Description: "高对比度，科技感边框",
		Preset:      true,
		Container:   NewStyle("background-color", "#0a0a0a", "padding", "16px", "font-family", "'Inter', sans-serif"),
		H1:          NewStyle("font-size", "24px", "font-weight", "bold", "color", "#00ff9d", "margin", "24px 0 16px 0", "text-shadow", "0 0 5px rgba(0,255,157,0.3)"),
		H2:          NewStyle("font-size", "20px", "font-weight", "600", "color", "#00ff9d", "margin", "20px 0 12px 0", "border-left", "4px solid #00ff9d", "padding-left", "10px"),
		H3:          NewStyle("font-size", "18px", "font-weight", "600", "color", "#fff", "margin", "16px 0 8px 0"),
		Paragraph:   NewStyle("font-size", "16px", "line-height", "1.8", "color", "#e0e0e0", "margin", "16px 0", "text-align", "justify"),
		Strong:      NewStyle("font-weight", "bold", "color", "#fff", "background-color", "#333", "padding", "0 4px"),
		Emphasis:    NewStyle("font-style", "italic", "color", "#aaa"),
		Blockquote:  baseBlockquote().With(NewStyle("background-color", "#111", "border-left", "4px solid #00ff9d", "color", "#bbb")),
		UL:          NewStyle("padding-left", "20px", "margin", "10px 0"),
		OL:          NewStyle("padding-left", "20px", "margin", "10px 0"),
		LI:          NewStyle("margin", "8px 0", "color", "#e0e0e0", "font-size", "16px", "line-height", "1.6"),
		HR:          NewStyle("border", "none", "border-top", "1px solid #333", "margin", "30px 0"),
		Code:        NewStyle("background-color", "#222", "padding", "2px 6px", "border-radius", "4px", "font-family", "monospace", "font-size", "14px", "color", "#00ff9d"),
		Pre:         NewStyle("background-color", "#111", "padding", "16px", "border-radius", "8px", "border", "1px solid #333", "overflow-x", "auto", "margin", "16px 0", "color", "#ccc"),
		Link:        NewStyle("color", "#00ff9d", "text-decoration", "underline"),
		Image:       baseImage().With(NewStyle("border", "1px solid #333")),
	}
}

func editorial() Theme {
	return Theme{
		ID:          PresetEditorial,
		Name:        "杂志 (Editorial)",
		Description: "衬线标题，首字下沉感，高饱和",
		Preset:      true,
		Container:   NewStyle("background-color", "#ffffff", "padding", "16px", "font-family", "'Noto Serif SC', serif"),
		H1:          NewStyle("font-size", "28px", "font-weight", "800", "color", "#b91c1c", "margin", "24px 0 16px 0", "text-align", "center", "letter-spacing", "1px"),
		H2:          NewStyle("font-size", "22px", "font-weight", "700", "color", "#111", "margin", "24px 0 16px 0", "display", "inline-block", "border-bottom", "3px solid #b91c1c", "padding-bottom", "4px"),
		H3:          NewStyle("font-size", "18px", "font-weight", "600", "color", "#444", "margin", "16px 0 8px 0"),
		Paragraph:   NewStyle("font-size", "16px", "line-height", "1.9", "color", "#2d2d2d", "margin", "16px 0", "text-align", "justify", "font-family", "'Noto Sans SC', sans-serif"),
		Strong:      NewStyle("font-weight", "bold", "color", "#b91c1c"),
		Emphasis:    NewStyle("font-style", "italic", "color", "#666", "font-family", "'Noto Serif SC', serif"),
		Blockquote:  NewStyle("margin", "24px 0", "padding", "20px", "background-color", "#fff1f2", "border-left", "none", "border-top", "2px solid #b91c1c", "border-bottom", "2px solid #b91c1c", "color", "#881337", "text-align", "center", "font-style", "italic"),
		UL:          NewStyle("padding-left", "20px", "margin", "10px 0"),
		OL:          NewStyle("padding-left", "20px", "margin", "10px 0"),
		LI:          NewStyle("margin", "8px 0", "color", "#2d2d2d", "font-size", "16px", "line-height", "1.7"),
		HR:          NewStyle("border", "none", "border-top", "2px solid #000", "margin", "30px auto", "width", "50px"),
		Code:        NewStyle("background-color", "#fef2f2", "padding", "2px 6px", "border-radius", "0", "font-family", "monospace", "font-size", "14px", "color", "#b91c1c"),
		Pre:         NewStyle("background-color", "#1c1917", "padding", "16px", "border-radius", "0", "overflow-x", "auto", "margin", "16px 0", "color", "#f5f5f5"),
		Link:        NewStyle("color", "#b91c1c", "text-decoration", "none", "border-bottom", "1px solid #b91c1c", "font-weight", "500"),
		Image:       baseImage().With(NewStyle("border-radius", "0", "box-shadow", "0 4px 6px -1px rgba(0, 0, 0, 0.1)")),
	}
}

func soft() Theme {
	return Theme{
		ID:          PresetSoft,
		Name:        "温润 (Soft)",
		Description: "莫兰迪色系，圆角，信纸质感",
		Preset:      true,
		Container:   NewStyle("background-color", "#fafaf9", "padding", "16px", "font-family", "'Noto Sans SC', sans-serif"),
		H1:          NewStyle("font-size", "24px", "font-weight", "normal", "color", "#57534e", "margin", "24px 0 16px 0", "text-align", "center"),
		H2:          NewStyle("font-size", "18px", "font-weight", "bold", "color", "#fff", "margin", "20px 0 12px 0", "background-color", "#a8a29e", "display", "inline-block", "padding", "4px 12px", "border-radius", "20px"),
		H3:          NewStyle("font-size", "17px", "font-weight", "600", "color", "#78716c", "margin", "16px 0 8px 0"),
		Paragraph:   NewStyle("font-size", "16px", "line-height", "1.8", "color", "#57534e", "margin", "16px 0", "text-align", "justify"),
		Strong:      NewStyle("font-weight", "600", "color", "#78716c", "border-bottom", "2px solid #d6d3d1"),
		Emphasis:    NewStyle("font-style", "italic", "color", "#a8a29e"),
		Blockquote:  baseBlockquote().With(NewStyle("background-color", "#fff", "border-left", "4px solid #e7e5e4", "color", "#78716c", "border-radius", "8px", "box-shadow", "0 2px 4px rgba(0,0,0,0.05)")),
		UL:          NewStyle("padding-left", "20px", "margin", "10px 0"),
		OL:          NewStyle("padding-left", "20px", "margin", "10px 0"),
		LI:          NewStyle("margin", "8px 0", "color", "#57534e", "font-size", "16px", "line-height", "1.6"),
		HR:          NewStyle("border", "none", "border-top", "1px dashed #d6d3d1", "margin", "30px 0"),
		Code:        NewStyle("background-color", "#e7e5e4", "padding", "2px 6px", "border-radius", "4px", "font-family", "monospace", "font-size", "14px", "color", "#57534e"),
		Pre:         NewStyle("background-color", "#fff", "padding", "16px", "border-radius", "12px", "overflow-x", "auto", "margin", "16px 0", "border", "1px solid #e7e5e4", "color", "#57534e"),
		Link:        NewStyle("color", "#a8a29e", "text-decoration", "none", "border-bottom", "1px dashed #a8a29e"),
		Image:       baseImage().With(NewStyle("border-radius", "12px")),
	}
}
