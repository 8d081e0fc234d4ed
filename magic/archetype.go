package magic

import (
	"strings"

	"github.com/watzon/penscape/theme"
)

// Archetype is a design persona that text input is classified into.
type Archetype string

const (
	ModernTech     Archetype = "modern_tech"
	ClassicElegant Archetype = "classic_elegant"
	NaturalFresh   Archetype = "natural_fresh"
	BusinessClean  Archetype = "business_clean"
	ArtPop         Archetype = "art_pop"
)

// BackgroundMode is an archetype's preferred page background.
type BackgroundMode string

const (
	ModeLight BackgroundMode = "light"
	ModeDark  BackgroundMode = "dark"
	ModePaper BackgroundMode = "paper"
	ModeAny   BackgroundMode = "any"
)

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// Profile is everything a generator may pick from for one archetype.
type Profile struct {
	Archetype     Archetype
	Label         string
	Fonts         []theme.Font
	HeadingStyles []theme.HeadingStyle
	Textures      []theme.Texture
	Saturation    Range
	Lightness     Range
	Background    BackgroundMode
}

// FallbackArchetype is used when no keyword rule matches.
const FallbackArchetype = NaturalFresh

var profiles = map[Archetype]Profile{
	ModernTech: {
		Archetype:     ModernTech,
		Label:         "Future",
		Fonts:         []theme.Font{theme.FontSans, theme.FontMono},
		HeadingStyles: []theme.HeadingStyle{theme.HeadingLeftBorder, theme.HeadingClean, theme.HeadingGradient, theme.HeadingBracket},
		Textures:      []theme.Texture{theme.TextureNone, theme.TextureLines, theme.TextureGridDotted},
		Saturation:    Range{70, 100},
		Lightness:     Range{45, 65},
		Background:    ModeAny,
	},
	ClassicElegant: {
		Archetype:     ClassicElegant,
		Label:         "Classic",
		Fonts:         []theme.Font{theme.FontSerif},
		HeadingStyles: []theme.HeadingStyle{theme.HeadingUnderline, theme.HeadingLeftBorder, theme.HeadingBracket},
		Textures:      []theme.Texture{theme.TextureRicePaper, theme.TextureCanvas, theme.TextureMagazine},
		Saturation:    Range{30, 60},
		Lightness:     Range{30, 50},
		Background:    ModePaper,
	},
	NaturalFresh: {
		Archetype:     NaturalFresh,
		Label:         "Breeze",
		Fonts:         []theme.Font{theme.FontRound, theme.FontSans},
		HeadingStyles: []theme.HeadingStyle{theme.HeadingMarker, theme.HeadingCapsule, theme.HeadingUnderline},
		Textures:      []theme.Texture{theme.TextureMagazine, theme.TextureNone, theme.TextureRicePaper},
		Saturation:    Range{50, 80},
		Lightness:     Range{40, 70},
		Background:    ModeLight,
	},
	BusinessClean: {
		Archetype:     BusinessClean,
		Label:         "Focus",
		Fonts:         []theme.Font{theme.FontSans},
		HeadingStyles: []theme.HeadingStyle{theme.HeadingClean, theme.HeadingLeftBorder, theme.HeadingBracket},
		Textures:      []theme.Texture{theme.TextureNone, theme.TextureGridDotted},
		Saturation:    Range{60, 90},
		Lightness:     Range{30, 45},
		Background:    ModeLight,
	},
	ArtPop: {
		Archetype:     ArtPop,
		Label:         "Vivid",
		Fonts:         []theme.Font{theme.FontSans, theme.FontSerif},
		HeadingStyles: []theme.HeadingStyle{theme.HeadingMarker, theme.HeadingGradient, theme.HeadingCapsule},
		Textures:      []theme.Texture{theme.TextureMagazine, theme.TextureLines, theme.TextureCanvas},
		Saturation:    Range{80, 100},
		Lightness:     Range{40, 60},
		Background:    ModeAny,
	},
}

// ProfileOf returns the profile of a. Unknown archetypes get the fallback profile.
func ProfileOf(a Archetype) Profile {
	if p, ok := profiles[a]; ok {
		return p
	}
	return profiles[FallbackArchetype]
}

// Match is the outcome of classifying a piece of text.
type Match struct {
	Archetype Archetype
	// HueSeed is the rule's base hue; valid only when HasHue is set.
	HueSeed int
	HasHue  bool
}

type keywordRule struct {
	keywords []string
	match    Match
}

// Rules are evaluated in order and the first one with any keyword in the
// input wins.
var keywordRules = []keywordRule{
	{
		keywords: []string{"tech", "cyber", "code", "future", "ai", "data", "web", "科技", "数码", "未来", "赛博", "代码", "机器人"},
		match:    Match{Archetype: ModernTech, HueSeed: 200, HasHue: true},
	},
	{
		keywords: []string{"book", "history", "poem", "love", "story", "retro", "文学", "历史", "诗歌", "情感", "小说", "复古", "宋代"},
		match:    Match{Archetype: ClassicElegant},
	},
	{
		keywords: []string{"nature", "food", "travel", "life", "green", "sky", "cat", "dog", "生活", "自然", "美食", "旅游", "宠物", "日记"},
		match:    Match{Archetype: NaturalFresh},
	},
	{
		keywords: []string{"news", "report", "work", "job", "finance", "money", "新闻", "周报", "工作", "金融", "招聘", "通知"},
		match:    Match{Archetype: BusinessClean, HueSeed: 210, HasHue: true},
	},
	{
		keywords: []string{"art", "fashion", "sale", "music", "party", "show", "艺术", "时尚", "促销", "活动", "展览", "设计"},
		match:    Match{Archetype: ArtPop},
	},
}

// Classify maps free text to an archetype by case-insensitive substring match.
// Keywords are plain substrings, so "detail" matches "ai".
func Classify(text string) Match {
	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, k := range rule.keywords {
			if strings.Contains(lower, k) {
				return rule.match
			}
		}
	}
	return Match{Archetype: FallbackArchetype}
}
