package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Tag is a normalized UI language identifier.
type Tag string

const (
	English           Tag = "en"
	SimplifiedChinese Tag = "zh-CN"

	// Default is returned whenever the OS gives no usable information.
	Default = English
)

type entry struct {
	tag    Tag
	prefix string        // lowercase raw identifier prefix
	bcp47  xlanguage.Tag // canonical form for x/text consumers
}

// Order matters: Map returns the first prefix hit.
var supported = []entry{
	{SimplifiedChinese, "zh", xlanguage.SimplifiedChinese},
	{English, "en", xlanguage.English},
}

var byTag map[Tag]*entry

func init() {
	byTag = make(map[Tag]*entry, len(supported))
	for i := range supported {
		byTag[supported[i].tag] = &supported[i]
	}
}

// Map reduces a raw locale identifier ("en-US", "zh_TW", "zh-Hans") to a
// supported tag by case-insensitive prefix. Anything unrecognized, including
// the empty string, maps to Default.
func Map(raw string) Tag {
	lower := strings.ToLower(raw)
	for _, e := range supported {
		if strings.HasPrefix(lower, e.prefix) {
			return e.tag
		}
	}
	return Default
}

// Parse accepts only an exact supported tag (case-insensitive, '_' allowed
// in place of '-'). It is used for values a user typed or saved, where
// "fr" must be rejected rather than silently mapped to English.
func Parse(value string) (Tag, bool) {
	value = strings.ReplaceAll(strings.TrimSpace(value), "_", "-")
	if value == "" {
		return "", false
	}
	for _, e := range supported {
		if strings.EqualFold(value, string(e.tag)) {
			return e.tag, true
		}
	}
	return "", false
}

// Supported returns the tags in display order.
func Supported() []Tag {
	tags := make([]Tag, 0, len(supported))
	for i := len(supported) - 1; i >= 0; i-- {
		tags = append(tags, supported[i].tag)
	}
	return tags
}

// IsSupported reports whether t is one of the shipped tags.
func (t Tag) IsSupported() bool {
	_, ok := byTag[t]
	return ok
}

func (t Tag) String() string { return string(t) }

// BCP47 returns the x/text form of t, or xlanguage.Und for unsupported tags.
func (t Tag) BCP47() xlanguage.Tag {
	if e, ok := byTag[t]; ok {
		return e.bcp47
	}
	return xlanguage.Und
}

// DisplayName returns the language's name in its own script ("English",
// "简体中文"). Returns "Unknown" for empty input and the raw value for
// unsupported tags.
func (t Tag) DisplayName() string {
	trimmed := strings.TrimSpace(string(t))
	if trimmed == "" {
		return "Unknown"
	}
	e, ok := byTag[Tag(trimmed)]
	if !ok {
		return trimmed
	}
	if name := display.Self.Name(e.bcp47); name != "" {
		return name
	}
	return trimmed
}
