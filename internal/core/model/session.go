package model

import (
	"fmt"
	"image/color"
	"strings"
)

// Category classifies a session.
type Category string

const (
	CategoryMeditation Category = "meditation"
	CategoryBreathing  Category = "breathing"
	CategorySleep      Category = "sleep"
)

// Valid reports whether the category is one of the known values.
func (category Category) Valid() bool {
	switch category {
	case CategoryMeditation, CategoryBreathing, CategorySleep:
		return true
	default:
		return false
	}
}

// Session describes one catalog entry.
type Session struct {
	ID              string
	Title           string
	DurationMinutes int
	Category        Category
	Color           Gradient
	Icon            string
}

// DurationSeconds returns the full session length in seconds.
func (session Session) DurationSeconds() int {
	return session.DurationMinutes * 60
}

// IsBreathing reports whether the session runs the breathing phase cycle.
func (session Session) IsBreathing() bool {
	return session.Category == CategoryBreathing
}

// Gradient is a pair of theme color tokens, e.g. "orange-400" to "pink-500".
type Gradient struct {
	From string
	To   string
}

// Token renders the gradient the way the theme names it.
func (gradient Gradient) Token() string {
	return fmt.Sprintf("from-%s to-%s", gradient.From, gradient.To)
}

// RGB resolves both stops to concrete colors. Unknown tokens resolve to the
// brand blue.
func (gradient Gradient) RGB() (color.NRGBA, color.NRGBA) {
	return ResolveColor(gradient.From), ResolveColor(gradient.To)
}

// Hex resolves both stops to "#rrggbb" strings.
func (gradient Gradient) Hex() (string, string) {
	from, to := gradient.RGB()
	return toHex(from), toHex(to)
}

// BrandBlue is the application theme color.
var BrandBlue = color.NRGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF}

// BrandPurple is the secondary accent.
var BrandPurple = color.NRGBA{R: 0xAF, G: 0x52, B: 0xDE, A: 0xFF}

var palette = map[string]uint32{
	"orange-400": 0xfb923c,
	"pink-500":   0xec4899,
	"blue-400":   0x60a5fa,
	"blue-500":   0x3b82f6,
	"teal-400":   0x2dd4bf,
	"teal-500":   0x14b8a6,
	"purple-400": 0xc084fc,
	"purple-600": 0x9333ea,
	"indigo-500": 0x6366f1,
	"cyan-400":   0x22d3ee,
	"ios-blue":   0x007aff,
	"ios-purple": 0xaf52de,
	"ios-pink":   0xff2d55,
	"ios-orange": 0xff9500,
	"ios-teal":   0x5ac8fa,
	"ios-gray":   0x8e8e93,
}

// ResolveColor maps a theme token to its color.
func ResolveColor(token string) color.NRGBA {
	value, ok := palette[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return BrandBlue
	}
	return color.NRGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xFF,
	}
}

func toHex(value color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", value.R, value.G, value.B)
}
