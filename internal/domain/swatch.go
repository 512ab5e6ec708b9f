package domain

import "strings"

// DefaultSwatchHex is the neutral swatch used for color names outside the
// lexicon.
const DefaultSwatchHex = "#CCCCCC"

// swatchHex maps known color names to display hex values.
var swatchHex = map[string]string{
	"red":       "#B20F36",
	"grey":      "#AFAFB7",
	"gray":      "#AFAFB7",
	"black":     "#000000",
	"white":     "#FFFFFF",
	"blue":      "#0066CC",
	"green":     "#00AA44",
	"yellow":    "#FFDD00",
	"pink":      "#FF69B4",
	"purple":    "#8A2BE2",
	"orange":    "#FF8800",
	"brown":     "#8B4513",
	"beige":     "#F5F5DC",
	"navy":      "#000080",
	"maroon":    "#800000",
	"teal":      "#008080",
	"lime":      "#00FF00",
	"olive":     "#808000",
	"silver":    "#C0C0C0",
	"gold":      "#FFD700",
	"coral":     "#FF7F50",
	"salmon":    "#FA8072",
	"khaki":     "#F0E68C",
	"tan":       "#D2B48C",
	"crimson":   "#DC143C",
	"indigo":    "#4B0082",
	"violet":    "#EE82EE",
	"turquoise": "#40E0D0",
	"mint":      "#98FB98",
}

// ResolveDisplayColor maps a color name to a display hex value. Lookup order:
// exact match, lowercased match, then DefaultSwatchHex. Always returns a
// value.
func ResolveDisplayColor(name string) string {
	if name == "" {
		return DefaultSwatchHex
	}
	if hex, ok := swatchHex[name]; ok {
		return hex
	}
	if hex, ok := swatchHex[strings.ToLower(name)]; ok {
		return hex
	}
	return DefaultSwatchHex
}
