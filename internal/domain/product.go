package domain

import "strings"

// MaxOptionSlots is the number of generic option positions a catalog variant
// can vary along.
const MaxOptionSlots = 3

// Product is a catalog product as returned by the storefront API. Immutable
// once fetched; variants are only searched, never constructed here.
type Product struct {
	ID            int64              `json:"id"`
	Handle        string             `json:"handle"`
	Title         string             `json:"title"`
	Price         int64              `json:"price"`
	Description   string             `json:"description,omitempty"`
	FeaturedImage string             `json:"featured_image,omitempty"`
	Options       []OptionDefinition `json:"options"`
	Variants      []Variant          `json:"variants"`
}

// OptionDefinition binds an option name to a slot position (1..3).
type OptionDefinition struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Variant is one purchasable combination of option values. Option values are
// aligned with the product's option definitions by slot index.
type Variant struct {
	ID        int64  `json:"id"`
	Title     string `json:"title,omitempty"`
	Option1   string `json:"option1"`
	Option2   string `json:"option2"`
	Option3   string `json:"option3"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
}

// OptionValue returns the variant's value at the given slot (1..3), or the
// empty string for slots outside that range.
func (v Variant) OptionValue(slot int) string {
	switch slot {
	case 1:
		return v.Option1
	case 2:
		return v.Option2
	case 3:
		return v.Option3
	default:
		return ""
	}
}

// Normalize trims surrounding whitespace from option names and variant option
// values. Matching elsewhere is exact string equality, so trimming happens
// once at ingestion rather than per comparison.
func (p *Product) Normalize() {
	p.Handle = strings.TrimSpace(p.Handle)
	for i := range p.Options {
		p.Options[i].Name = strings.TrimSpace(p.Options[i].Name)
	}
	for i := range p.Variants {
		p.Variants[i].Option1 = strings.TrimSpace(p.Variants[i].Option1)
		p.Variants[i].Option2 = strings.TrimSpace(p.Variants[i].Option2)
		p.Variants[i].Option3 = strings.TrimSpace(p.Variants[i].Option3)
	}
}

// Selection is the shopper's chosen color and size for one interaction.
type Selection struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// Complete reports whether both color and size have been chosen.
func (s Selection) Complete() bool {
	return s.Color != "" && s.Size != ""
}

// Missing names the first unchosen field, for error messages. Returns the
// empty string when the selection is complete.
func (s Selection) Missing() string {
	if s.Color == "" {
		return "color"
	}
	if s.Size == "" {
		return "size"
	}
	return ""
}

// SlotAssignment is the resolved mapping from option slots to the color and
// size dimensions for one product. Derived once per product load.
type SlotAssignment struct {
	ColorSlot int `json:"color_slot"`
	SizeSlot  int `json:"size_slot"`
}

// CartLine is one (variant, quantity) pair destined for cart submission.
type CartLine struct {
	VariantID int64 `json:"id"`
	Quantity  int   `json:"quantity"`
}
