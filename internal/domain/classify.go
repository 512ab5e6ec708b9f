package domain

import "strings"

// DefaultSlotAssignment is the fallback used when option metadata does not
// identify a slot. The target catalog conventionally publishes size in the
// first slot and color in the second, so unclassified slots default to that
// layout rather than failing.
var DefaultSlotAssignment = SlotAssignment{ColorSlot: 2, SizeSlot: 1}

// Classifier decides which option slot holds color and which holds size for
// a product. Implementations must be deterministic: the same product always
// yields the same assignment.
type Classifier interface {
	ClassifySlots(p *Product) SlotAssignment
}

// NameClassifier assigns slots by inspecting declared option names. A slot
// whose name contains "color" or "colour" (any case) becomes the color slot;
// one containing "size" becomes the size slot. Unmatched dimensions fall back
// to DefaultSlotAssignment.
type NameClassifier struct{}

func (NameClassifier) ClassifySlots(p *Product) SlotAssignment {
	assignment := DefaultSlotAssignment

	for i, opt := range p.Options {
		name := strings.ToLower(opt.Name)
		slot := opt.Position
		if slot < 1 || slot > MaxOptionSlots {
			slot = i + 1
		}

		if strings.Contains(name, "color") || strings.Contains(name, "colour") {
			assignment.ColorSlot = slot
		} else if strings.Contains(name, "size") {
			assignment.SizeSlot = slot
		}
	}

	return assignment
}

// sizeTokens are option values recognized as garment sizes by the value-shape
// classifier, compared lowercased.
var sizeTokens = map[string]struct{}{
	"xxs": {}, "xs": {}, "s": {}, "m": {}, "l": {}, "xl": {}, "xxl": {}, "xxxl": {},
	"2xl": {}, "3xl": {},
	"extra small": {}, "small": {}, "medium": {}, "large": {}, "extra large": {},
	"one size": {}, "os": {},
}

func looksLikeSize(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if _, ok := sizeTokens[v]; ok {
		return true
	}
	// Numeric sizes (shoe or waist sizes) also count.
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValueClassifier assigns slots by inspecting the shape of the values variants
// carry: the slot where most distinct values look like size tokens becomes
// the size slot, and the first other populated slot becomes the color slot.
// Products whose values identify neither dimension fall back to
// DefaultSlotAssignment.
type ValueClassifier struct{}

func (ValueClassifier) ClassifySlots(p *Product) SlotAssignment {
	assignment := DefaultSlotAssignment

	sizeSlot := 0
	for slot := 1; slot <= MaxOptionSlots; slot++ {
		values := ListOptionValues(p.Variants, slot)
		if len(values) == 0 {
			continue
		}
		sized := 0
		for _, v := range values {
			if looksLikeSize(v) {
				sized++
			}
		}
		if sized*2 > len(values) {
			sizeSlot = slot
			break
		}
	}

	if sizeSlot == 0 {
		return assignment
	}
	assignment.SizeSlot = sizeSlot

	for slot := 1; slot <= MaxOptionSlots; slot++ {
		if slot == sizeSlot {
			continue
		}
		if len(ListOptionValues(p.Variants, slot)) > 0 {
			assignment.ColorSlot = slot
			break
		}
	}

	return assignment
}
