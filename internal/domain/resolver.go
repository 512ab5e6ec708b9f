package domain

// FindVariant scans variants for the first whose values at the assigned color
// and size slots equal the selection. Values are trimmed at ingestion, so
// comparison here is exact string equality. The second return value is false
// when no variant matches. The selection must be complete; callers enforce
// that before resolving.
func FindVariant(variants []Variant, assignment SlotAssignment, selection Selection) (Variant, bool) {
	for _, v := range variants {
		if v.OptionValue(assignment.ColorSlot) == selection.Color &&
			v.OptionValue(assignment.SizeSlot) == selection.Size {
			return v, true
		}
	}
	return Variant{}, false
}

// ListOptionValues extracts the distinct, non-empty values present at the
// given slot across all variants, preserving first-encountered order.
func ListOptionValues(variants []Variant, slot int) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, v := range variants {
		value := v.OptionValue(slot)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values
}
