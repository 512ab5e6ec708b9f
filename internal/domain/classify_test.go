package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameClassifier_MatchesDeclaredNames(t *testing.T) {
	tests := []struct {
		name    string
		options []OptionDefinition
		want    SlotAssignment
	}{
		{
			name: "size first color second",
			options: []OptionDefinition{
				{Name: "Size", Position: 1},
				{Name: "Color", Position: 2},
			},
			want: SlotAssignment{ColorSlot: 2, SizeSlot: 1},
		},
		{
			name: "color first size second",
			options: []OptionDefinition{
				{Name: "Color", Position: 1},
				{Name: "Size", Position: 2},
			},
			want: SlotAssignment{ColorSlot: 1, SizeSlot: 2},
		},
		{
			name: "british spelling and mixed case",
			options: []OptionDefinition{
				{Name: "Shell COLOUR", Position: 1},
				{Name: "size (EU)", Position: 2},
			},
			want: SlotAssignment{ColorSlot: 1, SizeSlot: 2},
		},
		{
			name: "color in third slot",
			options: []OptionDefinition{
				{Name: "Size", Position: 1},
				{Name: "Material", Position: 2},
				{Name: "Color", Position: 3},
			},
			want: SlotAssignment{ColorSlot: 3, SizeSlot: 1},
		},
		{
			name: "unrecognizable names fall back to defaults",
			options: []OptionDefinition{
				{Name: "Style", Position: 1},
				{Name: "Material", Position: 2},
			},
			want: DefaultSlotAssignment,
		},
		{
			name: "only size recognized keeps default color slot",
			options: []OptionDefinition{
				{Name: "Size", Position: 3},
				{Name: "Finish", Position: 1},
			},
			want: SlotAssignment{ColorSlot: 2, SizeSlot: 3},
		},
		{
			name:    "zero declared options",
			options: nil,
			want:    DefaultSlotAssignment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Options: tt.options}
			assert.Equal(t, tt.want, NameClassifier{}.ClassifySlots(p))
		})
	}
}

func TestNameClassifier_MissingPositionFallsBackToIndex(t *testing.T) {
	p := &Product{Options: []OptionDefinition{
		{Name: "Color"},
		{Name: "Size"},
	}}
	assert.Equal(t, SlotAssignment{ColorSlot: 1, SizeSlot: 2}, NameClassifier{}.ClassifySlots(p))
}

func TestNameClassifier_Idempotent(t *testing.T) {
	p := &Product{Options: []OptionDefinition{
		{Name: "Size", Position: 1},
		{Name: "Color", Position: 2},
	}}
	first := NameClassifier{}.ClassifySlots(p)
	second := NameClassifier{}.ClassifySlots(p)
	assert.Equal(t, first, second)
}

func TestValueClassifier_DetectsSizeTokens(t *testing.T) {
	p := &Product{Variants: []Variant{
		{Option1: "Crimson", Option2: "S"},
		{Option1: "Crimson", Option2: "M"},
		{Option1: "Teal", Option2: "L"},
	}}
	assert.Equal(t, SlotAssignment{ColorSlot: 1, SizeSlot: 2}, ValueClassifier{}.ClassifySlots(p))
}

func TestValueClassifier_NumericSizes(t *testing.T) {
	p := &Product{Variants: []Variant{
		{Option1: "38", Option2: "Brown"},
		{Option1: "40", Option2: "Brown"},
		{Option1: "42", Option2: "Black"},
	}}
	assert.Equal(t, SlotAssignment{ColorSlot: 2, SizeSlot: 1}, ValueClassifier{}.ClassifySlots(p))
}

func TestValueClassifier_NoSizeLikeValuesFallsBack(t *testing.T) {
	p := &Product{Variants: []Variant{
		{Option1: "Matte", Option2: "Walnut"},
		{Option1: "Gloss", Option2: "Oak"},
	}}
	assert.Equal(t, DefaultSlotAssignment, ValueClassifier{}.ClassifySlots(p))
}

func TestValueClassifier_NoVariantsFallsBack(t *testing.T) {
	assert.Equal(t, DefaultSlotAssignment, ValueClassifier{}.ClassifySlots(&Product{}))
}

func TestLooksLikeSize(t *testing.T) {
	assert.True(t, looksLikeSize("M"))
	assert.True(t, looksLikeSize("xxl"))
	assert.True(t, looksLikeSize("  Medium "))
	assert.True(t, looksLikeSize("One Size"))
	assert.True(t, looksLikeSize("42"))
	assert.False(t, looksLikeSize("Black"))
	assert.False(t, looksLikeSize(""))
	assert.False(t, looksLikeSize("M1"))
}
