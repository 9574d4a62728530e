package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemTypeCategory(t *testing.T) {
	tests := []struct {
		itemType ItemType
		want     Category
	}{
		{TypeVega, CategoryPlot},
		{TypeMatplotlibFigure, CategoryPlot},
		{TypeFile, CategoryArtifact},
		{TypeBoolean, CategoryInfo},
		{TypeInteger, CategoryInfo},
		{TypeNumber, CategoryInfo},
		{TypeString, CategoryInfo},
		{TypeAny, CategoryInfo},
		{TypeArray, CategoryInfo},
		{TypeDate, CategoryInfo},
		{TypeDatetime, CategoryInfo},
		{TypeHTML, CategoryInfo},
		{TypeMarkdown, CategoryInfo},
		{TypeDataFrame, CategoryInfo},
		{TypeImage, CategoryInfo},
		{TypeCVResults, CategoryInfo},
		{TypeNumpyArray, CategoryInfo},
		{"plotly", CategoryUnknown},
		{"", CategoryUnknown},
		{"VEGA", CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(string(tt.itemType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.itemType.Category())
		})
	}
}

func TestAllItemTypesPartition(t *testing.T) {
	counts := map[Category]int{}
	seen := map[ItemType]bool{}
	for _, it := range AllItemTypes {
		require.False(t, seen[it], "duplicate item type %q", it)
		seen[it] = true
		assert.True(t, it.IsKnown(), "item type %q has no category", it)
		counts[it.Category()]++
	}

	assert.Len(t, AllItemTypes, 17)
	assert.Equal(t, 2, counts[CategoryPlot])
	assert.Equal(t, 1, counts[CategoryArtifact])
	assert.Equal(t, 14, counts[CategoryInfo])
	assert.Zero(t, counts[CategoryUnknown])
}

func TestParseCategory(t *testing.T) {
	for _, c := range []Category{CategoryPlot, CategoryArtifact, CategoryInfo, CategoryUnknown} {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("chart")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestParseLayoutSize(t *testing.T) {
	tests := []struct {
		in      string
		want    LayoutSize
		wantErr error
	}{
		{"small", SizeSmall, nil},
		{"medium", SizeMedium, nil},
		{"large", SizeLarge, nil},
		{"huge", "", ErrInvalidLayoutSize},
		{"", "", ErrInvalidLayoutSize},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLayoutSize(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}
