package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatasetValidates(t *testing.T) {
	cases := []struct {
		name       string
		categories []string
		listings   []Listing
	}{
		{"reserved category", []string{"All"}, nil},
		{"duplicate category", []string{"Chatbots", "Chatbots"}, nil},
		{"duplicate id", sampleCategories, []Listing{{ID: 1, Name: "a", Category: "Chatbots"}, {ID: 1, Name: "b", Category: "Chatbots"}}},
		{"unknown category", sampleCategories, []Listing{{ID: 1, Name: "a", Category: "Robots"}}},
		{"all as listing category", sampleCategories, []Listing{{ID: 1, Name: "a", Category: AllCategories}}},
		{"rating out of range", sampleCategories, []Listing{{ID: 1, Name: "a", Category: "Chatbots", Rating: 5.5}}},
		{"missing name", sampleCategories, []Listing{{ID: 1, Category: "Chatbots"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDataset(tc.categories, tc.listings)
			require.ErrorIs(t, err, ErrInvalidDataset)
		})
	}
}

func TestDatasetAccessors(t *testing.T) {
	ds, err := NewDataset(sampleCategories, sampleListings())
	require.NoError(t, err)

	assert.Equal(t, 6, ds.Len())
	assert.Equal(t, append([]string{AllCategories}, sampleCategories...), ds.Categories())
	assert.True(t, ds.HasCategory("Analytics"))
	assert.True(t, ds.HasCategory(AllCategories))
	assert.False(t, ds.HasCategory("analytics"))

	l, ok := ds.Listing(4)
	require.True(t, ok)
	assert.Equal(t, "Smart Chatbot Builder", l.Name)
	_, ok = ds.Listing(99)
	assert.False(t, ok)

	l.Tags[0] = "changed"
	again, _ := ds.Listing(4)
	assert.Equal(t, "No-code", again.Tags[0])

	cats := ds.Categories()
	cats[0] = "changed"
	assert.Equal(t, AllCategories, ds.Categories()[0])
}

func TestDatasetQueryScenarios(t *testing.T) {
	ds, err := NewDataset(sampleCategories, sampleListings())
	require.NoError(t, err)

	res := ds.Query(DefaultFilterState())
	assert.Len(t, res.Listings, ds.Len())
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, "Showing 6 agents", res.Summary())

	res = ds.Query(FilterState{Category: "RAG Agents", Sort: SortFeatured})
	assert.Equal(t, []int{1}, ids(res.Listings))
	assert.Equal(t, "Showing 1 agent in RAG Agents", res.Summary())

	res = ds.Query(FilterState{Category: AllCategories, Query: "cRm", Sort: SortFeatured})
	assert.Equal(t, []int{2}, ids(res.Listings))

	res = ds.Query(FilterState{Category: AllCategories, Query: "zzz-no-match", Sort: SortFeatured})
	assert.Empty(t, res.Listings)
	assert.Equal(t, "Showing 0 agents", res.Summary())
}

func TestNilDatasetIsEmpty(t *testing.T) {
	var ds *Dataset
	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, ds.Listings())
	assert.Empty(t, ds.Query(DefaultFilterState()).Listings)
}
