package site

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axiomai.dev/marketplace-web/internal/catalog"
	"axiomai.dev/marketplace-web/internal/pricing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "AXIOM AI", c.Name)
	assert.Equal(t, []string{"AXIOM AI", "Agents Marketplace"}, c.Hero.Title)
	assert.Equal(t, "/marketplace", c.Hero.PrimaryCTA.Href)
	assert.Equal(t, 6, c.Catalog.Len())
	assert.Equal(t, []string{"All", "RAG Agents", "N8N Workflows", "Fine-tuning", "Chatbots", "Analytics", "Automation"}, c.Catalog.Categories())

	l, ok := c.Catalog.Listing(2)
	require.True(t, ok)
	assert.Equal(t, "890", l.Downloads)
	assert.Equal(t, []string{"CRM", "Email", "Analytics"}, l.Tags)

	v := c.Plans.View(pricing.Annual)
	require.Len(t, v.Plans, 3)
	assert.Equal(t, "$23", v.Plans[0].Price)
	assert.Len(t, v.FAQs, 3)
}

func TestLoadedDatasetDownloadsOrder(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	st := catalog.DefaultFilterState()
	st.Sort = catalog.SortDownloads
	res := c.Catalog.Query(st)
	got := make([]int, 0, len(res.Listings))
	for _, l := range res.Listings {
		got = append(got, l.ID)
	}
	assert.Equal(t, []int{2, 5, 4, 3, 1, 6}, got)
}

func TestLoadFromDir(t *testing.T) {
	c, err := Load("fixtures")
	require.NoError(t, err)
	assert.Equal(t, 6, c.Catalog.Len())

	_, err = Load("does-not-exist")
	require.Error(t, err)
}

func TestLoadFSRejectsInvalidData(t *testing.T) {
	base := fstest.MapFS{
		"site.yaml":  {Data: []byte("name: Test\n")},
		"plans.yaml": {Data: []byte("plans: []\n")},
	}

	fsys := clone(base)
	fsys["agents.yaml"] = &fstest.MapFile{Data: []byte("categories: [A]\nlistings:\n  - {id: 1, name: x, category: B}\n")}
	_, err := LoadFS(fsys)
	require.ErrorIs(t, err, catalog.ErrInvalidDataset)

	fsys = clone(base)
	fsys["agents.yaml"] = &fstest.MapFile{Data: []byte("categories: [A]\nlistings:\n  - {id: 1, name: x, category: A, colour: red}\n")}
	_, err = LoadFS(fsys)
	require.Error(t, err, "unknown fields are rejected")

	fsys = clone(base)
	fsys["agents.yaml"] = &fstest.MapFile{Data: []byte("")}
	_, err = LoadFS(fsys)
	require.ErrorContains(t, err, "empty")

	fsys = clone(base)
	_, err = LoadFS(fsys)
	require.ErrorContains(t, err, "agents.yaml")
}

func TestLoadFSDefaultsName(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml":   {Data: []byte("hero:\n  chip: X\n")},
		"plans.yaml":  {Data: []byte("plans:\n  - {name: Solo, price: $5, period: /month}\n")},
		"agents.yaml": {Data: []byte("categories: [A]\nlistings: []\n")},
	}
	c, err := LoadFS(fsys)
	require.NoError(t, err)
	assert.Equal(t, "AXIOM AI", c.Name)
	assert.Equal(t, 0, c.Catalog.Len())
	assert.Equal(t, "$4", c.Plans.View(pricing.Annual).Plans[0].Price)
}

func clone(m fstest.MapFS) fstest.MapFS {
	out := fstest.MapFS{}
	for k, v := range m {
		out[k] = v
	}
	return out
}
