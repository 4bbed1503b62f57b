package catalog

import (
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCategories = []string{"RAG Agents", "N8N Workflows", "Fine-tuning", "Chatbots", "Analytics", "Automation"}

func sampleListings() []Listing {
	return []Listing{
		{ID: 1, Name: "RAG Knowledge Assistant", Category: "RAG Agents", Description: "Advanced retrieval-augmented generation system for document Q&A", Price: "$49/month", Rating: 4.8, Downloads: "1.2k", Featured: true, Tags: []string{"Vector DB", "OpenAI", "LangChain"}},
		{ID: 2, Name: "N8N Sales Automation", Category: "N8N Workflows", Description: "Complete CRM integration with lead scoring and email sequences", Price: "$29/month", Rating: 4.6, Downloads: "890", Featured: false, Tags: []string{"CRM", "Email", "Analytics"}},
		{ID: 3, Name: "GPT-4 Fine-tuned Support", Category: "Fine-tuning", Description: "Customer support agent trained on your company data", Price: "$99/month", Rating: 4.9, Downloads: "2.1k", Featured: true, Tags: []string{"GPT-4", "Support", "Custom"}},
		{ID: 4, Name: "Smart Chatbot Builder", Category: "Chatbots", Description: "No-code chatbot with NLU and multi-platform deployment", Price: "$19/month", Rating: 4.3, Downloads: "3.5k", Featured: false, Tags: []string{"No-code", "Multi-platform", "NLU"}},
		{ID: 5, Name: "Business Analytics AI", Category: "Analytics", Description: "AI-powered insights from your business data and metrics", Price: "$79/month", Rating: 4.7, Downloads: "654", Featured: false, Tags: []string{"BI", "Insights", "Reports"}},
		{ID: 6, Name: "Marketing Automation Suite", Category: "Automation", Description: "Complete marketing funnel automation with AI optimization", Price: "$59/month", Rating: 4.5, Downloads: "1.8k", Featured: true, Tags: []string{"Marketing", "Funnel", "AI"}},
	}
}

func ids(ls []Listing) []int {
	out := make([]int, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}

func TestParseDownloads(t *testing.T) {
	cases := map[string]int{
		"1.2k":  1,
		"890":   890,
		"2.1k":  2,
		"3.5k":  3,
		"654":   654,
		"1.8k":  1,
		"12M":   12,
		"k12":   0,
		"":      0,
		" 42":   42,
		"-3":    -3,
		"+7x":   7,
		"1,200": 1,

		"99999999999999999999999k":  math.MaxInt,
		"-99999999999999999999999k": -math.MaxInt,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseDownloads(in), "ParseDownloads(%q)", in)
	}
}

func TestFilterDownloadsHugeCountSortsFirst(t *testing.T) {
	listings := sampleListings()
	listings[5].Downloads = "184467440737095516160"
	got := Filter(listings, FilterState{Category: AllCategories, Sort: SortDownloads})
	assert.Equal(t, []int{6, 2, 5, 4, 3, 1}, ids(got))
}

func TestFilterDefaultStateFeaturedFirst(t *testing.T) {
	got := Filter(sampleListings(), DefaultFilterState())
	require.Len(t, got, 6)
	assert.Equal(t, []int{1, 3, 6, 2, 4, 5}, ids(got))
}

func TestFilterSortOrders(t *testing.T) {
	cases := []struct {
		sort SortKey
		want []int
	}{
		{SortFeatured, []int{1, 3, 6, 2, 4, 5}},
		{SortRating, []int{3, 1, 5, 2, 6, 4}},
		{SortDownloads, []int{2, 5, 4, 3, 1, 6}},
		{SortKey("newest"), []int{1, 2, 3, 4, 5, 6}},
		{SortKey(""), []int{1, 2, 3, 4, 5, 6}},
	}
	for _, tc := range cases {
		t.Run(string(tc.sort), func(t *testing.T) {
			st := DefaultFilterState()
			st.Sort = tc.sort
			assert.Equal(t, tc.want, ids(Filter(sampleListings(), st)))
		})
	}
}

func TestFilterCategoryExactMatch(t *testing.T) {
	st := DefaultFilterState()
	st.Category = "RAG Agents"
	got := Filter(sampleListings(), st)
	assert.Equal(t, []int{1}, ids(got))

	st.Category = "rag agents"
	assert.Empty(t, Filter(sampleListings(), st), "category match is case-sensitive")

	for _, c := range sampleCategories {
		st.Category = c
		for _, l := range Filter(sampleListings(), st) {
			assert.Equal(t, c, l.Category)
		}
	}
}

func TestFilterQueryMatchesAnyField(t *testing.T) {
	cases := []struct {
		query string
		want  []int
	}{
		{"crm", []int{2}},
		{"CRM", []int{2}},
		{"langchain", []int{1}},
		{"SUPPORT", []int{3}},
		{"automation", []int{6, 2}},
		{"ai", []int{1, 3, 6, 2, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			st := DefaultFilterState()
			st.Query = tc.query
			got := Filter(sampleListings(), st)
			assert.Equal(t, tc.want, ids(got))
			q := strings.ToLower(tc.query)
			for _, l := range got {
				hit := strings.Contains(strings.ToLower(l.Name), q) || strings.Contains(strings.ToLower(l.Description), q)
				for _, tag := range l.Tags {
					hit = hit || strings.Contains(strings.ToLower(tag), q)
				}
				assert.True(t, hit, "listing %d should contain %q", l.ID, tc.query)
			}
		})
	}
}

func TestFilterCombinesCategoryAndQuery(t *testing.T) {
	st := FilterState{Category: "Automation", Query: "crm", Sort: SortFeatured}
	assert.Empty(t, Filter(sampleListings(), st))

	st.Query = "funnel"
	assert.Equal(t, []int{6}, ids(Filter(sampleListings(), st)))
}

func TestFilterNoMatchIsEmpty(t *testing.T) {
	st := DefaultFilterState()
	st.Query = "zzz-no-match"
	got := Filter(sampleListings(), st)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, "Showing 0 agents", Summary(len(got), st.Category))
}

func TestFilterIsPureAndIdempotent(t *testing.T) {
	src := sampleListings()
	st := FilterState{Category: AllCategories, Query: "a", Sort: SortDownloads}
	first := Filter(src, st)
	second := Filter(src, st)
	assert.Equal(t, first, second)
	assert.Equal(t, sampleListings(), src, "input must not be reordered or mutated")

	require.NotEmpty(t, first)
	first[0].Tags[0] = "mutated"
	assert.Equal(t, sampleListings(), src, "results must not share tag storage with the input")
}

func TestFilterStableForEqualKeys(t *testing.T) {
	src := []Listing{
		{ID: 10, Name: "a", Rating: 4, Downloads: "1.9k"},
		{ID: 11, Name: "b", Rating: 5, Downloads: "1k"},
		{ID: 12, Name: "c", Rating: 4, Downloads: "1"},
		{ID: 13, Name: "d", Rating: 4, Downloads: "abc"},
	}
	st := FilterState{Category: AllCategories, Sort: SortRating}
	assert.Equal(t, []int{11, 10, 12, 13}, ids(Filter(src, st)))

	st.Sort = SortDownloads
	assert.Equal(t, []int{10, 11, 12, 13}, ids(Filter(src, st)))

	st.Sort = SortFeatured
	assert.Equal(t, []int{10, 11, 12, 13}, ids(Filter(src, st)))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Showing 6 agents", Summary(6, AllCategories))
	assert.Equal(t, "Showing 1 agent in RAG Agents", Summary(1, "RAG Agents"))
	assert.Equal(t, "Showing 0 agents in Chatbots", Summary(0, "Chatbots"))
}

func TestFilterStateFromValues(t *testing.T) {
	st := FilterStateFromValues(nil)
	assert.Equal(t, DefaultFilterState(), st)

	st = FilterStateFromValues(url.Values{"category": {"Chatbots"}, "q": {"NLU"}, "sort": {"rating"}})
	assert.Equal(t, FilterState{Category: "Chatbots", Query: "NLU", Sort: SortRating}, st)

	round := FilterStateFromValues(st.Values())
	assert.Equal(t, st, round)
	assert.Empty(t, DefaultFilterState().Values().Encode())
}

func TestSortKeyLabel(t *testing.T) {
	assert.Equal(t, "Top Rated", SortRating.Label())
	assert.Equal(t, "Most Downloaded", SortDownloads.Label())
	assert.Equal(t, "custom", SortKey("custom").Label())
	require.Len(t, SortOptions(), 3)
}
