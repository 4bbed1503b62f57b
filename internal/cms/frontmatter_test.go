package cms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, lang, slug, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages", lang), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", lang, slug+".md"), []byte(body), 0o600))
}

func TestSplitFrontMatter(t *testing.T) {
	cases := []struct {
		name, in, header, body string
	}{
		{"none", "# Title\n", "", "# Title\n"},
		{"fenced", "---\ntitle: A\n---\n\nBody\n", "title: A\n", "Body\n"},
		{"unterminated", "---\ntitle: A\nBody", "", "---\ntitle: A\nBody"},
		{"bom", "\ufeff---\ntitle: A\n---\nBody", "title: A\n", "Body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header, body := splitFrontMatter(tc.in)
			assert.Equal(t, tc.header, header)
			assert.Equal(t, tc.body, body)
		})
	}
}

func TestParseMarkdownPage(t *testing.T) {
	src := "---\ntitle: Terms\nversion: \"3\"\nupdated_at: 2025/03/04\nseo:\n  description: Rules\nbanner:\n  variant: warning\n  message: Changed\n---\nText"
	page, err := parseMarkdownPage(src)
	require.NoError(t, err)
	assert.Equal(t, "Terms", page.Title)
	assert.Equal(t, "3", page.Version)
	assert.Equal(t, 3, int(page.UpdatedAt.Month()))
	assert.Equal(t, "Rules", page.SEO.Description)
	require.NotNil(t, page.Banner)
	assert.Equal(t, "warning", page.Banner.Variant)
	assert.Equal(t, "Text", page.Body)

	_, err = parseMarkdownPage("---\ntitle: [unclosed\n---\nx")
	assert.Error(t, err)
}

func TestPrettifySlug(t *testing.T) {
	assert.Equal(t, "Launch Notes", prettifySlug("launch-notes"))
	assert.Equal(t, "Faq", prettifySlug("faq"))
	assert.Equal(t, "", prettifySlug(""))
}
