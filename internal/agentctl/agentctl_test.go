package agentctl

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(dataDirEnv, "")
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd.PersistentFlags().Lookup("data-dir"))
	output := cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "table", output.DefValue)
}

func TestAgentsListJSON(t *testing.T) {
	out, err := execute(t, "agents", "list", "--query", "ai", "-o", "json")
	require.NoError(t, err)

	var got listOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	ids := []int{}
	for _, l := range got.Listings {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []int{1, 3, 6, 2, 5}, ids)
	assert.Equal(t, "Showing 5 agents", got.Summary)
	assert.Equal(t, "All", got.Category)
	assert.Equal(t, "featured", got.Sort)
}

func TestAgentsListYAMLSorted(t *testing.T) {
	out, err := execute(t, "agents", "list", "--sort", "downloads", "-o", "yaml")
	require.NoError(t, err)

	var got listOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	ids := []int{}
	for _, l := range got.Listings {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []int{2, 5, 4, 3, 1, 6}, ids)
}

func TestAgentsListTable(t *testing.T) {
	out, err := execute(t, "agents", "list", "--category", "RAG Agents")
	require.NoError(t, err)
	assert.Contains(t, out, "RAG Knowledge Assistant")
	assert.NotContains(t, out, "Smart Chatbot Builder")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Showing 1 agent in RAG Agents"))
}

func TestAgentsGet(t *testing.T) {
	out, err := execute(t, "agents", "get", "4", "-o", "json")
	require.NoError(t, err)
	var got struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Smart Chatbot Builder", got.Name)

	_, err = execute(t, "agents", "get", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = execute(t, "agents", "get", "four")
	require.Error(t, err)
}

func TestCategories(t *testing.T) {
	out, err := execute(t, "categories", "-o", "json")
	require.NoError(t, err)
	var cats []string
	require.NoError(t, json.Unmarshal([]byte(out), &cats))
	assert.Equal(t, []string{"All", "RAG Agents", "N8N Workflows", "Fine-tuning", "Chatbots", "Analytics", "Automation"}, cats)

	out, err = execute(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Automation")
}

func TestPlansAnnual(t *testing.T) {
	out, err := execute(t, "plans", "--billing", "annual")
	require.NoError(t, err)
	assert.Contains(t, out, "$23")
	assert.Contains(t, out, "$79")
	assert.Contains(t, out, "Custom")
	assert.Contains(t, out, "Billing: annual (Save 20%)")

	out, err = execute(t, "plans", "-o", "json")
	require.NoError(t, err)
	var view struct {
		Billing string `json:"billing"`
		Plans   []struct {
			Price string `json:"price"`
		} `json:"plans"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "monthly", view.Billing)
	assert.Equal(t, "$29", view.Plans[0].Price)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := execute(t, "categories", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestDataDirOverride(t *testing.T) {
	_, err := execute(t, "categories", "--data-dir", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	dir := t.TempDir()
	for _, name := range []string{"site.yaml", "agents.yaml", "plans.yaml"} {
		raw, err := os.ReadFile(filepath.Join("..", "site", "fixtures", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), raw, 0o600))
	}
	out, err := execute(t, "agents", "list", "--data-dir", dir, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 6 agents")
}
