package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choicefetch/src/core/domain"
	"choicefetch/src/infra/db/dbtest"
)

func runChoices(t *testing.T, args ...string) string {
	t.Helper()
	choicesQuery, choicesRepeat, choicesJSON = "", 1, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"choices"}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestChoicesCommandJSON(t *testing.T) {
	t.Setenv("DSN", dbtest.SeedProducts(t,
		dbtest.Product{SKU: dbtest.Text("A1"), Description: dbtest.Text("Widget")},
		dbtest.Product{SKU: dbtest.Text("A2")},
	))
	t.Setenv("APP_LOG_LEVEL", "error")

	out := runChoices(t, "--json", "--repeat", "3")

	var got []domain.Choice
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []domain.Choice{
		{ID: "A1", Description: "Widget"},
		{ID: "A2", Description: ""},
	}, got)
}

func TestChoicesCommandTable(t *testing.T) {
	t.Setenv("DSN", dbtest.SeedProducts(t,
		dbtest.Product{SKU: dbtest.Text("A1"), Description: dbtest.Text("Widget")},
	))
	t.Setenv("APP_LOG_LEVEL", "error")

	out := runChoices(t, "--query", "SELECT sku, description FROM products")

	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "Widget")
}

func TestChoicesCommandMissingDSN(t *testing.T) {
	t.Setenv("DSN", "")
	choicesQuery, choicesRepeat, choicesJSON = "", 1, false

	rootCmd.SetArgs([]string{"choices"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "postgres://bot:xxxxx@db:5432/fake_data", redact("postgres://bot:secret@db:5432/fake_data"))
	assert.Equal(t, "sqlite:///tmp/a.db", redact("sqlite:///tmp/a.db"))
}
