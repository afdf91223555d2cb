package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPICommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := openapiCommand()
	c.SetOut(&out)
	c.SetArgs([]string{"--format", "json"})
	require.NoError(t, c.Execute())

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))

	assert.Equal(t, "Inventory Tracker API", doc.Info.Title)
	for _, p := range []string{
		"/api/v1/products/{uuid}/inventory/check",
		"/api/v1/inventory/check",
		"/api/v1/inventory/statistics",
		"/api/v1/stores/{id}/reactivate",
		"/api/v1/inventory/run",
		"/api/v1/scores/rescore",
	} {
		assert.Contains(t, doc.Paths, p)
	}
}
