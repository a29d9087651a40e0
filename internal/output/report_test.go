package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() Summary {
	return Summary{
		Source:      "./openapi.yaml",
		Title:       "Petstore",
		Version:     "1.0.0",
		OutputDir:   "./src/api/generated",
		Operations:  7,
		Tags:        3,
		Integration: true,
		Files:       []string{"client.ts", "queryKeys.ts"},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestWriteSummaryText(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteSummary(&b, sampleSummary(), FormatText))

	out := b.String()
	assert.Contains(t, out, "Petstore 1.0.0")
	assert.Contains(t, out, "7 operations across 3 tags")
	assert.Contains(t, out, "2 files written to ./src/api/generated")
	assert.Contains(t, out, "openapi-ts integration: configured")
}

func TestWriteSummaryTextDryRun(t *testing.T) {
	s := sampleSummary()
	s.DryRun = true

	var b strings.Builder
	require.NoError(t, WriteSummary(&b, s, FormatText))
	assert.Contains(t, b.String(), "planned for")
	assert.NotContains(t, b.String(), "written to")
}

func TestWriteSummaryJSON(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteSummary(&b, sampleSummary(), FormatJSON))

	var decoded Summary
	require.NoError(t, json.Unmarshal([]byte(b.String()), &decoded))
	assert.Equal(t, sampleSummary(), decoded)
}
