package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readText(t *testing.T, contents []mcp.ResourceContents) mcp.TextResourceContents {
	t.Helper()
	require.Len(t, contents, 1)
	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok, "expected text resource contents")
	return tc
}

func TestVoicesResource(t *testing.T) {
	contents, err := handleVoicesResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)

	tc := readText(t, contents)
	assert.Equal(t, voicesResourceURI, tc.URI)
	assert.Equal(t, "application/json", tc.MIMEType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &payload))
	assert.Equal(t, "en-US-Studio-MultiSpeaker", payload["voice"])

	speakers, ok := payload["speakers"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, speakers, 4)
}

func TestFormatsResource(t *testing.T) {
	contents, err := handleFormatsResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)

	tc := readText(t, contents)
	var formats map[string]any
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &formats))
	assert.Contains(t, formats, "dialogue")
	assert.Contains(t, formats, "debate")
}

func TestGuideResource(t *testing.T) {
	contents, err := handleGuideResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)

	tc := readText(t, contents)
	assert.Equal(t, "text/markdown", tc.MIMEType)
	assert.Contains(t, tc.Text, "R|Welcome to our show!")
	assert.Contains(t, tc.Text, "Up to 4 distinct speakers (R, S, T, U)")
}
