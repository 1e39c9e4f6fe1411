package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/daikw/dialoguecast/internal/dialogue"
)

const (
	voicesResourceURI  = "podcast://google-voices"
	formatsResourceURI = "podcast://formats"
	guideResourceURI   = "podcast://guide"
)

// registerResources wires the static catalog resources onto the server.
func registerResources(s *server.MCPServer) {
	s.AddResource(mcp.NewResource(
		voicesResourceURI,
		"Google TTS Multi-Speaker Voices",
		mcp.WithResourceDescription("Available Google Cloud TTS multi-speaker voices"),
		mcp.WithMIMEType("application/json"),
	), handleVoicesResource)

	s.AddResource(mcp.NewResource(
		formatsResourceURI,
		"Podcast Formats",
		mcp.WithResourceDescription("Available podcast formats for Google TTS"),
		mcp.WithMIMEType("application/json"),
	), handleFormatsResource)

	s.AddResource(mcp.NewResource(
		guideResourceURI,
		"Google TTS Podcast Guide",
		mcp.WithResourceDescription("Guide for using Google Cloud TTS for podcasts"),
		mcp.WithMIMEType("text/markdown"),
	), handleGuideResource)
}

func handleVoicesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	payload := map[string]any{
		"speakers":  dialogue.Speakers,
		"voice":     "en-US-Studio-MultiSpeaker",
		"languages": []string{"en-US"},
		"note":      "Google's multi-speaker voice supports up to 4 distinct speakers (R, S, T, U)",
	}
	return jsonResource(voicesResourceURI, payload)
}

func handleFormatsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(formatsResourceURI, dialogue.AllFormats())
}

func handleGuideResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      guideResourceURI,
			MIMEType: "text/markdown",
			Text:     podcastGuide,
		},
	}, nil
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

const podcastGuide = `# Google Cloud TTS Podcast Generator Guide

## Overview
This podcast generator uses Google Cloud Text-to-Speech's multi-speaker feature to create natural dialogues with distinct voices.

## Key Features
- **Multi-Speaker Support**: Up to 4 distinct speakers (R, S, T, U)
- **Natural Conversations**: Optimized for dialogue flow
- **Simple Format**: Easy-to-use script format
- **High Quality**: Google's Studio-quality voices

## Available Speakers
- **R**: Warm, engaging voice (great for hosts)
- **S**: Clear, analytical voice (perfect for experts)
- **T**: Dynamic, energetic voice (ideal for commentary)
- **U**: Thoughtful, contemplative voice (good for deeper insights)

## Podcast Formats
1. **dialogue**: Two-person conversation
2. **interview**: Host and expert Q&A
3. **roundtable**: Multi-person discussion (up to 4)
4. **storytelling**: Narrative with character voices
5. **educational**: Teacher-student format
6. **debate**: Point-counterpoint with moderator

## Script Format
Use the pipe format for best results:
` + "```" + `
R|Welcome to our show!
S|Thanks for having me.
R|Let's dive into today's topic.
` + "```" + `

## Usage Example
` + "```" + `
# Generate script
generate_google_script(topic="Future of Technology", format_type="interview", duration_minutes=5)

# Create audio
create_google_audio(script="[Generated script]", output_filename="tech_podcast.mp3")
` + "```" + `

## Requirements
- Google Cloud account
- Text-to-Speech API enabled
- Authentication configured (GOOGLE_APPLICATION_CREDENTIALS or ADC)`
