package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/daikw/dialoguecast/internal/dialogue"
	"github.com/daikw/dialoguecast/internal/tts"
)

// ToolDefs returns the MCP tool definitions.
func ToolDefs() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "generate_google_script",
			Description: "Generate a podcast script optimized for Google's multi-speaker TTS",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"topic": map[string]any{
						"type":        "string",
						"description": "The main topic for the podcast",
					},
					"format_type": map[string]any{
						"type":        "string",
						"description": "Podcast format",
						"enum":        dialogue.FormatNames(),
						"default":     dialogue.DefaultFormat,
					},
					"duration_minutes": map[string]any{
						"type":        "integer",
						"description": "Target duration in minutes (1-30)",
						"minimum":     1,
						"maximum":     30,
						"default":     5,
					},
					"additional_context": map[string]any{
						"type":        "object",
						"description": "Additional context (key_points, tone, etc.)",
					},
				},
				Required: []string{"topic"},
			},
		},
		{
			Name:        "create_google_audio",
			Description: "Convert a multi-speaker script to audio using Google Cloud TTS",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"script": map[string]any{
						"type":        "string",
						"description": "Script with format: R|Text or S|Text etc.",
					},
					"output_filename": map[string]any{
						"type":        "string",
						"description": "Output filename",
						"default":     "google_podcast.mp3",
					},
					"language_code": map[string]any{
						"type":        "string",
						"description": "Language code",
						"default":     "en-US",
					},
					"provider": map[string]any{
						"type":        "string",
						"description": "Synthesis provider: google, polly",
						"default":     "google",
					},
				},
				Required: []string{"script"},
			},
		},
		{
			Name:        "convert_to_google_format",
			Description: "Convert a standard dialogue script to Google's multi-speaker format",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"script": map[string]any{
						"type":        "string",
						"description": "Script in any dialogue format",
					},
					"speaker_mapping": map[string]any{
						"type":        "object",
						"description": "Map speaker names to R/S/T/U IDs",
					},
				},
				Required: []string{"script"},
			},
		},
	}
}

// providerFactory creates a synthesis provider; swapped out in tests.
type providerFactory func(ctx context.Context, name string, options tts.SynthesizeOptions) (tts.Provider, error)

// Handlers contains tool handler implementations.
type Handlers struct {
	newProvider providerFactory
	outputDir   string // empty means tts.DefaultOutputDir at call time
}

// NewHandlers creates tool handlers with the default provider factory.
func NewHandlers() *Handlers {
	return &Handlers{newProvider: defaultProviderFactory}
}

func defaultProviderFactory(ctx context.Context, name string, options tts.SynthesizeOptions) (tts.Provider, error) {
	return tts.NewProvider(ctx, name, options)
}

// HandleGenerateScript produces an instructional prompt plus a deterministic
// sample script for the requested topic and format.
func (h *Handlers) HandleGenerateScript(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := mcp.ParseString(req, "topic", "")
	if topic == "" {
		return mcp.NewToolResultError("topic parameter is required"), nil
	}

	formatType := mcp.ParseString(req, "format_type", dialogue.DefaultFormat)
	duration := parseIntParam(req, "duration_minutes", 5)
	genCtx := dialogue.ContextFromMap(parseObjectParam(req, "additional_context"))

	prompt := dialogue.BuildPrompt(topic, formatType, duration, genCtx)
	sample := dialogue.Generate(topic, formatType, duration, genCtx)

	log.Info().
		Str("topic", topic).
		Str("format", formatType).
		Int("duration_minutes", duration).
		Int("sample_turns", len(sample)).
		Msg("Generated script")

	text := fmt.Sprintf(`Generated Google TTS podcast script prompt:

%s

---
SAMPLE SCRIPT (Generated):

%s

---
Note: This script is formatted for Google Cloud Text-to-Speech multi-speaker feature.
Each line uses the format: SPEAKER_ID|Dialogue text
Valid speakers: R, S, T, U`, prompt, dialogue.Render(sample))

	return mcp.NewToolResultText(text), nil
}

// HandleCreateAudio parses a canonical script and synthesizes it to a file.
func (h *Handlers) HandleCreateAudio(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	script := mcp.ParseString(req, "script", "")
	if script == "" {
		return mcp.NewToolResultError("script parameter is required"), nil
	}

	filename := mcp.ParseString(req, "output_filename", "google_podcast.mp3")
	languageCode := mcp.ParseString(req, "language_code", "en-US")
	providerName := mcp.ParseString(req, "provider", "google")

	turns := dialogue.Parse(script)
	if len(turns) == 0 {
		return mcp.NewToolResultError("no valid dialogue turns found. Use format: R|Text"), nil
	}

	options := tts.SynthesizeOptions{Language: languageCode, Format: "mp3"}
	provider, err := h.newProvider(ctx, providerName, options)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create provider: %v", err)), nil
	}

	audio, err := provider.SynthesizeTurns(ctx, turns, options)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create audio: %v", err)), nil
	}
	defer func() { _ = audio.Close() }()

	dir := h.outputDir
	if dir == "" {
		if dir, err = tts.DefaultOutputDir(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to resolve output directory: %v", err)), nil
		}
	}

	path, bytes, err := tts.WriteAudio(audio, dir, filename)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to write audio: %v", err)), nil
	}

	log.Info().
		Str("path", path).
		Int("turns", len(turns)).
		Int64("bytes", bytes).
		Str("provider", provider.Name()).
		Msg("Created podcast audio")

	return mcp.NewToolResultText(audioSummary(path, languageCode, turns, bytes)), nil
}

// HandleConvertScript maps free-text speaker labels onto canonical IDs and
// rewrites the script into pipe format.
func (h *Handlers) HandleConvertScript(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	script := mcp.ParseString(req, "script", "")
	if script == "" {
		return mcp.NewToolResultError("script parameter is required"), nil
	}

	mapping, err := mappingParam(req, "speaker_mapping")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if mapping == nil || mapping.Len() == 0 {
		mapping = dialogue.AutoMap(script)
	}

	converted := dialogue.Convert(script, mapping)
	if converted == "" {
		return mcp.NewToolResultError("could not convert script. No valid dialogue found"), nil
	}

	var b strings.Builder
	b.WriteString("Script converted to Google format:\n\nSPEAKER MAPPING:\n")
	for _, label := range mapping.Labels() {
		id, _ := mapping.Get(label)
		b.WriteString(fmt.Sprintf("  - %s -> %s (%s)\n", label, id, dialogue.Speakers[id].Description))
	}
	b.WriteString("\nCONVERTED SCRIPT:\n")
	b.WriteString(converted)
	b.WriteString("\n\n---\nReady to use with create_google_audio tool!")

	return mcp.NewToolResultText(b.String()), nil
}

// audioSummary formats the synthesis report returned to the caller.
func audioSummary(path, languageCode string, turns []dialogue.Turn, bytes int64) string {
	counts := dialogue.SpeakerCounts(turns)

	used := make([]string, 0, len(counts))
	for _, id := range dialogue.SpeakerOrder {
		if counts[id] > 0 {
			used = append(used, string(id))
		}
	}

	dist := make([]string, 0, len(used))
	guide := make([]string, 0, len(used))
	for _, id := range used {
		dist = append(dist, fmt.Sprintf("%s:%d", id, counts[dialogue.SpeakerID(id)]))
		guide = append(guide, fmt.Sprintf("  - %s: %s", id, dialogue.Speakers[dialogue.SpeakerID(id)].Description))
	}

	return fmt.Sprintf(`Google TTS podcast created successfully!

Output: %s
Voice: %s-Studio-MultiSpeaker
Statistics:
- Total turns: %d
- Speakers used: %s
- Turn distribution: %s
- File size: %.1f KB

Speaker Guide:
%s

Your multi-speaker podcast is ready!`,
		path,
		languageCode,
		len(turns),
		strings.Join(used, ", "),
		strings.Join(dist, ", "),
		float64(bytes)/1024,
		strings.Join(guide, "\n"))
}

// mappingParam reads an explicit speaker_mapping argument, if present.
func mappingParam(req mcp.CallToolRequest, key string) (*dialogue.SpeakerMapping, error) {
	raw := parseObjectParam(req, key)
	if len(raw) == 0 {
		return nil, nil
	}
	if len(raw) > dialogue.MaxMappedSpeakers {
		return nil, fmt.Errorf("speaker_mapping supports at most %d speakers, got %d", dialogue.MaxMappedSpeakers, len(raw))
	}

	pairs := make(map[string]dialogue.SpeakerID, len(raw))
	for label, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("speaker_mapping value for %q must be a string", label)
		}
		id := dialogue.SpeakerID(strings.ToUpper(strings.TrimSpace(s)))
		if !dialogue.IsValidSpeaker(id) {
			return nil, fmt.Errorf("speaker_mapping value for %q must be one of R, S, T, U", label)
		}
		pairs[label] = id
	}
	return dialogue.MappingFromMap(pairs), nil
}

func parseIntParam(req mcp.CallToolRequest, key string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	raw, ok := args[key]
	if !ok {
		return defaultVal
	}
	switch v := raw.(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return defaultVal
	}
}

func parseObjectParam(req mcp.CallToolRequest, key string) map[string]any {
	args := req.GetArguments()
	if args == nil {
		return nil
	}
	if obj, ok := args[key].(map[string]any); ok {
		return obj
	}
	return nil
}
