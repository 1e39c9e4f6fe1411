package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/daikw/dialoguecast/internal/dialogue"
	"github.com/daikw/dialoguecast/internal/tts"
)

func handleAudio(ctx context.Context, c *cli.Command) error {
	options := tts.SynthesizeOptions{
		Language: c.String("language"),
		Format:   c.String("format"),
		Speed:    c.Float("speed"),
		Region:   c.String("region"),
	}

	provider, err := tts.NewProvider(ctx, c.String("provider"), options)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	if c.Bool("list-voices") {
		return listVoices(ctx, provider)
	}

	script, err := readScriptInput(c)
	if err != nil {
		return err
	}

	turns := dialogue.Parse(script)
	if len(turns) == 0 {
		return fmt.Errorf("no valid dialogue turns found. Use format: R|Text")
	}

	if !provider.IsAvailable(ctx) {
		return fmt.Errorf("provider '%s' is not available (check credentials)", provider.Name())
	}

	audio, err := provider.SynthesizeTurns(ctx, turns, options)
	if err != nil {
		return fmt.Errorf("failed to synthesize audio: %w", err)
	}
	defer func() { _ = audio.Close() }()

	dir := c.String("out-dir")
	if dir == "" {
		if dir, err = tts.DefaultOutputDir(); err != nil {
			return fmt.Errorf("failed to resolve output directory: %w", err)
		}
	}

	path, bytes, err := tts.WriteAudio(audio, dir, c.String("output"))
	if err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}

	log.Info().
		Str("path", path).
		Int("turns", len(turns)).
		Int64("bytes", bytes).
		Str("provider", provider.Name()).
		Msg("Created podcast audio")

	fmt.Fprintf(os.Stderr, "Audio saved to %s (%.1f KB)\n", path, float64(bytes)/1024)
	return nil
}

func listVoices(ctx context.Context, provider tts.Provider) error {
	voices, err := provider.ListVoices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list voices: %w", err)
	}

	fmt.Printf("Available voices for %s:\n\n", provider.Name())
	for _, v := range voices {
		fmt.Printf("  %s - %s (%s)\n", v.ID, v.Name, v.Description)
	}
	return nil
}
