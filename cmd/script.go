package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/daikw/dialoguecast/internal/dialogue"
)

func handleScript(ctx context.Context, c *cli.Command) error {
	topic := c.Args().Get(0)
	if topic == "" {
		return fmt.Errorf("topic is required")
	}

	formatName := c.String("format")
	if !dialogue.IsValidFormat(formatName) {
		return fmt.Errorf("unknown format '%s' (see 'dialoguecast formats')", formatName)
	}

	duration := int(c.Int("duration"))
	var genCtx *dialogue.Context
	if points := c.StringSlice("key-point"); len(points) > 0 {
		genCtx = &dialogue.Context{KeyPoints: points}
	}

	if c.Bool("prompt") {
		fmt.Println(dialogue.BuildPrompt(topic, formatName, duration, genCtx))
		return nil
	}

	turns := dialogue.Generate(topic, formatName, duration, genCtx)
	log.Debug().
		Str("topic", topic).
		Str("format", formatName).
		Int("turns", len(turns)).
		Msg("Generated sample script")

	fmt.Println(dialogue.Render(turns))
	return nil
}

func handleParse(ctx context.Context, c *cli.Command) error {
	script, err := readScriptInput(c)
	if err != nil {
		return err
	}

	turns := dialogue.Parse(script)
	if len(turns) == 0 {
		return fmt.Errorf("no valid dialogue turns found")
	}

	if c.Bool("stats") {
		printTurnStats(turns)
		return nil
	}

	fmt.Println(dialogue.Render(turns))
	return nil
}

func handleConvert(ctx context.Context, c *cli.Command) error {
	script, err := readScriptInput(c)
	if err != nil {
		return err
	}

	var mapping *dialogue.SpeakerMapping
	if pairs := c.StringSlice("map"); len(pairs) > 0 {
		mapping, err = parseMappingFlags(pairs)
		if err != nil {
			return err
		}
	} else {
		mapping = dialogue.AutoMap(script)
	}

	converted := dialogue.Convert(script, mapping)
	if converted == "" {
		return fmt.Errorf("could not convert script: no valid dialogue found")
	}

	for _, label := range mapping.Labels() {
		id, _ := mapping.Get(label)
		fmt.Fprintf(os.Stderr, "%s -> %s (%s)\n", label, id, dialogue.Speakers[id].Description)
	}
	fmt.Println(converted)
	return nil
}

// parseMappingFlags turns repeated "Label=ID" flags into a speaker mapping.
func parseMappingFlags(pairs []string) (*dialogue.SpeakerMapping, error) {
	m := make(map[string]dialogue.SpeakerID, len(pairs))
	for _, pair := range pairs {
		label, id, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid mapping '%s': expected Label=ID", pair)
		}
		sid := dialogue.SpeakerID(strings.ToUpper(strings.TrimSpace(id)))
		if !dialogue.IsValidSpeaker(sid) {
			return nil, fmt.Errorf("invalid speaker ID '%s' for '%s': must be one of R, S, T, U", id, label)
		}
		m[strings.TrimSpace(label)] = sid
	}
	if len(m) > dialogue.MaxMappedSpeakers {
		return nil, fmt.Errorf("too many speaker mappings: at most %d supported, got %d", dialogue.MaxMappedSpeakers, len(m))
	}
	return dialogue.MappingFromMap(m), nil
}

// readScriptInput reads the script from the file argument, or stdin when
// no argument is given.
func readScriptInput(c *cli.Command) (string, error) {
	if path := c.Args().Get(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read script: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read script from stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no script provided (pass a file or pipe to stdin)")
	}
	return string(data), nil
}

func printTurnStats(turns []dialogue.Turn) {
	counts := dialogue.SpeakerCounts(turns)

	fmt.Printf("Total turns: %d\n", len(turns))
	for _, id := range dialogue.SpeakerOrder {
		if counts[id] == 0 {
			continue
		}
		fmt.Printf("  %s: %d turns (%s)\n", id, counts[id], dialogue.Speakers[id].Description)
	}
}
