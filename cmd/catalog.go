package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/daikw/dialoguecast/internal/dialogue"
)

func handleFormats(ctx context.Context, c *cli.Command) error {
	heading := color.New(color.FgCyan, color.Bold)
	entry := color.New(color.FgGreen)

	heading.Println("Available podcast formats:")
	fmt.Println()

	for _, name := range dialogue.FormatNames() {
		f := dialogue.LookupFormat(name)
		entry.Printf("  %s", f.Name)
		if f.Name == dialogue.DefaultFormat {
			color.New(color.FgYellow).Print(" (default)")
		}
		fmt.Println()
		fmt.Printf("    %s\n", f.Description)
		fmt.Printf("    Speakers: %s\n", joinSpeakers(f.Speakers))
		if f.Style != "" {
			fmt.Printf("    Style: %s\n", f.Style)
		}
		fmt.Println()
	}
	return nil
}

func handleSpeakers(ctx context.Context, c *cli.Command) error {
	heading := color.New(color.FgCyan, color.Bold)
	id := color.New(color.FgGreen, color.Bold)

	heading.Println("Canonical speakers (Google multi-speaker voice):")
	fmt.Println()

	for _, sid := range dialogue.SpeakerOrder {
		s := dialogue.Speakers[sid]
		id.Printf("  %s", sid)
		fmt.Printf("  %s\n", s.Name)
		fmt.Printf("     Personality: %s\n", s.Personality)
		fmt.Printf("     %s\n", s.Description)
		fmt.Println()
	}
	return nil
}

func joinSpeakers(ids []dialogue.SpeakerID) string {
	parts := make([]string, len(ids))
	for i, sid := range ids {
		parts[i] = string(sid)
	}
	return strings.Join(parts, ", ")
}
