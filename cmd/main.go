package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

var (
	version  = "dev"
	revision = "none"
)

func main() {
	// Setup logger
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:  "dialoguecast",
		Usage: "Generate, convert and synthesize multi-speaker podcast dialogues",
		Description: `dialoguecast structures free-form topics and scripts into the
multi-speaker dialogue format used by Google Cloud Text-to-Speech
(speakers R, S, T and U), and synthesizes them to audio.`,
		Version: fmt.Sprintf("%s (rev: %s)", version, revision),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Enable verbose logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "script",
				Usage:     "Generate a sample dialogue script for a topic",
				Action:    handleScript,
				Aliases:   []string{"gen", "g"},
				ArgsUsage: "<topic>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Podcast format (see 'dialoguecast formats')",
						Value:   "dialogue",
					},
					&cli.IntFlag{
						Name:    "duration",
						Aliases: []string{"d"},
						Usage:   "Target duration in minutes",
						Value:   5,
					},
					&cli.StringSliceFlag{
						Name:    "key-point",
						Aliases: []string{"k"},
						Usage:   "Key point to weave into the dialogue (repeatable)",
					},
					&cli.BoolFlag{
						Name:  "prompt",
						Usage: "Print the generation prompt instead of a sample script",
					},
				},
			},
			{
				Name:      "parse",
				Usage:     "Parse a script into canonical speaker turns",
				Action:    handleParse,
				Aliases:   []string{"p"},
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "stats",
						Usage: "Print turn statistics instead of the normalized script",
					},
				},
			},
			{
				Name:      "convert",
				Usage:     "Convert a free-form dialogue script to pipe format",
				Action:    handleConvert,
				Aliases:   []string{"c"},
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "map",
						Aliases: []string{"m"},
						Usage:   "Explicit speaker mapping, e.g. --map 'Alice=R' (repeatable)",
					},
				},
			},
			{
				Name:      "audio",
				Usage:     "Synthesize a script to an audio file",
				Action:    handleAudio,
				Aliases:   []string{"a"},
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output filename",
						Value:   "google_podcast.mp3",
					},
					&cli.StringFlag{
						Name:  "out-dir",
						Usage: "Output directory (default: ~/Desktop/google_podcasts)",
					},
					&cli.StringFlag{
						Name:  "provider",
						Usage: "TTS provider: google, polly",
						Value: "google",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Language code",
						Value: "en-US",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Audio format: mp3, wav, ogg",
						Value: "mp3",
					},
					&cli.FloatFlag{
						Name:  "speed",
						Usage: "Speaking rate (0.25-4.0)",
						Value: 1.0,
					},
					&cli.StringFlag{
						Name:  "region",
						Usage: "AWS region for Polly",
						Value: "us-east-1",
					},
					&cli.BoolFlag{
						Name:  "list-voices",
						Usage: "List available voices for the selected provider",
					},
				},
			},
			{
				Name:   "formats",
				Usage:  "List available podcast formats",
				Action: handleFormats,
			},
			{
				Name:   "speakers",
				Usage:  "List the canonical speakers and their voice characteristics",
				Action: handleSpeakers,
			},
			{
				Name:   "serve",
				Usage:  "Run as an MCP server over stdio",
				Action: handleServe,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("verbose") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("Failed to run application")
	}
}
