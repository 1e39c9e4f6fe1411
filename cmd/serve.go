package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/daikw/dialoguecast/internal/mcpserver"
)

func handleServe(ctx context.Context, c *cli.Command) error {
	return mcpserver.ServeStdio(mcpserver.New())
}
