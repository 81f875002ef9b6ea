package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "gk",
		Usage: "Extract code generation metrics from Kiro agent execution logs",
		Description: `
  __ _ __ _ _ _  __ _| |__ _ _
 / _' / _' | ' \/ _' | / / _' |
 \__, \__,_|_||_\__,_|_\_\__,_|
 |___/

 The counter of lines — turning agent logs into daily metrics.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			reportCmd(),
			exportCmd(),
			uploadCmd(),
			serveCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
