package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	jsonrender "github.com/sonnes/ganaka/render/json"
	"github.com/sonnes/ganaka/stats"
)

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the full metrics report as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "root",
				Usage: "Path to the Kiro storage directory",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "Path to a single execution log file",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Write to a file instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Indent the JSON output",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a := newApp()

			results, err := readResults(a, cmd)
			if err != nil {
				return err
			}

			rnd := jsonrender.New()
			rnd.Indent = cmd.Bool("pretty")

			w := os.Stdout
			if out := cmd.String("out"); out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			rep := stats.NewReport(results, time.Now())
			if err := rnd.Render(w, rep); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}
}
