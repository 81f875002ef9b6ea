package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/ganaka/stats"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Scan execution logs and print an aggregated metrics report",
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
				Name:  "o",
				Usage: "Output format: terminal, html, json",
				Value: "terminal",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a := newApp()

			results, err := readResults(a, cmd)
			if err != nil {
				return err
			}

			rnd, err := a.renderer(cmd.String("o"))
			if err != nil {
				return err
			}

			rep := stats.NewReport(results, time.Now())
			if err := rnd.Render(os.Stdout, rep); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}
}
