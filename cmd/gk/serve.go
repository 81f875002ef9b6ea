package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	htmlrender "github.com/sonnes/ganaka/render/html"
	"github.com/sonnes/ganaka/stats"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the HTML metrics report in a local web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "root",
				Usage: "Path to the Kiro storage directory",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8080,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a := newApp()
			renderer := htmlrender.New()

			mux := http.NewServeMux()

			// Logs are re-scanned per request so a running agent's new
			// executions show up on refresh.
			mux.HandleFunc("GET /", func(w http.ResponseWriter, req *http.Request) {
				results, err := a.newReader(cmd).ReadAll()
				if err != nil {
					log.Error("scan logs", "err", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}

				rep := stats.NewReport(results, time.Now())
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				if err := renderer.Render(w, rep); err != nil {
					log.Error("render report", "err", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			})

			addr := fmt.Sprintf(":%d", cmd.Int("port"))
			log.Info("serving", "addr", "http://localhost"+addr)
			return http.ListenAndServe(addr, mux)
		},
	}
}
