package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/ganaka/config"
	"github.com/sonnes/ganaka/core"
	"github.com/sonnes/ganaka/reader"
	"github.com/sonnes/ganaka/reader/kiro"
	"github.com/sonnes/ganaka/render"
	htmlrender "github.com/sonnes/ganaka/render/html"
	jsonrender "github.com/sonnes/ganaka/render/json"
	"github.com/sonnes/ganaka/render/report"
)

// app holds the renderer registry and resolved configuration used by CLI
// commands.
type app struct {
	cfg       config.Config
	renderers map[string]func() render.Renderer
}

func newApp() *app {
	return &app{
		cfg: config.Load(),
		renderers: map[string]func() render.Renderer{
			"terminal": func() render.Renderer { return report.New() },
			"html":     func() render.Renderer { return htmlrender.New() },
			"json":     func() render.Renderer { return jsonrender.New() },
		},
	}
}

func (a *app) renderer(name string) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// newReader builds the log reader from configuration, letting --root
// override the configured location.
func (a *app) newReader(cmd *cli.Command) reader.Reader {
	root := cmd.String("root")
	if root == "" {
		root = a.cfg.LogRoot
	}
	return &kiro.Reader{
		Root:   root,
		Logger: log.Default(),
	}
}

// readResults reads either a single log file (--file) or scans the whole
// storage directory.
func readResults(a *app, cmd *cli.Command) ([]*core.ExecutionResult, error) {
	r := a.newReader(cmd)

	if file := cmd.String("file"); file != "" {
		result, err := r.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return []*core.ExecutionResult{result}, nil
	}
	return r.ReadAll()
}
