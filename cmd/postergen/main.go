// Package main provides the CLI entry point for postergen.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/postergen/pkg/adapters/logger"
	"github.com/user/postergen/pkg/adapters/osfilesystem"
	"github.com/user/postergen/pkg/poster"
	"github.com/user/postergen/pkg/ports"
	"github.com/user/postergen/pkg/scene"
	"github.com/user/postergen/pkg/server"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "postergen",
		Usage:   l10n.T("Generate poster images from declarative scene files."),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Commands: []*cli.Command{
			renderCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: l10n.T("Render a scene file to a PNG image"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    l10n.T("Scene file (JSON or YAML)"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "poster.png",
				Usage:   l10n.T("Output PNG file path"),
			},
			&cli.BoolFlag{
				Name:  "base64",
				Usage: l10n.T("Print a base64 data URI instead of writing a file"),
			},
		},
		Action: runRender,
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: l10n.T("Run the poster generation HTTP API"),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   3000,
				Usage:   l10n.T("Port to listen on"),
			},
		},
		Action: runServe,
	}
}

func runRender(c *cli.Context) error {
	log := newLogger(c)
	ctx, cancel := signalContext(log)
	defer cancel()

	configPath := c.String("config")
	log.Info("Rendering %s...", configPath)
	started := time.Now()

	fs := osfilesystem.New()
	data, err := fs.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf(l10n.T("Failed to read scene file: %s"), err)
	}

	sc, err := decodeScene(configPath, data)
	if err != nil {
		return err
	}

	gen := poster.FromScene(sc, poster.WithLogger(log), poster.WithFileSystem(fs))

	if c.Bool("base64") {
		uri, err := gen.GenerateBase64(ctx)
		if err != nil {
			return err
		}
		fmt.Println(uri)
	} else {
		output := c.String("output")
		if err := gen.GenerateFile(ctx, output); err != nil {
			return err
		}
		log.Info("Poster saved to %s", output)
	}

	log.Debug("Render completed in %d ms", time.Since(started).Milliseconds())
	return nil
}

func runServe(c *cli.Context) error {
	log := newLogger(c)
	ctx, cancel := signalContext(log)
	defer cancel()

	srv := server.New(fmt.Sprintf(":%d", c.Int("port")), log)
	return srv.ListenAndServe(ctx)
}

// decodeScene picks the decoder from the file extension; anything that is
// not YAML is treated as JSON.
func decodeScene(path string, data []byte) (*scene.Scene, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return scene.DecodeYAML(data)
	default:
		return scene.DecodeJSON(data)
	}
}

func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	return ctx, cancel
}
