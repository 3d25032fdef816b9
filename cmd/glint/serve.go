package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glint-ui/glint/el"
	"github.com/glint-ui/glint/internal/config"
	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/reactive"
	"github.com/glint-ui/glint/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		address string
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the application server",
		Long: `Start the Glint session server.

Serves the page shell on /, upgrades /ws connections to
per-session WebSockets, and exposes /healthz and /metrics.

Examples:
  glint serve
  glint serve --address=:3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(address, pretty)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Listen address (default from glint.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent rendered HTML")

	return cmd
}

func runServe(address string, pretty bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	// Command-line overrides.
	if address != "" {
		cfg.Server.Address = address
	}
	if pretty {
		cfg.Server.Pretty = true
	}

	logger := buildLogger(cfg.Log)
	slog.SetDefault(logger)

	reactive.Configure(reactive.Config{
		MaxEffectDepth:         cfg.Reactive.MaxEffectDepth,
		ResetDependenciesOnRun: cfg.Reactive.ResetDependencies,
	})

	printBanner()
	fmt.Println("  serve")
	fmt.Println()
	info("listening on %s", cfg.Server.Address)

	srv := server.New(counterApp, &server.Config{
		Address:   cfg.Server.Address,
		PageTitle: cfg.Server.PageTitle,
		Pretty:    cfg.Server.Pretty,
	}, server.WithLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	return srv.ListenAndServe(ctx)
}

// buildLogger constructs a slog.Logger from the log section of glint.json.
func buildLogger(lc config.LogConfig) *slog.Logger {
	var level slog.Level
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if lc.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// counterApp is the default application served when a project has no
// root component registered yet.
func counterApp() *dom.Node {
	count := reactive.NewSignal(0)

	return el.Div(
		el.Class("glint-demo"),
		el.H1("Glint"),
		el.P("It works. Edit your root component to replace this page."),
		el.Button(
			el.OnClick(func(*dom.Event) {
				count.Update(func(c int) int { return c + 1 })
			}),
			el.Text("Clicked "),
			el.Dyn(func() any { return count.Get() }),
			el.Text(" times"),
		),
	)
}
