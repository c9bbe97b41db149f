package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/webwizbd/backdrop/internal/config"
	"github.com/webwizbd/backdrop/internal/field"
	"github.com/webwizbd/backdrop/internal/page"
	"github.com/webwizbd/backdrop/internal/terminal"
	"github.com/webwizbd/backdrop/internal/window"
)

func main() {
	configPath := flag.String("config", "", "JSON file with settings to override")
	seed := flag.Int64("seed", 0, "seed for a reproducible particle cloud")
	backend := flag.String("backend", "window", "where to draw: window or terminal")
	noPage := flag.Bool("no-page", false, "draw only the particle field")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var opts []field.Option
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts = append(opts, field.WithSeed(*seed))
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *backend {
	case "window":
		runWindow(ctx, cfg, opts, !*noPage)
	case "terminal":
		if !*noPage {
			log.Printf("Warning: the terminal backend has no page overlay")
		}
		runTerminal(ctx, cfg, opts)
	default:
		log.Fatalf("Unknown backend %q (want window or terminal)", *backend)
	}
}

func runWindow(ctx context.Context, cfg config.Config, opts []field.Option, withPage bool) {
	g := window.New(ctx, cfg)

	f, ok := field.Init(g, cfg, opts...)
	if !ok {
		log.Printf("Surface %q not found, particle field disabled", cfg.SurfaceID)
	}
	g.SetField(f)
	if withPage {
		g.SetPage(page.New(cfg.Window.Width, cfg.Window.Height))
	}

	if err := window.Run(g); err != nil {
		log.Fatal(err)
	}
}

func runTerminal(ctx context.Context, cfg config.Config, opts []field.Option) {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	term := terminal.New(screen, cfg)
	f, ok := field.Init(term, cfg, opts...)
	if !ok {
		log.Printf("Surface %q not found, particle field disabled", cfg.SurfaceID)
	}

	err = term.Run(ctx, f)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
