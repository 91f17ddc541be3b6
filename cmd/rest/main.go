package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"saas-notes-be/internal/bootstrap"
	"saas-notes-be/internal/config"
	"saas-notes-be/internal/server"
	"saas-notes-be/internal/tracer"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, config.Load())
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so the deferred shutdown steps always run.
func run(ctx context.Context, cfg *config.Config) error {
	// 1. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("unable to bootstrap container: %w", err)
	}
	defer container.Close()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Tracing, container.Logger)
	defer shutdownTracer(context.Background())

	// 3. Start Background Services
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := container.ActivityService.Consume(ctx); err != nil {
		return fmt.Errorf("unable to start activity consumer: %w", err)
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)
	printBanner(cfg)

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown()
	}()

	// 5. Run Server
	return srv.Run()
}

func printBanner(cfg *config.Config) {
	color.Cyan("SaaS Notes backend on :%s (%s)", cfg.App.Port, cfg.App.Environment)
	color.Yellow("Demo accounts (password: \"password\")")
	for _, acc := range cfg.Accounts {
		color.Green("  %-20s %-8s %s", acc.Email, acc.Tenant, acc.Role)
	}
}
