package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const usage = `Usage: mywebpage            serve the page on $PORT
       mywebpage export <dir>  render the page and assets into <dir>`

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	closer, err := setupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	composer := NewPageComposer(DefaultContent(), WithTitle(cfg.SiteTitle))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], cfg, composer); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		} else {
			log.Error().Err(err).Msg("exiting")
		}
		stop()
		closer.Close()
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(ctx context.Context, args []string, cfg Config, composer *PageComposer) error {
	switch {
	case len(args) == 0:
		return serve(ctx, cfg, composer)
	case len(args) == 2 && args[0] == "export":
		return Export(ctx, args[1], composer.Compose(), composer.Content().Profile.CVPath, cfg.StaticDir)
	default:
		return errUsage
	}
}

func serve(ctx context.Context, cfg Config, composer *PageComposer) error {
	gin.SetMode(cfg.GinMode)
	site := NewSite(composer, cfg.StaticDir)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           site.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("serving portfolio")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
