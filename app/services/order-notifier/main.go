package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/snirkop89/order-notifier/core/logger"
	"github.com/snirkop89/order-notifier/core/publisher"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewLogger("order-notifier", logger.ParseLevel(cfg.LogLevel))

	if cfg.Shopify.Secret == "" {
		log.Warn("Shopify webhook secret not set, signature verification is disabled")
	}
	if cfg.WeCom.Webhook == "" {
		log.Warn("WeCom webhook not set, order notifications will fail")
	}

	n := &notifier{
		secret:    cfg.Shopify.Secret,
		publisher: publisher.New(cfg.WeCom.Webhook, &http.Client{Timeout: cfg.ForwardTimeout}),
	}

	// Prepare a context to catch cancelation signals.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      routes(log, n, cfg.MaxBodyBytes),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.ForwardTimeout + 10*time.Second,
	}

	g.Go(func() error {
		log.Info("Starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("Received termination signal. Shutting down server")

		tCtx, tcancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer tcancel()

		if err := srv.Shutdown(tCtx); err != nil {
			log.Error(err.Error())
			return err
		}
		log.Info("Server shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
