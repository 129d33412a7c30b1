package main

import (
	"context"
	"log/slog"
	"mariachat/app/config"
	"mariachat/app/server"
	"mariachat/app/service/conversation"
	"mariachat/app/service/generate"
	"mariachat/app/util/mylog"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

func main() {
	di := do.New()
	defer di.Shutdown()

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, generate.New)
	do.Provide(di, conversation.New)
	do.Provide(di, server.New)

	if cfg.OpenAI.Token == "" {
		slog.Warn("No OpenAI token configured, replies will use the static fallback")
	}

	slog.Info("Service started")

	group, groupCtx := errgroup.WithContext(appCtx)

	group.Go(func() error {
		return do.MustInvoke[*server.Server](di).Run(groupCtx)
	})

	group.Go(func() error {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)

		select {
		case <-sigint:
			slog.Info("Shutting down...")
			cancel()
		case <-groupCtx.Done():
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		slog.Error("Server stopped", "error", err)
	}
}
