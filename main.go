package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"career-engine/internal/config"
	"career-engine/internal/engine"
	"career-engine/internal/handler"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Loading config failed: %v", err)
	}
	if err := config.ConfigureLogging(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := engine.NewRunner(
		engine.WithWorkers(cfg.Workers),
		engine.WithLogger(log.WithField("service", "career-engine")),
	)
	h := handler.New(runner, handler.Options{
		CacheTTL:        cfg.CacheTTL,
		MaxStudents:     cfg.MaxStudents,
		MaxSweepCruises: cfg.MaxSweepCruises,
		Context:         ctx,
	})
	server := &fasthttp.Server{
		Handler: h.Route,
		Name:    "career-engine",
	}

	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("Shutdown failed")
		}
	}()

	log.WithField("workers", cfg.Workers).Infof("Career engine starting on port %s", cfg.Port)
	if err := server.ListenAndServe(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
