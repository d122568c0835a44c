package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hamed0406/availmon/internal/config"
	"github.com/hamed0406/availmon/internal/httpapi"
	"github.com/hamed0406/availmon/internal/logging"
	"github.com/hamed0406/availmon/internal/probe"
	"github.com/hamed0406/availmon/internal/repo/memory"
	"github.com/hamed0406/availmon/internal/scheduler"
)

func main() {
	settings := config.FromEnv()
	logger, err := logging.NewLogger(settings.LogDir)
	if err != nil {
		log.Fatal(err)
	}

	code := run(logger, settings, os.Args[1:])
	_ = logger.Sync()
	os.Exit(code)
}

func run(logger *zap.Logger, settings config.Settings, args []string) int {
	if len(args) != 1 {
		logger.Error("must provide a single argument containing the path to a YAML endpoints file")
		return 1
	}
	path := args[0]
	logger.Info("using_config_file", zap.String("path", path))

	groups, err := config.LoadEndpoints(path)
	if err != nil {
		logger.Error("config_load_failed", zap.Error(err))
		return 1
	}
	hosts := make([]string, 0, len(groups))
	for _, g := range groups {
		hosts = append(hosts, g.Host)
	}
	logger.Info("monitoring_domains", zap.Strings("domains", hosts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := memory.New()
	mon := scheduler.NewMonitor(
		logger,
		probe.NewHTTPProber(settings.ProbeTimeout),
		groups,
		store,
		settings.RefreshPeriod,
		settings.DNSDiagnostics,
	)

	srv := &http.Server{
		Addr:    settings.Addr,
		Handler: httpapi.NewServer(logger, store).Router(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		mon.Run(gctx)
		return nil
	})
	g.Go(func() error {
		logger.Info("api_listen", zap.String("addr", settings.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shctx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("exit_error", zap.Error(err))
		return 1
	}
	logger.Info("exiting")
	return 0
}
