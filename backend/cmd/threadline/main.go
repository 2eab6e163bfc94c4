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

	"github.com/itchan-dev/threadline/backend/internal/handler"
	"github.com/itchan-dev/threadline/backend/internal/router"
	"github.com/itchan-dev/threadline/backend/internal/service"
	"github.com/itchan-dev/threadline/backend/internal/setup"
	"github.com/itchan-dev/threadline/backend/internal/storage/fs"
	"github.com/itchan-dev/threadline/backend/internal/storage/pg"
	"github.com/itchan-dev/threadline/shared/api"
	"github.com/itchan-dev/threadline/shared/config"
	"github.com/itchan-dev/threadline/shared/crypto"
	"github.com/itchan-dev/threadline/shared/domain"
	"github.com/itchan-dev/threadline/shared/logger"
	"github.com/itchan-dev/threadline/shared/metrics"
	"github.com/itchan-dev/threadline/shared/validation"
)

const (
	defaultAddr     = ":8080"
	readTimeout     = 5 * time.Second
	writeTimeout    = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	var configFolder string
	var serve bool
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.BoolVar(&serve, "serve", false, "serve the result over HTTP after the run")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.Json)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, serve); err != nil {
		logger.Log.Error("threadline failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, serve bool) error {
	engineCfg, err := cfg.Engine()
	if err != nil {
		return err
	}

	batch, loaded, err := loadBatch(cfg.Public.Input)
	if err != nil {
		return err
	}
	if cfg.Public.Anonymize {
		anon, err := crypto.NewAnonymizer(cfg.Private.AnonymizeKey)
		if err != nil {
			return err
		}
		batch = anon.Batch(batch)
		engineCfg.TargetAccount = anon.Token(engineCfg.TargetAccount)
	}

	start := time.Now()
	engine := service.NewEngine(engineCfg, validation.New())
	res, err := engine.Run(ctx, batch)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	res.Summary.Merge(loaded)
	metrics.ObserveRun(res.Summary, time.Since(start))
	logger.Log.Info("summary",
		"run_id", res.Summary.RunId,
		"posts_read", res.Summary.PostsRead,
		"messages_read", res.Summary.MessagesRead,
		"skipped", res.Summary.Skipped(),
		"threads", res.Summary.Threads,
		"singleton_threads", res.Summary.SingletonThreads,
		"conversations", res.Summary.Conversations)

	if err := writeDocument(cfg.Public.Output.Path, api.NewDocument(res)); err != nil {
		return err
	}

	var archive handler.Archive
	if cfg.PgEnabled() {
		storage, err := pg.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer storage.Cleanup()
		if err := storage.SaveResult(ctx, res); err != nil {
			return err
		}
		archive = storage
	}

	if !serve {
		return nil
	}
	deps := setup.SetupDependencies(ctx, cfg, engineCfg, res, archive)
	return listen(ctx, cfg.Public.Api.Addr, router.New(deps))
}

// loadBatch reads the configured inputs. Lines the loader could not decode
// are returned as a summary to merge into the engine's.
func loadBatch(in config.Input) (domain.Batch, domain.Summary, error) {
	var batch domain.Batch
	var loaded domain.Summary

	storage, err := fs.New("")
	if err != nil {
		return batch, loaded, err
	}
	if in.PostsPath != "" {
		posts, stats, err := storage.LoadPosts(in.PostsPath)
		if err != nil {
			return batch, loaded, err
		}
		batch.Posts = posts
		loaded.PostsRead, loaded.MalformedPosts = stats.Malformed, stats.Malformed
	}
	if in.MessagesPath != "" {
		messages, stats, err := storage.LoadMessages(in.MessagesPath)
		if err != nil {
			return batch, loaded, err
		}
		batch.Messages = messages
		loaded.MessagesRead, loaded.MalformedMessages = stats.Malformed, stats.Malformed
	}
	return batch, loaded, nil
}

func listen(ctx context.Context, addr string, h http.Handler) error {
	if addr == "" {
		addr = defaultAddr
	}
	server := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("server started", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Log.Info("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
