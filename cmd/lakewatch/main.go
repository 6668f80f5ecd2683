package main

import (
	"context"
	"os"
	"time"

	"github.com/gabapcia/lakewatch/internal/blockproc"
	"github.com/gabapcia/lakewatch/internal/blockpub"
	"github.com/gabapcia/lakewatch/internal/config"
	"github.com/gabapcia/lakewatch/internal/handlers/cli"
	"github.com/gabapcia/lakewatch/internal/infra/lake/neardata"
	"github.com/gabapcia/lakewatch/internal/infra/storage/redis"
	"github.com/gabapcia/lakewatch/internal/lakestream"
	"github.com/gabapcia/lakewatch/internal/pkg/logger"
	"github.com/gabapcia/lakewatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/lakewatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/lakewatch/internal/pkg/transport/http"
	"github.com/gabapcia/lakewatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/lakewatch/internal/receiptcorr"
)

const (
	httpTimeout     = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

func main() {
	if err := run(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet.
		_ = logger.Init()
		logger.Error(ctx, "failed to load configuration", "error", err)
		return err
	}

	if cfg.OtelEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.OtelServiceName)
		if err != nil {
			_ = logger.Init()
			logger.Error(ctx, "failed to initialize telemetry", "error", err)
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithOutputPaths(cfg.LogFile)); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info(ctx, "starting lakewatch",
		"network", cfg.Network(),
		"start_height", cfg.StartHeight,
		"start_from_checkpoint", cfg.StartFromCheckpoint,
		"accounts", len(cfg.Accounts),
		"parse_tx_hash", cfg.ParseTxHash,
	)

	store, err := redis.NewClient(ctx, cfg.RedisURL, cfg.PubList)
	if err != nil {
		logger.Error(ctx, "failed to connect to redis", "error", err)
		return err
	}
	defer func() { _ = store.Close() }()

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(httpTimeout),
		transporthttp.WithLeveledLogger(logger.Leveled(logger.Derive(ctx, "component", "http"))),
	)
	rpc := jsonrpc.NewClient(cfg.RPCEndpoint, httpClient)
	source := neardata.NewClient(cfg.LakeEndpoint, httpClient, rpc, neardata.WithPollInterval(cfg.PollInterval))

	correlator := receiptcorr.New(cfg.Accounts.Set(), store)

	var publisherOpts []blockpub.Option
	if cfg.StoreRetryAttempts > 0 {
		publisherOpts = append(publisherOpts, blockpub.WithRetry(retry.New(
			retry.WithAttempts(cfg.StoreRetryAttempts),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "retrying store operation", "attempt", attempt, "error", err)
			}),
		)))
	}
	publisher := blockpub.New(store, store, store, publisherOpts...)

	processor, err := blockproc.New(correlator, publisher)
	if err != nil {
		logger.Error(ctx, "failed to create block processor", "error", err)
		return err
	}

	stream := lakestream.New(source, store, processor,
		lakestream.WithStartHeight(cfg.StartHeight),
		lakestream.WithResumeFromCheckpoint(cfg.StartFromCheckpoint),
	)

	if err := cli.Run(ctx, stream, store); err != nil {
		logger.Error(ctx, "lakewatch stopped with an error", "error", err)
		return err
	}

	return nil
}
