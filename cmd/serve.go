package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/LambdaTest/ghnotify/pkg/api"
	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/jwt"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/LambdaTest/ghnotify/pkg/notifyqueue"
	"github.com/LambdaTest/ghnotify/pkg/opentelemetry"
	"github.com/LambdaTest/ghnotify/pkg/redis"
	"github.com/LambdaTest/ghnotify/pkg/server"
	"github.com/spf13/cobra"
)

func serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the notification API over HTTP",
		RunE:  runServe,
	}
	cmd.Flags().StringP("port", "p", "", "port the HTTP server listens on")
	return cmd
}

func consumeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "consume",
		Short: "Consume notification messages from kafka",
		RunE:  runConsume,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	cfg, logger := a.cfg, a.logger

	// create a context that we can cancel
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer initTracer(ctx, a)()

	var session core.Session
	if cfg.JWT.PublicKey != "" {
		if session, err = jwt.New(cfg, logger); err != nil {
			logger.Errorf("could not instantiate jwt authenticator %v", err)
			return err
		}
	}
	var redisDB core.RedisDB
	if cfg.Redis.Addr != "" {
		if redisDB, err = redis.New(ctx, cfg, logger); err != nil {
			logger.Errorf("failed to create redis database connection %v", err)
			return err
		}
	}

	// create child context so as to fail the health API on SIGTERM/SIGINT
	childCtx, childCancel := context.WithCancel(ctx)
	defer childCancel()
	router := api.New(childCtx, cfg, a.notifier, session, redisDB, logger)

	wg := sync.WaitGroup{}
	wg.Add(1)
	// setup http server
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(ctx, &router, cfg, logger); err != nil {
			logger.Errorf("error while running http server %v", err)
		}
	}()

	return waitForShutdown(a, &wg, childCancel, cancel)
}

func runConsume(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	logger := a.logger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer initTracer(ctx, a)()

	consumer := notifyqueue.New(a.cfg, a.notifier, logger)
	defer func() {
		if err := consumer.Close(); err != nil {
			logger.Errorf("failed to close Kafka reader, error: %v", err)
		}
	}()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumer.Run(ctx); err != nil {
			logger.Errorf("error while consuming notifications %v", err)
		}
	}()

	// the consumer stops between messages, so the child and parent contexts are the same
	return waitForShutdown(a, &wg, cancel, cancel)
}

func initTracer(ctx context.Context, a *app) func() {
	if a.cfg.Tracing.OtelEndpoint == "" {
		return func() {}
	}
	tracerCleanup := opentelemetry.InitTracer(ctx, a.cfg, a.logger)
	return func() {
		if tracerErr := tracerCleanup(context.Background()); tracerErr != nil {
			a.logger.Errorf("Failed to cleanup the tracer %v", tracerErr)
		}
	}
}

// waitForShutdown blocks until SIGINT/SIGTERM, then cancels the child context, waits
// ShutDownDelay and cancels the root context, giving up after GracefulTimeout.
func waitForShutdown(a *app, wg *sync.WaitGroup, childCancel, cancel context.CancelFunc) error {
	logger := a.logger
	// create channel to mark status of waitgroup
	// this is required to brutally kill application in case of
	// timeout
	done := make(chan struct{})

	// asynchronously wait for all the go routines
	go func() {
		wg.Wait()
		logger.Debugf("main: all goroutines have finished.")
		close(done)
	}()

	// listen for C-c
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case <-c:
	case <-done:
		// the surface exited on its own, e.g. the port is taken
		return nil
	}
	logger.Debugf("main: received close signal - attempting graceful shutdown ....")
	childCancel()
	// add some delay so as to allow the readiness probe to fail before closing listeners
	time.Sleep(a.cfg.ShutDownDelay)

	// tell the goroutines to stop
	logger.Debugf("main: telling all goroutines to stop")
	cancel()
	return awaitDone(done, a.cfg.GracefulTimeout, logger)
}

func awaitDone(done <-chan struct{}, timeout time.Duration, logger lumber.Logger) error {
	select {
	case <-done:
		logger.Debugf("Go routines exited within timeout")
		return nil
	case <-time.After(timeout):
		logger.Errorf("Graceful timeout exceeded. Brutally killing the application")
		return errs.ErrTimeoutExceeded
	}
}
