package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"label-bot/config"
	"label-bot/internal/api"
	"label-bot/internal/container"
	"label-bot/internal/infrastructure/inference"
	"label-bot/internal/infrastructure/redisbus"
	"label-bot/internal/infrastructure/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP control API and the redis status listener",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		setupLogging(cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	if cfg.GinRelease {
		gin.SetMode(gin.ReleaseMode)
	}

	redisPool := redisbus.NewPool(cfg.RedisAddress, cfg.RedisMaxConnections)
	defer redisPool.Close()

	bus := redisbus.NewBus(redisPool, cfg.RequestChannel, cfg.ActionsChannel)

	model := inference.NewClient(cfg.InferenceURL, cfg.InferenceTimeout)
	if err := model.CheckHealth(ctx); err != nil {
		log.Warning("[Main] Inference service is not reachable: ", err.Error())
	}

	// Хранилище ботов
	botRepo := storage.NewMemoryBotRepository()

	// Собираем сервисы приложения
	appContainer := container.New(botRepo, model, bus, bus)

	go func() {
		err := redisbus.Subscribe(ctx, redisPool.Get(), cfg.StatusChannel, appContainer.BotService.StatusHandler(ctx))
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("[Main] Status listener stopped: ", err.Error())
		}
	}()

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.NewServer(appContainer).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[Main] Listening on ", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[Main] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
