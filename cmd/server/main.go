package main

import (
	"context"
	"log"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"kodevidecamp/internal/board"
	"kodevidecamp/internal/config"
	"kodevidecamp/internal/http/handler"
	"kodevidecamp/internal/metrics"
	"kodevidecamp/internal/realtime"
	"kodevidecamp/internal/render"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	config.LoadEnv()
	settings := config.Load()

	logger, err := config.NewLogger(settings.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub(logger.Named("ws"), func(n int) { metrics.WSClients.Set(float64(n)) })
	go hub.Run(ctx)

	b, err := board.Open(ctx, settings, logger, hub)
	if err != nil {
		logger.Fatal("open board", zap.Error(err))
	}
	defer b.Close()

	if settings.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set, admin routes will reject every request")
	}

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		// multipart notices carry several images of up to 5MB each
		BodyLimit: 32 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE",
	}))

	h := handler.New(handler.Deps{
		Settings: settings,
		Slot:     b.Slot,
		FAQs:     b.FAQs,
		Notices:  b.Notices,
		Renderer: render.MustNew(),
		Hub:      hub,
		Log:      logger,
	})
	h.Routes(app)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("forced shutdown", zap.Error(err))
		}
	}()

	addr := settings.Addr()
	logger.Info("server listening",
		zap.String("addr", addr),
		zap.String("store", settings.StoreBackend),
	)
	if err := app.Listen(addr); err != nil {
		logger.Error("listen", zap.Error(err))
	}
}
