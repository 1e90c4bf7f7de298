package server

import (
	"context"
	"time"

	"inventory/internal/config"
	"inventory/internal/handler"
	"inventory/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Newはルーティング済みのechoを組み立てる。
func New(
	cfg config.Config,
	log *zap.Logger,
	productH *handler.ProductHandler,
	reorderH *handler.ReorderHandler,
	reportH *handler.ReportHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLogger(log))

	//読み取り系
	productH.RegisterRoutes(e)
	reorderH.RegisterRoutes(e)
	reportH.RegisterRoutes(e)

	//操作系（操作者トークン必須）
	ops := handler.NewOpsGroup(e, cfg)
	productH.RegisterOpsRoutes(ops)
	reorderH.RegisterOpsRoutes(ops)

	return e
}

// Startはサーバーを起動し、ctxの中断でgraceful shutdownする。
func Start(ctx context.Context, e *echo.Echo, addr string, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}
