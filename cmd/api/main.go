package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"inventory/internal/config"
	"inventory/internal/domain/model"
	"inventory/internal/handler"
	"inventory/internal/infra/db"
	"inventory/internal/infra/logger"
	infraRepo "inventory/internal/infra/repository"
	"inventory/internal/server"
	"inventory/internal/usecase"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	//DB接続（リトライはここだけ。失敗したらセッションごと諦める）
	gormDB, err := db.Connect(cfg, log.Named("db"))
	if err != nil {
		log.Fatal("store unavailable", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.Supplier{},
		&model.Product{},
		&model.StockEntry{},
		&model.Reorder{},
	); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	entryRepo := infraRepo.NewStockEntryGormRepository(gormDB)
	reorderRepo := infraRepo.NewReorderGormRepository(gormDB)
	reportRepo := infraRepo.NewReportGormRepository(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(txManager, productRepo, supplierRepo, entryRepo)
	reorderUC := usecase.NewReorderUsecase(txManager, reorderRepo)
	reportUC := usecase.NewReportUsecase(reportRepo, cfg.ReportWindowMonths)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	reorderH := handler.NewReorderHandler(reorderUC)
	reportH := handler.NewReportHandler(reportUC)

	//Server起動
	e := server.New(cfg, log.Named("http"), productH, reorderH, reportH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port
	log.Info("server starting", zap.String("addr", addr))

	if err := server.Start(ctx, e, addr, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", zap.Error(err))
	}
}
