package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"huffzip_go/internal/config"
	"huffzip_go/internal/handler"
	"huffzip_go/internal/repo"
	"huffzip_go/internal/router"
	"huffzip_go/internal/service"
	"huffzip_go/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 설정/로거 초기화
	logg := logger.New()
	cfg, err := config.Load()
	if err != nil {
		logg.Warnf("config: %v (using defaults)", err)
	}

	// 의존성 생성
	jobRepo, closeRepo, err := openJobRepo(ctx, cfg, logg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepo()
	zipSvc := service.NewZipService(jobRepo, logg)
	zipH := handler.NewZipHandler(zipSvc, cfg.MaxUploadBytes)

	// Gin 라우터 생성 및 라우팅 구성
	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes
	router.Register(r, router.Dependencies{
		ZipHandler: zipH,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logg.Infof("starting server at %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logg.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Errorf("shutdown: %v", err)
	}
}

// DATABASE_URL 이 없으면 in-memory
func openJobRepo(ctx context.Context, cfg config.Config, logg logger.Logger) (repo.JobRepo, func(), error) {
	if cfg.DatabaseURL == "" {
		logg.Infof("DATABASE_URL not set, job history is in-memory")
		return repo.NewJobRepoInMemory(), func() {}, nil
	}
	pool, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return repo.NewJobRepoPG(pool), pool.Close, nil
}
