package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smartsign/backend/config"
	"smartsign/backend/internal/clock"
	"smartsign/backend/internal/dto"
	"smartsign/backend/internal/store"
)

// ── 测试辅助 ──
//
// 存储本身即内存实现，Service 测试直接使用真实 Store 与真实时钟；
// 时间相关断言统一用相对当前时刻的宽窗口，避免依赖时钟节拍。

func setupTestEnv() (*store.Store, *clock.SimClock, *Service) {
	st := store.NewStore()
	clk := clock.New(time.Second)
	cfg := &config.Config{
		Clock: config.ClockConfig{
			TickInterval: time.Second,
			MaxOffset:    24 * time.Hour,
		},
	}
	svc := NewService(cfg, st, clk, zap.NewNop())
	return st, clk, svc
}

// mustCreateRoom 创建测试房间并返回其 ID
func mustCreateRoom(svc *Service, name, location, sn string) string {
	resp, err := svc.Room.Create(context.Background(), &dto.CreateRoomRequest{
		Name:     name,
		Location: location,
		DeviceSN: sn,
	})
	if err != nil {
		panic(err)
	}
	return resp.ID
}

const hourMs = int64(3_600_000)

func nowMs() int64 { return time.Now().UnixMilli() }
